package model

// Health is the /health response body.
type Health struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// PathSnapshot records one query of the host's PATH search list. It is built
// per request and not retained in memory; the snapshot file on disk is its
// only persistent form. TotalEntries always equals len(PathEntries); entries
// are trimmed, non-empty and keep the order of the source list.
type PathSnapshot struct {
	Status       string   `json:"status"` // "success" or "error"
	Message      string   `json:"message"`
	TotalEntries int      `json:"total_entries"`
	PathEntries  []string `json:"path_entries"`
	RawOutput    string   `json:"raw_output,omitempty"` // stdout of the enumeration script
}

// UploadResult describes one publish of a snapshot file to the blob store.
type UploadResult struct {
	Status    string `json:"status"`
	Message   string `json:"message"`
	BlobName  string `json:"blob_name"`
	BlobURL   string `json:"blob_url"`
	Container string `json:"container"`
}
