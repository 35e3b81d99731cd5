// Package snapshot builds, names and persists per-host PATH snapshots.
package snapshot

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/pathsnap/pathsnap/internal/model"
	"github.com/pathsnap/pathsnap/internal/pathenv"
)

// Runner abstracts the external command invocation behind the pipeline.
type Runner interface {
	Run(ctx context.Context, script, dir string) (string, error)
}

// Filename returns the per-host snapshot filename.
func Filename(host string) string {
	if host == "" {
		host = "unknown"
	}
	return host + "_data.json"
}

// WriteJSON serializes snap to path with stable field order and two-space
// indentation, overwriting any existing file.
func WriteJSON(path string, snap model.PathSnapshot) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(snap)
}

// CaptureResult separates the primary query outcome from the best-effort
// persistence outcome, so callers and tests can observe a write failure that
// was deliberately not surfaced.
type CaptureResult struct {
	Snapshot   model.PathSnapshot
	File       string // where the snapshot was (or would have been) written
	PersistErr error  // non-fatal; nil when the write succeeded
}

// Service is the query → persist pipeline behind /show-path.
type Service struct {
	Runner Runner
	Script string
	Dir    string
	Host   string
	Log    zerolog.Logger
}

// Capture runs the enumeration script, builds the snapshot from searchPath
// and writes it to the per-host file. A write failure is logged and recorded
// on the result but does not fail the capture; a runner failure does, and in
// that case no file is touched.
func (s *Service) Capture(ctx context.Context, searchPath string) (CaptureResult, error) {
	out, err := s.Runner.Run(ctx, s.Script, s.Dir)
	if err != nil {
		return CaptureResult{}, err
	}

	entries := pathenv.Entries(searchPath)
	res := CaptureResult{
		Snapshot: model.PathSnapshot{
			Status:       "success",
			Message:      "PATH environment variable retrieved successfully",
			TotalEntries: len(entries),
			PathEntries:  entries,
			RawOutput:    out,
		},
		File: filepath.Join(s.Dir, Filename(s.Host)),
	}
	if err := WriteJSON(res.File, res.Snapshot); err != nil {
		res.PersistErr = err
		s.Log.Warn().Err(err).Str("file", res.File).Msg("snapshot write failed, response unaffected")
	}
	return res, nil
}
