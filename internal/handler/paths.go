package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/pathsnap/pathsnap/internal/apperr"
	"github.com/pathsnap/pathsnap/internal/config"
	"github.com/pathsnap/pathsnap/internal/model"
	"github.com/pathsnap/pathsnap/internal/response"
	"github.com/pathsnap/pathsnap/internal/snapshot"
)

// Settings exposes the process configuration handlers read. *config.Config
// implements it; tests substitute a fixture.
type Settings interface {
	HostID() string
	DataDir() string
	SearchPath() string
	StorageEndpoint() string
	StorageAccessKey() string
	StorageSecretKey() string
	StorageBucket() string
}

// BlobStore uploads a local file under key and returns the object URL.
type BlobStore interface {
	UploadFile(ctx context.Context, localPath, key string) (string, error)
}

// PathHandler serves the path-snapshot endpoints. Handlers are stateless;
// every request stands alone.
type PathHandler struct {
	Settings  Settings
	Snapshots *snapshot.Service
	Store     BlobStore // nil when storage is not configured
	Log       zerolog.Logger
}

// Health answers liveness checks unconditionally (GET /health).
func (h *PathHandler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, model.Health{
		Status:  "healthy",
		Message: "API is running successfully",
	})
}

// Favicon suppresses browser icon-fetch noise (GET /favicon.ico).
func (h *PathHandler) Favicon(c echo.Context) error {
	return response.NoContent(c)
}

// ShowPath runs the enumeration script, builds a snapshot of the PATH search
// list and persists it best-effort (GET /show-path). A failed snapshot write
// never fails the request.
func (h *PathHandler) ShowPath(c echo.Context) error {
	res, err := h.Snapshots.Capture(c.Request().Context(), h.Settings.SearchPath())
	switch {
	case errors.Is(err, apperr.ErrNotFound):
		return response.NotFound(c, err.Error())
	case errors.Is(err, apperr.ErrTimeout):
		return response.InternalError(c, "script execution timed out")
	case err != nil:
		return response.InternalError(c, "error executing script: "+err.Error())
	}
	return c.JSON(http.StatusOK, res.Snapshot)
}

// UploadData publishes the host's snapshot file to the blob store
// (GET /upload-data). Configuration is checked before the file so a missing
// credential is reported regardless of file presence.
func (h *PathHandler) UploadData(c echo.Context) error {
	if err := storageConfigErr(h.Settings); err != nil {
		return response.InternalError(c, "storage not configured: "+err.Error())
	}

	name := snapshot.Filename(h.Settings.HostID())
	local := filepath.Join(h.Settings.DataDir(), name)
	if _, err := os.Stat(local); err != nil {
		return response.NotFound(c, fmt.Sprintf("snapshot file %s not found; call /show-path first to generate it", name))
	}

	if h.Store == nil {
		return response.InternalError(c, "storage client not available")
	}
	url, err := h.Store.UploadFile(c.Request().Context(), local, name)
	if err != nil {
		return response.InternalError(c, "upload failed: "+err.Error())
	}
	return c.JSON(http.StatusOK, model.UploadResult{
		Status:    "success",
		Message:   "snapshot uploaded successfully",
		BlobName:  name,
		BlobURL:   url,
		Container: h.Settings.StorageBucket(),
	})
}

// storageConfigErr reports the first unset storage variable, or nil when the
// publisher is fully configured. Checked in a fixed order so error messages
// are deterministic.
func storageConfigErr(s Settings) error {
	checks := []struct {
		val, name string
	}{
		{s.StorageEndpoint(), config.EnvStorageEndpoint},
		{s.StorageAccessKey(), config.EnvStorageAccessKey},
		{s.StorageSecretKey(), config.EnvStorageSecretKey},
		{s.StorageBucket(), config.EnvStorageBucket},
	}
	for _, chk := range checks {
		if chk.val == "" {
			return fmt.Errorf("%s is not set: %w", chk.name, apperr.ErrConfigMissing)
		}
	}
	return nil
}
