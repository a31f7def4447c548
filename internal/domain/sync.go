package domain

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"
)

type SyncRequest struct {
	Content string `json:"content"`
	Path    string `json:"path"`
}

// CleanPath validates the request path and returns it relative to the
// workspace root.
func (r SyncRequest) CleanPath() (string, error) {
	trimmed := strings.TrimSpace(r.Path)
	if trimmed == "" {
		return "", fmt.Errorf("%w: path is required", ErrInvalidSyncPath)
	}

	cleaned := filepath.Clean(filepath.FromSlash(trimmed))
	if filepath.IsAbs(cleaned) || cleaned == "." || cleaned == ".." || strings.HasPrefix(cleaned, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("%w: %q", ErrInvalidSyncPath, r.Path)
	}

	return cleaned, nil
}

type SyncRecord struct {
	ID       int64
	Path     string
	Bytes    int
	SyncedAt time.Time
}
