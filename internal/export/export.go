// Package export dumps a session's items as JSON.
// Write-only: nothing in taskquare reads these files back.
package export

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/idilsaglam/taskquare/internal/task"
)

// Document is the top-level shape of an export file.
type Document struct {
	ExportedAt time.Time       `json:"exported_at"`
	Items      []task.Snapshot `json:"items"`
}

// Write encodes items as an indented Document.
func Write(w io.Writer, items []task.Snapshot, now time.Time) error {
	if items == nil {
		items = []task.Snapshot{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(Document{ExportedAt: now, Items: items}); err != nil {
		return fmt.Errorf("json encode: %w", err)
	}
	return nil
}

// WriteFile replaces path atomically.
func WriteFile(path string, items []task.Snapshot, now time.Time) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("mkdir: %w", err)
	}
	f, err := os.CreateTemp(dir, ".taskquare-*.json")
	if err != nil {
		return fmt.Errorf("create temp: %w", err)
	}
	tmp := f.Name()
	defer os.Remove(tmp) // no-op after a successful rename

	if err := Write(f, items, now); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close: %w", err)
	}
	if err := os.Chmod(tmp, 0o644); err != nil {
		return fmt.Errorf("chmod: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("rename: %w", err)
	}
	return nil
}
