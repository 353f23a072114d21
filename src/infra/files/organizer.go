package files

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"os"
)

// FileOrganizer is the infrastructure implementation of the renaming.FileManager interface.
type FileOrganizer struct{}

// NewFileOrganizer creates a new file organizer implementation.
func NewFileOrganizer() *FileOrganizer {
	return &FileOrganizer{}
}

// Exists reports whether any filesystem entry, including a dangling symlink, is at path.
// An entry whose absence cannot be proven counts as existing, so callers never overwrite it.
func (o *FileOrganizer) Exists(path string) bool {
	_, err := os.Lstat(path)
	if err == nil {
		return true
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false
	}
	slog.Debug("FileOrganizer.Exists: cannot stat target, treating as taken", "path", path, "error", err)
	return true
}

// RenameTrack moves oldPath to newPath. The target is replaced if it exists;
// callers check Exists first.
func (o *FileOrganizer) RenameTrack(ctx context.Context, oldPath, newPath string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return os.Rename(oldPath, newPath)
}
