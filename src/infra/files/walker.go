package files

import (
	"io/fs"
	"iter"
	"path/filepath"
)

// Walk lazily yields the regular files below root in lexical order, one
// directory listing at a time. Entries that cannot be read are skipped, and
// symbolic links are neither followed nor yielded.
func (o *FileOrganizer) Walk(root string) iter.Seq[string] {
	return func(yield func(string) bool) {
		filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return nil
			}
			if !d.Type().IsRegular() {
				return nil
			}
			if !yield(path) {
				return filepath.SkipAll
			}
			return nil
		})
	}
}
