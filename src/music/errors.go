package music

import "errors"

// Per-file failure kinds. Producers wrap the underlying cause so callers can
// match the kind with errors.Is and still log the specific reason.
var (
	ErrOpen       = errors.New("cannot open file")
	ErrRead       = errors.New("cannot read metadata")
	ErrNoTag      = errors.New("file has no metadata tag")
	ErrNoFileName = errors.New("cannot determine file name")
	ErrRename     = errors.New("rename failed")
)
