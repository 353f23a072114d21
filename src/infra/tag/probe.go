package tag

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/contre95/audiorename/src/music"
	"github.com/dhowden/tag"
)

// ProbeHandle is an open audio file whose container has been identified.
type ProbeHandle struct {
	file     *os.File
	format   tag.Format
	fileType tag.FileType
}

// Probe opens filePath and sniffs its container and tag format.
func Probe(filePath string) (*ProbeHandle, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", music.ErrOpen, err)
	}

	format, fileType, err := tag.Identify(file)
	if err != nil {
		file.Close()
		if errors.Is(err, tag.ErrNoTagsFound) {
			return nil, fmt.Errorf("%w: no tag block found", music.ErrNoTag)
		}
		return nil, fmt.Errorf("%w: %w", music.ErrOpen, err)
	}

	return &ProbeHandle{file: file, format: format, fileType: fileType}, nil
}

// Read parses every tag block of the probed file and closes it.
func (h *ProbeHandle) Read() (*TaggedFile, error) {
	defer h.file.Close()

	if _, err := h.file.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("%w: %w", music.ErrRead, err)
	}

	metadata, err := tag.ReadFrom(h.file)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", music.ErrRead, err)
	}

	tagged := &TaggedFile{Format: h.format, FileType: h.fileType}
	tagged.add(metadata, isPrimaryFormat(metadata.Format()))

	// An ID3v2 header can coexist with an ID3v1 trailer.
	if isID3v2(metadata.Format()) {
		if trailer, err := tag.ReadID3v1Tags(h.file); err == nil {
			tagged.add(trailer, false)
		}
	}

	return tagged, nil
}

// TaggedFile holds the tag blocks found in a file, in file order.
type TaggedFile struct {
	Format   tag.Format
	FileType tag.FileType
	primary  tag.Metadata
	blocks   []tag.Metadata
}

func (f *TaggedFile) add(metadata tag.Metadata, primary bool) {
	if metadata == nil || len(metadata.Raw()) == 0 {
		return
	}
	if primary && f.primary == nil {
		f.primary = metadata
	}
	f.blocks = append(f.blocks, metadata)
}

// PrimaryTag returns the block the container designates canonical, or nil.
func (f *TaggedFile) PrimaryTag() tag.Metadata {
	return f.primary
}

// FirstTag returns the first block found in the file, or nil.
func (f *TaggedFile) FirstTag() tag.Metadata {
	if len(f.blocks) == 0 {
		return nil
	}
	return f.blocks[0]
}

func isID3v2(format tag.Format) bool {
	switch format {
	case tag.ID3v2_2, tag.ID3v2_3, tag.ID3v2_4:
		return true
	}
	return false
}

// isPrimaryFormat reports whether format is the canonical tag of its container.
// ID3v1 is only ever a fallback for MP3.
func isPrimaryFormat(format tag.Format) bool {
	switch format {
	case tag.ID3v2_2, tag.ID3v2_3, tag.ID3v2_4, tag.MP4, tag.VORBIS:
		return true
	}
	return false
}
