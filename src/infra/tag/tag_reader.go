package tag

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/contre95/audiorename/src/music"
)

// TagReader extracts rename metadata using the dhowden/tag library.
type TagReader struct{}

// NewTagReader creates a new TagReader
func NewTagReader() *TagReader {
	return &TagReader{}
}

// ReadFileTags reads the title and track number of a music file. The primary tag
// block is preferred; the first available block is used otherwise.
func (r *TagReader) ReadFileTags(ctx context.Context, filePath string) (music.TagData, error) {
	if err := ctx.Err(); err != nil {
		return music.TagData{}, err
	}

	handle, err := Probe(filePath)
	if err != nil {
		return music.TagData{}, err
	}

	tagged, err := handle.Read()
	if err != nil {
		return music.TagData{}, err
	}

	metadata := tagged.PrimaryTag()
	if metadata == nil {
		metadata = tagged.FirstTag()
	}
	if metadata == nil {
		return music.TagData{}, fmt.Errorf("%w: %s container has no readable block", music.ErrNoTag, tagged.FileType)
	}

	trackNumber, _ := metadata.Track()
	slog.Debug("TagReader.ReadFileTags: tags read", "path", filePath, "format", metadata.Format(), "title", metadata.Title(), "track", trackNumber)

	return music.TagData{
		Title:       metadata.Title(),
		TrackNumber: trackNumber,
	}, nil
}
