package music

import "strings"

// UnknownTitle is used in place of a missing or blank title.
const UnknownTitle = "Unknown Title"

// TagData holds the metadata fields a rename needs, read from a single tag block.
type TagData struct {
	Title       string // empty when the tag has no title
	TrackNumber int    // 0 or negative when the tag has no usable track number
}

// HasTrack reports whether the tag carried a track number.
func (t TagData) HasTrack() bool {
	return t.TrackNumber > 0
}

// DisplayTitle returns the trimmed title, or UnknownTitle if nothing is left.
func (t TagData) DisplayTitle() string {
	title := strings.TrimSpace(t.Title)
	if title == "" {
		return UnknownTitle
	}
	return title
}
