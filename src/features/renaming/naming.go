package renaming

import (
	"fmt"
	"strings"

	"github.com/contre95/audiorename/src/music"
	"github.com/gosimple/unidecode"
)

// All replaced characters are single bytes, so the replacer never touches
// the surrounding UTF-8.
var filenameReplacer = strings.NewReplacer(
	"/", "_",
	":", "_",
	"?", "_",
	"*", "_",
	`\`, "_",
	"<", "_",
	">", "_",
	"|", "_",
	`"`, "_",
)

// SanitizeFilename replaces characters that are illegal in file names on common
// filesystems with an underscore. The result has the same length as name.
func SanitizeFilename(name string) string {
	return filenameReplacer.Replace(name)
}

// SynthesizeFilename builds "NN - Title.ext", or "Title.ext" when the tag has no track number.
func SynthesizeFilename(tags music.TagData, ext string) string {
	if tags.HasTrack() {
		return fmt.Sprintf("%02d - %s.%s", tags.TrackNumber, tags.DisplayTitle(), ext)
	}
	return fmt.Sprintf("%s.%s", tags.DisplayTitle(), ext)
}

// CandidateName returns the sanitized file name a track should carry.
// With asciify set the title is transliterated first.
func CandidateName(tags music.TagData, ext string, asciify bool) string {
	if asciify {
		tags.Title = unidecode.Unidecode(tags.Title)
	}
	return SanitizeFilename(SynthesizeFilename(tags, ext))
}
