package music

import (
	"path/filepath"
	"strings"
)

// supportedExtensions is the fixed allow-list of audio containers, lowercase without the dot.
var supportedExtensions = map[string]bool{
	"m4a":  true,
	"mp3":  true,
	"flac": true,
	"wav":  true,
	"ogg":  true,
	"aac":  true,
	"aiff": true,
	"wma":  true,
	"ape":  true,
	"opus": true,
	"mp4":  true,
}

// SupportedExtensions returns the allow-list in display order.
func SupportedExtensions() []string {
	return []string{"m4a", "mp3", "flac", "wav", "ogg", "aac", "aiff", "wma", "ape", "opus", "mp4"}
}

// AudioExtension returns the lowercase extension of path without the leading dot
// and whether it belongs to the supported set.
func AudioExtension(path string) (string, bool) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	if ext == "" {
		return "", false
	}
	return ext, supportedExtensions[ext]
}
