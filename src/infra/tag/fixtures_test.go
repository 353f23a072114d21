package tag

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/bogem/id3v2/v2"
	"github.com/go-flac/flacvorbis"
	goflac "github.com/go-flac/go-flac"
)

// audioPadding stands in for the audio frames that follow a header tag.
var audioPadding = make([]byte, 256)

func id3v2Block(t *testing.T, title, track string) []byte {
	t.Helper()
	tag := id3v2.NewEmptyTag()
	tag.SetDefaultEncoding(id3v2.EncodingUTF8)
	if title != "" {
		tag.SetTitle(title)
	}
	if track != "" {
		tag.AddTextFrame(tag.CommonID("Track number/Position in set"), id3v2.EncodingUTF8, track)
	}
	var buf bytes.Buffer
	if _, err := tag.WriteTo(&buf); err != nil {
		t.Fatalf("failed to encode ID3v2 tag: %v", err)
	}
	return buf.Bytes()
}

func id3v1Block(title string, track byte) []byte {
	b := make([]byte, 128)
	copy(b, "TAG")
	copy(b[3:33], title)
	// Zero byte before the last comment byte marks ID3v1.1 with a track number.
	b[125] = 0
	b[126] = track
	b[127] = 255
	return b
}

func flacFile(t *testing.T, fields map[string]string) []byte {
	t.Helper()
	blocks := []*goflac.MetaDataBlock{{Type: goflac.StreamInfo, Data: make([]byte, 34)}}
	if fields != nil {
		comments := flacvorbis.New()
		for k, v := range fields {
			if err := comments.Add(k, v); err != nil {
				t.Fatalf("failed to add vorbis comment: %v", err)
			}
		}
		block := comments.Marshal()
		blocks = append(blocks, &block)
	}

	var buf bytes.Buffer
	buf.WriteString("fLaC")
	for i, block := range blocks {
		buf.Write(block.Marshal(i == len(blocks)-1))
	}
	buf.Write(audioPadding)
	return buf.Bytes()
}

func writeFile(t *testing.T, name string, parts ...[]byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, bytes.Join(parts, nil), 0o644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}
	return path
}
