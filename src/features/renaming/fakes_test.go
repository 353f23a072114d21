package renaming

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/contre95/audiorename/src/features/config"
	"github.com/contre95/audiorename/src/infra/files"
	"github.com/contre95/audiorename/src/music"
)

// MockTagReader serves tags by file name and records every path it was asked for.
type MockTagReader struct {
	tags  map[string]music.TagData
	errs  map[string]error
	calls []string
}

func NewMockTagReader() *MockTagReader {
	return &MockTagReader{
		tags: make(map[string]music.TagData),
		errs: make(map[string]error),
	}
}

func (m *MockTagReader) ReadFileTags(ctx context.Context, filePath string) (music.TagData, error) {
	m.calls = append(m.calls, filePath)
	name := filepath.Base(filePath)
	if err, ok := m.errs[name]; ok {
		return music.TagData{}, err
	}
	if tags, ok := m.tags[name]; ok {
		return tags, nil
	}
	return music.TagData{}, music.ErrNoTag
}

// failingOrganizer is a real organizer whose renames always fail.
type failingOrganizer struct {
	*files.FileOrganizer
}

func (f failingOrganizer) RenameTrack(ctx context.Context, oldPath, newPath string) error {
	return errors.New("read-only file system")
}

type testEnv struct {
	root    string
	reader  *MockTagReader
	stdout  *bytes.Buffer
	stderr  *bytes.Buffer
	report  *Reporter
	cfg     *config.Manager
	service *Service
}

func newTestEnv(t *testing.T, fm FileManager) *testEnv {
	t.Helper()
	if fm == nil {
		fm = files.NewFileOrganizer()
	}
	env := &testEnv{
		root:   t.TempDir(),
		reader: NewMockTagReader(),
		stdout: &bytes.Buffer{},
		stderr: &bytes.Buffer{},
		cfg: config.NewManager(&config.Config{
			Logger: config.Logger{Enabled: false, Level: "info", Format: "text"},
		}),
	}
	env.report = NewReporter(env.stdout, env.stderr)
	env.service = NewService(env.reader, fm, env.cfg, env.report)
	return env
}

func (e *testEnv) touch(t *testing.T, rel, content string) string {
	t.Helper()
	path := filepath.Join(e.root, rel)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("expected %s to exist: %v", path, err)
	}
	return string(data)
}

func assertMissing(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Lstat(path); !os.IsNotExist(err) {
		t.Errorf("expected %s to be gone", path)
	}
}
