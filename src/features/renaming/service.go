package renaming

import (
	"context"
	"fmt"
	"iter"
	"log/slog"
	"path/filepath"

	"github.com/contre95/audiorename/src/features/config"
	"github.com/contre95/audiorename/src/music"
)

// TagReader reads the metadata a rename is derived from.
type TagReader interface {
	ReadFileTags(ctx context.Context, filePath string) (music.TagData, error)
}

// FileManager provides the filesystem primitives of a run.
type FileManager interface {
	// Walk lazily yields the regular files below root.
	Walk(root string) iter.Seq[string]
	// Exists reports whether an entry is present at path.
	Exists(path string) bool
	// RenameTrack moves oldPath to newPath.
	RenameTrack(ctx context.Context, oldPath, newPath string) error
}

// Service is the domain service for the renaming feature.
type Service struct {
	tagReader TagReader
	files     FileManager
	config    *config.Manager
	report    *Reporter
	plan      *dryRunPlan
}

// NewService creates a new renaming service.
func NewService(tagReader TagReader, files FileManager, cfg *config.Manager, report *Reporter) *Service {
	return &Service{
		tagReader: tagReader,
		files:     files,
		config:    cfg,
		report:    report,
		plan:      newDryRunPlan(),
	}
}

// ProcessFile runs one rename cycle for the file at path, whose lowercase
// extension is ext. The outcome is only meaningful when err is nil.
func (s *Service) ProcessFile(ctx context.Context, path, ext string) (music.Outcome, error) {
	oldName, err := fileName(path)
	if err != nil {
		return 0, err
	}

	tags, err := s.tagReader.ReadFileTags(ctx, path)
	if err != nil {
		return 0, err
	}

	renameCfg := s.config.Get().Rename
	newName := CandidateName(tags, ext, renameCfg.Asciify)
	if newName == oldName {
		slog.Debug("Service.ProcessFile: name already canonical", "path", path)
		s.report.Unchanged(oldName)
		return music.SkippedUnchanged, nil
	}

	newPath := filepath.Join(filepath.Dir(path), newName)
	if s.exists(newPath, renameCfg.DryRun) {
		slog.Debug("Service.ProcessFile: target taken, leaving file alone", "path", path, "target", newPath)
		s.report.Collision(oldName, newName)
		return music.SkippedCollision, nil
	}

	if renameCfg.DryRun {
		s.plan.claim(path, newPath)
		slog.Debug("Service.ProcessFile: dry run, rename planned", "path", path, "target", newPath)
		s.report.Renamed(oldName, newName, true)
		return music.Renamed, nil
	}

	if err := s.files.RenameTrack(ctx, path, newPath); err != nil {
		return 0, fmt.Errorf("%w: %w", music.ErrRename, err)
	}
	slog.Debug("Service.ProcessFile: renamed", "path", path, "target", newPath)
	s.report.Renamed(oldName, newName, false)
	return music.Renamed, nil
}

func (s *Service) exists(path string, dryRun bool) bool {
	if dryRun {
		return s.plan.exists(path, s.files.Exists)
	}
	return s.files.Exists(path)
}

// fileName returns the final element of path.
func fileName(path string) (string, error) {
	name := filepath.Base(path)
	switch name {
	case ".", "..", string(filepath.Separator):
		return "", fmt.Errorf("%w: %q", music.ErrNoFileName, path)
	}
	return name, nil
}

// dryRunPlan tracks the renames a dry run would have performed so later
// files see the same collisions a real run would.
type dryRunPlan struct {
	claimed map[string]bool // target paths taken by planned renames
	vacated map[string]bool // source paths freed by planned renames
}

func newDryRunPlan() *dryRunPlan {
	return &dryRunPlan{
		claimed: make(map[string]bool),
		vacated: make(map[string]bool),
	}
}

func (p *dryRunPlan) claim(oldPath, newPath string) {
	p.vacated[oldPath] = true
	delete(p.vacated, newPath)
	p.claimed[newPath] = true
	delete(p.claimed, oldPath)
}

func (p *dryRunPlan) exists(path string, onDisk func(string) bool) bool {
	if p.claimed[path] {
		return true
	}
	if p.vacated[path] {
		return false
	}
	return onDisk(path)
}
