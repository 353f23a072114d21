package renaming

import (
	"context"
	"errors"
	"log/slog"
	"path/filepath"

	"github.com/contre95/audiorename/src/music"
)

// OutcomeObserver receives every per-file result of a run.
type OutcomeObserver interface {
	Observe(outcome music.Outcome, err error)
}

// BatchJob renames every supported audio file below a root directory.
type BatchJob struct {
	service  *Service
	files    FileManager
	report   *Reporter
	observer OutcomeObserver
}

// NewBatchJob creates a new BatchJob. observer may be nil.
func NewBatchJob(service *Service, files FileManager, report *Reporter, observer OutcomeObserver) *BatchJob {
	return &BatchJob{service: service, files: files, report: report, observer: observer}
}

// Run walks root and processes each supported file in turn. A failing file is
// counted and reported, never fatal. Cancelling ctx stops the walk between files.
func (j *BatchJob) Run(ctx context.Context, root string) music.RunSummary {
	var summary music.RunSummary
	j.report.Banner(root, j.service.config.Get().Rename.DryRun)

	for path := range j.files.Walk(root) {
		if ctx.Err() != nil {
			slog.Warn("BatchJob.Run: interrupted, stopping walk", "processed", summary.Total())
			break
		}

		ext, ok := music.AudioExtension(path)
		if !ok {
			continue
		}

		outcome, err := j.service.ProcessFile(ctx, path, ext)
		if errors.Is(err, context.Canceled) {
			slog.Warn("BatchJob.Run: interrupted while processing, file not counted", "path", path)
			break
		}
		if j.observer != nil {
			j.observer.Observe(outcome, err)
		}
		if err != nil {
			summary.Errors++
			slog.Error("BatchJob.Run: could not process file", "path", path, "error", err)
			j.report.Failed(filepath.Base(path), err)
			continue
		}

		switch outcome {
		case music.Renamed:
			summary.Success++
		case music.SkippedUnchanged, music.SkippedCollision:
			summary.Skipped++
		}
	}

	slog.Info("BatchJob.Run: finished", "renamed", summary.Success, "skipped", summary.Skipped, "errors", summary.Errors)
	j.report.Summary(summary)
	return summary
}
