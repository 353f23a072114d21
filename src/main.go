package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"github.com/contre95/audiorename/src/features/config"
	"github.com/contre95/audiorename/src/features/logging"
	"github.com/contre95/audiorename/src/features/metrics"
	"github.com/contre95/audiorename/src/features/renaming"
	"github.com/contre95/audiorename/src/infra/files"
	"github.com/contre95/audiorename/src/infra/tag"
)

func main() {
	root, err := os.Getwd()
	if err != nil {
		log.Fatalf("cannot determine working directory: %v", err)
	}

	// Load configuration
	cfgManager, err := config.Load(config.ResolvePath(root))
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	// Setup default logger with slog
	logger, runID := logging.WithRun(logging.SetupLogger(cfgManager))
	slog.SetDefault(logger)
	slog.Debug("Effective configuration", "config", cfgManager.GetYAML())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	fileOrganizer := files.NewFileOrganizer()
	tagReader := tag.NewTagReader()
	recorder := metrics.NewRecorder()
	report := renaming.NewReporter(os.Stdout, os.Stderr)

	renamingService := renaming.NewService(tagReader, fileOrganizer, cfgManager, report)
	batchJob := renaming.NewBatchJob(renamingService, fileOrganizer, report, recorder)

	summary := batchJob.Run(ctx, root)
	recorder.Finish(time.Now())

	if path := cfgManager.Get().Metrics.TextfilePath; path != "" {
		if err := recorder.WriteTextfile(path); err != nil {
			slog.Error("Failed to write metrics textfile", "path", path, "error", err)
		} else {
			slog.Debug("Metrics textfile written", "path", path)
		}
	}

	// Per-file failures are reported above and never change the exit status.
	slog.Info("Run complete", "run_id", runID, "total", summary.Total())
}
