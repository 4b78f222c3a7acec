package jobs

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"dinehub/internal/core/application/usecases/commands"
	"dinehub/internal/core/ports"

	"github.com/robfig/cron/v3"
)

// ArchiveRetentionJob manages the scheduled purge of expired archive records.
// Runs daily and removes records whose deletion time is older than the
// configured retention window.
type ArchiveRetentionJob struct {
	handler   commands.PurgeArchiveCommandHandler
	retention time.Duration
	cron      *cron.Cron
	logger    *slog.Logger
}

// NewArchiveRetentionJob creates a new job for purging expired archive records.
// Uses PurgeArchiveCommandHandler to delete everything archived before
// now minus retention.
func NewArchiveRetentionJob(
	handler commands.PurgeArchiveCommandHandler,
	retention time.Duration,
	logger *slog.Logger,
) *ArchiveRetentionJob {
	return &ArchiveRetentionJob{
		handler:   handler,
		retention: retention,
		cron:      cron.New(),
		logger:    logger.With("component", "archive_retention_job"),
	}
}

// Start begins the archive retention job to run daily at 03:00.
func (j *ArchiveRetentionJob) Start() error {
	_, err := j.cron.AddFunc("0 3 * * *", func() {
		ctx := context.Background()
		cutoff := time.Now().UTC().Add(-j.retention)

		cmd, err := commands.NewPurgeArchiveCommand(ports.ArchiveFilter{DeletedBefore: &cutoff})
		if err != nil {
			j.logger.ErrorContext(ctx, "Archive retention job failed to build command", "error", err)
			return
		}

		removed, err := j.handler.Handle(ctx, cmd)
		if err != nil {
			if !errors.Is(err, context.Canceled) {
				j.logger.ErrorContext(ctx, "Archive retention job failed", "error", err)
			}
			return
		}

		j.logger.InfoContext(ctx, "Archive retention purge completed",
			"removed", removed, "cutoff", cutoff)
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Archive retention job started (running daily)")
	return nil
}

// Stop stops the archive retention job.
func (j *ArchiveRetentionJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Archive retention job stopped")
}
