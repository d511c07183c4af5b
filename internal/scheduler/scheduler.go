package scheduler

import (
	"context"
	"fmt"

	"log-analyzer/config"
	"log-analyzer/internal/service"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"
	"go.uber.org/fx"
)

// NewCron builds a cron instance that runs exportSvc on schedule. Schedules use
// six fields (seconds first) or descriptors such as "@every 5m".
func NewCron(schedule string, exportSvc service.ExportService) (*cron.Cron, error) {
	parser := cron.NewParser(cron.Second | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.DowOptional | cron.Descriptor)
	c := cron.New(cron.WithParser(parser))

	_, err := c.AddFunc(schedule, func() {
		if err := exportSvc.ExportChanged(context.Background()); err != nil {
			log.Error().Err(err).Msg("Error during scheduled export")
		}
	})
	if err != nil {
		return nil, fmt.Errorf("invalid export schedule %q: %w", schedule, err)
	}
	return c, nil
}

// NewScheduler registers the scheduled export with the fx lifecycle. It returns
// nil when no schedule is configured.
func NewScheduler(lc fx.Lifecycle, cfg *config.Config, exportSvc service.ExportService) (*cron.Cron, error) {
	schedule := cfg.Export.Schedule
	if schedule == "" {
		log.Info().Msg("EXPORT_SCHEDULE not set, scheduled export disabled")
		return nil, nil
	}

	c, err := NewCron(schedule, exportSvc)
	if err != nil {
		return nil, err
	}
	log.Info().Str("schedule", schedule).Strs("sources", cfg.Export.Sources).Msg("Scheduled export job")

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Msg("Starting cron scheduler")
			c.Start()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info().Msg("Stopping cron scheduler...")
			stopCtx := c.Stop()
			select {
			case <-stopCtx.Done():
				log.Info().Msg("Cron scheduler stopped gracefully.")
				return nil
			case <-ctx.Done():
				log.Error().Msg("Context cancelled while waiting for cron scheduler to stop.")
				return ctx.Err()
			}
		},
	})

	return c, nil
}
