package bootstrap

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"shop-winback/internal/pkg/config"
	"shop-winback/internal/usecase/commands"

	"github.com/robfig/cron/v3"
	"go.uber.org/fx"
)

var SchedulerModule = fx.Module("scheduler",
	fx.Provide(
		NewScheduler,
	),
	fx.Invoke(func(*cron.Cron) {}),
)

// cronLogger adapts slog to the cron.Logger interface.
type cronLogger struct {
	logger *slog.Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...any) {
	l.logger.Debug("cron: "+msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...any) {
	l.logger.Error("cron: "+msg, append(keysAndValues, "error", err)...)
}

// NewScheduler registers the daily campaign job. A tick that fires while the previous
// run is still going is skipped, and the runner itself rejects overlapping triggers.
func NewScheduler(lc fx.Lifecycle, cfg config.Config, runner *commands.CampaignRunner, logger *slog.Logger) (*cron.Cron, error) {
	loc, err := cfg.Campaign.Location()
	if err != nil {
		return nil, err
	}

	clog := cronLogger{logger: logger.With(slog.String("component", "scheduler"))}
	c := cron.New(
		cron.WithLocation(loc),
		cron.WithLogger(clog),
		cron.WithChain(cron.Recover(clog), cron.SkipIfStillRunning(clog)),
	)

	entryID, err := c.AddFunc(cfg.Campaign.Schedule, runner.RunScheduled)
	if err != nil {
		return nil, fmt.Errorf("invalid CAMPAIGN_SCHEDULE %q: %w", cfg.Campaign.Schedule, err)
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			c.Start()
			logger.InfoContext(ctx, "campaign scheduler started",
				slog.String("schedule", cfg.Campaign.Schedule),
				slog.String("timezone", loc.String()),
				slog.Time("next_run", c.Entry(entryID).Schedule.Next(time.Now().In(loc))),
			)
			return nil
		},
		OnStop: func(ctx context.Context) error {
			stopped := c.Stop()
			if err := runner.Shutdown(ctx); err != nil {
				logger.WarnContext(ctx, "campaign runner did not stop in time", slog.String("error", err.Error()))
			}
			select {
			case <-stopped.Done():
			case <-ctx.Done():
			}
			logger.InfoContext(ctx, "campaign scheduler stopped")
			return nil
		},
	})

	return c, nil
}
