package commands

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"shop-winback/internal/pkg/clock"
	"shop-winback/internal/pkg/errs"
	"shop-winback/internal/usecase/readmodel"

	"github.com/google/uuid"
)

var (
	ErrRunInProgress = errs.ErrRunInProgress
	ErrRunnerClosed  = errs.ErrRunnerClosed
	// ErrRunFailed is marked onto errors and panics escaping a run. Check it with
	// errs.Is; the stdlib errors.Is does not see marks.
	ErrRunFailed = errs.ErrRunFailed
)

const maxStackLines = 40

//go:generate mockgen -source=runner.go -destination=../../../tests/mock/commands/runner_mock.go -package=commandsmock

// RunController is what the admin API needs from the runner.
type RunController interface {
	Start(trigger, triggeredBy string) (uuid.UUID, error)
	LastRun() (*readmodel.CampaignRunRM, bool)
}

var _ RunController = (*CampaignRunner)(nil)

// CampaignRunner is the entry point used by the scheduler and the admin API.
// At most one run is active at a time; a trigger that arrives while a run is in
// progress is rejected rather than queued. Nothing a run does escapes as a panic.
// After Shutdown no new run starts.
type CampaignRunner struct {
	campaign CampaignCommands
	metrics  CampaignMetrics
	clock    clock.Clock
	logger   *slog.Logger

	runMu sync.Mutex

	// lifeMu orders wg.Add in Start before wg.Wait in Shutdown.
	lifeMu sync.Mutex
	closed bool

	stateMu sync.RWMutex
	last    *readmodel.CampaignRunRM

	baseCtx context.Context
	cancel  context.CancelFunc
	wg      sync.WaitGroup
}

func NewCampaignRunner(campaign CampaignCommands, metrics CampaignMetrics, clock clock.Clock, logger *slog.Logger) *CampaignRunner {
	ctx, cancel := context.WithCancel(context.Background())
	return &CampaignRunner{
		campaign: campaign,
		metrics:  metrics,
		clock:    clock,
		logger:   logger,
		baseCtx:  ctx,
		cancel:   cancel,
	}
}

// RunScheduled is the parameterless job handed to the scheduler.
func (r *CampaignRunner) RunScheduled() {
	_, err := r.Trigger(r.baseCtx, readmodel.TriggerSchedule)
	switch {
	case errs.Is(err, ErrRunInProgress):
		r.logger.Warn("scheduled campaign run skipped, previous run still in progress")
	case errs.Is(err, ErrRunnerClosed):
		r.logger.Info("scheduled campaign run skipped, runner is shutting down")
	}
}

// Trigger runs the campaign synchronously. Run failures are logged and reported in the
// returned summary; the only errors returned are ErrRunInProgress and ErrRunnerClosed.
func (r *CampaignRunner) Trigger(ctx context.Context, trigger string) (*readmodel.CampaignRunRM, error) {
	if err := r.acquire(); err != nil {
		return nil, err
	}
	defer r.wg.Done()
	defer r.runMu.Unlock()

	return r.execute(ctx, uuid.New(), trigger, ""), nil
}

// Start runs the campaign in the background and returns the new run's ID.
// triggeredBy names the operator who asked for the run.
func (r *CampaignRunner) Start(trigger, triggeredBy string) (uuid.UUID, error) {
	if err := r.acquire(); err != nil {
		return uuid.Nil, err
	}

	runID := uuid.New()
	r.setLast(&readmodel.CampaignRunRM{
		ID:          runID,
		Trigger:     trigger,
		TriggeredBy: triggeredBy,
		Status:      readmodel.RunStatusRunning,
		StartedAt:   r.clock.Now(),
	})

	go func() {
		defer r.wg.Done()
		defer r.runMu.Unlock()
		r.execute(r.baseCtx, runID, trigger, triggeredBy)
	}()

	return runID, nil
}

// acquire takes the run lock and registers the run with the wait group. The caller
// releases both when the run returns.
func (r *CampaignRunner) acquire() error {
	r.lifeMu.Lock()
	defer r.lifeMu.Unlock()
	if r.closed {
		return ErrRunnerClosed
	}
	if !r.runMu.TryLock() {
		return ErrRunInProgress
	}
	r.wg.Add(1)
	return nil
}

// LastRun returns a snapshot of the most recent run, if any.
func (r *CampaignRunner) LastRun() (*readmodel.CampaignRunRM, bool) {
	r.stateMu.RLock()
	defer r.stateMu.RUnlock()
	if r.last == nil {
		return nil, false
	}
	return r.last.Clone(), true
}

// Shutdown cancels an active run and waits for background runs to return.
func (r *CampaignRunner) Shutdown(ctx context.Context) error {
	r.lifeMu.Lock()
	r.closed = true
	r.lifeMu.Unlock()
	r.cancel()

	done := make(chan struct{})
	go func() {
		r.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (r *CampaignRunner) execute(ctx context.Context, runID uuid.UUID, trigger, triggeredBy string) (report *readmodel.CampaignRunRM) {
	startedAt := r.clock.Now()
	logger := r.logger.With(slog.String("run_id", runID.String()), slog.String("trigger", trigger))
	if triggeredBy != "" {
		logger = logger.With(slog.String("triggered_by", triggeredBy))
	}

	defer func() {
		if rec := recover(); rec != nil {
			report = r.fail(ctx, logger, runID, trigger, startedAt, report, errs.FromPanic(rec))
		}
		if report != nil {
			report.TriggeredBy = triggeredBy
		}
		r.setLast(report)
	}()

	report, err := r.campaign.Run(ctx, runID, trigger)
	if err != nil {
		return r.fail(ctx, logger, runID, trigger, startedAt, report, err)
	}

	r.metrics.RecordRun(ctx, trigger, r.clock.Now().Sub(startedAt), nil)
	logger.InfoContext(ctx, "campaign run completed")
	return report
}

func (r *CampaignRunner) fail(
	ctx context.Context,
	logger *slog.Logger,
	runID uuid.UUID,
	trigger string,
	startedAt time.Time,
	report *readmodel.CampaignRunRM,
	cause error,
) *readmodel.CampaignRunRM {
	err := errs.Mark(cause, ErrRunFailed)
	logger.ErrorContext(ctx, "unhandled error during campaign run",
		slog.String("error", err.Error()),
		slog.Any("stack", errs.ExtractStackLines(err, maxStackLines)),
	)
	r.metrics.RecordRun(ctx, trigger, r.clock.Now().Sub(startedAt), err)

	if report == nil {
		report = &readmodel.CampaignRunRM{ID: runID, Trigger: trigger, StartedAt: startedAt}
	}
	finishedAt := r.clock.Now()
	msg := err.Error()
	report.FinishedAt = &finishedAt
	report.Error = &msg
	report.Status = readmodel.RunStatusFailed
	return report
}

func (r *CampaignRunner) setLast(report *readmodel.CampaignRunRM) {
	if report == nil {
		return
	}
	r.stateMu.Lock()
	defer r.stateMu.Unlock()
	r.last = report.Clone()
}
