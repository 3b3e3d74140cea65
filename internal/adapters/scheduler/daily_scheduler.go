// Package scheduler fires the daily forecast dispatch at a fixed local time.
package scheduler

import (
	"context"
	"time"

	"github.com/go-co-op/gocron"
	"weatherbot.app/internal/ports"
	"weatherbot.app/pkg/errors"
)

// runTimeout bounds a single dispatch run
const runTimeout = 30 * time.Minute

// DailyScheduler runs the dispatch service once a day
type DailyScheduler struct {
	scheduler *gocron.Scheduler
	service   ports.DispatchService
	atTime    string
	logger    ports.Logger

	job    *gocron.Job
	ctx    context.Context
	cancel context.CancelFunc
}

type DailySchedulerParams struct {
	Service ports.DispatchService
	Config  ports.SchedulerConfig
	Logger  ports.Logger
}

func NewDailyScheduler(params DailySchedulerParams) (*DailyScheduler, error) {
	if params.Service == nil {
		return nil, errors.NewValidationError("dispatch service is required")
	}
	if params.Logger == nil {
		return nil, errors.NewValidationError("logger is required")
	}
	if params.Config.Location == nil {
		return nil, errors.NewConfigurationError("dispatch timezone is required", nil)
	}

	s := gocron.NewScheduler(params.Config.Location)
	s.SingletonModeAll()

	return &DailyScheduler{
		scheduler: s,
		service:   params.Service,
		atTime:    params.Config.DispatchTime,
		logger:    params.Logger,
	}, nil
}

// Start registers the daily job and starts the scheduler
func (d *DailyScheduler) Start(ctx context.Context) error {
	d.ctx, d.cancel = context.WithCancel(ctx)

	job, err := d.scheduler.Every(1).Day().At(d.atTime).Do(d.run)
	if err != nil {
		d.cancel()
		return errors.NewConfigurationError("failed to schedule daily dispatch at "+d.atTime, err)
	}
	d.job = job
	d.scheduler.StartAsync()

	d.logger.Info("Daily dispatch scheduled",
		ports.F("at", d.atTime),
		ports.F("timezone", d.scheduler.Location().String()),
		ports.F("next_run", job.NextRun()))
	return nil
}

// Stop halts the scheduler and cancels a run in progress
func (d *DailyScheduler) Stop(ctx context.Context) error {
	if d.cancel != nil {
		d.cancel()
	}
	d.scheduler.Stop()
	d.logger.Info("Daily dispatch scheduler stopped")
	return nil
}

// NextRun reports when the dispatch fires next
func (d *DailyScheduler) NextRun() time.Time {
	if d.job == nil {
		return time.Time{}
	}
	return d.job.NextRun()
}

func (d *DailyScheduler) run() {
	ctx, cancel := context.WithTimeout(d.ctx, runTimeout)
	defer cancel()

	result, err := d.service.RunDaily(ctx)
	if err != nil {
		d.logger.Error("Daily dispatch finished with errors",
			ports.F("run_id", result.RunID),
			ports.F("sent", result.Sent),
			ports.F("failed", result.Failed),
			ports.F("error", err))
		return
	}

	d.logger.Info("Daily dispatch finished",
		ports.F("run_id", result.RunID),
		ports.F("sent", result.Sent))
}
