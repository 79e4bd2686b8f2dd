package scheduler

import (
	"context"
	"fmt"
	"time"

	"homework_status_bot/internal/app"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

// Every cycle gets its own bounded context so a hung fetch or send cannot
// stall the loop past the next scheduled run.
const cycleTimeout = 1 * time.Minute

// cronLogger adapts the application logger to the cron.Logger interface.
type cronLogger struct {
	logger *logrus.Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...interface{}) {
	l.logger.Debugf("cron: %s %v", msg, keysAndValues)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	l.logger.Errorf("cron: %s: %v %v", msg, err, keysAndValues)
}

// pollJob adapts the poller's cycle boundary to cron.Job.
type pollJob struct {
	poller *app.Poller
}

func (j pollJob) Run() {
	ctx, cancel := context.WithTimeout(context.Background(), cycleTimeout)
	defer cancel()
	j.poller.Job(ctx)
}

// PollScheduler runs the poll cycle on a fixed interval. A cycle that is still
// running when the next tick arrives is skipped rather than stacked, and a
// panicking cycle is recovered and logged, so the schedule holds whether a
// cycle succeeds or fails.
type PollScheduler struct {
	cronEngine *cron.Cron
	job        cron.Job
	interval   time.Duration
	logger     *logrus.Logger
}

func NewPollScheduler(poller *app.Poller, interval time.Duration, logger *logrus.Logger) *PollScheduler {
	cl := cronLogger{logger: logger}
	// The job is wrapped once and shared between the schedule and the
	// immediate first run, so SkipIfStillRunning guards both.
	job := cron.NewChain(
		cron.SkipIfStillRunning(cl),
		cron.Recover(cl),
	).Then(pollJob{poller: poller})

	return &PollScheduler{
		cronEngine: cron.New(cron.WithLocation(time.Local)),
		job:        job,
		interval:   interval,
		logger:     logger,
	}
}

// Start registers the poll job and launches the schedule. The first cycle runs
// right away instead of waiting a full interval.
func (s *PollScheduler) Start() error {
	spec := fmt.Sprintf("@every %s", s.interval)
	if _, err := s.cronEngine.AddJob(spec, s.job); err != nil {
		return fmt.Errorf("could not schedule poll job: %w", err)
	}

	s.cronEngine.Start()
	go s.job.Run()

	s.logger.Infof("Poll scheduler started, interval %s", s.interval)
	return nil
}

// Stop halts the schedule and waits for a running cycle to finish.
func (s *PollScheduler) Stop() {
	s.logger.Info("Stopping poll scheduler...")
	ctx := s.cronEngine.Stop() // Stops the scheduler from firing new jobs, waits for running jobs.
	<-ctx.Done()               // Wait for graceful shutdown
	s.logger.Info("Poll scheduler gracefully stopped.")
}
