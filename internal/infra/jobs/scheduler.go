package jobs

import (
	"context"
	"log/slog"
	"time"

	"salon-queue/internal/pkg/errs"
	"salon-queue/internal/usecase/commands"

	"github.com/go-co-op/gocron/v2"
)

const compactionJobName = "queue-compaction"

// Scheduler runs the background passes. They only persist what reads already derive,
// so a missed or doubled run is harmless.
type Scheduler struct {
	sched       gocron.Scheduler
	maintenance commands.MaintenanceCommands
	interval    time.Duration
	timeout     time.Duration
	logger      *slog.Logger
}

func NewScheduler(maintenance commands.MaintenanceCommands, interval time.Duration, logger *slog.Logger) (*Scheduler, error) {
	sched, err := gocron.NewScheduler(gocron.WithLogger(gocronLogger{logger}))
	if err != nil {
		return nil, errs.Wrap(err, "create scheduler")
	}
	if interval <= 0 {
		interval = time.Minute
	}
	return &Scheduler{
		sched:       sched,
		maintenance: maintenance,
		interval:    interval,
		timeout:     interval,
		logger:      logger,
	}, nil
}

func (s *Scheduler) Start() error {
	_, err := s.sched.NewJob(
		gocron.DurationJob(s.interval),
		gocron.NewTask(s.compact),
		gocron.WithName(compactionJobName),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
		gocron.WithStartAt(gocron.WithStartImmediately()),
	)
	if err != nil {
		return errs.Wrap(err, "register compaction job")
	}
	s.sched.Start()
	s.logger.Info("background jobs started", slog.Duration("compaction_interval", s.interval))
	return nil
}

func (s *Scheduler) Shutdown() error {
	return s.sched.Shutdown()
}

func (s *Scheduler) compact() {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	if _, err := s.maintenance.Compact(ctx); err != nil {
		s.logger.Error("queue compaction failed", slog.Any("error", err))
	}
}

type gocronLogger struct {
	l *slog.Logger
}

func (g gocronLogger) Debug(msg string, args ...any) { g.l.Debug(msg, args...) }
func (g gocronLogger) Error(msg string, args ...any) { g.l.Error(msg, args...) }
func (g gocronLogger) Info(msg string, args ...any)  { g.l.Debug(msg, args...) }
func (g gocronLogger) Warn(msg string, args ...any)  { g.l.Warn(msg, args...) }
