package commands

import (
	"context"
	"log/slog"

	"salon-queue/internal/domain/reservation"
	"salon-queue/internal/pkg/clock"
	"salon-queue/internal/usecase/shared"

	"github.com/google/uuid"
)

const dueBatchSize = 200

type CompactionResult struct {
	Expired  int64
	Enqueued int
}

// MaintenanceCommands persists what reads already derive lazily. Running it late or twice
// changes nothing observable.
type MaintenanceCommands interface {
	Compact(ctx context.Context) (*CompactionResult, error)
}

type maintenanceUseCaseImpl struct {
	uow      shared.UnitOfWork
	policy   reservation.Policy
	hooks    *Hooks
	recorder shared.Recorder
	clock    clock.Clock
	logger   *slog.Logger
}

func NewMaintenanceUseCase(
	uow shared.UnitOfWork,
	policy reservation.Policy,
	hooks *Hooks,
	recorder shared.Recorder,
	clock clock.Clock,
	logger *slog.Logger,
) MaintenanceCommands {
	return &maintenanceUseCaseImpl{
		uow:      uow,
		policy:   policy,
		hooks:    hooks,
		recorder: recorder,
		clock:    clock,
		logger:   logger,
	}
}

func (m *maintenanceUseCaseImpl) Compact(ctx context.Context) (*CompactionResult, error) {
	now := m.clock.Now()

	var (
		out     CompactionResult
		touched = make(map[uuid.UUID]struct{})
	)
	err := m.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		out = CompactionResult{}
		clear(touched)

		n, err := tx.Reservations().ExpireOverdue(ctx, now)
		if err != nil {
			return shared.MapRepoErr(err, nil)
		}
		out.Expired = n

		due, err := tx.Reservations().DueScheduled(ctx, now.Add(m.policy.ScheduledLead), dueBatchSize)
		if err != nil {
			return shared.MapRepoErr(err, nil)
		}
		for _, r := range due {
			if !r.EnterQueue(m.policy, now) {
				continue
			}
			if err := tx.Reservations().Update(ctx, r); err != nil {
				return shared.MapRepoErr(err, nil)
			}
			touched[r.LocationID()] = struct{}{}
			out.Enqueued++
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if out.Expired > 0 {
		m.recorder.Expired(int(out.Expired))
	}
	for locID := range touched {
		m.hooks.queueChanged(ctx, locID, now)
	}
	if out.Expired > 0 || out.Enqueued > 0 {
		m.logger.Info("queue compaction",
			slog.Int64("expired", out.Expired),
			slog.Int("enqueued", out.Enqueued))
	}
	return &out, nil
}
