package commands

import (
	"context"
	"log/slog"

	"salon-queue/internal/domain/actor"
	"salon-queue/internal/domain/reservation"
	"salon-queue/internal/pkg/clock"
	"salon-queue/internal/pkg/errs"
	"salon-queue/internal/usecase/shared"

	"github.com/google/uuid"
)

type AvailabilityResult struct {
	ProviderID uuid.UUID
	Available  bool
	Changed    bool
	Promoted   *uuid.UUID
}

type ProviderCommands interface {
	SetAvailability(ctx context.Context, act actor.Actor, providerID uuid.UUID, available bool) (*AvailabilityResult, error)
}

type providerUseCaseImpl struct {
	uow    shared.UnitOfWork
	hooks  *Hooks
	clock  clock.Clock
	logger *slog.Logger
}

func NewProviderUseCase(uow shared.UnitOfWork, hooks *Hooks, clock clock.Clock, logger *slog.Logger) ProviderCommands {
	return &providerUseCaseImpl{uow: uow, hooks: hooks, clock: clock, logger: logger}
}

// SetAvailability toggles the provider. A GREEN booking in progress is left alone when
// pausing; re-enabling tries to promote the next waiting entry.
func (u *providerUseCaseImpl) SetAvailability(ctx context.Context, act actor.Actor, providerID uuid.UUID, available bool) (*AvailabilityResult, error) {
	now := u.clock.Now()

	var (
		locationID uuid.UUID
		changed    bool
		promoted   *reservation.Reservation
	)
	err := u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		p, err := tx.Providers().LockByID(ctx, providerID)
		if err != nil {
			return shared.MapRepoErr(err, errs.ErrProviderNotFound)
		}
		if !act.CanManage(p.LocationID(), actor.RoleOwner) {
			return errs.ErrForbidden
		}
		locationID = p.LocationID()

		changed = p.SetAvailability(available, now)
		if !changed {
			return nil
		}
		if err := tx.Providers().UpdateAvailability(ctx, p); err != nil {
			return shared.MapRepoErr(err, errs.ErrProviderNotFound)
		}
		if available {
			promoted, err = promoteNext(ctx, tx, p.ID(), now, false)
		}
		return err
	})
	if err != nil {
		return nil, err
	}

	out := &AvailabilityResult{ProviderID: providerID, Available: available, Changed: changed}
	if changed {
		u.logger.Info("provider availability changed",
			slog.String("provider_id", providerID.String()),
			slog.Bool("available", available))
		u.hooks.queueChanged(ctx, locationID, now)
	}
	if promoted != nil {
		id := promoted.ID()
		out.Promoted = &id
		u.hooks.serving(ctx, promoted, promoteSourceReEnabled)
	}
	return out, nil
}
