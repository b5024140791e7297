package commands

import (
	"context"
	"time"

	"salon-queue/internal/domain/actor"
	"salon-queue/internal/domain/location"
	"salon-queue/internal/pkg/clock"
	"salon-queue/internal/pkg/errs"
	"salon-queue/internal/usecase/shared"

	"github.com/google/uuid"
)

type PauseInput struct {
	Reason   string
	ResumeAt *time.Time
}

type LocationCommands interface {
	Pause(ctx context.Context, act actor.Actor, locationID uuid.UUID, in PauseInput) (*location.Status, error)
	Resume(ctx context.Context, act actor.Actor, locationID uuid.UUID) (*location.Status, error)
}

type locationUseCaseImpl struct {
	uow     shared.UnitOfWork
	monitor *location.Monitor
	hooks   *Hooks
	clock   clock.Clock
}

func NewLocationUseCase(uow shared.UnitOfWork, monitor *location.Monitor, hooks *Hooks, clock clock.Clock) LocationCommands {
	return &locationUseCaseImpl{uow: uow, monitor: monitor, hooks: hooks, clock: clock}
}

func (u *locationUseCaseImpl) Pause(ctx context.Context, act actor.Actor, locationID uuid.UUID, in PauseInput) (*location.Status, error) {
	return u.update(ctx, act, locationID, func(loc *location.Location, now time.Time) error {
		return loc.PauseUntil(in.Reason, in.ResumeAt, now)
	})
}

func (u *locationUseCaseImpl) Resume(ctx context.Context, act actor.Actor, locationID uuid.UUID) (*location.Status, error) {
	return u.update(ctx, act, locationID, func(loc *location.Location, now time.Time) error {
		loc.Resume(now)
		return nil
	})
}

func (u *locationUseCaseImpl) update(ctx context.Context, act actor.Actor, locationID uuid.UUID, mutate func(*location.Location, time.Time) error) (*location.Status, error) {
	if !act.CanManage(locationID, actor.RoleOwner) {
		return nil, errs.ErrForbidden
	}
	now := u.clock.Now()

	var st location.Status
	err := u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		loc, err := tx.Locations().LockByID(ctx, locationID)
		if err != nil {
			return shared.MapRepoErr(err, errs.ErrLocationNotFound)
		}
		if err := mutate(loc, now); err != nil {
			return err
		}
		if err := tx.Locations().UpdatePause(ctx, loc); err != nil {
			return shared.MapRepoErr(err, errs.ErrLocationNotFound)
		}
		st = u.monitor.StatusAt(loc, now)
		return nil
	})
	if err != nil {
		return nil, err
	}

	u.hooks.queueChanged(ctx, locationID, now)
	return &st, nil
}
