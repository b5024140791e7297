package commands

import (
	"bytes"
	"context"
	"log/slog"
	"sort"

	"salon-queue/internal/domain/actor"
	"salon-queue/internal/domain/provider"
	"salon-queue/internal/domain/reservation"
	"salon-queue/internal/pkg/clock"
	"salon-queue/internal/pkg/errs"
	"salon-queue/internal/usecase/shared"

	"github.com/google/uuid"
)

type TransitionResult struct {
	ReservationID uuid.UUID
	Status        reservation.QueueStatus
	// Promoted is the booking that turned GREEN as a consequence, if any.
	Promoted *uuid.UUID
}

type PromotionResult struct {
	ProviderID uuid.UUID
	Promoted   *uuid.UUID
}

type QueueCommands interface {
	CheckIn(ctx context.Context, act actor.Actor, reservationID uuid.UUID) (*TransitionResult, error)
	Complete(ctx context.Context, act actor.Actor, reservationID uuid.UUID) (*TransitionResult, error)
	PromoteNext(ctx context.Context, act actor.Actor, providerID uuid.UUID) (*PromotionResult, error)
}

type queueUseCaseImpl struct {
	uow    shared.UnitOfWork
	policy reservation.Policy
	hooks  *Hooks
	clock  clock.Clock
	logger *slog.Logger
}

func NewQueueUseCase(
	uow shared.UnitOfWork,
	policy reservation.Policy,
	hooks *Hooks,
	clock clock.Clock,
	logger *slog.Logger,
) QueueCommands {
	return &queueUseCaseImpl{
		uow:    uow,
		policy: policy,
		hooks:  hooks,
		clock:  clock,
		logger: logger,
	}
}

func (q *queueUseCaseImpl) CheckIn(ctx context.Context, act actor.Actor, reservationID uuid.UUID) (*TransitionResult, error) {
	now := q.clock.Now()

	var (
		res      *reservation.Reservation
		promoted *reservation.Reservation
	)
	err := q.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		res, err = tx.Reservations().LockByID(ctx, reservationID)
		if err != nil {
			return shared.MapRepoErr(err, errs.ErrReservationNotFound)
		}
		if !canActOnBooking(act, res) {
			return errs.ErrForbidden
		}
		if err := res.CheckIn(q.policy, now); err != nil {
			return err
		}
		if err := tx.Reservations().Update(ctx, res); err != nil {
			return shared.MapRepoErr(err, nil)
		}

		candidates, err := q.idleCandidates(ctx, tx, res)
		if err != nil {
			return err
		}
		for _, pid := range candidates {
			promoted, err = promoteNext(ctx, tx, pid, now, false)
			if err != nil {
				return err
			}
			if promoted != nil {
				break
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	q.hooks.queueChanged(ctx, res.LocationID(), now)
	q.hooks.serving(ctx, promoted, promoteSourceCheckIn)

	out := &TransitionResult{ReservationID: res.ID(), Status: res.Status()}
	if promoted != nil {
		id := promoted.ID()
		out.Promoted = &id
		if id == res.ID() {
			out.Status = promoted.Status()
		}
	}
	return out, nil
}

// idleCandidates lists the providers worth a promotion attempt after a check-in, in id
// order so concurrent check-ins lock provider rows in the same sequence.
func (q *queueUseCaseImpl) idleCandidates(ctx context.Context, tx shared.Tx, res *reservation.Reservation) ([]uuid.UUID, error) {
	if pid := res.ProviderID(); pid != nil {
		return []uuid.UUID{*pid}, nil
	}
	providers, err := tx.Reads().ProvidersByLocation(ctx, res.LocationID())
	if err != nil {
		return nil, shared.MapRepoErr(err, nil)
	}
	ids := provider.IDs(provider.Eligible(providers, res.Service().ServiceID, nil))
	sort.Slice(ids, func(i, j int) bool { return bytes.Compare(ids[i][:], ids[j][:]) < 0 })
	return ids, nil
}

func (q *queueUseCaseImpl) Complete(ctx context.Context, act actor.Actor, reservationID uuid.UUID) (*TransitionResult, error) {
	now := q.clock.Now()

	var (
		res      *reservation.Reservation
		promoted *reservation.Reservation
	)
	err := q.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		res, err = tx.Reservations().LockByID(ctx, reservationID)
		if err != nil {
			return shared.MapRepoErr(err, errs.ErrReservationNotFound)
		}
		if !act.CanManage(res.LocationID(), actor.RoleStaff) {
			return errs.ErrForbidden
		}
		if err := res.Complete(now); err != nil {
			return err
		}
		if err := tx.Reservations().Update(ctx, res); err != nil {
			return shared.MapRepoErr(err, nil)
		}
		promoted, err = promoteNext(ctx, tx, *res.ProviderID(), now, false)
		return err
	})
	if err != nil {
		return nil, err
	}

	q.hooks.queueChanged(ctx, res.LocationID(), now)
	q.hooks.serving(ctx, promoted, promoteSourceComplete)

	out := &TransitionResult{ReservationID: res.ID(), Status: res.Status()}
	if promoted != nil {
		id := promoted.ID()
		out.Promoted = &id
	}
	return out, nil
}

func (q *queueUseCaseImpl) PromoteNext(ctx context.Context, act actor.Actor, providerID uuid.UUID) (*PromotionResult, error) {
	now := q.clock.Now()

	var (
		locationID uuid.UUID
		promoted   *reservation.Reservation
	)
	err := q.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		p, err := tx.Providers().LockByID(ctx, providerID)
		if err != nil {
			return shared.MapRepoErr(err, errs.ErrProviderNotFound)
		}
		if !act.CanManage(p.LocationID(), actor.RoleStaff) {
			return errs.ErrForbidden
		}
		locationID = p.LocationID()
		promoted, err = promoteNext(ctx, tx, p.ID(), now, true)
		return err
	})
	if err != nil {
		return nil, err
	}

	out := &PromotionResult{ProviderID: providerID}
	if promoted != nil {
		id := promoted.ID()
		out.Promoted = &id
		q.hooks.queueChanged(ctx, locationID, now)
		q.hooks.serving(ctx, promoted, promoteSourceManual)
	}
	return out, nil
}
