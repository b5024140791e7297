package commands

import (
	"context"
	"log/slog"
	"time"

	"salon-queue/internal/domain/actor"
	"salon-queue/internal/domain/catalog"
	"salon-queue/internal/domain/hours"
	"salon-queue/internal/domain/location"
	"salon-queue/internal/domain/provider"
	"salon-queue/internal/domain/reservation"
	"salon-queue/internal/infra"
	"salon-queue/internal/pkg/clock"
	"salon-queue/internal/pkg/errs"
	"salon-queue/internal/pkg/pgconv"
	"salon-queue/internal/usecase/shared"

	"github.com/google/uuid"
)

type CustomerInput struct {
	Name  string
	Phone string
}

type CreateScheduledInput struct {
	LocationID uuid.UUID
	ServiceID  uuid.UUID
	ProviderID *uuid.UUID
	Date       hours.Date
	Slot       hours.TimeOfDay
	Customer   CustomerInput
}

type CreateWalkinInput struct {
	LocationID uuid.UUID
	ServiceID  uuid.UUID
	ProviderID *uuid.UUID
	Customer   CustomerInput
}

type BookingResult struct {
	ReservationID uuid.UUID
	Kind          reservation.Kind
	Status        reservation.QueueStatus
	ProviderID    *uuid.UUID
	ExpiresAt     *time.Time
	SlotAt        *time.Time
}

type CancelResult struct {
	ReservationID uuid.UUID
	Status        reservation.QueueStatus
	Changed       bool
	Promoted      *uuid.UUID
}

type BookingCommands interface {
	CreateScheduled(ctx context.Context, act actor.Actor, in CreateScheduledInput) (*BookingResult, error)
	CreateWalkin(ctx context.Context, act actor.Actor, in CreateWalkinInput) (*BookingResult, error)
	Cancel(ctx context.Context, act actor.Actor, reservationID uuid.UUID) (*CancelResult, error)
}

type bookingUseCaseImpl struct {
	uow      shared.UnitOfWork
	resolver *hours.Resolver
	monitor  *location.Monitor
	policy   reservation.Policy
	hooks    *Hooks
	recorder shared.Recorder
	clock    clock.Clock
	logger   *slog.Logger
}

func NewBookingUseCase(
	uow shared.UnitOfWork,
	resolver *hours.Resolver,
	monitor *location.Monitor,
	policy reservation.Policy,
	hooks *Hooks,
	recorder shared.Recorder,
	clock clock.Clock,
	logger *slog.Logger,
) BookingCommands {
	return &bookingUseCaseImpl{
		uow:      uow,
		resolver: resolver,
		monitor:  monitor,
		policy:   policy,
		hooks:    hooks,
		recorder: recorder,
		clock:    clock,
		logger:   logger,
	}
}

func (b *bookingUseCaseImpl) CreateScheduled(ctx context.Context, act actor.Actor, in CreateScheduledInput) (*BookingResult, error) {
	customer, err := newCustomer(act, in.Customer)
	if err != nil {
		return nil, b.rejected(reservation.KindScheduled, err)
	}
	now := b.clock.Now()

	var created *reservation.Reservation
	err = b.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		loc, err := tx.Locations().LockByID(ctx, in.LocationID)
		if err != nil {
			return shared.MapRepoErr(err, errs.ErrLocationNotFound)
		}
		if !loc.AcceptsScheduled() {
			return errs.ErrSchedulingDisabled
		}
		cal := loc.Calendar()
		today := cal.Today(now)
		switch {
		case in.Date.Before(today):
			return errs.Wrapf(errs.ErrPastDate, "%s is before %s", in.Date, today)
		case in.Date == today:
			return errs.ErrSameDayScheduling
		}

		svc, err := loadService(ctx, tx.Reads(), loc.ID(), in.ServiceID)
		if err != nil {
			return err
		}
		providers, err := tx.Reads().ProvidersByLocation(ctx, loc.ID())
		if err != nil {
			return shared.MapRepoErr(err, nil)
		}
		if err := checkRequestedProvider(providers, svc.ID(), in.ProviderID); err != nil {
			return err
		}
		eligible := provider.Eligible(providers, svc.ID(), nil)
		if len(eligible) == 0 {
			return errs.ErrNoEligibleProvider
		}

		slot, ok := b.resolver.HasSlot(cal, in.Date, now, in.Slot, svc.Duration())
		if !ok {
			return errs.Wrapf(errs.ErrInvalidSlot, "%s %s", in.Date, in.Slot)
		}

		booked, err := tx.Reads().ScheduledBookings(ctx, loc.ID(), in.Date)
		if err != nil {
			return shared.MapRepoErr(err, nil)
		}
		atSlot := b.resolver.Overlapping(booked, slot.Time, svc.Duration())
		demand := hours.SlotDemand{Eligible: provider.IDs(eligible), Requested: in.ProviderID}
		if !hours.SlotAvailable(atSlot, demand) {
			return errs.Wrapf(errs.ErrSlotTaken, "%s %s", in.Date, slot.Time)
		}

		created = reservation.NewScheduled(
			loc.ID(),
			svc.Snapshot(),
			in.ProviderID,
			reservation.ScheduledSlot{Date: in.Date, Time: slot.Time, At: slot.StartsAt},
			customer,
			now,
		)
		if err := tx.Reservations().Create(ctx, created); err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) || pgconv.IsUniqueViolation(err) {
				return errs.Mark(err, errs.ErrSlotTaken)
			}
			return shared.MapRepoErr(err, nil)
		}
		return nil
	})
	if err != nil {
		return nil, b.rejected(reservation.KindScheduled, err)
	}

	b.recorder.BookingCreated(string(reservation.KindScheduled))
	b.logger.Info("scheduled booking created",
		slog.String("reservation_id", created.ID().String()),
		slog.String("location_id", created.LocationID().String()),
		slog.String("slot", created.Slot().At.Format(time.RFC3339)))
	return toBookingResult(created), nil
}

func (b *bookingUseCaseImpl) CreateWalkin(ctx context.Context, act actor.Actor, in CreateWalkinInput) (*BookingResult, error) {
	customer, err := newCustomer(act, in.Customer)
	if err != nil {
		return nil, b.rejected(reservation.KindWalkin, err)
	}
	now := b.clock.Now()

	var created *reservation.Reservation
	err = b.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		loc, err := tx.Reads().LocationByID(ctx, in.LocationID)
		if err != nil {
			return shared.MapRepoErr(err, errs.ErrLocationNotFound)
		}
		if err := b.monitor.AcceptsWalkins(b.monitor.StatusAt(loc, now)); err != nil {
			return err
		}

		svc, err := loadService(ctx, tx.Reads(), loc.ID(), in.ServiceID)
		if err != nil {
			return err
		}
		providers, err := tx.Reads().ProvidersByLocation(ctx, loc.ID())
		if err != nil {
			return shared.MapRepoErr(err, nil)
		}
		if err := checkRequestedProvider(providers, svc.ID(), in.ProviderID); err != nil {
			return err
		}
		if in.ProviderID == nil && len(provider.Eligible(providers, svc.ID(), nil)) == 0 {
			return errs.ErrNoEligibleProvider
		}

		created = reservation.NewWalkin(loc.ID(), svc.Snapshot(), in.ProviderID, customer, b.policy, now)
		if err := tx.Reservations().Create(ctx, created); err != nil {
			return shared.MapRepoErr(err, nil)
		}
		return nil
	})
	if err != nil {
		return nil, b.rejected(reservation.KindWalkin, err)
	}

	b.recorder.BookingCreated(string(reservation.KindWalkin))
	b.hooks.queueChanged(ctx, created.LocationID(), now)
	return toBookingResult(created), nil
}

func (b *bookingUseCaseImpl) Cancel(ctx context.Context, act actor.Actor, reservationID uuid.UUID) (*CancelResult, error) {
	now := b.clock.Now()

	var (
		res      *reservation.Reservation
		changed  bool
		promoted *reservation.Reservation
	)
	err := b.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		res, err = tx.Reservations().LockByID(ctx, reservationID)
		if err != nil {
			return shared.MapRepoErr(err, errs.ErrReservationNotFound)
		}
		if !canActOnBooking(act, res) {
			return errs.ErrForbidden
		}

		var wasServing bool
		changed, wasServing = res.Cancel(act.Label(), now)
		if !changed {
			return nil
		}
		if err := tx.Reservations().Update(ctx, res); err != nil {
			return shared.MapRepoErr(err, nil)
		}
		if wasServing && res.ProviderID() != nil {
			promoted, err = promoteNext(ctx, tx, *res.ProviderID(), now, false)
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	out := &CancelResult{ReservationID: res.ID(), Status: res.StatusAt(now), Changed: changed}
	if changed {
		b.hooks.queueChanged(ctx, res.LocationID(), now)
	}
	if promoted != nil {
		id := promoted.ID()
		out.Promoted = &id
		b.hooks.serving(ctx, promoted, promoteSourceCancel)
	}
	return out, nil
}

func (b *bookingUseCaseImpl) rejected(kind reservation.Kind, err error) error {
	b.recorder.BookingRejected(string(kind), errs.CodeOf(err))
	return err
}

// canActOnBooking: staff of the location, the customer who booked, or anyone holding the id of
// an anonymous booking.
func canActOnBooking(act actor.Actor, r *reservation.Reservation) bool {
	if act.CanManage(r.LocationID(), actor.RoleStaff) {
		return true
	}
	owner := r.Customer().UserID()
	if owner == nil {
		return true
	}
	return act.ID != uuid.Nil && act.ID == *owner
}

func newCustomer(act actor.Actor, in CustomerInput) (reservation.Customer, error) {
	var userID *uuid.UUID
	if act.Role == actor.RoleCustomer && act.ID != uuid.Nil {
		id := act.ID
		userID = &id
	}
	return reservation.NewCustomer(in.Name, in.Phone, userID)
}

func loadService(ctx context.Context, reads shared.CommandReads, locationID, serviceID uuid.UUID) (*catalog.Service, error) {
	svc, err := reads.ServiceByID(ctx, serviceID)
	if err != nil {
		return nil, shared.MapRepoErr(err, errs.ErrServiceNotFound)
	}
	if svc.LocationID() != locationID {
		return nil, errs.Wrapf(errs.ErrServiceNotFound, "service %s not offered at %s", serviceID, locationID)
	}
	if !svc.Enabled() {
		return nil, errs.ErrServiceDisabled
	}
	return svc, nil
}

func checkRequestedProvider(providers []*provider.Provider, serviceID uuid.UUID, requested *uuid.UUID) error {
	if requested == nil {
		return nil
	}
	p, ok := provider.Find(providers, *requested)
	if !ok {
		return errs.Wrapf(errs.ErrProviderNotFound, "provider %s", *requested)
	}
	if !p.Performs(serviceID) {
		return errs.ErrProviderNotQualified
	}
	if !p.Available() {
		return errs.ErrProviderPaused
	}
	return nil
}

func toBookingResult(r *reservation.Reservation) *BookingResult {
	out := &BookingResult{
		ReservationID: r.ID(),
		Kind:          r.Kind(),
		Status:        r.Status(),
		ProviderID:    r.ProviderID(),
		ExpiresAt:     r.ExpiresAt(),
	}
	if s := r.Slot(); s != nil {
		at := s.At
		out.SlotAt = &at
	}
	return out
}
