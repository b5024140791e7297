package queries

import (
	"context"

	"salon-queue/internal/domain/hours"
	"salon-queue/internal/domain/location"
	"salon-queue/internal/domain/provider"
	"salon-queue/internal/pkg/clock"
	"salon-queue/internal/pkg/errs"
	"salon-queue/internal/usecase/shared"

	"github.com/google/uuid"
)

type SlotsParams struct {
	LocationID uuid.UUID
	ServiceID  uuid.UUID
	ProviderID *uuid.UUID
	Date       hours.Date
}

type LocationQueries interface {
	Status(ctx context.Context, locationID uuid.UUID) (*LocationStatusView, error)
	Slots(ctx context.Context, p SlotsParams) ([]SlotView, error)
	EligibleProviders(ctx context.Context, locationID, serviceID uuid.UUID) ([]EligibleProviderView, error)
}

type locationQueriesImpl struct {
	reads    shared.CommandReads
	resolver *hours.Resolver
	monitor  *location.Monitor
	clock    clock.Clock
}

func NewLocationQueries(uow shared.UnitOfWork, resolver *hours.Resolver, monitor *location.Monitor, clk clock.Clock) LocationQueries {
	return &locationQueriesImpl{
		reads:    uow.CommandReads(),
		resolver: resolver,
		monitor:  monitor,
		clock:    clk,
	}
}

func (q *locationQueriesImpl) Status(ctx context.Context, locationID uuid.UUID) (*LocationStatusView, error) {
	loc, err := q.reads.LocationByID(ctx, locationID)
	if err != nil {
		return nil, shared.MapRepoErr(err, errs.ErrLocationNotFound)
	}
	v := ToStatusView(locationID, q.monitor.StatusAt(loc, q.clock.Now()))
	return &v, nil
}

func (q *locationQueriesImpl) Slots(ctx context.Context, p SlotsParams) ([]SlotView, error) {
	loc, err := q.reads.LocationByID(ctx, p.LocationID)
	if err != nil {
		return nil, shared.MapRepoErr(err, errs.ErrLocationNotFound)
	}
	svc, err := q.reads.ServiceByID(ctx, p.ServiceID)
	if err != nil {
		return nil, shared.MapRepoErr(err, errs.ErrServiceNotFound)
	}
	if svc.LocationID() != loc.ID() {
		return nil, errs.ErrServiceNotFound
	}

	now := q.clock.Now()
	if !loc.AcceptsScheduled() || !svc.Enabled() {
		return []SlotView{}, nil
	}

	providers, err := q.reads.ProvidersByLocation(ctx, loc.ID())
	if err != nil {
		return nil, shared.MapRepoErr(err, nil)
	}
	existing, err := q.reads.ScheduledBookings(ctx, loc.ID(), p.Date)
	if err != nil {
		return nil, shared.MapRepoErr(err, nil)
	}

	demand := hours.SlotDemand{Eligible: provider.IDs(provider.Eligible(providers, svc.ID(), nil)), Requested: p.ProviderID}
	slots := q.resolver.SlotsFor(loc.Calendar(), p.Date, now, existing, demand, svc.Duration())

	out := make([]SlotView, 0, len(slots))
	for _, s := range slots {
		out = append(out, SlotView{Time: s.Time.String(), StartsAt: s.StartsAt, Available: s.Available})
	}
	return out, nil
}

func (q *locationQueriesImpl) EligibleProviders(ctx context.Context, locationID, serviceID uuid.UUID) ([]EligibleProviderView, error) {
	svc, err := q.reads.ServiceByID(ctx, serviceID)
	if err != nil {
		return nil, shared.MapRepoErr(err, errs.ErrServiceNotFound)
	}
	if svc.LocationID() != locationID {
		return nil, errs.ErrServiceNotFound
	}
	providers, err := q.reads.ProvidersByLocation(ctx, locationID)
	if err != nil {
		return nil, shared.MapRepoErr(err, nil)
	}
	load, err := q.reads.ActiveLoad(ctx, locationID, q.clock.Now())
	if err != nil {
		return nil, shared.MapRepoErr(err, nil)
	}

	eligible := provider.Eligible(providers, serviceID, load)
	out := make([]EligibleProviderView, 0, len(eligible))
	for _, p := range eligible {
		out = append(out, EligibleProviderView{ID: p.ID(), Name: p.Name(), ActiveEntries: load[p.ID()]})
	}
	return out, nil
}
