package queries

import (
	"context"

	"salon-queue/internal/domain/actor"
	"salon-queue/internal/pkg/clock"
	"salon-queue/internal/pkg/errs"
	"salon-queue/internal/usecase/shared"

	"github.com/google/uuid"
)

type ReservationQueries interface {
	GetByID(ctx context.Context, act actor.Actor, id uuid.UUID) (*ReservationView, error)
}

type reservationQueriesImpl struct {
	reads shared.CommandReads
	clock clock.Clock
}

func NewReservationQueries(uow shared.UnitOfWork, clk clock.Clock) ReservationQueries {
	return &reservationQueriesImpl{reads: uow.CommandReads(), clock: clk}
}

// GetByID is open to anyone holding the id unless the booking belongs to a signed-in
// customer, in which case only that customer or the location's staff may read it.
func (q *reservationQueriesImpl) GetByID(ctx context.Context, act actor.Actor, id uuid.UUID) (*ReservationView, error) {
	r, err := q.reads.ReservationByID(ctx, id)
	if err != nil {
		return nil, shared.MapRepoErr(err, errs.ErrReservationNotFound)
	}
	if owner := r.Customer().UserID(); owner != nil && *owner != act.ID && !act.CanManage(r.LocationID(), actor.RoleStaff) {
		return nil, errs.ErrReservationNotFound
	}
	return ToReservationView(r, q.clock.Now()), nil
}
