package commands

import (
	"context"
	"time"

	"salon-queue/internal/domain/queue"
	"salon-queue/internal/domain/reservation"
	"salon-queue/internal/infra"
	"salon-queue/internal/pkg/errs"
	"salon-queue/internal/pkg/pgconv"
	"salon-queue/internal/usecase/shared"

	"github.com/google/uuid"
)

const (
	promoteSourceManual    = "manual"
	promoteSourceComplete  = "complete"
	promoteSourceCheckIn   = "checkin"
	promoteSourceReEnabled = "re_enabled"
	promoteSourceCancel    = "cancel"
)

// promoteNext locks the provider and moves its earliest ORANGE entry to GREEN.
// strict=false is used for automatic promotion: a paused or busy provider is simply skipped.
func promoteNext(ctx context.Context, tx shared.Tx, providerID uuid.UUID, now time.Time, strict bool) (*reservation.Reservation, error) {
	p, err := tx.Providers().LockByID(ctx, providerID)
	if err != nil {
		return nil, shared.MapRepoErr(err, errs.ErrProviderNotFound)
	}
	if !p.Available() {
		if strict {
			return nil, errs.ErrProviderPaused
		}
		return nil, nil
	}

	green, err := tx.Reservations().GreenByProvider(ctx, p.ID())
	if err != nil {
		return nil, shared.MapRepoErr(err, nil)
	}
	if green != nil {
		if strict {
			return nil, errs.Wrapf(errs.ErrProviderOccupied, "provider %s serving %s", p.ID(), green.ID())
		}
		return nil, nil
	}

	candidates, err := tx.Reservations().WaitingFor(ctx, p.LocationID(), p.ID())
	if err != nil {
		return nil, shared.MapRepoErr(err, nil)
	}
	next := queue.SelectNext(p, candidates)
	if next == nil {
		return nil, nil
	}

	if err := next.StartServing(p.ID(), now); err != nil {
		return nil, err
	}
	if err := tx.Reservations().Update(ctx, next); err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) || pgconv.IsUniqueViolation(err) {
			return nil, errs.Mark(err, errs.ErrProviderOccupied)
		}
		return nil, shared.MapRepoErr(err, nil)
	}
	return next, nil
}
