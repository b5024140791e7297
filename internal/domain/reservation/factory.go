package reservation

import (
	"time"

	"salon-queue/internal/domain/catalog"

	"github.com/google/uuid"
)

func NewScheduled(
	locationID uuid.UUID,
	service catalog.Snapshot,
	providerID *uuid.UUID,
	slot ScheduledSlot,
	customer Customer,
	now time.Time,
) *Reservation {
	r := newReservation(locationID, service, providerID, customer, now)
	r.kind = KindScheduled
	r.slot = &slot
	r.status = StatusNone
	return r
}

// NewWalkin creates a RED entry that must check in before now + grace.
func NewWalkin(
	locationID uuid.UUID,
	service catalog.Snapshot,
	providerID *uuid.UUID,
	customer Customer,
	policy Policy,
	now time.Time,
) *Reservation {
	r := newReservation(locationID, service, providerID, customer, now)
	exp := now.Add(policy.WalkinGrace)
	r.kind = KindWalkin
	r.status = StatusRed
	r.expiresAt = &exp
	return r
}

func newReservation(locationID uuid.UUID, service catalog.Snapshot, providerID *uuid.UUID, customer Customer, now time.Time) *Reservation {
	r := &Reservation{
		id:         uuid.New(),
		locationID: locationID,
		assignment: Unassigned,
		service:    service,
		customer:   customer,
		createdAt:  now,
		updatedAt:  now,
	}
	if providerID != nil {
		r.assign(*providerID)
	}
	return r
}
