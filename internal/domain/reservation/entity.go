package reservation

import (
	"time"

	"salon-queue/internal/domain/catalog"
	"salon-queue/internal/pkg/errs"

	"github.com/google/uuid"
)

type Reservation struct {
	id          uuid.UUID
	locationID  uuid.UUID
	providerID  *uuid.UUID
	assignment  AssignmentStatus
	service     catalog.Snapshot
	kind        Kind
	slot        *ScheduledSlot
	status      QueueStatus
	expiresAt   *time.Time
	arrivedAt   *time.Time
	servedAt    *time.Time
	completedAt *time.Time
	cancelledAt *time.Time
	cancelledBy string
	customer    Customer
	createdAt   time.Time
	updatedAt   time.Time
}

type Snapshot struct {
	ID          uuid.UUID
	LocationID  uuid.UUID
	ProviderID  *uuid.UUID
	Assignment  AssignmentStatus
	Service     catalog.Snapshot
	Kind        Kind
	Slot        *ScheduledSlot
	Status      QueueStatus
	ExpiresAt   *time.Time
	ArrivedAt   *time.Time
	ServedAt    *time.Time
	CompletedAt *time.Time
	CancelledAt *time.Time
	CancelledBy string
	Customer    Customer
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func Reconstruct(s Snapshot) *Reservation {
	return &Reservation{
		id:          s.ID,
		locationID:  s.LocationID,
		providerID:  s.ProviderID,
		assignment:  s.Assignment,
		service:     s.Service,
		kind:        s.Kind,
		slot:        s.Slot,
		status:      s.Status,
		expiresAt:   s.ExpiresAt,
		arrivedAt:   s.ArrivedAt,
		servedAt:    s.ServedAt,
		completedAt: s.CompletedAt,
		cancelledAt: s.CancelledAt,
		cancelledBy: s.CancelledBy,
		customer:    s.Customer,
		createdAt:   s.CreatedAt,
		updatedAt:   s.UpdatedAt,
	}
}

func (r *Reservation) Snapshot() Snapshot {
	return Snapshot{
		ID:          r.id,
		LocationID:  r.locationID,
		ProviderID:  r.providerID,
		Assignment:  r.assignment,
		Service:     r.service,
		Kind:        r.kind,
		Slot:        r.slot,
		Status:      r.status,
		ExpiresAt:   r.expiresAt,
		ArrivedAt:   r.arrivedAt,
		ServedAt:    r.servedAt,
		CompletedAt: r.completedAt,
		CancelledAt: r.cancelledAt,
		CancelledBy: r.cancelledBy,
		Customer:    r.customer,
		CreatedAt:   r.createdAt,
		UpdatedAt:   r.updatedAt,
	}
}

func (r *Reservation) ID() uuid.UUID                { return r.id }
func (r *Reservation) LocationID() uuid.UUID        { return r.locationID }
func (r *Reservation) ProviderID() *uuid.UUID       { return r.providerID }
func (r *Reservation) Assignment() AssignmentStatus { return r.assignment }
func (r *Reservation) Service() catalog.Snapshot    { return r.service }
func (r *Reservation) Kind() Kind                   { return r.kind }
func (r *Reservation) Slot() *ScheduledSlot         { return r.slot }
func (r *Reservation) Status() QueueStatus          { return r.status }
func (r *Reservation) ExpiresAt() *time.Time        { return r.expiresAt }
func (r *Reservation) ArrivedAt() *time.Time        { return r.arrivedAt }
func (r *Reservation) ServedAt() *time.Time         { return r.servedAt }
func (r *Reservation) CompletedAt() *time.Time      { return r.completedAt }
func (r *Reservation) CancelledAt() *time.Time      { return r.cancelledAt }
func (r *Reservation) CancelledBy() string          { return r.cancelledBy }
func (r *Reservation) Customer() Customer           { return r.customer }
func (r *Reservation) CreatedAt() time.Time         { return r.createdAt }
func (r *Reservation) UpdatedAt() time.Time         { return r.updatedAt }

func (r *Reservation) IsAssignedTo(providerID uuid.UUID) bool {
	return r.providerID != nil && *r.providerID == providerID
}

// IsExpiredAt is the lazy RED expiry check. Storage may still say RED.
func (r *Reservation) IsExpiredAt(now time.Time) bool {
	return r.status == StatusRed && r.expiresAt != nil && now.After(*r.expiresAt)
}

// StatusAt is the status as readers must see it at now.
func (r *Reservation) StatusAt(now time.Time) QueueStatus {
	if r.IsExpiredAt(now) {
		return StatusExpired
	}
	return r.status
}

// RemainingGrace is the time left to check in, floored at zero.
func (r *Reservation) RemainingGrace(now time.Time) time.Duration {
	if r.status != StatusRed || r.expiresAt == nil {
		return 0
	}
	if d := r.expiresAt.Sub(now); d > 0 {
		return d
	}
	return 0
}

// RemainingService is duration minus time elapsed since service began, floored at zero.
func (r *Reservation) RemainingService(now time.Time) time.Duration {
	if r.status != StatusGreen || r.servedAt == nil {
		return 0
	}
	if d := r.service.Duration - now.Sub(*r.servedAt); d > 0 {
		return d
	}
	return 0
}

// DueForQueue reports whether an unpromoted scheduled booking has entered its lead window.
func (r *Reservation) DueForQueue(policy Policy, now time.Time) bool {
	return r.kind == KindScheduled && r.status == StatusNone && r.slot != nil &&
		!now.Before(r.slot.At.Add(-policy.ScheduledLead))
}

// EnterQueue promotes a due scheduled booking into RED with expiry at slot start plus grace.
func (r *Reservation) EnterQueue(policy Policy, now time.Time) bool {
	if !r.DueForQueue(policy, now) {
		return false
	}
	exp := r.slot.At.Add(policy.WalkinGrace)
	r.status = StatusRed
	r.expiresAt = &exp
	r.updatedAt = now
	return true
}

func (r *Reservation) CheckIn(policy Policy, now time.Time) error {
	if r.status == StatusNone {
		if !r.EnterQueue(policy, now) {
			return errs.Wrapf(errs.ErrCheckInTooEarly, "check-in opens at %s", r.slot.At.Add(-policy.ScheduledLead).Format(time.RFC3339))
		}
	}
	switch r.status {
	case StatusRed:
		if r.IsExpiredAt(now) {
			return errs.Wrapf(errs.ErrExpiredBooking, "expired at %s", r.expiresAt.Format(time.RFC3339))
		}
	case StatusOrange, StatusGreen:
		return errs.ErrAlreadyCheckedIn
	case StatusExpired:
		return errs.ErrExpiredBooking
	default:
		return errs.Wrapf(errs.ErrInvalidTransition, "check-in from %s", r.status)
	}
	r.status = StatusOrange
	r.arrivedAt = &now
	r.updatedAt = now
	return nil
}

// StartServing moves ORANGE to GREEN for providerID, assigning unassigned bookings.
func (r *Reservation) StartServing(providerID uuid.UUID, now time.Time) error {
	if r.status != StatusOrange {
		return errs.Wrapf(errs.ErrInvalidTransition, "serve from %s", r.status)
	}
	if r.providerID != nil && *r.providerID != providerID {
		return errs.Wrap(errs.ErrInvalidTransition, "booking belongs to another provider")
	}
	r.assign(providerID)
	r.status = StatusGreen
	r.servedAt = &now
	r.updatedAt = now
	return nil
}

func (r *Reservation) Complete(now time.Time) error {
	if r.status != StatusGreen {
		return errs.Wrapf(errs.ErrNotServing, "status %s", r.status)
	}
	r.status = StatusCompleted
	r.completedAt = &now
	r.updatedAt = now
	return nil
}

// Cancel moves any non-terminal booking to CANCELLED. Terminal bookings are left as they
// are and changed is false. wasServing tells the caller the provider was freed.
func (r *Reservation) Cancel(by string, now time.Time) (changed, wasServing bool) {
	if r.StatusAt(now).IsTerminal() {
		return false, false
	}
	wasServing = r.status == StatusGreen
	r.status = StatusCancelled
	r.cancelledAt = &now
	r.cancelledBy = by
	r.updatedAt = now
	return true, wasServing
}

// Expire persists a lazily observed expiry.
func (r *Reservation) Expire(now time.Time) bool {
	if !r.IsExpiredAt(now) {
		return false
	}
	r.status = StatusExpired
	r.updatedAt = now
	return true
}

func (r *Reservation) assign(providerID uuid.UUID) {
	id := providerID
	r.providerID = &id
	r.assignment = Assigned
}
