package queries

import (
	"time"

	"salon-queue/internal/domain/location"
	"salon-queue/internal/domain/provider"
	"salon-queue/internal/domain/reservation"

	"github.com/google/uuid"
)

// QueueWindow bounds the rows a queue snapshot needs beyond ORANGE and GREEN.
type QueueWindow struct {
	// ExpiredSince keeps RED and EXPIRED rows whose expiry is not before it.
	ExpiredSince time.Time
	// Unpromoted scheduled rows with a slot in [ScheduledFrom, ScheduledTo].
	ScheduledFrom time.Time
	ScheduledTo   time.Time
}

// QueueData is everything a queue snapshot is derived from, loaded in one round trip.
type QueueData struct {
	Location  *location.Location
	Providers []*provider.Provider
	Active    []*reservation.Reservation
	Durations map[uuid.UUID]time.Duration
}

type LocationStatusView struct {
	LocationID       uuid.UUID  `json:"location_id"`
	State            string     `json:"state"`
	Reason           string     `json:"reason,omitempty"`
	ResumeAt         *time.Time `json:"resume_at,omitempty"`
	ClosesAt         *time.Time `json:"closes_at,omitempty"`
	RemainingSeconds int        `json:"remaining_seconds,omitempty"`
	CountdownVisible bool       `json:"countdown_visible"`
	NextOpenAt       *time.Time `json:"next_open_at,omitempty"`
}

type QueueEntryView struct {
	ReservationID    uuid.UUID  `json:"reservation_id"`
	Kind             string     `json:"kind"`
	Status           string     `json:"status"`
	ProviderID       *uuid.UUID `json:"provider_id,omitempty"`
	AssignmentStatus string     `json:"assignment_status"`
	ServiceName      string     `json:"service_name"`
	CustomerName     string     `json:"customer_name"`
	ArrivedAt        *time.Time `json:"arrived_at,omitempty"`
	ServedAt         *time.Time `json:"served_at,omitempty"`
	ExpiresAt        *time.Time `json:"expires_at,omitempty"`
}

type ProviderStatusView struct {
	ID               uuid.UUID       `json:"id"`
	Name             string          `json:"name"`
	Status           string          `json:"status"`
	RemainingMinutes int             `json:"remaining_minutes"`
	Serving          *QueueEntryView `json:"serving,omitempty"`
	Waiting          int             `json:"waiting"`
	NextWaitMinutes  int             `json:"next_wait_minutes"`
}

type WaitingEntryView struct {
	QueueEntryView
	Position int `json:"position"`
	// nil when no eligible provider could take it
	EstimatedWaitMinutes *int `json:"estimated_wait_minutes"`
}

type BookedEntryView struct {
	QueueEntryView
	RemainingGraceSeconds int  `json:"remaining_grace_seconds"`
	Expired               bool `json:"expired"`
}

type QueueStateView struct {
	LocationID  uuid.UUID            `json:"location_id"`
	GeneratedAt time.Time            `json:"generated_at"`
	Location    LocationStatusView   `json:"location"`
	Providers   []ProviderStatusView `json:"providers"`
	Waiting     []WaitingEntryView   `json:"waiting"`
	Booked      []BookedEntryView    `json:"booked"`
	PollAfter   time.Duration        `json:"-"`
}

type SlotView struct {
	Time      string    `json:"time"`
	StartsAt  time.Time `json:"starts_at"`
	Available bool      `json:"available"`
}

type EligibleProviderView struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	ActiveEntries int       `json:"active_entries"`
}

type ReservationView struct {
	ID               uuid.UUID  `json:"id"`
	LocationID       uuid.UUID  `json:"location_id"`
	ProviderID       *uuid.UUID `json:"provider_id,omitempty"`
	AssignmentStatus string     `json:"assignment_status"`
	ServiceID        uuid.UUID  `json:"service_id"`
	ServiceName      string     `json:"service_name"`
	DurationMinutes  int        `json:"duration_minutes"`
	PriceCents       int64      `json:"price_cents"`
	Kind             string     `json:"kind"`
	SlotDate         string     `json:"slot_date,omitempty"`
	SlotTime         string     `json:"slot_time,omitempty"`
	SlotAt           *time.Time `json:"slot_at,omitempty"`
	Status           string     `json:"status"`
	ExpiresAt        *time.Time `json:"expires_at,omitempty"`
	ArrivedAt        *time.Time `json:"arrived_at,omitempty"`
	ServedAt         *time.Time `json:"served_at,omitempty"`
	CompletedAt      *time.Time `json:"completed_at,omitempty"`
	CancelledAt      *time.Time `json:"cancelled_at,omitempty"`
	CustomerName     string     `json:"customer_name"`
	CustomerPhone    string     `json:"customer_phone"`
	CreatedAt        time.Time  `json:"created_at"`
}

func toEntryView(r *reservation.Reservation, now time.Time) QueueEntryView {
	return QueueEntryView{
		ReservationID:    r.ID(),
		Kind:             r.Kind().String(),
		Status:           r.StatusAt(now).String(),
		ProviderID:       r.ProviderID(),
		AssignmentStatus: r.Assignment().String(),
		ServiceName:      r.Service().Name,
		CustomerName:     r.Customer().Name(),
		ArrivedAt:        r.ArrivedAt(),
		ServedAt:         r.ServedAt(),
		ExpiresAt:        r.ExpiresAt(),
	}
}

// ToReservationView renders a reservation with its lazily evaluated status.
func ToReservationView(r *reservation.Reservation, now time.Time) *ReservationView {
	v := &ReservationView{
		ID:               r.ID(),
		LocationID:       r.LocationID(),
		ProviderID:       r.ProviderID(),
		AssignmentStatus: r.Assignment().String(),
		ServiceID:        r.Service().ServiceID,
		ServiceName:      r.Service().Name,
		DurationMinutes:  int(r.Service().Duration / time.Minute),
		PriceCents:       r.Service().PriceCents,
		Kind:             r.Kind().String(),
		Status:           r.StatusAt(now).String(),
		ExpiresAt:        r.ExpiresAt(),
		ArrivedAt:        r.ArrivedAt(),
		ServedAt:         r.ServedAt(),
		CompletedAt:      r.CompletedAt(),
		CancelledAt:      r.CancelledAt(),
		CustomerName:     r.Customer().Name(),
		CustomerPhone:    r.Customer().Phone(),
		CreatedAt:        r.CreatedAt(),
	}
	if s := r.Slot(); s != nil {
		at := s.At
		v.SlotDate = s.Date.String()
		v.SlotTime = s.Time.String()
		v.SlotAt = &at
	}
	if v.Status == "" {
		v.Status = "SCHEDULED"
	}
	return v
}

func ToStatusView(locationID uuid.UUID, st location.Status) LocationStatusView {
	return LocationStatusView{
		LocationID:       locationID,
		State:            st.State.String(),
		Reason:           st.Reason,
		ResumeAt:         st.ResumeAt,
		ClosesAt:         st.ClosesAt,
		RemainingSeconds: st.RemainingSeconds,
		CountdownVisible: st.CountdownVisible,
		NextOpenAt:       st.NextOpenAt,
	}
}

func ceilMinutes(d time.Duration) int {
	return int((d + time.Minute - 1) / time.Minute)
}
