package response

import (
	"time"

	"salon-queue/internal/usecase/commands"
	"salon-queue/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingResponse struct {
	ID         uuid.UUID  `json:"id"`
	Kind       string     `json:"kind"`
	Status     string     `json:"status"`
	ProviderID *uuid.UUID `json:"provider_id,omitempty"`
	ExpiresAt  *time.Time `json:"expires_at,omitempty"`
	SlotAt     *time.Time `json:"slot_at,omitempty"`
}

func FromBookingResult(r *commands.BookingResult) *BookingResponse {
	status := r.Status.String()
	if status == "" {
		status = "SCHEDULED"
	}
	return &BookingResponse{
		ID:         r.ReservationID,
		Kind:       r.Kind.String(),
		Status:     status,
		ProviderID: r.ProviderID,
		ExpiresAt:  r.ExpiresAt,
		SlotAt:     r.SlotAt,
	}
}

type TransitionResponse struct {
	ID       uuid.UUID  `json:"id"`
	Status   string     `json:"status"`
	Changed  *bool      `json:"changed,omitempty"`
	Promoted *uuid.UUID `json:"promoted_reservation_id,omitempty"`
}

func FromTransition(r *commands.TransitionResult) *TransitionResponse {
	return &TransitionResponse{ID: r.ReservationID, Status: r.Status.String(), Promoted: r.Promoted}
}

func FromCancel(r *commands.CancelResult) *TransitionResponse {
	changed := r.Changed
	return &TransitionResponse{ID: r.ReservationID, Status: r.Status.String(), Changed: &changed, Promoted: r.Promoted}
}

type ReservationResponse = queries.ReservationView
