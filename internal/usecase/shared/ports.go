package shared

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// ServingEvent is emitted after a booking turns GREEN.
type ServingEvent struct {
	ReservationID uuid.UUID
	LocationID    uuid.UUID
	ProviderID    uuid.UUID
	CustomerName  string
	CustomerPhone string
	CustomerUser  *uuid.UUID
	ServiceName   string
	ServedAt      time.Time
}

// ServingNotifier is called best-effort; a failure never undoes the transition.
type ServingNotifier interface {
	NotifyServing(ctx context.Context, ev ServingEvent) error
}

// ChangeFeed records queue changes per location so pollers can back off when quiet.
type ChangeFeed interface {
	Touch(ctx context.Context, locationID uuid.UUID, at time.Time) error
	LastChange(ctx context.Context, locationID uuid.UUID) (time.Time, bool, error)
}

// Recorder receives domain counters.
type Recorder interface {
	BookingCreated(kind string)
	BookingRejected(kind, code string)
	Promoted(source string)
	Expired(n int)
	NotifyFailed()
}
