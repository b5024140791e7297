package shared

import (
	"context"
	"time"

	"salon-queue/internal/domain/catalog"
	"salon-queue/internal/domain/hours"
	"salon-queue/internal/domain/location"
	"salon-queue/internal/domain/provider"
	"salon-queue/internal/domain/reservation"
	"salon-queue/internal/infra/db"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db db.DBTX) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db db.DBTX) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Locations() LocationRepository
	Providers() ProviderRepository
	Reservations() ReservationRepository
	Reads() CommandReads
	DB() db.DBTX
}

// CommandReads loads what commands validate against. Inside a Tx it reads through the tx.
type CommandReads interface {
	LocationByID(ctx context.Context, id uuid.UUID) (*location.Location, error)
	ServiceByID(ctx context.Context, id uuid.UUID) (*catalog.Service, error)
	ProvidersByLocation(ctx context.Context, locationID uuid.UUID) ([]*provider.Provider, error)
	ActiveLoad(ctx context.Context, locationID uuid.UUID, now time.Time) (map[uuid.UUID]int, error)
	ScheduledBookings(ctx context.Context, locationID uuid.UUID, date hours.Date) ([]hours.SlotBooking, error)
	ReservationByID(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error)
}

type LocationRepository interface {
	// LockByID takes the location row lock serialising scheduled bookings of that location.
	LockByID(ctx context.Context, id uuid.UUID) (*location.Location, error)
	UpdatePause(ctx context.Context, loc *location.Location) error
}

type ProviderRepository interface {
	// LockByID takes the provider row lock serialising GREEN assignment.
	LockByID(ctx context.Context, id uuid.UUID) (*provider.Provider, error)
	UpdateAvailability(ctx context.Context, p *provider.Provider) error
}

type ReservationRepository interface {
	Create(ctx context.Context, r *reservation.Reservation) error
	Update(ctx context.Context, r *reservation.Reservation) error
	LockByID(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error)
	// GreenByProvider returns nil when the provider is idle.
	GreenByProvider(ctx context.Context, providerID uuid.UUID) (*reservation.Reservation, error)
	// WaitingFor returns ORANGE entries the provider could serve: assigned to it or unassigned.
	WaitingFor(ctx context.Context, locationID, providerID uuid.UUID) ([]*reservation.Reservation, error)
	// ExpireOverdue persists EXPIRED for RED rows past expiry and returns the count.
	ExpireOverdue(ctx context.Context, now time.Time) (int64, error)
	// DueScheduled locks unpromoted scheduled rows whose slot starts before cutoff.
	DueScheduled(ctx context.Context, cutoff time.Time, limit int) ([]*reservation.Reservation, error)
}
