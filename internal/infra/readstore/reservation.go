package readstore

import (
	"context"
	"time"

	"salon-queue/internal/domain/hours"
	"salon-queue/internal/domain/reservation"
	"salon-queue/internal/infra"
	"salon-queue/internal/infra/converter"
	"salon-queue/internal/infra/db"
	"salon-queue/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const reservationByIDSQL = `SELECT ` + converter.ReservationColumns + ` FROM reservations r WHERE r.id = $1`

const scheduledBookingsSQL = `SELECT r.slot_minute, r.provider_id, r.service_duration_min
FROM reservations r
WHERE r.location_id = $1
  AND r.slot_date = $2
  AND r.kind = 'SCHEDULED'
  AND r.queue_status IS DISTINCT FROM 'CANCELLED'`

type ReservationReadStore struct {
	db db.DBTX
}

func NewReservationReadStore(db db.DBTX) *ReservationReadStore {
	return &ReservationReadStore{db: db}
}

func (s *ReservationReadStore) FindByID(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error) {
	r, err := converter.ScanReservation(s.db.QueryRow(ctx, reservationByIDSQL, id))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find reservation by ID", err)
	}
	return r, nil
}

func (s *ReservationReadStore) ScheduledBookings(ctx context.Context, locationID uuid.UUID, date hours.Date) ([]hours.SlotBooking, error) {
	rows, err := s.db.Query(ctx, scheduledBookingsSQL, locationID, pgconv.DateToPgtype(date.Time()))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load scheduled bookings", err)
	}
	defer rows.Close()

	out := make([]hours.SlotBooking, 0)
	for rows.Next() {
		var (
			minute     int16
			providerID pgtype.UUID
			duration   int32
		)
		if err := rows.Scan(&minute, &providerID, &duration); err != nil {
			return nil, infra.WrapRepoErr("failed to scan scheduled booking", err)
		}
		out = append(out, hours.SlotBooking{
			Slot:       hours.TimeOfDay(minute),
			ProviderID: pgconv.UUIDPtrFromPgtype(providerID),
			Duration:   time.Duration(duration) * time.Minute,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to load scheduled bookings", err)
	}
	return out, nil
}
