package converter

import (
	"time"

	"salon-queue/internal/domain/hours"
	"salon-queue/internal/domain/reservation"
	"salon-queue/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

// ReservationColumns is the select list ScanReservation expects, in order.
const ReservationColumns = `r.id, r.location_id, r.provider_id, r.assignment_status,
	r.service_id, r.service_name, r.service_duration_min, r.service_price_cents,
	r.kind, r.slot_date, r.slot_minute, r.slot_at, r.queue_status,
	r.expires_at, r.arrived_at, r.served_at, r.completed_at, r.cancelled_at, r.cancelled_by,
	r.customer_name, r.customer_phone, r.customer_user_id, r.created_at, r.updated_at`

func ScanReservation(row pgx.Row) (*reservation.Reservation, error) {
	var (
		s           reservation.Snapshot
		providerID  pgtype.UUID
		durationMin int32
		slotDate    pgtype.Date
		slotMinute  pgtype.Int2
		slotAt      pgtype.Timestamptz
		status      pgtype.Text
		expiresAt   pgtype.Timestamptz
		arrivedAt   pgtype.Timestamptz
		servedAt    pgtype.Timestamptz
		completedAt pgtype.Timestamptz
		cancelledAt pgtype.Timestamptz
		cancelledBy pgtype.Text
		custName    string
		custPhone   string
		custUser    pgtype.UUID
		assignment  string
		kind        string
	)
	err := row.Scan(
		&s.ID, &s.LocationID, &providerID, &assignment,
		&s.Service.ServiceID, &s.Service.Name, &durationMin, &s.Service.PriceCents,
		&kind, &slotDate, &slotMinute, &slotAt, &status,
		&expiresAt, &arrivedAt, &servedAt, &completedAt, &cancelledAt, &cancelledBy,
		&custName, &custPhone, &custUser, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	s.ProviderID = pgconv.UUIDPtrFromPgtype(providerID)
	s.Assignment = reservation.AssignmentStatus(assignment)
	s.Service.Duration = time.Duration(durationMin) * time.Minute
	s.Kind = reservation.Kind(kind)
	if slotDate.Valid && slotMinute.Valid && slotAt.Valid {
		s.Slot = &reservation.ScheduledSlot{
			Date: hours.DateOf(slotDate.Time),
			Time: hours.TimeOfDay(slotMinute.Int16),
			At:   slotAt.Time,
		}
	}
	if status.Valid {
		s.Status = reservation.QueueStatus(status.String)
	}
	s.ExpiresAt = pgconv.TimePtrFromPgtype(expiresAt)
	s.ArrivedAt = pgconv.TimePtrFromPgtype(arrivedAt)
	s.ServedAt = pgconv.TimePtrFromPgtype(servedAt)
	s.CompletedAt = pgconv.TimePtrFromPgtype(completedAt)
	s.CancelledAt = pgconv.TimePtrFromPgtype(cancelledAt)
	if cancelledBy.Valid {
		s.CancelledBy = cancelledBy.String
	}
	s.Customer = reservation.ReconstructCustomer(custName, custPhone, pgconv.UUIDPtrFromPgtype(custUser))

	return reservation.Reconstruct(s), nil
}

func CollectReservations(rows pgx.Rows) ([]*reservation.Reservation, error) {
	defer rows.Close()
	out := make([]*reservation.Reservation, 0)
	for rows.Next() {
		r, err := ScanReservation(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// ReservationParams is the write-side column set of a reservation.
type ReservationParams struct {
	ID          uuid.UUID
	LocationID  uuid.UUID
	ProviderID  pgtype.UUID
	Assignment  string
	ServiceID   uuid.UUID
	ServiceName string
	DurationMin int32
	PriceCents  int64
	Kind        string
	SlotDate    pgtype.Date
	SlotMinute  pgtype.Int2
	SlotAt      pgtype.Timestamptz
	Status      pgtype.Text
	ExpiresAt   pgtype.Timestamptz
	ArrivedAt   pgtype.Timestamptz
	ServedAt    pgtype.Timestamptz
	CompletedAt pgtype.Timestamptz
	CancelledAt pgtype.Timestamptz
	CancelledBy pgtype.Text
	CustName    string
	CustPhone   string
	CustUser    pgtype.UUID
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func ReservationToParams(r *reservation.Reservation) ReservationParams {
	s := r.Snapshot()
	p := ReservationParams{
		ID:          s.ID,
		LocationID:  s.LocationID,
		ProviderID:  pgconv.UUIDPtrToPgtype(s.ProviderID),
		Assignment:  s.Assignment.String(),
		ServiceID:   s.Service.ServiceID,
		ServiceName: s.Service.Name,
		DurationMin: int32(s.Service.Duration / time.Minute),
		PriceCents:  s.Service.PriceCents,
		Kind:        s.Kind.String(),
		ExpiresAt:   pgconv.TimePtrToPgtype(s.ExpiresAt),
		ArrivedAt:   pgconv.TimePtrToPgtype(s.ArrivedAt),
		ServedAt:    pgconv.TimePtrToPgtype(s.ServedAt),
		CompletedAt: pgconv.TimePtrToPgtype(s.CompletedAt),
		CancelledAt: pgconv.TimePtrToPgtype(s.CancelledAt),
		CustName:    s.Customer.Name(),
		CustPhone:   s.Customer.Phone(),
		CustUser:    pgconv.UUIDPtrToPgtype(s.Customer.UserID()),
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
	if s.Slot != nil {
		p.SlotDate = pgconv.DateToPgtype(s.Slot.Date.Time())
		// #nosec G115 -- minute of day fits in int16
		p.SlotMinute = pgtype.Int2{Int16: int16(s.Slot.Time), Valid: true}
		p.SlotAt = pgtype.Timestamptz{Time: s.Slot.At, Valid: true}
	}
	if s.Status != reservation.StatusNone {
		p.Status = pgtype.Text{String: s.Status.String(), Valid: true}
	}
	if s.CancelledBy != "" {
		p.CancelledBy = pgtype.Text{String: s.CancelledBy, Valid: true}
	}
	return p
}
