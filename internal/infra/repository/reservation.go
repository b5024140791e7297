package repository

import (
	"context"
	"time"

	"salon-queue/internal/domain/reservation"
	"salon-queue/internal/infra"
	"salon-queue/internal/infra/converter"
	"salon-queue/internal/infra/db"
	"salon-queue/internal/pkg/pgconv"

	"github.com/google/uuid"
)

const insertReservationSQL = `INSERT INTO reservations (
	id, location_id, provider_id, assignment_status,
	service_id, service_name, service_duration_min, service_price_cents,
	kind, slot_date, slot_minute, slot_at, queue_status,
	expires_at, arrived_at, served_at, completed_at, cancelled_at, cancelled_by,
	customer_name, customer_phone, customer_user_id, created_at, updated_at
) VALUES (
	$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12,
	$13, $14, $15, $16, $17, $18, $19, $20, $21, $22, $23, $24
)`

// Only lifecycle columns change after creation.
const updateReservationSQL = `UPDATE reservations SET
	provider_id = $2, assignment_status = $3, queue_status = $4,
	expires_at = $5, arrived_at = $6, served_at = $7, completed_at = $8,
	cancelled_at = $9, cancelled_by = $10, updated_at = $11
WHERE id = $1`

const lockReservationSQL = `SELECT ` + converter.ReservationColumns + `
FROM reservations r WHERE r.id = $1 FOR UPDATE`

const greenByProviderSQL = `SELECT ` + converter.ReservationColumns + `
FROM reservations r WHERE r.provider_id = $1 AND r.queue_status = 'GREEN'`

const waitingForSQL = `SELECT ` + converter.ReservationColumns + `
FROM reservations r
WHERE r.location_id = $1
  AND r.queue_status = 'ORANGE'
  AND (r.provider_id = $2
       OR (r.provider_id IS NULL
           AND EXISTS (SELECT 1 FROM provider_skills ps WHERE ps.provider_id = $2 AND ps.service_id = r.service_id)))
ORDER BY r.arrived_at, r.id
FOR UPDATE OF r`

const expireOverdueSQL = `UPDATE reservations
SET queue_status = 'EXPIRED', updated_at = $1
WHERE queue_status = 'RED' AND expires_at < $1`

const dueScheduledSQL = `SELECT ` + converter.ReservationColumns + `
FROM reservations r
WHERE r.kind = 'SCHEDULED' AND r.queue_status IS NULL AND r.slot_at <= $1
ORDER BY r.slot_at, r.id
LIMIT $2
FOR UPDATE SKIP LOCKED`

type ReservationRepository struct {
	db db.DBTX
}

func NewReservationRepository(db db.DBTX) *ReservationRepository {
	return &ReservationRepository{db: db}
}

func (r *ReservationRepository) Create(ctx context.Context, res *reservation.Reservation) error {
	p := converter.ReservationToParams(res)
	_, err := r.db.Exec(ctx, insertReservationSQL,
		p.ID, p.LocationID, p.ProviderID, p.Assignment,
		p.ServiceID, p.ServiceName, p.DurationMin, p.PriceCents,
		p.Kind, p.SlotDate, p.SlotMinute, p.SlotAt, p.Status,
		p.ExpiresAt, p.ArrivedAt, p.ServedAt, p.CompletedAt, p.CancelledAt, p.CancelledBy,
		p.CustName, p.CustPhone, p.CustUser, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create reservation", err)
	}
	return nil
}

func (r *ReservationRepository) Update(ctx context.Context, res *reservation.Reservation) error {
	p := converter.ReservationToParams(res)
	tag, err := r.db.Exec(ctx, updateReservationSQL,
		p.ID, p.ProviderID, p.Assignment, p.Status,
		p.ExpiresAt, p.ArrivedAt, p.ServedAt, p.CompletedAt,
		p.CancelledAt, p.CancelledBy, p.UpdatedAt,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update reservation", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *ReservationRepository) LockByID(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error) {
	res, err := converter.ScanReservation(r.db.QueryRow(ctx, lockReservationSQL, id))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock reservation", err)
	}
	return res, nil
}

func (r *ReservationRepository) GreenByProvider(ctx context.Context, providerID uuid.UUID) (*reservation.Reservation, error) {
	res, err := converter.ScanReservation(r.db.QueryRow(ctx, greenByProviderSQL, providerID))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, nil
		}
		return nil, infra.WrapRepoErr("failed to load serving reservation", err)
	}
	return res, nil
}

func (r *ReservationRepository) WaitingFor(ctx context.Context, locationID, providerID uuid.UUID) ([]*reservation.Reservation, error) {
	rows, err := r.db.Query(ctx, waitingForSQL, locationID, providerID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load waiting reservations", err)
	}
	out, err := converter.CollectReservations(rows)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to scan waiting reservations", err)
	}
	return out, nil
}

func (r *ReservationRepository) ExpireOverdue(ctx context.Context, now time.Time) (int64, error) {
	tag, err := r.db.Exec(ctx, expireOverdueSQL, now)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to expire overdue reservations", err)
	}
	return tag.RowsAffected(), nil
}

func (r *ReservationRepository) DueScheduled(ctx context.Context, cutoff time.Time, limit int) ([]*reservation.Reservation, error) {
	rows, err := r.db.Query(ctx, dueScheduledSQL, cutoff, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load due scheduled reservations", err)
	}
	out, err := converter.CollectReservations(rows)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to scan due scheduled reservations", err)
	}
	return out, nil
}
