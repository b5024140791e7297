package repository

import (
	"context"

	"salon-queue/internal/domain/location"
	"salon-queue/internal/infra"
	"salon-queue/internal/infra/converter"
	"salon-queue/internal/infra/db"
	"salon-queue/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const lockLocationSQL = `SELECT ` + converter.LocationColumns + `
FROM locations l WHERE l.id = $1 FOR UPDATE`

const locationHoursSQL = `SELECT ` + converter.HoursColumns + `
FROM location_hours h WHERE h.location_id = $1 ORDER BY h.weekday`

const updatePauseSQL = `UPDATE locations
SET pause_reason = $2, pause_resume_at = $3, paused_at = $4, updated_at = $5
WHERE id = $1`

type LocationRepository struct {
	db db.DBTX
}

func NewLocationRepository(db db.DBTX) *LocationRepository {
	return &LocationRepository{db: db}
}

func (r *LocationRepository) LockByID(ctx context.Context, id uuid.UUID) (*location.Location, error) {
	return LoadLocation(ctx, r.db, lockLocationSQL, id)
}

func (r *LocationRepository) UpdatePause(ctx context.Context, loc *location.Location) error {
	var (
		reason   pgtype.Text
		resumeAt pgtype.Timestamptz
		pausedAt pgtype.Timestamptz
	)
	if p := loc.Pause(); p != nil {
		reason = pgtype.Text{String: p.Reason, Valid: true}
		resumeAt = pgconv.TimePtrToPgtype(p.ResumeAt)
		pausedAt = pgtype.Timestamptz{Time: p.PausedAt, Valid: true}
	}

	tag, err := r.db.Exec(ctx, updatePauseSQL, loc.ID(), reason, resumeAt, pausedAt, loc.UpdatedAt())
	if err != nil {
		return infra.WrapRepoErr("failed to update location pause", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("location not found", nil, infra.KindNotFound)
	}
	return nil
}

// LoadLocation runs a location select (plain or locking) and attaches its weekly hours.
func LoadLocation(ctx context.Context, q db.DBTX, sql string, id uuid.UUID) (*location.Location, error) {
	row, err := converter.ScanLocationRow(q.QueryRow(ctx, sql, id))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("location not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to load location", err)
	}

	rows, err := q.Query(ctx, locationHoursSQL, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load location hours", err)
	}
	week, err := converter.CollectHours(rows)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to scan location hours", err)
	}

	loc, err := converter.ToLocation(row, week)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid stored location", err)
	}
	return loc, nil
}
