package readstore

import (
	"context"
	"time"

	"salon-queue/internal/infra"
	"salon-queue/internal/infra/converter"
	"salon-queue/internal/infra/db"
	"salon-queue/internal/pkg/pgconv"
	"salon-queue/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const queueHoursSQL = `SELECT ` + converter.HoursColumns + `
FROM location_hours h WHERE h.location_id = $1 ORDER BY h.weekday`

const queueActiveSQL = `SELECT ` + converter.ReservationColumns + `
FROM reservations r
WHERE r.location_id = $1
  AND (r.queue_status IN ('ORANGE', 'GREEN')
    OR (r.queue_status IN ('RED', 'EXPIRED') AND r.expires_at >= $2)
    OR (r.kind = 'SCHEDULED' AND r.queue_status IS NULL AND r.slot_at BETWEEN $3 AND $4))
ORDER BY r.created_at, r.id`

const queueDurationsSQL = `SELECT s.id, s.duration_min FROM services s WHERE s.location_id = $1`

// QueueReadStore loads a whole queue snapshot in a single batched round trip.
type QueueReadStore struct {
	db db.DBTX
}

func NewQueueReadStore(db db.DBTX) *QueueReadStore {
	return &QueueReadStore{db: db}
}

func (s *QueueReadStore) LoadQueue(ctx context.Context, locationID uuid.UUID, window queries.QueueWindow) (*queries.QueueData, error) {
	batch := &pgx.Batch{}
	batch.Queue(locationByIDSQL, locationID)
	batch.Queue(queueHoursSQL, locationID)
	batch.Queue(providersByLocationSQL, locationID)
	batch.Queue(queueActiveSQL, locationID, window.ExpiredSince, window.ScheduledFrom, window.ScheduledTo)
	batch.Queue(queueDurationsSQL, locationID)

	br := s.db.SendBatch(ctx, batch)
	defer br.Close()

	locRow, err := converter.ScanLocationRow(br.QueryRow())
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("location not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to load location", err)
	}

	rows, err := br.Query()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load location hours", err)
	}
	week, err := converter.CollectHours(rows)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to scan location hours", err)
	}
	loc, err := converter.ToLocation(locRow, week)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid stored location", err)
	}

	rows, err = br.Query()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list providers", err)
	}
	providers, err := converter.CollectProviders(rows)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to scan providers", err)
	}

	rows, err = br.Query()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load active reservations", err)
	}
	active, err := converter.CollectReservations(rows)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to scan active reservations", err)
	}

	rows, err = br.Query()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load service durations", err)
	}
	defer rows.Close()
	durations := make(map[uuid.UUID]time.Duration)
	for rows.Next() {
		var (
			id      uuid.UUID
			minutes int32
		)
		if err := rows.Scan(&id, &minutes); err != nil {
			return nil, infra.WrapRepoErr("failed to scan service durations", err)
		}
		durations[id] = time.Duration(minutes) * time.Minute
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to load service durations", err)
	}

	return &queries.QueueData{
		Location:  loc,
		Providers: providers,
		Active:    active,
		Durations: durations,
	}, nil
}
