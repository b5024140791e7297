package readstore

import (
	"context"
	"time"

	"salon-queue/internal/domain/provider"
	"salon-queue/internal/infra"
	"salon-queue/internal/infra/converter"
	"salon-queue/internal/infra/db"

	"github.com/google/uuid"
)

const providersByLocationSQL = `SELECT ` + converter.ProviderColumns + `
FROM providers p WHERE p.location_id = $1 ORDER BY p.id`

// lazily expired RED rows do not count as load
const activeLoadSQL = `SELECT r.provider_id, count(*)
FROM reservations r
WHERE r.location_id = $1
  AND r.provider_id IS NOT NULL
  AND (r.queue_status IN ('ORANGE', 'GREEN') OR (r.queue_status = 'RED' AND r.expires_at >= $2))
GROUP BY r.provider_id`

type ProviderReadStore struct {
	db db.DBTX
}

func NewProviderReadStore(db db.DBTX) *ProviderReadStore {
	return &ProviderReadStore{db: db}
}

func (s *ProviderReadStore) ListByLocation(ctx context.Context, locationID uuid.UUID) ([]*provider.Provider, error) {
	rows, err := s.db.Query(ctx, providersByLocationSQL, locationID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list providers", err)
	}
	out, err := converter.CollectProviders(rows)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to scan providers", err)
	}
	return out, nil
}

func (s *ProviderReadStore) ActiveLoad(ctx context.Context, locationID uuid.UUID, now time.Time) (map[uuid.UUID]int, error) {
	rows, err := s.db.Query(ctx, activeLoadSQL, locationID, now)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to count active entries", err)
	}
	defer rows.Close()

	load := make(map[uuid.UUID]int)
	for rows.Next() {
		var (
			id    uuid.UUID
			count int64
		)
		if err := rows.Scan(&id, &count); err != nil {
			return nil, infra.WrapRepoErr("failed to scan active entries", err)
		}
		load[id] = int(count)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to count active entries", err)
	}
	return load, nil
}
