package repository

import (
	"context"

	"salon-queue/internal/domain/provider"
	"salon-queue/internal/infra"
	"salon-queue/internal/infra/converter"
	"salon-queue/internal/infra/db"
	"salon-queue/internal/pkg/pgconv"

	"github.com/google/uuid"
)

const lockProviderSQL = `SELECT ` + converter.ProviderColumns + `
FROM providers p WHERE p.id = $1 FOR UPDATE OF p`

const updateAvailabilitySQL = `UPDATE providers SET available = $2, updated_at = $3 WHERE id = $1`

type ProviderRepository struct {
	db db.DBTX
}

func NewProviderRepository(db db.DBTX) *ProviderRepository {
	return &ProviderRepository{db: db}
}

func (r *ProviderRepository) LockByID(ctx context.Context, id uuid.UUID) (*provider.Provider, error) {
	p, err := converter.ScanProvider(r.db.QueryRow(ctx, lockProviderSQL, id))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("provider not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock provider", err)
	}
	return p, nil
}

func (r *ProviderRepository) UpdateAvailability(ctx context.Context, p *provider.Provider) error {
	tag, err := r.db.Exec(ctx, updateAvailabilitySQL, p.ID(), p.Available(), p.UpdatedAt())
	if err != nil {
		return infra.WrapRepoErr("failed to update provider availability", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("provider not found", nil, infra.KindNotFound)
	}
	return nil
}
