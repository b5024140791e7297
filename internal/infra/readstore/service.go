package readstore

import (
	"context"

	"salon-queue/internal/domain/catalog"
	"salon-queue/internal/infra"
	"salon-queue/internal/infra/converter"
	"salon-queue/internal/infra/db"
	"salon-queue/internal/pkg/pgconv"

	"github.com/google/uuid"
)

const serviceByIDSQL = `SELECT ` + converter.ServiceColumns + ` FROM services s WHERE s.id = $1`

type ServiceReadStore struct {
	db db.DBTX
}

func NewServiceReadStore(db db.DBTX) *ServiceReadStore {
	return &ServiceReadStore{db: db}
}

func (s *ServiceReadStore) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Service, error) {
	svc, err := converter.ScanService(s.db.QueryRow(ctx, serviceByIDSQL, id))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("service not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find service by ID", err)
	}
	return svc, nil
}
