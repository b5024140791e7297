package readstore

import (
	"context"

	"salon-queue/internal/domain/location"
	"salon-queue/internal/infra/converter"
	"salon-queue/internal/infra/db"
	"salon-queue/internal/infra/repository"

	"github.com/google/uuid"
)

const locationByIDSQL = `SELECT ` + converter.LocationColumns + ` FROM locations l WHERE l.id = $1`

type LocationReadStore struct {
	db db.DBTX
}

func NewLocationReadStore(db db.DBTX) *LocationReadStore {
	return &LocationReadStore{db: db}
}

func (s *LocationReadStore) FindByID(ctx context.Context, id uuid.UUID) (*location.Location, error) {
	return repository.LoadLocation(ctx, s.db, locationByIDSQL, id)
}
