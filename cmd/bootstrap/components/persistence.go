package components

import (
	"salon-queue/internal/infra/db"
	"salon-queue/internal/infra/readstore"
	"salon-queue/internal/infra/uow"
	"salon-queue/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	repositoryModule,
)

var baseOption = fx.Provide(
	NewDBTX,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		// Queue snapshot: one batched round trip per poll
		fx.Annotate(
			readstore.NewQueueReadStore,
			fx.As(new(queries.QueueStore)),
		),
	),
)

// Command-side repositories are created per transaction by the unit of work.
var repositoryModule = fx.Module("persistence/repository",
	fx.Provide(
		uow.NewPostgresUoW,
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}
