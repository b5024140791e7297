package migrate

import (
	"context"
	"database/sql"
	"io/fs"
	"log/slog"

	"github.com/cockroachdb/errors"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

// Migrator applies the embedded goose migrations over a pgx pool.
type Migrator struct {
	db     *sql.DB
	logger *slog.Logger
}

func NewMigrator(pool *pgxpool.Pool, migrations fs.FS, logger *slog.Logger) (*Migrator, error) {
	if err := goose.SetDialect("postgres"); err != nil {
		return nil, errors.Wrap(err, "set goose dialect")
	}
	goose.SetBaseFS(migrations)
	goose.SetLogger(goose.NopLogger())

	// goose works on database/sql; this shares the pool's config, not its connections
	return &Migrator{db: stdlib.OpenDBFromPool(pool), logger: logger}, nil
}

func (m *Migrator) Up(ctx context.Context) error {
	if err := goose.UpContext(ctx, m.db, "."); err != nil {
		return errors.Wrap(err, "apply migrations")
	}
	version, err := goose.GetDBVersionContext(ctx, m.db)
	if err != nil {
		return errors.Wrap(err, "get migration version")
	}
	m.logger.Info("database migrations applied", slog.Int64("version", version))
	return nil
}

func (m *Migrator) Close() error {
	return m.db.Close()
}
