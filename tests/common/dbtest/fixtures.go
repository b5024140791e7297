//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// CreateTestLocation inserts a location open 09:00-18:00 every day.
func CreateTestLocation(t *testing.T, db DBLike, name string) uuid.UUID {
	t.Helper()
	return CreateTestLocationWithHours(t, db, name, 9*60, 18*60)
}

func CreateTestLocationWithHours(t *testing.T, db DBLike, name string, openMinute, closeMinute int) uuid.UUID {
	t.Helper()

	ctx := context.Background()
	locationID := uuid.New()
	_, err := db.Exec(ctx,
		"INSERT INTO locations (id, name, time_zone, accepts_scheduled) VALUES ($1, $2, 'UTC', true)",
		locationID, name)
	require.NoError(t, err)

	for wd := 0; wd < 7; wd++ {
		_, err := db.Exec(ctx,
			"INSERT INTO location_hours (location_id, weekday, closed, open_minute, close_minute) VALUES ($1, $2, false, $3, $4)",
			locationID, wd, openMinute, closeMinute)
		require.NoError(t, err)
	}
	return locationID
}

func CreateTestService(t *testing.T, db DBLike, locationID uuid.UUID, name string, duration time.Duration) uuid.UUID {
	t.Helper()

	serviceID := uuid.New()
	_, err := db.Exec(context.Background(),
		"INSERT INTO services (id, location_id, name, price_cents, duration_min, enabled) VALUES ($1, $2, $3, 2500, $4, true)",
		serviceID, locationID, name, int(duration/time.Minute))
	require.NoError(t, err)
	return serviceID
}

// CreateTestProvider inserts an available provider performing the given services.
func CreateTestProvider(t *testing.T, db DBLike, locationID uuid.UUID, name string, skills ...uuid.UUID) uuid.UUID {
	t.Helper()

	ctx := context.Background()
	providerID := uuid.New()
	_, err := db.Exec(ctx,
		"INSERT INTO providers (id, location_id, name, available) VALUES ($1, $2, $3, true)",
		providerID, locationID, name)
	require.NoError(t, err)

	for _, s := range skills {
		_, err := db.Exec(ctx, "INSERT INTO provider_skills (provider_id, service_id) VALUES ($1, $2)", providerID, s)
		require.NoError(t, err)
	}
	return providerID
}

// ReservationStatus reads the stored queue status; empty for an unpromoted scheduled booking.
func ReservationStatus(t *testing.T, db DBLike, id uuid.UUID) string {
	t.Helper()

	var status *string
	err := db.QueryRow(context.Background(), "SELECT queue_status FROM reservations WHERE id = $1", id).Scan(&status)
	require.NoError(t, err)
	if status == nil {
		return ""
	}
	return *status
}

func CountGreen(t *testing.T, db DBLike, providerID uuid.UUID) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(),
		"SELECT count(*) FROM reservations WHERE provider_id = $1 AND queue_status = 'GREEN'", providerID).Scan(&n)
	require.NoError(t, err)
	return n
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables except the migration ledger
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('goose_db_version')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	_, err := pool.Exec(ctx, sqlAny.(string))
	return err
}
