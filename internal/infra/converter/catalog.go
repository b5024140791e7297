package converter

import (
	"time"

	"salon-queue/internal/domain/catalog"
	"salon-queue/internal/domain/hours"
	"salon-queue/internal/domain/location"
	"salon-queue/internal/domain/provider"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const ServiceColumns = `s.id, s.location_id, s.name, s.price_cents, s.duration_min, s.enabled, s.genders`

func ScanService(row pgx.Row) (*catalog.Service, error) {
	var (
		id, locationID uuid.UUID
		name           string
		priceCents     int64
		durationMin    int32
		enabled        bool
		genders        []string
	)
	if err := row.Scan(&id, &locationID, &name, &priceCents, &durationMin, &enabled, &genders); err != nil {
		return nil, err
	}
	tags := make([]catalog.Gender, 0, len(genders))
	for _, g := range genders {
		tags = append(tags, catalog.Gender(g))
	}
	return catalog.ReconstructService(id, locationID, name, priceCents, time.Duration(durationMin)*time.Minute, enabled, tags), nil
}

// ProviderColumns aggregates skills so one row carries the whole provider.
const ProviderColumns = `p.id, p.location_id, p.name, p.available, p.updated_at,
	COALESCE((SELECT array_agg(ps.service_id ORDER BY ps.service_id) FROM provider_skills ps WHERE ps.provider_id = p.id), '{}')`

func ScanProvider(row pgx.Row) (*provider.Provider, error) {
	var (
		id, locationID uuid.UUID
		name           string
		available      bool
		updatedAt      time.Time
		skills         []uuid.UUID
	)
	if err := row.Scan(&id, &locationID, &name, &available, &updatedAt, &skills); err != nil {
		return nil, err
	}
	return provider.ReconstructProvider(id, locationID, name, skills, available, updatedAt), nil
}

func CollectProviders(rows pgx.Rows) ([]*provider.Provider, error) {
	defer rows.Close()
	out := make([]*provider.Provider, 0)
	for rows.Next() {
		p, err := ScanProvider(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

const LocationColumns = `l.id, l.name, l.time_zone, l.accepts_scheduled,
	l.pause_reason, l.pause_resume_at, l.paused_at, l.created_at, l.updated_at`

// LocationRow is a location without its weekly hours, which come from a second query.
type LocationRow struct {
	ID               uuid.UUID
	Name             string
	TimeZone         string
	AcceptsScheduled bool
	PauseReason      pgtype.Text
	PauseResumeAt    pgtype.Timestamptz
	PausedAt         pgtype.Timestamptz
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

func ScanLocationRow(row pgx.Row) (LocationRow, error) {
	var l LocationRow
	err := row.Scan(&l.ID, &l.Name, &l.TimeZone, &l.AcceptsScheduled,
		&l.PauseReason, &l.PauseResumeAt, &l.PausedAt, &l.CreatedAt, &l.UpdatedAt)
	return l, err
}

const HoursColumns = `h.weekday, h.closed, h.open_minute, h.close_minute`

func CollectHours(rows pgx.Rows) (hours.WeeklyHours, error) {
	defer rows.Close()
	week := hours.WeeklyHours{}
	for rows.Next() {
		var (
			weekday     int16
			closed      bool
			open, close pgtype.Int2
		)
		if err := rows.Scan(&weekday, &closed, &open, &close); err != nil {
			return nil, err
		}
		if closed {
			week[time.Weekday(weekday)] = hours.ClosedDay()
			continue
		}
		week[time.Weekday(weekday)] = hours.DayHours{
			Open:  hours.TimeOfDay(open.Int16),
			Close: hours.TimeOfDay(close.Int16),
		}
	}
	return week, rows.Err()
}

func ToLocation(l LocationRow, week hours.WeeklyHours) (*location.Location, error) {
	zone, err := location.LoadZone(l.TimeZone)
	if err != nil {
		return nil, err
	}
	var pause *location.Pause
	if l.PausedAt.Valid {
		pause = &location.Pause{
			PausedAt: l.PausedAt.Time,
		}
		if l.PauseReason.Valid {
			pause.Reason = l.PauseReason.String
		}
		if l.PauseResumeAt.Valid {
			t := l.PauseResumeAt.Time
			pause.ResumeAt = &t
		}
	}
	return location.ReconstructLocation(l.ID, l.Name, zone, l.AcceptsScheduled, week, pause, l.CreatedAt, l.UpdatedAt), nil
}
