package location

import (
	"strings"
	"time"

	"salon-queue/internal/domain/hours"
	"salon-queue/internal/pkg/errs"

	"github.com/google/uuid"
)

const MaxPauseReasonLength = 200

// Pause is an owner-set temporary closure. A nil ResumeAt means "until resumed manually".
type Pause struct {
	Reason   string
	ResumeAt *time.Time
	PausedAt time.Time
}

// ActiveAt reports whether the pause still holds at now.
func (p Pause) ActiveAt(now time.Time) bool {
	return p.ResumeAt == nil || p.ResumeAt.After(now)
}

type Location struct {
	id               uuid.UUID
	name             string
	zone             *time.Location
	acceptsScheduled bool
	hours            hours.WeeklyHours
	pause            *Pause
	createdAt        time.Time
	updatedAt        time.Time
}

func NewLocation(name, zoneName string, acceptsScheduled bool, week hours.WeeklyHours, now time.Time) (*Location, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errs.Wrap(errs.ErrValidation, "location name is required")
	}
	zone, err := LoadZone(zoneName)
	if err != nil {
		return nil, err
	}
	if err := week.Validate(); err != nil {
		return nil, err
	}
	return &Location{
		id:               uuid.New(),
		name:             name,
		zone:             zone,
		acceptsScheduled: acceptsScheduled,
		hours:            week,
		createdAt:        now,
		updatedAt:        now,
	}, nil
}

func ReconstructLocation(
	id uuid.UUID,
	name string,
	zone *time.Location,
	acceptsScheduled bool,
	week hours.WeeklyHours,
	pause *Pause,
	createdAt, updatedAt time.Time,
) *Location {
	return &Location{
		id:               id,
		name:             name,
		zone:             zone,
		acceptsScheduled: acceptsScheduled,
		hours:            week,
		pause:            pause,
		createdAt:        createdAt,
		updatedAt:        updatedAt,
	}
}

func LoadZone(name string) (*time.Location, error) {
	if name == "" {
		return time.UTC, nil
	}
	zone, err := time.LoadLocation(name)
	if err != nil {
		return nil, errs.Wrapf(errs.ErrValidation, "unknown time zone %q", name)
	}
	return zone, nil
}

func (l *Location) ID() uuid.UUID            { return l.id }
func (l *Location) Name() string             { return l.name }
func (l *Location) Zone() *time.Location     { return l.zone }
func (l *Location) AcceptsScheduled() bool   { return l.acceptsScheduled }
func (l *Location) Hours() hours.WeeklyHours { return l.hours }
func (l *Location) Pause() *Pause            { return l.pause }
func (l *Location) CreatedAt() time.Time     { return l.createdAt }
func (l *Location) UpdatedAt() time.Time     { return l.updatedAt }

func (l *Location) Calendar() hours.Calendar {
	return hours.Calendar{Zone: l.zone, Hours: l.hours}
}

// ActivePause returns the pause record if it is in force at now.
func (l *Location) ActivePause(now time.Time) (*Pause, bool) {
	if l.pause == nil || !l.pause.ActiveAt(now) {
		return nil, false
	}
	return l.pause, true
}

func (l *Location) PauseUntil(reason string, resumeAt *time.Time, now time.Time) error {
	reason = strings.TrimSpace(reason)
	if len(reason) > MaxPauseReasonLength {
		return errs.Wrapf(errs.ErrValidation, "pause reason exceeds %d characters", MaxPauseReasonLength)
	}
	if resumeAt != nil && !resumeAt.After(now) {
		return errs.Wrap(errs.ErrValidation, "resume time must be in the future")
	}
	l.pause = &Pause{Reason: reason, ResumeAt: resumeAt, PausedAt: now}
	l.updatedAt = now
	return nil
}

func (l *Location) Resume(now time.Time) {
	if l.pause == nil {
		return
	}
	l.pause = nil
	l.updatedAt = now
}
