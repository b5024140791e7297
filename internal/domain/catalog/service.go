package catalog

import (
	"slices"
	"strings"
	"time"

	"salon-queue/internal/pkg/errs"

	"github.com/google/uuid"
)

type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderOther  Gender = "other"
)

func (g Gender) IsValid() bool {
	switch g {
	case GenderMale, GenderFemale, GenderOther:
		return true
	default:
		return false
	}
}

// Service is a bookable offering of one location. Read-only to the booking engine.
type Service struct {
	id         uuid.UUID
	locationID uuid.UUID
	name       string
	priceCents int64
	duration   time.Duration
	enabled    bool
	genders    []Gender
}

func NewService(locationID uuid.UUID, name string, priceCents int64, duration time.Duration, genders []Gender) (*Service, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errs.Wrap(errs.ErrValidation, "service name is required")
	}
	if priceCents < 0 {
		return nil, errs.Wrap(errs.ErrValidation, "price cannot be negative")
	}
	if duration < time.Minute {
		return nil, errs.Wrap(errs.ErrValidation, "duration must be at least one minute")
	}
	for _, g := range genders {
		if !g.IsValid() {
			return nil, errs.Wrapf(errs.ErrValidation, "unknown gender tag %q", g)
		}
	}
	return &Service{
		id:         uuid.New(),
		locationID: locationID,
		name:       name,
		priceCents: priceCents,
		duration:   duration.Truncate(time.Minute),
		enabled:    true,
		genders:    genders,
	}, nil
}

func ReconstructService(
	id, locationID uuid.UUID,
	name string,
	priceCents int64,
	duration time.Duration,
	enabled bool,
	genders []Gender,
) *Service {
	return &Service{
		id:         id,
		locationID: locationID,
		name:       name,
		priceCents: priceCents,
		duration:   duration,
		enabled:    enabled,
		genders:    genders,
	}
}

func (s *Service) ID() uuid.UUID           { return s.id }
func (s *Service) LocationID() uuid.UUID   { return s.locationID }
func (s *Service) Name() string            { return s.name }
func (s *Service) PriceCents() int64       { return s.priceCents }
func (s *Service) Duration() time.Duration { return s.duration }
func (s *Service) Enabled() bool           { return s.enabled }

func (s *Service) DurationMinutes() int {
	return int(s.duration / time.Minute)
}

// AppliesTo reports whether the service is offered for g. No tags means everyone.
func (s *Service) AppliesTo(g Gender) bool {
	return len(s.genders) == 0 || slices.Contains(s.genders, g)
}

// Snapshot freezes the parts of the service copied onto a reservation.
func (s *Service) Snapshot() Snapshot {
	return Snapshot{
		ServiceID:  s.id,
		Name:       s.name,
		Duration:   s.duration,
		PriceCents: s.priceCents,
	}
}

// Snapshot is the denormalised service copy kept on each reservation.
type Snapshot struct {
	ServiceID  uuid.UUID
	Name       string
	Duration   time.Duration
	PriceCents int64
}
