package provider

import (
	"slices"
	"strings"
	"time"

	"salon-queue/internal/pkg/errs"

	"github.com/google/uuid"
)

type Provider struct {
	id         uuid.UUID
	locationID uuid.UUID
	name       string
	skills     []uuid.UUID
	available  bool
	updatedAt  time.Time
}

func NewProvider(locationID uuid.UUID, name string, skills []uuid.UUID, now time.Time) (*Provider, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errs.Wrap(errs.ErrValidation, "provider name is required")
	}
	return &Provider{
		id:         uuid.New(),
		locationID: locationID,
		name:       name,
		skills:     slices.Clone(skills),
		available:  true,
		updatedAt:  now,
	}, nil
}

func ReconstructProvider(id, locationID uuid.UUID, name string, skills []uuid.UUID, available bool, updatedAt time.Time) *Provider {
	return &Provider{
		id:         id,
		locationID: locationID,
		name:       name,
		skills:     skills,
		available:  available,
		updatedAt:  updatedAt,
	}
}

func (p *Provider) ID() uuid.UUID         { return p.id }
func (p *Provider) LocationID() uuid.UUID { return p.locationID }
func (p *Provider) Name() string          { return p.name }
func (p *Provider) Skills() []uuid.UUID   { return p.skills }
func (p *Provider) Available() bool       { return p.available }
func (p *Provider) UpdatedAt() time.Time  { return p.updatedAt }

func (p *Provider) Performs(serviceID uuid.UUID) bool {
	return slices.Contains(p.skills, serviceID)
}

// EligibleFor is the registry rule: has the skill and is not manually paused.
func (p *Provider) EligibleFor(serviceID uuid.UUID) bool {
	return p.available && p.Performs(serviceID)
}

// SetAvailability flips the manual flag and reports whether it changed.
// A GREEN booking in progress is not touched either way.
func (p *Provider) SetAvailability(available bool, now time.Time) bool {
	if p.available == available {
		return false
	}
	p.available = available
	p.updatedAt = now
	return true
}

// AverageDuration averages the durations of the provider's skills; unknown skills are skipped.
func (p *Provider) AverageDuration(durations map[uuid.UUID]time.Duration, fallback time.Duration) time.Duration {
	var total time.Duration
	n := 0
	for _, id := range p.skills {
		if d, ok := durations[id]; ok && d > 0 {
			total += d
			n++
		}
	}
	if n == 0 {
		return fallback
	}
	return total / time.Duration(n)
}
