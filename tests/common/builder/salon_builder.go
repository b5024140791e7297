//go:build unit || e2e

package builder

import (
	"time"

	"salon-queue/internal/domain/catalog"
	"salon-queue/internal/domain/hours"
	"salon-queue/internal/domain/location"
	"salon-queue/internal/domain/provider"

	"github.com/google/uuid"
)

// BaseTime is a Wednesday morning, inside the default opening hours.
var BaseTime = time.Date(2026, 3, 4, 10, 0, 0, 0, time.UTC)

// OpenAllWeek is 09:00-18:00 every day.
func OpenAllWeek() hours.WeeklyHours {
	week := make(hours.WeeklyHours, 7)
	for d := time.Sunday; d <= time.Saturday; d++ {
		week[d] = hours.DayHours{Open: 9 * 60, Close: 18 * 60}
	}
	return week
}

type LocationBuilder struct {
	ID               uuid.UUID
	Name             string
	Zone             *time.Location
	AcceptsScheduled bool
	Hours            hours.WeeklyHours
	Pause            *location.Pause
}

func NewLocationBuilder() *LocationBuilder {
	return &LocationBuilder{
		ID:               uuid.New(),
		Name:             "Main Street",
		Zone:             time.UTC,
		AcceptsScheduled: true,
		Hours:            OpenAllWeek(),
	}
}

func (b *LocationBuilder) With(mutate func(*LocationBuilder)) *LocationBuilder {
	mutate(b)
	return b
}

func (b *LocationBuilder) BuildDomain() *location.Location {
	return location.ReconstructLocation(b.ID, b.Name, b.Zone, b.AcceptsScheduled, b.Hours, b.Pause, BaseTime, BaseTime)
}

type ServiceBuilder struct {
	ID         uuid.UUID
	LocationID uuid.UUID
	Name       string
	PriceCents int64
	Duration   time.Duration
	Enabled    bool
}

func NewServiceBuilder(locationID uuid.UUID) *ServiceBuilder {
	return &ServiceBuilder{
		ID:         uuid.New(),
		LocationID: locationID,
		Name:       "Haircut",
		PriceCents: 2500,
		Duration:   30 * time.Minute,
		Enabled:    true,
	}
}

func (b *ServiceBuilder) With(mutate func(*ServiceBuilder)) *ServiceBuilder {
	mutate(b)
	return b
}

func (b *ServiceBuilder) BuildDomain() *catalog.Service {
	return catalog.ReconstructService(b.ID, b.LocationID, b.Name, b.PriceCents, b.Duration, b.Enabled, nil)
}

type ProviderBuilder struct {
	ID         uuid.UUID
	LocationID uuid.UUID
	Name       string
	Skills     []uuid.UUID
	Available  bool
}

func NewProviderBuilder(locationID uuid.UUID, skills ...uuid.UUID) *ProviderBuilder {
	return &ProviderBuilder{
		ID:         uuid.New(),
		LocationID: locationID,
		Name:       "Alex",
		Skills:     skills,
		Available:  true,
	}
}

func (b *ProviderBuilder) With(mutate func(*ProviderBuilder)) *ProviderBuilder {
	mutate(b)
	return b
}

func (b *ProviderBuilder) BuildDomain() *provider.Provider {
	return provider.ReconstructProvider(b.ID, b.LocationID, b.Name, b.Skills, b.Available, BaseTime)
}
