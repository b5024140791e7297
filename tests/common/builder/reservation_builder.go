//go:build unit || e2e

package builder

import (
	"time"

	"salon-queue/internal/domain/catalog"
	"salon-queue/internal/domain/hours"
	"salon-queue/internal/domain/reservation"
	reqdto "salon-queue/internal/handler/dto/request"
	"salon-queue/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReservationBuilder struct {
	ID            uuid.UUID
	LocationID    uuid.UUID
	ProviderID    *uuid.UUID
	Service       catalog.Snapshot
	Kind          reservation.Kind
	Slot          *reservation.ScheduledSlot
	Status        reservation.QueueStatus
	ExpiresAt     *time.Time
	ArrivedAt     *time.Time
	ServedAt      *time.Time
	CustomerID    *uuid.UUID
	CreatedAt     time.Time
	CustomerName  string
	CustomerPhone string
}

// NewReservationBuilder starts from a RED walk-in created at BaseTime.
func NewReservationBuilder(locationID uuid.UUID) *ReservationBuilder {
	exp := BaseTime.Add(5 * time.Minute)
	return &ReservationBuilder{
		ID:         uuid.New(),
		LocationID: locationID,
		Service: catalog.Snapshot{
			ServiceID:  uuid.New(),
			Name:       "Haircut",
			Duration:   30 * time.Minute,
			PriceCents: 2500,
		},
		Kind:          reservation.KindWalkin,
		Status:        reservation.StatusRed,
		ExpiresAt:     &exp,
		CreatedAt:     BaseTime,
		CustomerName:  "Jamie Doe",
		CustomerPhone: "+15550100",
	}
}

func (r *ReservationBuilder) With(mutate func(*ReservationBuilder)) *ReservationBuilder {
	mutate(r)
	return r
}

func (r *ReservationBuilder) AssignedTo(providerID uuid.UUID) *ReservationBuilder {
	id := providerID
	r.ProviderID = &id
	return r
}

func (r *ReservationBuilder) ForService(svc catalog.Snapshot) *ReservationBuilder {
	r.Service = svc
	return r
}

// Arrived marks the booking ORANGE with the given arrival time.
func (r *ReservationBuilder) Arrived(at time.Time) *ReservationBuilder {
	r.Status = reservation.StatusOrange
	r.ArrivedAt = &at
	return r
}

// Serving marks the booking GREEN since at.
func (r *ReservationBuilder) Serving(at time.Time) *ReservationBuilder {
	r.Status = reservation.StatusGreen
	if r.ArrivedAt == nil {
		arrived := at
		r.ArrivedAt = &arrived
	}
	r.ServedAt = &at
	return r
}

// Scheduled turns the booking into an unpromoted pre-booking for slotAt.
func (r *ReservationBuilder) Scheduled(slotAt time.Time) *ReservationBuilder {
	r.Kind = reservation.KindScheduled
	r.Status = reservation.StatusNone
	r.ExpiresAt = nil
	r.Slot = &reservation.ScheduledSlot{
		Date: hours.DateOf(slotAt),
		Time: hours.TimeOfDayOf(slotAt),
		At:   slotAt,
	}
	return r
}

func (r *ReservationBuilder) BuildDomain() *reservation.Reservation {
	assignment := reservation.Unassigned
	if r.ProviderID != nil {
		assignment = reservation.Assigned
	}
	return reservation.Reconstruct(reservation.Snapshot{
		ID:         r.ID,
		LocationID: r.LocationID,
		ProviderID: r.ProviderID,
		Assignment: assignment,
		Service:    r.Service,
		Kind:       r.Kind,
		Slot:       r.Slot,
		Status:     r.Status,
		ExpiresAt:  r.ExpiresAt,
		ArrivedAt:  r.ArrivedAt,
		ServedAt:   r.ServedAt,
		Customer:   reservation.ReconstructCustomer(r.CustomerName, r.CustomerPhone, r.CustomerID),
		CreatedAt:  r.CreatedAt,
		UpdatedAt:  r.CreatedAt,
	})
}

func (r *ReservationBuilder) BuildView() *queries.ReservationView {
	return queries.ToReservationView(r.BuildDomain(), BaseTime)
}

func (r *ReservationBuilder) BuildWalkinRequestDTO() reqdto.CreateWalkinRequest {
	return reqdto.CreateWalkinRequest{
		LocationID: r.LocationID,
		ServiceID:  r.Service.ServiceID,
		ProviderID: r.ProviderID,
		Customer:   reqdto.CustomerRequest{Name: r.CustomerName, Phone: r.CustomerPhone},
	}
}

// BuildScheduledRequestDTO targets 10:00 on the day after BaseTime unless a slot is set.
func (r *ReservationBuilder) BuildScheduledRequestDTO() reqdto.CreateScheduledRequest {
	date := hours.DateOf(BaseTime).AddDays(1)
	slot := hours.TimeOfDay(10 * 60)
	if r.Slot != nil {
		date, slot = r.Slot.Date, r.Slot.Time
	}
	return reqdto.CreateScheduledRequest{
		LocationID: r.LocationID,
		ServiceID:  r.Service.ServiceID,
		ProviderID: r.ProviderID,
		Date:       date.String(),
		Slot:       slot.String(),
		Customer:   reqdto.CustomerRequest{Name: r.CustomerName, Phone: r.CustomerPhone},
	}
}
