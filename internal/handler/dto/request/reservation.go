package request

import (
	"strings"
	"time"

	"salon-queue/internal/domain/hours"
	"salon-queue/internal/usecase/commands"

	"github.com/google/uuid"
)

type CustomerRequest struct {
	Name  string `json:"name" binding:"required,max=100"`
	Phone string `json:"phone" binding:"required,max=32"`
}

func (r CustomerRequest) toInput() commands.CustomerInput {
	return commands.CustomerInput{Name: strings.TrimSpace(r.Name), Phone: strings.TrimSpace(r.Phone)}
}

type CreateScheduledRequest struct {
	LocationID uuid.UUID       `json:"location_id" binding:"required"`
	ServiceID  uuid.UUID       `json:"service_id" binding:"required"`
	ProviderID *uuid.UUID      `json:"provider_id,omitempty"`
	Date       string          `json:"date" binding:"required"`
	Slot       string          `json:"slot" binding:"required"`
	Customer   CustomerRequest `json:"customer" binding:"required"`
}

// ToInput parses date and slot. Parse failures are validation errors, not malformed requests.
func (r CreateScheduledRequest) ToInput() (commands.CreateScheduledInput, error) {
	date, err := hours.ParseDate(r.Date)
	if err != nil {
		return commands.CreateScheduledInput{}, err
	}
	slot, err := hours.ParseTimeOfDay(r.Slot)
	if err != nil {
		return commands.CreateScheduledInput{}, err
	}
	return commands.CreateScheduledInput{
		LocationID: r.LocationID,
		ServiceID:  r.ServiceID,
		ProviderID: r.ProviderID,
		Date:       date,
		Slot:       slot,
		Customer:   r.Customer.toInput(),
	}, nil
}

type CreateWalkinRequest struct {
	LocationID uuid.UUID       `json:"location_id" binding:"required"`
	ServiceID  uuid.UUID       `json:"service_id" binding:"required"`
	ProviderID *uuid.UUID      `json:"provider_id,omitempty"`
	Customer   CustomerRequest `json:"customer" binding:"required"`
}

func (r CreateWalkinRequest) ToInput() commands.CreateWalkinInput {
	return commands.CreateWalkinInput{
		LocationID: r.LocationID,
		ServiceID:  r.ServiceID,
		ProviderID: r.ProviderID,
		Customer:   r.Customer.toInput(),
	}
}

type SetAvailabilityRequest struct {
	Available *bool `json:"available" binding:"required"`
}

type PauseRequest struct {
	Reason   string     `json:"reason" binding:"max=200"`
	ResumeAt *time.Time `json:"resume_at,omitempty"`
}

func (r PauseRequest) ToInput() commands.PauseInput {
	return commands.PauseInput{Reason: strings.TrimSpace(r.Reason), ResumeAt: r.ResumeAt}
}

type SlotsQuery struct {
	Date       string `form:"date" binding:"required,isodate"`
	ServiceID  string `form:"serviceId" binding:"required,uuid"`
	ProviderID string `form:"providerId" binding:"omitempty,uuid"`
}

type EligibleQuery struct {
	ServiceID string `form:"serviceId" binding:"required,uuid"`
}
