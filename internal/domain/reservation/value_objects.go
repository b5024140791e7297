package reservation

import (
	"regexp"
	"strings"
	"time"

	"salon-queue/internal/domain/hours"
	"salon-queue/internal/pkg/errs"

	"github.com/google/uuid"
)

const (
	MaxCustomerNameLength = 100
)

var phonePattern = regexp.MustCompile(`^\+?[0-9][0-9\- ]{5,19}$`)

// Customer is the contact snapshot taken at booking time.
type Customer struct {
	name   string
	phone  string
	userID *uuid.UUID
}

func NewCustomer(name, phone string, userID *uuid.UUID) (Customer, error) {
	name = strings.TrimSpace(name)
	phone = strings.TrimSpace(phone)
	if name == "" || len(name) > MaxCustomerNameLength {
		return Customer{}, errs.Wrap(errs.ErrInvalidCustomer, "name")
	}
	if !phonePattern.MatchString(phone) {
		return Customer{}, errs.Wrap(errs.ErrInvalidCustomer, "phone")
	}
	return Customer{name: name, phone: phone, userID: userID}, nil
}

func ReconstructCustomer(name, phone string, userID *uuid.UUID) Customer {
	return Customer{name: name, phone: phone, userID: userID}
}

func (c Customer) Name() string       { return c.name }
func (c Customer) Phone() string      { return c.phone }
func (c Customer) UserID() *uuid.UUID { return c.userID }

// ScheduledSlot is the target of a pre-booked reservation.
type ScheduledSlot struct {
	Date hours.Date
	Time hours.TimeOfDay
	// At is the slot start as an instant in the location's zone.
	At time.Time
}

// Policy holds the timing constants of the queue.
type Policy struct {
	WalkinGrace   time.Duration
	ScheduledLead time.Duration
}

func DefaultPolicy() Policy {
	return Policy{WalkinGrace: 5 * time.Minute, ScheduledLead: 15 * time.Minute}
}
