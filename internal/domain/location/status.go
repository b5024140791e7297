package location

import (
	"time"

	"salon-queue/internal/domain/hours"
	"salon-queue/internal/pkg/errs"
)

type State string

const (
	StateOpen    State = "OPEN"
	StatePaused  State = "PAUSED"
	StateClosing State = "CLOSING"
	StateClosed  State = "CLOSED"
)

func (s State) String() string { return string(s) }

type Status struct {
	State State

	// PAUSED
	Reason   string
	ResumeAt *time.Time

	// OPEN / CLOSING
	ClosesAt         *time.Time
	RemainingSeconds int
	CountdownVisible bool

	// CLOSED
	NextOpenAt *time.Time
}

// Monitor derives the live location status from hours, the clock and the pause record.
type Monitor struct {
	resolver                *hours.Resolver
	allowWalkinsWhenClosing bool
}

func NewMonitor(resolver *hours.Resolver, allowWalkinsWhenClosing bool) *Monitor {
	return &Monitor{resolver: resolver, allowWalkinsWhenClosing: allowWalkinsWhenClosing}
}

// StatusAt applies the precedence CLOSED > PAUSED > CLOSING > OPEN.
func (m *Monitor) StatusAt(loc *Location, now time.Time) Status {
	cal := loc.Calendar()

	if !m.resolver.IsOpenAt(cal, now) {
		st := Status{State: StateClosed}
		if next, ok := m.resolver.NextOpening(cal, now); ok {
			st.NextOpenAt = &next
		}
		return st
	}

	if p, ok := loc.ActivePause(now); ok {
		return Status{State: StatePaused, Reason: p.Reason, ResumeAt: p.ResumeAt}
	}

	if cd, ok := m.resolver.ClosingCountdown(cal, now); ok {
		closesAt := cd.ClosesAt
		return Status{
			State:            StateClosing,
			ClosesAt:         &closesAt,
			RemainingSeconds: cd.RemainingSeconds(),
			CountdownVisible: cd.Visible,
		}
	}

	st := Status{State: StateOpen}
	if closesAt, ok := m.resolver.ClosesAt(cal, now); ok {
		st.ClosesAt = &closesAt
	}
	return st
}

// AcceptsWalkins gates walk-in creation on the derived status.
func (m *Monitor) AcceptsWalkins(st Status) error {
	switch st.State {
	case StateOpen:
		return nil
	case StateClosing:
		if m.allowWalkinsWhenClosing {
			return nil
		}
		return errs.Wrap(errs.ErrLocationClosed, "location is closing")
	case StatePaused:
		return errs.Wrap(errs.ErrLocationClosed, "location is paused")
	default:
		return errs.Wrap(errs.ErrLocationClosed, "location is closed")
	}
}
