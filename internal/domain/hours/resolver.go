package hours

import (
	"time"

	"github.com/google/uuid"
)

const (
	DefaultSlotInterval     = 30 * time.Minute
	DefaultClosingWarning   = 15 * time.Minute
	DefaultCountdownVisible = 60 * time.Second
)

// Resolver answers open/closed, closing-warning and slot questions for a Calendar.
type Resolver struct {
	slotInterval     time.Duration
	closingWarning   time.Duration
	countdownVisible time.Duration
}

func NewResolver(slotInterval, closingWarning, countdownVisible time.Duration) *Resolver {
	if slotInterval <= 0 {
		slotInterval = DefaultSlotInterval
	}
	if closingWarning <= 0 {
		closingWarning = DefaultClosingWarning
	}
	if countdownVisible <= 0 {
		countdownVisible = DefaultCountdownVisible
	}
	return &Resolver{
		slotInterval:     slotInterval,
		closingWarning:   closingWarning,
		countdownVisible: countdownVisible,
	}
}

func NewDefaultResolver() *Resolver {
	return NewResolver(DefaultSlotInterval, DefaultClosingWarning, DefaultCountdownVisible)
}

func (r *Resolver) SlotInterval() time.Duration { return r.slotInterval }

// IsOpenAt reports whether the location is open at instant. Days without configured hours count as open.
func (r *Resolver) IsOpenAt(cal Calendar, instant time.Time) bool {
	local := instant.In(cal.zone())
	date := DateOf(local)
	day, ok := cal.Hours.For(date.Weekday())
	if !ok {
		return true
	}
	if day.Closed {
		return false
	}
	open := date.At(day.Open, cal.zone())
	close := date.At(day.Close, cal.zone())
	return !local.Before(open) && local.Before(close)
}

// ClosesAt returns today's closing instant when the location is open at now and has configured hours.
func (r *Resolver) ClosesAt(cal Calendar, now time.Time) (time.Time, bool) {
	local := now.In(cal.zone())
	date := DateOf(local)
	day, ok := cal.Hours.For(date.Weekday())
	if !ok || day.Closed || !r.IsOpenAt(cal, now) {
		return time.Time{}, false
	}
	return date.At(day.Close, cal.zone()), true
}

// NextOpening finds the first opening instant after now within the coming week.
func (r *Resolver) NextOpening(cal Calendar, now time.Time) (time.Time, bool) {
	today := cal.Today(now)
	for i := 0; i <= 7; i++ {
		date := today.AddDays(i)
		open, _, isOpenDay, configured := cal.window(date)
		if !isOpenDay {
			continue
		}
		if !configured {
			// unconfigured days are open all day
			if i == 0 {
				return now, true
			}
			return open, true
		}
		if open.After(now) {
			return open, true
		}
	}
	return time.Time{}, false
}

type Countdown struct {
	ClosesAt  time.Time
	Remaining time.Duration
	// Visible is set during the final stretch when clients should render a ticking countdown.
	Visible bool
}

func (c Countdown) RemainingSeconds() int {
	return int(c.Remaining.Round(time.Second) / time.Second)
}

// ClosingCountdown returns the countdown to close when now is inside the closing-warning window.
func (r *Resolver) ClosingCountdown(cal Calendar, now time.Time) (Countdown, bool) {
	closesAt, ok := r.ClosesAt(cal, now)
	if !ok {
		return Countdown{}, false
	}
	remaining := closesAt.Sub(now)
	if remaining > r.closingWarning {
		return Countdown{}, false
	}
	return Countdown{
		ClosesAt:  closesAt,
		Remaining: remaining,
		Visible:   remaining <= r.countdownVisible,
	}, true
}

// SlotBooking is an existing scheduled reservation. It occupies [Slot, Slot+Duration), at
// least one slot interval.
type SlotBooking struct {
	Slot       TimeOfDay
	ProviderID *uuid.UUID
	Duration   time.Duration
}

// SlotDemand describes who could take a new booking: the eligible providers and an optional requested one.
type SlotDemand struct {
	Eligible  []uuid.UUID
	Requested *uuid.UUID
}

type Slot struct {
	Time      TimeOfDay
	StartsAt  time.Time
	Available bool
}

// SlotsFor lists bookable start slots for date. Today and past dates produce nothing; same-day
// demand goes through walk-ins.
func (r *Resolver) SlotsFor(
	cal Calendar,
	date Date,
	now time.Time,
	existing []SlotBooking,
	demand SlotDemand,
	serviceDuration time.Duration,
) []Slot {
	if !date.After(cal.Today(now)) {
		return []Slot{}
	}
	open, close, isOpenDay, _ := cal.window(date)
	if !isOpenDay {
		return []Slot{}
	}

	fit := serviceDuration
	if fit < r.slotInterval {
		fit = r.slotInterval
	}

	slots := make([]Slot, 0)
	for start := open; !start.Add(fit).After(close); start = start.Add(r.slotInterval) {
		tod := TimeOfDayOf(start)
		slots = append(slots, Slot{
			Time:      tod,
			StartsAt:  start,
			Available: SlotAvailable(r.Overlapping(existing, tod, serviceDuration), demand),
		})
	}
	return slots
}

// Overlapping returns the bookings whose occupied span intersects a new booking of
// serviceDuration starting at start. Spans are half-open.
func (r *Resolver) Overlapping(existing []SlotBooking, start TimeOfDay, serviceDuration time.Duration) []SlotBooking {
	end := start.Add(max(serviceDuration, r.slotInterval))
	out := make([]SlotBooking, 0, len(existing))
	for _, b := range existing {
		bEnd := b.Slot.Add(max(b.Duration, r.slotInterval))
		if b.Slot < end && start < bEnd {
			out = append(out, b)
		}
	}
	return out
}

// HasSlot reports whether tod is one of the generated start slots for date.
func (r *Resolver) HasSlot(cal Calendar, date Date, now time.Time, tod TimeOfDay, serviceDuration time.Duration) (Slot, bool) {
	for _, s := range r.SlotsFor(cal, date, now, nil, SlotDemand{}, serviceDuration) {
		if s.Time == tod {
			return s, true
		}
	}
	return Slot{}, false
}

// SlotAvailable applies the capacity rule to the bookings overlapping one start slot.
// Free providers are the eligible ones with no assigned booking there; unassigned
// bookings each consume one of them.
func SlotAvailable(atSlot []SlotBooking, demand SlotDemand) bool {
	taken := make(map[uuid.UUID]struct{}, len(atSlot))
	unassigned := 0
	for _, b := range atSlot {
		if b.ProviderID == nil {
			unassigned++
			continue
		}
		taken[*b.ProviderID] = struct{}{}
	}

	free := 0
	requestedFree := false
	for _, id := range demand.Eligible {
		if _, ok := taken[id]; ok {
			continue
		}
		free++
		if demand.Requested != nil && *demand.Requested == id {
			requestedFree = true
		}
	}

	if demand.Requested != nil {
		return requestedFree && free-1 >= unassigned
	}
	return free > unassigned
}
