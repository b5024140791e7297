package hours

import (
	"time"

	"salon-queue/internal/pkg/errs"
)

type DayHours struct {
	Closed bool
	Open   TimeOfDay
	Close  TimeOfDay
}

func NewDayHours(open, close TimeOfDay) (DayHours, error) {
	if close <= open {
		return DayHours{}, errs.Wrapf(errs.ErrInvalidHours, "close %s must be after open %s", close, open)
	}
	return DayHours{Open: open, Close: close}, nil
}

func ClosedDay() DayHours {
	return DayHours{Closed: true}
}

// WeeklyHours maps weekdays to their hours. A missing weekday means "no configured hours".
type WeeklyHours map[time.Weekday]DayHours

func (w WeeklyHours) For(day time.Weekday) (DayHours, bool) {
	h, ok := w[day]
	return h, ok
}

func (w WeeklyHours) Validate() error {
	for day, h := range w {
		if h.Closed {
			continue
		}
		if h.Close <= h.Open {
			return errs.Wrapf(errs.ErrInvalidHours, "%s: close %s must be after open %s", day, h.Close, h.Open)
		}
	}
	return nil
}

// Calendar is the time-related view of a location.
type Calendar struct {
	Zone  *time.Location
	Hours WeeklyHours
}

func (c Calendar) zone() *time.Location {
	if c.Zone == nil {
		return time.UTC
	}
	return c.Zone
}

// Today is the current calendar day at the location.
func (c Calendar) Today(now time.Time) Date {
	return DateOf(now.In(c.zone()))
}

// window returns the open/close instants for date. configured=false means no hours row exists.
func (c Calendar) window(date Date) (open, close time.Time, isOpenDay, configured bool) {
	day, ok := c.Hours.For(date.Weekday())
	if !ok {
		return date.At(Midnight, c.zone()), date.At(EndOfDay, c.zone()), true, false
	}
	if day.Closed {
		return time.Time{}, time.Time{}, false, true
	}
	return date.At(day.Open, c.zone()), date.At(day.Close, c.zone()), true, true
}
