package hours

import (
	"fmt"
	"time"

	"salon-queue/internal/pkg/errs"
)

// TimeOfDay is a wall-clock minute within a day, 0 (00:00) .. 1439 (23:59).
type TimeOfDay int

const (
	Midnight TimeOfDay = 0
	// EndOfDay is how a "24:00" close is stored so slot generation never runs past the day.
	EndOfDay TimeOfDay = 23*60 + 59
)

func NewTimeOfDay(hour, minute int) (TimeOfDay, error) {
	if hour == 24 && minute == 0 {
		return EndOfDay, nil
	}
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, errs.Wrapf(errs.ErrInvalidTimeOfDay, "%02d:%02d", hour, minute)
	}
	return TimeOfDay(hour*60 + minute), nil
}

// ParseTimeOfDay accepts "HH:MM" (and "24:00").
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	var h, m int
	if len(s) != 5 || s[2] != ':' {
		return 0, errs.Wrapf(errs.ErrInvalidTimeOfDay, "%q", s)
	}
	if _, err := fmt.Sscanf(s, "%02d:%02d", &h, &m); err != nil {
		return 0, errs.Wrapf(errs.ErrInvalidTimeOfDay, "%q", s)
	}
	return NewTimeOfDay(h, m)
}

func TimeOfDayOf(t time.Time) TimeOfDay {
	return TimeOfDay(t.Hour()*60 + t.Minute())
}

func (t TimeOfDay) Hour() int   { return int(t) / 60 }
func (t TimeOfDay) Minute() int { return int(t) % 60 }

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour(), t.Minute())
}

func (t TimeOfDay) Add(d time.Duration) TimeOfDay {
	return t + TimeOfDay(d/time.Minute)
}

// Date is a calendar day without zone; pair it with a location to get instants.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

const dateLayout = "2006-01-02"

func ParseDate(s string) (Date, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return Date{}, errs.Wrapf(errs.ErrValidation, "invalid date %q", s)
	}
	return DateOf(t), nil
}

// DateOf takes the calendar day of t in t's own location.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

func (d Date) String() string {
	return d.midnight(time.UTC).Format(dateLayout)
}

func (d Date) IsZero() bool {
	return d.Year == 0 && d.Month == 0 && d.Day == 0
}

func (d Date) Weekday() time.Weekday {
	return d.midnight(time.UTC).Weekday()
}

func (d Date) AddDays(n int) Date {
	return DateOf(d.midnight(time.UTC).AddDate(0, 0, n))
}

func (d Date) Before(other Date) bool {
	return d.midnight(time.UTC).Before(other.midnight(time.UTC))
}

func (d Date) After(other Date) bool {
	return other.Before(d)
}

// At returns the instant of the wall-clock time on this date in loc.
func (d Date) At(t TimeOfDay, loc *time.Location) time.Time {
	return time.Date(d.Year, d.Month, d.Day, t.Hour(), t.Minute(), 0, 0, loc)
}

// Time is midnight in UTC, suitable for DATE columns.
func (d Date) Time() time.Time {
	return d.midnight(time.UTC)
}

func (d Date) midnight(loc *time.Location) time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, loc)
}
