package timeutil

import (
	"fmt"
	"time"
)

// DateKeyLayout is the calendar-date form used for daily bucketing
const DateKeyLayout = "2006-01-02"

// Zone pins all calendar arithmetic to one reference timezone. The platform
// serves one country, so "today" and month boundaries are defined in that
// zone regardless of where the process runs - not UTC and not the host's
// local zone.
type Zone struct {
	loc *time.Location
}

// LoadZone resolves a timezone name into a Zone
func LoadZone(name string) (*Zone, error) {
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("load timezone %q: %w", name, err)
	}
	return &Zone{loc: loc}, nil
}

// MustLoadZone is LoadZone for fixtures and tests where the name is constant
func MustLoadZone(name string) *Zone {
	z, err := LoadZone(name)
	if err != nil {
		panic(err)
	}
	return z
}

// Location exposes the underlying *time.Location for constructing
// zone-local times
func (z *Zone) Location() *time.Location {
	return z.loc
}

// Now returns the current time in the reference zone
// Always use this instead of time.Now() to ensure timezone consistency
func (z *Zone) Now() time.Time {
	return time.Now().In(z.loc)
}

// In converts a time to the reference zone
func (z *Zone) In(t time.Time) time.Time {
	return t.In(z.loc)
}

// DateKey returns the calendar date of t in the reference zone in
// YYYY-MM-DD form. A zero time yields an empty key.
func (z *Zone) DateKey(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.In(z.loc).Format(DateKeyLayout)
}

// HourOfDay returns the hour 0..23 of t in the reference zone
func (z *Zone) HourOfDay(t time.Time) int {
	return t.In(z.loc).Hour()
}

// StartOfDay returns midnight of t's calendar day in the reference zone
func (z *Zone) StartOfDay(t time.Time) time.Time {
	year, month, day := t.In(z.loc).Date()
	return time.Date(year, month, day, 0, 0, 0, 0, z.loc)
}

// EndOfDay returns the last representable instant of t's calendar day in
// the reference zone
func (z *Zone) EndOfDay(t time.Time) time.Time {
	year, month, day := t.In(z.loc).Date()
	return time.Date(year, month, day, 23, 59, 59, 999999999, z.loc)
}

// StartOfMonth returns midnight on the first day of t's month
func (z *Zone) StartOfMonth(t time.Time) time.Time {
	year, month, _ := t.In(z.loc).Date()
	return time.Date(year, month, 1, 0, 0, 0, 0, z.loc)
}

// StartOfPreviousMonth returns midnight on the first day of the month
// before t's month
func (z *Zone) StartOfPreviousMonth(t time.Time) time.Time {
	return z.StartOfMonth(t).AddDate(0, -1, 0)
}

// EndOfPreviousMonth returns the last representable instant of the month
// before t's month
func (z *Zone) EndOfPreviousMonth(t time.Time) time.Time {
	return z.StartOfMonth(t).Add(-time.Nanosecond)
}

// StartOfYear returns midnight on January 1st of t's year
func (z *Zone) StartOfYear(t time.Time) time.Time {
	year, _, _ := t.In(z.loc).Date()
	return time.Date(year, time.January, 1, 0, 0, 0, 0, z.loc)
}
