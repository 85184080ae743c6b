package services

import (
	"time"

	"github.com/sbilibin2017/insighteats/internal/nutrition"
)

// Calendar tells services what "now" and "today" are in the configured time zone.
type Calendar struct {
	now func() time.Time
	loc *time.Location
}

// NewCalendar creates a calendar; nil arguments default to time.Now and UTC.
func NewCalendar(loc *time.Location, now func() time.Time) Calendar {
	if loc == nil {
		loc = time.UTC
	}
	if now == nil {
		now = time.Now
	}
	return Calendar{now: now, loc: loc}
}

// Now returns the current instant in the calendar's location.
func (c Calendar) Now() time.Time {
	if c.now == nil {
		return time.Now().In(c.location())
	}
	return c.now().In(c.location())
}

// Today returns the current date as YYYY-MM-DD.
func (c Calendar) Today() string {
	return c.DaysAgo(0)
}

// DaysAgo returns the date n days before today as YYYY-MM-DD.
func (c Calendar) DaysAgo(n int) string {
	return nutrition.DateKey(c.Now().AddDate(0, 0, -n), c.location())
}

func (c Calendar) location() *time.Location {
	if c.loc == nil {
		return time.UTC
	}
	return c.loc
}
