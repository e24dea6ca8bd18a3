package service

import "time"

// Clock is the service-wide notion of "now" together with the zone that
// decides what "today" means.
type Clock struct {
	Now      func() time.Time
	Location *time.Location
}

func SystemClock(loc *time.Location) Clock {
	return Clock{Now: time.Now, Location: loc}
}

func (c Clock) now() time.Time {
	if c.Now == nil {
		return time.Now()
	}
	return c.Now()
}

// Today is midnight of the current local date, expressed in UTC so it
// compares directly with dates parsed from forms.
func (c Clock) Today() time.Time {
	now := c.now()
	if c.Location != nil {
		now = now.In(c.Location)
	}
	y, m, d := now.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
