package parser

import (
	"math"
	"time"
)

// TimezoneNone marks a Datetime without timezone information.
const TimezoneNone = math.MinInt32

// Datetime is the dive start time as recorded by the device.
type Datetime struct {
	Year   int
	Month  int
	Day    int
	Hour   int
	Minute int
	Second int
	// Timezone is the UTC offset in seconds, or TimezoneNone.
	Timezone int
}

// HasTimezone reports whether the timezone is known.
func (d Datetime) HasTimezone() bool {
	return d.Timezone != TimezoneNone
}

// Time converts d to a time.Time. Without timezone information the wall clock
// is interpreted in loc; nil means UTC.
func (d Datetime) Time(loc *time.Location) time.Time {
	if d.HasTimezone() {
		loc = time.FixedZone("", d.Timezone)
	} else if loc == nil {
		loc = time.UTC
	}

	return time.Date(d.Year, time.Month(d.Month), d.Day, d.Hour, d.Minute, d.Second, 0, loc)
}
