// Package epoch measures elapsed time from the fixed astronomical reference
// instants and computes sidereal time.
package epoch

import (
	"time"
)

const (
	millisPerDay   = 1000 * 60 * 60 * 24
	daysPerCentury = 36525
)

// Epoch is a fixed reference instant.
type Epoch struct {
	name string
	at   time.Time
}

var (
	// J2000 is noon UTC on 1 January 2000.
	J2000 = Epoch{name: "J2000", at: time.Date(2000, time.January, 1, 12, 0, 0, 0, time.UTC)}
	// J2010 is midnight UTC at the start of 31 December 2009.
	J2010 = Epoch{name: "J2010", at: time.Date(2009, time.December, 31, 0, 0, 0, 0, time.UTC)}
)

// Time returns the reference instant.
func (e Epoch) Time() time.Time { return e.at }

// DaysUntil returns the signed number of days from the epoch to when, at
// millisecond resolution.
func (e Epoch) DaysUntil(when time.Time) float64 {
	// Differences of more than ~292 years overflow time.Duration, so the
	// millisecond counts are subtracted directly.
	return float64(when.UnixMilli()-e.at.UnixMilli()) / millisPerDay
}

// JulianCenturiesUntil returns DaysUntil expressed in Julian centuries.
func (e Epoch) JulianCenturiesUntil(when time.Time) float64 {
	return e.DaysUntil(when) / daysPerCentury
}

func (e Epoch) String() string { return e.name }
