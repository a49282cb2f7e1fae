package calendar

import (
	"errors"
	"fmt"
	"time"
)

// Calendar identifiers accepted by New.
const (
	Gregorian = "gregorian"
	Hijri     = "hijri"
	Persian   = "persian"
)

// ErrOutOfRange is returned by cursor rollover operations when the result
// would leave the calendar's representable year range. Callers treat it as
// a normal outcome, not a defect.
var ErrOutOfRange = errors.New("date out of calendar range")

// System selects one calendar system's field and rollover semantics.
// A System is immutable and safe for concurrent use; all mutable state
// lives in the cursors it hands out.
type System interface {
	Identifier() string
	NewCursor(t time.Time) (Cursor, error)
}

// Cursor is a mutable position within a calendar system. Field accessors
// report calendar-local values (Hijri year for the Hijri system, etc.).
// Rollover operations clamp the day of month when the target month is
// shorter, and return ErrOutOfRange instead of wrapping past the calendar
// bounds. A cursor keeps the time of day of the instant it was built from.
//
// Cursors are not safe for concurrent use; build one per call.
type Cursor interface {
	Year() int
	Month() int
	Day() int
	Time() time.Time
	AddYears(n int) error
	AddMonths(n int) error
	AddDays(n int) error
	Clone() Cursor
}

// New returns the System for the given identifier. An unknown identifier
// is a caller bug and fails construction.
func New(identifier string) (System, error) {
	switch identifier {
	case Gregorian:
		return &gregorianSystem{}, nil
	case Hijri:
		return &hijriSystem{}, nil
	case Persian:
		return &persianSystem{}, nil
	default:
		return nil, fmt.Errorf("unsupported calendar identifier %q", identifier)
	}
}

// clockOf splits t into its date-independent time-of-day part.
func clockOf(t time.Time) (hour, min, sec, nsec int) {
	u := t.UTC()
	return u.Hour(), u.Minute(), u.Second(), u.Nanosecond()
}
