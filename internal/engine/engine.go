package engine

import (
	"time"

	"datecalc/internal/calendar"
)

// DateUnit selects which fields of a DateDifference a difference call
// should populate. Units that are not requested fold downward into days.
type DateUnit uint8

const (
	UnitYear DateUnit = 1 << iota
	UnitMonth
	UnitWeek
	UnitDay
)

// AllUnits requests the full years/months/weeks/days decomposition.
const AllUnits = UnitYear | UnitMonth | UnitWeek | UnitDay

// DateDifference is a structured per-unit offset. As a difference result
// all fields are non-negative. As an offset input, Weeks is ignored; the
// direction comes from calling AddDuration or SubtractDuration.
type DateDifference struct {
	Years  int `json:"years"`
	Months int `json:"months"`
	Weeks  int `json:"weeks"`
	Days   int `json:"days"`
}

// IsZero reports whether every field is zero.
func (d DateDifference) IsZero() bool {
	return d.Years == 0 && d.Months == 0 && d.Weeks == 0 && d.Days == 0
}

// Engine computes calendar-aware date differences and offsets. It holds
// only the immutable calendar system and is safe for concurrent use;
// every call builds its own cursors.
type Engine struct {
	sys calendar.System
}

func New(sys calendar.System) *Engine {
	return &Engine{sys: sys}
}

func (e *Engine) Calendar() calendar.System { return e.sys }

// GetDateDifference returns the unsigned difference between from and to,
// decomposed into the requested units. Whole years and months are counted
// with elapsed-unit (anniversary) semantics: an anniversary that lands on
// a clamped day, such as Feb 29 + 1 year = Feb 28, still counts as a whole
// unit. Operand order does not matter.
//
// Both inputs are expected to carry the same time of day; callers that
// want whole-day results normalize to midnight UTC first.
func (e *Engine) GetDateDifference(from, to time.Time, units DateUnit) (DateDifference, error) {
	var diff DateDifference

	if to.Before(from) {
		from, to = to, from
	}

	cur, err := e.sys.NewCursor(from)
	if err != nil {
		return diff, err
	}
	target, err := e.sys.NewCursor(to)
	if err != nil {
		return diff, err
	}
	end := target.Time()

	if units&UnitYear != 0 {
		years := target.Year() - cur.Year()
		if years > 0 {
			probe := cur.Clone()
			if err := probe.AddYears(years); err != nil {
				return diff, err
			}
			if probe.Time().After(end) {
				years--
			}
		}
		if years > 0 {
			if err := cur.AddYears(years); err != nil {
				return diff, err
			}
			diff.Years = years
		}
	}

	if units&UnitMonth != 0 {
		months := (target.Year()-cur.Year())*12 + target.Month() - cur.Month()
		if months > 0 {
			probe := cur.Clone()
			if err := probe.AddMonths(months); err != nil {
				return diff, err
			}
			if probe.Time().After(end) {
				months--
			}
		}
		if months > 0 {
			if err := cur.AddMonths(months); err != nil {
				return diff, err
			}
			diff.Months = months
		}
	}

	days := int(end.Sub(cur.Time()) / (24 * time.Hour))
	if units&UnitWeek != 0 {
		diff.Weeks = days / 7
		days %= 7
	}
	if units&UnitDay != 0 {
		diff.Days = days
	}

	return diff, nil
}

// AddDuration applies years, then months, then days to start, in that
// order, so month and day rollover happens relative to the already
// year-shifted date. The boolean is false when any step leaves the
// calendar's representable range; the returned time is meaningless then.
// The start date keeps its time of day.
func (e *Engine) AddDuration(start time.Time, d DateDifference) (time.Time, bool) {
	return e.offset(start, d.Years, d.Months, d.Days)
}

// SubtractDuration is AddDuration with every field negated.
func (e *Engine) SubtractDuration(start time.Time, d DateDifference) (time.Time, bool) {
	return e.offset(start, -d.Years, -d.Months, -d.Days)
}

func (e *Engine) offset(start time.Time, years, months, days int) (time.Time, bool) {
	cur, err := e.sys.NewCursor(start)
	if err != nil {
		return time.Time{}, false
	}
	if err := cur.AddYears(years); err != nil {
		return time.Time{}, false
	}
	if err := cur.AddMonths(months); err != nil {
		return time.Time{}, false
	}
	if err := cur.AddDays(days); err != nil {
		return time.Time{}, false
	}
	return cur.Time(), true
}

// ClipTime truncates t to midnight UTC of the same day. Difference inputs
// go through this before reaching the engine, mirroring how the service
// avoids daylight-saving artifacts.
func ClipTime(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}
