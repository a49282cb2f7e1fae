package calendar

import (
	"time"

	hijridate "github.com/hablullah/go-hijri"
)

// Tabular Islamic calendar. Conversion is delegated to go-hijri; this file
// only adds cursor semantics (field rollover with day clamping) on top.
const (
	hijriMinYear = 1
	hijriMaxYear = 9999
)

type hijriSystem struct{}

func (s *hijriSystem) Identifier() string { return Hijri }

func (s *hijriSystem) NewCursor(t time.Time) (Cursor, error) {
	u := t.UTC()
	h, err := hijridate.CreateHijriDate(u, hijridate.Default)
	if err != nil {
		return nil, ErrOutOfRange
	}
	if h.Year < hijriMinYear || h.Year > hijriMaxYear {
		return nil, ErrOutOfRange
	}
	c := &hijriCursor{
		year:  int(h.Year),
		month: int(h.Month),
		day:   int(h.Day),
	}
	c.hour, c.min, c.sec, c.nsec = clockOf(u)
	return c, nil
}

type hijriCursor struct {
	year, month, day     int
	hour, min, sec, nsec int
}

func (c *hijriCursor) Year() int  { return c.year }
func (c *hijriCursor) Month() int { return c.month }
func (c *hijriCursor) Day() int   { return c.day }

func (c *hijriCursor) Time() time.Time {
	h := hijridate.HijriDate{Year: int64(c.year), Month: int64(c.month), Day: int64(c.day)}
	g := h.ToGregorian().UTC()
	return time.Date(g.Year(), g.Month(), g.Day(), c.hour, c.min, c.sec, c.nsec, time.UTC)
}

func (c *hijriCursor) AddYears(n int) error {
	year := c.year + n
	if year < hijriMinYear || year > hijriMaxYear {
		return ErrOutOfRange
	}
	c.year = year
	c.clampDay()
	return nil
}

func (c *hijriCursor) AddMonths(n int) error {
	total := c.year*12 + (c.month - 1) + n
	year := total / 12
	month := total%12 + 1
	if total < 0 {
		year = (total - 11) / 12
		month = total - year*12 + 1
	}
	if year < hijriMinYear || year > hijriMaxYear {
		return ErrOutOfRange
	}
	c.year = year
	c.month = month
	c.clampDay()
	return nil
}

func (c *hijriCursor) AddDays(n int) error {
	t := c.Time().AddDate(0, 0, n)
	h, err := hijridate.CreateHijriDate(t, hijridate.Default)
	if err != nil {
		return ErrOutOfRange
	}
	if h.Year < hijriMinYear || h.Year > hijriMaxYear {
		return ErrOutOfRange
	}
	c.year = int(h.Year)
	c.month = int(h.Month)
	c.day = int(h.Day)
	return nil
}

func (c *hijriCursor) Clone() Cursor {
	clone := *c
	return &clone
}

func (c *hijriCursor) clampDay() {
	if last := hijriDaysIn(c.year, c.month); c.day > last {
		c.day = last
	}
}

// hijriDaysIn derives the month length from the distance between the first
// of this month and the first of the next in Gregorian days.
func hijriDaysIn(year, month int) int {
	first := hijridate.HijriDate{Year: int64(year), Month: int64(month), Day: 1}
	nextYear, nextMonth := year, month+1
	if nextMonth > 12 {
		nextYear, nextMonth = year+1, 1
	}
	next := hijridate.HijriDate{Year: int64(nextYear), Month: int64(nextMonth), Day: 1}
	d := next.ToGregorian().Sub(first.ToGregorian())
	return int(d / (24 * time.Hour))
}
