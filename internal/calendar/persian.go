package calendar

import (
	"time"

	ptime "github.com/yaa110/go-persian-calendar"
)

// Solar Hijri calendar backed by go-persian-calendar.
const (
	persianMinYear = 1
	persianMaxYear = 9999
)

type persianSystem struct{}

func (s *persianSystem) Identifier() string { return Persian }

func (s *persianSystem) NewCursor(t time.Time) (Cursor, error) {
	u := t.UTC()
	p := ptime.New(u)
	if p.Year() < persianMinYear || p.Year() > persianMaxYear {
		return nil, ErrOutOfRange
	}
	c := &persianCursor{
		year:  p.Year(),
		month: int(p.Month()),
		day:   p.Day(),
	}
	c.hour, c.min, c.sec, c.nsec = clockOf(u)
	return c, nil
}

type persianCursor struct {
	year, month, day     int
	hour, min, sec, nsec int
}

func (c *persianCursor) Year() int  { return c.year }
func (c *persianCursor) Month() int { return c.month }
func (c *persianCursor) Day() int   { return c.day }

func (c *persianCursor) Time() time.Time {
	p := ptime.Date(c.year, ptime.Month(c.month), c.day, c.hour, c.min, c.sec, c.nsec, time.UTC)
	return p.Time().UTC()
}

func (c *persianCursor) AddYears(n int) error {
	year := c.year + n
	if year < persianMinYear || year > persianMaxYear {
		return ErrOutOfRange
	}
	c.year = year
	c.clampDay()
	return nil
}

func (c *persianCursor) AddMonths(n int) error {
	total := c.year*12 + (c.month - 1) + n
	year := total / 12
	month := total%12 + 1
	if total < 0 {
		year = (total - 11) / 12
		month = total - year*12 + 1
	}
	if year < persianMinYear || year > persianMaxYear {
		return ErrOutOfRange
	}
	c.year = year
	c.month = month
	c.clampDay()
	return nil
}

func (c *persianCursor) AddDays(n int) error {
	t := c.Time().AddDate(0, 0, n)
	p := ptime.New(t)
	if p.Year() < persianMinYear || p.Year() > persianMaxYear {
		return ErrOutOfRange
	}
	c.year = p.Year()
	c.month = int(p.Month())
	c.day = p.Day()
	return nil
}

func (c *persianCursor) Clone() Cursor {
	clone := *c
	return &clone
}

func (c *persianCursor) clampDay() {
	if last := persianDaysIn(c.year, c.month); c.day > last {
		c.day = last
	}
}

func persianDaysIn(year, month int) int {
	first := ptime.Date(year, ptime.Month(month), 1, 0, 0, 0, 0, time.UTC)
	nextYear, nextMonth := year, month+1
	if nextMonth > 12 {
		nextYear, nextMonth = year+1, 1
	}
	next := ptime.Date(nextYear, ptime.Month(nextMonth), 1, 0, 0, 0, 0, time.UTC)
	d := next.Time().Sub(first.Time())
	return int((d + 12*time.Hour) / (24 * time.Hour))
}
