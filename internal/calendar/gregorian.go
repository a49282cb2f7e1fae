package calendar

import "time"

// Gregorian year range mirrors the usual 0001-01-01 .. 9999-12-31 window.
const (
	gregorianMinYear = 1
	gregorianMaxYear = 9999
)

type gregorianSystem struct{}

func (s *gregorianSystem) Identifier() string { return Gregorian }

func (s *gregorianSystem) NewCursor(t time.Time) (Cursor, error) {
	u := t.UTC()
	if u.Year() < gregorianMinYear || u.Year() > gregorianMaxYear {
		return nil, ErrOutOfRange
	}
	c := &gregorianCursor{
		year:  u.Year(),
		month: int(u.Month()),
		day:   u.Day(),
	}
	c.hour, c.min, c.sec, c.nsec = clockOf(u)
	return c, nil
}

type gregorianCursor struct {
	year, month, day     int
	hour, min, sec, nsec int
}

func (c *gregorianCursor) Year() int  { return c.year }
func (c *gregorianCursor) Month() int { return c.month }
func (c *gregorianCursor) Day() int   { return c.day }

func (c *gregorianCursor) Time() time.Time {
	return time.Date(c.year, time.Month(c.month), c.day, c.hour, c.min, c.sec, c.nsec, time.UTC)
}

func (c *gregorianCursor) AddYears(n int) error {
	year := c.year + n
	if year < gregorianMinYear || year > gregorianMaxYear {
		return ErrOutOfRange
	}
	c.year = year
	c.clampDay()
	return nil
}

func (c *gregorianCursor) AddMonths(n int) error {
	total := c.year*12 + (c.month - 1) + n
	year := total / 12
	month := total%12 + 1
	if total < 0 {
		// integer division truncates toward zero; re-normalize
		year = (total - 11) / 12
		month = total - year*12 + 1
	}
	if year < gregorianMinYear || year > gregorianMaxYear {
		return ErrOutOfRange
	}
	c.year = year
	c.month = month
	c.clampDay()
	return nil
}

func (c *gregorianCursor) AddDays(n int) error {
	t := c.Time().AddDate(0, 0, n)
	if t.Year() < gregorianMinYear || t.Year() > gregorianMaxYear {
		return ErrOutOfRange
	}
	c.year = t.Year()
	c.month = int(t.Month())
	c.day = t.Day()
	return nil
}

func (c *gregorianCursor) Clone() Cursor {
	clone := *c
	return &clone
}

func (c *gregorianCursor) clampDay() {
	if last := gregorianDaysIn(c.year, c.month); c.day > last {
		c.day = last
	}
}

// gregorianDaysIn returns the number of days in the given month.
func gregorianDaysIn(year, month int) int {
	// day 0 of the next month is the last day of this one
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
