package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func gregorianCursorAt(t *testing.T, y int, m time.Month, d int) Cursor {
	t.Helper()
	sys := &gregorianSystem{}
	c, err := sys.NewCursor(time.Date(y, m, d, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	return c
}

func TestGregorianCursor_Fields(t *testing.T) {
	c := gregorianCursorAt(t, 2021, time.March, 14)

	assert.Equal(t, 2021, c.Year())
	assert.Equal(t, 3, c.Month())
	assert.Equal(t, 14, c.Day())
	assert.Equal(t, time.Date(2021, time.March, 14, 0, 0, 0, 0, time.UTC), c.Time())
}

func TestGregorianCursor_AddMonthsClampsDay(t *testing.T) {
	c := gregorianCursorAt(t, 2021, time.January, 31)

	require.NoError(t, c.AddMonths(1))
	assert.Equal(t, 2, c.Month())
	assert.Equal(t, 28, c.Day())
}

func TestGregorianCursor_AddMonthsAcrossYears(t *testing.T) {
	c := gregorianCursorAt(t, 2021, time.November, 15)

	require.NoError(t, c.AddMonths(3))
	assert.Equal(t, 2022, c.Year())
	assert.Equal(t, 2, c.Month())

	require.NoError(t, c.AddMonths(-14))
	assert.Equal(t, 2020, c.Year())
	assert.Equal(t, 12, c.Month())
	assert.Equal(t, 15, c.Day())
}

func TestGregorianCursor_AddYearsClampsLeapDay(t *testing.T) {
	c := gregorianCursorAt(t, 2020, time.February, 29)

	require.NoError(t, c.AddYears(1))
	assert.Equal(t, 2021, c.Year())
	assert.Equal(t, 2, c.Month())
	assert.Equal(t, 28, c.Day())
}

func TestGregorianCursor_AddDays(t *testing.T) {
	c := gregorianCursorAt(t, 2020, time.February, 28)

	require.NoError(t, c.AddDays(2))
	assert.Equal(t, time.Date(2020, time.March, 1, 0, 0, 0, 0, time.UTC), c.Time())
}

func TestGregorianCursor_OutOfRange(t *testing.T) {
	c := gregorianCursorAt(t, 9999, time.December, 31)
	assert.ErrorIs(t, c.AddDays(1), ErrOutOfRange)
	assert.ErrorIs(t, c.AddMonths(1), ErrOutOfRange)
	assert.ErrorIs(t, c.AddYears(1), ErrOutOfRange)

	c = gregorianCursorAt(t, 1, time.January, 1)
	assert.ErrorIs(t, c.AddDays(-1), ErrOutOfRange)
	assert.ErrorIs(t, c.AddYears(-1), ErrOutOfRange)
}

func TestGregorianCursor_CloneIsIndependent(t *testing.T) {
	c := gregorianCursorAt(t, 2021, time.June, 10)
	clone := c.Clone()

	require.NoError(t, clone.AddDays(5))
	assert.Equal(t, 10, c.Day())
	assert.Equal(t, 15, clone.Day())
}

func TestGregorianCursor_KeepsTimeOfDay(t *testing.T) {
	sys := &gregorianSystem{}
	c, err := sys.NewCursor(time.Date(2021, time.June, 10, 9, 41, 7, 500, time.UTC))
	require.NoError(t, err)

	require.NoError(t, c.AddMonths(1))
	assert.Equal(t, time.Date(2021, time.July, 10, 9, 41, 7, 500, time.UTC), c.Time())
}

func TestGregorianDaysIn(t *testing.T) {
	assert.Equal(t, 31, gregorianDaysIn(2021, 1))
	assert.Equal(t, 28, gregorianDaysIn(2021, 2))
	assert.Equal(t, 29, gregorianDaysIn(2020, 2))
	assert.Equal(t, 30, gregorianDaysIn(2021, 4))
	assert.Equal(t, 29, gregorianDaysIn(2000, 2))
	assert.Equal(t, 28, gregorianDaysIn(1900, 2))
}
