package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"datecalc/internal/engine"
)

func TestFormatDifference(t *testing.T) {
	tests := []struct {
		name string
		diff engine.DateDifference
		want string
	}{
		{"zero", engine.DateDifference{}, "same dates"},
		{"all units", engine.DateDifference{Years: 3, Months: 2, Days: 5}, "3 years, 2 months, 5 days"},
		{"weeks and days", engine.DateDifference{Weeks: 3, Days: 1}, "3 weeks, 1 day"},
		{"singulars", engine.DateDifference{Years: 1, Months: 1}, "1 year, 1 month"},
		{"days only", engine.DateDifference{Days: 1160}, "1160 days"},
		{"single week", engine.DateDifference{Weeks: 1}, "1 week"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatDifference(tt.diff))
		})
	}
}

func TestFormatDays(t *testing.T) {
	assert.Equal(t, "1 day", FormatDays(1))
	assert.Equal(t, "0 days", FormatDays(0))
	assert.Equal(t, "14 days", FormatDays(14))
}
