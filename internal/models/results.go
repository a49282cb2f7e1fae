package models

import "time"

// DifferenceResult is the outcome of a date-difference calculation:
// the full decomposition, the flat day count, and display strings.
type DifferenceResult struct {
	Years         int    `json:"years"`
	Months        int    `json:"months"`
	Weeks         int    `json:"weeks"`
	Days          int    `json:"days"`
	TotalDays     int    `json:"total_days"`
	SameDates     bool   `json:"same_dates"`
	Summary       string `json:"summary"`
	SummaryInDays string `json:"summary_in_days,omitempty"`
}

// OffsetResult is the outcome of an add/subtract calculation. When the
// result would leave the calendar's representable range, InRange is false
// and the other fields are empty; that is an expected outcome, not an
// error.
type OffsetResult struct {
	InRange   bool       `json:"in_range"`
	Result    *time.Time `json:"result,omitempty"`
	Formatted string     `json:"formatted,omitempty"`
}
