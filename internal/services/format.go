package services

import (
	"fmt"
	"strings"

	"datecalc/internal/engine"
)

// listSeparator joins the unit phrases of a difference summary.
const listSeparator = ", "

// FormatDifference renders a decomposition as "3 years, 2 months, 5 days",
// skipping zero units. An all-zero difference renders as "same dates".
func FormatDifference(d engine.DateDifference) string {
	if d.IsZero() {
		return "same dates"
	}

	parts := make([]string, 0, 4)
	if d.Years > 0 {
		parts = append(parts, pluralize(d.Years, "year"))
	}
	if d.Months > 0 {
		parts = append(parts, pluralize(d.Months, "month"))
	}
	if d.Weeks > 0 {
		parts = append(parts, pluralize(d.Weeks, "week"))
	}
	if d.Days > 0 {
		parts = append(parts, pluralize(d.Days, "day"))
	}
	return strings.Join(parts, listSeparator)
}

// FormatDays renders a flat day count as "1 day" or "N days".
func FormatDays(days int) string {
	return pluralize(days, "day")
}

func pluralize(n int, unit string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, unit)
	}
	return fmt.Sprintf("%d %ss", n, unit)
}
