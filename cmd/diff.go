package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"datecalc/internal/calendar"
	"datecalc/internal/engine"
	"datecalc/internal/services"
)

var diffDaysOnly bool

var diffCmd = &cobra.Command{
	Use:   "diff <from> <to>",
	Short: "Difference between two dates (YYYY-MM-DD)",
	Args:  cobra.ExactArgs(2),
	RunE:  runDiff,
}

func runDiff(cmd *cobra.Command, args []string) error {
	from, err := time.Parse("2006-01-02", args[0])
	if err != nil {
		return fmt.Errorf("invalid from date: %w", err)
	}
	to, err := time.Parse("2006-01-02", args[1])
	if err != nil {
		return fmt.Errorf("invalid to date: %w", err)
	}

	e, err := newEngine()
	if err != nil {
		return err
	}

	units := engine.AllUnits
	if diffDaysOnly {
		units = engine.UnitDay
	}

	diff, err := e.GetDateDifference(engine.ClipTime(from), engine.ClipTime(to), units)
	if err != nil {
		return err
	}

	fmt.Println(services.FormatDifference(diff))

	if !diffDaysOnly && !diff.IsZero() {
		daysOnly, err := e.GetDateDifference(engine.ClipTime(from), engine.ClipTime(to), engine.UnitDay)
		if err != nil {
			return err
		}
		fmt.Println(services.FormatDays(daysOnly.Days))
	}
	return nil
}

func newEngine() (*engine.Engine, error) {
	sys, err := calendar.New(calendarID)
	if err != nil {
		return nil, err
	}
	return engine.New(sys), nil
}

func init() {
	diffCmd.Flags().BoolVar(&diffDaysOnly, "days", false, "report the difference as a flat day count")
}
