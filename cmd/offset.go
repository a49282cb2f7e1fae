package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"datecalc/internal/engine"
)

var (
	offsetYears  int
	offsetMonths int
	offsetDays   int
)

var addCmd = &cobra.Command{
	Use:   "add <date>",
	Short: "Add years, months and days to a date (YYYY-MM-DD)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runOffset(args[0], false)
	},
}

var subCmd = &cobra.Command{
	Use:   "sub <date>",
	Short: "Subtract years, months and days from a date (YYYY-MM-DD)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runOffset(args[0], true)
	},
}

func runOffset(arg string, subtract bool) error {
	start, err := time.Parse("2006-01-02", arg)
	if err != nil {
		return fmt.Errorf("invalid date: %w", err)
	}

	e, err := newEngine()
	if err != nil {
		return err
	}

	dur := engine.DateDifference{Years: offsetYears, Months: offsetMonths, Days: offsetDays}

	var result time.Time
	var ok bool
	if subtract {
		result, ok = e.SubtractDuration(start, dur)
	} else {
		result, ok = e.AddDuration(start, dur)
	}
	if !ok {
		return fmt.Errorf("result is outside the representable calendar range")
	}

	fmt.Println(result.Format("2006-01-02"))
	return nil
}

func init() {
	for _, c := range []*cobra.Command{addCmd, subCmd} {
		c.Flags().IntVarP(&offsetYears, "years", "y", 0, "number of years")
		c.Flags().IntVarP(&offsetMonths, "months", "m", 0, "number of months")
		c.Flags().IntVarP(&offsetDays, "days", "d", 0, "number of days")
	}
}
