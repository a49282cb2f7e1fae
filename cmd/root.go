package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var calendarID string

var rootCmd = &cobra.Command{
	Use:   "datecalc",
	Short: "datecalc – calendar-aware date difference and offset calculator",
	Long: `datecalc computes calendar-aware differences between dates and adds or
subtracts durations from a date, with correct month-length and leap-year
handling. It runs either as one-shot terminal commands or as an HTTP
service with a persisted calculation history.`,
}

// Execute is the entry point called from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&calendarID, "calendar", "gregorian", "calendar system (gregorian, hijri, persian)")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(diffCmd)
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(subCmd)
}
