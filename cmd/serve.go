package cmd

import (
	"github.com/spf13/cobra"

	"datecalc/internal/di"
	"datecalc/internal/structures"
)

var (
	configPath string
	debugMode  bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP date-calculation service",
	Args:  cobra.NoArgs,
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	_, err := di.InitApp(&structures.CliFlags{
		ConfigPath: configPath,
		DebugMode:  debugMode,
	})
	return err
}

func init() {
	serveCmd.Flags().StringVarP(&configPath, "config", "c", "config.yaml", "path to config file")
	serveCmd.Flags().BoolVarP(&debugMode, "debug", "d", false, "log to stderr as well")
}
