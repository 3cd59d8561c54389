package commands

import (
	"github.com/spf13/cobra"

	"github.com/flightbot/bookflight/internal/config"
	"github.com/flightbot/bookflight/internal/output"
)

// ConfigCmd prints the configuration the pipeline would use, after file
// and environment overrides.
func ConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			return output.JSON(config.Load())
		},
	}
}
