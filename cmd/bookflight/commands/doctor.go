package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/flightbot/bookflight/internal/config"
	"github.com/flightbot/bookflight/internal/core"
	"github.com/flightbot/bookflight/internal/output"
)

func DoctorCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Validate endpoint and passenger configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			issues := cfg.Problems()

			report := core.DoctorReport{
				SearchURL:         cfg.SearchURL,
				BookingURL:        cfg.BookingURL,
				Currency:          cfg.Currency,
				PassengerComplete: cfg.Passenger.Complete(),
				Issues:            issues,
				Healthy:           len(issues) == 0,
			}
			if report.Healthy {
				report.Summary = "configuration looks bookable"
			} else {
				report.Summary = fmt.Sprintf("%d issue(s) found", len(issues))
			}
			return output.JSON(report)
		},
	}
}
