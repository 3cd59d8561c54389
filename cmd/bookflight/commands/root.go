package commands

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/flightbot/bookflight/internal/config"
	"github.com/flightbot/bookflight/internal/core"
	"github.com/flightbot/bookflight/internal/output"
)

// RootCmd is the whole pipeline: search for the best matching flight,
// book it, print the PNR.
func RootCmd() *cobra.Command {
	var flags *criteriaFlags

	cmd := &cobra.Command{
		Use:   "bookflight",
		Short: "Search and book the best matching flight in one shot",
		Long: "bookflight queries the flight search API for the cheapest or shortest " +
			"flight on your route and date, books the top result with the configured " +
			"passenger, and prints the booking reference (PNR).",
		Example: `  bookflight --date 2024-06-01 --from NYC --to LON --return 10
  bookflight --date 2024-06-01 --from PRG --to BCN --one-way --shortest`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			criteria, err := flags.criteria(cmd)
			if err != nil {
				return err
			}

			log := newLogger(cmd)
			cfg := config.Load()
			client := buildClient(cfg, log)

			orch := core.NewOrchestrator(client, client, log)
			pnr, err := orch.Run(cmd.Context(), criteria, cfg.Passenger, cfg.Currency)
			if err != nil {
				return err
			}
			return output.Line(pnr)
		},
	}

	cmd.PersistentFlags().Bool("verbose", false, "Log pipeline steps to stderr")
	flags = addCriteriaFlags(cmd)

	cmd.SetFlagErrorFunc(func(c *cobra.Command, err error) error {
		return core.Wrap(core.KindArgument, err, "invalid arguments")
	})

	return cmd
}

// newLogger builds the run logger: quiet by default, chatty under
// --verbose. It writes to stderr so stdout stays parseable.
func newLogger(cmd *cobra.Command) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(os.Stderr)
	log.SetLevel(logrus.WarnLevel)
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		log.SetLevel(logrus.DebugLevel)
	}
	return log
}
