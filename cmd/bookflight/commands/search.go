package commands

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/flightbot/bookflight/internal/config"
	"github.com/flightbot/bookflight/internal/core"
	"github.com/flightbot/bookflight/internal/output"
	"github.com/flightbot/bookflight/internal/skypicker"
)

// SearchCmd looks for flights without booking anything: a dry run that
// prints the top offers in the order the server sorted them.
func SearchCmd() *cobra.Command {
	var flags *criteriaFlags
	var max int

	cmd := &cobra.Command{
		Use:   "search",
		Short: "Search for flights without booking",
		Example: `  bookflight search --date 2024-06-01 --from NYC --to LON --return 10
  bookflight search --date 2024-06-01 --from PRG --to BCN --shortest --max 3`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			criteria, err := flags.criteria(cmd)
			if err != nil {
				return err
			}
			payload, err := criteria.Payload()
			if err != nil {
				return err
			}

			log := newLogger(cmd)
			cfg := config.Load()
			client := buildClient(cfg, log)

			reply, err := client.Search(cmd.Context(), payload)
			if err != nil {
				return err
			}
			if reply.Empty() {
				return skypicker.ErrNoFlights
			}

			return output.JSON(core.SearchReport{
				Query:     criteria,
				Results:   reply.Results,
				Offers:    core.SummarizeOffers(reply.Data, max),
				FetchedAt: time.Now().UTC(),
			})
		},
	}

	flags = addCriteriaFlags(cmd)
	cmd.Flags().IntVar(&max, "max", 5, "Maximum offers to print")

	return cmd
}
