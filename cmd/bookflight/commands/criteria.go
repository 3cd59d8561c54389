package commands

import (
	"github.com/spf13/cobra"

	"github.com/flightbot/bookflight/internal/core"
)

// criteriaFlags binds the shared search flag set: the root command books
// with it, the search subcommand only searches.
type criteriaFlags struct {
	date        string
	origin      string
	destination string
	oneWay      bool
	returnDays  int
	cheapest    bool
	shortest    bool
}

func addCriteriaFlags(cmd *cobra.Command) *criteriaFlags {
	f := &criteriaFlags{}
	cmd.Flags().StringVar(&f.date, "date", "", "Date of departure as YYYY-MM-DD (required)")
	cmd.Flags().StringVar(&f.origin, "from", "", "Departure airport; IATA codes are safest, city names usually work (required)")
	cmd.Flags().StringVar(&f.destination, "to", "", "Destination airport; IATA codes are safest, city names usually work (required)")
	cmd.Flags().BoolVar(&f.oneWay, "one-way", false, "Search one-way flights only (default)")
	cmd.Flags().IntVar(&f.returnDays, "return", 0, "Search return flights, staying N days in destination")
	cmd.Flags().BoolVar(&f.cheapest, "cheapest", false, "Pick the cheapest flight (default)")
	cmd.Flags().BoolVar(&f.shortest, "shortest", false, "Pick the shortest flight")
	return f
}

// criteria turns the parsed flags into validated search criteria.
// Mutual exclusivity lives in the constructor, not in cobra, so the
// same rules hold however the values arrive.
func (f *criteriaFlags) criteria(cmd *cobra.Command) (core.SearchCriteria, error) {
	in := core.CriteriaInput{
		Date:        f.date,
		Origin:      f.origin,
		Destination: f.destination,
		OneWay:      f.oneWay,
		Cheapest:    f.cheapest,
		Shortest:    f.shortest,
	}
	if cmd.Flags().Changed("return") {
		days := f.returnDays
		in.ReturnDays = &days
	}
	return core.NewSearchCriteria(in)
}
