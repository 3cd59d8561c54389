package core

import (
	"context"

	"github.com/sirupsen/logrus"
)

// Orchestrator drives one booking run: format the search payload, find
// the top offer, book it. The steps are strictly sequential and the
// first failure aborts the run.
type Orchestrator struct {
	finder FlightFinder
	booker FlightBooker
	log    *logrus.Logger
}

func NewOrchestrator(finder FlightFinder, booker FlightBooker, log *logrus.Logger) *Orchestrator {
	return &Orchestrator{finder: finder, booker: booker, log: log}
}

// Run books the top search result and returns its PNR. The booking call
// is never attempted when the search fails, whatever the reason.
func (o *Orchestrator) Run(ctx context.Context, criteria SearchCriteria, passenger PassengerInfo, currency string) (string, error) {
	payload, err := criteria.Payload()
	if err != nil {
		return "", err
	}

	o.log.WithFields(logrus.Fields{
		"from": criteria.Origin,
		"to":   criteria.Destination,
		"date": criteria.DepartureDate,
		"trip": criteria.Trip,
		"sort": criteria.Sort,
	}).Debug("searching flights")

	token, err := o.finder.FindFlight(ctx, payload)
	if err != nil {
		return "", err
	}

	o.log.WithField("currency", currency).Debug("booking top offer")

	pnr, err := o.booker.BookFlight(ctx, token, passenger, currency)
	if err != nil {
		return "", err
	}

	o.log.WithField("pnr", pnr).Debug("booking confirmed")
	return pnr, nil
}
