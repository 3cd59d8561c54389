package core

import (
	"net/url"
	"strconv"
	"time"
)

const (
	isoDateLayout = "2006-01-02"
	apiDateLayout = "02/01/2006"
)

// Payload converts the criteria into the query parameters the search API
// expects. The API wants departure dates as DD/MM/YYYY, a typeFlight of
// "oneway" or "return", and daysInDestination only on return trips.
func (c SearchCriteria) Payload() (SearchPayload, error) {
	departure, err := time.Parse(isoDateLayout, c.DepartureDate)
	if err != nil {
		return nil, Errorf(KindArgument, "incorrect date format, enter date of departure as YYYY-MM-DD")
	}

	v := url.Values{}
	v.Set("flyFrom", c.Origin)
	v.Set("to", c.Destination)
	v.Set("dateFrom", departure.Format(apiDateLayout))
	v.Set("typeFlight", string(c.Trip))
	v.Set("sort", string(c.Sort))
	if c.Trip == TripReturn {
		v.Set("daysInDestination", strconv.Itoa(c.ReturnDays))
	}
	return SearchPayload(v), nil
}
