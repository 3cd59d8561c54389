package core

import (
	"context"
	"net/url"
	"strings"
	"time"
)

type TripType string

const (
	TripOneWay TripType = "oneway"
	TripReturn TripType = "return"
)

type SortBy string

const (
	SortPrice    SortBy = "price"
	SortDuration SortBy = "duration"
)

// SearchCriteria is the validated form of the command line: where to fly,
// when, one-way or return, and which pre-sorted list to ask the server
// for. Build it with NewSearchCriteria and treat it as immutable.
type SearchCriteria struct {
	DepartureDate string   `json:"departureDate"`
	Origin        string   `json:"origin"`
	Destination   string   `json:"destination"`
	Trip          TripType `json:"tripType"`
	ReturnDays    int      `json:"returnDays,omitempty"`
	Sort          SortBy   `json:"sortBy"`
}

// CriteriaInput carries the raw flag values. ReturnDays is nil when
// --return was not given on the command line.
type CriteriaInput struct {
	Date        string
	Origin      string
	Destination string
	OneWay      bool
	ReturnDays  *int
	Cheapest    bool
	Shortest    bool
}

// NewSearchCriteria validates the flag values before anything touches the
// network. Missing or conflicting flags are argument errors.
func NewSearchCriteria(in CriteriaInput) (SearchCriteria, error) {
	var missing []string
	if in.Date == "" {
		missing = append(missing, "--date")
	}
	if in.Origin == "" {
		missing = append(missing, "--from")
	}
	if in.Destination == "" {
		missing = append(missing, "--to")
	}
	if len(missing) > 0 {
		return SearchCriteria{}, Errorf(KindArgument, "missing required flags: %s", strings.Join(missing, ", "))
	}

	if in.OneWay && in.ReturnDays != nil {
		return SearchCriteria{}, Errorf(KindArgument, "--one-way and --return are mutually exclusive")
	}
	if in.Cheapest && in.Shortest {
		return SearchCriteria{}, Errorf(KindArgument, "--cheapest and --shortest are mutually exclusive")
	}

	c := SearchCriteria{
		DepartureDate: in.Date,
		Origin:        in.Origin,
		Destination:   in.Destination,
		Trip:          TripOneWay,
		Sort:          SortPrice,
	}
	if in.ReturnDays != nil {
		if *in.ReturnDays < 0 {
			return SearchCriteria{}, Errorf(KindArgument, "--return wants the number of days in destination, which cannot be negative")
		}
		c.Trip = TripReturn
		c.ReturnDays = *in.ReturnDays
	}
	if in.Shortest {
		c.Sort = SortDuration
	}
	return c, nil
}

// SearchPayload is the flat query-parameter form of SearchCriteria,
// ready to be sent to the search endpoint.
type SearchPayload url.Values

func (p SearchPayload) Encode() string {
	return url.Values(p).Encode()
}

func (p SearchPayload) Get(key string) string {
	return url.Values(p).Get(key)
}

// PassengerInfo is sent verbatim as the booking request's "passengers"
// field. The wire names belong to the booking API, not to us.
type PassengerInfo struct {
	Title      string `json:"title" yaml:"title"`
	FirstName  string `json:"firstName" yaml:"firstName"`
	LastName   string `json:"lastName" yaml:"lastName"`
	DocumentID string `json:"documentID" yaml:"documentID"`
	Birthday   string `json:"birthday" yaml:"birthday"`
	Email      string `json:"email" yaml:"email"`
}

// Complete reports whether every passenger field is filled in.
func (p PassengerInfo) Complete() bool {
	return p.Title != "" && p.FirstName != "" && p.LastName != "" &&
		p.DocumentID != "" && p.Birthday != "" && p.Email != ""
}

const StatusConfirmed = "confirmed"

// BookingConfirmation is the booking endpoint's reply. PNR carries a
// value only when Status is StatusConfirmed.
type BookingConfirmation struct {
	Status string `json:"status"`
	PNR    string `json:"pnr"`
}

// SearchReport is what the search subcommand prints: the query as
// understood, the server's result count, and the top offers in the
// server's order.
type SearchReport struct {
	Query     SearchCriteria `json:"query"`
	Results   int            `json:"results"`
	Offers    []OfferSummary `json:"offers"`
	FetchedAt time.Time      `json:"fetchedAt"`
}

// DoctorReport summarizes whether the current configuration can carry a
// booking end to end. Building it never touches the network.
type DoctorReport struct {
	SearchURL         string   `json:"searchURL"`
	BookingURL        string   `json:"bookingURL"`
	Currency          string   `json:"currency"`
	PassengerComplete bool     `json:"passengerComplete"`
	Issues            []string `json:"issues,omitempty"`
	Healthy           bool     `json:"healthy"`
	Summary           string   `json:"summary"`
}

// FlightFinder resolves a search payload to the booking token of the top
// result.
type FlightFinder interface {
	FindFlight(ctx context.Context, payload SearchPayload) (string, error)
}

// FlightBooker books the offer behind token and returns the PNR.
type FlightBooker interface {
	BookFlight(ctx context.Context, token string, passenger PassengerInfo, currency string) (string, error)
}
