package core

import "encoding/json"

// OfferSummary is the human-relevant slice of a raw search result.
// Field names mirror the provider's response; the rest of each record
// stays opaque.
type OfferSummary struct {
	BookingToken string   `json:"booking_token"`
	Price        float64  `json:"price"`
	CityFrom     string   `json:"cityFrom,omitempty"`
	CityTo       string   `json:"cityTo,omitempty"`
	FlyFrom      string   `json:"flyFrom,omitempty"`
	FlyTo        string   `json:"flyTo,omitempty"`
	FlyDuration  string   `json:"fly_duration,omitempty"`
	DepartureUTC int64    `json:"dTime,omitempty"`
	ArrivalUTC   int64    `json:"aTime,omitempty"`
	Airlines     []string `json:"airlines,omitempty"`
}

// SummarizeOffers decodes up to max raw search records for display.
// Records that do not decode are skipped, and the server's sort order is
// preserved; this never re-ranks.
func SummarizeOffers(raw []json.RawMessage, max int) []OfferSummary {
	var out []OfferSummary
	for _, r := range raw {
		if max > 0 && len(out) >= max {
			break
		}
		var s OfferSummary
		if err := json.Unmarshal(r, &s); err != nil {
			continue
		}
		out = append(out, s)
	}
	return out
}
