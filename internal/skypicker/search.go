package skypicker

import (
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/flightbot/bookflight/internal/core"
)

// SearchReply mirrors the search endpoint's envelope. The flight records
// stay raw: the pipeline only reads the top record's booking token, and
// the search subcommand summarizes a handful for display.
type SearchReply struct {
	Results int               `json:"_results"`
	Data    []json.RawMessage `json:"data"`
}

// Empty reports whether the reply carries no usable flight records.
func (r *SearchReply) Empty() bool {
	return r.Results == 0 || len(r.Data) == 0
}

// ErrNoFlights is returned when a search comes back without a single
// matching flight.
var ErrNoFlights = core.Errorf(core.KindNoResults, "no flights found, check spelling of parameters")

// Search issues the GET against the search endpoint and decodes the
// envelope. The server sorts the result list by the requested criterion,
// so callers may rely on Data[0] being the best match.
func (c *Client) Search(ctx context.Context, payload core.SearchPayload) (*SearchReply, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.searchURL, nil)
	if err != nil {
		return nil, core.Wrap(core.KindConnectivity, err, "build search request")
	}
	req.URL.RawQuery = payload.Encode()
	req.Header.Set("X-Request-ID", c.requestID)

	c.log.WithFields(logrus.Fields{
		"request_id": c.requestID,
		"query":      req.URL.RawQuery,
	}).Debug("querying search endpoint")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, core.Wrap(core.KindConnectivity, err, "no response from search server, check your internet connection")
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, core.Wrap(core.KindConnectivity, err, "reading search response")
	}

	var reply SearchReply
	if err := json.Unmarshal(body, &reply); err != nil {
		return nil, core.Errorf(core.KindResponseFormat,
			"invalid response from search server (status %d), server may be offline: %s",
			resp.StatusCode, snippet(body))
	}
	return &reply, nil
}

// FindFlight runs the search and returns the booking token of its top
// result.
func (c *Client) FindFlight(ctx context.Context, payload core.SearchPayload) (string, error) {
	reply, err := c.Search(ctx, payload)
	if err != nil {
		return "", err
	}
	if reply.Empty() {
		return "", ErrNoFlights
	}

	var top struct {
		BookingToken string `json:"booking_token"`
	}
	if err := json.Unmarshal(reply.Data[0], &top); err != nil || top.BookingToken == "" {
		return "", core.Errorf(core.KindResponseFormat, "search result is missing a booking token")
	}

	c.log.WithField("results", reply.Results).Debug("top offer selected")
	return top.BookingToken, nil
}
