package skypicker

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/flightbot/bookflight/internal/core"
)

// bookingRequest is the exact booking wire body. passengers carries a
// single record, not an array; the server expects it that way.
type bookingRequest struct {
	Currency     string             `json:"currency"`
	BookingToken string             `json:"booking_token"`
	Passengers   core.PassengerInfo `json:"passengers"`
}

// BookFlight submits the booking for token and returns the confirmed
// PNR.
func (c *Client) BookFlight(ctx context.Context, token string, passenger core.PassengerInfo, currency string) (string, error) {
	payload, err := json.Marshal(bookingRequest{
		Currency:     currency,
		BookingToken: token,
		Passengers:   passenger,
	})
	if err != nil {
		return "", core.Wrap(core.KindResponseFormat, err, "encode booking request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.bookingURL, bytes.NewReader(payload))
	if err != nil {
		return "", core.Wrap(core.KindConnectivity, err, "build booking request")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", c.requestID)

	c.log.WithField("request_id", c.requestID).Debug("posting booking request")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", core.Wrap(core.KindConnectivity, err, "no response from booking server, check your internet connection")
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", core.Wrap(core.KindConnectivity, err, "reading booking response")
	}

	var confirmation core.BookingConfirmation
	if err := json.Unmarshal(body, &confirmation); err != nil {
		return "", core.Errorf(core.KindResponseFormat,
			"invalid response from booking server (status %d): %s", resp.StatusCode, snippet(body))
	}

	if confirmation.Status != core.StatusConfirmed {
		return "", core.Errorf(core.KindBookingRejected, "booking not successful: %s", snippet(body))
	}
	return confirmation.PNR, nil
}
