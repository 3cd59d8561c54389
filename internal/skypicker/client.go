package skypicker

import (
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Client talks to the flight search API and its companion booking
// service. One Client serves one program run and stamps both calls with
// the same request ID.
type Client struct {
	searchURL  string
	bookingURL string
	httpClient *http.Client
	log        *logrus.Logger
	requestID  string
}

// NewClient wires a client against the two endpoints. A zero timeout
// keeps the HTTP client's default behavior.
func NewClient(searchURL, bookingURL string, timeout time.Duration, log *logrus.Logger) *Client {
	return &Client{
		searchURL:  searchURL,
		bookingURL: bookingURL,
		httpClient: &http.Client{Timeout: timeout},
		log:        log,
		requestID:  uuid.New().String(),
	}
}

const maxBodyInDiagnostics = 512

// snippet keeps diagnostics readable when a server answers with a page
// of HTML instead of JSON.
func snippet(body []byte) string {
	s := strings.TrimSpace(string(body))
	if s == "" {
		return "(empty body)"
	}
	if len(s) > maxBodyInDiagnostics {
		return s[:maxBodyInDiagnostics] + "..."
	}
	return s
}
