package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/flightbot/bookflight/internal/core"
)

// Config holds everything a run needs besides the search criteria: the
// two endpoint URLs, the booking currency, and the passenger submitted
// with every booking. Defaults match the public search API and the test
// booking server; a config file or environment variables override them.
type Config struct {
	SearchURL      string             `yaml:"searchURL" json:"searchURL"`
	BookingURL     string             `yaml:"bookingURL" json:"bookingURL"`
	Currency       string             `yaml:"currency" json:"currency"`
	TimeoutSeconds int                `yaml:"timeoutSeconds" json:"timeoutSeconds"`
	Passenger      core.PassengerInfo `yaml:"passenger" json:"passenger"`
}

func DefaultConfig() *Config {
	return &Config{
		SearchURL:  "https://api.skypicker.com/flights",
		BookingURL: "http://37.139.6.125:8080/booking",
		Currency:   "EUR",
		Passenger: core.PassengerInfo{
			Title:      "Mr",
			FirstName:  "A",
			LastName:   "B",
			DocumentID: "0",
			Birthday:   "2016-05-20",
			Email:      "a@a.com",
		},
	}
}

// Load builds the effective configuration: defaults, then the optional
// yaml file, then environment variables. A missing or unreadable file is
// not an error.
func Load() *Config {
	cfg := DefaultConfig()

	if path := configPath(); path != "" {
		if data, err := os.ReadFile(path); err == nil {
			_ = yaml.Unmarshal(data, cfg)
		}
	}

	if v := os.Getenv("BOOKFLIGHT_SEARCH_URL"); v != "" {
		cfg.SearchURL = v
	}
	if v := os.Getenv("BOOKFLIGHT_BOOKING_URL"); v != "" {
		cfg.BookingURL = v
	}
	if v := os.Getenv("BOOKFLIGHT_CURRENCY"); v != "" {
		cfg.Currency = v
	}

	return cfg
}

// Timeout is the HTTP client timeout; zero keeps the client's default of
// no timeout at all.
func (c *Config) Timeout() time.Duration {
	if c.TimeoutSeconds <= 0 {
		return 0
	}
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// Problems lists everything that would make a run pointless: endpoints
// that are not absolute http(s) URLs, an empty currency, or a passenger
// with missing fields. Used by the doctor command.
func (c *Config) Problems() []string {
	var problems []string
	if err := checkEndpoint(c.SearchURL); err != nil {
		problems = append(problems, fmt.Sprintf("searchURL: %v", err))
	}
	if err := checkEndpoint(c.BookingURL); err != nil {
		problems = append(problems, fmt.Sprintf("bookingURL: %v", err))
	}
	if c.Currency == "" {
		problems = append(problems, "currency is empty")
	}
	if !c.Passenger.Complete() {
		problems = append(problems, "passenger record is incomplete")
	}
	return problems
}

func checkEndpoint(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("not a valid URL: %v", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("unsupported scheme %q", u.Scheme)
	}
	if u.Host == "" {
		return fmt.Errorf("missing host")
	}
	return nil
}

func configPath() string {
	if p := os.Getenv("BOOKFLIGHT_CONFIG"); p != "" {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	p := filepath.Join(home, ".config", "bookflight", "config.yaml")
	if _, err := os.Stat(p); err == nil {
		return p
	}
	return ""
}
