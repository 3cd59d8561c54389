package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/flightbot/bookflight/internal/core"
)

// isolateEnv keeps tests away from the developer's real config file and
// environment.
func isolateEnv(t *testing.T) {
	t.Helper()
	t.Setenv("BOOKFLIGHT_CONFIG", filepath.Join(t.TempDir(), "missing.yaml"))
	t.Setenv("BOOKFLIGHT_SEARCH_URL", "")
	t.Setenv("BOOKFLIGHT_BOOKING_URL", "")
	t.Setenv("BOOKFLIGHT_CURRENCY", "")
}

func TestDefaultConfig_MatchesExternalContract(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.SearchURL != "https://api.skypicker.com/flights" {
		t.Errorf("unexpected search URL: %s", cfg.SearchURL)
	}
	if cfg.BookingURL != "http://37.139.6.125:8080/booking" {
		t.Errorf("unexpected booking URL: %s", cfg.BookingURL)
	}
	if cfg.Currency != "EUR" {
		t.Errorf("expected EUR, got %s", cfg.Currency)
	}
	if !cfg.Passenger.Complete() {
		t.Error("the default passenger must be complete")
	}
	if problems := cfg.Problems(); len(problems) != 0 {
		t.Errorf("the default config should be clean, got %v", problems)
	}
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	isolateEnv(t)
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := "searchURL: https://search.example.com/flights\ncurrency: USD\npassenger:\n  firstName: Alice\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("BOOKFLIGHT_CONFIG", path)

	cfg := Load()
	if cfg.SearchURL != "https://search.example.com/flights" {
		t.Errorf("expected the file search URL, got %s", cfg.SearchURL)
	}
	if cfg.Currency != "USD" {
		t.Errorf("expected USD, got %s", cfg.Currency)
	}
	if cfg.BookingURL != DefaultConfig().BookingURL {
		t.Errorf("keys absent from the file must keep their defaults, got %s", cfg.BookingURL)
	}
	if cfg.Passenger.FirstName != "Alice" {
		t.Errorf("expected passenger Alice, got %s", cfg.Passenger.FirstName)
	}
	if cfg.Passenger.Title != "Mr" {
		t.Errorf("unset passenger fields must keep their defaults, got %q", cfg.Passenger.Title)
	}
}

func TestLoad_EnvBeatsFile(t *testing.T) {
	isolateEnv(t)
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("searchURL: https://file.example.com/flights\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("BOOKFLIGHT_CONFIG", path)
	t.Setenv("BOOKFLIGHT_SEARCH_URL", "https://env.example.com/flights")

	cfg := Load()
	if cfg.SearchURL != "https://env.example.com/flights" {
		t.Errorf("environment must win over the file, got %s", cfg.SearchURL)
	}
}

func TestLoad_MissingFileKeepsDefaults(t *testing.T) {
	isolateEnv(t)
	cfg := Load()
	if cfg.SearchURL != DefaultConfig().SearchURL {
		t.Errorf("expected the default search URL, got %s", cfg.SearchURL)
	}
	if cfg.Currency != "EUR" {
		t.Errorf("expected EUR, got %s", cfg.Currency)
	}
}

func TestProblems_FlagsBrokenConfig(t *testing.T) {
	cfg := &Config{
		SearchURL:  "not a url",
		BookingURL: "ftp://files.example.com/booking",
		Currency:   "",
		Passenger:  core.PassengerInfo{Title: "Mr"},
	}
	problems := cfg.Problems()
	if len(problems) != 4 {
		t.Fatalf("expected 4 problems, got %d: %v", len(problems), problems)
	}
}

func TestTimeout_ZeroMeansNoClientTimeout(t *testing.T) {
	cfg := &Config{}
	if cfg.Timeout() != 0 {
		t.Errorf("expected no timeout, got %v", cfg.Timeout())
	}
	cfg.TimeoutSeconds = 30
	if cfg.Timeout() != 30*time.Second {
		t.Errorf("expected 30s, got %v", cfg.Timeout())
	}
}
