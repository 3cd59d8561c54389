package core

import (
	"net/url"
	"testing"
	"time"
)

func TestPayload_ReformatsDateForAPI(t *testing.T) {
	tests := []struct {
		iso  string
		wire string
	}{
		{"2024-06-01", "01/06/2024"},
		{"1999-12-31", "31/12/1999"},
		{"2024-02-29", "29/02/2024"},
		{"2030-01-02", "02/01/2030"},
	}
	for _, tt := range tests {
		criteria := SearchCriteria{DepartureDate: tt.iso, Origin: "NYC", Destination: "LON", Trip: TripOneWay, Sort: SortPrice}
		payload, err := criteria.Payload()
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", tt.iso, err)
		}
		if got := payload.Get("dateFrom"); got != tt.wire {
			t.Errorf("%s: expected dateFrom %s, got %s", tt.iso, tt.wire, got)
		}

		// The wire date must round-trip back to the exact input day.
		back, err := time.Parse("02/01/2006", payload.Get("dateFrom"))
		if err != nil {
			t.Fatalf("%s: wire date does not parse: %v", tt.iso, err)
		}
		if back.Format("2006-01-02") != tt.iso {
			t.Errorf("%s: round trip produced %s", tt.iso, back.Format("2006-01-02"))
		}
	}
}

func TestPayload_RejectsBadDates(t *testing.T) {
	for _, date := range []string{"01/06/2024", "2024-13-01", "2024-02-30", "June 1st", ""} {
		criteria := SearchCriteria{DepartureDate: date, Origin: "NYC", Destination: "LON", Trip: TripOneWay, Sort: SortPrice}
		if _, err := criteria.Payload(); !IsKind(err, KindArgument) {
			t.Errorf("%q: expected an argument error, got %v", date, err)
		}
	}
}

func TestPayload_OneWayOmitsDaysInDestination(t *testing.T) {
	criteria := SearchCriteria{DepartureDate: "2024-06-01", Origin: "NYC", Destination: "LON", Trip: TripOneWay, Sort: SortPrice}
	payload, err := criteria.Payload()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := payload.Get("typeFlight"); got != "oneway" {
		t.Errorf("expected typeFlight oneway, got %s", got)
	}
	if _, ok := url.Values(payload)["daysInDestination"]; ok {
		t.Error("one-way payload must not carry daysInDestination")
	}
}

func TestPayload_ReturnCarriesDaysInDestination(t *testing.T) {
	criteria := SearchCriteria{DepartureDate: "2024-06-01", Origin: "NYC", Destination: "LON", Trip: TripReturn, ReturnDays: 7, Sort: SortPrice}
	payload, err := criteria.Payload()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := payload.Get("typeFlight"); got != "return" {
		t.Errorf("expected typeFlight return, got %s", got)
	}
	if got := payload.Get("daysInDestination"); got != "7" {
		t.Errorf("expected daysInDestination 7, got %q", got)
	}
}

func TestPayload_CarriesRouteAndSort(t *testing.T) {
	criteria := SearchCriteria{DepartureDate: "2024-06-01", Origin: "NYC", Destination: "LON", Trip: TripOneWay, Sort: SortDuration}
	payload, err := criteria.Payload()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := payload.Get("flyFrom"); got != "NYC" {
		t.Errorf("expected flyFrom NYC, got %s", got)
	}
	if got := payload.Get("to"); got != "LON" {
		t.Errorf("expected to LON, got %s", got)
	}
	if got := payload.Get("sort"); got != "duration" {
		t.Errorf("expected sort duration, got %s", got)
	}
}
