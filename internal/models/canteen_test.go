package models

import (
	"testing"
	"time"
)

func TestCanteenIsOpenAt(t *testing.T) {
	canteen := &Canteen{OpeningTime: "08:30", ClosingTime: "20:00"}

	at := func(clock string) time.Time {
		ts, err := time.Parse("2006-01-02 15:04", "2026-08-31 "+clock)
		if err != nil {
			t.Fatalf("parse %q: %v", clock, err)
		}
		return ts
	}

	tests := []struct {
		clock string
		open  bool
	}{
		{"08:29", false},
		{"08:30", true},
		{"12:00", true},
		{"20:00", true},
		{"20:01", false},
		{"03:00", false},
	}

	for _, tt := range tests {
		if got := canteen.IsOpenAt(at(tt.clock)); got != tt.open {
			t.Errorf("IsOpenAt(%s) = %v, want %v", tt.clock, got, tt.open)
		}
	}

	bad := &Canteen{OpeningTime: "soon", ClosingTime: "late"}
	if bad.IsOpenAt(at("12:00")) {
		t.Errorf("malformed times should count as closed")
	}
}
