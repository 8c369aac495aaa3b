package pos

import (
	"testing"
	"time"
)

func TestCanEdit(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		closed    bool
		createdAt time.Time
		want      bool
	}{
		{"open and fresh", false, now.Add(-1 * time.Hour), true},
		{"open at exactly 12h", false, now.Add(-12 * time.Hour), true},
		{"open but stale", false, now.Add(-13 * time.Hour), false},
		{"closed and fresh", true, now.Add(-1 * time.Hour), false},
		{"closed and stale", true, now.Add(-13 * time.Hour), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CanEdit(tt.closed, tt.createdAt, now); got != tt.want {
				t.Errorf("CanEdit(%v, %v) = %v, want %v", tt.closed, tt.createdAt, got, tt.want)
			}
		})
	}
}

func TestParseDBTimestamp_NaiveAssumedUTC(t *testing.T) {
	got, err := ParseDBTimestamp("2025-06-01 09:30:00")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := time.Date(2025, 6, 1, 9, 30, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestParseDBTimestamp_WithZone(t *testing.T) {
	got, err := ParseDBTimestamp("2025-06-01T09:30:00+05:45")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := time.Date(2025, 6, 1, 3, 45, 0, 0, time.UTC)
	if !got.UTC().Equal(want) {
		t.Errorf("got %v, want %v", got.UTC(), want)
	}
}

func TestParseDBTimestamp_Zulu(t *testing.T) {
	got, err := ParseDBTimestamp("2025-06-01T09:30:00Z")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Location() != time.UTC {
		t.Errorf("got location %v, want UTC", got.Location())
	}
}

func TestParseDBTimestamp_Invalid(t *testing.T) {
	if _, err := ParseDBTimestamp("not-a-date"); err == nil {
		t.Error("expected error for garbage input")
	}
}
