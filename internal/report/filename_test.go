package report

import (
	"testing"
	"time"
)

func TestFilename(t *testing.T) {
	jan5 := time.Date(2024, 1, 5, 0, 0, 0, 0, time.Local)
	jan9 := time.Date(2024, 1, 9, 0, 0, 0, 0, time.Local)
	aug24 := time.Date(2025, 8, 24, 0, 0, 0, 0, time.Local)

	tests := []struct {
		name     string
		identity string
		min, max time.Time
		want     string
	}{
		{
			name:     "date range",
			identity: "NickoLaygo",
			min:      jan5,
			max:      jan9,
			want:     "NickoLaygo - January 05 - January 09.pdf",
		},
		{
			name:     "single date drops the range",
			identity: "NickoLaygo",
			min:      jan5,
			max:      jan5,
			want:     "NickoLaygo - January 05.pdf",
		},
		{
			name:     "different year same month-day is still a range",
			identity: "A",
			min:      jan5,
			max:      time.Date(2025, 1, 5, 0, 0, 0, 0, time.Local),
			want:     "A - January 05 - January 05.pdf",
		},
		{
			name:     "august",
			identity: "Screenshots",
			min:      aug24,
			max:      aug24,
			want:     "Screenshots - August 24.pdf",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Filename(tt.identity, tt.min, tt.max); got != tt.want {
				t.Errorf("Filename() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFilename_Deterministic(t *testing.T) {
	min := time.Date(2024, 1, 5, 0, 0, 0, 0, time.Local)
	max := time.Date(2024, 1, 9, 0, 0, 0, 0, time.Local)
	first := Filename("X", min, max)
	for i := 0; i < 3; i++ {
		if got := Filename("X", min, max); got != first {
			t.Fatalf("Filename() not deterministic: %q vs %q", got, first)
		}
	}
}
