package game

import (
	"testing"
	"time"
)

func TestNextMatchDay(t *testing.T) {
	tests := []struct {
		name string
		now  time.Time
		want string
	}{
		{
			name: "monday rolls to thursday",
			now:  time.Date(2025, time.June, 2, 15, 30, 0, 0, time.UTC),
			want: "2025-06-05",
		},
		{
			name: "thursday rolls a full week",
			now:  time.Date(2025, time.June, 5, 9, 0, 0, 0, time.UTC),
			want: "2025-06-12",
		},
		{
			name: "friday rolls to next thursday",
			now:  time.Date(2025, time.June, 6, 0, 0, 0, 0, time.UTC),
			want: "2025-06-12",
		},
		{
			name: "wednesday is the day before",
			now:  time.Date(2025, time.June, 4, 23, 59, 0, 0, time.UTC),
			want: "2025-06-05",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NextMatchDay(tt.now, time.Thursday)
			if got.Format(DateLayout) != tt.want {
				t.Fatalf("expected %s, got %s", tt.want, got.Format(DateLayout))
			}
			if got.Hour() != 0 || got.Minute() != 0 {
				t.Fatalf("match day must be truncated to midnight, got %s", got)
			}
		})
	}
}
