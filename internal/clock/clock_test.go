package clock

import (
	"testing"
	"time"
)

func TestToday(t *testing.T) {
	c := Fixed{Time: time.Date(2025, 3, 9, 23, 59, 0, 0, time.Local)}
	if got := Today(c); got != "2025-03-09" {
		t.Errorf("Today() = %q, want %q", got, "2025-03-09")
	}

	c = Fixed{Time: time.Date(2025, 3, 10, 0, 0, 1, 0, time.Local)}
	if got := Today(c); got != "2025-03-10" {
		t.Errorf("Today() after midnight = %q, want %q", got, "2025-03-10")
	}
}

func TestDaysSince(t *testing.T) {
	start := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		now  time.Time
		want int
	}{
		{
			name: "same instant",
			now:  start,
			want: 0,
		},
		{
			name: "just under one day",
			now:  start.Add(24*time.Hour - time.Minute),
			want: 0,
		},
		{
			name: "exactly one day",
			now:  start.Add(24 * time.Hour),
			want: 1,
		},
		{
			name: "29 and a half days",
			now:  start.Add(29*24*time.Hour + 12*time.Hour),
			want: 29,
		},
		{
			name: "clock moved before start",
			now:  start.Add(-48 * time.Hour),
			want: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DaysSince(Fixed{Time: tt.now}, start); got != tt.want {
				t.Errorf("DaysSince() = %d, want %d", got, tt.want)
			}
		})
	}
}
