package jobs

import (
	"testing"
	"time"
)

func TestPositionsWarmupNextRun(t *testing.T) {
	job := &PositionsWarmup{}

	tests := []struct {
		now  string
		want string
	}{
		{"2026-08-31T03:00:00Z", "2026-08-31T05:00:00Z"}, // до 05:00 — сегодня
		{"2026-08-31T05:00:00Z", "2026-09-01T05:00:00Z"}, // ровно 05:00 — завтра
		{"2026-08-31T12:30:00Z", "2026-09-01T05:00:00Z"}, // после 05:00 — завтра
		{"2026-12-31T23:59:59Z", "2027-01-01T05:00:00Z"}, // перенос через год
	}

	for _, tt := range tests {
		now, err := time.Parse(time.RFC3339, tt.now)
		if err != nil {
			t.Fatal(err)
		}
		want, err := time.Parse(time.RFC3339, tt.want)
		if err != nil {
			t.Fatal(err)
		}

		if got := job.NextRun(now); !got.Equal(want) {
			t.Errorf("NextRun(%s) = %s, want %s", tt.now, got, tt.want)
		}
	}
}
