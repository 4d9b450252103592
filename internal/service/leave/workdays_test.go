package leave

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(s string) time.Time {
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestWorkingDays(t *testing.T) {
	cases := []struct {
		name  string
		start string
		end   string
		want  float64
	}{
		{"single weekday", "2026-01-05", "2026-01-05", 1},
		{"single saturday", "2026-01-03", "2026-01-03", 0},
		{"single sunday", "2026-01-04", "2026-01-04", 0},
		{"monday to friday", "2026-01-05", "2026-01-09", 5},
		{"full week including weekend", "2026-01-05", "2026-01-11", 5},
		{"friday to monday spans weekend", "2026-01-09", "2026-01-12", 2},
		{"two full weeks", "2026-01-05", "2026-01-18", 10},
		{"year boundary", "2025-12-31", "2026-01-02", 3},
		{"leap day range", "2024-02-28", "2024-03-01", 3},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := WorkingDays(date(c.start), date(c.end))
			assert.Equal(t, c.want, got)
		})
	}
}

func TestWorkingDaysIsAdditiveOverSplit(t *testing.T) {
	// [start, mid] + [mid+1, end] must equal [start, end].
	start, mid, end := date("2026-03-02"), date("2026-03-13"), date("2026-03-27")

	whole := WorkingDays(start, end)
	split := WorkingDays(start, mid) + WorkingDays(mid.AddDate(0, 0, 1), end)
	assert.Equal(t, whole, split)
}
