package leave

import "time"

// WorkingDays returns the count of calendar days in the inclusive range
// [start, end] whose weekday is not Saturday or Sunday. Dates are treated as
// plain calendar dates; no timezone conversion. Defined only for start <= end,
// which callers validate before invoking.
func WorkingDays(start, end time.Time) float64 {
	var count float64
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		if wd := d.Weekday(); wd != time.Saturday && wd != time.Sunday {
			count++
		}
	}
	return count
}
