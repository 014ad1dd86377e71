package pricing

import "time"

const day = 24 * time.Hour

// ceilDays rounds a duration up to whole days. Non-positive durations give 0.
func ceilDays(d time.Duration) int {
	if d <= 0 {
		return 0
	}
	days := int(d / day)
	if d%day != 0 {
		days++
	}
	return days
}

// RentalDays is the billable length of [start, end]: whole days rounded up,
// never less than one.
func RentalDays(start, end time.Time) int {
	days := ceilDays(end.Sub(start))
	if days < 1 {
		return 1
	}
	return days
}

// SpanDays is the length of [start, end] in whole days rounded up, 0 when end
// is not after start.
func SpanDays(start, end time.Time) int {
	return ceilDays(end.Sub(start))
}

// DaysLate is how many started days actual is past expected, 0 when on time or early.
func DaysLate(expected, actual time.Time) int {
	return ceilDays(actual.Sub(expected))
}
