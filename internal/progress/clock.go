package progress

import "time"

// Clock supplies the current instant. Injected so streak and ledger
// logic can be tested against simulated multi-day sequences.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// SystemClock returns a Clock backed by time.Now.
func SystemClock() Clock { return systemClock{} }

// sameCalendarDay reports whether a and b fall on the same local
// calendar day. Comparison is by year/month/day components, not elapsed
// time: 23:59 and 00:01 the next day are different days despite the
// two-minute gap.
func sameCalendarDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// isPreviousCalendarDay reports whether t falls on the local calendar
// day immediately before now.
func isPreviousCalendarDay(t, now time.Time) bool {
	return sameCalendarDay(t, now.AddDate(0, 0, -1))
}

// DateKey formats t's local calendar date as the canonical YYYY-MM-DD
// ledger key.
func DateKey(t time.Time) string {
	return t.Format("2006-01-02")
}
