package progress

import (
	"time"

	"practicego/internal/models"
)

// StreakBonus is the flat point bonus granted when the streak advances
// by exactly one day.
const StreakBonus = 20

// evaluateStreak applies the streak rules against now and returns the
// bonus earned (0 or StreakBonus). Called at most once per recorded
// activity.
//
// Rules:
//   - no previous activity: streak becomes 1, no bonus
//   - last activity today: nothing changes, the day is already covered
//   - last activity yesterday: streak advances, bonus granted
//   - anything else (gap of 2+ days, or a future timestamp): reset to 1
func evaluateStreak(record *models.ProgressRecord, now time.Time) int {
	if record.LastPracticed == nil {
		record.Streak = 1
		record.LastPracticed = &now
		return 0
	}

	last := *record.LastPracticed
	switch {
	case sameCalendarDay(last, now):
		return 0
	case isPreviousCalendarDay(last, now):
		record.Streak++
		record.LastPracticed = &now
		return StreakBonus
	default:
		record.Streak = 1
		record.LastPracticed = &now
		return 0
	}
}

// recordActivity increments the ledger entry for the given date key,
// creating it zeroed first if absent. One call per recorded activity.
func recordActivity(record *models.ProgressRecord, dateKey string, points int) {
	day := record.Activities[dateKey]
	day.Count++
	day.Points += points
	record.Activities[dateKey] = day
}
