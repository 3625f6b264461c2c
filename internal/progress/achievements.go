package progress

import "practicego/internal/models"

// streakThresholds and pointThresholds map progress milestones to the
// achievements they unlock. All thresholds are checked cumulatively:
// reaching 30 days unlocks every streak achievement crossed on the way.
var streakThresholds = []struct {
	days int
	id   models.AchievementID
}{
	{3, models.AchievementStreak3},
	{7, models.AchievementStreak7},
	{30, models.AchievementStreak30},
}

var pointThresholds = []struct {
	points int
	id     models.AchievementID
}{
	{100, models.AchievementPoints100},
	{500, models.AchievementPoints500},
	{1000, models.AchievementPoints1000},
}

// applyAchievements unlocks every achievement the record now qualifies
// for. Each rule is independent and additive, and unlocking is
// idempotent: an achievement already held is a no-op. Tokens outside
// the static catalog are ignored.
func applyAchievements(record *models.ProgressRecord, token models.AchievementID) {
	if token != "" && token.IsValid() {
		unlock(record, token)
	}

	for _, t := range streakThresholds {
		if record.Streak >= t.days {
			unlock(record, t.id)
		}
	}
	for _, t := range pointThresholds {
		if record.Points >= t.points {
			unlock(record, t.id)
		}
	}
}

func unlock(record *models.ProgressRecord, id models.AchievementID) {
	if record.HasAchievement(id) {
		return
	}
	record.Achievements = append(record.Achievements, id)
}
