package models

import "time"

// DayActivity aggregates the activities recorded on one calendar day.
type DayActivity struct {
	Count  int `json:"count"`
	Points int `json:"points"`
}

// ProgressRecord is the single persisted progress aggregate for the
// local user. It is mutated only through the progress service's
// AddPoints operation.
type ProgressRecord struct {
	Points        int             `json:"points"`
	Streak        int             `json:"streak"`
	LastPracticed *time.Time      `json:"lastPracticed"`
	Achievements  []AchievementID `json:"achievements"`
	// Activities is keyed by local calendar date in YYYY-MM-DD form.
	// Entries are created on first activity of a day and never removed.
	Activities map[string]DayActivity `json:"activities"`
}

// NewProgressRecord returns the default empty record used when nothing
// is stored or the stored value cannot be parsed.
func NewProgressRecord() *ProgressRecord {
	return &ProgressRecord{
		Points:       0,
		Streak:       0,
		Achievements: []AchievementID{},
		Activities:   map[string]DayActivity{},
	}
}

// HasAchievement reports whether the record already holds the given
// achievement.
func (p *ProgressRecord) HasAchievement(id AchievementID) bool {
	for _, a := range p.Achievements {
		if a == id {
			return true
		}
	}
	return false
}
