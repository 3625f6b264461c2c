package progress

import (
	"log"

	"practicego/internal/models"
)

// Service is the single entry point features call to report a completed
// activity. It orchestrates the clock, streak evaluation, the activity
// ledger, and achievement unlocking against the record store.
type Service struct {
	store *RecordStore
	clock Clock
}

// NewService creates a progress service with an injected clock.
func NewService(store *RecordStore, clock Clock) *Service {
	return &Service{store: store, clock: clock}
}

// AddPoints records one completed activity worth basePoints and returns
// the updated record plus the streak bonus applied (0 or StreakBonus),
// so callers can show e.g. "+15 pts (+20 pts bonus!)".
//
// Input policy: negative basePoints are clamped to 0 and achievement
// tokens outside the catalog are ignored. Gamification is a
// non-critical layer; callers never receive an error. The activity
// label is used for logging only and is not persisted.
func (s *Service) AddPoints(basePoints int, activity string, token models.AchievementID) (*models.ProgressRecord, int) {
	if basePoints < 0 {
		log.Printf("Warning: negative points (%d) for activity %q clamped to 0", basePoints, activity)
		basePoints = 0
	}

	now := s.clock.Now()
	record := s.store.Load()

	bonus := evaluateStreak(record, now)
	total := basePoints + bonus
	record.Points += total

	recordActivity(record, DateKey(now), total)
	applyAchievements(record, token)

	if err := s.store.Save(record); err != nil {
		// Best effort: the in-memory record still reflects the update
		// for this session.
		log.Printf("Warning: %v", err)
	}

	return record, bonus
}

// Progress returns the current record for display. If the last activity
// is neither today nor yesterday the reported streak is coerced to 0;
// this is a read-time correction only and does not touch the stored
// record.
func (s *Service) Progress() *models.ProgressRecord {
	record := s.store.Load()
	if record.LastPracticed != nil {
		now := s.clock.Now()
		last := *record.LastPracticed
		if !sameCalendarDay(last, now) && !isPreviousCalendarDay(last, now) {
			record.Streak = 0
		}
	}
	return record
}
