package progress

import (
	"encoding/json"
	"fmt"
	"log"

	"practicego/internal/models"
)

// ProgressKey is the fixed key the progress record is stored under.
const ProgressKey = "practicego_user_progress"

// KeyValueStore is the persistence collaborator the record store reads
// and writes through. The boolean result of Get reports presence.
type KeyValueStore interface {
	Get(key string) (string, bool, error)
	Set(key, value string) error
}

// RecordStore owns serialization of the progress record. It does not
// own the storage medium.
type RecordStore struct {
	kv KeyValueStore
}

// NewRecordStore creates a record store over the given key-value
// collaborator.
func NewRecordStore(kv KeyValueStore) *RecordStore {
	return &RecordStore{kv: kv}
}

// Load returns the stored progress record. It never fails: a missing
// key, a read error, or an unparseable value all yield the default
// empty record.
func (s *RecordStore) Load() *models.ProgressRecord {
	value, ok, err := s.kv.Get(ProgressKey)
	if err != nil {
		log.Printf("Warning: failed to load progress record: %v", err)
		return models.NewProgressRecord()
	}
	if !ok {
		return models.NewProgressRecord()
	}

	record := models.NewProgressRecord()
	if err := json.Unmarshal([]byte(value), record); err != nil {
		log.Printf("Warning: stored progress record is corrupt, starting fresh: %v", err)
		return models.NewProgressRecord()
	}

	// Guard against hand-edited or truncated documents
	if record.Achievements == nil {
		record.Achievements = []models.AchievementID{}
	}
	if record.Activities == nil {
		record.Activities = map[string]models.DayActivity{}
	}

	return record
}

// Save persists the record. Failures are returned for the caller to
// log; the in-memory record stays authoritative for the session.
func (s *RecordStore) Save(record *models.ProgressRecord) error {
	data, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to serialize progress record: %w", err)
	}
	if err := s.kv.Set(ProgressKey, string(data)); err != nil {
		return fmt.Errorf("failed to save progress record: %w", err)
	}
	return nil
}
