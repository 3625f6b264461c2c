package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"practicego/internal/models"
	"practicego/internal/progress"
)

type memoryKV struct {
	data map[string]string
}

func newMemoryKV() *memoryKV {
	return &memoryKV{data: make(map[string]string)}
}

func (kv *memoryKV) Get(key string) (string, bool, error) {
	value, ok := kv.data[key]
	return value, ok, nil
}

func (kv *memoryKV) Set(key, value string) error {
	kv.data[key] = value
	return nil
}

type fixedClock struct {
	now time.Time
}

func (c *fixedClock) Now() time.Time { return c.now }

func newTestHandler() *ProgressHandler {
	store := progress.NewRecordStore(newMemoryKV())
	clock := &fixedClock{now: time.Date(2025, 6, 10, 12, 0, 0, 0, time.Local)}
	return NewProgressHandler(progress.NewService(store, clock))
}

func TestRecordActivity(t *testing.T) {
	handler := newTestHandler()

	body := `{"points": 15, "activity": "listening-quiz", "achievement": "firstListening"}`
	req := httptest.NewRequest("POST", "/api/progress/activity", strings.NewReader(body))
	rec := httptest.NewRecorder()

	handler.RecordActivity(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}

	var resp struct {
		Progress models.ProgressRecord `json:"progress"`
		Bonus    int                   `json:"bonus"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if resp.Progress.Points != 15 {
		t.Errorf("points = %d, want 15", resp.Progress.Points)
	}
	if resp.Progress.Streak != 1 {
		t.Errorf("streak = %d, want 1", resp.Progress.Streak)
	}
	if resp.Bonus != 0 {
		t.Errorf("bonus = %d, want 0 on first activity", resp.Bonus)
	}
	if len(resp.Progress.Achievements) != 1 || resp.Progress.Achievements[0] != models.AchievementFirstListening {
		t.Errorf("achievements = %v, want [firstListening]", resp.Progress.Achievements)
	}
}

func TestRecordActivityBadBody(t *testing.T) {
	handler := newTestHandler()

	req := httptest.NewRequest("POST", "/api/progress/activity", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()

	handler.RecordActivity(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
}

func TestGetProgress(t *testing.T) {
	handler := newTestHandler()

	// Seed one activity so the record is non-trivial
	body := `{"points": 10, "activity": "exercise"}`
	handler.RecordActivity(httptest.NewRecorder(), httptest.NewRequest("POST", "/api/progress/activity", strings.NewReader(body)))

	rec := httptest.NewRecorder()
	handler.GetProgress(rec, httptest.NewRequest("GET", "/api/progress", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}

	var record models.ProgressRecord
	if err := json.Unmarshal(rec.Body.Bytes(), &record); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if record.Points != 10 {
		t.Errorf("points = %d, want 10", record.Points)
	}
	if len(record.Activities) != 1 {
		t.Errorf("activities = %v, want one day entry", record.Activities)
	}
}

func TestGetAchievements(t *testing.T) {
	handler := newTestHandler()

	body := `{"points": 0, "activity": "chat", "achievement": "firstChat"}`
	handler.RecordActivity(httptest.NewRecorder(), httptest.NewRequest("POST", "/api/progress/activity", strings.NewReader(body)))

	rec := httptest.NewRecorder()
	handler.GetAchievements(rec, httptest.NewRequest("GET", "/api/achievements", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}

	var views []struct {
		ID       models.AchievementID `json:"id"`
		Name     string               `json:"name"`
		Unlocked bool                 `json:"unlocked"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &views); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if len(views) != len(models.AllAchievements) {
		t.Fatalf("got %d achievements, want the full catalog of %d", len(views), len(models.AllAchievements))
	}
	for _, view := range views {
		wantUnlocked := view.ID == models.AchievementFirstChat
		if view.Unlocked != wantUnlocked {
			t.Errorf("achievement %s unlocked = %v, want %v", view.ID, view.Unlocked, wantUnlocked)
		}
	}
}
