package handlers

import (
	"encoding/json"
	"net/http"
	"sort"

	"practicego/internal/models"
	"practicego/internal/progress"
)

// ProgressHandler exposes the progress engine over the JSON API
type ProgressHandler struct {
	progressService *progress.Service
}

// NewProgressHandler creates a new progress handler
func NewProgressHandler(progressService *progress.Service) *ProgressHandler {
	return &ProgressHandler{progressService: progressService}
}

// GetProgress handles GET /api/progress
func (h *ProgressHandler) GetProgress(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, h.progressService.Progress())
}

// RecordActivity handles POST /api/progress/activity. The client
// reports a completed activity with its point value and an optional
// achievement token; the response carries the updated record and the
// streak bonus applied.
func (h *ProgressHandler) RecordActivity(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Points      int                  `json:"points"`
		Activity    string               `json:"activity"`
		Achievement models.AchievementID `json:"achievement,omitempty"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body", "", err)
		return
	}

	record, bonus := h.progressService.AddPoints(req.Points, req.Activity, req.Achievement)
	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"progress": record,
		"bonus":    bonus,
	})
}

// achievementView is one catalog entry plus its unlocked state
type achievementView struct {
	models.Achievement
	Unlocked bool `json:"unlocked"`
}

// GetAchievements handles GET /api/achievements, returning the full
// catalog annotated with what the learner has unlocked.
func (h *ProgressHandler) GetAchievements(w http.ResponseWriter, r *http.Request) {
	record := h.progressService.Progress()

	views := make([]achievementView, 0, len(models.AllAchievements))
	for _, achievement := range models.AllAchievements {
		views = append(views, achievementView{
			Achievement: achievement,
			Unlocked:    record.HasAchievement(achievement.ID),
		})
	}
	sort.Slice(views, func(i, j int) bool { return views[i].ID < views[j].ID })

	respondWithJSON(w, http.StatusOK, views)
}
