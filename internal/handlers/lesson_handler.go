package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"practicego/internal/service"
)

// LessonHandler handles lesson catalog HTTP requests
type LessonHandler struct {
	lessonService *service.LessonService
	uploadMaxSize int64
}

// NewLessonHandler creates a new lesson handler
func NewLessonHandler(lessonService *service.LessonService, uploadMaxSize int64) *LessonHandler {
	return &LessonHandler{
		lessonService: lessonService,
		uploadMaxSize: uploadMaxSize,
	}
}

// ListLessons handles GET /api/lessons
func (h *LessonHandler) ListLessons(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, h.lessonService.Lessons())
}

// CreateLesson handles POST /api/lessons
func (h *LessonHandler) CreateLesson(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Title      string   `json:"title"`
		Theme      string   `json:"theme"`
		Vocabulary []string `json:"vocabulary"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body", "", err)
		return
	}

	lesson, err := h.lessonService.CreateCustomLesson(req.Title, req.Theme, req.Vocabulary)
	if err != nil {
		if errors.Is(err, service.ErrLessonTitleEmpty) || errors.Is(err, service.ErrLessonVocabulary) {
			respondWithError(w, http.StatusBadRequest, err.Error(), "", nil)
			return
		}
		respondWithError(w, http.StatusInternalServerError, "Failed to create lesson", "Error creating lesson", err)
		return
	}

	respondWithJSON(w, http.StatusCreated, lesson)
}

// DeleteLesson handles DELETE /api/lessons/{id}
func (h *LessonHandler) DeleteLesson(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	err := h.lessonService.DeleteCustomLesson(id)
	switch {
	case errors.Is(err, service.ErrLessonNotFound):
		respondWithError(w, http.StatusNotFound, "Lesson not found", "", nil)
	case errors.Is(err, service.ErrLessonNotCustom):
		respondWithError(w, http.StatusBadRequest, "Default lessons cannot be deleted", "", nil)
	case err != nil:
		respondWithError(w, http.StatusInternalServerError, "Failed to delete lesson", "Error deleting lesson", err)
	default:
		respondWithJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}
}

// GenerateMaterials handles POST /api/lessons/{id}/materials
func (h *LessonHandler) GenerateMaterials(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	materials, err := h.lessonService.GenerateMaterials(r.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrLessonNotFound) {
			respondWithError(w, http.StatusNotFound, "Lesson not found", "", nil)
			return
		}
		respondWithError(w, http.StatusBadGateway, "Failed to generate lesson materials", "Error generating materials", err)
		return
	}

	respondWithJSON(w, http.StatusOK, materials)
}

// GenerateExercises handles POST /api/lessons/{id}/exercises
func (h *LessonHandler) GenerateExercises(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	count, _ := strconv.Atoi(r.URL.Query().Get("count"))

	exercises, err := h.lessonService.GenerateMoreExercises(r.Context(), id, count)
	if err != nil {
		if errors.Is(err, service.ErrLessonNotFound) {
			respondWithError(w, http.StatusNotFound, "Lesson not found", "", nil)
			return
		}
		respondWithError(w, http.StatusBadGateway, "Failed to generate exercises", "Error generating exercises", err)
		return
	}

	respondWithJSON(w, http.StatusOK, exercises)
}

// ExtractLesson handles POST /api/lessons/extract. The client sends the
// plain text of an uploaded document; the AI turns it into a custom
// lesson.
func (h *LessonHandler) ExtractLesson(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.uploadMaxSize)

	var req struct {
		Text string `json:"text"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body", "", err)
		return
	}
	if req.Text == "" {
		respondWithError(w, http.StatusBadRequest, "Document text must not be empty", "", nil)
		return
	}

	lesson, err := h.lessonService.ExtractLessonFromDocument(r.Context(), req.Text)
	if err != nil {
		respondWithError(w, http.StatusBadGateway, "Failed to extract lesson", "Error extracting lesson", err)
		return
	}

	respondWithJSON(w, http.StatusCreated, lesson)
}
