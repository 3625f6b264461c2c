package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"practicego/internal/ai"
	"practicego/internal/audio"
)

// PracticeHandler serves generated practice content: reading texts,
// dictation sentences with audio, pronunciation feedback and word
// lookups.
type PracticeHandler struct {
	aiClient   *ai.Client
	ttsService *audio.TTSService
}

// NewPracticeHandler creates a new practice handler
func NewPracticeHandler(aiClient *ai.Client, ttsService *audio.TTSService) *PracticeHandler {
	return &PracticeHandler{
		aiClient:   aiClient,
		ttsService: ttsService,
	}
}

// GetReadingText handles GET /api/practice/reading. Generation failures
// fall back to a fixed story inside the client, so this never errors.
func (h *PracticeHandler) GetReadingText(w http.ResponseWriter, r *http.Request) {
	text := h.aiClient.GenerateReadingText(r.Context())
	respondWithJSON(w, http.StatusOK, map[string]string{"text": text})
}

// GetDictationText handles GET /api/practice/dictation
func (h *PracticeHandler) GetDictationText(w http.ResponseWriter, r *http.Request) {
	text, err := h.aiClient.GenerateDictationText(r.Context())
	if err != nil {
		respondWithError(w, http.StatusBadGateway, "Failed to generate dictation text", "Error generating dictation", err)
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]string{"text": text})
}

// GetDictationAudio handles GET /api/practice/dictation/audio?text=...
// and streams the cached MP3 for the sentence.
func (h *PracticeHandler) GetDictationAudio(w http.ResponseWriter, r *http.Request) {
	text := strings.TrimSpace(r.URL.Query().Get("text"))
	if text == "" {
		respondWithError(w, http.StatusBadRequest, "Missing text parameter", "", nil)
		return
	}

	filename, err := h.ttsService.GenerateAudioFile(r.Context(), text)
	if err != nil {
		respondWithError(w, http.StatusBadGateway, "Failed to generate audio", "Error generating dictation audio", err)
		return
	}

	w.Header().Set("Content-Type", "audio/mpeg")
	http.ServeFile(w, r, h.ttsService.AudioFilePath(filename))
}

// GetPronunciationFeedback handles POST /api/practice/pronunciation
func (h *PracticeHandler) GetPronunciationFeedback(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Text string `json:"text"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body", "", err)
		return
	}
	if req.Text == "" {
		respondWithError(w, http.StatusBadRequest, "Text must not be empty", "", nil)
		return
	}

	feedback, err := h.aiClient.GeneratePronunciationFeedback(r.Context(), req.Text)
	if err != nil {
		respondWithError(w, http.StatusBadGateway, "Failed to generate feedback", "Error generating pronunciation feedback", err)
		return
	}
	respondWithJSON(w, http.StatusOK, feedback)
}

// LookupWord handles GET /api/words/{word}
func (h *PracticeHandler) LookupWord(w http.ResponseWriter, r *http.Request) {
	word := strings.TrimSpace(r.PathValue("word"))
	if word == "" {
		respondWithError(w, http.StatusBadRequest, "Missing word", "", nil)
		return
	}

	definition, err := h.aiClient.LookupWord(r.Context(), word)
	if err != nil {
		respondWithError(w, http.StatusBadGateway, "Failed to look up word", "Error looking up word", err)
		return
	}
	respondWithJSON(w, http.StatusOK, definition)
}
