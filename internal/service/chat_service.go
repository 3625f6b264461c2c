package service

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"practicego/internal/ai"
	"practicego/internal/models"
)

// chatTurnPoints is awarded for every completed chat turn.
const chatTurnPoints = 5

// wordWatcherThreshold is the number of distinct corrected words in one
// chat session that unlocks the word watcher achievement.
const wordWatcherThreshold = 10

// Chatter is the slice of the AI client the chat service uses
type Chatter interface {
	Chat(ctx context.Context, systemInstruction string, history []ai.ChatMessage, message string) (string, error)
}

// ProgressReporter records completed activities. Satisfied by
// progress.Service.
type ProgressReporter interface {
	AddPoints(basePoints int, activity string, token models.AchievementID) (*models.ProgressRecord, int)
}

// ChatRequest is one user turn of a tutoring conversation
type ChatRequest struct {
	SessionID         string
	SystemInstruction string
	History           []ai.ChatMessage
	Message           string
	Scenario          bool
}

// ChatTurn is the outcome of one turn: the tutor's reply with the
// corrections trailer stripped out, plus the updated progress.
type ChatTurn struct {
	Reply       string                  `json:"reply"`
	Corrections []models.WordCorrection `json:"corrections,omitempty"`
	Progress    *models.ProgressRecord  `json:"progress"`
	Bonus       int                     `json:"bonus"`
}

// chatSession tracks the distinct corrected words seen in one
// conversation.
type chatSession struct {
	correctedWords  map[string]struct{}
	watcherReported bool
}

// ChatService runs tutoring conversations and feeds them into the
// progress engine.
type ChatService struct {
	chatter  Chatter
	progress ProgressReporter

	mu       sync.Mutex
	sessions map[string]*chatSession
}

// NewChatService creates a new chat service
func NewChatService(chatter Chatter, progress ProgressReporter) *ChatService {
	return &ChatService{
		chatter:  chatter,
		progress: progress,
		sessions: make(map[string]*chatSession),
	}
}

// SendMessage runs one conversation turn. Every turn counts as an
// activity; collecting ten distinct corrected words in one session
// additionally reports the word watcher token.
func (s *ChatService) SendMessage(ctx context.Context, req ChatRequest) (*ChatTurn, error) {
	if strings.TrimSpace(req.Message) == "" {
		return nil, fmt.Errorf("message must not be empty")
	}

	reply, err := s.chatter.Chat(ctx, req.SystemInstruction, req.History, req.Message)
	if err != nil {
		return nil, fmt.Errorf("chat turn failed: %w", err)
	}

	clean, corrections := ai.ParseCorrections(reply)

	token := models.AchievementFirstChat
	if req.Scenario {
		token = models.AchievementSpeakingScenario
	}
	record, bonus := s.progress.AddPoints(chatTurnPoints, "chat", token)

	if s.trackCorrections(req.SessionID, corrections) {
		record, _ = s.progress.AddPoints(0, "word corrections", models.AchievementWordWatcher)
	}

	return &ChatTurn{
		Reply:       clean,
		Corrections: corrections,
		Progress:    record,
		Bonus:       bonus,
	}, nil
}

// trackCorrections adds the corrected words to the session's set and
// reports whether the word watcher threshold was crossed on this turn.
func (s *ChatService) trackCorrections(sessionID string, corrections []models.WordCorrection) bool {
	if len(corrections) == 0 {
		return false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[sessionID]
	if !ok {
		session = &chatSession{correctedWords: make(map[string]struct{})}
		s.sessions[sessionID] = session
	}

	for _, c := range corrections {
		word := strings.ToLower(strings.TrimSpace(c.Corrected))
		if word != "" {
			session.correctedWords[word] = struct{}{}
		}
	}

	if session.watcherReported || len(session.correctedWords) < wordWatcherThreshold {
		return false
	}
	session.watcherReported = true
	return true
}

// EndSession discards the per-session correction state
func (s *ChatService) EndSession(sessionID string) {
	s.mu.Lock()
	delete(s.sessions, sessionID)
	s.mu.Unlock()
}
