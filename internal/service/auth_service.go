package service

import (
	"errors"
	"sync"
	"time"

	"practicego/internal/models"
	"practicego/internal/security"
)

var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrSessionNotFound    = errors.New("session not found")
	ErrSessionExpired     = errors.New("session expired")
)

// AuthService handles the single-user login. The app serves one
// learner, so credentials come from configuration and sessions live in
// memory rather than in the database.
type AuthService struct {
	username        string
	password        string
	passwordHash    string
	sessionDuration time.Duration

	mu       sync.Mutex
	sessions map[string]*models.Session
}

// NewAuthService creates a new auth service. passwordHash (bcrypt)
// takes precedence over the plaintext password when both are set.
func NewAuthService(username, password, passwordHash string, sessionDuration time.Duration) *AuthService {
	return &AuthService{
		username:        username,
		password:        password,
		passwordHash:    passwordHash,
		sessionDuration: sessionDuration,
		sessions:        make(map[string]*models.Session),
	}
}

// Login authenticates the configured user and creates a session
func (s *AuthService) Login(username, password string) (*models.Session, error) {
	if !security.ConstantTimeEquals(username, s.username) {
		return nil, ErrInvalidCredentials
	}
	if !s.checkPassword(password) {
		return nil, ErrInvalidCredentials
	}

	session := &models.Session{
		ID:        security.GenerateSessionID(),
		ExpiresAt: time.Now().Add(s.sessionDuration),
	}

	s.mu.Lock()
	s.sessions[session.ID] = session
	s.mu.Unlock()

	return session, nil
}

func (s *AuthService) checkPassword(password string) bool {
	if s.passwordHash != "" {
		return security.CheckPassword(password, s.passwordHash)
	}
	if s.password != "" {
		return security.ConstantTimeEquals(password, s.password)
	}
	// No credential configured means login is impossible
	return false
}

// ValidateSession checks if a session is valid
func (s *AuthService) ValidateSession(sessionID string) error {
	s.mu.Lock()
	session, ok := s.sessions[sessionID]
	if ok && session.IsExpired() {
		delete(s.sessions, sessionID)
		s.mu.Unlock()
		return ErrSessionExpired
	}
	s.mu.Unlock()

	if !ok {
		return ErrSessionNotFound
	}
	return nil
}

// Logout invalidates a session
func (s *AuthService) Logout(sessionID string) {
	s.mu.Lock()
	delete(s.sessions, sessionID)
	s.mu.Unlock()
}

// CleanupExpiredSessions removes expired sessions
func (s *AuthService) CleanupExpiredSessions() {
	s.mu.Lock()
	for id, session := range s.sessions {
		if session.IsExpired() {
			delete(s.sessions, id)
		}
	}
	s.mu.Unlock()
}
