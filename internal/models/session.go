package models

import "time"

// Session is an authenticated login session. Sessions are held in
// memory by the auth service and die with the process.
type Session struct {
	ID        string
	ExpiresAt time.Time
}

// IsExpired checks if the session has expired
func (s *Session) IsExpired() bool {
	return time.Now().After(s.ExpiresAt)
}
