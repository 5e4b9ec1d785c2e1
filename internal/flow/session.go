package flow

import (
	"time"

	"github.com/avoevodin/kedobot/internal/domain"
)

// Session is the per-user conversation context: current step, the
// answers collected so far and the contact fields of the lead sub-flow.
// One in-flight session per user; the transport delivers that user's
// events one at a time.
type Session struct {
	UserID    int64
	Step      Step
	Answers   domain.AnswerSet
	Contact   domain.Contact
	StartedAt time.Time

	// LastResult holds the submission produced by the most recent
	// completion, for the results and lead screens.
	LastResult *Result
}

// reset clears form progress but keeps the session itself.
func (s *Session) reset() {
	s.Step = StepIdle
	s.Answers = domain.AnswerSet{}
	s.Contact = domain.Contact{}
	s.LastResult = nil
}

// Manager owns the sessions of all active users. It is not safe for
// concurrent use: the event loop handles one inbound update at a time.
type Manager struct {
	sessions map[int64]*Session
}

// NewManager creates an empty session manager.
func NewManager() *Manager {
	return &Manager{sessions: make(map[int64]*Session)}
}

// Get returns the session for a user, if one exists.
func (m *Manager) Get(userID int64) (*Session, bool) {
	s, ok := m.sessions[userID]
	return s, ok
}

// Ensure returns the session for a user, creating it on first contact.
func (m *Manager) Ensure(userID int64) *Session {
	if s, ok := m.sessions[userID]; ok {
		return s
	}
	s := &Session{UserID: userID, Step: StepIdle, StartedAt: time.Now().UTC()}
	m.sessions[userID] = s
	return s
}

// Drop forgets a user's session entirely.
func (m *Manager) Drop(userID int64) {
	delete(m.sessions, userID)
}

// Len returns the number of active sessions.
func (m *Manager) Len() int {
	return len(m.sessions)
}
