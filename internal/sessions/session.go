package sessions

import "context"

// Flash levels used by the views.
const (
	LevelSuccess = "success"
	LevelInfo    = "info"
	LevelWarning = "warning"
	LevelError   = "error"
)

// Flash is a one-time notice shown on the next rendered page.
type Flash struct {
	Level   string `json:"level"`
	Message string `json:"message"`
}

// Session holds per-request session state.
type Session struct {
	ID      string
	userID  string
	flashes []Flash

	isNew     bool
	dirty     bool
	renewed   []string
}

// SetUser binds the session to a user id.
func (s *Session) SetUser(id string) {
	s.userID = id
	s.dirty = true
}

// User returns the bound user id, or an empty string for anonymous sessions.
func (s *Session) User() string {
	return s.userID
}

// AddFlash queues a notice.
func (s *Session) AddFlash(level, message string) {
	s.flashes = append(s.flashes, Flash{Level: level, Message: message})
	s.dirty = true
}

// PopFlashes returns all queued notices and clears them.
func (s *Session) PopFlashes() []Flash {
	if len(s.flashes) == 0 {
		return nil
	}
	out := s.flashes
	s.flashes = nil
	s.dirty = true
	return out
}

// Clear drops the user binding and queued notices.
func (s *Session) Clear() {
	s.userID = ""
	s.flashes = nil
	s.dirty = true
}

type contextKey struct{}

var sessionKey = contextKey{}

// WithSession stores the session in the context.
func WithSession(ctx context.Context, sess *Session) context.Context {
	return context.WithValue(ctx, sessionKey, sess)
}

// FromContext retrieves the session from the context. Returns nil if not present.
func FromContext(ctx context.Context) *Session {
	sess, _ := ctx.Value(sessionKey).(*Session)
	return sess
}
