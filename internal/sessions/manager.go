package sessions

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sbilibin2017/gw-expense-tracker/internal/jwt"
	"github.com/sbilibin2017/gw-expense-tracker/internal/logger"
)

// Signer signs and verifies the session cookie.
type Signer interface {
	Generate(ctx context.Context, sessionID string) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

type payload struct {
	UserID  string  `json:"user_id"`
	Flashes []Flash `json:"flashes"`
}

// Manager stores sessions in Redis. The cookie carries a signed token whose id is the session id.
type Manager struct {
	client redis.Cmdable
	signer Signer
	ttl    time.Duration
	secure bool
}

// NewManager creates a session manager.
func NewManager(client redis.Cmdable, signer Signer, ttl time.Duration, secure bool) *Manager {
	return &Manager{
		client: client,
		signer: signer,
		ttl:    ttl,
		secure: secure,
	}
}

// Load returns the session referenced by the request cookie.
// A missing, forged or expired cookie yields a fresh anonymous session.
func (m *Manager) Load(ctx context.Context, r *http.Request) (*Session, error) {
	cookie, err := r.Cookie(jwt.CookieName)
	if err != nil || cookie.Value == "" {
		return newSession(), nil
	}

	claims, err := m.signer.GetClaims(ctx, cookie.Value)
	if err != nil {
		logger.Log.Infow("discarding session cookie", "error", err)
		return newSession(), nil
	}

	data, err := m.client.Get(ctx, redisKey(claims.SessionID())).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return newSession(), nil
		}
		return nil, err
	}

	var stored payload
	if err := json.Unmarshal(data, &stored); err != nil {
		return nil, err
	}

	return &Session{
		ID:      claims.SessionID(),
		userID:  stored.UserID,
		flashes: stored.Flashes,
	}, nil
}

// Renew moves the session to a new id, discarding the old record on commit.
func (m *Manager) Renew(sess *Session) {
	if !sess.isNew {
		sess.renewed = append(sess.renewed, sess.ID)
	}
	sess.ID = uuid.NewString()
	sess.isNew = true
	sess.dirty = true
}

// Commit persists the session and writes the cookie.
func (m *Manager) Commit(ctx context.Context, w http.ResponseWriter, sess *Session) error {
	if sess == nil {
		return nil
	}

	for _, old := range sess.renewed {
		if err := m.client.Del(ctx, redisKey(old)).Err(); err != nil {
			return err
		}
	}
	sess.renewed = nil

	// Anonymous sessions with nothing to remember are not stored.
	if sess.isNew && sess.userID == "" && len(sess.flashes) == 0 {
		return nil
	}

	if sess.dirty {
		data, err := json.Marshal(payload{UserID: sess.userID, Flashes: sess.flashes})
		if err != nil {
			return err
		}
		if err := m.client.Set(ctx, redisKey(sess.ID), data, m.ttl).Err(); err != nil {
			return err
		}
		sess.dirty = false
	}

	if sess.isNew {
		token, err := m.signer.Generate(ctx, sess.ID)
		if err != nil {
			return err
		}
		http.SetCookie(w, &http.Cookie{
			Name:     jwt.CookieName,
			Value:    token,
			Path:     "/",
			HttpOnly: true,
			Secure:   m.secure,
			SameSite: http.SameSiteLaxMode,
			Expires:  time.Now().Add(m.ttl),
		})
		sess.isNew = false
	}

	return nil
}

func newSession() *Session {
	return &Session{
		ID:    uuid.NewString(),
		isNew: true,
	}
}

func redisKey(id string) string {
	return "session:" + id
}
