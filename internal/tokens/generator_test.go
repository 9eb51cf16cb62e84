package tokens

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-expense-tracker/internal/models"
	"github.com/stretchr/testify/assert"
)

func newUser() *models.UserDB {
	return &models.UserDB{
		UserID:       uuid.New(),
		Username:     "alice",
		Email:        "alice@x.com",
		PasswordHash: "$2a$10$hash",
		IsActive:     false,
	}
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestActivationGenerator_SingleUse(t *testing.T) {
	g := NewActivationGenerator("secret")
	user := newUser()

	token := g.Make(user)
	assert.NotEmpty(t, token)
	assert.True(t, g.Check(user, token))

	user.IsActive = true
	assert.False(t, g.Check(user, token), "token must stop validating after activation")

	user.IsActive = false
	assert.True(t, g.Check(user, token), "validity follows state, not storage")
}

func TestActivationGenerator_NoExpiry(t *testing.T) {
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	user := newUser()

	token := NewActivationGenerator("secret", WithClock(fixedClock(now))).Make(user)
	later := NewActivationGenerator("secret", WithClock(fixedClock(now.Add(365*24*time.Hour))))

	assert.True(t, later.Check(user, token))
}

func TestGenerator_Rejects(t *testing.T) {
	g := NewActivationGenerator("secret")
	user := newUser()
	token := g.Make(user)

	other := newUser()

	tests := []struct {
		name  string
		gen   *Generator
		user  *models.UserDB
		token string
	}{
		{"other user", g, other, token},
		{"other secret", NewActivationGenerator("other"), user, token},
		{"reset generator", NewPasswordResetGenerator("secret", time.Hour), user, token},
		{"nil user", g, nil, token},
		{"empty token", g, user, ""},
		{"no separator", g, user, "abcdef"},
		{"bad bucket", g, user, "!!-" + token},
		{"tampered mac", g, user, token[:len(token)-1] + flip(token[len(token)-1])},
		{"tampered bucket", g, user, "1" + token},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.False(t, tt.gen.Check(tt.user, tt.token))
		})
	}
}

func TestPasswordResetGenerator_Window(t *testing.T) {
	ttl := 24 * time.Hour
	minted := time.Date(2025, 3, 10, 9, 41, 7, 0, time.UTC)
	user := newUser()
	user.IsActive = true

	token := NewPasswordResetGenerator("secret", ttl, WithClock(fixedClock(minted))).Make(user)
	bucketEnd := time.Date(2025, 3, 10, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		at    time.Time
		valid bool
	}{
		{"at mint time", minted, true},
		{"an hour later", minted.Add(time.Hour), true},
		{"full ttl after minting", minted.Add(ttl), true},
		{"end of window", bucketEnd.Add(ttl), true},
		{"window plus epsilon", bucketEnd.Add(ttl + time.Second), false},
		{"a week later", minted.Add(7 * 24 * time.Hour), false},
		{"before mint bucket", minted.Add(-2 * time.Hour), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewPasswordResetGenerator("secret", ttl, WithClock(fixedClock(tt.at)))
			assert.Equal(t, tt.valid, g.Check(user, token))
		})
	}
}

func TestPasswordResetGenerator_InvalidatedByPasswordChange(t *testing.T) {
	g := NewPasswordResetGenerator("secret", time.Hour*24)
	user := newUser()
	user.IsActive = true

	token := g.Make(user)
	assert.True(t, g.Check(user, token))

	user.PasswordHash = "$2a$10$otherhash"
	assert.False(t, g.Check(user, token))
}

func TestPasswordResetGenerator_InvalidatedByEmailChange(t *testing.T) {
	g := NewPasswordResetGenerator("secret", time.Hour*24)
	user := newUser()

	token := g.Make(user)
	user.Email = "new@x.com"
	assert.False(t, g.Check(user, token))
}

func flip(c byte) string {
	if c == 'A' {
		return "B"
	}
	return "A"
}

func TestPasswordResetGenerator_LateInBucket(t *testing.T) {
	minted := time.Date(2025, 3, 10, 10, 45, 0, 0, time.UTC)
	user := newUser()
	user.IsActive = true

	tests := []struct {
		name  string
		ttl   time.Duration
		at    time.Time
		valid bool
	}{
		{"30m at mint time", 30 * time.Minute, minted, true},
		{"30m just before ttl", 30 * time.Minute, minted.Add(29 * time.Minute), true},
		{"30m raised to one hour", 30 * time.Minute, minted.Add(time.Hour), true},
		{"30m after raised window", 30 * time.Minute, minted.Add(2 * time.Hour), false},
		{"24h at mint time", 24 * time.Hour, minted, true},
		{"24h just before ttl", 24 * time.Hour, minted.Add(24*time.Hour - time.Minute), true},
		{"24h well past ttl", 24 * time.Hour, minted.Add(26 * time.Hour), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token := NewPasswordResetGenerator("secret", tt.ttl, WithClock(fixedClock(minted))).Make(user)
			g := NewPasswordResetGenerator("secret", tt.ttl, WithClock(fixedClock(tt.at)))
			assert.Equal(t, tt.valid, g.Check(user, token))
		})
	}
}
