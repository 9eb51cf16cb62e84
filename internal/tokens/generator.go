package tokens

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"strconv"
	"strings"
	"time"

	"github.com/sbilibin2017/gw-expense-tracker/internal/models"
)

// bucketSize is the granularity of the timestamp embedded in a token.
const bucketSize = time.Hour

// Fingerprint extracts the mutable user state a token is bound to.
type Fingerprint func(user *models.UserDB) string

// Generator mints and checks stateless tokens of the form "<bucket>-<mac>".
// A token stops validating as soon as the fingerprinted user state changes,
// or once ttl elapsed after the end of its mint bucket when ttl is non-zero.
// A token therefore lives at least ttl and less than ttl plus one bucket.
type Generator struct {
	secret      []byte
	salt        string
	fingerprint Fingerprint
	ttl         time.Duration
	now         func() time.Time
}

// Option configures a Generator.
type Option func(*Generator)

// WithClock overrides the time source.
func WithClock(now func() time.Time) Option {
	return func(g *Generator) {
		g.now = now
	}
}

// WithTTL sets the validity window. Zero disables expiry.
// Positive windows shorter than one bucket are raised to one bucket.
func WithTTL(ttl time.Duration) Option {
	return func(g *Generator) {
		if ttl > 0 && ttl < bucketSize {
			ttl = bucketSize
		}
		g.ttl = ttl
	}
}

// MinTTL is the shortest window a token can honour.
const MinTTL = bucketSize

// NewActivationGenerator returns a generator for email verification links.
// The fingerprint is the activation flag, so a token is good until the account is activated.
func NewActivationGenerator(secret string, opts ...Option) *Generator {
	return newGenerator(secret, "account-activation", func(u *models.UserDB) string {
		return strconv.FormatBool(u.IsActive)
	}, opts...)
}

// NewPasswordResetGenerator returns a generator for password reset links valid for ttl.
// Changing the password or email invalidates outstanding tokens.
func NewPasswordResetGenerator(secret string, ttl time.Duration, opts ...Option) *Generator {
	opts = append([]Option{WithTTL(ttl)}, opts...)
	return newGenerator(secret, "password-reset", func(u *models.UserDB) string {
		return u.PasswordHash + "|" + u.Email + "|" + strconv.FormatBool(u.IsActive)
	}, opts...)
}

func newGenerator(secret, salt string, fp Fingerprint, opts ...Option) *Generator {
	g := &Generator{
		secret:      []byte(secret),
		salt:        salt,
		fingerprint: fp,
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Make mints a token for the user's current state.
func (g *Generator) Make(user *models.UserDB) string {
	return g.makeWithBucket(user, g.now().Unix()/int64(bucketSize/time.Second))
}

// Check reports whether token was minted by this generator for the user's current state
// and is still inside the validity window.
func (g *Generator) Check(user *models.UserDB, token string) bool {
	if user == nil || token == "" {
		return false
	}

	ts, _, ok := strings.Cut(token, "-")
	if !ok {
		return false
	}
	bucket, err := strconv.ParseInt(ts, 36, 64)
	if err != nil || bucket < 0 {
		return false
	}

	if !hmac.Equal([]byte(g.makeWithBucket(user, bucket)), []byte(token)) {
		return false
	}

	if g.ttl > 0 {
		start := time.Unix(bucket*int64(bucketSize/time.Second), 0)
		now := g.now()
		if start.After(now) || now.Sub(start.Add(bucketSize)) > g.ttl {
			return false
		}
	}

	return true
}

func (g *Generator) makeWithBucket(user *models.UserDB, bucket int64) string {
	ts := strconv.FormatInt(bucket, 36)

	mac := hmac.New(sha256.New, g.secret)
	mac.Write([]byte(g.salt))
	mac.Write([]byte{0})
	mac.Write([]byte(user.UserID.String()))
	mac.Write([]byte{0})
	mac.Write([]byte(g.fingerprint(user)))
	mac.Write([]byte{0})
	mac.Write([]byte(ts))

	return ts + "-" + base64.RawURLEncoding.EncodeToString(mac.Sum(nil))
}
