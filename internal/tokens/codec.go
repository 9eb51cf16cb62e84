package tokens

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// ErrDecode is returned when an encoded identifier cannot be decoded.
var ErrDecode = errors.New("malformed encoded identifier")

// EncodeID turns a user identifier into a URL-safe string for email links.
func EncodeID(id uuid.UUID) string {
	return base64.RawURLEncoding.EncodeToString([]byte(id.String()))
}

// DecodeID reverses EncodeID. Any malformed input yields an error wrapping ErrDecode.
func DecodeID(encoded string) (uuid.UUID, error) {
	raw, err := base64.RawURLEncoding.DecodeString(strings.TrimRight(encoded, "="))
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}

	id, err := uuid.Parse(string(raw))
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}

	return id, nil
}
