package tokens

import "encoding/base64"

// EncodeIDString encodes arbitrary text the way EncodeID encodes identifiers.
func EncodeIDString(s string) string {
	return base64.RawURLEncoding.EncodeToString([]byte(s))
}
