// Package token reads claims out of credential tokens without verifying
// their signature. The backend verifies every request; the client only needs
// the subject id and the expiry, so trust stays with the server. Callers
// depend on the Inspector interface, so a verifying implementation can be
// dropped in later.
package token

import (
	"encoding/base64"
	"encoding/json"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims is the decoded token payload.
type Claims = jwt.MapClaims

// Inspector extracts claims from a credential token. The bool results are
// false whenever the token cannot be decoded; no method panics or errors.
type Inspector interface {
	Decode(token string) (Claims, bool)
	ExtractSubject(token string) (string, bool)
	Expiration(token string) (time.Time, bool)
}

// UnverifiedInspector decodes the payload segment and trusts it as is.
type UnverifiedInspector struct {
	parser *jwt.Parser
}

func NewUnverifiedInspector() *UnverifiedInspector {
	return &UnverifiedInspector{parser: jwt.NewParser(jwt.WithPaddingAllowed())}
}

// Normalize strips one pair of surrounding double quotes; tokens are
// sometimes persisted as JSON strings.
func Normalize(token string) string {
	if len(token) >= 2 && strings.HasPrefix(token, `"`) && strings.HasSuffix(token, `"`) {
		return token[1 : len(token)-1]
	}
	return token
}

// Decode returns the payload of the second dot-separated segment. Both the
// URL and the standard base64 alphabets are accepted, padded or not.
func (i *UnverifiedInspector) Decode(token string) (Claims, bool) {
	parts := strings.Split(Normalize(token), ".")
	if len(parts) < 2 || parts[1] == "" {
		return nil, false
	}

	raw, err := i.decodeSegment(parts[1])
	if err != nil {
		return nil, false
	}

	var claims Claims
	if err := json.Unmarshal(raw, &claims); err != nil || claims == nil {
		return nil, false
	}
	return claims, true
}

func (i *UnverifiedInspector) decodeSegment(seg string) ([]byte, error) {
	raw, err := i.parser.DecodeSegment(seg)
	if err == nil {
		return raw, nil
	}
	if raw, stdErr := base64.StdEncoding.DecodeString(seg); stdErr == nil {
		return raw, nil
	}
	if raw, stdErr := base64.RawStdEncoding.DecodeString(seg); stdErr == nil {
		return raw, nil
	}
	return nil, err
}

// ExtractSubject returns the "sub" claim, or "id" when "sub" is missing or
// empty. Numeric claims are rendered in decimal.
func (i *UnverifiedInspector) ExtractSubject(token string) (string, bool) {
	claims, ok := i.Decode(token)
	if !ok {
		return "", false
	}
	for _, name := range []string{"sub", "id"} {
		if s, ok := claimString(claims[name]); ok {
			return s, true
		}
	}
	return "", false
}

// Expiration returns the "exp" claim. Fractional seconds are kept to the
// millisecond. A zero, missing or non-numeric exp reports false.
func (i *UnverifiedInspector) Expiration(token string) (time.Time, bool) {
	claims, ok := i.Decode(token)
	if !ok {
		return time.Time{}, false
	}

	var exp float64
	switch v := claims["exp"].(type) {
	case float64:
		exp = v
	case json.Number:
		f, err := v.Float64()
		if err != nil {
			return time.Time{}, false
		}
		exp = f
	default:
		return time.Time{}, false
	}
	if exp == 0 || math.IsNaN(exp) || math.IsInf(exp, 0) {
		return time.Time{}, false
	}
	return time.UnixMilli(int64(math.Round(exp * 1000))), true
}

func claimString(v any) (string, bool) {
	switch value := v.(type) {
	case string:
		return value, value != ""
	case float64:
		if value == 0 {
			return "", false
		}
		return strconv.FormatFloat(value, 'f', -1, 64), true
	case json.Number:
		return value.String(), value.String() != "0"
	}
	return "", false
}
