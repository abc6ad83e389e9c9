package devserver

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/dmitrijs2005/profiledash/internal/common"
	"github.com/golang-jwt/jwt/v5"
)

// Claims is what the sign-in endpoint puts into a token. The subject is the
// decimal user id, matching what the platform issues.
type Claims struct {
	jwt.RegisteredClaims
}

// GenerateToken signs an HS256 token for userID that expires ttl after now.
func GenerateToken(userID int, secretKey []byte, now time.Time, ttl time.Duration) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.Itoa(userID),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	})

	tokenString, err := token.SignedString(secretKey)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}

	return tokenString, nil
}

// UserIDFromToken verifies tokenString and returns its subject as a user id.
// An expired token reports common.ErrSessionExpired, anything else that fails
// verification reports common.ErrUnauthorized.
func UserIDFromToken(tokenString string, secretKey []byte, now time.Time) (int, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		return secretKey, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(func() time.Time { return now }),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return 0, common.ErrSessionExpired
		}
		return 0, fmt.Errorf("%w: %w", common.ErrUnauthorized, err)
	}

	if !token.Valid {
		return 0, common.ErrUnauthorized
	}

	id, err := strconv.Atoi(claims.Subject)
	if err != nil {
		return 0, fmt.Errorf("%w: subject %q", common.ErrUnauthorized, claims.Subject)
	}

	return id, nil
}
