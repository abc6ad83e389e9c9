package common

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQueryError_MatchesSentinel(t *testing.T) {
	err := fmt.Errorf("fetch profile: %w", &QueryError{Message: "field \"foo\" not found"})

	assert.ErrorIs(t, err, ErrQuery)
	assert.EqualError(t, err, `fetch profile: field "foo" not found`)

	var qe *QueryError
	assert.True(t, errors.As(err, &qe))
	assert.Equal(t, `field "foo" not found`, qe.Message)
}

func TestIsAuthFailure(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"expired", fmt.Errorf("load: %w", ErrSessionExpired), true},
		{"malformed", ErrMalformedToken, true},
		{"http 401", fmt.Errorf("%w: %w: 401 Unauthorized", ErrNetwork, ErrUnauthorized), true},
		{"query about jwt token", &QueryError{Message: "Could not verify JWT: invalid token"}, true},
		{"backend jwt expiry", &QueryError{Message: "Could not verify JWT: JWTExpired"}, true},
		{"plain network", fmt.Errorf("%w: 502 Bad Gateway", ErrNetwork), false},
		{"not found", ErrNotFound, false},
		{"other query", &QueryError{Message: "field not found"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsAuthFailure(tt.err))
		})
	}
}
