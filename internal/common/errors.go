package common

import (
	"errors"
	"strings"
)

var (
	// Sign-in rejected by the auth endpoint.
	ErrAuthentication = errors.New("authentication failed")

	// Transport failure or non-success status on a backend call.
	ErrNetwork = errors.New("network error")

	// Backend reported GraphQL errors; see QueryError for the message.
	ErrQuery = errors.New("query error")

	// The backend returned no user for the requested id.
	ErrNotFound = errors.New("user data not found")

	// Session lifecycle.
	ErrSessionExpired = errors.New("session expired")
	ErrMalformedToken = errors.New("malformed token")
	ErrUnauthorized   = errors.New("unauthorized")

	// Input guards.
	ErrEmptyToken       = errors.New("empty token")
	ErrEmptyCredentials = errors.New("username and password are required")

	ErrNoChartData = errors.New("no chart data")
)

var authFailureWords = []string{"token", "unauthorized", "jwt"}

// QueryError carries the first message of a GraphQL errors list verbatim.
type QueryError struct {
	Message string
}

func (e *QueryError) Error() string {
	return e.Message
}

// Is lets errors.Is(err, ErrQuery) match any QueryError.
func (e *QueryError) Is(target error) bool {
	return target == ErrQuery
}

// IsAuthFailure reports whether err means the stored credential is no longer
// usable and the session should be ended. Beyond the typed errors it falls
// back to a message check for "token", "unauthorized" or "jwt".
func IsAuthFailure(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, ErrSessionExpired) || errors.Is(err, ErrMalformedToken) || errors.Is(err, ErrUnauthorized) {
		return true
	}
	msg := strings.ToLower(err.Error())
	for _, word := range authFailureWords {
		if strings.Contains(msg, word) {
			return true
		}
	}
	return false
}
