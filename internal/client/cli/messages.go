package cli

import (
	"errors"
	"fmt"

	"github.com/dmitrijs2005/profiledash/internal/common"
)

// userMessage turns a pipeline error into the line shown to the user.
func userMessage(err error) string {
	var qe *common.QueryError
	switch {
	case errors.Is(err, common.ErrEmptyCredentials):
		return "Username and password are required."
	case errors.Is(err, common.ErrAuthentication):
		return "Login failed. Check your username and password."
	case errors.Is(err, common.ErrSessionExpired):
		return "Session expired. Please log in again."
	case common.IsAuthFailure(err):
		return "Authentication error. Please log in again."
	case errors.Is(err, common.ErrNotFound):
		return "User data not found."
	case errors.As(err, &qe):
		return "Error loading profile data: " + qe.Message
	default:
		return "Error: " + err.Error()
	}
}

func (a *App) report(err error) {
	fmt.Fprintln(a.out, userMessage(err))
}
