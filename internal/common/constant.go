// Package common contains the constants and error taxonomy shared by every
// layer of the dashboard client.
package common

const (
	// AuthorizationHeaderName carries both the Basic credentials on sign-in
	// and the Bearer token on GraphQL requests.
	AuthorizationHeaderName = "Authorization"

	BasicScheme  = "Basic"
	BearerScheme = "Bearer"
)
