// Package client talks to the two backend endpoints of the dashboard.
//
// # Overview
//
//  1. HTTPAuthenticator exchanges a username and password for a credential
//     token: one POST to the sign-in endpoint with Basic authorization and
//     no body. The token is the raw response body.
//  2. GraphQLFetcher sends the fixed getUserData query with the token as a
//     Bearer credential and decodes the user_by_pk row into
//     models.UserProfile.
//
// Neither client retries, caches or stores anything; session handling lives
// in package session.
//
// # Error Handling
//
// Failures are reported with the sentinels of package common, matched with
// errors.Is: ErrAuthentication for a rejected sign-in, ErrNetwork for
// transport failures and non-2xx responses (401 and 403 additionally match
// ErrUnauthorized), *common.QueryError for a GraphQL errors list,
// ErrNotFound when the user row is null and ErrMalformedToken for a
// non-numeric subject id.
package client
