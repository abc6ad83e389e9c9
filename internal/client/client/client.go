package client

import (
	"context"

	"github.com/dmitrijs2005/profiledash/internal/client/models"
)

// Authenticator exchanges credentials for a token.
type Authenticator interface {
	Authenticate(ctx context.Context, username, password string) (string, error)
}

// ProfileFetcher loads the profile of subjectID using token.
type ProfileFetcher interface {
	FetchProfile(ctx context.Context, subjectID, token string) (*models.UserProfile, error)
}

var (
	_ Authenticator  = (*HTTPAuthenticator)(nil)
	_ ProfileFetcher = (*GraphQLFetcher)(nil)
)
