package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/dmitrijs2005/profiledash/internal/client/models"
	"github.com/dmitrijs2005/profiledash/internal/client/token"
	"github.com/dmitrijs2005/profiledash/internal/common"
	"github.com/dmitrijs2005/profiledash/internal/logging"
	"github.com/dmitrijs2005/profiledash/internal/netx"
)

type GraphQLFetcher struct {
	endpointURL string
	httpClient  *http.Client
	log         logging.Logger
}

func NewGraphQLFetcher(endpointURL string, httpClient *http.Client, log logging.Logger) *GraphQLFetcher {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	if log == nil {
		log = logging.Nop()
	}
	return &GraphQLFetcher{endpointURL: endpointURL, httpClient: httpClient, log: log}
}

// FetchProfile runs the user data query for subjectID in a single round trip.
func (f *GraphQLFetcher) FetchProfile(ctx context.Context, subjectID, tok string) (*models.UserProfile, error) {
	userID, err := strconv.Atoi(subjectID)
	if err != nil {
		return nil, fmt.Errorf("%w: subject %q is not a user id", common.ErrMalformedToken, subjectID)
	}
	tok = token.Normalize(tok)
	if tok == "" {
		return nil, common.ErrEmptyToken
	}

	payload, err := json.Marshal(graphQLRequest{
		Query:     userDataQuery,
		Variables: map[string]any{"userId": userID},
	})
	if err != nil {
		return nil, fmt.Errorf("encode query: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, f.endpointURL, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("%w: build graphql request: %w", common.ErrNetwork, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(common.AuthorizationHeaderName, common.BearerScheme+" "+tok)

	body, err := netx.Do(f.httpClient, f.log, req)
	if err != nil {
		return nil, f.mapError(err)
	}

	var resp userDataResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("%w: decode graphql response: %w", common.ErrNetwork, err)
	}
	if len(resp.Errors) > 0 {
		return nil, &common.QueryError{Message: resp.Errors[0].Message}
	}
	if resp.Data == nil || resp.Data.User == nil {
		return nil, common.ErrNotFound
	}

	return resp.Data.User, nil
}

func (f *GraphQLFetcher) mapError(err error) error {
	var se *netx.StatusError
	if !errors.As(err, &se) {
		return fmt.Errorf("%w: %w", common.ErrNetwork, err)
	}
	switch se.Code {
	case http.StatusUnauthorized, http.StatusForbidden:
		return fmt.Errorf("%w: %w: graphql request failed: %s", common.ErrNetwork, common.ErrUnauthorized, se.StatusText())
	default:
		return fmt.Errorf("%w: graphql request failed: %s", common.ErrNetwork, se.StatusText())
	}
}
