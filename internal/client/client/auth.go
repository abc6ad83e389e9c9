package client

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/dmitrijs2005/profiledash/internal/common"
	"github.com/dmitrijs2005/profiledash/internal/logging"
	"github.com/dmitrijs2005/profiledash/internal/netx"
)

type HTTPAuthenticator struct {
	endpointURL string
	httpClient  *http.Client
	log         logging.Logger
}

func NewHTTPAuthenticator(endpointURL string, httpClient *http.Client, log logging.Logger) *HTTPAuthenticator {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	if log == nil {
		log = logging.Nop()
	}
	return &HTTPAuthenticator{endpointURL: endpointURL, httpClient: httpClient, log: log}
}

// Authenticate signs in and returns the response body unparsed.
func (a *HTTPAuthenticator) Authenticate(ctx context.Context, username, password string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.endpointURL, http.NoBody)
	if err != nil {
		return "", fmt.Errorf("%w: build sign-in request: %w", common.ErrNetwork, err)
	}
	req.SetBasicAuth(username, password)

	body, err := netx.Do(a.httpClient, a.log, req)
	if err != nil {
		var se *netx.StatusError
		if errors.As(err, &se) {
			return "", fmt.Errorf("%w: %s", common.ErrAuthentication, se.StatusText())
		}
		return "", fmt.Errorf("%w: %w", common.ErrNetwork, err)
	}

	return string(body), nil
}
