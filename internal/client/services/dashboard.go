// Package services contains application services for the dashboard client.
// DashboardService runs the pipeline: sign in, keep the session, fetch the
// profile and derive its statistics.
package services

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrijs2005/profiledash/internal/client/client"
	"github.com/dmitrijs2005/profiledash/internal/client/models"
	"github.com/dmitrijs2005/profiledash/internal/client/session"
	"github.com/dmitrijs2005/profiledash/internal/client/stats"
	"github.com/dmitrijs2005/profiledash/internal/client/token"
	"github.com/dmitrijs2005/profiledash/internal/common"
	"github.com/dmitrijs2005/profiledash/internal/logging"
	"github.com/google/uuid"
)

// DashboardService defines the operations behind the CLI commands.
//
// Contract:
//   - Login: exchange credentials for a token and start a session.
//   - Logout: end the session; a no-op without one.
//   - Status: report the stored session without touching the network.
//   - Load: validate the session, fetch the profile, derive the Summary.
//
// All methods must honor context cancellation/timeouts.
type DashboardService interface {
	Login(ctx context.Context, username string, password []byte) error
	Logout(ctx context.Context) error
	Status(ctx context.Context) (SessionStatus, error)
	Load(ctx context.Context) (*Dashboard, error)
}

// SessionStore is the part of session.Store the service uses.
type SessionStore interface {
	Store(ctx context.Context, token string) error
	IsValid(ctx context.Context) bool
	End(ctx context.Context) error
	Token(ctx context.Context) (string, error)
	Record(ctx context.Context) (session.Record, bool, error)
}

// SessionStatus describes the stored session.
type SessionStatus struct {
	Exists    bool
	Valid     bool
	Subject   string
	ExpiresAt time.Time
}

// Dashboard is one successful load.
type Dashboard struct {
	Profile *models.UserProfile
	Summary stats.Summary
}

type dashboardService struct {
	auth      client.Authenticator
	fetcher   client.ProfileFetcher
	session   SessionStore
	inspector token.Inspector
	log       logging.Logger
}

// NewDashboardService wires the service. A nil logger discards output.
func NewDashboardService(auth client.Authenticator, fetcher client.ProfileFetcher, store SessionStore,
	inspector token.Inspector, log logging.Logger) DashboardService {
	if log == nil {
		log = logging.Nop()
	}
	return &dashboardService{auth: auth, fetcher: fetcher, session: store, inspector: inspector, log: log}
}

// Login replaces the current session only when sign-in succeeds.
func (s *dashboardService) Login(ctx context.Context, username string, password []byte) error {
	if username == "" || len(password) == 0 {
		return common.ErrEmptyCredentials
	}

	tok, err := s.auth.Authenticate(ctx, username, string(password))
	if err != nil {
		s.log.Warn(ctx, "sign-in failed", "username", username, "error", err)
		return fmt.Errorf("login error: %w", err)
	}

	if err := s.session.Store(ctx, tok); err != nil {
		return fmt.Errorf("session saving error: %w", err)
	}

	s.log.Info(ctx, "signed in", "username", username)
	return nil
}

func (s *dashboardService) Logout(ctx context.Context) error {
	if err := s.session.End(ctx); err != nil {
		return fmt.Errorf("logout error: %w", err)
	}
	s.log.Info(ctx, "signed out")
	return nil
}

func (s *dashboardService) Status(ctx context.Context) (SessionStatus, error) {
	rec, ok, err := s.session.Record(ctx)
	if err != nil {
		return SessionStatus{}, fmt.Errorf("session status error: %w", err)
	}
	if !ok {
		return SessionStatus{}, nil
	}

	st := SessionStatus{Exists: true, ExpiresAt: rec.ExpiresAt, Valid: s.session.IsValid(ctx)}
	st.Subject, _ = s.inspector.ExtractSubject(rec.Token)
	return st, nil
}

// Load runs one full pipeline pass. An invalid session, an undecodable
// subject or an auth-related fetch failure ends the session; any other
// failure leaves it in place.
func (s *dashboardService) Load(ctx context.Context) (*Dashboard, error) {
	log := s.log.With("load_id", uuid.NewString())

	if !s.session.IsValid(ctx) {
		s.endSession(ctx, log, "session is not valid")
		return nil, common.ErrSessionExpired
	}

	tok, err := s.session.Token(ctx)
	if err != nil {
		return nil, fmt.Errorf("load error: %w", err)
	}

	subject, ok := s.inspector.ExtractSubject(tok)
	if !ok {
		s.endSession(ctx, log, "token carries no subject")
		return nil, common.ErrMalformedToken
	}

	start := time.Now()
	profile, err := s.fetcher.FetchProfile(ctx, subject, tok)
	if err != nil {
		if common.IsAuthFailure(err) {
			s.endSession(ctx, log, "backend rejected the session")
		}
		log.Warn(ctx, "profile fetch failed", "error", err)
		return nil, fmt.Errorf("load error: %w", err)
	}

	summary := stats.Compute(profile)
	log.Debug(ctx, "profile loaded",
		"subject", subject,
		"transactions", len(profile.Transactions),
		"results", len(profile.Results),
		"duration", time.Since(start),
	)

	return &Dashboard{Profile: profile, Summary: summary}, nil
}

func (s *dashboardService) endSession(ctx context.Context, log logging.Logger, reason string) {
	log.Info(ctx, "ending session", "reason", reason)
	if err := s.session.End(ctx); err != nil {
		log.Error(ctx, "failed to end session", "error", err)
	}
}
