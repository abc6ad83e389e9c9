// Package session keeps the single live Session Record: the credential token
// and the instant it stops being usable. It persists through an injected
// storage.Backend and reads claims through a token.Inspector.
package session

import (
	"context"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/dmitrijs2005/profiledash/internal/client/storage"
	"github.com/dmitrijs2005/profiledash/internal/client/token"
	"github.com/dmitrijs2005/profiledash/internal/common"
	"github.com/dmitrijs2005/profiledash/internal/logging"
)

const (
	// Keys of the persisted client state.
	TokenKey      = "jwt"
	ExpirationKey = "jwtExpiration"

	// DefaultTTL applies when the token carries no exp claim.
	DefaultTTL = 24 * time.Hour
)

// Record is the persisted session.
type Record struct {
	Token     string
	ExpiresAt time.Time
}

// Store owns the session record. All methods are safe for concurrent use.
type Store struct {
	mu         sync.Mutex
	backend    storage.Backend
	inspector  token.Inspector
	log        logging.Logger
	now        func() time.Time
	defaultTTL time.Duration
}

type Option func(*Store)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

func WithDefaultTTL(d time.Duration) Option {
	return func(s *Store) { s.defaultTTL = d }
}

func WithLogger(l logging.Logger) Option {
	return func(s *Store) { s.log = l }
}

func NewStore(backend storage.Backend, inspector token.Inspector, opts ...Option) *Store {
	s := &Store{
		backend:    backend,
		inspector:  inspector,
		log:        logging.Nop(),
		now:        time.Now,
		defaultTTL: DefaultTTL,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Store replaces the current session with tok. The expiry comes from the
// token's exp claim, or now+DefaultTTL when there is none or the token
// cannot be decoded.
func (s *Store) Store(ctx context.Context, tok string) error {
	if tok == "" {
		return common.ErrEmptyToken
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	expiresAt := s.now().Add(s.defaultTTL)
	if exp, ok := s.inspector.Expiration(tok); ok {
		expiresAt = exp
	} else {
		s.log.Debug(ctx, "token has no usable exp claim, using default session duration", "ttl", s.defaultTTL)
	}

	if err := s.backend.Set(ctx, TokenKey, tok); err != nil {
		return fmt.Errorf("store session token: %w", err)
	}
	if err := s.backend.Set(ctx, ExpirationKey, strconv.FormatInt(expiresAt.UnixMilli(), 10)); err != nil {
		_ = s.backend.Remove(ctx, TokenKey, ExpirationKey)
		return fmt.Errorf("store session expiration: %w", err)
	}
	return nil
}

// IsValid reports whether a usable session exists. The stored expiry and the
// token's own exp claim are checked independently; failing either one, or
// any read or decode problem, makes the session invalid. It never modifies
// the stored record.
func (s *Store) IsValid(ctx context.Context) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok, err := s.read(ctx)
	if err != nil {
		s.log.Warn(ctx, "session read failed, treating as expired", "error", err)
		return false
	}
	if !ok {
		return false
	}

	now := s.now()
	if now.UnixMilli() > rec.ExpiresAt.UnixMilli() {
		s.log.Info(ctx, "session expired based on local expiration time")
		return false
	}

	if _, decodable := s.inspector.Decode(rec.Token); !decodable {
		s.log.Warn(ctx, "stored token cannot be decoded, treating as expired")
		return false
	}
	if exp, ok := s.inspector.Expiration(rec.Token); ok && exp.Unix() < now.Unix() {
		s.log.Info(ctx, "session expired based on token exp claim")
		return false
	}

	return true
}

// End removes the session. Ending an absent session is a no-op.
func (s *Store) End(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.backend.Remove(ctx, TokenKey, ExpirationKey); err != nil {
		return fmt.Errorf("end session: %w", err)
	}
	return nil
}

// Token returns the stored token, or "" when there is none.
func (s *Store) Token(ctx context.Context) (string, error) {
	tok, _, err := s.backend.Get(ctx, TokenKey)
	if err != nil {
		return "", fmt.Errorf("read session token: %w", err)
	}
	return tok, nil
}

// Record returns the stored session. ok is false when no complete record
// exists.
func (s *Store) Record(ctx context.Context) (Record, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.read(ctx)
}

func (s *Store) read(ctx context.Context) (Record, bool, error) {
	tok, ok, err := s.backend.Get(ctx, TokenKey)
	if err != nil {
		return Record{}, false, fmt.Errorf("read session token: %w", err)
	}
	if !ok || tok == "" {
		return Record{}, false, nil
	}

	raw, ok, err := s.backend.Get(ctx, ExpirationKey)
	if err != nil {
		return Record{}, false, fmt.Errorf("read session expiration: %w", err)
	}
	if !ok {
		return Record{}, false, nil
	}

	ms, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return Record{}, false, fmt.Errorf("parse session expiration %q: %w", raw, err)
	}

	return Record{Token: tok, ExpiresAt: time.UnixMilli(ms)}, true, nil
}
