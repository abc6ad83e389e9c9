// Package devserver is a local stand-in for the learning platform: a sign-in
// endpoint that issues HS256 tokens and a GraphQL endpoint that answers the
// user_by_pk query the dashboard sends. It keeps accounts in memory.
package devserver

import (
	"context"
	"encoding/json"
	"errors"
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/dmitrijs2005/profiledash/internal/client/models"
	"github.com/dmitrijs2005/profiledash/internal/common"
	"github.com/dmitrijs2005/profiledash/internal/logging"
)

const (
	SignInPath  = "/api/auth/signin"
	GraphQLPath = "/api/graphql-engine/v1/graphql"

	DefaultTokenTTL = 24 * time.Hour
)

// Account is a user that can sign in with either its login or its email.
type Account struct {
	Password string
	Profile  models.UserProfile
}

type Option func(*Server)

func WithClock(now func() time.Time) Option {
	return func(s *Server) { s.now = now }
}

func WithTokenTTL(ttl time.Duration) Option {
	return func(s *Server) { s.ttl = ttl }
}

func WithLogger(l logging.Logger) Option {
	return func(s *Server) { s.log = l }
}

type Server struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
	log    logging.Logger

	mu       sync.RWMutex
	accounts map[int]Account
}

func New(secretKey []byte, opts ...Option) *Server {
	s := &Server{
		secret:   secretKey,
		ttl:      DefaultTokenTTL,
		now:      time.Now,
		log:      logging.Nop(),
		accounts: make(map[int]Account),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// AddAccount registers a, replacing any account with the same profile id.
func (s *Server) AddAccount(a Account) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.accounts[a.Profile.ID] = a
}

// Handler serves both endpoints.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST "+SignInPath, s.signIn)
	mux.HandleFunc("POST "+GraphQLPath, s.graphQL)
	return mux
}

// Run listens on address until ctx is done, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, address string) error {
	listen, err := net.Listen("tcp", address)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		s.log.Info(ctx, "Stopping dev server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	s.log.Info(ctx, "Starting dev server", "address", listen.Addr().String())

	if err := srv.Serve(listen); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) lookup(identifier, password string) (Account, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, a := range s.accounts {
		if a.Profile.Login != identifier && !strings.EqualFold(a.Profile.Email, identifier) {
			continue
		}
		return a, a.Password == password
	}
	return Account{}, false
}

func (s *Server) signIn(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	identifier, password, ok := r.BasicAuth()
	if !ok {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "missing credentials"})
		return
	}

	account, ok := s.lookup(identifier, password)
	if !ok {
		s.log.Info(ctx, "sign-in rejected", "identifier", identifier)
		writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "User does not exist or password incorrect"})
		return
	}

	tok, err := GenerateToken(account.Profile.ID, s.secret, s.now(), s.ttl)
	if err != nil {
		s.log.Error(ctx, "token generation failed", "err", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal error"})
		return
	}

	s.log.Debug(ctx, "sign-in accepted", "user_id", account.Profile.ID)
	// The platform answers with the token as a JSON string.
	writeJSON(w, http.StatusOK, tok)
}

type graphQLBody struct {
	Query     string `json:"query"`
	Variables struct {
		UserID *int `json:"userId"`
	} `json:"variables"`
}

func (s *Server) graphQL(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	tok, ok := strings.CutPrefix(r.Header.Get(common.AuthorizationHeaderName), common.BearerScheme+" ")
	if !ok || tok == "" {
		writeErrors(w, http.StatusUnauthorized, "missing authorization token")
		return
	}

	callerID, err := UserIDFromToken(tok, s.secret, s.now())
	if err != nil {
		s.log.Info(ctx, "token rejected", "err", err)
		if errors.Is(err, common.ErrSessionExpired) {
			writeErrors(w, http.StatusUnauthorized, "token expired")
			return
		}
		writeErrors(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var body graphQLBody
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, 1<<20)).Decode(&body); err != nil {
		writeErrors(w, http.StatusOK, "invalid request body")
		return
	}
	if !strings.Contains(body.Query, "user_by_pk") {
		writeErrors(w, http.StatusOK, "unsupported query")
		return
	}
	if body.Variables.UserID == nil {
		writeErrors(w, http.StatusOK, `variable "userId" is required`)
		return
	}

	userID := *body.Variables.UserID

	var user *models.UserProfile
	// Row-level permissions: a caller only ever sees its own row.
	if userID == callerID {
		s.mu.RLock()
		if a, found := s.accounts[userID]; found {
			profile := a.Profile
			user = &profile
		}
		s.mu.RUnlock()
	}

	s.log.Debug(ctx, "query served", "user_id", userID, "found", user != nil)
	writeJSON(w, http.StatusOK, map[string]any{"data": map[string]any{"user": user}})
}

func writeErrors(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]any{"errors": []map[string]string{{"message": message}}})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	body, err := json.Marshal(v)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(body)
}
