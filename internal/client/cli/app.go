package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/profiledash/internal/client/client"
	"github.com/dmitrijs2005/profiledash/internal/client/config"
	"github.com/dmitrijs2005/profiledash/internal/client/services"
	"github.com/dmitrijs2005/profiledash/internal/client/session"
	"github.com/dmitrijs2005/profiledash/internal/client/storage"
	"github.com/dmitrijs2005/profiledash/internal/client/token"
	"github.com/dmitrijs2005/profiledash/internal/logging"
	"github.com/dmitrijs2005/profiledash/internal/netx"
)

// InMemoryDatabase selects a session backend that lives only as long as the
// process.
const InMemoryDatabase = ":memory:"

type App struct {
	config  *config.Config
	service services.DashboardService
	log     logging.Logger
	closer  io.Closer
	reader  *bufio.Reader
	out     io.Writer

	userName string
}

// NewApp wires logging, session storage, both backend clients and the
// dashboard service from c.
func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	log, err := logging.NewLogger(os.Stderr, c.LogLevel, c.LogFormat)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}

	var (
		backend storage.Backend
		closer  io.Closer
	)
	if c.DatabasePath == InMemoryDatabase {
		backend = storage.NewMemoryBackend()
	} else {
		db, err := storage.InitDatabase(ctx, c.DatabasePath)
		if err != nil {
			log.Error(ctx, "error initializing database", "path", c.DatabasePath, "error", err)
			return nil, err
		}
		backend, closer = db, db
	}

	httpClient := netx.NewHTTPClient(c.HTTPTimeout)
	inspector := token.NewUnverifiedInspector()
	store := session.NewStore(backend, inspector, session.WithLogger(log))

	svc := services.NewDashboardService(
		client.NewHTTPAuthenticator(c.AuthURL, httpClient, log),
		client.NewGraphQLFetcher(c.GraphQLURL, httpClient, log),
		store,
		inspector,
		log,
	)

	app := newApp(c, svc, os.Stdin, os.Stdout)
	app.log = log
	app.closer = closer
	return app, nil
}

func newApp(c *config.Config, svc services.DashboardService, in io.Reader, out io.Writer) *App {
	return &App{
		config:  c,
		service: svc,
		log:     logging.Nop(),
		reader:  bufio.NewReader(in),
		out:     out,
	}
}

// Run shows the dashboard straight away when a valid session is stored and
// asks for credentials otherwise, then serves the REPL until exit.
func (a *App) Run(ctx context.Context) {
	defer a.Close()

	a.log.Debug(ctx, "cli started", "db", a.config.DatabasePath, "auth_url", a.config.AuthURL)
	fmt.Fprintln(a.out, "Profile dashboard CLI (type 'help' for commands)")

	if a.isLoggedIn() {
		_ = a.Show(ctx)
	} else {
		_ = a.Login(ctx)
	}

	runREPL(ctx, a, a.getStatus, bufio.NewScanner(a.reader))
}

// Close releases the session database.
func (a *App) Close() error {
	if a.closer == nil {
		return nil
	}
	return a.closer.Close()
}

func (a *App) isLoggedIn() bool {
	st, err := a.service.Status(context.Background())
	return err == nil && st.Valid
}

func (a *App) getStatus() string {
	st, err := a.service.Status(context.Background())
	switch {
	case err != nil || !st.Exists:
		return "(logged out)"
	case !st.Valid:
		return "(expired)"
	case a.userName != "":
		return "(" + a.userName + ")"
	default:
		return "(user " + st.Subject + ")"
	}
}
