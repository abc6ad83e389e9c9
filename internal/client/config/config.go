package config

import "time"

const (
	DefaultAuthURL    = "https://learn.reboot01.com/api/auth/signin"
	DefaultGraphQLURL = "https://learn.reboot01.com/api/graphql-engine/v1/graphql"
)

// Config holds runtime settings for the dashboard CLI.
//
// Fields:
//   - AuthURL: sign-in endpoint that exchanges Basic credentials for a token.
//   - GraphQLURL: GraphQL endpoint queried with the token.
//   - DatabasePath: SQLite file holding the session; ":memory:" keeps it in
//     process memory only.
//   - HTTPTimeout: bound for each backend request; zero disables it.
//   - LogLevel, LogFormat: slog level name and "text" or "json".
//   - ChartDir: where the chart command writes SVG files.
type Config struct {
	AuthURL      string
	GraphQLURL   string
	DatabasePath string
	HTTPTimeout  time.Duration
	LogLevel     string
	LogFormat    string
	ChartDir     string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.AuthURL = DefaultAuthURL
	c.GraphQLURL = DefaultGraphQLURL
	c.DatabasePath = "profiledash.db"
	c.HTTPTimeout = 15 * time.Second
	c.LogLevel = "warn"
	c.LogFormat = "text"
	c.ChartDir = "charts"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// the environment (and a .env file), JSON (if present) and command-line flags
// (if present). Later sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg, DotEnvFile)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
