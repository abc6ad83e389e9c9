package config

import (
	"errors"
	"io/fs"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// DotEnvFile is read from the working directory when present.
const DotEnvFile = ".env"

const (
	EnvAuthURL      = "PROFILEDASH_AUTH_URL"
	EnvGraphQLURL   = "PROFILEDASH_GRAPHQL_URL"
	EnvDatabasePath = "PROFILEDASH_DB"
	EnvHTTPTimeout  = "PROFILEDASH_HTTP_TIMEOUT"
	EnvLogLevel     = "PROFILEDASH_LOG_LEVEL"
	EnvLogFormat    = "PROFILEDASH_LOG_FORMAT"
	EnvChartDir     = "PROFILEDASH_CHART_DIR"
)

// parseEnv overlays Config with PROFILEDASH_* variables. Values from
// dotEnvPath fill in whatever the process environment does not set; a
// missing file is ignored. Unreadable files and bad durations panic, like
// the JSON and flag loaders.
func parseEnv(cfg *Config, dotEnvPath string) {
	fileVals := map[string]string{}
	if dotEnvPath != "" {
		vals, err := godotenv.Read(dotEnvPath)
		switch {
		case err == nil:
			fileVals = vals
		case errors.Is(err, fs.ErrNotExist):
		default:
			panic(err)
		}
	}

	lookup := func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok {
			return v, true
		}
		v, ok := fileVals[key]
		return v, ok
	}

	for key, dst := range map[string]*string{
		EnvAuthURL:      &cfg.AuthURL,
		EnvGraphQLURL:   &cfg.GraphQLURL,
		EnvDatabasePath: &cfg.DatabasePath,
		EnvLogLevel:     &cfg.LogLevel,
		EnvLogFormat:    &cfg.LogFormat,
		EnvChartDir:     &cfg.ChartDir,
	} {
		if v, ok := lookup(key); ok && v != "" {
			*dst = v
		}
	}

	if v, ok := lookup(EnvHTTPTimeout); ok && v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			panic(err)
		}
		cfg.HTTPTimeout = d
	}
}
