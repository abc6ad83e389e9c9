package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/profiledash/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags:
//
//	-auth string        sign-in endpoint URL
//	-graphql string     GraphQL endpoint URL
//	-db string          session database path
//	-t int              HTTP timeout in seconds
//	-log-level string   debug, info, warn or error
//	-log-format string  text or json
//	-charts string      chart output directory
//
// os.Args is filtered with flagx.FilterArgs first, so -c/-config and
// unknown arguments never reach the flag set.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-auth", "-graphql", "-db", "-t", "-log-level", "-log-format", "-charts"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.AuthURL, "auth", cfg.AuthURL, "sign-in endpoint URL")
	fs.StringVar(&cfg.GraphQLURL, "graphql", cfg.GraphQLURL, "GraphQL endpoint URL")
	fs.StringVar(&cfg.DatabasePath, "db", cfg.DatabasePath, "session database path")
	timeout := fs.Int("t", int(cfg.HTTPTimeout.Seconds()), "HTTP timeout (in seconds)")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level")
	fs.StringVar(&cfg.LogFormat, "log-format", cfg.LogFormat, "log format: text or json")
	fs.StringVar(&cfg.ChartDir, "charts", cfg.ChartDir, "chart output directory")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	fs.Visit(func(f *flag.Flag) {
		if f.Name == "t" {
			cfg.HTTPTimeout = time.Duration(*timeout) * time.Second
		}
	})
}
