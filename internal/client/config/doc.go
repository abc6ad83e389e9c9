// Package config loads runtime configuration for the dashboard CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. PROFILEDASH_* environment variables, with a .env file in the working
//     directory filling in unset ones (see parseEnv).
//  3. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  4. Command-line flags (see parseFlags), which override earlier values.
//
// # JSON schema
//
// The JSON loader uses timex.Duration for the timeout, so it can be either a
// string like "15s" or integer nanoseconds:
//
//	{
//	  "auth_url": "https://learn.reboot01.com/api/auth/signin",
//	  "graphql_url": "https://learn.reboot01.com/api/graphql-engine/v1/graphql",
//	  "database_path": "profiledash.db",
//	  "http_timeout": "15s",
//	  "log_level": "info",
//	  "log_format": "json",
//	  "chart_dir": "charts"
//	}
//
// Invalid JSON, unreadable files and malformed flag or duration values panic
// at startup.
package config
