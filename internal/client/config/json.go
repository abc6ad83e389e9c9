package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/profiledash/internal/flagx"
	"github.com/dmitrijs2005/profiledash/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Absent fields
// leave the current Config untouched.
type JsonConfig struct {
	AuthURL      string          `json:"auth_url"`
	GraphQLURL   string          `json:"graphql_url"`
	DatabasePath string          `json:"database_path"`
	HTTPTimeout  *timex.Duration `json:"http_timeout"`
	LogLevel     string          `json:"log_level"`
	LogFormat    string          `json:"log_format"`
	ChartDir     string          `json:"chart_dir"`
}

// parseJson overlays Config with values loaded from the JSON file named by
// -c or -config. Without either flag it does nothing. Read and unmarshal
// errors panic.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.ConfigPath(os.Args[1:])
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	setIfNotEmpty(&cfg.AuthURL, jc.AuthURL)
	setIfNotEmpty(&cfg.GraphQLURL, jc.GraphQLURL)
	setIfNotEmpty(&cfg.DatabasePath, jc.DatabasePath)
	setIfNotEmpty(&cfg.LogLevel, jc.LogLevel)
	setIfNotEmpty(&cfg.LogFormat, jc.LogFormat)
	setIfNotEmpty(&cfg.ChartDir, jc.ChartDir)
	if jc.HTTPTimeout != nil {
		cfg.HTTPTimeout = jc.HTTPTimeout.Duration
	}
}

func setIfNotEmpty(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
