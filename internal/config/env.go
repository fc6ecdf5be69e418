// Environment variable overrides for configuration.

package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/pflag"
)

// envBinding ties one TILECALC_* variable to a config field and to the CLI
// flags that take precedence over it.
type envBinding struct {
	key   string
	flags []string
	field func(*AppConfig) any
}

// envBindings lists every supported override. The assignment logic lives in
// assignEnv, keyed on the field's pointer type.
var envBindings = []envBinding{
	{"TIMEOUT", []string{"timeout"}, func(c *AppConfig) any { return &c.Timeout }},
	{"LOG_LEVEL", []string{"log-level"}, func(c *AppConfig) any { return &c.LogLevel }},
	{"WARN_THRESHOLD", []string{"warn-threshold"}, func(c *AppConfig) any { return &c.WarnThreshold }},
	{"LIMIT", []string{"limit"}, func(c *AppConfig) any { return &c.Limit }},
	{"METHOD", []string{"method"}, func(c *AppConfig) any { return &c.Method }},
	{"THEME", []string{"theme"}, func(c *AppConfig) any { return &c.Theme }},
	{"NO_COLOR", []string{"no-color"}, func(c *AppConfig) any { return &c.NoColor }},
	{"QUIET", []string{"quiet"}, func(c *AppConfig) any { return &c.Quiet }},
}

// assignEnv parses raw according to the destination type and stores it.
// Unparseable values are dropped so a stray variable never breaks a run.
func assignEnv(dst any, raw string) {
	switch p := dst.(type) {
	case *string:
		*p = raw
	case *int:
		if v, err := strconv.Atoi(raw); err == nil {
			*p = v
		}
	case *uint64:
		if v, err := strconv.ParseUint(raw, 10, 64); err == nil {
			*p = v
		}
	case *time.Duration:
		if v, err := time.ParseDuration(raw); err == nil {
			*p = v
		}
	case *bool:
		*p = parseBoolEnv(raw, *p)
	}
}

// parseBoolEnv reads a boolean environment value. "true", "1" and "yes"
// enable, "false", "0" and "no" disable (case-insensitive); anything else
// keeps defaultVal.
func parseBoolEnv(val string, defaultVal bool) bool {
	switch strings.ToLower(val) {
	case "true", "1", "yes":
		return true
	case "false", "0", "no":
		return false
	}
	return defaultVal
}

// flagChanged reports whether any of the named flags was set explicitly on
// the command line. Flags not registered on the set count as unset.
func flagChanged(fs *pflag.FlagSet, names ...string) bool {
	for _, name := range names {
		if f := fs.Lookup(name); f != nil && f.Changed {
			return true
		}
	}
	return false
}

// ApplyEnvOverrides fills config fields from TILECALC_* environment
// variables, skipping any field whose flag was given on the command line.
// The resulting priority is CLI flags, then environment, then defaults.
//
// Supported variables: TIMEOUT, LOG_LEVEL, WARN_THRESHOLD, LIMIT, METHOD,
// THEME, NO_COLOR, QUIET.
func ApplyEnvOverrides(config *AppConfig, fs *pflag.FlagSet) {
	for _, b := range envBindings {
		if flagChanged(fs, b.flags...) {
			continue
		}
		if val := os.Getenv(EnvPrefix + b.key); val != "" {
			assignEnv(b.field(config), val)
		}
	}
}
