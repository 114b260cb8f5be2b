package config

import (
	"flag"
	"os"
	"strconv"
	"strings"
	"time"
)

// getEnvString returns the value of EnvPrefix+key, or defaultVal if unset.
func getEnvString(key, defaultVal string) string {
	if val := os.Getenv(EnvPrefix + key); val != "" {
		return val
	}
	return defaultVal
}

// isFlagSet reports whether the named flag was given on the command line.
func isFlagSet(fs *flag.FlagSet, name string) bool {
	found := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == name {
			found = true
		}
	})
	return found
}

// isFlagSetAny reports whether any of the aliases was given.
func isFlagSetAny(fs *flag.FlagSet, names ...string) bool {
	for _, name := range names {
		if isFlagSet(fs, name) {
			return true
		}
	}
	return false
}

// setting binds one configurable value to its command-line flags, its
// environment key (without EnvPrefix) and its config file key. Values that
// do not parse are ignored.
type setting struct {
	envKey  string
	fileKey string
	flags   []string
	apply   func(*AppConfig, string)
}

func intSetting(dst func(*AppConfig) *int) func(*AppConfig, string) {
	return func(c *AppConfig, v string) {
		if parsed, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
			*dst(c) = parsed
		}
	}
}

func stringSetting(dst func(*AppConfig) *string) func(*AppConfig, string) {
	return func(c *AppConfig, v string) { *dst(c) = v }
}

func boolSetting(dst func(*AppConfig) *bool) func(*AppConfig, string) {
	return func(c *AppConfig, v string) {
		p := dst(c)
		*p = parseBoolEnv(v, *p)
	}
}

// settings is the declarative table of every value that can come from the
// environment or a config file.
var settings = []setting{
	{"BASE", "base", []string{"base"}, intSetting(func(c *AppConfig) *int { return &c.Base })},
	{"ALT_BASE", "alt_base", []string{"alt-base"}, intSetting(func(c *AppConfig) *int { return &c.AltBase })},
	{"TO_BASE", "to_base", []string{"to-base"}, intSetting(func(c *AppConfig) *int { return &c.ToBase })},

	{"TIMEOUT", "timeout", []string{"timeout"}, func(c *AppConfig, v string) {
		if parsed, err := time.ParseDuration(strings.TrimSpace(v)); err == nil {
			c.Timeout = parsed
		}
	}},

	{"INPUT", "input", []string{"input", "i"}, stringSetting(func(c *AppConfig) *string { return &c.InputFile })},
	{"OUTPUT", "output", []string{"output", "o"}, stringSetting(func(c *AppConfig) *string { return &c.OutputFile })},
	{"OP", "op", []string{"op"}, stringSetting(func(c *AppConfig) *string { return &c.Op })},
	{"OPERAND", "operand", []string{"operand"}, stringSetting(func(c *AppConfig) *string { return &c.Operand })},
	{"ADDR", "addr", []string{"addr"}, stringSetting(func(c *AppConfig) *string { return &c.Addr })},
	{"LOG_LEVEL", "log_level", []string{"log-level"}, stringSetting(func(c *AppConfig) *string { return &c.LogLevel })},

	{"QUIET", "quiet", []string{"quiet", "q"}, boolSetting(func(c *AppConfig) *bool { return &c.Quiet })},
	{"VERBOSE", "verbose", []string{"verbose", "v"}, boolSetting(func(c *AppConfig) *bool { return &c.Verbose })},
	{"NO_COLOR", "no_color", []string{"no-color"}, boolSetting(func(c *AppConfig) *bool { return &c.NoColor })},
	{"TUI", "tui", []string{"tui"}, boolSetting(func(c *AppConfig) *bool { return &c.TUI })},
	{"REPL", "repl", []string{"repl"}, boolSetting(func(c *AppConfig) *bool { return &c.REPL })},
	{"SERVE", "serve", []string{"serve"}, boolSetting(func(c *AppConfig) *bool { return &c.Serve })},
}

// parseBoolEnv accepts "true", "1", "yes" and "false", "0", "no" in any case
// and returns defaultVal for anything else.
func parseBoolEnv(val string, defaultVal bool) bool {
	switch strings.ToLower(strings.TrimSpace(val)) {
	case "true", "1", "yes":
		return true
	case "false", "0", "no":
		return false
	}
	return defaultVal
}

// applyEnvOverrides applies NUMLIST_* variables to every setting whose flag
// was not given on the command line.
func applyEnvOverrides(config *AppConfig, fs *flag.FlagSet) {
	for _, s := range settings {
		if isFlagSetAny(fs, s.flags...) {
			continue
		}
		if val := os.Getenv(EnvPrefix + s.envKey); val != "" {
			s.apply(config, val)
		}
	}
}
