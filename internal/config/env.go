package config

import (
	"flag"
	"os"
	"strings"
	"time"
)

// envOverride binds WIDECALC_<key> to the flags it stands in for. It only
// applies when none of those flags appeared on the command line.
type envOverride struct {
	key   string
	flags []string
	apply func(*AppConfig, string)
}

func stringEnv(field func(*AppConfig) *string) func(*AppConfig, string) {
	return func(c *AppConfig, v string) { *field(c) = v }
}

func boolEnv(field func(*AppConfig) *bool) func(*AppConfig, string) {
	return func(c *AppConfig, v string) {
		p := field(c)
		*p = parseBoolEnv(v, *p)
	}
}

var envOverrides = []envOverride{
	{"OP", []string{"op"}, stringEnv(func(c *AppConfig) *string { return &c.Op })},
	{"A", []string{"a"}, stringEnv(func(c *AppConfig) *string { return &c.A })},
	{"B", []string{"b"}, stringEnv(func(c *AppConfig) *string { return &c.B })},
	{"BACKEND", []string{"backend"}, stringEnv(func(c *AppConfig) *string { return &c.Backend })},
	{"OUTPUT", []string{"output", "o"}, stringEnv(func(c *AppConfig) *string { return &c.OutputFile })},
	{"PORT", []string{"port"}, stringEnv(func(c *AppConfig) *string { return &c.Port })},
	{"LOG_LEVEL", []string{"log-level"}, stringEnv(func(c *AppConfig) *string { return &c.LogLevel })},
	{"TIMEOUT", []string{"timeout"}, func(c *AppConfig, v string) {
		if d, err := time.ParseDuration(v); err == nil {
			c.Timeout = d
		}
	}},
	{"VERBOSE", []string{"v", "verbose"}, boolEnv(func(c *AppConfig) *bool { return &c.Verbose })},
	{"DETAILS", []string{"d", "details"}, boolEnv(func(c *AppConfig) *bool { return &c.Details })},
	{"QUIET", []string{"quiet", "q"}, boolEnv(func(c *AppConfig) *bool { return &c.Quiet })},
	{"JSON", []string{"json"}, boolEnv(func(c *AppConfig) *bool { return &c.JSONOutput })},
	{"SERVER", []string{"server"}, boolEnv(func(c *AppConfig) *bool { return &c.ServerMode })},
	{"TUI", []string{"tui"}, boolEnv(func(c *AppConfig) *bool { return &c.TUI })},
	{"NO_COLOR", []string{"no-color"}, boolEnv(func(c *AppConfig) *bool { return &c.NoColor })},
}

// parseBoolEnv accepts true/1/yes and false/0/no in any case. Anything else
// keeps current.
func parseBoolEnv(val string, current bool) bool {
	switch strings.ToLower(val) {
	case "true", "1", "yes":
		return true
	case "false", "0", "no":
		return false
	}
	return current
}

// explicitFlags returns the names of the flags given on the command line.
func explicitFlags(fs *flag.FlagSet) map[string]bool {
	set := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })
	return set
}

// applyEnvOverrides fills every option not given as a flag from the
// environment. Flags win over the environment, which wins over defaults.
func applyEnvOverrides(config *AppConfig, fs *flag.FlagSet) {
	explicit := explicitFlags(fs)
	for _, o := range envOverrides {
		given := false
		for _, f := range o.flags {
			given = given || explicit[f]
		}
		if given {
			continue
		}
		if val := os.Getenv(EnvPrefix + o.key); val != "" {
			o.apply(config, val)
		}
	}
}
