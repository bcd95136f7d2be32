package main

import (
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"

	"github.com/sqlkit-go/sqlkit/dialect"
)

// Config is the demo binary's full configuration surface, layered from
// defaults, an optional sqlkit.yaml, SQLKIT_-prefixed environment
// variables, and explicit flags, in that precedence order (lowest to
// highest) — the same layering leapstack-labs-leapsql's config loader
// uses, minus its posflag dependency, which this module's go.mod never
// carried.
type Config struct {
	Dialect string `koanf:"dialect"`
	Out     string `koanf:"out"`
}

func defaultConfig() map[string]interface{} {
	return map[string]interface{}{
		"dialect": string(dialect.SQLite),
		"out":     ".",
	}
}

// loadConfig layers defaults, an optional config file, environment
// variables, and changed flags into one Config.
func loadConfig(flags *pflag.FlagSet, configPath string) (Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaultConfig(), "."), nil); err != nil {
		return Config{}, err
	}

	if configPath != "" {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return Config{}, err
		}
	}

	if err := k.Load(env.Provider("SQLKIT_", ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, "SQLKIT_"))
	}), nil); err != nil {
		return Config{}, err
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return Config{}, err
	}
	applyFlags(&cfg, flags)
	return cfg, nil
}

// applyFlags overrides cfg with any flag the caller explicitly set,
// using pflag's own typed getters rather than a posflag provider this
// module doesn't depend on.
func applyFlags(cfg *Config, flags *pflag.FlagSet) {
	if flags.Changed("dialect") {
		if v, err := flags.GetString("dialect"); err == nil {
			cfg.Dialect = v
		}
	}
	if flags.Changed("out") {
		if v, err := flags.GetString("out"); err == nil {
			cfg.Out = v
		}
	}
}
