package app

import (
	"flag"
	"strings"
)

// Config represents the command-line parameters for the viewer.
type Config struct {
	Demo  string
	Scale int
	TPS   int
	Seed  int64
	Opts  string
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Demo: "disk", Scale: 3, TPS: 60, Seed: 42}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Demo, "demo", c.Demo, "demo to run")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for demo reset")
	fs.StringVar(&c.Opts, "opts", c.Opts, "comma-separated key=value demo settings")
}

// OptMap parses the Opts string into the map demo factories consume.
func (c *Config) OptMap() map[string]string {
	if c.Opts == "" {
		return nil
	}
	opts := map[string]string{}
	for _, pair := range strings.Split(c.Opts, ",") {
		key, value, ok := strings.Cut(pair, "=")
		if !ok || key == "" {
			continue
		}
		opts[key] = value
	}
	return opts
}
