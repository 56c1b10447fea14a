package app

import (
	"flag"
	"fmt"
	"strings"
)

// Config represents the command-line parameters for the viewer.
type Config struct {
	Sim   string
	Scale int
	TPS   int
	Seed  int64

	// Params are passed to the sim factory as key/value overrides.
	Params map[string]string
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Sim: "schelling", Scale: 10, TPS: 10, Seed: 42, Params: map[string]string{}}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "simulation to run")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "rounds per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for simulation reset")
	fs.Func("param", "sim parameter as key=value (repeatable)", c.setParam)
}

func (c *Config) setParam(v string) error {
	key, value, ok := strings.Cut(v, "=")
	key = strings.TrimSpace(key)
	if !ok || key == "" {
		return fmt.Errorf("expected key=value, got %q", v)
	}
	if c.Params == nil {
		c.Params = map[string]string{}
	}
	c.Params[key] = strings.TrimSpace(value)
	return nil
}

// SimParams returns the factory overrides collected from -param flags.
func (c *Config) SimParams() map[string]string {
	return c.Params
}
