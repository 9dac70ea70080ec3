package app

import (
	"flag"
	"fmt"
	"strings"

	"torus-life/internal/logging"
	"torus-life/internal/sims/life"
)

// kvList collects repeatable key=value flags.
type kvList []string

func (l *kvList) String() string {
	return strings.Join(*l, ",")
}

func (l *kvList) Set(value string) error {
	if !strings.Contains(value, "=") {
		return fmt.Errorf("expected key=value, got %q", value)
	}
	*l = append(*l, value)
	return nil
}

// Config represents the command-line parameters shared by the hosts.
type Config struct {
	ConfigPath string
	Overrides  []string
	Width      int
	Height     int
	Scale      int
	TPS        int
	Steps      int

	// LogLevel is empty unless -log-level was given, so the environment
	// level applies.
	LogLevel string
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Scale: 8, TPS: 100}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.ConfigPath, "config", c.ConfigPath, "TOML universe description")
	fs.Var((*kvList)(&c.Overrides), "set", "universe override in key=value form: w, h, divisors (repeatable)")
	fs.IntVar(&c.Width, "w", c.Width, "universe width (overrides config)")
	fs.IntVar(&c.Height, "h", c.Height, "universe height (overrides config)")
	fs.IntVar(&c.Scale, "scale", c.Scale, "cell size in pixels")
	fs.IntVar(&c.TPS, "tps", c.TPS, "generations per second")
	fs.IntVar(&c.Steps, "steps", c.Steps, "generations to run before exiting (0 runs forever)")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "log level (trace, debug, info, warn, error, off); defaults to $"+logging.EnvLogLevel+" or info")
}

// LogOptions returns the logger options for app: environment settings
// first, then -log-level when it names a known level.
func (c *Config) LogOptions(app string) logging.Options {
	opts := logging.DefaultOptions(app)
	if lvl, ok := logging.ParseLevel(c.LogLevel); ok {
		opts.Level = lvl
	}
	return opts
}

// Universe resolves the universe configuration: the file named by -config
// when set, else the defaults, then -set overrides, then -w and -h.
func (c *Config) Universe() (life.Config, error) {
	cfg := life.DefaultConfig()
	if c.ConfigPath != "" {
		loaded, err := life.LoadFile(c.ConfigPath)
		if err != nil {
			return life.Config{}, err
		}
		cfg = loaded
	}

	kv := make(map[string]string, len(c.Overrides)+2)
	for _, raw := range c.Overrides {
		key, value, _ := strings.Cut(raw, "=")
		kv[strings.TrimSpace(key)] = value
	}
	if c.Width != 0 {
		kv["w"] = fmt.Sprint(c.Width)
	}
	if c.Height != 0 {
		kv["h"] = fmt.Sprint(c.Height)
	}

	cfg, err := cfg.Apply(kv)
	if err != nil {
		return life.Config{}, fmt.Errorf("apply universe flags: %w", err)
	}
	return cfg, nil
}
