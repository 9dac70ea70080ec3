package life

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
)

// Config controls the universe dimensions and its seed pattern.
type Config struct {
	Width  int
	Height int

	// Divisors selects the live cells of the seed: index i starts alive when
	// any divisor divides it.
	Divisors []int
}

// DefaultConfig returns the standard 64×64 configuration.
func DefaultConfig() Config {
	return Config{Width: 64, Height: 64, Divisors: []int{2, 7}}
}

// Apply returns a copy of c with flag-style key/value overrides applied.
// Recognized keys are w, h and divisors (comma separated); an unknown key or
// an unparseable value is an error.
func (c Config) Apply(kv map[string]string) (Config, error) {
	out := c
	out.Divisors = append([]int(nil), c.Divisors...)
	for key, v := range kv {
		switch key {
		case "w", "h":
			parsed, err := strconv.Atoi(strings.TrimSpace(v))
			if err != nil {
				return Config{}, fmt.Errorf("parse %s: %w", key, err)
			}
			if key == "w" {
				out.Width = parsed
			} else {
				out.Height = parsed
			}
		case "divisors":
			parsed, err := parseDivisors(v)
			if err != nil {
				return Config{}, err
			}
			out.Divisors = parsed
		default:
			return Config{}, fmt.Errorf("unknown universe setting %q", key)
		}
	}
	if err := out.Validate(); err != nil {
		return Config{}, err
	}
	return out, nil
}

func parseDivisors(raw string) ([]int, error) {
	var out []int
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		d, err := strconv.Atoi(part)
		if err != nil {
			return nil, fmt.Errorf("parse divisor %q: %w", part, err)
		}
		if d <= 0 {
			return nil, fmt.Errorf("divisor %d must be positive", d)
		}
		out = append(out, d)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("divisors %q lists no values", raw)
	}
	return out, nil
}

type fileConfig struct {
	Width    int   `toml:"width"`
	Height   int   `toml:"height"`
	Divisors []int `toml:"divisors"`
}

// LoadFile reads a TOML universe description. Keys absent from the file keep
// their DefaultConfig values.
func LoadFile(path string) (Config, error) {
	cfg := DefaultConfig()

	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return Config{}, fmt.Errorf("load universe config (%s): %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("load universe config (%s): unknown key %q", path, undecoded[0].String())
	}

	if meta.IsDefined("width") {
		cfg.Width = raw.Width
	}
	if meta.IsDefined("height") {
		cfg.Height = raw.Height
	}
	if meta.IsDefined("divisors") {
		cfg.Divisors = raw.Divisors
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("load universe config (%s): %w", path, err)
	}
	return cfg, nil
}

// Validate reports whether the configuration can build a universe.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: got %dx%d", ErrInvalidSize, c.Width, c.Height)
	}
	for _, d := range c.Divisors {
		if d <= 0 {
			return fmt.Errorf("divisor %d must be positive", d)
		}
	}
	return nil
}
