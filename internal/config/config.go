// Package config loads stepview settings from defaults, an optional config
// file and command-line flags, in that order of precedence.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/matzehuels/stepview/pkg/geom"
	"github.com/matzehuels/stepview/pkg/playback"
	"github.com/matzehuels/stepview/pkg/solver"
)

// AppName names the config directory.
const AppName = "stepview"

// DefaultAddr is the listen address of the web viewer. The solver itself
// defaults to port 8080.
const DefaultAddr = ":8090"

// Config holds every tunable setting.
type Config struct {
	SolverURL string   `toml:"solver_url" yaml:"solver_url"`
	Timeout   Duration `toml:"timeout" yaml:"timeout"`
	Interval  Duration `toml:"interval" yaml:"interval"`
	Addr      string   `toml:"addr" yaml:"addr"`

	// The viewport keys width, height and padding sit at the top level.
	geom.Viewport `yaml:",inline"`
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		SolverURL: solver.DefaultURL,
		Timeout:   Duration(solver.DefaultTimeout),
		Interval:  Duration(playback.DefaultInterval),
		Addr:      DefaultAddr,
		Viewport:  geom.DefaultViewport(),
	}
}

// Path returns the default config file location,
// $XDG_CONFIG_HOME/stepview/config.toml or ~/.config/stepview/config.toml.
func Path() (string, error) {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, AppName, "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", AppName, "config.toml"), nil
}

// Load reads the config file at path over the defaults. An empty path means
// the default location, which may be missing; an explicit path must exist.
// Files ending in .yaml or .yml are YAML, everything else TOML.
func Load(path string) (*Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		p, err := Path()
		if err != nil {
			return cfg, nil
		}
		path = p
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := cfg.decode(path, data); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) decode(path string, data []byte) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
			return err
		}
		return nil
	default:
		md, err := toml.Decode(string(data), c)
		if err != nil {
			return err
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return fmt.Errorf("unknown key %q", undecoded[0].String())
		}
		return nil
	}
}

// SolverTimeout is the request timeout as a time.Duration.
func (c *Config) SolverTimeout() time.Duration { return time.Duration(c.Timeout) }

// TickInterval is the playback period as a time.Duration.
func (c *Config) TickInterval() time.Duration { return time.Duration(c.Interval) }

// Validate checks that the settings can drive a session.
func (c *Config) Validate() error {
	switch {
	case c.Pad < 0:
		return fmt.Errorf("padding must not be negative")
	case c.Width <= 2*c.Pad || c.Height <= 2*c.Pad:
		return fmt.Errorf("viewport %gx%g leaves no room inside padding %g", c.Width, c.Height, c.Pad)
	case c.Interval <= 0:
		return fmt.Errorf("interval must be positive")
	case c.Timeout <= 0:
		return fmt.Errorf("timeout must be positive")
	}
	return nil
}

// Encode writes c as TOML.
func (c *Config) Encode() (string, error) {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(c); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// Duration is a time.Duration read from strings such as "400ms" or "30s".
type Duration time.Duration

func (d Duration) String() string { return time.Duration(d).String() }

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) { return []byte(d.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	*d = Duration(v)
	return nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Duration) UnmarshalYAML(n *yaml.Node) error {
	return d.UnmarshalText([]byte(n.Value))
}
