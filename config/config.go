// Package config holds the settings of the avita command.
package config

import (
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// Config is the YAML configuration of the render command.
type Config struct {
	Viewport   Viewport `yaml:"viewport"`
	Root       string   `yaml:"root"`
	BaseStyles *bool    `yaml:"base_styles"`
	Template   string   `yaml:"template"`
	Location   string   `yaml:"location"`
	Pretty     bool     `yaml:"pretty"`
	LogLevel   string   `yaml:"log_level"`
}

// Viewport is the window size pages render at.
type Viewport struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	on := true
	return &Config{
		Viewport:   Viewport{Width: 1280, Height: 800},
		Root:       "#root",
		BaseStyles: &on,
		Location:   "http://localhost/",
		LogLevel:   "info",
	}
}

// Load reads a YAML file over the defaults. A missing file yields the
// defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, errors.Wrap(err, "read config")
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.Wrap(err, "parse config")
	}
	cfg.fill()
	return cfg, nil
}

// fill restores defaults for fields a file set to zero values.
func (c *Config) fill() {
	def := Default()
	if c.Viewport.Width == 0 {
		c.Viewport.Width = def.Viewport.Width
	}
	if c.Viewport.Height == 0 {
		c.Viewport.Height = def.Viewport.Height
	}
	if strings.TrimSpace(c.Root) == "" {
		c.Root = def.Root
	}
	if c.BaseStyles == nil {
		c.BaseStyles = def.BaseStyles
	}
	if c.Location == "" {
		c.Location = def.Location
	}
	if c.LogLevel == "" {
		c.LogLevel = def.LogLevel
	}
}

// InjectBaseStyles reports whether render adds the reset stylesheet.
func (c *Config) InjectBaseStyles() bool { return c.BaseStyles == nil || *c.BaseStyles }

// Level parses the configured log level.
func (c *Config) Level() (logrus.Level, error) {
	lvl, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return logrus.InfoLevel, errors.Wrap(err, "log level")
	}
	return lvl, nil
}

// Validate checks the values a render needs.
func (c *Config) Validate() error {
	if c.Viewport.Width <= 0 || c.Viewport.Height <= 0 {
		return errors.Errorf("viewport must be positive, got %vx%v", c.Viewport.Width, c.Viewport.Height)
	}
	if strings.TrimSpace(c.Root) == "" {
		return errors.New("root selector must not be empty")
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Save writes the configuration as YAML.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return errors.Wrap(err, "marshal config")
	}
	return errors.Wrap(os.WriteFile(path, data, 0o644), "write config")
}
