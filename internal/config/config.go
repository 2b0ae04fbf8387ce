package config

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/32bitkid/anotherworld/resource"
)

//go:embed default_tables.toml
var defaultTables string

// Part mirrors resource.Part in the configuration file.
type Part struct {
	ID      int `toml:"id"`
	Palette int `toml:"palette"`
	Script  int `toml:"script"`
	Poly1   int `toml:"poly1"`
	Poly2   int `toml:"poly2"`
}

// Audio holds export settings for sampled sounds.
type Audio struct {
	SampleRate int `toml:"sample_rate"`
}

// Config is the complete set of tables.
type Config struct {
	Classes []string `toml:"classes"`
	Parts   []Part   `toml:"parts"`
	Audio   Audio    `toml:"audio"`
}

// Default returns the embedded tables.
func Default() Config {
	var cfg Config
	if err := toml.Unmarshal([]byte(defaultTables), &cfg); err != nil {
		panic(fmt.Sprintf("config: embedded defaults: %v", err))
	}
	return cfg
}

// Load reads path over the defaults. An empty path returns the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()

	if strings.TrimSpace(path) != "" {
		expanded, err := expandPath(path)
		if err != nil {
			return nil, err
		}
		file, err := os.Open(expanded)
		if err != nil {
			return nil, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		var override Config
		decoder := toml.NewDecoder(file)
		decoder.DisallowUnknownFields()
		if err := decoder.Decode(&override); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
		cfg.merge(override)
	}

	cfg.normalize()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// merge replaces every section that other sets.
func (c *Config) merge(other Config) {
	if other.Classes != nil {
		c.Classes = other.Classes
	}
	if other.Parts != nil {
		c.Parts = other.Parts
	}
	if other.Audio.SampleRate != 0 {
		c.Audio = other.Audio
	}
}

func (c *Config) normalize() {
	for i, name := range c.Classes {
		c.Classes[i] = strings.ToLower(strings.TrimSpace(name))
	}
	if c.Audio.SampleRate == 0 {
		c.Audio.SampleRate = Default().Audio.SampleRate
	}
}

// ClassTable converts the class list, indexed by type code.
func (c Config) ClassTable() resource.ClassTable {
	table := make(resource.ClassTable, len(c.Classes))
	for code, name := range c.Classes {
		class, _ := resource.ParseClass(name)
		table[uint8(code)] = class
	}
	return table
}

func (c Config) PartTable() resource.PartTable {
	table := make(resource.PartTable, len(c.Parts))
	for i, p := range c.Parts {
		table[i] = resource.Part{
			ID:      p.ID,
			Palette: p.Palette,
			Script:  p.Script,
			Poly1:   p.Poly1,
			Poly2:   p.Poly2,
		}
	}
	return table
}

func expandPath(path string) (string, error) {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("expand %s: %w", path, err)
		}
		path = filepath.Join(home, strings.TrimPrefix(path, "~"))
	}
	return filepath.Clean(path), nil
}
