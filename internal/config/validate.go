package config

import (
	"errors"
	"fmt"

	"github.com/32bitkid/anotherworld/resource"
)

// Validate ensures the tables are usable.
func (c *Config) Validate() error {
	if err := c.validateClasses(); err != nil {
		return err
	}
	if err := c.validateParts(); err != nil {
		return err
	}
	if c.Audio.SampleRate < 0 {
		return errors.New("audio.sample_rate must be positive")
	}
	return nil
}

func (c *Config) validateClasses() error {
	if len(c.Classes) > 256 {
		return fmt.Errorf("classes: %d entries, type codes only go to 255", len(c.Classes))
	}
	for code, name := range c.Classes {
		if _, ok := resource.ParseClass(name); !ok {
			return fmt.Errorf("classes[%d]: unknown class %q", code, name)
		}
	}
	return nil
}

func (c *Config) validateParts() error {
	ids := make(map[int]bool, len(c.Parts))
	scripts := make(map[int]int, len(c.Parts))
	for i, p := range c.Parts {
		if ids[p.ID] {
			return fmt.Errorf("parts[%d]: duplicate part id %d", i, p.ID)
		}
		ids[p.ID] = true

		if other, ok := scripts[p.Script]; ok {
			return fmt.Errorf("parts[%d]: script %#x already belongs to part %d", i, p.Script, other)
		}
		scripts[p.Script] = p.ID

		for _, v := range []int{p.Palette, p.Script, p.Poly1, p.Poly2} {
			if v < 0 || v > 0xff {
				return fmt.Errorf("parts[%d]: resource id %d out of range", i, v)
			}
		}
	}
	return nil
}
