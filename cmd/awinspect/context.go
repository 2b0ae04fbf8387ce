package main

import (
	"fmt"
	"log/slog"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/32bitkid/anotherworld"
	"github.com/32bitkid/anotherworld/internal/config"
	"github.com/32bitkid/anotherworld/internal/logging"
	"github.com/32bitkid/anotherworld/resource"
)

type commandContext struct {
	configFlag string
	logLevel   string
	logFormat  string

	cfg *config.Config
	log *slog.Logger
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	if c.cfg != nil {
		return c.cfg, nil
	}
	cfg, err := config.Load(c.configFlag)
	if err != nil {
		return nil, err
	}
	c.cfg = cfg
	return cfg, nil
}

func (c *commandContext) logger(cmd *cobra.Command) (*slog.Logger, error) {
	if c.log != nil {
		return c.log, nil
	}
	log, err := logging.New(logging.Options{
		Level:  c.logLevel,
		Format: c.logFormat,
		Output: cmd.ErrOrStderr(),
	})
	if err != nil {
		return nil, err
	}
	c.log = log
	return log, nil
}

// inspect loads and decodes the snapshot at path.
func (c *commandContext) inspect(cmd *cobra.Command, path string) ([]resource.Resource, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	log, err := c.logger(cmd)
	if err != nil {
		return nil, err
	}

	in := anotherworld.Inspector{
		Classes: cfg.ClassTable(),
		Parts:   cfg.PartTable(),
		Logger:  log,
	}

	resources, err := in.InspectFile(path)
	if err != nil {
		return nil, fmt.Errorf("inspect %s: %w", path, err)
	}
	log.Info("snapshot decoded", slog.String("path", path), slog.Int("resources", len(resources)))
	return resources, nil
}

// parseID accepts resource ids as hex ("0x15", "15h") or decimal.
func parseID(s string, count int) (int, error) {
	var (
		v   int64
		err error
	)
	if n := len(s); n > 1 && (s[n-1] == 'h' || s[n-1] == 'H') {
		v, err = strconv.ParseInt(s[:n-1], 16, 32)
	} else {
		v, err = strconv.ParseInt(s, 0, 32)
	}
	if err != nil {
		return 0, fmt.Errorf("resource id %q: %w", s, err)
	}
	if v < 0 || int(v) >= count {
		return 0, fmt.Errorf("resource id %s out of range (%d resources)", s, count)
	}
	return int(v), nil
}
