// Package anotherworld implements inspection of the resource snapshots
// exported by an Another World engine.
//
// A snapshot is a flat catalog of the game's assets: sampled sounds, music,
// bitmaps, palettes, polygon buffers and scripts. The engine ships scripts
// already disassembled into one line of text per instruction; the inspector
// tags every operand of those lines and works out which polygon buffer
// offsets each game part actually draws.
package anotherworld

import (
	"io"
	"log/slog"
	"os"

	"github.com/32bitkid/anotherworld/resource"
	"github.com/32bitkid/anotherworld/script"
)

// Inspector holds the lookup tables that describe a particular release of
// the game's data.
type Inspector struct {
	Classes resource.ClassTable
	Parts   resource.PartTable
	Logger  *slog.Logger
}

func NewInspector() Inspector {
	return Inspector{
		Classes: resource.Defaults.Classes,
		Parts:   resource.Defaults.Parts,
	}
}

// Inspect decodes the catalog, then classifies and cross-references its
// scripts. Cross-referencing needs the complete catalog, so it always runs
// as a second pass.
func (in Inspector) Inspect(snapshot []byte) ([]resource.Resource, error) {
	log := in.Logger
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	resources, err := resource.NewCatalog(in.Classes).Decode(snapshot)
	if err != nil {
		return nil, err
	}

	for _, res := range resources {
		if s, ok := res.Payload.(resource.Sound); ok && s.Truncated {
			log.Debug("sound length exceeds payload", slog.Int("resource", res.ID), slog.Int("samples", len(s.Samples)))
		}
	}
	log.Debug("catalog decoded", slog.Int("resources", len(resources)))

	resources = script.Classify(resources, log)
	return script.CrossReference(resources, in.Parts), nil
}

// InspectFile reads a snapshot from disk and inspects it.
func (in Inspector) InspectFile(path string) ([]resource.Resource, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return in.Inspect(b)
}
