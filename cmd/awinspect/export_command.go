package main

import (
	"fmt"
	"image"
	"image/color"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/32bitkid/anotherworld/resource"
	"github.com/32bitkid/anotherworld/screen"
	"github.com/32bitkid/anotherworld/wavwriter"
)

type exportOptions struct {
	out     string
	palette string
	frame   int
	scale   int
}

func newExportCommand(ctx *commandContext) *cobra.Command {
	var opts exportOptions

	cmd := &cobra.Command{
		Use:   "export SNAPSHOT",
		Short: "Write sounds as WAV and bitmaps as BMP files",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resources, err := ctx.inspect(cmd, args[0])
			if err != nil {
				return err
			}
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			log, err := ctx.logger(cmd)
			if err != nil {
				return err
			}
			if err := os.MkdirAll(opts.out, 0o755); err != nil {
				return fmt.Errorf("create output directory: %w", err)
			}

			palette, err := exportPalette(resources, opts)
			if err != nil {
				return err
			}

			written := 0
			for _, res := range resources {
				name, err := exportResource(res, opts, palette, cfg.Audio.SampleRate)
				if err != nil {
					return err
				}
				if name == "" {
					continue
				}
				log.Debug("exported", slog.Int("resource", res.ID), slog.String("file", name))
				written++
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d files written to %s\n", written, opts.out)
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.out, "out", "o", ".", "Output directory")
	cmd.Flags().StringVar(&opts.palette, "palette", "", "Palette resource for bitmaps (default: first palette)")
	cmd.Flags().IntVar(&opts.frame, "frame", 0, "Palette frame for bitmaps")
	cmd.Flags().IntVar(&opts.scale, "scale", 1, "Integer scale factor for bitmaps")
	return cmd
}

// exportPalette resolves the palette used for bitmaps. Without any palette
// resource bitmaps are written in grey.
func exportPalette(resources []resource.Resource, opts exportOptions) (color.Palette, error) {
	if opts.palette != "" {
		id, err := parseID(opts.palette, len(resources))
		if err != nil {
			return nil, err
		}
		return screen.PaletteFrame(resources[id], opts.frame)
	}
	for _, res := range resources {
		if _, ok := res.Payload.(resource.Palette); ok {
			return screen.PaletteFrame(res, opts.frame)
		}
	}
	return screen.Grey, nil
}

// exportResource writes res if it has an exportable form and returns the
// file name, or "" when nothing was written.
func exportResource(res resource.Resource, opts exportOptions, palette color.Palette, rate int) (string, error) {
	switch res.Class {
	case resource.ClassSound:
		s, ok := res.Payload.(resource.Sound)
		if !ok || len(s.Samples) == 0 {
			return "", nil
		}
		name := filepath.Join(opts.out, fmt.Sprintf("sound_%s.wav", resource.Hex(res.ID, 2)))
		return name, wavwriter.WriteFile(name, s, rate)

	case resource.ClassBitmap:
		raw, ok := res.Payload.(resource.Raw)
		if !ok {
			return "", nil
		}
		img, err := screen.Bitmap(raw.Bytes, palette)
		if err != nil {
			return "", fmt.Errorf("resource %s: %w", resource.Hex(res.ID, 2), err)
		}
		name := filepath.Join(opts.out, fmt.Sprintf("bitmap_%s.bmp", resource.Hex(res.ID, 2)))
		return name, writeBMP(name, screen.Scale(img, opts.scale))
	}
	return "", nil
}

func writeBMP(name string, img image.Image) (rerr error) {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	defer func() {
		if err := f.Close(); err != nil && rerr == nil {
			rerr = err
		}
	}()
	return screen.EncodeBMP(f, img)
}
