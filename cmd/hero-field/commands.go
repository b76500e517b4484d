package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/lixenwraith/hero-field/export"
	"github.com/lixenwraith/hero-field/glyph"
	"github.com/lixenwraith/hero-field/hero"
	"github.com/lixenwraith/hero-field/page"
)

func newRenderCmd(a *app) *cobra.Command {
	var (
		width, height, fps, frames, particles int
		output, frameDir                      string
	)
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render the hero animation to a GIF and PNG frames",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ec := a.cfg.Export
			set := func(name string) bool { return cmd.Flags().Changed(name) }
			if set("width") {
				ec.Width = width
			}
			if set("height") {
				ec.Height = height
			}
			if set("fps") {
				ec.FPS = fps
			}
			if set("frames") {
				ec.Frames = frames
			}
			if set("output") {
				ec.Output = output
			}
			if set("frames-dir") {
				ec.FrameDir = frameDir
			}
			merged := *a.cfg
			merged.Export = ec
			if err := merged.Validate(); err != nil {
				return err
			}

			res, err := export.Run(export.Options{
				Width:         ec.Width,
				Height:        ec.Height,
				FPS:           ec.FPS,
				Frames:        ec.Frames,
				Seed:          a.cfg.Seed,
				ParticleCount: particles,
				Logger:        a.log,
			}, ec.Output, ec.FrameDir)
			if err != nil {
				return err
			}
			a.log.Info("render finished", zap.Int("frames", res.Frames), zap.String("gif", res.GIF))

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "rendered %d frames at %dx%d (%.2fs)\n", res.Frames, ec.Width, ec.Height, res.Simulated.Seconds())
			if res.GIF != "" {
				fmt.Fprintf(out, "gif: %s\n", res.GIF)
			}
			if len(res.PNGs) > 0 {
				fmt.Fprintf(out, "png: %s (%d files)\n", ec.FrameDir, len(res.PNGs))
			}
			return nil
		},
	}
	fl := cmd.Flags()
	fl.IntVar(&width, "width", 0, "canvas width in pixels")
	fl.IntVar(&height, "height", 0, "canvas height in pixels")
	fl.IntVar(&fps, "fps", 0, "capture rate")
	fl.IntVar(&frames, "frames", 0, "frames to capture; 0 renders until settled")
	fl.IntVar(&particles, "particles", 0, "particle count override")
	fl.StringVarP(&output, "output", "o", "", "gif path; empty skips the gif")
	fl.StringVar(&frameDir, "frames-dir", "", "directory for numbered png frames")
	return cmd
}

func newStaticCmd(a *app) *cobra.Command {
	var width int
	cmd := &cobra.Command{
		Use:   "static",
		Short: "Print the page without animation",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return page.Static(cmd.OutOrStdout(), width)
		},
	}
	cmd.Flags().IntVar(&width, "width", 80, "column width")
	return cmd
}

func newSampleCmd(a *app) *cobra.Command {
	var width, height int
	cmd := &cobra.Command{
		Use:   "sample [text]",
		Short: "Report glyph sample statistics for a headline",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := hero.DefaultOptions()
			text := opts.Headline
			if len(args) == 1 {
				text = args[0]
			}
			samples, err := glyph.Sample(text, width, height, opts.Font, opts.Sampling)
			if err != nil {
				return err
			}
			b := glyph.Bounds(samples)
			a.log.Debug("sampled headline", zap.String("text", text), zap.Int("samples", len(samples)))

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "text:      %q\n", text)
			fmt.Fprintf(out, "canvas:    %dx%d\n", width, height)
			fmt.Fprintf(out, "font size: %.1f\n", opts.Sampling.FontSizeFor(width))
			fmt.Fprintf(out, "samples:   %d\n", len(samples))
			fmt.Fprintf(out, "bounds:    x=%d y=%d w=%d h=%d\n", b.X, b.Y, b.Width, b.Height)
			return nil
		},
	}
	cmd.Flags().IntVar(&width, "width", 1200, "canvas width in pixels")
	cmd.Flags().IntVar(&height, "height", 400, "canvas height in pixels")
	return cmd
}

func newConfigCmd(a *app, f *flags) *cobra.Command {
	var force bool
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Write the effective configuration to the config path",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := os.Stat(f.configPath); err == nil && !force {
				return fmt.Errorf("%s exists; use --force to overwrite", f.configPath)
			}
			if err := a.cfg.Save(f.configPath); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", f.configPath)
			return nil
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")
	return cmd
}
