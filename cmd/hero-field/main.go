package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/lixenwraith/hero-field/audio"
	"github.com/lixenwraith/hero-field/config"
	"github.com/lixenwraith/hero-field/core"
	"github.com/lixenwraith/hero-field/logging"
	"github.com/lixenwraith/hero-field/page"
	"github.com/lixenwraith/hero-field/parameter"
)

// flags shared by every command
type flags struct {
	configPath string
	debug      bool
	seed       uint64
	fps        int
	sound      bool
	colorMode  string
	width      int
}

// app carries the resolved config and logger into a command
type app struct {
	cfg     *config.Config
	log     *zap.Logger
	closeFn func() error
}

func main() {
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	f := &flags{}
	a := &app{}

	root := &cobra.Command{
		Use:   "hero-field",
		Short: "Landing page with a particle headline, in the terminal",
		Long: `hero-field renders a landing page whose headline condenses out of a
drifting particle field, followed by a scroll-scrubbed narrative section.

Run without arguments to open the interactive page.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd, f)
			if err != nil {
				return err
			}
			log, closeFn, err := logging.Setup(cfg.Debug, parameter.LogDir)
			if err != nil {
				return err
			}
			a.cfg, a.log, a.closeFn = cfg, log, closeFn
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if a.closeFn != nil {
				return a.closeFn()
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInteractive(cmd.Context(), a, f.width)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&f.configPath, "config", config.DefaultPath, "config file")
	pf.BoolVar(&f.debug, "debug", false, "write a debug log under "+parameter.LogDir)
	pf.Uint64Var(&f.seed, "seed", 0, "particle seed; 0 seeds from the clock")
	root.Flags().IntVar(&f.fps, "fps", parameter.DefaultFPS, "target frame rate")
	root.Flags().BoolVar(&f.sound, "sound", false, "play a chime when the headline appears")
	root.Flags().StringVar(&f.colorMode, "color", "truecolor", "color mode: truecolor or 256")
	root.Flags().IntVar(&f.width, "fallback-width", 80, "column width of the static page when no terminal is available")

	root.AddCommand(
		newRenderCmd(a),
		newStaticCmd(a),
		newSampleCmd(a),
		newConfigCmd(a, f),
	)
	return root
}

// resolveConfig loads the config file and applies explicitly set flags over it
func resolveConfig(cmd *cobra.Command, f *flags) (*config.Config, error) {
	cfg, err := config.Load(f.configPath)
	if err != nil {
		return nil, err
	}
	changed := func(name string) bool {
		fl := cmd.Flags().Lookup(name)
		return fl != nil && fl.Changed
	}
	if changed("debug") {
		cfg.Debug = f.debug
	}
	if changed("seed") {
		cfg.Seed = f.seed
	}
	if changed("fps") {
		cfg.FPS = f.fps
	}
	if changed("sound") {
		cfg.Sound = f.sound
	}
	if changed("color") {
		cfg.ColorMode = f.colorMode
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// runInteractive owns the terminal for the life of the page
// Without a usable terminal it prints the static page instead
func runInteractive(ctx context.Context, a *app, fallbackWidth int) error {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	screen, err := tcell.NewScreen()
	if err == nil {
		err = screen.Init()
	}
	if err != nil {
		a.log.Warn("terminal unavailable, printing static page", zap.Error(err))
		return page.Static(os.Stdout, fallbackWidth)
	}
	core.SetTerminalReset(screen.Fini)
	defer core.RestoreTerminal()
	screen.EnableMouse()
	screen.HideCursor()

	opts := page.Options{
		FPS:    a.cfg.FPS,
		Seed:   a.cfg.Seed,
		Colors: a.cfg.Colors(),
		Logger: a.log,
	}
	if a.cfg.Sound {
		player := audio.NewPlayer(a.log)
		if player.Enable() {
			player.SetVolume(a.cfg.Volume)
			opts.Cue = player
			defer player.Cleanup()
		}
	}

	p := page.New(screen, opts)
	defer p.Teardown()

	a.log.Info("page started",
		zap.Int("fps", a.cfg.FPS),
		zap.Uint64("seed", a.cfg.Seed),
		zap.Bool("sound", opts.Cue != nil),
	)
	if err := p.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("page: %w", err)
	}
	return nil
}
