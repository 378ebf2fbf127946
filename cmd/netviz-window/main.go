package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/lixenwraith/netviz/app"
	"github.com/lixenwraith/netviz/audio"
	"github.com/lixenwraith/netviz/config"
	"github.com/lixenwraith/netviz/engine"
	"github.com/lixenwraith/netviz/window"
)

var (
	configPath = flag.String("config", "", "TOML config file")
	themeFlag  = flag.String("theme", "", "Palette: dark, light")
	widthFlag  = flag.Int("width", 1280, "Initial window width")
	heightFlag = flag.Int("height", 800, "Initial window height")
	seedFlag   = flag.Uint64("seed", 0, "Random seed, 0 for a random run")
	soundFlag  = flag.Bool("sound", false, "Enable sound effects")
	debugFlag  = flag.Bool("debug", false, "Log at debug level to stderr and show the debug overlay")
)

func main() {
	flag.Parse()
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "netviz-window: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg := config.Default()
	if *configPath != "" {
		var err error
		if cfg, err = config.Load(*configPath); err != nil {
			return err
		}
	}
	audio.ApplyEnv(&cfg.Audio)
	if *themeFlag != "" {
		cfg.Render.Theme = *themeFlag
	}
	if *soundFlag {
		cfg.Audio.Enabled = true
	}
	level := slog.LevelInfo
	if *debugFlag {
		cfg.Render.Debug = true
		level = slog.LevelDebug
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	sound := audio.NewSoundManager(cfg.Audio)
	if cfg.Audio.Enabled {
		if err := sound.Initialize(); err != nil {
			log.Warn("audio unavailable, continuing without sound", "error", err)
		}
	}
	defer sound.Cleanup()

	var rng engine.Rand
	if *seedFlag != 0 {
		rng = engine.NewRand(*seedFlag)
	}

	surface, err := window.NewSurface()
	if err != nil {
		return err
	}
	ctrl, err := app.New(app.Options{Config: cfg, Rand: rng, Logger: log, Sound: sound}, surface)
	if err != nil {
		return err
	}

	ebiten.SetWindowTitle("netviz")
	ebiten.SetWindowSize(*widthFlag, *heightFlag)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetRunnableOnUnfocused(true)
	ebiten.SetScreenClearedEveryFrame(false)

	if err := ebiten.RunGame(window.NewGame(ctrl, surface)); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("run: %w", err)
	}

	fmt.Println(app.SummaryOf(ctrl.Engine()).Render("netviz-window"))
	return nil
}
