package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/netviz/app"
	"github.com/lixenwraith/netviz/audio"
	"github.com/lixenwraith/netviz/config"
	"github.com/lixenwraith/netviz/core"
	"github.com/lixenwraith/netviz/engine"
	"github.com/lixenwraith/netviz/terminal"
)

var (
	configPath = flag.String("config", "", "TOML config file")
	colorFlag  = flag.String("color", "", "Color mode: auto, truecolor, 256")
	themeFlag  = flag.String("theme", "", "Palette: dark, light")
	fpsFlag    = flag.Int("fps", 0, "Frame rate")
	seedFlag   = flag.Uint64("seed", 0, "Random seed, 0 for a random run")
	soundFlag  = flag.Bool("sound", false, "Enable sound effects")
	debugFlag  = flag.Bool("debug", false, "Write a debug log to logs/netviz.log and show the debug overlay")
)

func main() {
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	flag.Parse()

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "netviz: %v\n", err)
		os.Exit(1)
	}
}

// loadConfig reads the config file if given, then applies environment and flags
func loadConfig() (config.Config, error) {
	cfg := config.Default()
	if *configPath != "" {
		var err error
		if cfg, err = config.Load(*configPath); err != nil {
			return config.Config{}, err
		}
	}
	audio.ApplyEnv(&cfg.Audio)

	if *colorFlag != "" {
		cfg.Terminal.Color = *colorFlag
	}
	if *themeFlag != "" {
		cfg.Render.Theme = *themeFlag
	}
	if *fpsFlag != 0 {
		cfg.Terminal.FPS = *fpsFlag
	}
	if *soundFlag {
		cfg.Audio.Enabled = true
	}
	if *debugFlag {
		cfg.Render.Debug = true
	}
	return cfg, cfg.Validate()
}

func run() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	log, logFile := setupLogging(*debugFlag)
	if logFile != nil {
		defer logFile.Close()
	}

	mode, err := terminal.ParseColorMode(cfg.Terminal.Color)
	if err != nil {
		return err
	}

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

	screen, err := terminal.Open(terminal.Options{Mouse: cfg.Terminal.Mouse})
	if err != nil {
		return err
	}
	core.RegisterScreen(screen)
	defer core.RegisterScreen(nil)

	cols, rows := screen.Size()
	raster := terminal.NewRaster(cols, rows)

	ctrl, err := app.New(app.Options{
		Config: cfg,
		Rand:   rng,
		Logger: log,
		Sound:  sound,
	}, raster)
	if err != nil {
		screen.Fini()
		return err
	}

	log.Info("netviz starting", "cols", cols, "rows", rows, "color", mode.String(), "fps", cfg.Terminal.FPS)
	runLoop(ctrl, raster, screen, mode, cfg.Terminal.FPS, log)
	screen.Fini()

	fmt.Println(app.SummaryOf(ctrl.Engine()).Render("netviz"))
	return nil
}

// runLoop owns the screen until a quit intent; tcell events are polled on a separate goroutine
func runLoop(ctrl *app.Controller, raster *terminal.Raster, screen tcell.Screen, mode terminal.ColorMode, fps int, log *slog.Logger) {
	events := make(chan tcell.Event, 64)
	done := make(chan struct{})
	defer close(done)

	core.Go(func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	})

	ctrl.Start(raster.Size())

	ticker := time.NewTicker(time.Second / time.Duration(fps))
	defer ticker.Stop()

	for !ctrl.Quit() {
		select {
		case ev := <-events:
			handleEvent(ctrl, raster, screen, ev)
		case <-ticker.C:
			if ctrl.Frame() {
				raster.Flush(screen, mode)
			}
		}
	}
	log.Info("netviz stopping", "frames", ctrl.Engine().Frame())
}
