package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/lixenwraith/netviz/app"
	"github.com/lixenwraith/netviz/config"
)

var (
	configPath = flag.String("config", "", "TOML config file")
	outFlag    = flag.String("out", "", "PNG path for the last frame")
	gifFlag    = flag.String("gif", "", "Optional animated GIF path")
	widthFlag  = flag.Int("width", 0, "Surface width")
	heightFlag = flag.Int("height", 0, "Surface height")
	framesFlag = flag.Int("frames", 0, "Frames to simulate")
	seedFlag   = flag.Uint64("seed", 0, "Random seed")
	themeFlag  = flag.String("theme", "", "Palette: dark, light")
	pointerX   = flag.Float64("pointer-x", -1, "Fixed pointer x, negative for none")
	pointerY   = flag.Float64("pointer-y", -1, "Fixed pointer y, negative for none")
	verbose    = flag.Bool("v", false, "Log progress to stderr")
)

func main() {
	flag.Parse()
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "netviz-snapshot: %v\n", err)
		os.Exit(1)
	}
}

func loadConfig() (config.Config, error) {
	cfg := config.Default()
	if *configPath != "" {
		var err error
		if cfg, err = config.Load(*configPath); err != nil {
			return config.Config{}, err
		}
	}
	s := &cfg.Snapshot
	if *outFlag != "" {
		s.Out = *outFlag
	}
	if *gifFlag != "" {
		s.GIF = *gifFlag
	}
	if *widthFlag > 0 {
		s.Width = *widthFlag
	}
	if *heightFlag > 0 {
		s.Height = *heightFlag
	}
	if *framesFlag > 0 {
		s.Frames = *framesFlag
	}
	if *seedFlag != 0 {
		s.Seed = *seedFlag
	}
	if *themeFlag != "" {
		cfg.Render.Theme = *themeFlag
	}
	return cfg, cfg.Validate()
}

func run() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	var pointer *point
	if *pointerX >= 0 && *pointerY >= 0 {
		pointer = &point{x: *pointerX, y: *pointerY}
	}

	res, err := snapshot(cfg, pointer, log)
	if err != nil {
		return err
	}

	fmt.Println(app.SummaryOf(res.engine).Render("netviz-snapshot"))
	fmt.Printf("wrote %s", cfg.Snapshot.Out)
	if cfg.Snapshot.GIF != "" {
		fmt.Printf(" and %s (%d frames)", cfg.Snapshot.GIF, res.gifFrames)
	}
	fmt.Println()
	return nil
}
