package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/lixenwraith/netviz/app"
	"github.com/lixenwraith/netviz/canvas"
	"github.com/lixenwraith/netviz/config"
	"github.com/lixenwraith/netviz/engine"
)

type point struct {
	x, y float64
}

type result struct {
	engine    *engine.Engine
	gifFrames int
}

// snapshot runs a seeded headless simulation on a step clock and writes the configured images
func snapshot(cfg config.Config, pointer *point, log *slog.Logger) (result, error) {
	s := cfg.Snapshot
	clock := engine.NewStepClock(time.Unix(0, 0), time.Duration(s.StepMs)*time.Millisecond)
	c := canvas.New(s.Width, s.Height)

	ctrl, err := app.New(app.Options{
		Config: cfg,
		Rand:   engine.NewRand(s.Seed),
		Time:   clock,
		Logger: log,
	}, c)
	if err != nil {
		return result{}, err
	}

	var gif *canvas.GIFRecorder
	if s.GIF != "" {
		gif = canvas.NewGIFRecorder(s.GIFEvery, s.StepMs)
	}

	ctrl.Start(float64(s.Width), float64(s.Height))
	if pointer != nil {
		ctrl.PointerMove(pointer.x, pointer.y)
	}

	for range s.Frames {
		clock.Tick()
		ctrl.Frame()
		if gif != nil {
			gif.Add(c.Image())
		}
	}
	log.Debug("simulation done", "frames", s.Frames, "epoch", ctrl.Engine().Metrics.Epoch)

	if err := c.SavePNG(s.Out); err != nil {
		return result{}, err
	}

	res := result{engine: ctrl.Engine()}
	if gif != nil {
		if err := writeGIF(s.GIF, gif); err != nil {
			return result{}, err
		}
		res.gifFrames = gif.Len()
	}
	return res, nil
}

func writeGIF(path string, gif *canvas.GIFRecorder) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := gif.Encode(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
