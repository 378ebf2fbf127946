package terminal

import (
	"bytes"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/netviz/parameter/visual"
	"github.com/lixenwraith/netviz/render"
)

var (
	black = visual.RGB{}
	white = visual.RGB{R: 255, G: 255, B: 255}
	red   = visual.RGB{R: 255}
)

func TestRasterSize(t *testing.T) {
	r := NewRaster(128, 48)
	w, h := r.Size()
	if w != 1024 || h != 768 {
		t.Errorf("Size() = %vx%v, want 1024x768", w, h)
	}

	r.Resize(-1, 10)
	if w, h := r.Size(); w != 0 || h != 160 {
		t.Errorf("Size() after negative resize = %vx%v", w, h)
	}
}

func TestRasterFillCircle(t *testing.T) {
	r := NewRaster(10, 5)
	r.Clear(black)
	// Center of sub-pixel (4, 4)
	r.FillCircle(36, 36, 10, render.With(white, 1))

	if got := r.Pixel(4, 4); got != white {
		t.Errorf("center pixel = %v, want white", got)
	}
	if got := r.Pixel(0, 0); got != black {
		t.Errorf("far pixel = %v, want black", got)
	}
	// Edge pixel is partially covered
	if got := r.Pixel(5, 4); got == black {
		t.Errorf("edge pixel untouched")
	}
}

func TestRasterTinyCircleVisible(t *testing.T) {
	r := NewRaster(4, 2)
	r.Clear(black)
	r.FillCircle(12, 12, 1, render.With(white, 1))

	if got := r.Pixel(1, 1); got == black {
		t.Error("radius 1 dot disappeared")
	}
}

func TestRasterLineAndDash(t *testing.T) {
	r := NewRaster(20, 2)
	r.Clear(black)
	r.Line(0, 4, 160, 4, 1, nil, render.With(white, 1))

	for i := 0; i < 20; i++ {
		if r.Pixel(i, 0) == black {
			t.Fatalf("solid line gap at %d", i)
		}
		if r.Pixel(i, 3) != black {
			t.Fatalf("line bled to row 3 at %d", i)
		}
	}

	r.Clear(black)
	r.Line(0, 4, 160, 4, 1, []float64{8, 8}, render.With(white, 1))
	on, off := 0, 0
	for i := 0; i < 20; i++ {
		if r.Pixel(i, 0) == black {
			off++
		} else {
			on++
		}
	}
	if on == 0 || off == 0 {
		t.Errorf("dashed line on=%d off=%d, want both", on, off)
	}
}

func TestRasterRadialGlowFades(t *testing.T) {
	r := NewRaster(20, 10)
	r.Clear(black)
	r.RadialGlow(84, 84, 60, []render.GradientStop{
		{Offset: 0, Color: render.With(white, 1)},
		{Offset: 1, Color: render.Transparent},
	})

	center := r.Pixel(10, 10).R
	mid := r.Pixel(13, 10).R
	outside := r.Pixel(19, 10).R
	if !(center > mid && mid > outside) {
		t.Errorf("glow not decreasing: center=%d mid=%d outside=%d", center, mid, outside)
	}
	if outside != 0 {
		t.Errorf("glow leaked beyond radius: %d", outside)
	}
}

func TestRasterRectsAndBlend(t *testing.T) {
	r := NewRaster(10, 5)
	r.Clear(black)
	r.FillRect(0, 0, 16, 16, render.With(red, 0.5))

	if got := r.Pixel(1, 1); got.R != 128 || got.G != 0 {
		t.Errorf("half red over black = %v", got)
	}
	if got := r.Pixel(2, 2); got != black {
		t.Errorf("pixel outside rect = %v", got)
	}

	r.Clear(black)
	r.FillRoundedRect(0, 0, 80, 80, 40, render.With(white, 1))
	if r.Pixel(0, 0) != black {
		t.Error("rounded corner filled")
	}
	if r.Pixel(5, 5) != white {
		t.Error("rounded rect center empty")
	}

	r.Clear(black)
	r.StrokeRoundedRect(0, 0, 80, 80, 8, 1, render.With(white, 1))
	if r.Pixel(5, 5) != black {
		t.Error("stroke filled the interior")
	}
	if r.Pixel(0, 5) == black {
		t.Error("stroke missing on the left edge")
	}
}

func TestRasterOutOfBoundsIgnored(t *testing.T) {
	r := NewRaster(4, 2)
	r.Clear(black)
	r.FillCircle(-100, -100, 50, render.With(white, 1))
	r.Line(-50, -50, 500, -50, 2, nil, render.With(white, 1))
	r.Text(-64, 4, "hello", 12, render.With(white, 1))
	r.Text(0, 1000, "x", 12, render.With(white, 1))

	for j := 0; j < 4; j++ {
		for i := 0; i < 4; i++ {
			if r.Pixel(i, j) != black {
				t.Fatalf("pixel (%d,%d) drawn", i, j)
			}
		}
	}
}

func TestRasterFlushHalfBlocks(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("init: %v", err)
	}
	defer screen.Fini()
	screen.SetSize(4, 2)

	r := NewRaster(4, 2)
	r.Clear(black)
	// Top half of cell (0,0) only
	r.FillRect(0, 0, 8, 8, render.With(red, 1))
	r.Text(16, 16, "ok", 12, render.With(white, 1))
	r.Flush(screen, ColorModeTrueColor)

	mainc, _, style, _ := screen.GetContent(0, 0)
	if mainc != HalfBlock {
		t.Errorf("cell (0,0) rune = %q, want half block", mainc)
	}
	fg, bg, _ := style.Decompose()
	if fg != tcell.NewRGBColor(255, 0, 0) {
		t.Errorf("fg = %v, want red", fg)
	}
	if bg != tcell.NewRGBColor(0, 0, 0) {
		t.Errorf("bg = %v, want black", bg)
	}

	if c, _, _, _ := screen.GetContent(2, 1); c != 'o' {
		t.Errorf("text cell = %q, want 'o'", c)
	}
	if c, _, _, _ := screen.GetContent(3, 1); c != 'k' {
		t.Errorf("text cell = %q, want 'k'", c)
	}
}

func TestRGBTo256(t *testing.T) {
	tests := []struct {
		name string
		c    visual.RGB
		want uint8
	}{
		{"black", black, 16},
		{"white", white, 231},
		{"red", red, 196},
		{"mid gray", visual.RGB{R: 128, G: 128, B: 128}, 244},
	}
	for _, tt := range tests {
		if got := RGBTo256(tt.c); got != tt.want {
			t.Errorf("%s: RGBTo256(%v) = %d, want %d", tt.name, tt.c, got, tt.want)
		}
	}
}

func TestParseColorMode(t *testing.T) {
	if m, err := ParseColorMode("256"); err != nil || m != ColorMode256 {
		t.Errorf("256 -> %v, %v", m, err)
	}
	if m, err := ParseColorMode("truecolor"); err != nil || m != ColorModeTrueColor {
		t.Errorf("truecolor -> %v, %v", m, err)
	}
	if _, err := ParseColorMode("sixel"); err == nil {
		t.Error("unknown mode accepted")
	}
}

func TestDetectColorModeFromEnv(t *testing.T) {
	for _, k := range []string{"KITTY_WINDOW_ID", "KONSOLE_VERSION", "ITERM_SESSION_ID",
		"ALACRITTY_WINDOW_ID", "ALACRITTY_LOG", "WEZTERM_PANE"} {
		t.Setenv(k, "")
	}
	t.Setenv("COLORTERM", "truecolor")
	if DetectColorMode() != ColorModeTrueColor {
		t.Error("COLORTERM=truecolor not detected")
	}
	t.Setenv("COLORTERM", "")
	t.Setenv("TERM", "xterm-256color")
	if DetectColorMode() != ColorMode256 {
		t.Error("xterm-256color should fall back to 256")
	}
}

func TestCellToPixel(t *testing.T) {
	x, y := CellToPixel(2, 3)
	if x != 20 || y != 56 {
		t.Errorf("CellToPixel(2,3) = %v,%v, want 20,56", x, y)
	}
}

func TestEmergencyResetWritesSequences(t *testing.T) {
	var buf bytes.Buffer
	EmergencyReset(&buf)
	out := buf.String()
	for _, seq := range []string{"\x1b[?25h", "\x1b[?1049l", "\x1b[?1003l", "\x1bc"} {
		if !bytes.Contains([]byte(out), []byte(seq)) {
			t.Errorf("missing sequence %q", seq)
		}
	}
}
