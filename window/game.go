package window

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/lixenwraith/netviz/app"
	"github.com/lixenwraith/netviz/input"
)

// specialKeys translates ebiten keys to host-independent keys; printable keys arrive as input chars
var specialKeys = []struct {
	key ebiten.Key
	in  input.Key
}{
	{ebiten.KeyEscape, input.KeyEscape},
	{ebiten.KeyEnter, input.KeyEnter},
	{ebiten.KeyTab, input.KeyTab},
}

// Game adapts a Controller to ebiten.Game
// Frames are fired from Draw so a paused loop leaves the last frame on screen
type Game struct {
	ctrl    *app.Controller
	surface *Surface

	width, height int
	started       bool
	chars         []rune
}

// NewGame creates the ebiten adapter; the controller must draw to surface
func NewGame(ctrl *app.Controller, surface *Surface) *Game {
	return &Game{ctrl: ctrl, surface: surface}
}

// Update implements ebiten.Game
func (g *Game) Update() error {
	if !g.started {
		return nil
	}

	g.ctrl.SetFocused(ebiten.IsFocused())

	x, y := ebiten.CursorPosition()
	g.pointer(x, y)

	for _, k := range specialKeys {
		if inpututil.IsKeyJustPressed(k.key) {
			g.ctrl.HandleKey(k.in, 0)
		}
	}
	g.chars = ebiten.AppendInputChars(g.chars[:0])
	for _, r := range g.chars {
		g.ctrl.HandleKey(input.KeyNone, r)
	}

	if g.ctrl.Quit() {
		return ebiten.Termination
	}
	return nil
}

func (g *Game) pointer(x, y int) {
	if x < 0 || y < 0 || x >= g.width || y >= g.height {
		g.ctrl.PointerLeave()
		return
	}
	g.ctrl.PointerMove(float64(x), float64(y))
}

// Draw implements ebiten.Game
func (g *Game) Draw(screen *ebiten.Image) {
	g.surface.SetTarget(screen)
	g.ctrl.Frame()
	g.surface.SetTarget(nil)
}

// Layout implements ebiten.Game; the first call starts the loop, later size changes rebuild the scene
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth == g.width && outsideHeight == g.height && g.started {
		return g.width, g.height
	}
	g.width, g.height = outsideWidth, outsideHeight
	g.surface.SetSize(float64(g.width), float64(g.height))

	if !g.started {
		g.started = true
		g.ctrl.Start(float64(g.width), float64(g.height))
	} else {
		g.ctrl.Resize(float64(g.width), float64(g.height))
	}
	return g.width, g.height
}
