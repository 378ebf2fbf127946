package terminal

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/netviz/parameter"
)

// HalfBlock is the glyph whose foreground paints the top sub-pixel and background the bottom one
const HalfBlock = '▀'

// Options selects the screen features enabled by Open
type Options struct {
	Mouse bool
}

// Open initializes the real terminal screen with focus reporting and optional mouse motion
func Open(opts Options) (tcell.Screen, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}
	Prepare(screen, opts)
	return screen, nil
}

// Prepare configures an initialized screen; split out so simulation screens share it
func Prepare(screen tcell.Screen, opts Options) {
	screen.HideCursor()
	screen.EnableFocus()
	if opts.Mouse {
		screen.EnableMouse(tcell.MouseMotionEvents)
	}
	screen.Clear()
}

// Flush copies the raster into screen cells and shows them
func (r *Raster) Flush(screen tcell.Screen, mode ColorMode) {
	for row := 0; row < r.rows; row++ {
		for col := 0; col < r.cols; col++ {
			top := r.px[row*2*r.cols+col]
			bottom := r.px[(row*2+1)*r.cols+col]

			if tc := r.text[row*r.cols+col]; tc.set {
				style := tcell.StyleDefault.
					Foreground(TcellColor(tc.fg, mode)).
					Background(TcellColor(r.cellBackground(col, row), mode))
				screen.SetContent(col, row, tc.r, nil, style)
				continue
			}

			style := tcell.StyleDefault.
				Foreground(TcellColor(top, mode)).
				Background(TcellColor(bottom, mode))
			screen.SetContent(col, row, HalfBlock, nil, style)
		}
	}
	screen.Show()
}

// CellToPixel maps a terminal cell to the logical pixel at its center
func CellToPixel(col, row int) (x, y float64) {
	return (float64(col) + 0.5) * parameter.CellPixelWidth, (float64(row) + 0.5) * parameter.CellPixelHeight
}
