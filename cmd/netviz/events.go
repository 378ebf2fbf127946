package main

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/netviz/app"
	"github.com/lixenwraith/netviz/input"
	"github.com/lixenwraith/netviz/terminal"
)

// translateKey maps a tcell key to the host-independent key table input
func translateKey(k tcell.Key, r rune) (input.Key, rune) {
	switch k {
	case tcell.KeyRune:
		return input.KeyNone, r
	case tcell.KeyEscape:
		return input.KeyEscape, 0
	case tcell.KeyEnter:
		return input.KeyEnter, 0
	case tcell.KeyTab:
		return input.KeyTab, 0
	case tcell.KeyCtrlC:
		return input.KeyCtrlC, 0
	}
	return input.KeyNone, 0
}

// handleEvent applies one tcell event on the frame goroutine
func handleEvent(ctrl *app.Controller, raster *terminal.Raster, screen tcell.Screen, ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		k, r := translateKey(ev.Key(), ev.Rune())
		if k != input.KeyNone || r != 0 {
			ctrl.HandleKey(k, r)
		}

	case *tcell.EventMouse:
		col, row := ev.Position()
		ctrl.PointerMove(terminal.CellToPixel(col, row))

	case *tcell.EventFocus:
		if !ev.Focused {
			ctrl.PointerLeave()
		}
		ctrl.SetFocused(ev.Focused)

	case *tcell.EventResize:
		cols, rows := ev.Size()
		raster.Resize(cols, rows)
		ctrl.Resize(raster.Size())
		screen.Sync()
	}
}
