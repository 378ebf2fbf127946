// Package terminal renders the animation into a tcell screen.
//
// Features:
//   - Half-block raster: every cell holds two square sub-pixels drawn with '▀'
//   - True color (24-bit) and 256-color palette output
//   - Text overlay for labels and panels
//   - Clean terminal restoration on panic
//
// A cell covers parameter.CellPixelWidth x parameter.CellPixelHeight logical pixels,
// so a 128x48 terminal is a 1024x768 surface.
package terminal
