package terminal

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/netviz/parameter/visual"
)

// ColorMode indicates terminal color capability
type ColorMode uint8

const (
	ColorMode256       ColorMode = iota // xterm-256 palette
	ColorModeTrueColor                  // 24-bit RGB
)

func (m ColorMode) String() string {
	if m == ColorModeTrueColor {
		return "truecolor"
	}
	return "256"
}

// ParseColorMode resolves a configured mode; "auto" and "" run DetectColorMode
func ParseColorMode(s string) (ColorMode, error) {
	switch s {
	case "", "auto":
		return DetectColorMode(), nil
	case "truecolor", "24bit":
		return ColorModeTrueColor, nil
	case "256":
		return ColorMode256, nil
	}
	return ColorMode256, fmt.Errorf("unknown color mode %q", s)
}

// Color cube values for 6x6x6 palette (indices 16-231)
var cubeValues = [6]uint8{0, 95, 135, 175, 215, 255}

// grayscaleStart is the first grayscale index (232-255 = 24 shades)
const grayscaleStart = 232

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func cubeLevel(v uint8) int {
	best := 0
	bestDist := abs(int(v) - int(cubeValues[0]))
	for j := 1; j < len(cubeValues); j++ {
		if d := abs(int(v) - int(cubeValues[j])); d < bestDist {
			bestDist = d
			best = j
		}
	}
	return best
}

// RGBTo256 finds the nearest 256-color palette index
func RGBTo256(c visual.RGB) uint8 {
	r, g, b := cubeLevel(c.R), cubeLevel(c.G), cubeLevel(c.B)
	cube := uint8(16 + 36*r + 6*g + b)
	cubeDist := abs(int(c.R)-int(cubeValues[r])) +
		abs(int(c.G)-int(cubeValues[g])) +
		abs(int(c.B)-int(cubeValues[b]))

	// Grayscale ramp: 232-255 maps to luminance 8, 18, ..., 238
	gray := (int(c.R) + int(c.G) + int(c.B)) / 3
	step := min(max((gray-3)/10, 0), 23)
	level := 8 + step*10
	grayDist := abs(int(c.R)-level) + abs(int(c.G)-level) + abs(int(c.B)-level)

	if grayDist < cubeDist {
		return uint8(grayscaleStart + step)
	}
	return cube
}

// TcellColor converts a palette color for the given mode
func TcellColor(c visual.RGB, mode ColorMode) tcell.Color {
	if mode == ColorModeTrueColor {
		return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
	}
	return tcell.PaletteColor(int(RGBTo256(c)))
}
