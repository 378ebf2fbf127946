package terminal

import (
	"math"

	"github.com/lixenwraith/netviz/parameter"
	"github.com/lixenwraith/netviz/parameter/visual"
	"github.com/lixenwraith/netviz/render"
	"github.com/lixenwraith/netviz/vmath"
)

// subPixel is the logical size of one half-block sub-pixel
const subPixel = parameter.CellPixelWidth

type textCell struct {
	r   rune
	fg  visual.RGB
	set bool
}

// Raster is a render.Surface over a grid of half-block cells
// Sub-pixel (i, j) covers logical [i*8, i*8+8) x [j*8, j*8+8); row j belongs to cell row j/2
type Raster struct {
	cols, rows int
	px         []visual.RGB // cols x rows*2
	text       []textCell   // cols x rows
}

// NewRaster creates a raster for a cols x rows terminal
func NewRaster(cols, rows int) *Raster {
	r := &Raster{}
	r.Resize(cols, rows)
	return r
}

// Resize reallocates for a new terminal size, contents are cleared
func (r *Raster) Resize(cols, rows int) {
	cols, rows = max(cols, 0), max(rows, 0)
	r.cols, r.rows = cols, rows
	r.px = make([]visual.RGB, cols*rows*2)
	r.text = make([]textCell, cols*rows)
}

// Cells returns the terminal size in cells
func (r *Raster) Cells() (cols, rows int) {
	return r.cols, r.rows
}

// Size implements render.Surface
func (r *Raster) Size() (float64, float64) {
	return float64(r.cols) * parameter.CellPixelWidth, float64(r.rows) * parameter.CellPixelHeight
}

// Pixel returns sub-pixel (i, j); out of range returns black
func (r *Raster) Pixel(i, j int) visual.RGB {
	if i < 0 || j < 0 || i >= r.cols || j >= r.rows*2 {
		return visual.RGB{}
	}
	return r.px[j*r.cols+i]
}

// TextAt returns the overlay rune of a cell, 0 when none
func (r *Raster) TextAt(col, row int) rune {
	if col < 0 || row < 0 || col >= r.cols || row >= r.rows {
		return 0
	}
	return r.text[row*r.cols+col].r
}

// Clear implements render.Surface
func (r *Raster) Clear(bg visual.RGB) {
	for i := range r.px {
		r.px[i] = bg
	}
	clear(r.text)
}

func (r *Raster) blend(i, j int, c render.Color) {
	if i < 0 || j < 0 || i >= r.cols || j >= r.rows*2 {
		return
	}
	idx := j*r.cols + i
	r.px[idx] = render.Blend(r.px[idx], c)
}

// span visits every sub-pixel whose center may fall within [x0,x1] x [y0,y1], passing its center
func (r *Raster) span(x0, y0, x1, y1 float64, fn func(i, j int, cx, cy float64)) {
	iMin := max(int(math.Floor(x0/subPixel)), 0)
	jMin := max(int(math.Floor(y0/subPixel)), 0)
	iMax := min(int(math.Floor(x1/subPixel)), r.cols-1)
	jMax := min(int(math.Floor(y1/subPixel)), r.rows*2-1)
	for j := jMin; j <= jMax; j++ {
		cy := (float64(j) + 0.5) * subPixel
		for i := iMin; i <= iMax; i++ {
			fn(i, j, (float64(i)+0.5)*subPixel, cy)
		}
	}
}

// coverage antialiases an edge at signed distance d (negative inside) over one sub-pixel
func coverage(d float64) float64 {
	return vmath.Clamp(0.5-d/subPixel, 0, 1)
}

// Line implements render.Surface
func (r *Raster) Line(x1, y1, x2, y2, width float64, dash []float64, c render.Color) {
	if !c.Visible() {
		return
	}
	half := max(width, 1) / 2
	pad := half + subPixel
	dx, dy := x2-x1, y2-y1
	lenSq := dx*dx + dy*dy
	length := math.Sqrt(lenSq)
	period := dashPeriod(dash)

	r.span(min(x1, x2)-pad, min(y1, y2)-pad, max(x1, x2)+pad, max(y1, y2)+pad, func(i, j int, cx, cy float64) {
		t := 0.0
		if lenSq > 0 {
			t = vmath.Clamp(((cx-x1)*dx+(cy-y1)*dy)/lenSq, 0, 1)
		}
		if period > 0 && !dashOn(dash, period, t*length) {
			return
		}
		d := vmath.Distance(cx, cy, x1+t*dx, y1+t*dy)
		if cov := coverage(d - half); cov > 0 {
			r.blend(i, j, c.Scale(cov))
		}
	})
}

func dashPeriod(dash []float64) float64 {
	p := 0.0
	for _, d := range dash {
		p += max(d, 0)
	}
	return p
}

// dashOn reports whether arc length s falls on an "on" segment of the pattern
func dashOn(dash []float64, period, s float64) bool {
	s = math.Mod(s, period)
	for k, d := range dash {
		if s < d {
			return k%2 == 0
		}
		s -= d
	}
	return true
}

// FillCircle implements render.Surface
func (r *Raster) FillCircle(x, y, radius float64, c render.Color) {
	if !c.Visible() || radius <= 0 {
		return
	}
	pad := radius + subPixel
	r.span(x-pad, y-pad, x+pad, y+pad, func(i, j int, cx, cy float64) {
		if cov := coverage(vmath.Distance(cx, cy, x, y) - radius); cov > 0 {
			r.blend(i, j, c.Scale(cov))
		}
	})
}

// StrokeCircle implements render.Surface
func (r *Raster) StrokeCircle(x, y, radius, width float64, c render.Color) {
	if !c.Visible() || radius <= 0 {
		return
	}
	half := max(width, 1) / 2
	pad := radius + half + subPixel
	r.span(x-pad, y-pad, x+pad, y+pad, func(i, j int, cx, cy float64) {
		d := math.Abs(vmath.Distance(cx, cy, x, y)-radius) - half
		if cov := coverage(d); cov > 0 {
			r.blend(i, j, c.Scale(cov))
		}
	})
}

// RadialGlow implements render.Surface
func (r *Raster) RadialGlow(x, y, radius float64, stops []render.GradientStop) {
	if radius <= 0 || len(stops) == 0 {
		return
	}
	r.span(x-radius, y-radius, x+radius, y+radius, func(i, j int, cx, cy float64) {
		d := vmath.Distance(cx, cy, x, y)
		if d >= radius {
			return
		}
		if c := render.GlowAt(stops, d/radius); c.Visible() {
			r.blend(i, j, c)
		}
	})
}

// FillRect implements render.Surface
func (r *Raster) FillRect(x, y, w, h float64, c render.Color) {
	if !c.Visible() || w <= 0 || h <= 0 {
		return
	}
	r.span(x, y, x+w, y+h, func(i, j int, cx, cy float64) {
		if cx >= x && cx < x+w && cy >= y && cy < y+h {
			r.blend(i, j, c)
		}
	})
}

// FillRoundedRect implements render.Surface
func (r *Raster) FillRoundedRect(x, y, w, h, radius float64, c render.Color) {
	if !c.Visible() || w <= 0 || h <= 0 {
		return
	}
	r.span(x, y, x+w, y+h, func(i, j int, cx, cy float64) {
		if roundedRectDistance(cx, cy, x, y, w, h, radius) <= 0 {
			r.blend(i, j, c)
		}
	})
}

// StrokeRoundedRect implements render.Surface
func (r *Raster) StrokeRoundedRect(x, y, w, h, radius, width float64, c render.Color) {
	if !c.Visible() || w <= 0 || h <= 0 {
		return
	}
	half := max(width, 1) / 2
	pad := half + subPixel
	r.span(x-pad, y-pad, x+w+pad, y+h+pad, func(i, j int, cx, cy float64) {
		d := math.Abs(roundedRectDistance(cx, cy, x, y, w, h, radius)) - half
		if cov := coverage(d); cov > 0 {
			r.blend(i, j, c.Scale(cov))
		}
	})
}

// roundedRectDistance is the signed distance from (px, py) to the rectangle outline, negative inside
func roundedRectDistance(px, py, x, y, w, h, radius float64) float64 {
	radius = vmath.Clamp(radius, 0, min(w, h)/2)
	qx := math.Abs(px-(x+w/2)) - (w/2 - radius)
	qy := math.Abs(py-(y+h/2)) - (h/2 - radius)
	outside := vmath.Magnitude(max(qx, 0), max(qy, 0))
	inside := min(max(qx, qy), 0)
	return outside + inside - radius
}

// Text implements render.Surface; one rune per cell, size is ignored
func (r *Raster) Text(x, y float64, s string, size float64, c render.Color) {
	if !c.Visible() {
		return
	}
	row := int(math.Floor((y + size/2) / parameter.CellPixelHeight))
	col := int(math.Round(x / parameter.CellPixelWidth))
	if row < 0 || row >= r.rows {
		return
	}
	for _, ch := range s {
		if col >= r.cols {
			return
		}
		if col >= 0 {
			bg := r.cellBackground(col, row)
			r.text[row*r.cols+col] = textCell{r: ch, fg: render.Blend(bg, c), set: true}
		}
		col++
	}
}

// cellBackground averages the two sub-pixels of a cell
func (r *Raster) cellBackground(col, row int) visual.RGB {
	top := r.px[row*2*r.cols+col]
	bottom := r.px[(row*2+1)*r.cols+col]
	return visual.RGB{
		R: uint8((int(top.R) + int(bottom.R)) / 2),
		G: uint8((int(top.G) + int(bottom.G)) / 2),
		B: uint8((int(top.B) + int(bottom.B)) / 2),
	}
}
