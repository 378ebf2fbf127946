package render

import "github.com/lixenwraith/netviz/parameter/visual"

// Op names a recorded drawing call
type Op string

const (
	OpClear             Op = "clear"
	OpLine              Op = "line"
	OpFillCircle        Op = "fill_circle"
	OpStrokeCircle      Op = "stroke_circle"
	OpRadialGlow        Op = "radial_glow"
	OpFillRect          Op = "fill_rect"
	OpFillRoundedRect   Op = "fill_rounded_rect"
	OpStrokeRoundedRect Op = "stroke_rounded_rect"
	OpText              Op = "text"
)

// Call is one recorded drawing call; unused fields are zero
type Call struct {
	Op     Op
	X, Y   float64
	X2, Y2 float64 // line end, or rect width and height
	R      float64 // radius, corner radius
	Width  float64 // stroke width
	Dash   []float64
	Stops  []GradientStop
	Text   string
	Size   float64
	Color  Color
	Bg     visual.RGB
}

// Recorder is a Surface that records calls instead of drawing, for tests and frame inspection
type Recorder struct {
	W, H  float64
	Calls []Call
}

// NewRecorder creates a recorder reporting the given size
func NewRecorder(w, h float64) *Recorder {
	return &Recorder{W: w, H: h}
}

// Count returns the number of recorded calls of op
func (r *Recorder) Count(op Op) int {
	n := 0
	for _, c := range r.Calls {
		if c.Op == op {
			n++
		}
	}
	return n
}

// Filter returns the recorded calls of op in call order
func (r *Recorder) Filter(op Op) []Call {
	var out []Call
	for _, c := range r.Calls {
		if c.Op == op {
			out = append(out, c)
		}
	}
	return out
}

// Reset drops recorded calls
func (r *Recorder) Reset() {
	r.Calls = r.Calls[:0]
}

func (r *Recorder) Size() (float64, float64) { return r.W, r.H }

func (r *Recorder) Clear(bg visual.RGB) {
	r.Calls = append(r.Calls, Call{Op: OpClear, Bg: bg})
}

func (r *Recorder) Line(x1, y1, x2, y2, width float64, dash []float64, c Color) {
	r.Calls = append(r.Calls, Call{Op: OpLine, X: x1, Y: y1, X2: x2, Y2: y2, Width: width,
		Dash: append([]float64(nil), dash...), Color: c})
}

func (r *Recorder) FillCircle(x, y, radius float64, c Color) {
	r.Calls = append(r.Calls, Call{Op: OpFillCircle, X: x, Y: y, R: radius, Color: c})
}

func (r *Recorder) StrokeCircle(x, y, radius, width float64, c Color) {
	r.Calls = append(r.Calls, Call{Op: OpStrokeCircle, X: x, Y: y, R: radius, Width: width, Color: c})
}

func (r *Recorder) RadialGlow(x, y, radius float64, stops []GradientStop) {
	r.Calls = append(r.Calls, Call{Op: OpRadialGlow, X: x, Y: y, R: radius,
		Stops: append([]GradientStop(nil), stops...)})
}

func (r *Recorder) FillRect(x, y, w, h float64, c Color) {
	r.Calls = append(r.Calls, Call{Op: OpFillRect, X: x, Y: y, X2: w, Y2: h, Color: c})
}

func (r *Recorder) FillRoundedRect(x, y, w, h, radius float64, c Color) {
	r.Calls = append(r.Calls, Call{Op: OpFillRoundedRect, X: x, Y: y, X2: w, Y2: h, R: radius, Color: c})
}

func (r *Recorder) StrokeRoundedRect(x, y, w, h, radius, width float64, c Color) {
	r.Calls = append(r.Calls, Call{Op: OpStrokeRoundedRect, X: x, Y: y, X2: w, Y2: h, R: radius, Width: width, Color: c})
}

func (r *Recorder) Text(x, y float64, s string, size float64, c Color) {
	r.Calls = append(r.Calls, Call{Op: OpText, X: x, Y: y, Text: s, Size: size, Color: c})
}
