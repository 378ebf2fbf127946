// Package window hosts the visualization in a desktop window through ebiten
package window

import (
	"bytes"
	"fmt"
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/lixenwraith/netviz/parameter/visual"
	"github.com/lixenwraith/netviz/render"
)

// glowRingCount is the number of stacked discs per radial glow
const glowRingCount = 8

var (
	whiteImage    = ebiten.NewImage(3, 3)
	whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
)

func init() {
	whiteImage.Fill(color.White)
}

// Surface is a render.Surface drawing into the ebiten screen image of the current frame
type Surface struct {
	target        *ebiten.Image
	width, height float64

	source *text.GoTextFaceSource
	faces  map[float64]*text.GoTextFace

	vertices []ebiten.Vertex
	indices  []uint16
}

// NewSurface loads the label font
func NewSurface() (*Surface, error) {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("load font: %w", err)
	}
	return &Surface{
		source: src,
		faces:  make(map[float64]*text.GoTextFace),
	}, nil
}

// SetTarget selects the image drawn by the next frame
func (s *Surface) SetTarget(img *ebiten.Image) {
	s.target = img
}

// SetSize records the logical size reported by Size
func (s *Surface) SetSize(width, height float64) {
	s.width, s.height = width, height
}

func toColor(c render.Color) color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: uint8(c.A*255 + 0.5)}
}

func (s *Surface) ready(c render.Color) bool {
	return s.target != nil && c.Visible()
}

// Size implements render.Surface
func (s *Surface) Size() (float64, float64) {
	return s.width, s.height
}

// Clear implements render.Surface
func (s *Surface) Clear(bg visual.RGB) {
	if s.target != nil {
		s.target.Fill(color.RGBA{R: bg.R, G: bg.G, B: bg.B, A: 255})
	}
}

// Line implements render.Surface
func (s *Surface) Line(x1, y1, x2, y2, width float64, dash []float64, c render.Color) {
	if !s.ready(c) {
		return
	}
	col := toColor(c)
	for _, seg := range dashSegments(x1, y1, x2, y2, dash) {
		vector.StrokeLine(s.target, float32(seg[0]), float32(seg[1]), float32(seg[2]), float32(seg[3]), float32(width), col, true)
	}
}

// FillCircle implements render.Surface
func (s *Surface) FillCircle(x, y, r float64, c render.Color) {
	if !s.ready(c) || r <= 0 {
		return
	}
	vector.DrawFilledCircle(s.target, float32(x), float32(y), float32(r), toColor(c), true)
}

// StrokeCircle implements render.Surface
func (s *Surface) StrokeCircle(x, y, r, width float64, c render.Color) {
	if !s.ready(c) || r <= 0 {
		return
	}
	vector.StrokeCircle(s.target, float32(x), float32(y), float32(r), float32(width), toColor(c), true)
}

// RadialGlow implements render.Surface with stacked translucent discs
func (s *Surface) RadialGlow(x, y, r float64, stops []render.GradientStop) {
	if s.target == nil || r <= 0 {
		return
	}
	for _, ring := range glowRings(stops, glowRingCount) {
		if ring.color.Visible() {
			vector.DrawFilledCircle(s.target, float32(x), float32(y), float32(r*ring.frac), toColor(ring.color), true)
		}
	}
}

// FillRect implements render.Surface
func (s *Surface) FillRect(x, y, w, h float64, c render.Color) {
	if !s.ready(c) {
		return
	}
	vector.DrawFilledRect(s.target, float32(x), float32(y), float32(w), float32(h), toColor(c), true)
}

func roundedRectPath(x, y, w, h, radius float64) *vector.Path {
	r := float32(min(radius, w/2, h/2))
	x0, y0 := float32(x), float32(y)
	x1, y1 := float32(x+w), float32(y+h)

	var p vector.Path
	p.MoveTo(x0+r, y0)
	p.LineTo(x1-r, y0)
	p.ArcTo(x1, y0, x1, y0+r, r)
	p.LineTo(x1, y1-r)
	p.ArcTo(x1, y1, x1-r, y1, r)
	p.LineTo(x0+r, y1)
	p.ArcTo(x0, y1, x0, y1-r, r)
	p.LineTo(x0, y0+r)
	p.ArcTo(x0, y0, x0+r, y0, r)
	p.Close()
	return &p
}

func (s *Surface) drawPath(c render.Color) {
	cr, cg, cb := float32(c.R)/255, float32(c.G)/255, float32(c.B)/255
	for i := range s.vertices {
		v := &s.vertices[i]
		v.SrcX, v.SrcY = 1, 1
		v.ColorR, v.ColorG, v.ColorB, v.ColorA = cr, cg, cb, float32(c.A)
	}
	op := &ebiten.DrawTrianglesOptions{
		FillRule:  ebiten.FillRuleNonZero,
		AntiAlias: true,
	}
	s.target.DrawTriangles(s.vertices, s.indices, whiteSubImage, op)
}

// FillRoundedRect implements render.Surface
func (s *Surface) FillRoundedRect(x, y, w, h, radius float64, c render.Color) {
	if !s.ready(c) {
		return
	}
	s.vertices, s.indices = roundedRectPath(x, y, w, h, radius).AppendVerticesAndIndicesForFilling(s.vertices[:0], s.indices[:0])
	s.drawPath(c)
}

// StrokeRoundedRect implements render.Surface
func (s *Surface) StrokeRoundedRect(x, y, w, h, radius, width float64, c render.Color) {
	if !s.ready(c) {
		return
	}
	opts := &vector.StrokeOptions{Width: float32(width), LineJoin: vector.LineJoinRound}
	s.vertices, s.indices = roundedRectPath(x, y, w, h, radius).AppendVerticesAndIndicesForStroke(s.vertices[:0], s.indices[:0], opts)
	s.drawPath(c)
}

func (s *Surface) face(size float64) *text.GoTextFace {
	f, ok := s.faces[size]
	if !ok {
		f = &text.GoTextFace{Source: s.source, Size: size}
		s.faces[size] = f
	}
	return f
}

// Text implements render.Surface
func (s *Surface) Text(x, y float64, str string, size float64, c render.Color) {
	if !s.ready(c) || s.source == nil {
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(toColor(c))
	text.Draw(s.target, str, s.face(size), op)
}
