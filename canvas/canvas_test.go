package canvas

import (
	"bytes"
	"image/color"
	"image/png"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/netviz/parameter/visual"
	"github.com/lixenwraith/netviz/render"
)

func rgbaAt(c *Canvas, x, y int) color.RGBA {
	return color.RGBAModel.Convert(c.Image().At(x, y)).(color.RGBA)
}

func TestCanvasSizeAndClear(t *testing.T) {
	c := New(40, 30)
	w, h := c.Size()
	assert.Equal(t, 40.0, w)
	assert.Equal(t, 30.0, h)

	c.Clear(visual.RGB{R: 10, G: 20, B: 30})
	assert.Equal(t, color.RGBA{R: 10, G: 20, B: 30, A: 255}, rgbaAt(c, 5, 5))
}

func TestCanvasZeroSizeClamped(t *testing.T) {
	c := New(0, -3)
	w, h := c.Size()
	assert.Equal(t, 1.0, w)
	assert.Equal(t, 1.0, h)
}

func TestCanvasFillCircle(t *testing.T) {
	c := New(40, 40)
	c.Clear(visual.RGB{})
	c.FillCircle(20, 20, 8, render.With(visual.RGB{R: 255}, 1))

	assert.Equal(t, uint8(255), rgbaAt(c, 20, 20).R)
	assert.Equal(t, uint8(0), rgbaAt(c, 2, 2).R)
}

func TestCanvasInvisibleIsNoop(t *testing.T) {
	c := New(20, 20)
	c.Clear(visual.RGB{})
	c.FillRect(0, 0, 20, 20, render.Transparent)
	c.FillCircle(10, 10, 0, render.With(visual.RGB{R: 255}, 1))
	c.RadialGlow(10, 10, 5, nil)
	assert.Equal(t, color.RGBA{A: 255}, rgbaAt(c, 10, 10))
}

func TestCanvasRadialGlowFades(t *testing.T) {
	c := New(60, 60)
	c.Clear(visual.RGB{})
	c.RadialGlow(30, 30, 20, []render.GradientStop{
		{Offset: 0, Color: render.With(visual.RGB{G: 200}, 1)},
		{Offset: 1, Color: render.Transparent},
	})

	center := rgbaAt(c, 30, 30).G
	mid := rgbaAt(c, 40, 30).G
	outside := rgbaAt(c, 55, 30).G
	assert.Greater(t, center, mid)
	assert.Greater(t, mid, outside)
	assert.Equal(t, uint8(0), outside)
}

func TestCanvasTextDraws(t *testing.T) {
	c := New(80, 20)
	c.Clear(visual.RGB{})
	c.Text(2, 2, "EPOCH", 12, render.With(visual.RGB{R: 255, G: 255, B: 255}, 1))

	lit := 0
	for y := 0; y < 20; y++ {
		for x := 0; x < 80; x++ {
			if rgbaAt(c, x, y).R > 0 {
				lit++
			}
		}
	}
	assert.Positive(t, lit)
}

func TestCanvasPNG(t *testing.T) {
	c := New(16, 8)
	c.Clear(visual.RGB{R: 1, G: 2, B: 3})

	var buf bytes.Buffer
	require.NoError(t, c.EncodePNG(&buf))
	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, 16, img.Bounds().Dx())

	path := filepath.Join(t.TempDir(), "frame.png")
	require.NoError(t, c.SavePNG(path))

	assert.Error(t, c.SavePNG(filepath.Join(t.TempDir(), "missing", "frame.png")))
}

func TestGIFRecorder(t *testing.T) {
	g := NewGIFRecorder(3, 16)
	c := New(8, 8)
	for i := range 7 {
		c.Clear(visual.RGB{R: uint8(i * 30)})
		g.Add(c.Image())
	}
	// frames 1, 4, 7
	assert.Equal(t, 3, g.Len())

	var buf bytes.Buffer
	require.NoError(t, g.Encode(&buf))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("GIF89a")))
}

func TestGIFRecorderEmpty(t *testing.T) {
	var buf bytes.Buffer
	assert.Error(t, NewGIFRecorder(0, 16).Encode(&buf))
}
