package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func layerSizes(s *Scene) []int {
	sizes := make([]int, len(s.Layers))
	for i, l := range s.Layers {
		sizes[i] = len(l)
	}
	return sizes
}

func TestBuildDesktopLayout(t *testing.T) {
	e := newTestEngine(DefaultConfig())
	e.Build(1024, 768)

	s := &e.Scene
	assert.Equal(t, SizeDesktop, s.Class)
	assert.Len(t, s.Nodes, 4)
	assert.Equal(t, []int{4, 6, 6, 3}, layerSizes(s))
	// floor(1024*768/15000) = 52, under the cap of 80
	assert.Len(t, s.Particles, 52)
	assert.Equal(t, 0, s.ServerIndex())
	assert.Empty(t, s.DataPackets)
	assert.Empty(t, s.GradientPackets)
}

func TestBuildMobileLayout(t *testing.T) {
	e := newTestEngine(DefaultConfig())
	e.Build(400, 800)

	s := &e.Scene
	assert.Equal(t, SizeMobile, s.Class)
	assert.Len(t, s.Nodes, 3)
	assert.Equal(t, []int{3, 4, 4, 2}, layerSizes(s))
	assert.Len(t, s.Particles, 21)
}

func TestBuildBreakpointBoundary(t *testing.T) {
	e := newTestEngine(quietConfig())

	assert.Equal(t, SizeMobile, e.Classify(767.9))
	assert.Equal(t, SizeDesktop, e.Classify(768))
}

func TestParticleCountCapped(t *testing.T) {
	e := newTestEngine(DefaultConfig())
	e.Build(4000, 3000)
	assert.Len(t, e.Scene.Particles, 80)
}

func TestBuildIdempotent(t *testing.T) {
	e := newTestEngine(DefaultConfig())

	e.Build(1280, 720)
	first := e.Scene
	e.Build(1280, 720)
	second := e.Scene

	require.Equal(t, len(first.Particles), len(second.Particles), "particles must be re-seeded, not appended")
	assert.Equal(t, first.Nodes, second.Nodes)
	assert.Equal(t, first.Layers, second.Layers)
	assert.Equal(t, first.Class, second.Class)

	for _, p := range second.Particles {
		assert.GreaterOrEqual(t, p.X, 0.0)
		assert.LessOrEqual(t, p.X, 1280.0)
		assert.GreaterOrEqual(t, p.Y, 0.0)
		assert.LessOrEqual(t, p.Y, 720.0)
	}
}

func TestResizeToMobileReplacesLayoutAndDropsPackets(t *testing.T) {
	e := newTestEngine(DefaultConfig())
	e.Build(1024, 768)
	e.EmitPacket(PacketData, 0, 0, 10, 10, 0.01)
	e.EmitPacket(PacketGradient, 10, 10, 0, 0, 0.01)
	require.Equal(t, 2, e.Scene.PacketCount())

	e.Build(480, 800)

	assert.Equal(t, SizeMobile, e.Scene.Class)
	assert.Len(t, e.Scene.Nodes, 3)
	assert.Zero(t, e.Scene.PacketCount())
}

func TestBuildNodePositionsAreFractions(t *testing.T) {
	e := newTestEngine(quietConfig())
	e.Build(1000, 500)

	ps := e.Scene.Nodes[0]
	assert.True(t, ps.IsServer)
	assert.Equal(t, "PS", ps.Label)
	assert.InDelta(t, 160.0, ps.X, 1e-9)
	assert.InDelta(t, 120.0, ps.Y, 1e-9)
	for _, n := range e.Scene.Nodes {
		assert.True(t, n.Active)
	}
}

func TestLayersVerticallyCentered(t *testing.T) {
	e := newTestEngine(quietConfig())
	e.Build(1024, 768)

	centerY := 768 * 0.5
	for li, layer := range e.Scene.Layers {
		sum := 0.0
		for _, n := range layer {
			sum += n.Y
			assert.Equal(t, li, n.Layer)
			assert.Equal(t, layer[0].X, n.X, "a layer shares one column")
		}
		assert.InDelta(t, centerY, sum/float64(len(layer)), 1e-9)
	}

	// Layers run left to right
	for li := 1; li < len(e.Scene.Layers); li++ {
		assert.Greater(t, e.Scene.Layers[li][0].X, e.Scene.Layers[li-1][0].X)
	}
}

func TestMobileGridHorizontallyCentered(t *testing.T) {
	e := newTestEngine(quietConfig())
	e.Build(400, 800)

	layers := e.Scene.Layers
	left := layers[0][0].X
	right := layers[len(layers)-1][0].X
	assert.InDelta(t, 200.0, (left+right)/2, 1e-9)
}

func TestSingleNeuronLayerSitsOnCenterLine(t *testing.T) {
	cfg := quietConfig()
	cfg.DesktopLayers = []int{1, 1}
	e := newTestEngine(cfg)
	e.Build(1024, 600)

	for _, layer := range e.Scene.Layers {
		require.Len(t, layer, 1)
		assert.InDelta(t, 300.0, layer[0].Y, 1e-9)
	}
}

func TestZeroAreaSurface(t *testing.T) {
	cfg := DefaultConfig()
	cfg.DataSpawnChance = 1
	cfg.GradientSpawnChance = 1
	e := newTestEngine(cfg)

	assert.NotPanics(t, func() {
		e.Build(0, 0)
		for i := 1; i <= 10; i++ {
			e.Step(frameTime(i))
		}
	})
	assert.Empty(t, e.Scene.Particles)
	assert.Equal(t, SizeMobile, e.Scene.Class)
}

func TestNegativeSizeTreatedAsEmpty(t *testing.T) {
	e := newTestEngine(DefaultConfig())
	e.Build(-10, -10)
	assert.Zero(t, e.Scene.Width)
	assert.Zero(t, e.Scene.Height)
	assert.Empty(t, e.Scene.Particles)
}

func TestRebuildHook(t *testing.T) {
	var calls int
	var gotClass SizeClass
	e := newTestEngine(quietConfig(), WithHooks(Hooks{
		OnRebuild: func(w, h float64, class SizeClass) {
			calls++
			gotClass = class
		},
	}))

	e.Build(300, 300)
	assert.Equal(t, 1, calls)
	assert.Equal(t, SizeMobile, gotClass)
}
