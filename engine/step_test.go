package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/netviz/vmath"
)

func TestParticlesStayInBounds(t *testing.T) {
	cfg := DefaultConfig()
	e := newTestEngine(cfg)
	e.Build(800, 600)
	e.PointerMove(400, 300)

	for i := 1; i <= 600; i++ {
		// Sweep the pointer so particles get pushed across every edge
		if i%50 == 0 {
			e.PointerMove(float64(i%800), float64((i*7)%600))
		}
		e.Step(frameTime(i))
		for _, p := range e.Scene.Particles {
			require.GreaterOrEqual(t, p.X, 0.0)
			require.LessOrEqual(t, p.X, 800.0)
			require.GreaterOrEqual(t, p.Y, 0.0)
			require.LessOrEqual(t, p.Y, 600.0)
		}
	}
}

func TestParticleWrapsAcrossEdges(t *testing.T) {
	cfg := quietConfig()
	cfg.Friction = 1
	cfg.MinSpeed = 0
	e := newTestEngine(cfg)
	e.Build(100, 100)
	e.Scene.Particles = []Particle{
		{X: 99.5, Y: 50, VX: 1},
		{X: 0.5, Y: 50, VX: -1},
		{X: 50, Y: 99.5, VY: 1},
		{X: 50, Y: 0.5, VY: -1},
	}

	e.Step(frameTime(1))

	p := e.Scene.Particles
	assert.Equal(t, 0.0, p[0].X)
	assert.Equal(t, 100.0, p[1].X)
	assert.Equal(t, 0.0, p[2].Y)
	assert.Equal(t, 100.0, p[3].Y)
}

func TestFrictionAndStallJitter(t *testing.T) {
	cfg := quietConfig()
	e := New(cfg, testEpoch, WithRand(NewSequenceRand(1.0)))
	e.Build(500, 500)
	e.Scene.Particles = []Particle{
		{X: 10, Y: 10, VX: 1, VY: 0},
		{X: 20, Y: 20, VX: 0, VY: 0},
	}

	e.Step(frameTime(1))

	fast := e.Scene.Particles[0]
	assert.InDelta(t, 0.99, fast.VX, 1e-12)
	assert.Zero(t, fast.VY)

	// Stalled particle gets (1.0-0.5)*0.1 per axis from the sequence
	slow := e.Scene.Particles[1]
	assert.InDelta(t, 0.05, slow.VX, 1e-12)
	assert.InDelta(t, 0.05, slow.VY, 1e-12)
}

func TestPointerDeflectsOnlyInsideRadius(t *testing.T) {
	tests := []struct {
		name    string
		dist    float64
		deflect bool
	}{
		{"near", 10, true},
		{"mid", 75, true},
		{"just inside", 149.9, true},
		{"on radius", 150, false},
		{"outside", 220, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := quietConfig()
			cfg.Friction = 1
			cfg.MinSpeed = 0
			e := newTestEngine(cfg)
			e.Build(1024, 768)
			e.Scene.Particles = []Particle{{X: 400, Y: 300}}
			// Pointer to the right of the particle
			e.PointerMove(400+tt.dist, 300)

			e.Step(frameTime(1))

			p := e.Scene.Particles[0]
			if tt.deflect {
				want := -(150 - tt.dist) / 150 * cfg.RepelStrength
				assert.InDelta(t, want, p.VX, 1e-12)
				assert.Less(t, p.VX, 0.0, "velocity must point away from the pointer")
			} else {
				assert.Zero(t, p.VX)
			}
			assert.Zero(t, p.VY)
		})
	}
}

func TestPointerAbsentDoesNotDeflect(t *testing.T) {
	cfg := quietConfig()
	cfg.Friction = 1
	cfg.MinSpeed = 0
	e := newTestEngine(cfg)
	e.Build(1024, 768)
	e.Scene.Particles = []Particle{{X: 400, Y: 300}}

	e.PointerMove(410, 300)
	e.PointerLeave()
	e.Step(frameTime(1))

	assert.Zero(t, e.Scene.Particles[0].VX)
	assert.False(t, e.Pointer.Present)
}

func TestPointerOnParticleIsSafe(t *testing.T) {
	cfg := quietConfig()
	cfg.Friction = 1
	cfg.MinSpeed = 0
	e := newTestEngine(cfg)
	e.Build(1024, 768)
	e.Scene.Particles = []Particle{{X: 400, Y: 300}}
	e.PointerMove(400, 300)

	assert.NotPanics(t, func() { e.Step(frameTime(1)) })
	assert.Zero(t, e.Scene.Particles[0].VX)
	assert.Zero(t, e.Scene.Particles[0].VY)
}

func TestDataPacketEndToEnd(t *testing.T) {
	var delivered []PacketKind
	e := newTestEngine(quietConfig(), WithHooks(Hooks{
		OnDelivered: func(k PacketKind) { delivered = append(delivered, k) },
	}))
	e.Build(1024, 768)
	require.Len(t, e.Scene.Nodes, 4)
	require.Equal(t, []int{4, 6, 6, 3}, layerSizes(&e.Scene))

	src := e.Scene.Nodes[1]
	dst := e.Scene.Layers[0][2]
	e.EmitPacket(PacketData, src.X, src.Y, dst.X, dst.Y, 0.02)

	prev := 0.0
	for i := 1; i < 50; i++ {
		e.Step(frameTime(i))
		require.Len(t, e.Scene.DataPackets, 1, "removed early at frame %d", i)
		p := e.Scene.DataPackets[0]
		require.GreaterOrEqual(t, p.Progress, prev)
		prev = p.Progress
	}
	assert.InDelta(t, 0.98, prev, 1e-9)

	e.Step(frameTime(50))
	assert.Empty(t, e.Scene.DataPackets)
	assert.Equal(t, []PacketKind{PacketData}, delivered)
	assert.Equal(t, uint64(1), e.Delivered(PacketData))
	assert.Zero(t, e.Delivered(PacketGradient))
}

func TestPacketHeadFollowsEasedPath(t *testing.T) {
	e := newTestEngine(quietConfig())
	e.Build(1024, 768)
	e.EmitPacket(PacketGradient, 100, 100, 300, 500, 0.1)

	for i := 1; i <= 5; i++ {
		e.Step(frameTime(i))
	}

	require.Len(t, e.Scene.GradientPackets, 1)
	p := e.Scene.GradientPackets[0]
	wantX, wantY := vmath.EasePoint(100, 100, 300, 500, p.Progress)
	assert.InDelta(t, 0.5, p.Progress, 1e-9)
	assert.InDelta(t, wantX, p.HeadX, 1e-9)
	assert.InDelta(t, wantY, p.HeadY, 1e-9)
	// Ease-out runs ahead of linear interpolation
	assert.Greater(t, p.HeadX, 200.0)
}

func TestPacketsRemovedIndependently(t *testing.T) {
	e := newTestEngine(quietConfig())
	e.Build(1024, 768)
	e.EmitPacket(PacketData, 0, 0, 1, 1, 0.5)
	e.EmitPacket(PacketData, 0, 0, 1, 1, 0.25)
	e.EmitPacket(PacketData, 0, 0, 1, 1, 0.1)

	e.Step(frameTime(1))
	assert.Len(t, e.Scene.DataPackets, 3)
	e.Step(frameTime(2))
	require.Len(t, e.Scene.DataPackets, 2)
	assert.Equal(t, 0.25, e.Scene.DataPackets[0].Speed)
	assert.Equal(t, 0.1, e.Scene.DataPackets[1].Speed)
	e.Step(frameTime(3))
	e.Step(frameTime(4))
	require.Len(t, e.Scene.DataPackets, 1)
	assert.Equal(t, 0.1, e.Scene.DataPackets[0].Speed)
}

func TestSpawnUsesInjectedRandom(t *testing.T) {
	// All zeros: both rolls succeed and every choice picks the first candidate
	e := New(quietConfig(), testEpoch, WithRand(NewSequenceRand(0)))
	e.cfg.DataSpawnChance = 0.05
	e.cfg.GradientSpawnChance = 0.02
	e.Build(1024, 768)

	e.Step(frameTime(1))

	require.Len(t, e.Scene.DataPackets, 1)
	require.Len(t, e.Scene.GradientPackets, 1)

	data := e.Scene.DataPackets[0]
	worker := e.Scene.Nodes[1]
	input := e.Scene.Layers[0][0]
	assert.Equal(t, PacketData, data.Kind)
	assert.Equal(t, worker.X, data.SrcX)
	assert.Equal(t, worker.Y, data.SrcY)
	assert.Equal(t, input.X, data.DstX)
	assert.Equal(t, input.Y, data.DstY)
	assert.InDelta(t, 0.008, data.Speed, 1e-12)

	grad := e.Scene.GradientPackets[0]
	server := e.Scene.Nodes[0]
	output := e.Scene.Layers[3][0]
	assert.Equal(t, PacketGradient, grad.Kind)
	assert.Equal(t, output.X, grad.SrcX)
	assert.Equal(t, server.X, grad.DstX)
	assert.Equal(t, server.Y, grad.DstY)
}

func TestSpawnRollsAboveChanceDoNothing(t *testing.T) {
	e := New(quietConfig(), testEpoch, WithRand(NewSequenceRand(0.5)))
	e.cfg.DataSpawnChance = 0.05
	e.cfg.GradientSpawnChance = 0.02
	e.Build(1024, 768)

	for i := 1; i <= 20; i++ {
		e.Step(frameTime(i))
	}
	assert.Zero(t, e.Scene.PacketCount())
}

func TestSpawnSkippedWithoutEndpoints(t *testing.T) {
	cfg := quietConfig()
	cfg.DataSpawnChance = 1
	cfg.GradientSpawnChance = 1
	cfg.DesktopLayers = nil
	e := newTestEngine(cfg)
	e.Build(1024, 768)

	assert.NotPanics(t, func() {
		for i := 1; i <= 5; i++ {
			e.Step(frameTime(i))
		}
	})
	assert.Zero(t, e.Scene.PacketCount())

	cfg.DesktopLayers = []int{3, 0}
	e = newTestEngine(cfg)
	e.Build(1024, 768)
	e.Step(frameTime(1))
	assert.Len(t, e.Scene.DataPackets, 1)
	assert.Empty(t, e.Scene.GradientPackets)
}

func TestActivationsInRangeAndPhased(t *testing.T) {
	e := newTestEngine(quietConfig())
	e.Build(1024, 768)

	for i := 1; i <= 120; i++ {
		e.Step(frameTime(i))
		for _, layer := range e.Scene.Layers {
			for _, n := range layer {
				require.GreaterOrEqual(t, n.Activation, 0.0)
				require.LessOrEqual(t, n.Activation, 1.0)
			}
		}
	}

	l := e.Scene.Layers
	assert.NotEqual(t, l[0][0].Activation, l[0][1].Activation)
	assert.NotEqual(t, l[0][0].Activation, l[1][0].Activation)
}

func TestStepTracksFramesAndElapsed(t *testing.T) {
	e := newTestEngine(quietConfig())
	e.Build(640, 480)

	e.Step(frameTime(3))
	e.Step(frameTime(4))

	assert.Equal(t, uint64(2), e.Frame())
	assert.Equal(t, 64.0, e.ElapsedMs())

	// A timestamp before the origin clamps to zero
	e.Step(testEpoch.Add(-1))
	assert.Zero(t, e.Elapsed())
}
