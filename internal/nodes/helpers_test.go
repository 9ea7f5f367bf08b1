package nodes

import (
	"testing"

	"floating-nodes/internal/core"
	"floating-nodes/internal/render"
)

// fixedRand returns the same draw forever.
type fixedRand float64

func (r fixedRand) Float64() float64 { return float64(r) }

// seqRand replays draws in order and then repeats the last one.
type seqRand struct {
	draws []float64
	i     int
}

func (r *seqRand) Float64() float64 {
	if len(r.draws) == 0 {
		return 0
	}
	v := r.draws[min(r.i, len(r.draws)-1)]
	r.i++
	return v
}

func intPtr(v int) *int { return &v }

func testConfig(count int) Config {
	cfg := DefaultConfig()
	cfg.Width = 500
	cfg.Height = 600
	cfg.InitialNodeCount = intPtr(count)
	return cfg
}

func newTestEngine(t *testing.T, cfg Config, rng Rand) (*Engine, *core.FrameQueue, *render.Recorder) {
	t.Helper()
	queue := core.NewFrameQueue()
	rec := render.NewRecorder()
	e, err := NewEngine(cfg, rng, queue, rec)
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}
	return e, queue, rec
}

func nodeAt(x, y float64, m Movement) Node {
	n := NewNode(fixedRand(0), DefaultParams().At(x, y))
	n.Movement = &m
	return n
}
