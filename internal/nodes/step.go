package nodes

import (
	"math"

	"floating-nodes/internal/render"
)

// FrameStats summarises one frame.
type FrameStats struct {
	Nodes           int
	Connections     int
	MovementUpdated bool
}

// Step renders state onto surface and returns the state for the next frame.
//
// Every node in the render set is drawn, followed by a line to each other
// node within its own threshold, styled by the drawing node; a pair within
// both thresholds is therefore drawn twice. Lines use positions from the
// start of the frame. Afterwards every persistent node advances along its
// heading, and headings may be resampled when the movement gate is due.
func Step(state State, cfg Config, rng Rand, surface render.Surface, timestamp float64) (State, FrameStats) {
	scene := state.RenderSet()
	stats := FrameStats{Nodes: len(scene)}

	surface.Clear()
	for i, n := range scene {
		surface.FillCircle(n.X, n.Y, float64(n.Radius), n.Fill)
		for j, other := range scene {
			if j == i {
				continue
			}
			d := n.Distance(other)
			if !n.Connects(d) {
				continue
			}
			surface.StrokeLine(n.X, n.Y, other.X, other.Y, n.ConnectionSize, n.Stroke(d))
			stats.Connections++
		}
	}

	due := state.movementDue(timestamp, cfg.MovementUpdateTime)
	next := state
	next.Nodes = make([]Node, len(state.Nodes))
	for i, n := range state.Nodes {
		next.Nodes[i] = advance(n, cfg, rng, due)
	}
	if due {
		next.LastMovementUpdate = timestamp
		next.HasMovementUpdate = true
	}
	stats.MovementUpdated = due
	return next, stats
}

// advance moves n by one frame. With out-of-bound handling enabled a node
// that would leave the surface is respawned at a random position instead.
func advance(n Node, cfg Config, rng Rand, due bool) Node {
	if n.Movement == nil {
		return n
	}
	nx := n.X + n.Movement.X
	ny := n.Y + n.Movement.Y
	if cfg.EnableOutOfBound && outside(nx, ny, cfg) {
		n.X, n.Y = randomPosition(rng, cfg)
		return n
	}
	n.X, n.Y = nx, ny
	if due && rng.Float64() > 0.5 {
		m := SelectMovement(rng, n.Speed, n.Movement.Dir)
		n.Movement = &m
	}
	return n
}

func outside(x, y float64, cfg Config) bool {
	return x < 0 || x > float64(cfg.Width) || y < 0 || y > float64(cfg.Height)
}

func randomPosition(rng Rand, cfg Config) (float64, float64) {
	x := math.Ceil(rng.Float64() * float64(cfg.Width))
	y := math.Ceil(rng.Float64() * float64(cfg.Height))
	return x, y
}
