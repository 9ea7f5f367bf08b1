package nodes

import (
	"errors"

	"floating-nodes/internal/core"
	"floating-nodes/internal/render"
)

// Status is the lifecycle state of an Engine.
type Status uint8

const (
	Stopped Status = iota
	Running
	Paused
)

func (s Status) String() string {
	switch s {
	case Running:
		return "running"
	case Paused:
		return "paused"
	default:
		return "stopped"
	}
}

// Engine runs a node field: it owns the state, schedules frames through the
// host scheduler and renders each frame onto the bound surface. It is not
// safe for concurrent use; hosts call it from their single update loop.
type Engine struct {
	cfg     Config
	rng     Rand
	sched   core.Scheduler
	surface render.Surface

	state  State
	frame  core.FrameHandle
	status Status
	last   FrameStats
}

// NewEngine validates cfg and returns a stopped engine. The surface may be
// nil and bound later with SetSurface.
func NewEngine(cfg Config, rng Rand, sched core.Scheduler, surface render.Surface) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if rng == nil {
		return nil, errors.New("nodes: nil random source")
	}
	if sched == nil {
		return nil, errors.New("nodes: nil scheduler")
	}
	return &Engine{cfg: cfg, rng: rng, sched: sched, surface: surface}, nil
}

// Start creates the initial population at random positions and schedules
// the first frame. The cursor node, if any, is kept; drop bookkeeping and
// the movement clock start over.
func (e *Engine) Start() {
	count := e.cfg.NodeCount()
	nodes := make([]Node, 0, count)
	for i := 0; i < count; i++ {
		x, y := randomPosition(e.rng, e.cfg)
		nodes = append(nodes, NewNode(e.rng, e.cfg.NodeParams.At(x, y)))
	}
	e.state = State{Nodes: nodes, Cursor: e.state.Cursor}
	e.last = FrameStats{}
	e.schedule()
}

// Stop cancels the pending frame. State is kept so the engine can resume.
func (e *Engine) Stop() {
	e.sched.CancelFrame(e.frame)
	e.frame = 0
	e.status = Stopped
}

// Resume schedules a frame without recreating nodes.
func (e *Engine) Resume() {
	e.schedule()
}

// SetPaused applies a change of the pause option. Switching it on reschedules
// the loop, which then halts on its next frame; switching it off leaves the
// loop halted until Resume is called.
// TODO: restart the loop on true -> false once hosts stop relying on the
// explicit Resume.
func (e *Engine) SetPaused(paused bool) {
	changed := paused != e.cfg.PauseAnimation
	e.cfg.PauseAnimation = paused
	if paused && changed {
		e.Resume()
	}
}

// Tick is the frame callback handed to the scheduler.
func (e *Engine) Tick(timestamp float64) error {
	if e.cfg.PauseAnimation {
		e.Stop()
		e.status = Paused
		return nil
	}
	if e.surface == nil {
		e.Stop()
		return ErrRenderSurfaceUnavailable
	}
	e.state, e.last = Step(e.state, e.cfg, e.rng, e.surface, timestamp)
	e.schedule()
	return nil
}

func (e *Engine) schedule() {
	e.frame = e.sched.RequestFrame(e.Tick)
	e.status = Running
}

// SetSurface binds the surface frames are drawn onto.
func (e *Engine) SetSurface(s render.Surface) { e.surface = s }

// State returns the current simulation state.
func (e *Engine) State() State { return e.state }

// Status returns the lifecycle state.
func (e *Engine) Status() Status { return e.status }

// Config returns the active configuration.
func (e *Engine) Config() Config { return e.cfg }

// LastFrame returns statistics of the most recent rendered frame.
func (e *Engine) LastFrame() FrameStats { return e.last }
