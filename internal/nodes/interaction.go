package nodes

import (
	"slices"

	"floating-nodes/internal/render"
)

// PointerEnter creates the cursor node when interaction is enabled. It sits
// at the origin until the first PointerMove.
func (e *Engine) PointerEnter() {
	if !e.cfg.EnableInteraction {
		return
	}
	n := NewNode(e.rng, e.cfg.InteractiveNodeParams)
	e.state.Cursor = &n
}

// PointerMove places the cursor node at the pointer, relative to the surface
// origin. The previous cursor node value is left untouched.
func (e *Engine) PointerMove(pointer, origin render.Point) {
	if e.state.Cursor == nil {
		return
	}
	p := pointer.Sub(origin)
	moved := *e.state.Cursor
	moved.X, moved.Y = p.X, p.Y
	e.state.Cursor = &moved
}

// PointerLeave removes the cursor node.
func (e *Engine) PointerLeave() {
	e.state.Cursor = nil
}

// PointerDown spawns dropped nodes at the pointer when node drops are
// enabled. Past the drop limit the oldest persistent nodes are evicted,
// whether dropped or part of the initial population.
func (e *Engine) PointerDown(pointer, origin render.Point) {
	if !e.cfg.EnableNodeDrop {
		return
	}
	p := pointer.Sub(origin)
	amount := e.cfg.DropAmount()
	params := e.cfg.NodeDropParams.NodeParams.At(p.X, p.Y)

	nodes := slices.Clip(e.state.Nodes)
	for range amount {
		nodes = append(nodes, NewNode(e.rng, params))
	}

	count := e.state.DropCount + amount
	if limit := e.cfg.NodeDropParams.Limit; limit > 0 {
		for count > limit {
			count--
			if len(nodes) > 0 {
				nodes = nodes[1:]
			}
		}
	}
	e.state.Nodes = nodes
	e.state.DropCount = count
}
