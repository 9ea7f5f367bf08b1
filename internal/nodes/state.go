package nodes

// State is everything a running node field owns between frames.
type State struct {
	// Nodes is the persistent collection: the initial population followed by
	// dropped nodes, oldest first.
	Nodes []Node
	// Cursor follows the pointer and is never moved by the simulation.
	Cursor *Node
	// DropCount is the number of dropped nodes still accounted for.
	DropCount int

	// LastMovementUpdate is the timestamp (ms) of the last frame whose
	// movement gate was due. It is meaningful once HasMovementUpdate is set.
	LastMovementUpdate float64
	HasMovementUpdate  bool
}

// RenderSet returns the nodes drawn this frame: the persistent nodes followed
// by the cursor node when present.
func (s State) RenderSet() []Node {
	if s.Cursor == nil {
		return s.Nodes
	}
	set := make([]Node, 0, len(s.Nodes)+1)
	set = append(set, s.Nodes...)
	return append(set, *s.Cursor)
}

// movementDue reports whether headings may be resampled at timestamp.
func (s State) movementDue(timestamp, interval float64) bool {
	if !s.HasMovementUpdate {
		return true
	}
	return (timestamp-s.LastMovementUpdate)/1000 >= interval
}
