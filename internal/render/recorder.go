package render

// OpKind enumerates recorded drawing operations.
type OpKind uint8

const (
	// OpClear erases the surface.
	OpClear OpKind = iota
	// OpCircle fills a disc at (X0, Y0).
	OpCircle
	// OpLine strokes a segment from (X0, Y0) to (X1, Y1).
	OpLine
)

// Op is one recorded drawing call.
type Op struct {
	Kind   OpKind
	X0, Y0 float64
	X1, Y1 float64
	Radius float64
	Width  float64
	Color  RGBA
}

// Style returns the op colour in rgba() notation.
func (o Op) Style() string { return o.Color.String() }

// Recorder is a Surface that keeps the current frame as a display list. It is
// the headless surface used by tests and batch runs, and the ebiten host
// replays it during Draw.
type Recorder struct {
	ops []Op
}

// NewRecorder returns an empty recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Clear implements Surface. It drops the previous frame.
func (r *Recorder) Clear() {
	r.ops = append(r.ops[:0], Op{Kind: OpClear})
}

// FillCircle implements Surface.
func (r *Recorder) FillCircle(x, y, radius float64, fill RGBA) {
	r.ops = append(r.ops, Op{Kind: OpCircle, X0: x, Y0: y, Radius: radius, Color: fill})
}

// StrokeLine implements Surface.
func (r *Recorder) StrokeLine(x0, y0, x1, y1, width float64, stroke RGBA) {
	r.ops = append(r.ops, Op{Kind: OpLine, X0: x0, Y0: y0, X1: x1, Y1: y1, Width: width, Color: stroke})
}

// Ops exposes the recorded operations of the current frame.
func (r *Recorder) Ops() []Op { return r.ops }

// Count returns how many ops of the given kind were recorded.
func (r *Recorder) Count(kind OpKind) int {
	n := 0
	for _, op := range r.ops {
		if op.Kind == kind {
			n++
		}
	}
	return n
}

// Lines returns the recorded line ops in draw order.
func (r *Recorder) Lines() []Op {
	var lines []Op
	for _, op := range r.ops {
		if op.Kind == OpLine {
			lines = append(lines, op)
		}
	}
	return lines
}
