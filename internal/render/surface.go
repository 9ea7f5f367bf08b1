package render

// Point is a position in surface coordinates, origin top-left, Y down.
type Point struct {
	X, Y float64
}

// Sub returns p translated by -q.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Surface is the 2D drawing target a simulation renders a frame onto.
type Surface interface {
	// Clear erases everything drawn so far.
	Clear()
	// FillCircle draws a filled disc centred on (x, y).
	FillCircle(x, y, radius float64, fill RGBA)
	// StrokeLine draws a straight line segment.
	StrokeLine(x0, y0, x1, y1, width float64, stroke RGBA)
}
