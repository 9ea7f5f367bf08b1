package nodes

import "math"

// Direction indexes the eight compass headings, clockwise from the top-left.
type Direction int

// NoDirection asks SelectMovement for an unconstrained heading.
const NoDirection Direction = -1

const (
	TopLeft Direction = iota
	Top
	TopRight
	Right
	BottomRight
	Bottom
	BottomLeft
	Left
)

const directionCount = 8

// Movement is a heading together with the per-frame displacement it produces.
type Movement struct {
	Dir  Direction
	X, Y float64
}

// Rand is the uniform [0, 1) source the simulation draws from.
type Rand interface {
	Float64() float64
}

// Directions returns the displacement of every heading at the given speed.
// Top and TopRight share the same vector; the table keeps eight slots so
// that heading changes always cycle through all of them.
func Directions(speed float64) [directionCount]Movement {
	return [directionCount]Movement{
		{Dir: TopLeft, X: -speed, Y: -speed},
		{Dir: Top, X: speed, Y: -speed},
		{Dir: TopRight, X: speed, Y: -speed},
		{Dir: Right, X: speed, Y: 0},
		{Dir: BottomRight, X: speed, Y: speed},
		{Dir: Bottom, X: 0, Y: speed},
		{Dir: BottomLeft, X: -speed, Y: speed},
		{Dir: Left, X: -speed, Y: 0},
	}
}

// SelectMovement picks a heading. Without a previous heading any of the eight
// is equally likely; otherwise the result turns one step clockwise or
// counter-clockwise from prev with equal probability.
func SelectMovement(rng Rand, speed float64, prev Direction) Movement {
	table := Directions(speed)
	if prev == NoDirection {
		idx := int(math.Floor(rng.Float64() * directionCount))
		return table[min(max(idx, 0), directionCount-1)]
	}
	next := prev - 1
	if rng.Float64() >= 0.5 {
		next = prev + 1
	}
	return table[wrap(next)]
}

func wrap(d Direction) int {
	return (int(d)%directionCount + directionCount) % directionCount
}
