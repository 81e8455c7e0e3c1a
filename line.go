package polygon

// Line represents a directed line segment, such as a single edge of a
// polygon boundary.
type Line struct {
	// The segment's start point.
	P0 Point
	// The segment's end point.
	P1 Point
}

// Length returns the length of the segment.
func (l Line) Length() float64 {
	return l.P1.Sub(l.P0).Hypot()
}

// Midpoint returns the point halfway between the segment's endpoints.
func (l Line) Midpoint() Point {
	return l.P0.Midpoint(l.P1)
}

// Reversed returns the segment traversed in the opposite direction.
func (l Line) Reversed() Line {
	return Line{
		P0: l.P1,
		P1: l.P0,
	}
}

func (l Line) Translate(v Vec2) Line {
	return Line{
		P0: l.P0.Translate(v),
		P1: l.P1.Translate(v),
	}
}

func (l Line) IsInf() bool {
	return l.P0.IsInf() || l.P1.IsInf()
}

func (l Line) IsNaN() bool {
	return l.P0.IsNaN() || l.P1.IsNaN()
}

// Winding returns the winding number contribution of a single edge.
//
// Cast a horizontal ray through pt and count the directed crossing: the
// contribution is +1 if the edge crosses the ray upwards
// (P0.Y ≤ pt.Y < P1.Y) with pt strictly to the left of the edge, −1 if
// it crosses downwards (P0.Y > pt.Y ≥ P1.Y) with pt strictly to its
// right, and 0 otherwise. Horizontal and zero-length edges never cross
// and contribute 0.
//
// Summed over all edges of a closed ring, the contributions yield the
// winding number of pt; see [Region.Winding].
func (l Line) Winding(pt Point) int {
	if l.P0.Y <= pt.Y {
		if l.P1.Y > pt.Y && l.P1.Sub(l.P0).Cross(pt.Sub(l.P0)) > 0 {
			return 1
		}
	} else {
		if l.P1.Y <= pt.Y && l.P1.Sub(l.P0).Cross(pt.Sub(l.P0)) < 0 {
			return -1
		}
	}
	return 0
}
