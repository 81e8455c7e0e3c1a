package polygon

// Rect is an axis-aligned rectangle, used by this package as the
// bounding box of a set of points. X0/Y0 hold the minimum and X1/Y1 the
// maximum coordinates.
type Rect struct {
	X0, Y0, X1, Y1 float64
}

// NewRectFromPoints returns the smallest rectangle containing both
// points.
func NewRectFromPoints(p0, p1 Point) Rect {
	return Rect{
		X0: min(p0.X, p1.X),
		Y0: min(p0.Y, p1.Y),
		X1: max(p0.X, p1.X),
		Y1: max(p0.Y, p1.Y),
	}
}

// UnionPoint returns the smallest rectangle containing both r and pt.
func (r Rect) UnionPoint(pt Point) Rect {
	return Rect{
		X0: min(r.X0, pt.X),
		Y0: min(r.Y0, pt.Y),
		X1: max(r.X1, pt.X),
		Y1: max(r.Y1, pt.Y),
	}
}

func (r Rect) Width() float64 {
	return r.X1 - r.X0
}

func (r Rect) Height() float64 {
	return r.Y1 - r.Y0
}

func (r Rect) Center() Point {
	return Point{
		X: 0.5 * (r.X0 + r.X1),
		Y: 0.5 * (r.Y0 + r.Y1),
	}
}

// IsEmpty reports whether the rectangle has zero area.
func (r Rect) IsEmpty() bool {
	return r.X0 >= r.X1 || r.Y0 >= r.Y1
}

// ContainsPoint reports whether pt lies in the rectangle, where the
// minimum edges are inclusive and the maximum edges exclusive. The
// half-open intervals match the boundary convention of the winding
// test, so the bounding box never rejects a point the ring would
// accept.
func (r Rect) ContainsPoint(pt Point) bool {
	return pt.X >= r.X0 && pt.X < r.X1 && pt.Y >= r.Y0 && pt.Y < r.Y1
}
