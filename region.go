package polygon

import (
	"fmt"
	"iter"
	"slices"
	"strings"
)

// InvalidShapeError is returned by the [Region] constructors when the
// input does not describe a polygon: fewer than 3 vertices, or a flat
// coordinate list that doesn't decompose into (x, y) pairs. It is the
// only error this package produces; queries on a constructed region
// never fail.
type InvalidShapeError struct {
	Reason string
}

func (err *InvalidShapeError) Error() string {
	return "invalid polygon shape: " + err.Reason
}

// Region is a fixed polygon region, described by the closed ring of its
// boundary vertices.
//
// The boundary may self-intersect, wind multiple times, and contain
// repeated vertices or zero-length edges; none of these are error
// conditions. Queries are resolved with the winding number, so a
// multiply-enclosed area reports the multiplicity and a ring of
// opposite orientation nested inside another encloses a hole.
//
// A region is immutable once constructed and holds no scratch state, so
// concurrent queries from multiple goroutines are safe without locking.
type Region struct {
	// ring is the closed vertex sequence: ring[len(ring)-1] == ring[0].
	ring []Point
	bbox Rect
}

// NewRegion constructs a region from the boundary vertices, traversed
// in order, with an implicit closing edge from the last vertex back to
// the first. Callers that already repeated the first vertex at the end
// get the same region; the closing vertex is not doubled.
//
// The vertices are copied; the input slice is not retained.
//
// Construction fails with an [InvalidShapeError] if fewer than 3
// vertices remain before closing. Nothing else is validated.
func NewRegion(vertices []Point) (*Region, error) {
	n := len(vertices)
	if n > 1 && vertices[n-1] == vertices[0] {
		// Already closed; drop the explicit closing vertex.
		n--
	}
	if n < 3 {
		return nil, &InvalidShapeError{
			Reason: fmt.Sprintf("polygon needs at least 3 vertices, got %d", n),
		}
	}
	return newRegion(vertices[:n]), nil
}

// newRegion closes the already validated open vertex list into a ring.
func newRegion(vertices []Point) *Region {
	n := len(vertices)
	ring := make([]Point, n+1)
	copy(ring, vertices)
	ring[n] = vertices[0]

	bbox := NewRectFromPoints(ring[0], ring[1])
	for _, pt := range ring[2:n] {
		bbox = bbox.UnionPoint(pt)
	}
	return &Region{
		ring: ring,
		bbox: bbox,
	}
}

// NewRegionFromCoords constructs a region from interleaved vertex
// coordinates x0, y0, x1, y1, …. It is equivalent to pairing up the
// coordinates and calling [NewRegion].
//
// Construction fails with an [InvalidShapeError] if the number of
// coordinates is odd, or if there are fewer than 3 pairs.
func NewRegionFromCoords(coords []float64) (*Region, error) {
	if len(coords)%2 != 0 {
		return nil, &InvalidShapeError{
			Reason: fmt.Sprintf("flat coordinates must pair up into (x, y), got %d values", len(coords)),
		}
	}
	vertices := make([]Point, len(coords)/2)
	for i := range vertices {
		vertices[i] = Pt(coords[2*i], coords[2*i+1])
	}
	return NewRegion(vertices)
}

// Len returns the number of edges of the boundary, which equals the
// number of vertices before closing.
func (r *Region) Len() int {
	return len(r.ring) - 1
}

// Vertices returns a copy of the boundary vertices, without the closing
// vertex.
func (r *Region) Vertices() []Point {
	return slices.Clone(r.ring[:len(r.ring)-1])
}

// Ring returns a copy of the closed vertex ring, in which the first
// vertex is repeated at the end.
func (r *Region) Ring() []Point {
	return slices.Clone(r.ring)
}

// Edges returns an iterator over the boundary edges, in traversal
// order, ending with the closing edge.
func (r *Region) Edges() iter.Seq[Line] {
	return func(yield func(Line) bool) {
		for i := 0; i+1 < len(r.ring); i++ {
			if !yield(Line{r.ring[i], r.ring[i+1]}) {
				return
			}
		}
	}
}

// BoundingBox returns the smallest rectangle that encloses the region.
func (r *Region) BoundingBox() Rect {
	return r.bbox
}

func (r *Region) String() string {
	sb := &strings.Builder{}
	sb.WriteString("Polygon[")
	for i, pt := range r.ring[:len(r.ring)-1] {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(pt.String())
	}
	sb.WriteByte(']')
	return sb.String()
}

// Winding returns the [winding number] of pt: the net number of times
// the boundary wraps around pt, positive for anticlockwise winding
// (with y up). It is 0 for points outside all loops of the boundary and
// can have any magnitude for points enclosed multiple times.
//
// The result is exact for points that don't lie on the boundary.
// Boundary points are decided by the half-open crossing inequalities
// (see [Line.Winding]): for an anticlockwise ring the lower and left
// portions of the boundary count as wound, the upper and right portions
// don't. The effect is that if the plane is tiled with translated
// copies of the region, every boundary point is claimed by exactly one
// tile.
//
// [winding number]: https://en.wikipedia.org/wiki/Winding_number
func (r *Region) Winding(pt Point) int {
	var w int
	for i := 0; i+1 < len(r.ring); i++ {
		w += (Line{r.ring[i], r.ring[i+1]}).Winding(pt)
	}
	return w
}

// WindingBatch returns the winding numbers of a batch of points.
// Element i of the result equals Winding(pts[i]); batching exists so
// that one fixed polygon can be tested against many points while
// walking the edge ring only once.
//
// The result is freshly allocated, so concurrent batch queries don't
// share state.
func (r *Region) WindingBatch(pts []Point) []int {
	wn := make([]int, len(pts))
	for i := 0; i+1 < len(r.ring); i++ {
		edge := Line{r.ring[i], r.ring[i+1]}
		for j, pt := range pts {
			wn[j] += edge.Winding(pt)
		}
	}
	return wn
}

// Contains reports whether the region contains pt under the nonzero
// fill rule, i.e. whether the winding number of pt is nonzero. The
// winding direction of the boundary doesn't matter.
func (r *Region) Contains(pt Point) bool {
	return r.Winding(pt) != 0
}

// ContainsBatch reports containment for a batch of points. Element i of
// the result equals Contains(pts[i]).
func (r *Region) ContainsBatch(pts []Point) []bool {
	wn := r.WindingBatch(pts)
	mask := make([]bool, len(wn))
	for i, w := range wn {
		mask[i] = w != 0
	}
	return mask
}

// Area returns the signed area of the region, computed with the
// shoelace formula.
//
// The area is positive when the boundary is traversed anticlockwise
// (with y up), consistent with the sign of [Region.Winding]. For a
// self-intersecting boundary each patch of the plane contributes its
// area weighted by its winding number.
func (r *Region) Area() float64 {
	var sum float64
	for i := 0; i+1 < len(r.ring); i++ {
		p, q := r.ring[i], r.ring[i+1]
		sum += p.X*q.Y - q.X*p.Y
	}
	return 0.5 * sum
}

// Perimeter returns the total length of the boundary, including the
// closing edge.
func (r *Region) Perimeter() float64 {
	var sum float64
	for i := 0; i+1 < len(r.ring); i++ {
		sum += (Line{r.ring[i], r.ring[i+1]}).Length()
	}
	return sum
}

// Centroid returns the centroid of the region.
//
// The result is meaningless (NaN or infinite) when the signed area is
// zero, as for a fully degenerate boundary.
func (r *Region) Centroid() Point {
	var a, cx, cy float64
	for i := 0; i+1 < len(r.ring); i++ {
		p, q := r.ring[i], r.ring[i+1]
		c := p.X*q.Y - q.X*p.Y
		a += c
		cx += (p.X + q.X) * c
		cy += (p.Y + q.Y) * c
	}
	return Pt(cx/(3*a), cy/(3*a))
}

// IsConvex reports whether consecutive boundary edges all turn in the
// same direction, which for a simple polygon means it is convex.
// Collinear edges are permitted.
func (r *Region) IsConvex() bool {
	n := r.Len()
	var sign float64
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		c := r.ring[i+1].Sub(r.ring[i]).Cross(r.ring[j+1].Sub(r.ring[j]))
		switch {
		case c > 0:
			if sign < 0 {
				return false
			}
			sign = 1
		case c < 0:
			if sign > 0 {
				return false
			}
			sign = -1
		}
	}
	return true
}

// Reversed returns the region with its boundary traversed in the
// opposite direction. Reversal negates the winding number of every
// point and the signed area, but leaves containment unchanged.
func (r *Region) Reversed() *Region {
	vertices := r.Vertices()
	slices.Reverse(vertices)
	return newRegion(vertices)
}

// Transform returns the region with all vertices transformed by aff.
//
// A transform with negative determinant (such as a reflection) flips
// the orientation of the boundary and with it the sign of winding
// numbers and area.
func (r *Region) Transform(aff Affine) *Region {
	vertices := r.Vertices()
	for i, pt := range vertices {
		vertices[i] = pt.Transform(aff)
	}
	return newRegion(vertices)
}
