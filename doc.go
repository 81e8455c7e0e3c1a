// Package polygon implements point-in-polygon testing for arbitrary
// closed polygons in the plane, based on the [winding number].
//
// A [Region] is constructed once from an ordered vertex sequence and is
// immutable afterwards. It answers two kinds of queries, for single
// points as well as for batches of points: the signed integer winding
// number of the boundary around a point ([Region.Winding],
// [Region.WindingBatch]), and containment under the [nonzero fill rule]
// ([Region.Contains], [Region.ContainsBatch]), where a point is inside
// iff the boundary winds around it a net nonzero number of times.
//
// Unlike the even-odd crossing test, the winding number handles
// self-intersecting and multiply-wound boundaries: a region enclosed
// twice in the same direction has winding number ±2, and a ring of
// opposite orientation nested inside another cuts a hole whose interior
// has winding number 0. Reversing the vertex order negates the winding
// number everywhere without changing containment.
//
// The kernel is Sunday's algorithm: for each edge of the closed ring, a
// horizontal ray through the query point is tested for a directed
// crossing, contributing +1 for an upward crossing with the point
// strictly to the left of the edge and −1 for a downward crossing with
// the point strictly to its right. The half-open inequalities make the
// test exact for points off the boundary and assign each boundary point
// to exactly one side; see [Region.Winding] for the convention.
//
// Coordinates follow the mathematical convention of y increasing
// upwards. In that convention an anticlockwise ring has positive area
// and positive winding numbers in its interior; in a y-down coordinate
// system (as is common for graphics) the roles of clockwise and
// anticlockwise swap, but the consistency between the signs of
// [Region.Area] and [Region.Winding] is preserved.
//
// # Literature
//
// This package makes use of the following ideas:
//   - [Inclusion of a Point in a Polygon] by Dan Sunday
//   - [Nonzero-rule]
//   - [Winding number]
//
// [Inclusion of a Point in a Polygon]: https://geomalgorithms.com/a03-_inclusion.html
// [Nonzero-rule]: https://en.wikipedia.org/wiki/Nonzero-rule
// [nonzero fill rule]: https://en.wikipedia.org/wiki/Nonzero-rule
// [Winding number]: https://en.wikipedia.org/wiki/Winding_number
// [winding number]: https://en.wikipedia.org/wiki/Winding_number
package polygon
