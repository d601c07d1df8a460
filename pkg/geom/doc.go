// Package geom provides exact geometric predicates on integer grid points.
//
// All predicates work on [Point] values with integer coordinates and use integer
// cross products only. There is no division and no floating-point tolerance, so
// collinear points, shared endpoints and axis-aligned segments are decided exactly.
//
// # Predicates
//
//   - [Orientation]: whether c lies counterclockwise of the directed line a→b
//   - [Cross]: the sign (-1, 0, +1) of the same cross product
//   - [SegmentsIntersect]: whether two segments properly cross
//   - [SegmentPassesThroughVertex]: whether a point lies strictly inside a segment
//
// # Crossing Policy
//
// [SegmentsIntersect] reports proper crossings only: each segment must have its
// endpoints strictly on opposite sides of the other segment's supporting line.
// Segments that merely touch (shared endpoint, T-junction, collinear overlap) are
// not crossings. Callers that build planar embeddings combine it with
// [SegmentPassesThroughVertex], which catches every touching configuration in
// which a segment runs through a third point.
//
// Coordinates are expected to stay small (grid side lengths in the thousands at
// most), so products never overflow int.
package geom
