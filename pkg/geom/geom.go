package geom

import "fmt"

// Point is an integer coordinate pair on the grid.
type Point struct {
	X int `json:"x" bson:"x"`
	Y int `json:"y" bson:"y"`
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y int) Point { return Point{X: x, Y: y} }

// String implements fmt.Stringer.
func (p Point) String() string { return fmt.Sprintf("(%d,%d)", p.X, p.Y) }

// Rect is an axis-aligned bounding box with inclusive bounds.
type Rect struct {
	MinX, MinY int
	MaxX, MaxY int
}

// Bounds returns the bounding box of the segment a–b.
func Bounds(a, b Point) Rect {
	return Rect{
		MinX: min(a.X, b.X),
		MinY: min(a.Y, b.Y),
		MaxX: max(a.X, b.X),
		MaxY: max(a.Y, b.Y),
	}
}

// StrictlyContainsX reports whether MinX < x < MaxX.
func (r Rect) StrictlyContainsX(x int) bool { return r.MinX < x && x < r.MaxX }

// StrictlyContainsY reports whether MinY < y < MaxY.
func (r Rect) StrictlyContainsY(y int) bool { return r.MinY < y && y < r.MaxY }

// cross returns (c.y-a.y)(b.x-a.x) - (b.y-a.y)(c.x-a.x).
func cross(a, b, c Point) int {
	return (c.Y-a.Y)*(b.X-a.X) - (b.Y-a.Y)*(c.X-a.X)
}

// Cross returns the sign of the cross product of a→b and a→c:
// +1 when c is counterclockwise of a→b, -1 when clockwise, 0 when collinear.
func Cross(a, b, c Point) int {
	switch v := cross(a, b, c); {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}

// Orientation reports whether c lies counterclockwise of the directed segment a→b,
// i.e. (c.y-a.y)(b.x-a.x) > (b.y-a.y)(c.x-a.x). Collinear points report false.
func Orientation(a, b, c Point) bool {
	return (c.Y-a.Y)*(b.X-a.X) > (b.Y-a.Y)*(c.X-a.X)
}

// SegmentsIntersect reports whether segments a–b and c–d properly cross.
//
// For points in general position this is exactly
//
//	Orientation(a,c,d) != Orientation(b,c,d) && Orientation(a,b,c) != Orientation(a,b,d)
//
// When any three of the points are collinear the segments can at most touch, and
// touching is not a crossing.
func SegmentsIntersect(a, b, c, d Point) bool {
	abC, abD := Cross(a, b, c), Cross(a, b, d)
	if abC == 0 || abD == 0 || abC == abD {
		return false
	}
	cdA, cdB := Cross(c, d, a), Cross(c, d, b)
	if cdA == 0 || cdB == 0 || cdA == cdB {
		return false
	}
	return true
}

// SegmentPassesThroughVertex reports whether v lies strictly between a and b on
// the segment a–b. The endpoints themselves never count.
//
// The strict bounding-box test carries the axis-aligned cases: for a vertical
// segment only the y range is open, for a horizontal one only the x range.
func SegmentPassesThroughVertex(a, b, v Point) bool {
	if v == a || v == b {
		return false
	}
	box := Bounds(a, b)
	dx, dy := b.X-a.X, b.Y-a.Y

	switch {
	case dx == 0 && dy == 0:
		return false
	case dx == 0:
		return v.X == a.X && box.StrictlyContainsY(v.Y)
	case dy == 0:
		return v.Y == a.Y && box.StrictlyContainsX(v.X)
	}

	if !box.StrictlyContainsX(v.X) || !box.StrictlyContainsY(v.Y) {
		return false
	}
	return (v.X-a.X)*dy == (v.Y-a.Y)*dx
}
