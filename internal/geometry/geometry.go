// Package geometry computes the straight-line edge geometry between nodes.
package geometry

import "math"

// ArrowGap is the space left between a trimmed edge and the target boundary
// so the arrowhead tip lands on the node outline.
const ArrowGap = 2

// Point is a position in viewport pixels.
type Point struct {
	X, Y float64
}

// Add returns p + q.
func (p Point) Add(q Point) Point { return Point{p.X + q.X, p.Y + q.Y} }

// Sub returns p - q.
func (p Point) Sub(q Point) Point { return Point{p.X - q.X, p.Y - q.Y} }

// Scale returns p scaled by k.
func (p Point) Scale(k float64) Point { return Point{p.X * k, p.Y * k} }

// Segment is a drawable line from Start to End.
type Segment struct {
	Start, End Point
}

// Length returns the segment length.
func (s Segment) Length() float64 { return Distance(s.Start, s.End) }

// Direction returns the unit vector from Start to End, or the zero vector
// for a degenerate segment.
func (s Segment) Direction() Point {
	return unit(s.Start, s.End)
}

// Distance returns the Euclidean distance between a and b.
func Distance(a, b Point) float64 {
	return math.Hypot(b.X-a.X, b.Y-a.Y)
}

// Angle returns the direction from a to b in radians.
func Angle(a, b Point) float64 {
	return math.Atan2(b.Y-a.Y, b.X-a.X)
}

// Trim shortens the line between two node centers so it starts on the source
// boundary and ends ArrowGap short of the target boundary.
func Trim(src, dst Point, radius float64) Segment {
	return TrimWithGap(src, dst, radius, ArrowGap)
}

// TrimWithGap is Trim with an explicit gap before the target. Coincident
// centers yield a zero-length segment at the shared center.
func TrimWithGap(src, dst Point, radius, gap float64) Segment {
	u := unit(src, dst)
	if u == (Point{}) {
		return Segment{Start: src, End: src}
	}
	return Segment{
		Start: src.Add(u.Scale(radius)),
		End:   dst.Sub(u.Scale(radius + gap)),
	}
}

// Arrowhead returns the triangle drawn at the end of seg: the tip first, then
// the two base corners. The base is size long and size/2 from each side of
// the axis, matching the arrowhead marker path.
func Arrowhead(seg Segment, size float64) [3]Point {
	tip := seg.End
	u := seg.Direction()
	if u == (Point{}) {
		return [3]Point{tip, tip, tip}
	}
	n := Point{-u.Y, u.X}
	base := tip.Sub(u.Scale(size))
	return [3]Point{
		tip,
		base.Add(n.Scale(size / 2)),
		base.Sub(n.Scale(size / 2)),
	}
}

func unit(a, b Point) Point {
	d := Distance(a, b)
	if d == 0 || math.IsNaN(d) {
		return Point{}
	}
	return Point{(b.X - a.X) / d, (b.Y - a.Y) / d}
}
