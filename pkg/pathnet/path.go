// pkg/pathnet/path.go
package pathnet

import (
	"errors"
	"fmt"
	"math"
)

// ErrTooFewWaypoints is returned when a path is built from fewer than two points.
var ErrTooFewWaypoints = errors.New("path needs at least two waypoints")

// Point is a position in world (pixel) coordinates.
type Point struct {
	X, Y float64
}

// Sub returns p - o.
func (p Point) Sub(o Point) Point {
	return Point{X: p.X - o.X, Y: p.Y - o.Y}
}

// Add returns p + o.
func (p Point) Add(o Point) Point {
	return Point{X: p.X + o.X, Y: p.Y + o.Y}
}

// Scale returns p * k.
func (p Point) Scale(k float64) Point {
	return Point{X: p.X * k, Y: p.Y * k}
}

// Len returns the Euclidean length of p as a vector.
func (p Point) Len() float64 {
	return math.Hypot(p.X, p.Y)
}

// DistSq returns the squared distance between two points.
func (p Point) DistSq(o Point) float64 {
	dx := p.X - o.X
	dy := p.Y - o.Y
	return dx*dx + dy*dy
}

// Dist returns the distance between two points.
func (p Point) Dist(o Point) float64 {
	return math.Sqrt(p.DistSq(o))
}

// Segment is one straight leg of a path.
type Segment struct {
	A, B Point
}

// DistanceTo returns the shortest distance from p to the segment.
func (s Segment) DistanceTo(p Point) float64 {
	ab := s.B.Sub(s.A)
	lenSq := ab.X*ab.X + ab.Y*ab.Y
	if lenSq == 0 {
		return p.Dist(s.A)
	}
	ap := p.Sub(s.A)
	t := (ap.X*ab.X + ap.Y*ab.Y) / lenSq
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	closest := s.A.Add(ab.Scale(t))
	return p.Dist(closest)
}

// Path is an immutable polyline that enemies walk from the first to the last waypoint.
type Path struct {
	waypoints []Point
}

// NewPath copies the given waypoints into a new path.
func NewPath(points ...Point) (Path, error) {
	if len(points) < 2 {
		return Path{}, fmt.Errorf("new path with %d points: %w", len(points), ErrTooFewWaypoints)
	}
	wp := make([]Point, len(points))
	copy(wp, points)
	return Path{waypoints: wp}, nil
}

// MustPath is NewPath for static layouts known to be valid.
func MustPath(points ...Point) Path {
	p, err := NewPath(points...)
	if err != nil {
		panic(err)
	}
	return p
}

// Len returns the number of waypoints.
func (p Path) Len() int {
	return len(p.waypoints)
}

// LastIndex returns the index of the final waypoint.
func (p Path) LastIndex() int {
	return len(p.waypoints) - 1
}

// Waypoint returns the waypoint at index i. ok is false when i is out of range.
func (p Path) Waypoint(i int) (Point, bool) {
	if i < 0 || i >= len(p.waypoints) {
		return Point{}, false
	}
	return p.waypoints[i], true
}

// Waypoints returns a copy of all waypoints.
func (p Path) Waypoints() []Point {
	out := make([]Point, len(p.waypoints))
	copy(out, p.waypoints)
	return out
}

// Segments returns the legs of the path in walking order.
func (p Path) Segments() []Segment {
	if len(p.waypoints) < 2 {
		return nil
	}
	segs := make([]Segment, 0, len(p.waypoints)-1)
	for i := 1; i < len(p.waypoints); i++ {
		segs = append(segs, Segment{A: p.waypoints[i-1], B: p.waypoints[i]})
	}
	return segs
}

// Length returns the total walking length of the path.
func (p Path) Length() float64 {
	total := 0.0
	for _, s := range p.Segments() {
		total += s.A.Dist(s.B)
	}
	return total
}

// DistanceTo returns the shortest distance from pt to any segment of the path.
func (p Path) DistanceTo(pt Point) float64 {
	best := math.Inf(1)
	for _, s := range p.Segments() {
		if d := s.DistanceTo(pt); d < best {
			best = d
		}
	}
	return best
}

// SpawnPoint returns the point that lies offset units before the first waypoint,
// on the line extending the first segment backwards.
func (p Path) SpawnPoint(offset float64) Point {
	if len(p.waypoints) == 0 {
		return Point{}
	}
	start := p.waypoints[0]
	if offset <= 0 || len(p.waypoints) < 2 {
		return start
	}
	dir := start.Sub(p.waypoints[1])
	l := dir.Len()
	if l == 0 {
		return start
	}
	return start.Add(dir.Scale(offset / l))
}
