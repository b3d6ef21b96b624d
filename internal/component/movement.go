// component/movement.go
package component

import "go-tactical-defense/pkg/pathnet"

// Position is a world position in pixels.
type Position struct {
	X, Y float64
}

// Point converts the position to a path-network point.
func (p Position) Point() pathnet.Point {
	return pathnet.Point{X: p.X, Y: p.Y}
}

// PositionOf builds a position from a path-network point.
func PositionOf(pt pathnet.Point) Position {
	return Position{X: pt.X, Y: pt.Y}
}

// Velocity is movement speed in pixels per second.
type Velocity struct {
	Speed float64
}

// Path records which network path an enemy follows and the waypoint it is heading to.
// Cursor only ever increases.
type Path struct {
	PathIndex int
	Cursor    int
}
