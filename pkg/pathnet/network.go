// pkg/pathnet/network.go
package pathnet

import (
	"errors"
	"math"
)

// ErrEmptyNetwork is returned when a network is built without paths.
var ErrEmptyNetwork = errors.New("path network needs at least one path")

// Network is the fixed set of paths for one play session.
type Network struct {
	paths []Path
}

// NewNetwork groups the given paths.
func NewNetwork(paths ...Path) (*Network, error) {
	if len(paths) == 0 {
		return nil, ErrEmptyNetwork
	}
	for _, p := range paths {
		if p.Len() < 2 {
			return nil, ErrTooFewWaypoints
		}
	}
	ps := make([]Path, len(paths))
	copy(ps, paths)
	return &Network{paths: ps}, nil
}

// Count returns the number of paths.
func (n *Network) Count() int {
	return len(n.paths)
}

// Path returns path i. ok is false when i is out of range.
func (n *Network) Path(i int) (Path, bool) {
	if i < 0 || i >= len(n.paths) {
		return Path{}, false
	}
	return n.paths[i], true
}

// Paths returns all paths in index order.
func (n *Network) Paths() []Path {
	out := make([]Path, len(n.paths))
	copy(out, n.paths)
	return out
}

// DistanceTo returns the shortest distance from pt to any segment of any path.
func (n *Network) DistanceTo(pt Point) float64 {
	best := math.Inf(1)
	for _, p := range n.paths {
		if d := p.DistanceTo(pt); d < best {
			best = d
		}
	}
	return best
}
