package component

import "math"

// NeverFired is the LastFiredAt value of a tower that has not shot yet.
var NeverFired = math.Inf(-1)

// Health holds the hit points of an enemy, 0 <= Value <= Max.
type Health struct {
	Value float64
	Max   float64
}

// Fraction returns Value/Max for health bars.
func (h Health) Fraction() float64 {
	if h.Max <= 0 {
		return 0
	}
	return h.Value / h.Max
}

// Combat holds the current, possibly upgraded, firing stats of a tower.
type Combat struct {
	Damage       float64
	Range        float64
	FireInterval float64 // seconds between shots
	LastFiredAt  float64 // simulation time of the last shot
}

// Ready reports whether the tower may fire at simulation time now.
func (c Combat) Ready(now float64) bool {
	return now-c.LastFiredAt >= c.FireInterval
}
