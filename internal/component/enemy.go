package component

// Enemy represents a hostile walker.
type Enemy struct {
	Roster     int // index in the wave roster, used for target ordering
	Wave       int
	Bounty     int
	LeakDamage int
}
