package defs

// WaveDefinition is the resolved stat line for every enemy of one wave.
type WaveDefinition struct {
	Number     int
	Count      int
	Health     float64
	Speed      float64
	Bounty     int
	LeakDamage int
}
