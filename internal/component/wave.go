package component

// SpawnEntry is one generated enemy waiting to enter the field.
type SpawnEntry struct {
	Position   Position
	PathIndex  int
	Health     float64
	Speed      float64
	Bounty     int
	LeakDamage int
	Roster     int
}

// Wave tracks the roster of the wave in progress.
type Wave struct {
	Number        int
	Pending       []SpawnEntry
	SpawnTimer    float64
	SpawnInterval float64
}
