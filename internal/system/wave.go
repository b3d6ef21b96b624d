// internal/system/wave.go
package system

import (
	"log"

	"go-tactical-defense/internal/component"
	"go-tactical-defense/internal/defs"
	"go-tactical-defense/internal/entity"
	"go-tactical-defense/internal/event"
)

// GenerateWave builds the roster of wave waveIndex. Enemies are dealt to the
// network's paths round robin and staggered backwards from each path's entry by
// their roster position. Same inputs always yield the same roster.
func GenerateWave(catalog *defs.Catalog, waveIndex int) []component.SpawnEntry {
	def := catalog.Wave(waveIndex)
	net := catalog.Network
	if def.Count <= 0 || net == nil || net.Count() == 0 {
		return nil
	}

	roster := make([]component.SpawnEntry, 0, def.Count)
	for i := 0; i < def.Count; i++ {
		pathIndex := i % net.Count()
		path, _ := net.Path(pathIndex)
		spawn := path.SpawnPoint(float64(i) * catalog.SpacingDistance())
		roster = append(roster, component.SpawnEntry{
			Position:   component.PositionOf(spawn),
			PathIndex:  pathIndex,
			Health:     def.Health,
			Speed:      def.Speed,
			Bounty:     def.Bounty,
			LeakDamage: def.LeakDamage,
			Roster:     i,
		})
	}
	return roster
}

// WaveSystem releases the roster of the running wave into the field.
type WaveSystem struct {
	ecs             *entity.ECS
	catalog         *defs.Catalog
	eventDispatcher *event.Dispatcher
}

func NewWaveSystem(ecs *entity.ECS, catalog *defs.Catalog, eventDispatcher *event.Dispatcher) *WaveSystem {
	return &WaveSystem{
		ecs:             ecs,
		catalog:         catalog,
		eventDispatcher: eventDispatcher,
	}
}

// StartWave generates the roster for waveNumber and installs it as the current wave.
// With a zero spawn interval the whole roster enters the field immediately.
func (s *WaveSystem) StartWave(waveNumber int) *component.Wave {
	roster := GenerateWave(s.catalog, waveNumber)
	wave := &component.Wave{
		Number:        waveNumber,
		Pending:       roster,
		SpawnInterval: s.catalog.SpawnInterval(),
	}
	s.ecs.Wave = wave

	if wave.SpawnInterval <= 0 {
		for len(wave.Pending) > 0 {
			s.release(wave)
		}
	}

	log.Printf("[Wave] wave %d started with %d enemies", waveNumber, len(roster))
	s.eventDispatcher.Dispatch(event.Event{
		Type: event.WaveStarted,
		Data: event.WaveData{Wave: waveNumber, Count: len(roster)},
	})
	return wave
}

// Update releases pending roster entries on the spawn timer.
func (s *WaveSystem) Update(deltaTime float64) {
	wave := s.ecs.Wave
	if wave == nil || len(wave.Pending) == 0 {
		return
	}
	wave.SpawnTimer += deltaTime
	if wave.SpawnTimer >= wave.SpawnInterval {
		s.release(wave)
		wave.SpawnTimer = 0
	}
}

// PendingCount is the number of roster entries not yet in the field.
func (s *WaveSystem) PendingCount() int {
	if s.ecs.Wave == nil {
		return 0
	}
	return len(s.ecs.Wave.Pending)
}

func (s *WaveSystem) release(wave *component.Wave) {
	entry := wave.Pending[0]
	wave.Pending = wave.Pending[1:]
	s.ecs.AddEnemy(entry, wave.Number)
}
