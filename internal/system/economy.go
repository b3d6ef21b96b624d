package system

import (
	"go-tactical-defense/internal/config"
	"go-tactical-defense/internal/entity"
	"go-tactical-defense/internal/event"
)

// EconomySystem keeps the ledger. Kill bounties and leak damage are collected
// from events during the tick and applied together in Reconcile.
type EconomySystem struct {
	ecs           *entity.ECS
	pendingBounty int
	pendingLeak   int
}

func NewEconomySystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher) *EconomySystem {
	es := &EconomySystem{ecs: ecs}
	eventDispatcher.Subscribe(event.EnemyKilled, es)
	eventDispatcher.Subscribe(event.EnemyLeaked, es)
	return es
}

// Reset loads the starting balance.
func (s *EconomySystem) Reset(t config.EconomyTuning) {
	s.ecs.Ledger.Money = t.StartingMoney
	s.ecs.Ledger.Lives = t.StartingLives
	s.ecs.Ledger.Score = 0
	s.ecs.Ledger.Level = 1
	s.pendingBounty = 0
	s.pendingLeak = 0
}

func (s *EconomySystem) OnEvent(e event.Event) {
	switch e.Type {
	case event.EnemyKilled:
		if d, ok := e.Data.(event.EnemyKilledData); ok {
			s.pendingBounty += d.Bounty
		}
	case event.EnemyLeaked:
		if d, ok := e.Data.(event.EnemyLeakedData); ok {
			s.pendingLeak += d.Damage
		}
	}
}

// Reconcile applies the bounties and leak damage gathered this tick.
// Lives never drop below zero.
func (s *EconomySystem) Reconcile() {
	ledger := s.ecs.Ledger
	ledger.Money += float64(s.pendingBounty)
	ledger.Score += s.pendingBounty
	ledger.Lives -= s.pendingLeak
	if ledger.Lives < 0 {
		ledger.Lives = 0
	}
	s.pendingBounty = 0
	s.pendingLeak = 0
}

func (s *EconomySystem) CanAfford(amount float64) bool {
	return s.ecs.Ledger.Money >= amount
}

// Spend deducts amount if the ledger covers it.
func (s *EconomySystem) Spend(amount float64) bool {
	if amount < 0 || !s.CanAfford(amount) {
		return false
	}
	s.ecs.Ledger.Money -= amount
	return true
}

func (s *EconomySystem) Credit(amount float64) {
	if amount > 0 {
		s.ecs.Ledger.Money += amount
	}
}

// AwardBonus adds a wave completion bonus to money and score.
func (s *EconomySystem) AwardBonus(bonus int) {
	s.ecs.Ledger.Money += float64(bonus)
	s.ecs.Ledger.Score += bonus
}
