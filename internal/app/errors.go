package app

import "errors"

var (
	ErrInvalidPlacement  = errors.New("invalid tower placement")
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrUnknownTower      = errors.New("unknown tower")
	ErrWaveInProgress    = errors.New("wave already in progress")
	ErrGameOver          = errors.New("game is over")
)
