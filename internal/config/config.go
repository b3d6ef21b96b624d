// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth  = 1200
	ScreenHeight = 900
	MaxDeltaTime = 0.06 // clamp for a single frame, seconds
	FixedStep    = 1.0 / 60.0

	ClickCooldown    = 300 // ms
	IndicatorOffsetX = 30
	IndicatorRadius  = 10.0

	EnemyRadius      = 9.0
	TowerRadius      = 12.0
	TowerStrokeWidth = 2.0
	ProjectileRadius = 4.0
	PathWidth        = 22.0

	SpeedButtonOffsetX = 80
	SpeedButtonY       = 30
	SpeedButtonSize    = 18.0

	HighScoreLimit = 10
	AppName        = "go_tactical_defense"
)

// Speed multipliers cycled by the speed button.
var SpeedMultipliers = []float64{1, 2, 4}

var (
	BackgroundColor  = color.RGBA{20, 20, 30, 255}
	PathColor        = color.RGBA{70, 100, 120, 220}
	PathEdgeColor    = color.RGBA{110, 140, 160, 255}
	EntryColor       = color.RGBA{0, 255, 0, 255}
	ExitColor        = color.RGBA{255, 0, 0, 255}
	TextLightColor   = color.RGBA{240, 240, 240, 255}
	TextDarkColor    = color.RGBA{20, 20, 30, 255}
	IdleStateColor   = color.RGBA{70, 130, 180, 220}
	WaveStateColor   = color.RGBA{220, 60, 60, 220}
	GameOverColor    = color.RGBA{90, 90, 90, 220}
	EnemyColor       = color.RGBA{230, 120, 40, 255}
	DamageFlashColor = color.RGBA{255, 255, 255, 255}
	HealthBarColor   = color.RGBA{50, 205, 50, 255}
	HealthBackColor  = color.RGBA{120, 20, 20, 255}
	TowerStrokeColor = color.RGBA{255, 255, 255, 255}
	LineColor        = color.RGBA{255, 255, 0, 128}
	ProjectileColor  = color.RGBA{255, 215, 0, 255}
	RangeColor       = color.RGBA{255, 255, 255, 40}
	StrokeWidth      = 2.0

	// Indexed by defs.Archetype.
	TowerColors = []color.RGBA{
		{50, 100, 255, 255}, // basic
		{255, 50, 50, 255},  // cannon
		{50, 255, 50, 255},  // sniper
		{180, 50, 230, 255}, // laser
	}
	SpeedButtonColors = []color.Color{
		color.RGBA{70, 130, 180, 220},
		color.RGBA{220, 60, 60, 220},
		color.RGBA{194, 178, 128, 255},
	}
)
