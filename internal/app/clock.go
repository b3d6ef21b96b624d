// internal/app/clock.go
package app

import "go-tactical-defense/internal/config"

// Clock turns variable frame deltas into fixed simulation steps.
type Clock struct {
	step        float64
	maxFrame    float64
	accumulator float64
	speedIndex  int
	paused      bool
	stopped     bool
}

func NewClock() *Clock {
	return &Clock{step: config.FixedStep, maxFrame: config.MaxDeltaTime}
}

// Advance consumes one frame of wall-clock time and returns how many fixed steps
// the simulation should run. A long frame is clamped to maxFrame before scaling.
func (c *Clock) Advance(frameDelta float64) int {
	if c.stopped || c.paused || frameDelta <= 0 {
		return 0
	}
	if frameDelta > c.maxFrame {
		frameDelta = c.maxFrame
	}
	c.accumulator += frameDelta * c.Speed()

	steps := 0
	for c.accumulator >= c.step {
		c.accumulator -= c.step
		steps++
	}
	return steps
}

func (c *Clock) Step() float64 { return c.step }

// Speed is the current multiplier from config.SpeedMultipliers.
func (c *Clock) Speed() float64 {
	return config.SpeedMultipliers[c.speedIndex]
}

func (c *Clock) SpeedIndex() int { return c.speedIndex }

// CycleSpeed switches to the next multiplier, wrapping around.
func (c *Clock) CycleSpeed() float64 {
	c.speedIndex = (c.speedIndex + 1) % len(config.SpeedMultipliers)
	return c.Speed()
}

func (c *Clock) TogglePause() bool {
	c.paused = !c.paused
	return c.paused
}

func (c *Clock) Paused() bool { return c.paused }

// Stop halts the clock for good.
func (c *Clock) Stop() {
	c.stopped = true
	c.accumulator = 0
}

func (c *Clock) Stopped() bool { return c.stopped }
