package app

import (
	"testing"

	"go-tactical-defense/internal/config"
)

func TestClockFixedSteps(t *testing.T) {
	c := NewClock()
	if n := c.Advance(config.FixedStep / 2); n != 0 {
		t.Fatalf("half a step produced %d steps", n)
	}
	if n := c.Advance(config.FixedStep / 2); n != 1 {
		t.Fatalf("expected the accumulated step, got %d", n)
	}
	if n := c.Advance(10); n != 3 {
		t.Fatalf("long frame should be clamped to 3 steps, got %d", n)
	}
}

func TestClockSpeedCycle(t *testing.T) {
	c := NewClock()
	want := []float64{2, 4, 1}
	for _, w := range want {
		if got := c.CycleSpeed(); got != w {
			t.Fatalf("CycleSpeed = %v, want %v", got, w)
		}
	}
	c.CycleSpeed()
	c.CycleSpeed() // x4
	if n := c.Advance(config.FixedStep * 1.1); n != 4 {
		t.Fatalf("x4 should run 4 steps per frame step, got %d", n)
	}
}

func TestClockPauseAndStop(t *testing.T) {
	c := NewClock()
	if !c.TogglePause() {
		t.Fatalf("first toggle should pause")
	}
	if n := c.Advance(0.05); n != 0 {
		t.Fatalf("paused clock produced %d steps", n)
	}
	c.TogglePause()
	c.Stop()
	if n := c.Advance(0.05); n != 0 || !c.Stopped() {
		t.Fatalf("stopped clock produced %d steps", n)
	}
}
