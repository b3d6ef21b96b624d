// internal/component/visual.go
package component

// DamageFlash marks an entity to be drawn in the hit color.
type DamageFlash struct {
	Timer    float64 // remaining seconds
	Duration float64
}
