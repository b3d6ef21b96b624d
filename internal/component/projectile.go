// internal/component/projectile.go
package component

import "go-tactical-defense/internal/types"

// Projectile is a homing shot in flight.
type Projectile struct {
	SourceID  types.EntityID // tower that fired it, may no longer exist
	TargetID  types.EntityID
	TargetPos Position // last resolved target position
	Speed     float64
	Damage    float64
	Active    bool
}
