// component/tower.go
package component

import (
	"go-tactical-defense/internal/defs"
	"go-tactical-defense/internal/types"
)

type Tower struct {
	Archetype    defs.Archetype
	Level        int            // starts at 1
	UpgradeSpent float64        // sum of every upgrade cost paid
	TargetID     types.EntityID // display-only, NoEntity when nothing is in range
}
