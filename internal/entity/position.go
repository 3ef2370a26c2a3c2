// Package entity defines the actors placed on the arena: the player, pursuing
// enemies, walls and the collectible.
package entity

import (
	"math/rand"

	"github.com/vovakirdan/tui-chase/internal/core"
)

// Positioner is implemented by every placed entity. Simulation code moves
// entities only through this interface.
type Positioner[N core.Number] interface {
	Position() core.Point2D[N]
	SetPosition(p core.Point2D[N])
}

// SetRandomPosition draws x and y independently from the half-open ranges
// and commits the result through SetPosition.
func SetRandomPosition[N core.Number](p Positioner[N], rng *rand.Rand, xr, yr core.Range[N]) {
	p.SetPosition(core.NewPoint(xr.Sample(rng), yr.Sample(rng)))
}

// Compile-time checks that all entities implement Positioner.
var (
	_ Positioner[float64] = (*Player)(nil)
	_ Positioner[float64] = (*Enemy)(nil)
	_ Positioner[uint16]  = (*Wall)(nil)
	_ Positioner[uint16]  = (*Collectible)(nil)
)
