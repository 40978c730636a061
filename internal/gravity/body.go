package gravity

import (
	"fmt"
	"math"
)

// Body is a point mass on the 1-D time axis.
type Body struct {
	Position float64
	Mass     float64
	Velocity float64

	// net force for the current tick, rebuilt every force pass
	force float64
}

// dead reports whether the body was flagged for removal by a collision pass.
func (b *Body) dead() bool {
	return math.IsInf(b.Position, -1)
}

func (b *Body) markDead() {
	b.Position = math.Inf(-1)
}

// materialize builds the ordered body set from parallel position and mass
// slices. Velocity and force start at zero.
func materialize(positions, masses []float64) []*Body {
	bodies := make([]*Body, len(positions))
	for i := range positions {
		bodies[i] = &Body{Position: positions[i], Mass: masses[i]}
	}
	return bodies
}

func validateInit(positions, masses []float64) error {
	if len(positions) != len(masses) {
		return fmt.Errorf("%w: %d positions but %d masses", ErrInvalidConfig, len(positions), len(masses))
	}
	for i, m := range masses {
		if m <= 0 {
			return fmt.Errorf("%w: mass %d must be positive, got %g", ErrInvalidConfig, i, m)
		}
	}
	return nil
}
