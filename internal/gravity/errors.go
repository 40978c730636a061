package gravity

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidConfig indicates the simulation inputs are unusable:
	// mismatched position/mass lengths, a non-positive mass, a non-positive
	// step size or a negative tick count.
	ErrInvalidConfig = errors.New("gravity: invalid configuration")

	// ErrDegenerateForce indicates two live bodies shared an exact position
	// during a force pass. Collisions merge coincident bodies at the end of
	// the tick that produced them, so this is an internal-consistency
	// failure, not a user error.
	ErrDegenerateForce = errors.New("gravity: zero separation between live bodies")
)

// SimError wraps a failure with the tick that produced it.
type SimError struct {
	Tick    int
	Time    float64
	Wrapped error
}

func (e *SimError) Error() string {
	return fmt.Sprintf("tick %d (t=%.4f): %v", e.Tick, e.Time, e.Wrapped)
}

func (e *SimError) Unwrap() error {
	return e.Wrapped
}
