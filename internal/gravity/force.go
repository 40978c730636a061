package gravity

import "fmt"

// G is the gravitational constant used by the force model.
const G = 6.67398e-11

// accumulateForces rebuilds every body's net force as the signed sum of
// pairwise attraction toward each other body: F = G*m1*m2/r^2, positive when
// the other body sits at a greater position. O(n^2) over the full set, not
// just neighbors.
func accumulateForces(bodies []*Body) error {
	for _, b := range bodies {
		b.force = 0
	}
	for i, a := range bodies {
		for j, b := range bodies {
			if i == j {
				continue
			}
			r := b.Position - a.Position
			if r == 0 {
				return fmt.Errorf("bodies %d and %d coincide at %g: %w", i, j, a.Position, ErrDegenerateForce)
			}
			f := G * a.Mass * b.Mass / (r * r)
			if r > 0 {
				a.force += f
			} else {
				a.force -= f
			}
		}
	}
	return nil
}
