package gravity

import (
	"errors"
	"math"
	"testing"
)

func TestTwoBodyForcesEqualOpposite(t *testing.T) {
	a := &Body{Position: 0, Mass: 500000}
	b := &Body{Position: 300, Mass: 500000}
	bodies := []*Body{a, b}

	if err := accumulateForces(bodies); err != nil {
		t.Fatalf("accumulateForces failed: %v", err)
	}

	want := G * a.Mass * b.Mass / (300.0 * 300.0)
	if math.Abs(a.force-want) > 1e-18 {
		t.Errorf("force on a = %g, want %g", a.force, want)
	}
	if a.force != -b.force {
		t.Errorf("forces not equal and opposite: %g vs %g", a.force, b.force)
	}

	// Both accelerate toward each other on the first step.
	step(bodies, 20)
	if a.Velocity <= 0 {
		t.Errorf("left body should accelerate right, velocity = %g", a.Velocity)
	}
	if b.Velocity >= 0 {
		t.Errorf("right body should accelerate left, velocity = %g", b.Velocity)
	}
}

func TestNetForceSumsAllPairs(t *testing.T) {
	// The middle body is pulled both ways; with symmetric neighbors the net
	// force cancels exactly.
	bodies := []*Body{
		{Position: -100, Mass: 1000},
		{Position: 0, Mass: 1},
		{Position: 100, Mass: 1000},
	}

	if err := accumulateForces(bodies); err != nil {
		t.Fatalf("accumulateForces failed: %v", err)
	}

	if bodies[1].force != 0 {
		t.Errorf("middle body net force = %g, want 0", bodies[1].force)
	}
	if bodies[0].force <= 0 || bodies[2].force >= 0 {
		t.Errorf("outer bodies should be pulled inward: %g, %g", bodies[0].force, bodies[2].force)
	}
}

func TestZeroSeparationIsDegenerate(t *testing.T) {
	bodies := []*Body{
		{Position: 5, Mass: 1},
		{Position: 5, Mass: 1},
	}

	err := accumulateForces(bodies)
	if !errors.Is(err, ErrDegenerateForce) {
		t.Errorf("expected ErrDegenerateForce, got %v", err)
	}
}

func TestIntegratorUsesPreUpdateVelocity(t *testing.T) {
	b := &Body{Position: 10, Mass: 2, Velocity: 3}
	b.force = 4

	step([]*Body{b}, 20)

	// Position moves by the old velocity; only then does velocity pick up
	// this tick's acceleration.
	if b.Position != 10+3*20 {
		t.Errorf("position = %g, want %g", b.Position, 10.0+3*20)
	}
	if b.Velocity != 3+4.0/2*20 {
		t.Errorf("velocity = %g, want %g", b.Velocity, 3+4.0/2*20)
	}
}
