package gravity

import (
	"math"
	"testing"
)

func TestMergeConservesMomentum(t *testing.T) {
	a := &Body{Position: 1.0, Mass: 2, Velocity: 3}
	b := &Body{Position: 1.4, Mass: 4, Velocity: -1}

	live := resolveCollisions([]*Body{a, b})

	if len(live) != 1 {
		t.Fatalf("expected 1 survivor, got %d", len(live))
	}
	want := (2.0*3.0 + 4.0*(-1.0)) / (2.0 + 4.0)
	if math.Abs(live[0].Velocity-want) > 1e-12 {
		t.Errorf("merged velocity = %g, want %g", live[0].Velocity, want)
	}
}

func TestMergeKeepsSurvivorMass(t *testing.T) {
	a := &Body{Position: 0, Mass: 500, Velocity: 1}
	b := &Body{Position: 0.5, Mass: 700, Velocity: -1}

	live := resolveCollisions([]*Body{a, b})

	if len(live) != 1 {
		t.Fatalf("expected 1 survivor, got %d", len(live))
	}
	// The merge intentionally combines only velocity, never mass.
	if live[0].Mass != 500 {
		t.Errorf("survivor mass = %g, want 500 (unmerged)", live[0].Mass)
	}
}

func TestTrailingBodySurvives(t *testing.T) {
	a := &Body{Position: 0, Mass: 1}
	b := &Body{Position: 1, Mass: 2}

	live := resolveCollisions([]*Body{a, b})

	if len(live) != 1 {
		t.Fatalf("expected 1 survivor, got %d", len(live))
	}
	if live[0] != a {
		t.Error("expected the trailing body to survive the merge")
	}
}

func TestAdjacentOnlyScan(t *testing.T) {
	// First and third share a bucket but are not adjacent in list order,
	// so no merge happens. Pinned behavior: the scan never re-sorts.
	bodies := []*Body{
		{Position: 0, Mass: 1},
		{Position: 10, Mass: 1},
		{Position: 1, Mass: 1},
	}

	live := resolveCollisions(bodies)

	if len(live) != 3 {
		t.Errorf("expected 3 bodies (adjacent-only scan), got %d", len(live))
	}
}

func TestPassSkipsDeadBodies(t *testing.T) {
	// All three land in bucket 0. The middle body dies against the first,
	// then the third pairs with the first (not the dead middle) in the same
	// pass.
	bodies := []*Body{
		{Position: 0, Mass: 1, Velocity: 3},
		{Position: 0.5, Mass: 1, Velocity: 0},
		{Position: 1.0, Mass: 1, Velocity: -3},
	}

	live := resolveCollisions(bodies)

	if len(live) != 1 {
		t.Fatalf("expected 1 survivor, got %d", len(live))
	}
	want := ((3.0+0.0)/2.0 + -3.0) / 2.0
	if math.Abs(live[0].Velocity-want) > 1e-12 {
		t.Errorf("cascaded merge velocity = %g, want %g", live[0].Velocity, want)
	}
}

func TestNoCollisionAcrossBuckets(t *testing.T) {
	tests := []struct {
		name   string
		p1, p2 float64
		merged bool
	}{
		{"same bucket", 0, 1, true},
		{"bucket boundary", 1, 2, false}, // round(1/3)=0, round(2/3)=1
		{"far apart", 0, 300, false},
		{"negative same bucket", -1, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bodies := []*Body{
				{Position: tt.p1, Mass: 1},
				{Position: tt.p2, Mass: 1},
			}
			live := resolveCollisions(bodies)
			if merged := len(live) == 1; merged != tt.merged {
				t.Errorf("positions %g,%g: merged = %v, want %v", tt.p1, tt.p2, merged, tt.merged)
			}
		})
	}
}
