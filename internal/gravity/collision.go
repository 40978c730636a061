package gravity

import "math"

// Quantum is the spatial bucket width for coincidence detection: two adjacent
// bodies have collided when their positions round to the same multiple of it.
const Quantum = 3.0

func bucket(pos float64) int64 {
	return int64(math.Round(pos / Quantum))
}

// resolveCollisions scans adjacent pairs strictly left to right over the
// pre-removal list and merges coincident ones. The trailing body survives
// with the momentum-conserving combined velocity; the leading body is flagged
// dead and skipped when forming later pairs in the same pass. The survivor's
// mass is deliberately left unchanged. Compaction happens only after the full
// pass, so indices never shift under the scan.
func resolveCollisions(bodies []*Body) []*Body {
	if len(bodies) < 2 {
		return bodies
	}

	prev := 0
	for cur := 1; cur < len(bodies); cur++ {
		a, b := bodies[prev], bodies[cur]
		if bucket(a.Position) == bucket(b.Position) {
			a.Velocity = (a.Mass*a.Velocity + b.Mass*b.Velocity) / (a.Mass + b.Mass)
			b.markDead()
			continue
		}
		prev = cur
	}

	live := bodies[:0]
	for _, b := range bodies {
		if !b.dead() {
			live = append(live, b)
		}
	}
	return live
}
