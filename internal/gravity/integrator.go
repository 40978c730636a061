package gravity

// step advances every body by dt with an explicit Euler update. The position
// update reads the velocity from before this tick, so the pass is effectively
// simultaneous across the set. No clamping: callers own step-size stability.
func step(bodies []*Body, dt float64) {
	for _, b := range bodies {
		b.Position += b.Velocity * dt
		b.Velocity += b.force / b.Mass * dt
	}
}
