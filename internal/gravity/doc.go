// Package gravity derives rhythmic onsets from a one-dimensional N-body
// gravitational simulation.
//
// Bodies live on a single axis whose coordinate is read downstream as a time
// offset in milliseconds. Each tick applies three phases in order:
//
//   - force accumulation: full pairwise inverse-square attraction
//   - integration: explicit Euler with a fixed step
//   - collision resolution: adjacent bodies on the same quantized position
//     merge inelastically, shrinking the set
//
// A [Simulation] is built once from initial positions and masses and can be
// replayed; every run materializes a fresh body set, so the same inputs always
// produce the same offsets.
//
// # Thread Safety
//
// Simulation instances are not thread-safe, but two simulations share no
// state and may run concurrently.
package gravity
