package gravity

import (
	"context"
	"fmt"
)

// DefaultDt is the fixed step size used when a caller does not choose one.
const DefaultDt = 20.0

// Config fixes the tick budget and step size of one run.
type Config struct {
	Ticks int
	Dt    float64
}

func DefaultConfig() Config {
	return Config{Ticks: 100, Dt: DefaultDt}
}

// BodyState is the read-only view of one body inside a snapshot.
type BodyState struct {
	Position float64
	Mass     float64
}

// Snapshot is the per-tick view handed to observers and traced-mode
// consumers. Tick 0 is the freshly materialized initial set.
type Snapshot struct {
	Tick   int
	Time   float64
	Bodies []BodyState
}

// Observer receives a snapshot after every tick of a batch run.
type Observer interface {
	OnTick(snap Snapshot)
}

// Result is the terminal state of a batch run. Offsets holds the surviving
// bodies' positions in list order; an empty slice is a defined outcome, not
// an error.
type Result struct {
	Offsets   []float64
	Ticks     int
	Survivors int
}

// Simulation owns one initial configuration. Every run materializes a fresh
// body set from it, so runs are independent and replayable.
type Simulation struct {
	initPositions []float64
	initMasses    []float64
	observers     []Observer
}

// New validates the initial configuration and returns a Simulation for it.
func New(positions, masses []float64) (*Simulation, error) {
	if err := validateInit(positions, masses); err != nil {
		return nil, err
	}
	s := &Simulation{
		initPositions: make([]float64, len(positions)),
		initMasses:    make([]float64, len(masses)),
	}
	copy(s.initPositions, positions)
	copy(s.initMasses, masses)
	return s, nil
}

func (s *Simulation) AddObserver(o Observer) {
	s.observers = append(s.observers, o)
}

func validateConfig(cfg Config) error {
	if cfg.Dt <= 0 {
		return fmt.Errorf("%w: dt must be positive, got %g", ErrInvalidConfig, cfg.Dt)
	}
	if cfg.Ticks < 0 {
		return fmt.Errorf("%w: ticks must be non-negative, got %d", ErrInvalidConfig, cfg.Ticks)
	}
	return nil
}

// Run executes batch mode: tick 0 materializes the body set, then exactly
// cfg.Ticks force/integrate/collide ticks follow. It never stops early on
// body-count collapse; a set that merges down to one (or zero) simply idles
// through the remaining ticks.
func (s *Simulation) Run(ctx context.Context, cfg Config) (*Result, error) {
	if err := validateConfig(cfg); err != nil {
		return nil, err
	}

	bodies := materialize(s.initPositions, s.initMasses)
	s.notify(0, 0, bodies)

	for tick := 1; tick <= cfg.Ticks; tick++ {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		var err error
		if bodies, err = s.advance(bodies, tick, cfg.Dt); err != nil {
			return nil, err
		}
		s.notify(tick, float64(tick)*cfg.Dt, bodies)
	}

	offsets := make([]float64, len(bodies))
	for i, b := range bodies {
		offsets[i] = b.Position
	}
	return &Result{Offsets: offsets, Ticks: cfg.Ticks, Survivors: len(bodies)}, nil
}

// RunTraced executes the same tick progression as Run but stops early once
// fewer than two bodies remain, and hands every tick's snapshot to fn. A
// false return from fn ends the run. The core owns no I/O; rendering is the
// caller's concern.
func (s *Simulation) RunTraced(ctx context.Context, cfg Config, fn func(Snapshot) bool) error {
	if err := validateConfig(cfg); err != nil {
		return err
	}

	bodies := materialize(s.initPositions, s.initMasses)
	if !fn(snapshotOf(0, 0, bodies)) {
		return nil
	}

	for tick := 1; tick <= cfg.Ticks && len(bodies) >= 2; tick++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		var err error
		if bodies, err = s.advance(bodies, tick, cfg.Dt); err != nil {
			return err
		}
		if !fn(snapshotOf(tick, float64(tick)*cfg.Dt, bodies)) {
			return nil
		}
	}
	return nil
}

// advance is one physics tick: forces over the full set, simultaneous Euler
// update, then collision resolution on the just-updated positions.
func (s *Simulation) advance(bodies []*Body, tick int, dt float64) ([]*Body, error) {
	if err := accumulateForces(bodies); err != nil {
		return nil, &SimError{Tick: tick, Time: float64(tick) * dt, Wrapped: err}
	}
	step(bodies, dt)
	return resolveCollisions(bodies), nil
}

func (s *Simulation) notify(tick int, t float64, bodies []*Body) {
	if len(s.observers) == 0 {
		return
	}
	snap := snapshotOf(tick, t, bodies)
	for _, o := range s.observers {
		o.OnTick(snap)
	}
}

func snapshotOf(tick int, t float64, bodies []*Body) Snapshot {
	states := make([]BodyState, len(bodies))
	for i, b := range bodies {
		states[i] = BodyState{Position: b.Position, Mass: b.Mass}
	}
	return Snapshot{Tick: tick, Time: t, Bodies: states}
}
