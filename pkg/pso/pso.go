package pso

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"sync"
	"time"
)

// Objective is the function being minimized. Implementations must be safe for
// concurrent calls and should return +Inf (never NaN) for unusable points;
// NaN results are coerced to +Inf.
type Objective func(x []float64) float64

// Progress is invoked after every iteration with the current global best.
// The position slice is a copy the callback may keep.
type Progress func(iter int, best []float64, fitness float64)

// Bound is the closed search interval for one dimension. Min == Max pins the
// dimension to a single value.
type Bound struct {
	Min float64
	Max float64
}

// Reason records why a run terminated.
type Reason int

const (
	ReasonConverged Reason = iota
	ReasonMaxIterations
	ReasonCancelled
)

func (r Reason) String() string {
	switch r {
	case ReasonConverged:
		return "converged"
	case ReasonMaxIterations:
		return "iteration-limit"
	case ReasonCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// Config controls the swarm. Zero-value fields are rejected by Validate;
// start from DefaultConfig and override.
type Config struct {
	SwarmSize     int
	MaxIterations int

	// MinStep is the smallest global-best improvement that still counts as
	// progress; StallWindow consecutive iterations below it terminate the
	// run. MinStep 0 disables early convergence.
	MinStep     float64
	StallWindow int

	Inertia   float64
	Cognitive float64
	Social    float64

	// Workers > 1 evaluates particles concurrently within an iteration.
	Workers int

	// Seed 0 seeds from the clock.
	Seed int64
}

// DefaultConfig returns the conventional swarm coefficients.
func DefaultConfig() Config {
	return Config{
		SwarmSize:     20,
		MaxIterations: 100,
		MinStep:       1e-8,
		StallWindow:   10,
		Inertia:       0.6,
		Cognitive:     0.5,
		Social:        0.5,
		Workers:       1,
	}
}

// Validate checks the configuration before any swarm state is built.
func (c Config) Validate() error {
	if c.SwarmSize < 1 {
		return fmt.Errorf("%w: swarm size %d", ErrBadConfig, c.SwarmSize)
	}
	if c.MaxIterations < 1 {
		return fmt.Errorf("%w: max iterations %d", ErrBadConfig, c.MaxIterations)
	}
	if c.MinStep < 0 || math.IsNaN(c.MinStep) {
		return fmt.Errorf("%w: min step %g", ErrBadConfig, c.MinStep)
	}
	if c.StallWindow < 1 {
		return fmt.Errorf("%w: stall window %d", ErrBadConfig, c.StallWindow)
	}
	if c.Inertia < 0 || c.Cognitive < 0 || c.Social < 0 {
		return fmt.Errorf("%w: negative weight", ErrBadConfig)
	}
	if c.Workers < 1 {
		return fmt.Errorf("%w: workers %d", ErrBadConfig, c.Workers)
	}
	return nil
}

// Result is the outcome of one Minimize run.
type Result struct {
	Best       []float64
	Fitness    float64
	Iterations int
	Evals      int
	Reason     Reason
}

type particle struct {
	pos []float64
	vel []float64
	fit float64

	bestPos []float64
	bestFit float64
}

// swarm is the whole population plus the global best. It is owned by exactly
// one Minimize call.
type swarm struct {
	particles []*particle
	bestPos   []float64
	bestFit   float64
	evals     int
}

// Minimize runs particle-swarm minimization of obj over the boxed space
// described by bounds. It returns the best point found, with Reason
// explaining which stop condition fired. Cancellation through ctx is
// cooperative, checked once per iteration, and still yields the best point
// seen so far.
func Minimize(ctx context.Context, obj Objective, bounds []Bound, cfg Config, progress Progress) (*Result, error) {
	if obj == nil {
		return nil, ErrNoObjective
	}
	if ctx == nil {
		ctx = context.Background()
	}
	if len(bounds) == 0 {
		return nil, fmt.Errorf("%w: no dimensions", ErrBadBounds)
	}
	for i, b := range bounds {
		if b.Min > b.Max || math.IsNaN(b.Min) || math.IsNaN(b.Max) {
			return nil, fmt.Errorf("%w: dimension %d [%g, %g]", ErrBadBounds, i, b.Min, b.Max)
		}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	s := newSwarm(rng, bounds, cfg.SwarmSize)
	s.evaluate(obj, cfg.Workers)
	s.initBests()

	res := &Result{Reason: ReasonMaxIterations}
	stall := 0

	for iter := 1; iter <= cfg.MaxIterations; iter++ {
		if ctx.Err() != nil {
			res.Reason = ReasonCancelled
			break
		}

		prevBest := s.bestFit
		s.move(rng, bounds, cfg)
		s.evaluate(obj, cfg.Workers)
		s.adoptBests()
		res.Iterations = iter

		if progress != nil {
			progress(iter, append([]float64(nil), s.bestPos...), s.bestFit)
		}

		if improvement := prevBest - s.bestFit; improvement < cfg.MinStep {
			stall++
		} else {
			stall = 0
		}
		if stall >= cfg.StallWindow {
			res.Reason = ReasonConverged
			break
		}
	}

	res.Best = append([]float64(nil), s.bestPos...)
	res.Fitness = s.bestFit
	res.Evals = s.evals
	return res, nil
}

func newSwarm(rng *rand.Rand, bounds []Bound, n int) *swarm {
	dims := len(bounds)
	s := &swarm{
		particles: make([]*particle, n),
		bestFit:   math.Inf(1),
	}
	for i := range s.particles {
		p := &particle{
			pos:     make([]float64, dims),
			vel:     make([]float64, dims),
			bestPos: make([]float64, dims),
			bestFit: math.Inf(1),
		}
		for d, b := range bounds {
			p.pos[d] = b.Min + rng.Float64()*(b.Max-b.Min)
		}
		s.particles[i] = p
	}
	return s
}

// evaluate fills every particle's current fitness, fanning out across
// workers when asked to. Particles are independent within one iteration, so
// the split is safe and the merge in adoptBests stays deterministic.
func (s *swarm) evaluate(obj Objective, workers int) {
	s.evals += len(s.particles)

	if workers <= 1 || len(s.particles) < 2 {
		for _, p := range s.particles {
			p.fit = sanitize(obj(p.pos))
		}
		return
	}

	var wg sync.WaitGroup
	work := make(chan *particle)
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for p := range work {
				p.fit = sanitize(obj(p.pos))
			}
		}()
	}
	for _, p := range s.particles {
		work <- p
	}
	close(work)
	wg.Wait()
}

// initBests seeds every particle's personal best from its initial position
// and picks the global best among them, even when all fitnesses are +Inf.
func (s *swarm) initBests() {
	for _, p := range s.particles {
		p.bestFit = p.fit
		copy(p.bestPos, p.pos)
	}
	best := s.particles[0]
	for _, p := range s.particles[1:] {
		if p.bestFit < best.bestFit {
			best = p
		}
	}
	s.bestFit = best.bestFit
	s.bestPos = append([]float64(nil), best.bestPos...)
}

// adoptBests folds fresh fitness values into personal and global bests.
func (s *swarm) adoptBests() {
	for _, p := range s.particles {
		if p.fit < p.bestFit {
			p.bestFit = p.fit
			copy(p.bestPos, p.pos)
		}
		if p.bestFit < s.bestFit {
			s.bestFit = p.bestFit
			s.bestPos = append(s.bestPos[:0], p.bestPos...)
		}
	}
}

// move applies the inertia/cognitive/social velocity rule and clamps the new
// position to bounds. A clamped dimension has its velocity zeroed so the
// particle does not keep pressing against the wall.
func (s *swarm) move(rng *rand.Rand, bounds []Bound, cfg Config) {
	for _, p := range s.particles {
		r1 := rng.Float64()
		r2 := rng.Float64()
		for d := range p.pos {
			p.vel[d] = cfg.Inertia*p.vel[d] +
				cfg.Cognitive*r1*(p.bestPos[d]-p.pos[d]) +
				cfg.Social*r2*(s.bestPos[d]-p.pos[d])
			p.pos[d] += p.vel[d]

			if b := bounds[d]; p.pos[d] < b.Min {
				p.pos[d] = b.Min
				p.vel[d] = 0
			} else if p.pos[d] > b.Max {
				p.pos[d] = b.Max
				p.vel[d] = 0
			}
		}
	}
}

func sanitize(f float64) float64 {
	if math.IsNaN(f) {
		return math.Inf(1)
	}
	return f
}
