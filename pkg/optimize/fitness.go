package optimize

import (
	"fmt"

	"github.com/ecelab/wptopt/pkg/catalog"
	"github.com/ecelab/wptopt/pkg/wpt"
)

// degeneratePenalty is the fitness assigned to candidates whose loss
// arithmetic broke down. Large enough to lose against every real candidate,
// finite so best-of comparisons stay ordered.
const degeneratePenalty = 1e12

// Weights blends total loss and component cost into the scalar objective,
// and shapes the penalty applied to infeasible candidates.
type Weights struct {
	Loss      float64 // weight on total loss (W)
	Cost      float64 // weight on component cost
	CostScale float64 // currency units mapped to one objective unit

	PenaltyBase float64 // flat surcharge once any rating is violated
	PenaltyGain float64 // surcharge per unit of relative violation
}

// DefaultWeights is the even loss/cost blend with prices normalized by 20
// currency units.
func DefaultWeights() Weights {
	return Weights{
		Loss:        0.5,
		Cost:        0.5,
		CostScale:   20,
		PenaltyBase: 1e3,
		PenaltyGain: 1e3,
	}
}

// Validate rejects weightings that would make the objective meaningless.
func (w Weights) Validate() error {
	if w.Loss < 0 || w.Cost < 0 {
		return fmt.Errorf("%w: negative weight", ErrBadWeights)
	}
	if w.Loss == 0 && w.Cost == 0 {
		return fmt.Errorf("%w: loss and cost both zero", ErrBadWeights)
	}
	if w.CostScale <= 0 {
		return fmt.Errorf("%w: cost scale %g", ErrBadWeights, w.CostScale)
	}
	if w.PenaltyBase <= 0 || w.PenaltyGain <= 0 {
		return fmt.Errorf("%w: penalties must be > 0", ErrBadWeights)
	}
	return nil
}

// Fitness reduces one evaluation plus component prices to the scalar being
// minimized. Same inputs always produce the same value.
func (w Weights) Fitness(e wpt.Evaluation, mos catalog.MOSFET, dio catalog.Diode, mosCount, dioCount int) float64 {
	if e.Degenerate {
		return degeneratePenalty
	}

	cost := mos.Price*float64(mosCount) + dio.Price*float64(dioCount)
	fit := w.Loss*e.Total + w.Cost*cost/w.CostScale
	if !e.Feasible {
		fit += w.PenaltyBase + w.PenaltyGain*e.Violation
	}
	return fit
}
