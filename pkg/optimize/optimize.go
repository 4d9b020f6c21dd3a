package optimize

import (
	"context"
	"fmt"
	"sync"

	"github.com/ecelab/wptopt/pkg/catalog"
	"github.com/ecelab/wptopt/pkg/mathutil"
	"github.com/ecelab/wptopt/pkg/pso"
	"github.com/ecelab/wptopt/pkg/wpt"
)

// Config bundles everything the search needs beyond the physics: the swarm
// controls, the objective weighting and an optional per-candidate trace sink.
type Config struct {
	Swarm   pso.Config
	Weights Weights

	// Trace, when set, receives a formatted line for every candidate
	// evaluation. Useful for detailed-analysis panes and debugging; the
	// optimizer serializes calls, so the sink need not be goroutine safe.
	Trace func(string)
}

// DefaultConfig pairs the default swarm controls with the default weighting.
func DefaultConfig() Config {
	return Config{
		Swarm:   pso.DefaultConfig(),
		Weights: DefaultWeights(),
	}
}

// Progress is the per-iteration report handed to the host's callback.
type Progress struct {
	Iteration int
	Frequency float64
	MOSFET    catalog.MOSFET
	Diode     catalog.Diode
	Fitness   float64
}

// ProgressFunc consumes per-iteration progress. A nil callback is fine.
type ProgressFunc func(Progress)

// Result is the final snapshot of one optimization run.
type Result struct {
	Frequency  float64
	MOSFET     catalog.MOSFET
	Diode      catalog.Diode
	Evaluation wpt.Evaluation
	Fitness    float64
	Iterations int
	Evals      int
	Reason     pso.Reason
}

// Optimize searches the joint {frequency, MOSFET, diode} space for the
// candidate with the lowest weighted loss+cost fitness. All configuration
// problems surface as errors before any particle exists; per-candidate
// infeasibility and numeric breakdowns are absorbed into the fitness
// landscape and never abort the run.
func Optimize(ctx context.Context, cat *catalog.Catalog, params wpt.Params, cfg Config, progress ProgressFunc) (*Result, error) {
	if cat == nil {
		return nil, ErrNilCatalog
	}
	if cat.NumMOSFETs() == 0 || cat.NumDiodes() == 0 {
		return nil, fmt.Errorf("%w: catalog has no records", catalog.ErrEmptyCatalog)
	}
	model, err := wpt.NewModel(params)
	if err != nil {
		return nil, err
	}
	if err := cfg.Weights.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.Swarm.Validate(); err != nil {
		return nil, err
	}

	bounds := []pso.Bound{
		{Min: params.FMin, Max: params.FMax},
		{Min: 0, Max: float64(cat.NumMOSFETs() - 1)},
		{Min: 0, Max: float64(cat.NumDiodes() - 1)},
	}

	var traceMu sync.Mutex
	objective := func(x []float64) float64 {
		f := x[0]
		mos := cat.MOSFET(mathutil.NearestIndex(x[1], cat.NumMOSFETs()))
		dio := cat.Diode(mathutil.NearestIndex(x[2], cat.NumDiodes()))

		e := model.Evaluate(f, mos, dio)
		fit := cfg.Weights.Fitness(e, mos, dio, params.MOSFETCount, params.DiodeCount)

		if cfg.Trace != nil {
			traceMu.Lock()
			cfg.Trace(traceLine(e, mos, dio, fit))
			traceMu.Unlock()
		}
		return fit
	}

	var psoProgress pso.Progress
	if progress != nil {
		psoProgress = func(iter int, best []float64, fitness float64) {
			progress(Progress{
				Iteration: iter,
				Frequency: best[0],
				MOSFET:    cat.MOSFET(mathutil.NearestIndex(best[1], cat.NumMOSFETs())),
				Diode:     cat.Diode(mathutil.NearestIndex(best[2], cat.NumDiodes())),
				Fitness:   fitness,
			})
		}
	}

	run, err := pso.Minimize(ctx, objective, bounds, cfg.Swarm, psoProgress)
	if err != nil {
		return nil, err
	}

	mos := cat.MOSFET(mathutil.NearestIndex(run.Best[1], cat.NumMOSFETs()))
	dio := cat.Diode(mathutil.NearestIndex(run.Best[2], cat.NumDiodes()))
	eval := model.Evaluate(run.Best[0], mos, dio)

	return &Result{
		Frequency:  run.Best[0],
		MOSFET:     mos,
		Diode:      dio,
		Evaluation: eval,
		Fitness:    run.Fitness,
		Iterations: run.Iterations,
		Evals:      run.Evals,
		Reason:     run.Reason,
	}, nil
}

func traceLine(e wpt.Evaluation, mos catalog.MOSFET, dio catalog.Diode, fit float64) string {
	return fmt.Sprintf(
		"f=%.1f Hz mosfet=%s diode=%s loss=%.4f W eff=%.4f feasible=%v fitness=%.4f",
		e.Frequency, mos.Name, dio.Name, e.Total, e.Efficiency, e.Feasible, fit,
	)
}
