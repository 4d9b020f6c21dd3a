package main

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"syscall"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/xuri/excelize/v2"

	"github.com/ecelab/wptopt/pkg/catalog"
	"github.com/ecelab/wptopt/pkg/optimize"
	"github.com/ecelab/wptopt/pkg/types"
	"github.com/ecelab/wptopt/pkg/wpt"
)

type opts struct {
	// inputs
	mosfetPath string
	diodePath  string

	// swarm overrides (flags win over the parameter file)
	swarmSize int
	maxIter   int
	minStep   float64
	inertia   float64
	cognitive float64
	social    float64
	workers   int
	seed      int64

	// objective weighting
	lossWeight  float64
	costWeight  float64
	costScale   float64
	penaltyBase float64
	penaltyGain float64

	// outputs
	csvPath  string
	jsonPath string
	xlsxPath string

	progressEvery int
	trace         bool
	quiet         bool
}

// row is one per-iteration history entry kept for export.
type row struct {
	Iteration int     `json:"iteration"`
	Frequency float64 `json:"frequency_hz"`
	MOSFET    string  `json:"mosfet"`
	Diode     string  `json:"diode"`
	Fitness   float64 `json:"fitness"`
}

func main() {
	var o opts

	root := &cobra.Command{
		Use:   "wptopt PARAMS_FILE",
		Short: "Wireless power transfer operating-point optimizer",
		Long: `wptopt searches a wireless power transfer converter's operating space —
switching frequency plus a MOSFET/diode pair from component catalogs — for
the point with the lowest weighted loss and cost, using particle-swarm
optimization over a physical loss model.

PARAMS_FILE supplies the system parameters (coil geometry, coupling, load,
operating stresses, frequency bounds) as .xlsx or .yaml; component catalogs
are xlsx workbooks, one row per part.

Examples:
  wptopt input_values.xlsx --mosfets mosfet_database.xlsx --diodes diode_database.xlsx
  wptopt params.yaml --mosfets mosfets.xlsx --diodes diodes.xlsx --xlsx result.xlsx --seed 1`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, o, args[0])
		},
	}

	root.Flags().StringVar(&o.mosfetPath, "mosfets", "mosfet_database.xlsx", "MOSFET catalog workbook")
	root.Flags().StringVar(&o.diodePath, "diodes", "diode_database.xlsx", "diode catalog workbook")

	root.Flags().IntVar(&o.swarmSize, "swarm-size", 20, "number of particles")
	root.Flags().IntVar(&o.maxIter, "max-iterations", 100, "iteration cap")
	root.Flags().Float64Var(&o.minStep, "min-step", 1e-8, "global-best improvement below which the run counts as stalled (0 disables)")
	root.Flags().Float64Var(&o.inertia, "inertia", 0.6, "velocity inertia weight")
	root.Flags().Float64Var(&o.cognitive, "cognitive", 0.5, "pull toward a particle's own best")
	root.Flags().Float64Var(&o.social, "social", 0.5, "pull toward the swarm's best")
	root.Flags().IntVar(&o.workers, "workers", 1, "parallel evaluation goroutines")
	root.Flags().Int64Var(&o.seed, "seed", 0, "random seed (0 = time-based)")

	root.Flags().Float64Var(&o.lossWeight, "loss-weight", 0.5, "objective weight on total loss")
	root.Flags().Float64Var(&o.costWeight, "cost-weight", 0.5, "objective weight on component cost")
	root.Flags().Float64Var(&o.costScale, "cost-scale", 20, "currency units per objective unit")
	root.Flags().Float64Var(&o.penaltyBase, "penalty-base", 1e3, "flat penalty for rating violations")
	root.Flags().Float64Var(&o.penaltyGain, "penalty-gain", 1e3, "penalty per unit of relative violation")

	root.Flags().StringVar(&o.csvPath, "csv", "", "write per-iteration history to CSV file")
	root.Flags().StringVar(&o.jsonPath, "json", "", "write per-iteration history to JSON file")
	root.Flags().StringVar(&o.xlsxPath, "xlsx", "", "write summary, breakdown and history to an xlsx workbook")

	root.Flags().IntVar(&o.progressEvery, "progress-every", 10, "print a progress line every N iterations (0 disables)")
	root.Flags().BoolVar(&o.trace, "trace", false, "print every candidate evaluation (very verbose)")
	root.Flags().BoolVar(&o.quiet, "quiet", false, "suppress progress output")

	if err := root.Execute(); err != nil {
		slog.Error(err.Error())
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, o opts, paramsPath string) error {
	params, fileSwarm, err := wpt.LoadParams(paramsPath)
	if err != nil {
		return err
	}
	cat, err := catalog.Load(o.mosfetPath, o.diodePath)
	if err != nil {
		return err
	}

	cfg := optimize.DefaultConfig()

	// parameter-file swarm settings first, explicit flags on top
	if fileSwarm.Size > 0 {
		cfg.Swarm.SwarmSize = fileSwarm.Size
	}
	if fileSwarm.MaxIterations > 0 {
		cfg.Swarm.MaxIterations = fileSwarm.MaxIterations
	}
	if fileSwarm.MinStep > 0 {
		cfg.Swarm.MinStep = fileSwarm.MinStep
	}
	flagged := cmd.Flags().Changed
	if flagged("swarm-size") {
		cfg.Swarm.SwarmSize = o.swarmSize
	}
	if flagged("max-iterations") {
		cfg.Swarm.MaxIterations = o.maxIter
	}
	if flagged("min-step") {
		cfg.Swarm.MinStep = o.minStep
	}
	cfg.Swarm.Inertia = o.inertia
	cfg.Swarm.Cognitive = o.cognitive
	cfg.Swarm.Social = o.social
	cfg.Swarm.Workers = o.workers
	cfg.Swarm.Seed = o.seed

	cfg.Weights.Loss = o.lossWeight
	cfg.Weights.Cost = o.costWeight
	cfg.Weights.CostScale = o.costScale
	cfg.Weights.PenaltyBase = o.penaltyBase
	cfg.Weights.PenaltyGain = o.penaltyGain

	if o.trace {
		cfg.Trace = func(line string) { fmt.Println(line) }
	}

	if !o.quiet {
		fmt.Printf("wptopt: %d mosfets x %d diodes, f in [%s, %s], %d particles, max %d iterations\n",
			cat.NumMOSFETs(), cat.NumDiodes(),
			types.Hertz(params.FMin).Humanized(), types.Hertz(params.FMax).Humanized(),
			cfg.Swarm.SwarmSize, cfg.Swarm.MaxIterations)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var history []row
	progress := func(p optimize.Progress) {
		history = append(history, row{
			Iteration: p.Iteration,
			Frequency: p.Frequency,
			MOSFET:    p.MOSFET.Name,
			Diode:     p.Diode.Name,
			Fitness:   p.Fitness,
		})
		if !o.quiet && o.progressEvery > 0 && p.Iteration%o.progressEvery == 0 {
			fmt.Printf("\riter=%4d  best f=%s  %s + %s  fitness=%.6f        ",
				p.Iteration, types.Hertz(p.Frequency).Humanized(), p.MOSFET.Name, p.Diode.Name, p.Fitness)
		}
	}

	res, err := optimize.Optimize(ctx, cat, params, cfg, progress)
	if err != nil {
		return err
	}
	if !o.quiet && o.progressEvery > 0 {
		fmt.Println()
	}

	printSummary(res)

	if o.csvPath != "" {
		if err := writeCSV(o.csvPath, history); err != nil {
			slog.Error("write csv", "err", err)
		}
	}
	if o.jsonPath != "" {
		if err := writeJSON(o.jsonPath, history); err != nil {
			slog.Error("write json", "err", err)
		}
	}
	if o.xlsxPath != "" {
		if err := writeXLSX(o.xlsxPath, res, history); err != nil {
			slog.Error("write xlsx", "err", err)
		} else if !o.quiet {
			fmt.Println("xlsx saved:", o.xlsxPath)
		}
	}
	return nil
}

func printSummary(res *optimize.Result) {
	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)

	fmt.Fprintln(tw, "\nRESULT\t")
	fmt.Fprintf(tw, "frequency\t%s\n", types.Hertz(res.Frequency).Humanized())
	fmt.Fprintf(tw, "mosfet\t%s (%.2f ea)\n", res.MOSFET.Name, res.MOSFET.Price)
	fmt.Fprintf(tw, "diode\t%s (%.2f ea)\n", res.Diode.Name, res.Diode.Price)
	fmt.Fprintf(tw, "efficiency\t%.2f %%\n", res.Evaluation.Efficiency*100)
	fmt.Fprintf(tw, "total loss\t%s\n", types.Watts(res.Evaluation.Total).Humanized())
	fmt.Fprintf(tw, "feasible\t%v\n", res.Evaluation.Feasible)
	fmt.Fprintf(tw, "stop reason\t%s\n", res.Reason)
	fmt.Fprintf(tw, "iterations\t%d\n", res.Iterations)
	fmt.Fprintf(tw, "evaluations\t%d\n", res.Evals)

	fmt.Fprintln(tw, "\nLOSS BREAKDOWN\t")
	for _, term := range res.Evaluation.Terms() {
		fmt.Fprintf(tw, "%s\t%s\n", term.Name, types.Watts(term.Watts).Humanized())
	}
	tw.Flush()
}

func writeCSV(path string, history []row) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	if err := w.Write([]string{"iteration", "frequency_hz", "mosfet", "diode", "fitness"}); err != nil {
		return err
	}
	for _, r := range history {
		rec := []string{
			strconv.Itoa(r.Iteration),
			strconv.FormatFloat(r.Frequency, 'f', -1, 64),
			r.MOSFET,
			r.Diode,
			strconv.FormatFloat(r.Fitness, 'f', -1, 64),
		}
		if err := w.Write(rec); err != nil {
			return err
		}
	}
	return nil
}

func writeJSON(path string, history []row) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	b, err := json.MarshalIndent(history, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0o644)
}

func writeXLSX(path string, res *optimize.Result, history []row) error {
	f := excelize.NewFile()
	defer f.Close()

	const summary = "Summary"
	if err := f.SetSheetName("Sheet1", summary); err != nil {
		return err
	}

	sum := [][]interface{}{
		{"Field", "Value"},
		{"frequency_hz", res.Frequency},
		{"mosfet", res.MOSFET.Name},
		{"mosfet_price", res.MOSFET.Price},
		{"diode", res.Diode.Name},
		{"diode_price", res.Diode.Price},
		{"efficiency", res.Evaluation.Efficiency},
		{"total_loss_w", res.Evaluation.Total},
		{"output_power_w", res.Evaluation.OutputPower},
		{"feasible", res.Evaluation.Feasible},
		{"stop_reason", res.Reason.String()},
		{"iterations", res.Iterations},
		{"evaluations", res.Evals},
	}
	for i, r := range sum {
		if err := f.SetSheetRow(summary, fmt.Sprintf("A%d", i+1), &r); err != nil {
			return err
		}
	}

	const breakdown = "Breakdown"
	if _, err := f.NewSheet(breakdown); err != nil {
		return err
	}
	head := []interface{}{"Term", "Watts"}
	if err := f.SetSheetRow(breakdown, "A1", &head); err != nil {
		return err
	}
	for i, term := range res.Evaluation.Terms() {
		r := []interface{}{term.Name, term.Watts}
		if err := f.SetSheetRow(breakdown, fmt.Sprintf("A%d", i+2), &r); err != nil {
			return err
		}
	}

	const hist = "History"
	if _, err := f.NewSheet(hist); err != nil {
		return err
	}
	hhead := []interface{}{"Iteration", "Frequency (Hz)", "MOSFET", "Diode", "Fitness"}
	if err := f.SetSheetRow(hist, "A1", &hhead); err != nil {
		return err
	}
	for i, r := range history {
		rec := []interface{}{r.Iteration, r.Frequency, r.MOSFET, r.Diode, r.Fitness}
		if err := f.SetSheetRow(hist, fmt.Sprintf("A%d", i+2), &rec); err != nil {
			return err
		}
	}

	return f.SaveAs(path)
}
