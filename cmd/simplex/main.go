// Command simplex generates linear programs from a chosen distribution,
// solves them with the tableau Simplex Method and reports optimal
// values, pivot counts and primitive-operation counts. Results can be
// persisted as JSON and the pivot sequence as an animated GIF.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mihkeluutar/simplex-practical-experiments/lpgen"
	"github.com/mihkeluutar/simplex-practical-experiments/report"
	"github.com/mihkeluutar/simplex-practical-experiments/simplex"
	"github.com/mihkeluutar/simplex-practical-experiments/viz"
)

type config struct {
	constraints  int
	variables    int
	minValue     int
	maxValue     int
	distribution string
	strategy     string
	sparsity     float64
	stepRange    int
	variation    int
	maxIter      int
	runs         int
	seed         int64
	printSteps   bool
	resultsDir   string
	cacheDir     string
	gifPath      string
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var cfg config

	cmd := &cobra.Command{
		Use:   "simplex",
		Short: "Solve generated linear programs and measure Simplex operation counts",
		Long: `simplex generates linear programs in standard maximization form from a
chosen input distribution, solves them with the tableau Simplex Method
and reports the optimum together with per-run operation counts for
empirical complexity analysis.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, cfg)
		},
	}

	f := cmd.Flags()
	f.IntVarP(&cfg.constraints, "constraints", "m", 10, "number of inequality constraints")
	f.IntVarP(&cfg.variables, "variables", "n", 5, "number of decision variables")
	f.IntVar(&cfg.minValue, "min", 1, "minimum generated value (inclusive)")
	f.IntVar(&cfg.maxValue, "max", 100, "maximum generated value (exclusive)")
	f.StringVarP(&cfg.distribution, "distribution", "d", "random",
		"input distribution: random, symmetric, geometric, varied-geometric, linear, varied-linear, primes, pseudoprimes, gaussian")
	f.StringVarP(&cfg.strategy, "strategy", "s", "dense", "pivoting strategy: dense or sparse")
	f.Float64Var(&cfg.sparsity, "sparsity", 0, "fraction of constraint entries zeroed after generation [0,1]")
	f.IntVar(&cfg.stepRange, "step-range", 20, "spread parameter for linear distributions")
	f.IntVar(&cfg.variation, "variation", 20, "variance parameter for varied distributions")
	f.IntVar(&cfg.maxIter, "max-iterations", 0, "pivot cap, 0 for unlimited")
	f.IntVarP(&cfg.runs, "runs", "r", 1, "number of independent solves")
	f.Int64Var(&cfg.seed, "seed", 0, "generation seed, 0 for the fixed default stream")
	f.BoolVar(&cfg.printSteps, "steps", false, "print the tableau after every pivot")
	f.StringVar(&cfg.resultsDir, "results-dir", "", "write a JSON experiment summary under this directory")
	f.StringVar(&cfg.cacheDir, "cache-dir", "", "cache directory for prime/pseudoprime pools")
	f.StringVar(&cfg.gifPath, "gif", "", "write an animated GIF of the first run's pivots to this file")

	return cmd
}

func run(cmd *cobra.Command, cfg config) error {
	strategy, err := simplex.ParseStrategy(cfg.strategy)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	summary := report.Summary{
		Distribution:  cfg.distribution,
		Strategy:      strategy.String(),
		Constraints:   cfg.constraints,
		Variables:     cfg.variables,
		MinValue:      cfg.minValue,
		MaxValue:      cfg.maxValue,
		MaxIterations: cfg.maxIter,
	}

	for i := 0; i < cfg.runs; i++ {
		seed := cfg.seed + int64(i)
		in, err := generate(cfg, seed)
		if err != nil {
			return err
		}
		if cfg.sparsity > 0 {
			if in, err = lpgen.Sparsify(in, cfg.sparsity, seed); err != nil {
				return err
			}
		}

		if cfg.printSteps {
			fmt.Fprintf(out, "Maximize: %s\n", report.Objective(in.Objective))
			fmt.Fprintln(out, report.Constraints(in.Constraints, in.Bounds, true))
		}

		var counts simplex.Counts
		opts := simplex.DefaultOptions()
		opts.Strategy = strategy
		opts.MaxIterations = cfg.maxIter
		opts.Counts = &counts

		var rec *viz.Recorder
		if cfg.gifPath != "" && i == 0 {
			rec = viz.NewRecorder(380, 220, 50)
		}
		opts.OnPivot = func(step int, t *simplex.Tableau) {
			if cfg.printSteps {
				fmt.Fprintf(out, "\nAfter pivot %d:\n%s\n", step, report.TableauString(t))
			}
			if rec != nil {
				rec.Capture(step, t)
			}
		}

		res, err := simplex.Solve(in.Objective, in.Constraints, in.Bounds, &opts)
		if err != nil {
			return fmt.Errorf("run %d (seed %d): %w", i+1, seed, err)
		}

		fmt.Fprintf(out, "run %d: optimum %.4f after %d pivots (%d primitive ops)\n",
			i+1, res.Value, res.Pivots, counts.Total())
		if cfg.printSteps {
			fmt.Fprintf(out, "variables: %v\n", res.Variables)
			fmt.Fprintf(out, "final tableau:\n%s\n", report.TableauString(res.Tableau))
		}

		summary.Runs = append(summary.Runs, report.Run{
			Seed:   seed,
			Pivots: res.Pivots,
			Value:  res.Value,
			Counts: counts,
		})

		if rec != nil {
			if err = rec.Err(); err != nil {
				return err
			}
			if rec.Len() == 0 {
				fmt.Fprintf(out, "no pivots performed, skipping %s\n", cfg.gifPath)
			} else {
				if err = viz.WriteGIF(cfg.gifPath, rec.GIF()); err != nil {
					return err
				}
				fmt.Fprintf(out, "wrote %s (%d frames)\n", cfg.gifPath, rec.Len())
			}
		}
	}

	if cfg.resultsDir != "" {
		path, err := report.SaveResults(cfg.resultsDir, summary)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "results saved to %s\n", path)
	}
	return nil
}

// generate dispatches on the distribution name; unknown names are a
// configuration error listing the supported set.
func generate(cfg config, seed int64) (lpgen.Input, error) {
	m, n := cfg.constraints, cfg.variables
	lo, hi := cfg.minValue, cfg.maxValue

	switch cfg.distribution {
	case "random":
		return lpgen.Random(m, n, lo, hi, seed)
	case "symmetric":
		return lpgen.Symmetric(m, n, lo, hi, seed)
	case "geometric":
		return lpgen.Geometric(m, n, lo, hi, seed)
	case "varied-geometric":
		return lpgen.VariedGeometric(m, n, lo, hi, cfg.variation, seed)
	case "linear":
		return lpgen.Linear(m, n, lo, hi, cfg.stepRange, seed)
	case "varied-linear":
		return lpgen.VariedLinear(m, n, lo, hi, cfg.stepRange, cfg.variation, seed)
	case "primes":
		return lpgen.Primes(m, n, lo, hi, seed, cfg.cacheDir)
	case "pseudoprimes":
		return lpgen.Pseudoprimes(m, n, lo, hi, seed, cfg.cacheDir)
	case "gaussian":
		return lpgen.Gaussian(m, n, lo, hi, seed)
	default:
		return lpgen.Input{}, fmt.Errorf(
			"unknown distribution %q: use random, symmetric, geometric, varied-geometric, linear, varied-linear, primes, pseudoprimes or gaussian",
			cfg.distribution)
	}
}
