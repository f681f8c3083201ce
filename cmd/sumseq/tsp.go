package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/sumseq/tsp"
)

type tspOptions struct {
	algo     string
	names    []string
	output   string
	maxBrute int
}

func newTSPCmd(a *app) *cobra.Command {
	o := &tspOptions{}

	cmd := &cobra.Command{
		Use:   "tsp [FILE]",
		Short: "Solve a small travelling-salesman instance",
		Long: `Reads a square distance matrix (YAML or JSON rows; ".inf" marks a missing
edge) from FILE or stdin and prints the best tour found, starting and ending
at the first city.

Example:
  sumseq tsp cities.yaml --algo nearest --names A,B,C,D
  echo '[[0,2,9],[1,0,6],[15,7,0]]' | sumseq tsp --output length`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runTSP(cmd, args, o)
		},
	}

	cmd.Flags().StringVar(&o.algo, "algo", "brute", "solver: brute or nearest")
	cmd.Flags().StringSliceVar(&o.names, "names", nil, "comma-separated city names, one per row")
	cmd.Flags().StringVar(&o.output, "output", "path", "what to print: path or length")
	cmd.Flags().IntVar(&o.maxBrute, "max-brute", 0, "city limit for brute-force search")

	return cmd
}

func (a *app) runTSP(cmd *cobra.Command, args []string, o *tspOptions) error {
	flags := cmd.Flags()
	if !flags.Changed("algo") {
		o.algo = a.cfg.TSP.Algorithm
	}
	if !flags.Changed("output") {
		o.output = a.cfg.TSP.Output
	}
	if !flags.Changed("max-brute") {
		o.maxBrute = a.cfg.TSP.MaxBruteForceN
	}
	if o.maxBrute < 1 {
		return fmt.Errorf("--max-brute must be positive, got %d", o.maxBrute)
	}

	algo, err := tsp.ParseAlgorithm(o.algo)
	if err != nil {
		return err
	}
	out, err := tsp.ParseOutput(o.output)
	if err != nil {
		return err
	}

	data, err := readSource(args, cmd.InOrStdin(), true)
	if err != nil {
		return err
	}
	dist, err := parseMatrix(data)
	if err != nil {
		return err
	}
	if o.names != nil && len(o.names) != dist.Rows() {
		return fmt.Errorf("%w: %d names for %d cities", tsp.ErrDimensionMismatch, len(o.names), dist.Rows())
	}

	a.logger.Debug("solving tsp",
		zap.Int("n", dist.Rows()),
		zap.Stringer("algorithm", algo),
	)

	res, err := tsp.Solve(dist, tsp.WithAlgorithm(algo), tsp.WithMaxBruteForceN(o.maxBrute))
	if err != nil {
		return err
	}

	switch out {
	case tsp.OutputLength:
		fmt.Fprintln(cmd.OutOrStdout(), formatNumber(res.Cost))
	default:
		named, err := tsp.NamedTour(res.Tour, o.names)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), strings.Join(named, " -> "))
	}

	a.logger.Info("tour found",
		zap.Stringer("algorithm", algo),
		zap.Float64("cost", res.Cost),
	)

	return nil
}
