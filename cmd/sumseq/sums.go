package main

import (
	"bufio"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/sumseq/subsetsum"
)

// errUnbounded is returned when a full drain would be too large to finish.
var errUnbounded = errors.New("refusing to enumerate every subset sum; pass --limit or --max")

type sumsOptions struct {
	limit    int
	max      float64
	sep      string
	index    bool
	subsets  bool
	tieBreak string
}

func newSumsCmd(a *app) *cobra.Command {
	o := &sumsOptions{}

	cmd := &cobra.Command{
		Use:   "sums [LIST]",
		Short: "Print all subset sums of LIST in ascending order",
		Long: `Reads a YAML/JSON list of non-negative numbers from LIST or stdin and prints
every subset sum in non-decreasing order. Equal values are distinct elements,
so [1, 2, 2] prints 2 and 3 twice.

Example:
  sumseq sums '[1, 2, 4]'
  seq 0 99 | paste -sd, | sed 's/.*/[&]/' | sumseq sums --limit 5`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runSums(cmd, args, o)
		},
	}

	cmd.Flags().IntVar(&o.limit, "limit", 0, "stop after this many sums (0 = no limit)")
	cmd.Flags().Float64Var(&o.max, "max", 0, "stop at the first sum greater than this")
	cmd.Flags().StringVar(&o.sep, "sep", ", ", "separator between printed sums")
	cmd.Flags().BoolVar(&o.index, "index", false, "print (position, sum) pairs")
	cmd.Flags().BoolVar(&o.subsets, "subsets", false, "print one sum per line with the values that make it up")
	cmd.Flags().StringVar(&o.tieBreak, "tie-break", "signature", "order of equal sums: signature or insertion")

	return cmd
}

// runSums applies config defaults to flags the user did not set, then streams the sums.
func (a *app) runSums(cmd *cobra.Command, args []string, o *sumsOptions) error {
	flags := cmd.Flags()
	if !flags.Changed("limit") {
		o.limit = a.cfg.Sums.Limit
	}
	if !flags.Changed("sep") {
		o.sep = a.cfg.Sums.Separator
	}
	if !flags.Changed("tie-break") {
		o.tieBreak = a.cfg.Sums.TieBreak
	}
	if o.limit < 0 {
		return fmt.Errorf("--limit must be non-negative, got %d", o.limit)
	}
	hasMax := flags.Changed("max")

	tb, ok := subsetsum.ParseTieBreak(o.tieBreak)
	if !ok {
		return fmt.Errorf("unknown --tie-break %q", o.tieBreak)
	}
	opts := []subsetsum.Option{subsetsum.WithTieBreak(tb)}
	if !a.cfg.Sums.SeenSet {
		opts = append(opts, subsetsum.WithoutSeenSet())
	}

	data, err := readSource(args, cmd.InOrStdin(), false)
	if err != nil {
		return err
	}
	values, err := parseList(data)
	if err != nil {
		return err
	}

	e, err := subsetsum.New(values, opts...)
	if err != nil {
		return err
	}
	defer e.Close()

	// A --max at or above the total of all values cuts nothing off.
	var total float64
	for _, v := range values {
		total += v
	}
	if o.limit == 0 && (!hasMax || o.max >= total) && len(values) > a.cfg.Sums.MaxUnboundedN {
		return fmt.Errorf("%w (n=%d, max_unbounded_n=%d)", errUnbounded, len(values), a.cfg.Sums.MaxUnboundedN)
	}

	a.logger.Debug("enumerating subset sums",
		zap.Int("n", len(values)),
		zap.Int("limit", o.limit),
		zap.Bool("has_max", hasMax),
		zap.Stringer("tie_break", tb),
	)

	seq := e.Subsets()
	if hasMax {
		seq = subsetsum.TakeWhile(seq, func(s subsetsum.Subset[float64]) bool { return s.Sum <= o.max })
	}
	if o.limit > 0 {
		seq = subsetsum.Take(seq, o.limit)
	}

	w := bufio.NewWriter(cmd.OutOrStdout())
	sorted := e.Sorted()
	first := true
	for i, s := range subsetsum.Enumerate(seq) {
		switch {
		case o.subsets:
			parts := make([]string, len(s.Indices))
			for k, idx := range s.Indices {
				parts[k] = formatNumber(sorted[idx])
			}
			fmt.Fprintf(w, "%s\t[%s]\n", formatNumber(s.Sum), strings.Join(parts, " "))
			continue
		case !first:
			w.WriteString(o.sep)
		}
		first = false
		if o.index {
			fmt.Fprintf(w, "(%d, %s)", i, formatNumber(s.Sum))
		} else {
			w.WriteString(formatNumber(s.Sum))
		}
	}
	if !o.subsets {
		w.WriteString("\n")
	}
	if err := w.Flush(); err != nil {
		return err
	}

	a.logger.Info("subset sums printed",
		zap.Int("n", len(values)),
		zap.Int("emitted", e.Emitted()),
		zap.Int("pending", e.Pending()),
	)

	return nil
}
