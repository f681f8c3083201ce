// Command sumseq prints the subset sums of a list in ascending order, and
// solves small TSP instances, from literal input given on the command line or
// stdin.
//
//	echo '[1, 2, 4]' | sumseq sums
//	sumseq sums '[0, 1, 2, 3]' --limit 5
//	sumseq tsp matrix.yaml --algo nearest --names A,B,C,D
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/sumseq/internal/config"
	"github.com/katalvlaran/sumseq/internal/logging"
)

// app carries state shared by all subcommands of one root command.
type app struct {
	configPath string
	verbose    bool

	cfg    *config.Config
	logger *zap.Logger
}

// newRootCmd builds the command tree. A non-nil logger is used as-is instead
// of one built from configuration.
func newRootCmd(logger *zap.Logger) *cobra.Command {
	a := &app{logger: logger}

	root := &cobra.Command{
		Use:   "sumseq",
		Short: "Ascending subset sums and small TSP tours",
		Long: `sumseq enumerates every subset sum of a list of non-negative numbers in
non-decreasing order, lazily, so you can stop after a count or a bound
even when the list is far too long to enumerate fully.

It also solves small travelling-salesman instances by exhaustive search or the
nearest-neighbour heuristic.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(a.configPath)
			if err != nil {
				return err
			}
			if err := cfg.Validate(); err != nil {
				return fmt.Errorf("invalid config: %w", err)
			}
			a.cfg = cfg

			if a.logger == nil {
				if a.logger, err = logging.New(cfg.Logging, a.verbose); err != nil {
					return err
				}
			}
			a.logger.Debug("config loaded", zap.String("path", a.configPath))

			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}

	root.PersistentFlags().StringVar(&a.configPath, "config", "", "path to a YAML config file")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(newSumsCmd(a), newTSPCmd(a), newConfigCmd(a))

	return root
}

func main() {
	if err := newRootCmd(nil).Execute(); err != nil {
		os.Exit(1)
	}
}
