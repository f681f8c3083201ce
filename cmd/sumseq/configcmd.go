package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

func newConfigCmd(a *app) *cobra.Command {
	var write string

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration, or write it to a file",
		Long: `Prints the configuration in effect after defaults, the --config file and
SUMSEQ_* environment overrides are applied. With --write the same YAML is
saved to PATH, creating parent directories as needed.

Example:
  sumseq config --write ~/.config/sumseq.yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if write != "" {
				if err := a.cfg.Save(write); err != nil {
					return err
				}
				a.logger.Info("config written", zap.String("path", write))
				return nil
			}

			data, err := yaml.Marshal(a.cfg)
			if err != nil {
				return fmt.Errorf("failed to marshal config: %w", err)
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}

	cmd.Flags().StringVar(&write, "write", "", "save the effective configuration to this path")

	return cmd
}
