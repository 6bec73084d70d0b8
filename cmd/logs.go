package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nibzard/tidy/internal/logging"
)

func newLogsCommand() *cobra.Command {
	var pathOnly bool

	c := &cobra.Command{
		Use:   "logs",
		Short: "Print the log of the most recent interactive session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			path, err := logging.FindLatestLog(cfg.LogDir)
			if err != nil {
				return fmt.Errorf("finding latest log: %w", err)
			}
			out := cmd.OutOrStdout()
			if path == "" {
				fmt.Fprintf(out, "No session logs in %s.\n", cfg.LogDir)
				return nil
			}
			if pathOnly {
				fmt.Fprintln(out, path)
				return nil
			}
			return logging.CopyLog(out, path)
		},
	}
	c.Flags().BoolVar(&pathOnly, "path", false, "Print only the log file path")
	return c
}
