package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nibzard/tidy/internal/config"
)

func newConfigCommand() *cobra.Command {
	var example bool

	c := &cobra.Command{
		Use:   "config",
		Short: "Show the effective configuration and where each value came from",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if example {
				fmt.Fprint(out, config.ExampleConfig())
				return nil
			}

			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			if len(cfg.Files) == 0 {
				fmt.Fprintln(out, "# no config files found")
			}
			for _, f := range cfg.Files {
				fmt.Fprintf(out, "# read %s\n", f)
			}
			for _, key := range config.Fields() {
				fmt.Fprintf(out, "%-15s = %-30q # %s\n", key, cfg.Value(key), cfg.Sources[key])
			}
			return nil
		},
	}
	c.Flags().BoolVar(&example, "example", false, "Print an example config file")
	return c
}
