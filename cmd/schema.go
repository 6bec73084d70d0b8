package cmd

import (
	"github.com/spf13/cobra"

	"github.com/nibzard/tidy/internal/todo"
)

func newSchemaCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "schema",
		Short: "Print the JSON Schema for snapshot files",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := cmd.OutOrStdout().Write(todo.Schema())
			return err
		},
	}
}
