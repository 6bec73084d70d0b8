// Package cmd implements the command line for tidy.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/nibzard/tidy/internal/config"
	"github.com/nibzard/tidy/internal/logging"
	"github.com/nibzard/tidy/internal/todo"
)

// Version is set via ldflags at build time.
var Version = "dev"

// Run executes the tidy CLI.
func Run(ctx context.Context, args []string) error {
	root := NewRootCommand()
	root.SetArgs(args)
	return root.ExecuteContext(ctx)
}

// NewRootCommand builds the command tree. Running it without a subcommand
// starts the interactive UI.
func NewRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "tidy",
		Short: "A keyboard-driven to-do list for the terminal",
		Long: `Tidy keeps a single to-do list for the length of a terminal session.
Add tasks, complete them, filter by status and move them around with the
keyboard. Point snapshot_file at a JSON or YAML file to keep the list
between sessions.`,
		Version:       Version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runTUI,
	}
	root.SetVersionTemplate("tidy version {{.Version}}\n")
	config.RegisterFlags(root.PersistentFlags())

	root.AddCommand(
		newTUICommand(),
		newReplayCommand(),
		newSchemaCommand(),
		newLogsCommand(),
		newConfigCommand(),
		newVersionCommand(),
	)
	return root
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "tidy version %s\n", Version)
			return nil
		},
	}
}

// loadConfig loads configuration with cmd's flags applied on top.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(cmd.Flags())
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}

func logOptions(cfg *config.Config) logging.Options {
	return logging.OptionsFromConfig(cfg.LogLevel, cfg.LogFormat, cfg.LogTimestamps)
}

// loadList returns the list stored in the configured snapshot file. A missing
// file, or no snapshot file at all, starts an empty list.
func loadList(cfg *config.Config) (todo.List, error) {
	if cfg.SnapshotFile == "" {
		return todo.List{}, nil
	}
	list, err := todo.Load(cfg.SnapshotFile)
	if errors.Is(err, os.ErrNotExist) {
		return todo.List{}, nil
	}
	if err != nil {
		return todo.List{}, fmt.Errorf("loading snapshot %s: %w", cfg.SnapshotFile, err)
	}
	return list, nil
}

// autosave writes list back to the snapshot file when autosave is on.
func autosave(cfg *config.Config, list todo.List, logger *log.Logger) error {
	if !cfg.Autosave || cfg.SnapshotFile == "" {
		return nil
	}
	if err := list.Save(cfg.SnapshotFile); err != nil {
		return fmt.Errorf("saving snapshot %s: %w", cfg.SnapshotFile, err)
	}
	logger.Info("snapshot saved", "path", cfg.SnapshotFile, "tasks", list.Len())
	return nil
}
