package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/nibzard/tidy/internal/config"
	"github.com/nibzard/tidy/internal/logging"
	"github.com/nibzard/tidy/internal/session"
	"github.com/nibzard/tidy/internal/ui"
)

func newTUICommand() *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Launch the interactive list (default command)",
		Args:  cobra.NoArgs,
		RunE:  runTUI,
	}
}

func runTUI(cmd *cobra.Command, args []string) error {
	if !ui.IsTTY(os.Stdout) {
		return fmt.Errorf("tui requires a TTY; use 'tidy replay' for scripted sessions")
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	list, err := loadList(cfg)
	if err != nil {
		return err
	}

	sessionLog, err := logging.NewSessionLog(cfg.LogDir)
	if err != nil {
		return fmt.Errorf("opening session log: %w", err)
	}
	defer sessionLog.Close()

	logger := sessionLog.Logger(logOptions(cfg))
	logger.Info("session started", "tasks", list.Len(), "filter", cfg.Filter(), "snapshot", cfg.SnapshotFile)

	s := session.New(list, session.WithLogger(logger), session.WithFilter(cfg.Filter()))
	runErr := ui.Run(cmd.Context(), s)
	return finishSession(cmd.Context(), cfg, s, runErr, logger)
}

// finishSession autosaves once the UI has stopped. A session stopped by a
// cancelled context is saved before the interruption is returned; any other
// UI failure skips the save.
func finishSession(ctx context.Context, cfg *config.Config, s *session.Session, runErr error, logger *log.Logger) error {
	if runErr != nil && ctx.Err() == nil {
		logger.Error("ui stopped", "err", runErr)
		return runErr
	}
	logger.Info("session ended", "applied", s.Applied(), "tasks", s.List().Len(), "left", s.ItemsLeft(), "interrupted", runErr != nil)

	if err := autosave(cfg, s.List(), logger); err != nil {
		return err
	}
	return runErr
}
