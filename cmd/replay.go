package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/nibzard/tidy/internal/logging"
	"github.com/nibzard/tidy/internal/session"
	"github.com/nibzard/tidy/internal/todo"
)

func newReplayCommand() *cobra.Command {
	var export string

	c := &cobra.Command{
		Use:   "replay <script>",
		Short: "Apply a script of actions and print the resulting list",
		Long: `Replay applies one action per line to the list and prints the tasks
visible under the final filter. Use "-" to read the script from stdin.

Actions:
  add <text>
  complete <id>
  delete <id>
  clear
  filter all|active|completed
  reorder <dragged-order> <target-order>

Blank lines and lines starting with # are ignored. Actions that change
nothing are logged and skipped. The list starts from the configured
snapshot file when there is one.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReplay(cmd, args[0], export)
		},
	}
	c.Flags().StringVarP(&export, "export", "o", "", "Write the resulting list to a snapshot file (.json, .yaml)")
	return c
}

func runReplay(cmd *cobra.Command, scriptPath, export string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	actions, err := readScript(cmd, scriptPath)
	if err != nil {
		return err
	}

	list, err := loadList(cfg)
	if err != nil {
		return err
	}

	logger := logging.New(cmd.ErrOrStderr(), logOptions(cfg))
	s := session.New(list, session.WithLogger(logger), session.WithFilter(cfg.Filter()))
	skipped := s.Replay(actions)
	logger.Debug("replay finished", "actions", len(actions), "skipped", skipped)

	printTasks(cmd.OutOrStdout(), s)

	if export != "" {
		if err := s.List().Save(export); err != nil {
			return fmt.Errorf("exporting snapshot: %w", err)
		}
		logger.Info("snapshot exported", "path", export, "tasks", s.List().Len())
	}
	return autosave(cfg, s.List(), logger)
}

func readScript(cmd *cobra.Command, path string) ([]session.Action, error) {
	var r io.Reader
	if path == "-" {
		r = cmd.InOrStdin()
	} else {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("opening script: %w", err)
		}
		defer f.Close()
		r = f
	}

	actions, err := session.ParseScript(r)
	if err != nil {
		return nil, fmt.Errorf("parsing script %s: %w", path, err)
	}
	return actions, nil
}

// printTasks writes the visible tasks and the items-left footer.
func printTasks(w io.Writer, s *session.Session) {
	visible := s.Visible()
	if s.List().Empty() {
		fmt.Fprintln(w, "No tasks.")
	} else if len(visible) == 0 {
		fmt.Fprintf(w, "No %s tasks.\n", s.Filter())
	} else {
		fmt.Fprintf(w, "%-3s  %-4s  %-5s  %s\n", "", "ID", "ORDER", "TEXT")
		for _, t := range visible {
			fmt.Fprintf(w, "%-3s  %-4d  %-5d  %s\n", checkbox(t), t.ID, t.Order, t.Text)
		}
	}

	noun := "items"
	if s.ItemsLeft() == 1 {
		noun = "item"
	}
	fmt.Fprintf(w, "\n%d %s left (showing %s)\n", s.ItemsLeft(), noun, s.Filter())
}

func checkbox(t todo.Task) string {
	if t.Completed() {
		return "[x]"
	}
	return "[ ]"
}
