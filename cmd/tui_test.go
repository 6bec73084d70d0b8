package cmd

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nibzard/tidy/internal/config"
	"github.com/nibzard/tidy/internal/logging"
	"github.com/nibzard/tidy/internal/session"
	"github.com/nibzard/tidy/internal/todo"
)

func TestFinishSessionSavesInterruptedSession(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tasks.json")
	cfg := &config.Config{Autosave: true, SnapshotFile: path}
	s := session.New(todo.List{})
	require.NoError(t, s.Dispatch(session.Add{Text: "kept"}))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	killed := errors.New("program was killed: context canceled")

	err := finishSession(ctx, cfg, s, killed, logging.Discard())
	assert.ErrorIs(t, err, killed)

	list, err := todo.Load(path)
	require.NoError(t, err)
	task, ok := list.Get(1)
	require.True(t, ok)
	assert.Equal(t, "kept", task.Text)
}

func TestFinishSessionSavesOnQuit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tasks.yaml")
	cfg := &config.Config{Autosave: true, SnapshotFile: path}
	s := session.New(todo.List{}.Add("a"))

	require.NoError(t, finishSession(context.Background(), cfg, s, nil, logging.Discard()))

	list, err := todo.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 1, list.Len())
}

func TestFinishSessionSkipsSaveOnUIFailure(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tasks.json")
	cfg := &config.Config{Autosave: true, SnapshotFile: path}
	s := session.New(todo.List{}.Add("a"))
	failed := errors.New("terminal gone")

	err := finishSession(context.Background(), cfg, s, failed, logging.Discard())
	assert.ErrorIs(t, err, failed)

	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}

func TestFinishSessionWithoutAutosave(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tasks.json")
	cfg := &config.Config{SnapshotFile: path}
	s := session.New(todo.List{}.Add("a"))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	killed := errors.New("killed")

	assert.ErrorIs(t, finishSession(ctx, cfg, s, killed, logging.Discard()), killed)
	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}
