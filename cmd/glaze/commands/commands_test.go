package commands_test

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/glaze/cmd/glaze/commands"
	"go.trai.ch/glaze/internal/app"
	"go.trai.ch/glaze/internal/build"
)

type mockApp struct {
	logging   *app.Options
	watchFunc func(ctx context.Context, opts app.WatchOptions) error
	buildFunc func(ctx context.Context, opts app.Options) error
}

func (m *mockApp) ConfigureLogging(opts app.Options) {
	m.logging = &opts
}

func (m *mockApp) Watch(ctx context.Context, opts app.WatchOptions) error {
	if m.watchFunc != nil {
		return m.watchFunc(ctx, opts)
	}
	return nil
}

func (m *mockApp) Build(ctx context.Context, opts app.Options) error {
	if m.buildFunc != nil {
		return m.buildFunc(ctx, opts)
	}
	return nil
}

func TestCommands_Watch(t *testing.T) {
	t.Run("wires flags correctly", func(t *testing.T) {
		var captured app.WatchOptions
		called := false

		mock := &mockApp{
			watchFunc: func(_ context.Context, opts app.WatchOptions) error {
				captured = opts
				called = true
				return nil
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{"watch", "--delay", "500ms", "--no-initial", "-c", "site/glaze.yaml", "--json"})

		err := cli.Execute(context.Background())
		require.NoError(t, err)
		assert.True(t, called)
		assert.Equal(t, 500*time.Millisecond, captured.Delay)
		assert.True(t, captured.NoInitial)
		assert.Equal(t, "site/glaze.yaml", captured.ConfigPath)
		assert.True(t, captured.JSON)
	})

	t.Run("defaults to an immediate run", func(t *testing.T) {
		var captured app.WatchOptions
		mock := &mockApp{
			watchFunc: func(_ context.Context, opts app.WatchOptions) error {
				captured = opts
				return nil
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{"watch"})

		require.NoError(t, cli.Execute(context.Background()))
		assert.False(t, captured.NoInitial)
		assert.Zero(t, captured.Delay)
	})

	t.Run("returns error on startup failure", func(t *testing.T) {
		mock := &mockApp{
			watchFunc: func(_ context.Context, _ app.WatchOptions) error {
				return errors.New("simulated error")
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{"watch"})
		cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))

		err := cli.Execute(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "simulated error")
	})

	t.Run("rejects arguments", func(t *testing.T) {
		cli := commands.New(&mockApp{})
		cli.SetArgs([]string{"watch", "styles"})
		cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))

		require.Error(t, cli.Execute(context.Background()))
	})
}

func TestCommands_Build(t *testing.T) {
	var captured app.Options
	mock := &mockApp{
		buildFunc: func(_ context.Context, opts app.Options) error {
			captured = opts
			return nil
		},
	}

	cli := commands.New(mock)
	cli.SetArgs([]string{"build", "--config", "glaze.yaml"})

	require.NoError(t, cli.Execute(context.Background()))
	assert.Equal(t, "glaze.yaml", captured.ConfigPath)
	assert.False(t, captured.JSON)
}

func TestCommands_ConfiguresLogging(t *testing.T) {
	mock := &mockApp{}
	cli := commands.New(mock)
	cli.SetArgs([]string{"build", "-v", "--json"})

	require.NoError(t, cli.Execute(context.Background()))
	require.NotNil(t, mock.logging)
	assert.True(t, mock.logging.Verbose)
	assert.True(t, mock.logging.JSON)
}

func TestCommands_Version(t *testing.T) {
	mock := &mockApp{}
	cli := commands.New(mock)

	buf := new(bytes.Buffer)
	cli.SetOutput(buf, buf)
	cli.SetArgs([]string{"version"})

	err := cli.Execute(context.Background())
	require.NoError(t, err)

	assert.Contains(t, buf.String(), "glaze version "+build.Version)
	assert.Contains(t, buf.String(), build.Commit)
}

func TestCommands_GlobalFlagsDoNotClash(t *testing.T) {
	for _, args := range [][]string{{"watch"}, {"build"}, {"version"}, {"--version"}} {
		t.Run(args[0], func(t *testing.T) {
			cli := commands.New(&mockApp{})
			cli.SetArgs(args)
			cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))

			assert.NotPanics(t, func() {
				require.NoError(t, cli.Execute(context.Background()))
			})
		})
	}
}

func TestCommands_ShortVerboseFlag(t *testing.T) {
	mock := &mockApp{}
	cli := commands.New(mock)
	buf := new(bytes.Buffer)
	cli.SetOutput(buf, buf)
	cli.SetArgs([]string{"watch", "-v"})

	require.NoError(t, cli.Execute(context.Background()))
	require.NotNil(t, mock.logging)
	assert.True(t, mock.logging.Verbose)
	assert.NotContains(t, buf.String(), "glaze version", "-v must not print the version")
}
