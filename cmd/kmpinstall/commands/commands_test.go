package commands_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/kmpinstall/cmd/kmpinstall/commands"
	"go.trai.ch/kmpinstall/internal/app"
	"go.trai.ch/kmpinstall/internal/build"
	"go.trai.ch/kmpinstall/internal/core/domain"
)

type mockApp struct {
	runFunc func(ctx context.Context, opts app.RunOptions) (int, error)
}

func (m *mockApp) Run(ctx context.Context, opts app.RunOptions) (int, error) {
	if m.runFunc != nil {
		return m.runFunc(ctx, opts)
	}
	return 0, nil
}

func TestCommands_Run(t *testing.T) {
	t.Run("splits flags from passthrough targets", func(t *testing.T) {
		var capturedOpts app.RunOptions
		called := false

		mock := &mockApp{
			runFunc: func(_ context.Context, opts app.RunOptions) (int, error) {
				capturedOpts = opts
				called = true
				return 0, nil
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{"-n", "drbd-kmp-default", "--non-interactive-include-reboot-patches", "./local-kmp-default.rpm"})

		code, err := cli.Execute(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 0, code)
		assert.True(t, called)
		assert.True(t, capturedOpts.NonInteractive)
		assert.True(t, capturedOpts.IncludeRebootPatches)
		assert.Equal(t, []string{"drbd-kmp-default", "./local-kmp-default.rpm"}, capturedOpts.Targets)
	})

	t.Run("leaves unrecognized dashed arguments to the package manager", func(t *testing.T) {
		var capturedOpts app.RunOptions

		mock := &mockApp{
			runFunc: func(_ context.Context, opts app.RunOptions) (int, error) {
				capturedOpts = opts
				return 0, nil
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{"--repo", "kernel-modules", "foo-kmp-default"})

		_, err := cli.Execute(context.Background())
		require.NoError(t, err)
		assert.False(t, capturedOpts.NonInteractive)
		assert.Equal(t, []string{"--repo", "kernel-modules", "foo-kmp-default"}, capturedOpts.Targets)
	})

	t.Run("propagates the application exit code", func(t *testing.T) {
		mock := &mockApp{
			runFunc: func(_ context.Context, _ app.RunOptions) (int, error) {
				return 104, errors.New("install failed")
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{"foo-kmp-default"})
		cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))

		code, err := cli.Execute(context.Background())
		require.Error(t, err)
		assert.Equal(t, 104, code)
	})

	t.Run("prints usage to stderr when no targets are given", func(t *testing.T) {
		mock := &mockApp{
			runFunc: func(_ context.Context, opts app.RunOptions) (int, error) {
				require.Empty(t, opts.Targets)
				return 1, domain.ErrNoTargets
			},
		}

		stderr := new(bytes.Buffer)
		cli := commands.New(mock)
		cli.SetArgs([]string{"-n"})
		cli.SetOutput(new(bytes.Buffer), stderr)

		code, err := cli.Execute(context.Background())
		require.ErrorIs(t, err, domain.ErrNoTargets)
		assert.Equal(t, 1, code)
		assert.Contains(t, stderr.String(), "Usage:")
	})

	t.Run("returns code 1 when execution fails without a code", func(t *testing.T) {
		mock := &mockApp{
			runFunc: func(_ context.Context, _ app.RunOptions) (int, error) {
				return 0, errors.New("simulated error")
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{"foo-kmp-default"})
		cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))

		code, err := cli.Execute(context.Background())
		require.Error(t, err)
		assert.Equal(t, 1, code)
	})
}

func TestCommands_Help(t *testing.T) {
	called := false
	mock := &mockApp{
		runFunc: func(_ context.Context, _ app.RunOptions) (int, error) {
			called = true
			return 0, nil
		},
	}

	out := new(bytes.Buffer)
	cli := commands.New(mock)
	cli.SetArgs([]string{"--help", "foo-kmp-default"})
	cli.SetOutput(out, new(bytes.Buffer))

	code, err := cli.Execute(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, code)
	assert.False(t, called, "help must not contact the package manager")
	assert.Contains(t, out.String(), "Usage:")
	assert.Contains(t, out.String(), "--non-interactive")
}

func TestCommands_Version(t *testing.T) {
	called := false
	mock := &mockApp{
		runFunc: func(_ context.Context, _ app.RunOptions) (int, error) {
			called = true
			return 0, nil
		},
	}

	out := new(bytes.Buffer)
	cli := commands.New(mock)
	cli.SetArgs([]string{"--version"})
	cli.SetOutput(out, new(bytes.Buffer))

	code, err := cli.Execute(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, code)
	assert.False(t, called)
	assert.Contains(t, out.String(), "kmpinstall version "+build.Version)
}
