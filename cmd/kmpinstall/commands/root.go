// Package commands implements the CLI for the kmpinstall tool.
package commands

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/kmpinstall/internal/app"
	"go.trai.ch/kmpinstall/internal/build"
	"go.trai.ch/kmpinstall/internal/core/domain"
)

// action is what one pass over the argument list decided to do.
type action int

const (
	actionRun action = iota
	actionHelp
	actionVersion
)

// CLI represents the command line interface for kmpinstall.
type CLI struct {
	app      Application
	rootCmd  *cobra.Command
	exitCode int
}

// Application represents the application logic interface.
type Application interface {
	Run(ctx context.Context, opts app.RunOptions) (int, error)
}

// New creates a new CLI instance with the given app.
//
// Flag parsing is disabled on purpose: apart from the handful of flags the
// tool recognizes itself, every argument is a package spec or archive path
// that belongs to the package manager verbatim, dashes and all.
func New(a Application) *CLI {
	c := &CLI{app: a}

	rootCmd := &cobra.Command{
		Use:   "kmpinstall [flags] <package> ...",
		Short: "Install kernel module packages, replacing conflicting ones",
		Long: "kmpinstall installs kernel module packages through the system package\n" +
			"manager. Before the real transaction it resolves which kernel modules the\n" +
			"incoming packages carry and removes any installed kernel module package\n" +
			"that would otherwise fight over the same module files.",
		Version:            build.Version,
		SilenceUsage:       true,
		SilenceErrors:      true,
		DisableFlagParsing: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, act := parseArgs(args)
			switch act {
			case actionHelp:
				return cmd.Help()
			case actionVersion:
				_, _ = fmt.Fprintf(cmd.OutOrStdout(),
					"kmpinstall version %s (commit: %s, date: %s)\n",
					build.Version, build.Commit, build.Date)
				return nil
			}

			code, err := c.app.Run(cmd.Context(), opts)
			c.exitCode = code
			if errors.Is(err, domain.ErrNoTargets) {
				_, _ = fmt.Fprint(cmd.ErrOrStderr(), cmd.UsageString())
			}
			return err
		},
	}

	rootCmd.SetUsageTemplate(usageTemplate)
	c.rootCmd = rootCmd
	return c
}

// parseArgs splits the raw argument list into recognized flags and
// passthrough install targets. Help and version short-circuit the whole run.
func parseArgs(args []string) (app.RunOptions, action) {
	var opts app.RunOptions
	for _, arg := range args {
		switch arg {
		case "-h", "--help":
			return opts, actionHelp
		case "--version":
			return opts, actionVersion
		case "-n", "--non-interactive":
			opts.NonInteractive = true
		case "--non-interactive-include-reboot-patches":
			opts.IncludeRebootPatches = true
		default:
			opts.Targets = append(opts.Targets, arg)
		}
	}
	return opts, actionRun
}

// Execute runs the root command with the given context and reports the
// process exit code alongside any error.
func (c *CLI) Execute(ctx context.Context) (int, error) {
	c.rootCmd.SetContext(ctx)
	if err := c.rootCmd.Execute(); err != nil {
		if c.exitCode == 0 {
			c.exitCode = 1
		}
		return c.exitCode, err
	}
	return c.exitCode, nil
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}

const usageTemplate = `Usage:
  {{.UseLine}}

Flags:
  -n, --non-interactive                        never ask, fail instead of prompting
      --non-interactive-include-reboot-patches also accept patches that require a reboot
  -h, --help                                   show this help and exit
      --version                                print the version and exit

All other arguments are passed to the package manager as install targets.
`
