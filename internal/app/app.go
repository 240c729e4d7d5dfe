// Package app implements the application layer for kmpinstall.
package app

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"go.trai.ch/kmpinstall/internal/core/domain"
	"go.trai.ch/kmpinstall/internal/core/ports"
	"go.trai.ch/kmpinstall/internal/engine/locator"
	"go.trai.ch/kmpinstall/internal/ui/style"
	"go.trai.ch/zerr"
)

var (
	removalStyle = lipgloss.NewStyle().Foreground(style.Yellow)
	detailStyle  = lipgloss.NewStyle().Foreground(style.Slate)
)

// App represents the main application logic.
type App struct {
	manager ports.PackageManager
	db      ports.PackageDB
	locator *locator.Locator
	logger  ports.Logger
	out     io.Writer
}

// New creates a new App instance.
func New(
	manager ports.PackageManager,
	db ports.PackageDB,
	loc *locator.Locator,
	log ports.Logger,
) *App {
	return &App{
		manager: manager,
		db:      db,
		locator: loc,
		logger:  log,
		out:     os.Stdout,
	}
}

// WithOutput redirects the conflict announcements. Used for testing.
func (a *App) WithOutput(w io.Writer) *App {
	a.out = w
	return a
}

// RunOptions configuration for the Run method.
type RunOptions struct {
	// Targets are the package specs and archive paths to install, forwarded
	// to the package manager untouched.
	Targets []string

	// NonInteractive forbids every prompt. A failed dry run is then fatal
	// instead of being retried interactively.
	NonInteractive bool

	// IncludeRebootPatches additionally answers yes to patches that request
	// a reboot. Implies non-interactive operation on the manager side.
	IncludeRebootPatches bool
}

func (o RunOptions) globals() []string {
	var globals []string
	if o.NonInteractive {
		globals = append(globals, "--non-interactive")
	}
	if o.IncludeRebootPatches {
		globals = append(globals, "--non-interactive-include-reboot-patches")
	}
	return globals
}

// Run installs the requested packages, removing any installed kernel module
// package whose modules an incoming package takes over. The returned code is
// the process exit code: the package manager's own status from the final
// transaction, or 1 when the run never got that far.
func (a *App) Run(ctx context.Context, opts RunOptions) (int, error) {
	if len(opts.Targets) == 0 {
		return 1, domain.ErrNoTargets
	}

	req := ports.InstallRequest{Globals: opts.globals(), Targets: opts.Targets}

	plan, err := a.dryRun(ctx, req, opts.NonInteractive)
	if err != nil {
		return 1, err
	}

	// Packages the dry run wants to install are the only possible source of
	// module conflicts. Nothing incoming means nothing to resolve, but the
	// real transaction still runs so the manager can report its own result.
	var remove []*domain.Package
	if len(plan.Install) > 0 {
		a.locator.Resolve(ctx, plan.Install, opts.Targets)

		installed, err := a.db.InstalledKMPs(ctx)
		if err != nil {
			return 1, err
		}

		remove = a.announce(domain.FindConflicts(plan, installed))
	}

	code, err := a.manager.Install(ctx, req, remove)
	if err != nil {
		return 1, zerr.Wrap(err, domain.ErrInstallFailed.Error())
	}
	return code, nil
}

// dryRun resolves the transaction without touching the system. The first
// attempt is always non-interactive so an unexpected prompt cannot hang the
// run; when that attempt fails and prompts are allowed, one interactive
// retry lets the user resolve whatever zypper wants to ask about.
func (a *App) dryRun(ctx context.Context, req ports.InstallRequest, nonInteractive bool) (*domain.Plan, error) {
	plan, code, err := a.manager.DryRunInstall(ctx, req, false)
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrDryRunFailed.Error())
	}
	if code == 0 {
		return plan, nil
	}
	if nonInteractive {
		return nil, zerr.With(domain.ErrDryRunFailed, "exit_code", code)
	}

	a.logger.Warn("dry run failed, retrying interactively")
	plan, code, err = a.manager.DryRunInstall(ctx, req, true)
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrDryRunFailed.Error())
	}
	if code != 0 {
		return nil, zerr.With(domain.ErrDryRunFailed, "exit_code", code)
	}
	return plan, nil
}

// announce prints every detected conflict and returns the packages to
// remove.
func (a *App) announce(conflicts []domain.Conflict) []*domain.Package {
	remove := make([]*domain.Package, 0, len(conflicts))
	for _, c := range conflicts {
		remove = append(remove, c.Installed)
		_, _ = fmt.Fprintln(a.out,
			removalStyle.Render(style.Warning+" removing "+c.Installed.Identity())+
				detailStyle.Render(" (module "+c.Module+" "+style.Arrow+" "+c.With+")"))
	}
	return remove
}
