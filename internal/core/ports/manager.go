package ports

import (
	"context"

	"go.trai.ch/kmpinstall/internal/core/domain"
)

// InstallRequest carries one package manager transaction request.
type InstallRequest struct {
	// Globals are package manager global options forwarded verbatim ahead of
	// the subcommand on every transaction invocation.
	Globals []string

	// Targets are the package specs to install, passed through untouched.
	Targets []string
}

// PackageManager drives the system package manager.
//
//go:generate mockgen -source=manager.go -destination=mocks/mock_manager.go -package=mocks
type PackageManager interface {
	// DryRunInstall runs the install in download-only mode and parses the
	// announced transaction into a plan of kernel module packages. The
	// non-interactive variant cannot block on prompts; the interactive one
	// mirrors output to the terminal and lets the user answer them. The
	// child's exit status is returned alongside the plan; the plan is only
	// meaningful when the status is zero.
	DryRunInstall(ctx context.Context, req InstallRequest, interactive bool) (*domain.Plan, int, error)

	// RepoCacheDir resolves the on-disk directory where the manager keeps
	// downloaded archives for the named repository.
	RepoCacheDir(ctx context.Context, repo string) (string, error)

	// Install performs the real install, pinning every conflicting package
	// for removal in the same transaction. The child's exit status is
	// returned unchanged.
	Install(ctx context.Context, req InstallRequest, conflicts []*domain.Package) (int, error)
}
