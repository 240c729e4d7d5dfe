// Package zypper drives the zypper package manager for dry runs, repository
// introspection and the final install transaction.
package zypper

import (
	"context"
	"strings"

	"go.trai.ch/kmpinstall/internal/core/domain"
	"go.trai.ch/kmpinstall/internal/core/ports"
	"go.trai.ch/zerr"
)

// mdCacheField is the label zypper prints for a repository's metadata cache
// directory.
const mdCacheField = "MD Cache Path"

// Manager implements ports.PackageManager over the zypper CLI.
type Manager struct {
	runner ports.Runner
	bin    string
	infix  string
}

// NewManager creates a Manager invoking the given zypper binary.
func NewManager(runner ports.Runner, bin, infix string) *Manager {
	return &Manager{
		runner: runner,
		bin:    bin,
		infix:  infix,
	}
}

// DryRunInstall runs the install in download-only mode and parses the
// announced transaction. The non-interactive variant silences stdin and
// stderr so zypper can never block on a prompt; the interactive variant
// mirrors output to the terminal and inherits stdin so the user can answer
// license and conflict prompts. Exit status is reported as data.
func (m *Manager) DryRunInstall(ctx context.Context, req ports.InstallRequest, interactive bool) (*domain.Plan, int, error) {
	argv := []string{m.bin}
	argv = append(argv, req.Globals...)
	if !interactive && !hasNonInteractive(req.Globals) {
		argv = append(argv, "--non-interactive")
	}
	argv = append(argv, "-vv", "install", "--download-only")
	argv = append(argv, req.Targets...)

	mode := ports.IOCapture
	if interactive {
		mode = ports.IOCaptureTee
	}

	parser := NewParser(m.infix)
	code, err := m.runner.Run(ctx, ports.Command{Argv: argv, Mode: mode, Line: parser.Feed})
	if err != nil {
		return nil, -1, err
	}
	parser.Flush()
	return parser.Plan(), code, nil
}

// RepoCacheDir resolves the directory where zypper keeps downloaded archives
// for the named repository. The repository listing reports the metadata
// cache under .../raw/...; the archives live in the parallel
// .../packages/... tree.
func (m *Manager) RepoCacheDir(ctx context.Context, repo string) (string, error) {
	var dir string
	code, err := m.runner.Run(ctx, ports.Command{
		Argv: []string{m.bin, "lr", repo},
		Mode: ports.IOCapture,
		Line: func(line string) {
			if dir != "" {
				return
			}
			key, value, found := strings.Cut(line, ":")
			if found && strings.TrimSpace(key) == mdCacheField {
				dir = strings.TrimSpace(value)
			}
		},
	})
	if err != nil {
		return "", err
	}
	if code != 0 || dir == "" {
		return "", zerr.With(domain.ErrRepoCacheNotFound, "repo", repo)
	}
	return strings.Replace(dir, "/raw/", "/packages/", 1), nil
}

// Install performs the real transaction, pinning every conflicting package
// for removal so zypper drops it instead of leaving two owners for one
// module path. The child's exit status is propagated unchanged.
func (m *Manager) Install(ctx context.Context, req ports.InstallRequest, conflicts []*domain.Package) (int, error) {
	argv := []string{m.bin}
	argv = append(argv, req.Globals...)
	argv = append(argv, "install")
	argv = append(argv, req.Targets...)
	for _, pkg := range conflicts {
		argv = append(argv, removeConstraint(pkg))
	}

	code, err := m.runner.Run(ctx, ports.Command{Argv: argv, Mode: ports.IOInherit})
	if err != nil {
		return -1, err
	}
	return code, nil
}

// removeConstraint pins one package version for removal inside the install
// transaction, in zypper's negative capability syntax.
func removeConstraint(pkg *domain.Package) string {
	return "!" + pkg.Name + "." + pkg.Arch + "=" + pkg.Version
}

func hasNonInteractive(globals []string) bool {
	for _, g := range globals {
		if g == "-n" || g == "--non-interactive" {
			return true
		}
	}
	return false
}
