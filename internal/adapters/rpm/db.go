// Package rpm queries the system package database and local package
// archives through the rpm CLI.
package rpm

import (
	"context"
	"strings"

	"go.trai.ch/kmpinstall/internal/core/domain"
	"go.trai.ch/kmpinstall/internal/core/ports"
	"go.trai.ch/zerr"
)

// inventoryFormat prints one line per owned file so module ownership can be
// resolved in the same query as the package identity. The scalar tags sit
// inside the iteration: rpm repeats them on every element, while tags
// outside it would print once per package and leave the remaining file
// lines unprefixed.
const inventoryFormat = "[%{NAME} %{VERSION} %{RELEASE} %{ARCH} %{FILENAMES}\n]"

// identityFormat prints the archive's full identity without a trailing
// newline.
const identityFormat = "%{NAME}-%{VERSION}-%{RELEASE}.%{ARCH}"

// DB implements ports.PackageDB over the rpm CLI.
type DB struct {
	runner ports.Runner
	bin    string
	infix  string
}

// NewDB creates a DB invoking the given rpm binary.
func NewDB(runner ports.Runner, bin, infix string) *DB {
	return &DB{
		runner: runner,
		bin:    bin,
		infix:  infix,
	}
}

// InstalledKMPs lists every installed kernel module package with the modules
// it owns. A package owning N files produces N query lines; lines are
// grouped by the full name-version-release.arch identity so one installed
// instance accumulates into one record.
func (d *DB) InstalledKMPs(ctx context.Context) ([]*domain.Package, error) {
	var pkgs []*domain.Package
	byIdentity := make(map[string]*domain.Package)

	code, err := d.runner.Run(ctx, ports.Command{
		Argv: []string{d.bin, "-qa", "*" + d.infix + "*", "--qf", inventoryFormat},
		Mode: ports.IOCapture,
		Line: func(line string) {
			name, version, release, arch, file, ok := splitInventoryLine(line)
			if !ok {
				return
			}
			identity := name + "-" + version + "-" + release + "." + arch
			pkg, seen := byIdentity[identity]
			if !seen {
				pkg = domain.NewPackage(name, version+"-"+release, arch, d.infix)
				if pkg == nil {
					return
				}
				byIdentity[identity] = pkg
				pkgs = append(pkgs, pkg)
			}
			pkg.AddModuleFile(file)
		},
	})
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrInventoryFailed.Error())
	}
	if code != 0 {
		return nil, zerr.With(domain.ErrInventoryFailed, "exit_code", code)
	}
	return pkgs, nil
}

// splitInventoryLine splits "name version release arch path". The path is
// the remainder of the line, taken verbatim.
func splitInventoryLine(line string) (name, version, release, arch, file string, ok bool) {
	parts := strings.SplitN(line, " ", 5)
	if len(parts) != 5 || parts[0] == "" {
		return "", "", "", "", "", false
	}
	return parts[0], parts[1], parts[2], parts[3], parts[4], true
}

// ArchiveIdentity reads an archive's true identity from its metadata. File
// names are not trusted; a renamed archive still resolves correctly.
func (d *DB) ArchiveIdentity(ctx context.Context, path string) (string, error) {
	var identity string
	code, err := d.runner.Run(ctx, ports.Command{
		Argv: []string{d.bin, "-qp", "--qf", identityFormat, path},
		Mode: ports.IOCapture,
		Line: func(line string) {
			if identity == "" {
				identity = strings.TrimSpace(line)
			}
		},
	})
	if err != nil {
		return "", err
	}
	if code != 0 || identity == "" {
		return "", zerr.With(zerr.With(domain.ErrArchiveQueryFailed, "path", path), "exit_code", code)
	}
	return identity, nil
}

// ArchiveManifest lists every file the archive would install.
func (d *DB) ArchiveManifest(ctx context.Context, path string) ([]string, error) {
	var files []string
	code, err := d.runner.Run(ctx, ports.Command{
		Argv: []string{d.bin, "-qlp", path},
		Mode: ports.IOCapture,
		Line: func(line string) {
			if line != "" {
				files = append(files, line)
			}
		},
	})
	if err != nil {
		return nil, err
	}
	if code != 0 {
		return nil, zerr.With(zerr.With(domain.ErrArchiveQueryFailed, "path", path), "exit_code", code)
	}
	return files, nil
}
