// Package domain holds the package records, transaction plans and conflict
// rules for kernel module package installation.
package domain

import "strings"

// DefaultKMPInfix is the naming convention marking kernel module packages.
const DefaultKMPInfix = "-kmp-"

// Package is one package record, either parsed out of a dry-run transaction
// plan or read back from the installed package database.
type Package struct {
	Name    string
	Version string // "<version>-<release>"
	Arch    string

	// Repo identifies where the package comes from. Empty when the plan did
	// not name one; the "plain RPM files" sentinel when the user supplied the
	// archive on the command line.
	Repo string

	// Details carries any extra context lines the package manager printed
	// underneath the package line. The first entry doubles as Repo when the
	// package line itself carried none.
	Details []string

	// Path is the on-disk location of the package archive, filled in by the
	// locator once the download cache has been searched.
	Path string

	// Modules lists the module keys this package provides, in discovery
	// order with duplicates collapsed.
	Modules []string

	seen map[string]struct{}
}

// NewPackage builds a Package record if name follows the kernel module
// package naming convention. Names without the infix yield nil: packages
// that cannot carry kernel modules never enter conflict detection.
func NewPackage(name, version, arch, infix string) *Package {
	if !strings.Contains(name, infix) {
		return nil
	}
	return &Package{
		Name:    name,
		Version: NormalizeVersion(version),
		Arch:    arch,
	}
}

// Identity returns the full name-version-release.arch identity that
// distinguishes one installed package instance from another.
func (p *Package) Identity() string {
	return p.Name + "-" + p.Version + "." + p.Arch
}

// AddModule records a module under its comparison key. Duplicates are
// collapsed, insertion order is kept.
func (p *Package) AddModule(kernelVersion, name string) {
	key := ModuleKey(kernelVersion, name)
	if p.seen == nil {
		p.seen = make(map[string]struct{})
	}
	if _, dup := p.seen[key]; dup {
		return
	}
	p.seen[key] = struct{}{}
	p.Modules = append(p.Modules, key)
}

// AddModuleFile records the module a file path denotes, if it denotes one.
// Non-module files are ignored.
func (p *Package) AddModuleFile(path string) bool {
	version, name, ok := MatchModule(path)
	if !ok {
		return false
	}
	p.AddModule(version, name)
	return true
}

// NormalizeVersion reduces an "old -> new" upgrade transition printed by the
// package manager to just the new version. Plain versions pass through.
func NormalizeVersion(v string) string {
	if _, after, found := strings.Cut(v, "->"); found {
		return strings.TrimSpace(after)
	}
	return strings.TrimSpace(v)
}
