package domain

// Conflict pairs an installed package that must be removed with the incoming
// package that now owns one of its kernel modules.
type Conflict struct {
	// Installed is the currently installed package to remove.
	Installed *Package
	// With is the name of the incoming package owning the shared module.
	With string
	// Module is the shared module key.
	Module string
}

// FindConflicts returns the installed packages that own a kernel module an
// incoming package will also own, in inventory order.
//
// Installed packages the plan already supersedes are never conflicts: a
// package whose name appears in the install list is being upgraded in place,
// and a package whose identity appears in the remove list is already on its
// way out. One shared module is enough to mark a package; its remaining
// modules are not checked.
func FindConflicts(plan *Plan, installed []*Package) []Conflict {
	removing := make(map[string]struct{}, len(plan.Remove))
	for _, pkg := range plan.Remove {
		removing[pkg.Identity()] = struct{}{}
	}

	incoming := make(map[string]struct{}, len(plan.Install))
	// owners maps each incoming module key to one owning package name. When
	// two incoming packages claim the same module the later one wins; the
	// name is only reported, the removal decision does not depend on it.
	owners := make(map[string]string)
	for _, pkg := range plan.Install {
		incoming[pkg.Name] = struct{}{}
		for _, mod := range pkg.Modules {
			owners[mod] = pkg.Name
		}
	}

	var conflicts []Conflict
	for _, pkg := range installed {
		if _, updating := incoming[pkg.Name]; updating {
			continue
		}
		if _, removed := removing[pkg.Identity()]; removed {
			continue
		}
		for _, mod := range pkg.Modules {
			if with, shared := owners[mod]; shared {
				conflicts = append(conflicts, Conflict{Installed: pkg, With: with, Module: mod})
				break
			}
		}
	}
	return conflicts
}
