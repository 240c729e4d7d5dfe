// Package locator resolves planned packages to their downloaded archives on
// disk and discovers the kernel modules each archive carries.
package locator

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/kmpinstall/internal/core/domain"
	"go.trai.ch/kmpinstall/internal/core/ports"
	"go.trai.ch/zerr"
)

// Locator fills in the Path and Modules of planned packages. Resolution
// failures are reported per package and never abort the batch: a package
// without modules simply cannot conflict, which is the safe direction.
type Locator struct {
	db      ports.PackageDB
	manager ports.PackageManager
	logger  ports.Logger

	// localRepo is the repository label marking archives the user supplied
	// directly on the command line.
	localRepo string

	// cacheDirs memoizes repository cache lookups for the lifetime of this
	// Locator. One run never revisits a repository whose on-disk cache could
	// change mid-run.
	cacheDirs map[string]cacheEntry
}

type cacheEntry struct {
	dir string
	err error
}

// New creates a Locator.
func New(db ports.PackageDB, manager ports.PackageManager, logger ports.Logger, localRepo string) *Locator {
	return &Locator{
		db:        db,
		manager:   manager,
		logger:    logger,
		localRepo: localRepo,
		cacheDirs: make(map[string]cacheEntry),
	}
}

// Resolve locates the downloaded archive of every planned package and
// populates its module set from the archive manifest. args is the original
// install argument list; entries naming local archive files serve packages
// the manager attributes to the local file cache.
func (l *Locator) Resolve(ctx context.Context, pkgs []*domain.Package, args []string) {
	local := l.indexLocalArchives(ctx, args)

	for _, pkg := range pkgs {
		switch {
		case pkg.Repo == l.localRepo:
			path, ok := local[pkg.Identity()]
			if !ok {
				l.logger.Error(zerr.With(zerr.With(domain.ErrArchiveNotFound,
					"package", pkg.Name), "wanted", pkg.Identity()))
				continue
			}
			pkg.Path = path
		case pkg.Repo == "":
			l.logger.Error(zerr.With(zerr.With(domain.ErrArchiveNotFound,
				"package", pkg.Name), "reason", "plan names no repository"))
		default:
			l.resolveFromCache(ctx, pkg)
		}
	}

	for _, pkg := range pkgs {
		if pkg.Path == "" {
			continue
		}
		files, err := l.db.ArchiveManifest(ctx, pkg.Path)
		if err != nil {
			l.logger.Error(zerr.With(zerr.With(zerr.Wrap(err, "failed to read archive manifest"),
				"package", pkg.Name), "path", pkg.Path))
			continue
		}
		for _, file := range files {
			pkg.AddModuleFile(file)
		}
	}
}

// indexLocalArchives maps the true identity of every argument naming an
// existing archive file to its path. Identities come from the archive
// metadata, not the file name.
func (l *Locator) indexLocalArchives(ctx context.Context, args []string) map[string]string {
	local := make(map[string]string)
	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil || !info.Mode().IsRegular() {
			continue
		}
		identity, err := l.db.ArchiveIdentity(ctx, arg)
		if err != nil {
			l.logger.Warn("skipping unreadable archive " + arg)
			continue
		}
		local[identity] = arg
	}
	return local
}

func (l *Locator) resolveFromCache(ctx context.Context, pkg *domain.Package) {
	dir, err := l.repoCacheDir(ctx, pkg.Repo)
	if err != nil {
		l.logger.Error(zerr.With(zerr.With(zerr.Wrap(err, "cannot locate repository cache"),
			"package", pkg.Name), "repo", pkg.Repo))
		return
	}
	path, found := findArchive(dir, archiveName(pkg))
	if !found {
		l.logger.Error(zerr.With(zerr.With(zerr.With(domain.ErrArchiveNotFound,
			"package", pkg.Name), "repo", pkg.Repo), "dir", dir))
		return
	}
	pkg.Path = path
}

// repoCacheDir queries the manager once per distinct repository name.
func (l *Locator) repoCacheDir(ctx context.Context, repo string) (string, error) {
	if entry, hit := l.cacheDirs[repo]; hit {
		return entry.dir, entry.err
	}
	dir, err := l.manager.RepoCacheDir(ctx, repo)
	l.cacheDirs[repo] = cacheEntry{dir: dir, err: err}
	return dir, err
}

// archiveName is the file name the manager stores a downloaded package
// under.
func archiveName(pkg *domain.Package) string {
	return pkg.Name + "-" + pkg.Version + "." + pkg.Arch + ".rpm"
}

// findArchive searches the cache tree for a file with the given name.
func findArchive(dir, name string) (string, bool) {
	var match string
	_ = filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil //nolint:nilerr // unreadable subtrees are skipped, not fatal
		}
		if !d.IsDir() && d.Name() == name {
			match = path
			return fs.SkipAll
		}
		return nil
	})
	return match, match != ""
}
