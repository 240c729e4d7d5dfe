package ports

import (
	"context"

	"go.trai.ch/kmpinstall/internal/core/domain"
)

// PackageDB queries the system package database and package archives.
//
//go:generate mockgen -source=packagedb.go -destination=mocks/mock_packagedb.go -package=mocks
type PackageDB interface {
	// InstalledKMPs lists every installed kernel module package together
	// with the modules it owns. A query failure is fatal to the caller:
	// installed state is required for conflict detection and must never be
	// silently treated as empty.
	InstalledKMPs(ctx context.Context) ([]*domain.Package, error)

	// ArchiveIdentity returns the true name-version-release.arch identity of
	// a package archive on disk, read from its metadata rather than its
	// file name.
	ArchiveIdentity(ctx context.Context, path string) (string, error)

	// ArchiveManifest lists every file the archive would install.
	ArchiveManifest(ctx context.Context, path string) ([]string, error)
}
