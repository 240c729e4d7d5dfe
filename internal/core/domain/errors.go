package domain

import "go.trai.ch/zerr"

var (
	// ErrNoTargets is returned when the command line names nothing to install.
	ErrNoTargets = zerr.New("no packages specified")

	// ErrDryRunFailed is returned when the package manager dry run fails,
	// after the interactive retry also failed or was not possible.
	ErrDryRunFailed = zerr.New("package manager dry run failed")

	// ErrInventoryFailed is returned when the installed kernel module
	// packages cannot be listed. The inventory is required for correctness;
	// it is never treated as empty on failure.
	ErrInventoryFailed = zerr.New("failed to query installed kernel module packages")

	// ErrInstallFailed is returned when the final install invocation cannot
	// be started.
	ErrInstallFailed = zerr.New("package installation failed")

	// ErrRepoCacheNotFound is returned when a repository's download cache
	// directory cannot be determined.
	ErrRepoCacheNotFound = zerr.New("repository cache directory not found")

	// ErrArchiveNotFound is returned when a package archive cannot be
	// located on disk.
	ErrArchiveNotFound = zerr.New("package archive not found")

	// ErrArchiveQueryFailed is returned when a package archive cannot be
	// inspected.
	ErrArchiveQueryFailed = zerr.New("failed to query package archive")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrCommandFailed is returned when a child process cannot be started or
	// its output cannot be read. A clean non-zero exit is not this error.
	ErrCommandFailed = zerr.New("failed to run command")
)
