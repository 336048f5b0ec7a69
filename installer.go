package fragmen

import "context"

// InstallStatus describes how an installed copy relates to the registry.
type InstallStatus string

// InstallStatus constants.
const (
	StatusMissing  InstallStatus = "missing"
	StatusCurrent  InstallStatus = "current"
	StatusModified InstallStatus = "modified"
)

// Installer copies fragment sources into a consumer project.
type Installer interface {
	// Install copies the fragment's source verbatim to
	// <cfg.BaseDir>/<category>-<name>.<cfg.Language> and returns that path.
	// Returns ENOTFOUND, having written nothing, if the fragment does not exist.
	Install(ctx context.Context, slug Slug, cfg *Config) (string, error)

	// Status compares the installed copy of a fragment with the registry.
	// Returns ENOTFOUND if the fragment does not exist.
	Status(ctx context.Context, slug Slug, cfg *Config) (InstallStatus, error)
}
