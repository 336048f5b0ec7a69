package mock

import (
	"context"

	"github.com/fwojciec/fragmen"
)

var _ fragmen.Installer = (*Installer)(nil)

// Installer is a mock implementation of fragmen.Installer.
type Installer struct {
	InstallFn func(ctx context.Context, slug fragmen.Slug, cfg *fragmen.Config) (string, error)
	StatusFn  func(ctx context.Context, slug fragmen.Slug, cfg *fragmen.Config) (fragmen.InstallStatus, error)
}

func (i *Installer) Install(ctx context.Context, slug fragmen.Slug, cfg *fragmen.Config) (string, error) {
	return i.InstallFn(ctx, slug, cfg)
}

func (i *Installer) Status(ctx context.Context, slug fragmen.Slug, cfg *fragmen.Config) (fragmen.InstallStatus, error) {
	return i.StatusFn(ctx, slug, cfg)
}
