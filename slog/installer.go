package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/fragmen"
)

// Ensure LoggingInstaller implements fragmen.Installer.
var _ fragmen.Installer = (*LoggingInstaller)(nil)

// LoggingInstaller wraps an Installer with logging.
type LoggingInstaller struct {
	next   fragmen.Installer
	logger *slog.Logger
}

// NewLoggingInstaller creates a new LoggingInstaller.
func NewLoggingInstaller(next fragmen.Installer, logger *slog.Logger) *LoggingInstaller {
	return &LoggingInstaller{next: next, logger: logger}
}

// Install delegates to the wrapped installer and logs the operation.
func (i *LoggingInstaller) Install(ctx context.Context, slug fragmen.Slug, cfg *fragmen.Config) (dest string, err error) {
	defer func(begin time.Time) {
		i.logger.Info("install fragment",
			"slug", slug.String(),
			"dest", dest,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return i.next.Install(ctx, slug, cfg)
}

// Status delegates to the wrapped installer and logs the operation.
func (i *LoggingInstaller) Status(ctx context.Context, slug fragmen.Slug, cfg *fragmen.Config) (status fragmen.InstallStatus, err error) {
	defer func(begin time.Time) {
		i.logger.Debug("fragment status",
			"slug", slug.String(),
			"status", string(status),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return i.next.Status(ctx, slug, cfg)
}
