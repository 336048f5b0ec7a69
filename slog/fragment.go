// Package slog provides logging decorators for fragmen services.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/fragmen"
)

// Ensure LoggingFragmentService implements fragmen.FragmentService.
var _ fragmen.FragmentService = (*LoggingFragmentService)(nil)

// LoggingFragmentService wraps a FragmentService with debug logging.
type LoggingFragmentService struct {
	next   fragmen.FragmentService
	logger *slog.Logger
}

// NewLoggingFragmentService creates a new LoggingFragmentService.
func NewLoggingFragmentService(next fragmen.FragmentService, logger *slog.Logger) *LoggingFragmentService {
	return &LoggingFragmentService{next: next, logger: logger}
}

// ListCategories delegates to the wrapped service and logs the operation.
func (s *LoggingFragmentService) ListCategories(ctx context.Context) (categories []string, err error) {
	defer func(begin time.Time) {
		s.logger.Debug("list categories",
			"count", len(categories),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.ListCategories(ctx)
}

// ListFragmentNames delegates to the wrapped service and logs the operation.
func (s *LoggingFragmentService) ListFragmentNames(ctx context.Context, category string) (names []string, err error) {
	defer func(begin time.Time) {
		s.logger.Debug("list fragment names",
			"category", category,
			"count", len(names),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.ListFragmentNames(ctx, category)
}

// FindFragment delegates to the wrapped service and logs the operation.
func (s *LoggingFragmentService) FindFragment(ctx context.Context, category, name string) (f *fragmen.Fragment, err error) {
	defer func(begin time.Time) {
		s.logger.Debug("find fragment",
			"slug", category+"/"+name,
			"found", f != nil,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.FindFragment(ctx, category, name)
}

// FindFragments delegates to the wrapped service and logs the operation.
func (s *LoggingFragmentService) FindFragments(ctx context.Context, filter fragmen.FragmentFilter) (fragments []*fragmen.Fragment, err error) {
	defer func(begin time.Time) {
		s.logger.Debug("find fragments",
			"pattern", filter.Pattern,
			"count", len(fragments),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.FindFragments(ctx, filter)
}
