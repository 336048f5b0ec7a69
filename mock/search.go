package mock

import (
	"context"

	"github.com/fwojciec/fragmen"
)

var _ fragmen.SearchService = (*SearchService)(nil)

// SearchService is a mock implementation of fragmen.SearchService.
type SearchService struct {
	SearchFn func(ctx context.Context, query string, opts fragmen.SearchOptions) ([]fragmen.SearchResult, error)
}

func (s *SearchService) Search(ctx context.Context, query string, opts fragmen.SearchOptions) ([]fragmen.SearchResult, error) {
	return s.SearchFn(ctx, query, opts)
}
