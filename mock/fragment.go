package mock

import (
	"context"

	"github.com/fwojciec/fragmen"
)

var _ fragmen.FragmentService = (*FragmentService)(nil)

// FragmentService is a mock implementation of fragmen.FragmentService.
type FragmentService struct {
	ListCategoriesFn    func(ctx context.Context) ([]string, error)
	ListFragmentNamesFn func(ctx context.Context, category string) ([]string, error)
	FindFragmentFn      func(ctx context.Context, category, name string) (*fragmen.Fragment, error)
	FindFragmentsFn     func(ctx context.Context, filter fragmen.FragmentFilter) ([]*fragmen.Fragment, error)
}

func (s *FragmentService) ListCategories(ctx context.Context) ([]string, error) {
	return s.ListCategoriesFn(ctx)
}

func (s *FragmentService) ListFragmentNames(ctx context.Context, category string) ([]string, error) {
	return s.ListFragmentNamesFn(ctx, category)
}

func (s *FragmentService) FindFragment(ctx context.Context, category, name string) (*fragmen.Fragment, error) {
	return s.FindFragmentFn(ctx, category, name)
}

func (s *FragmentService) FindFragments(ctx context.Context, filter fragmen.FragmentFilter) ([]*fragmen.Fragment, error) {
	return s.FindFragmentsFn(ctx, filter)
}
