// Package fs provides file-based implementations of the fragmen services.
// The registry directory tree is the system of record: categories and
// fragment names are directory names, and nothing is indexed or cached.
package fs

import (
	"context"
	"os"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/fwojciec/fragmen"
	"golang.org/x/sync/errgroup"
)

// readConcurrency bounds the number of fragment files read at once.
const readConcurrency = 8

// Ensure FragmentService implements fragmen.FragmentService at compile time.
var _ fragmen.FragmentService = (*FragmentService)(nil)

// FragmentService reads fragments from a registry laid out as
// <root>/<category>/<name>/index.ts.
type FragmentService struct {
	root string
}

// NewFragmentService creates a new FragmentService rooted at root.
func NewFragmentService(root string) *FragmentService {
	return &FragmentService{root: root}
}

// ListCategories returns the registry's category directories, sorted.
func (s *FragmentService) ListCategories(ctx context.Context) ([]string, error) {
	return listDirs(s.root), nil
}

// ListFragmentNames returns the fragment directories of a category, sorted.
func (s *FragmentService) ListFragmentNames(ctx context.Context, category string) ([]string, error) {
	if !validName(category) {
		return []string{}, nil
	}
	return listDirs(filepath.Join(s.root, category)), nil
}

// FindFragment reads and parses a single fragment.
func (s *FragmentService) FindFragment(ctx context.Context, category, name string) (*fragmen.Fragment, error) {
	slug := fragmen.Slug{Category: category, Name: name}
	if !validName(category) || !validName(name) {
		return nil, fragmen.Errorf(fragmen.ENOTFOUND, "fragment %q not found", slug)
	}

	data, err := os.ReadFile(filepath.Join(s.root, category, name, fragmen.SourceFile))
	if err != nil {
		return nil, fragmen.Errorf(fragmen.ENOTFOUND, "fragment %q not found", slug)
	}

	return fragmen.NewFragment(category, name, string(data)), nil
}

// FindFragments walks the registry and returns the fragments matching filter.
func (s *FragmentService) FindFragments(ctx context.Context, filter fragmen.FragmentFilter) ([]*fragmen.Fragment, error) {
	if filter.Pattern != "" && !doublestar.ValidatePattern(filter.Pattern) {
		return nil, fragmen.Errorf(fragmen.EINVALID, "invalid pattern %q", filter.Pattern)
	}

	categories := listDirs(s.root)
	if filter.Category != nil {
		categories = filterCategory(categories, *filter.Category)
	}

	var slugs []fragmen.Slug
	for _, category := range categories {
		for _, name := range listDirs(filepath.Join(s.root, category)) {
			slugs = append(slugs, fragmen.Slug{Category: category, Name: name})
		}
	}

	// Each slot is written by exactly one goroutine; absent fragments stay nil.
	found := make([]*fragmen.Fragment, len(slugs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(readConcurrency)
	for i, slug := range slugs {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			f, err := s.FindFragment(gctx, slug.Category, slug.Name)
			if fragmen.ErrorCode(err) == fragmen.ENOTFOUND {
				return nil
			} else if err != nil {
				return err
			}
			found[i] = f
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	fragments := []*fragmen.Fragment{}
	for _, f := range found {
		if f != nil && matchFilter(f, filter) {
			fragments = append(fragments, f)
		}
	}

	fragmen.SortFragments(fragments, filter.SortBy)

	if filter.Limit > 0 && len(fragments) > filter.Limit {
		fragments = fragments[:filter.Limit]
	}

	return fragments, nil
}

// matchFilter reports whether f satisfies the tag and pattern parts of filter.
// The pattern has been validated by the caller.
func matchFilter(f *fragmen.Fragment, filter fragmen.FragmentFilter) bool {
	if filter.Tag != nil && !f.HasTag(*filter.Tag) {
		return false
	}
	if filter.Pattern != "" {
		ok, _ := doublestar.Match(filter.Pattern, f.Slug)
		return ok
	}
	return true
}

func filterCategory(categories []string, category string) []string {
	for _, c := range categories {
		if c == category {
			return []string{c}
		}
	}
	return nil
}

// listDirs returns the sorted names of the immediate subdirectories of dir.
// Any read error yields an empty list.
func listDirs(dir string) []string {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return []string{}
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if isDir(dir, e) {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)
	return names
}

// isDir reports whether e is a directory, following symlinks.
func isDir(dir string, e os.DirEntry) bool {
	if e.IsDir() {
		return true
	}
	if e.Type()&os.ModeSymlink == 0 {
		return false
	}
	info, err := os.Stat(filepath.Join(dir, e.Name()))
	return err == nil && info.IsDir()
}

// validName reports whether name can be used as a single registry path segment.
func validName(name string) bool {
	return name != "" && name != "." && name != ".." && filepath.Base(name) == name
}
