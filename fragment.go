package fragmen

import (
	"context"
	"slices"
	"strings"
)

// SourceFile is the name of the single source file inside a fragment directory.
const SourceFile = "index.ts"

// Fragment represents a single distributable utility: its source text plus
// the metadata extracted from its documentation comment.
type Fragment struct {
	Category    string   `json:"category"`
	Name        string   `json:"name"`
	Slug        string   `json:"slug"`
	Source      string   `json:"source"`
	Description string   `json:"description"`
	Examples    []string `json:"examples"`
	Params      []Param  `json:"params"`
	Returns     Returns  `json:"returns"`
	Tags        []string `json:"tags"`
	Since       string   `json:"since,omitempty"`
}

// Param describes a single @param entry of a doc comment.
type Param struct {
	Name        string `json:"name"`
	Type        string `json:"type"`
	Description string `json:"description"`
}

// Returns describes the @returns entry of a doc comment.
// Both fields are empty when the comment has no @returns line.
type Returns struct {
	Type        string `json:"type"`
	Description string `json:"description"`
}

// NewFragment builds a Fragment from its location and source text.
// Metadata is extracted from the first doc comment; a missing or malformed
// comment leaves the metadata empty.
func NewFragment(category, name, source string) *Fragment {
	doc := ExtractDocComment(source)
	return &Fragment{
		Category:    category,
		Name:        name,
		Slug:        Slug{Category: category, Name: name}.String(),
		Source:      source,
		Description: doc.Description,
		Examples:    doc.Examples,
		Params:      doc.Params,
		Returns:     doc.Returns,
		Tags:        doc.Tags,
		Since:       doc.Since,
	}
}

// HasTag reports whether the fragment is labelled with tag.
func (f *Fragment) HasTag(tag string) bool {
	return slices.Contains(f.Tags, tag)
}

// Slug is the category/name pair that uniquely identifies a fragment.
type Slug struct {
	Category string
	Name     string
}

// ParseSlug parses a "category/name" string.
// Returns EINVALID if s is not exactly two usable path segments.
func ParseSlug(s string) (Slug, error) {
	category, name, ok := strings.Cut(s, "/")
	if !ok || strings.Contains(name, "/") {
		return Slug{}, Errorf(EINVALID, "invalid slug %q: expected category/name", s)
	}
	if !validSegment(category) || !validSegment(name) {
		return Slug{}, Errorf(EINVALID, "invalid slug %q: expected category/name", s)
	}
	return Slug{Category: category, Name: name}, nil
}

// validSegment rejects segments that would escape or break the registry layout.
func validSegment(s string) bool {
	if s == "" || s == "." || s == ".." {
		return false
	}
	return !strings.ContainsAny(s, "\\ \t\r\n")
}

// String returns the "category/name" form of the slug.
func (s Slug) String() string {
	return s.Category + "/" + s.Name
}

// FileName returns the file name a fragment is installed under in a
// consumer project, e.g. "array-chunk.ts".
func (s Slug) FileName(language string) string {
	return s.Category + "-" + s.Name + "." + language
}

// FragmentService represents a read-only view over the fragment registry.
// Every call reads the registry afresh; nothing is cached between calls.
type FragmentService interface {
	// ListCategories returns every category in lexicographic order.
	// A missing or unreadable registry yields an empty list.
	ListCategories(ctx context.Context) ([]string, error)

	// ListFragmentNames returns every fragment name within a category in
	// lexicographic order. A missing category yields an empty list.
	ListFragmentNames(ctx context.Context, category string) ([]string, error)

	// FindFragment retrieves a single fragment.
	// Returns ENOTFOUND if the fragment does not exist or cannot be read.
	FindFragment(ctx context.Context, category, name string) (*Fragment, error)

	// FindFragments retrieves fragments matching the filter. A zero filter
	// returns every fragment ordered by category, then name.
	FindFragments(ctx context.Context, filter FragmentFilter) ([]*Fragment, error)
}

// SortOrder represents the sort order for fragment queries.
type SortOrder string

// SortOrder constants for FragmentFilter.
const (
	SortBySlug  SortOrder = "slug"
	SortBySince SortOrder = "since"
)

// FragmentFilter represents a filter for FindFragments.
type FragmentFilter struct {
	Category *string `json:"category"`
	Tag      *string `json:"tag"`

	// Glob matched against the slug, e.g. "array/*" or "**/chunk*".
	Pattern string `json:"pattern"`

	Limit int `json:"limit"`

	SortBy SortOrder `json:"sortBy"`
}

// SortFragments orders fragments in place according to order.
// SortBySince puts the newest fragments first and undated ones last;
// fragments that compare equal keep their relative order.
func SortFragments(fragments []*Fragment, order SortOrder) {
	switch order {
	case SortBySince:
		slices.SortStableFunc(fragments, func(a, b *Fragment) int {
			switch {
			case a.Since == b.Since:
				return 0
			case a.Since == "":
				return 1
			case b.Since == "":
				return -1
			}
			return strings.Compare(b.Since, a.Since)
		})
	default:
		slices.SortStableFunc(fragments, func(a, b *Fragment) int {
			if c := strings.Compare(a.Category, b.Category); c != 0 {
				return c
			}
			return strings.Compare(a.Name, b.Name)
		})
	}
}
