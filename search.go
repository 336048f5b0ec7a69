package fragmen

import "context"

// SearchService provides full-text search over fragments.
type SearchService interface {
	// Search returns fragments matching query, most relevant first.
	// Returns EINVALID if query is blank.
	Search(ctx context.Context, query string, opts SearchOptions) ([]SearchResult, error)
}

// SearchOptions configures search behavior.
type SearchOptions struct {
	// Restrict results to a single category.
	Category string `json:"category,omitempty"`

	// Maximum number of results to return
	Limit int `json:"limit,omitempty"`
}

// SearchResult represents a search match.
type SearchResult struct {
	Fragment *Fragment `json:"fragment"`
	Score    float64   `json:"score"`
}
