package sqlite

import (
	"context"
	"fmt"
	"strings"

	"github.com/fwojciec/fragmen"
)

// Compile-time interface verification.
var _ fragmen.SearchService = (*SearchService)(nil)

// SearchService implements fragmen.SearchService with an FTS5 index.
// The index is rebuilt from the registry on every search, so results always
// reflect the registry as it is on disk.
type SearchService struct {
	db        *DB
	fragments fragmen.FragmentService
}

// NewSearchService creates a new SearchService.
func NewSearchService(db *DB, fragments fragmen.FragmentService) *SearchService {
	return &SearchService{db: db, fragments: fragments}
}

// Search returns fragments matching query ordered by BM25 relevance.
func (s *SearchService) Search(ctx context.Context, query string, opts fragmen.SearchOptions) ([]fragmen.SearchResult, error) {
	match := matchExpression(query)
	if match == "" {
		return nil, fragmen.Errorf(fragmen.EINVALID, "search query required")
	}

	var filter fragmen.FragmentFilter
	if opts.Category != "" {
		filter.Category = &opts.Category
	}

	fragments, err := s.fragments.FindFragments(ctx, filter)
	if err != nil {
		return nil, err
	}

	if err := s.reindex(ctx, fragments); err != nil {
		return nil, fmt.Errorf("failed to index fragments: %w", err)
	}

	bySlug := make(map[string]*fragmen.Fragment, len(fragments))
	for _, f := range fragments {
		bySlug[f.Slug] = f
	}

	var q strings.Builder
	args := []any{match}

	// Column weights follow the table order: slug, name, category,
	// description, tags, examples.
	q.WriteString(`
		SELECT slug, bm25(fragment_index, 0.0, 10.0, 5.0, 2.0, 4.0, 1.0) AS score
		FROM fragment_index
		WHERE fragment_index MATCH ?
		ORDER BY score, slug`)
	appendLimit(&q, &args, opts.Limit)

	rows, err := s.db.QueryContext(ctx, q.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	results := []fragmen.SearchResult{}
	for rows.Next() {
		var slug string
		var score float64
		if err := rows.Scan(&slug, &score); err != nil {
			return nil, err
		}
		if f, ok := bySlug[slug]; ok {
			// bm25 is lower-is-better; flip it so higher means more relevant.
			results = append(results, fragmen.SearchResult{Fragment: f, Score: -score})
		}
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return results, nil
}

// reindex replaces the index contents with fragments.
func (s *SearchService) reindex(ctx context.Context, fragments []*fragmen.Fragment) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM fragment_index`); err != nil {
		return err
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO fragment_index (slug, name, category, description, tags, examples)
		VALUES (?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, f := range fragments {
		name := f.Name
		if split := splitIdentifier(f.Name); split != strings.ToLower(f.Name) {
			name += " " + split
		}
		if _, err := stmt.ExecContext(ctx,
			f.Slug, name, f.Category, f.Description,
			strings.Join(f.Tags, " "), strings.Join(f.Examples, "\n"),
		); err != nil {
			return err
		}
	}

	return tx.Commit()
}
