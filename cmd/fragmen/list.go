package main

import (
	"fmt"
	"io"

	"github.com/fwojciec/fragmen"
)

// Run executes the list command.
func (c *ListCmd) Run(deps *Dependencies) error {
	filter := fragmen.FragmentFilter{
		Pattern: c.Pattern,
		Limit:   c.Limit,
	}
	if c.Category != "" {
		filter.Category = &c.Category
	}
	if c.Tag != "" {
		filter.Tag = &c.Tag
	}
	if c.New {
		filter.SortBy = fragmen.SortBySince
	}

	fragments, err := deps.Fragments.FindFragments(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", fragmen.ErrorMessage(err))
		return err
	}

	if len(fragments) == 0 {
		fmt.Fprintln(deps.Stdout, "No fragments found.")
		return nil
	}

	printFragments(deps.Stdout, fragments)
	return nil
}

// printFragments writes one "slug  description" line per fragment.
func printFragments(w io.Writer, fragments []*fragmen.Fragment) {
	for _, f := range fragments {
		if f.Description == "" {
			fmt.Fprintln(w, f.Slug)
			continue
		}
		fmt.Fprintf(w, "%s  %s\n", f.Slug, f.Description)
	}
}
