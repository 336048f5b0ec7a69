package main

import (
	"fmt"
	"strings"

	"github.com/fwojciec/fragmen"
)

// Run executes the search command.
func (c *SearchCmd) Run(deps *Dependencies) error {
	query := strings.Join(c.Query, " ")

	results, err := deps.Search.Search(deps.Ctx, query, fragmen.SearchOptions{
		Category: c.Category,
		Limit:    c.Limit,
	})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", fragmen.ErrorMessage(err))
		return err
	}

	if len(results) == 0 {
		fmt.Fprintf(deps.Stdout, "No fragments match %q.\n", query)
		return nil
	}

	fragments := make([]*fragmen.Fragment, len(results))
	for i, r := range results {
		fragments[i] = r.Fragment
	}
	printFragments(deps.Stdout, fragments)
	return nil
}
