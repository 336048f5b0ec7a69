package main

import (
	"fmt"

	"github.com/fwojciec/fragmen"
)

// Run executes the categories command.
func (c *CategoriesCmd) Run(deps *Dependencies) error {
	categories, err := deps.Fragments.ListCategories(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", fragmen.ErrorMessage(err))
		return err
	}

	if len(categories) == 0 {
		fmt.Fprintln(deps.Stdout, "No categories found.")
		return nil
	}

	for _, category := range categories {
		fmt.Fprintln(deps.Stdout, category)
	}
	return nil
}
