package main

import (
	"fmt"

	"github.com/fwojciec/fragmen"
)

// Run executes the related command.
func (c *RelatedCmd) Run(deps *Dependencies) error {
	target, err := findFragment(deps, c.Slug)
	if err != nil {
		return err
	}

	all, err := deps.Fragments.FindFragments(deps.Ctx, fragmen.FragmentFilter{})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", fragmen.ErrorMessage(err))
		return err
	}

	related := fragmen.FindRelated(target, all, c.Limit)
	if len(related) == 0 {
		fmt.Fprintf(deps.Stdout, "No fragments related to %s.\n", target.Slug)
		return nil
	}

	printFragments(deps.Stdout, related)
	return nil
}
