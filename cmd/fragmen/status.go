package main

import (
	"fmt"

	"github.com/fwojciec/fragmen"
)

// Run executes the status command. Fragments that are not installed are
// skipped.
func (c *StatusCmd) Run(deps *Dependencies) error {
	cfg, err := deps.Config.LoadConfig(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", fragmen.ErrorMessage(err))
		return err
	}

	fragments, err := deps.Fragments.FindFragments(deps.Ctx, fragmen.FragmentFilter{})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", fragmen.ErrorMessage(err))
		return err
	}

	installed := 0
	for _, f := range fragments {
		slug := fragmen.Slug{Category: f.Category, Name: f.Name}
		status, err := deps.Installer.Status(deps.Ctx, slug, cfg)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", fragmen.ErrorMessage(err))
			return err
		}
		if status == fragmen.StatusMissing {
			continue
		}
		installed++
		fmt.Fprintf(deps.Stdout, "%-8s  %s\n", status, slug)
	}

	if installed == 0 {
		fmt.Fprintln(deps.Stdout, "No fragments installed. Use 'fragmen add' to add one.")
	}
	return nil
}
