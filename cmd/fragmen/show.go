package main

import (
	"fmt"

	"github.com/fwojciec/fragmen"
)

// Run executes the show command.
func (c *ShowCmd) Run(deps *Dependencies) error {
	f, err := findFragment(deps, c.Slug)
	if err != nil {
		return err
	}

	if c.Raw {
		fmt.Fprint(deps.Stdout, f.Source)
		return nil
	}

	out, err := deps.Renderer.Render(fragmen.FormatFragment(f))
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", fragmen.ErrorMessage(err))
		return err
	}

	fmt.Fprint(deps.Stdout, out)
	return nil
}

// findFragment parses s and loads the fragment it names, reporting failures
// on stderr.
func findFragment(deps *Dependencies, s string) (*fragmen.Fragment, error) {
	slug, err := fragmen.ParseSlug(s)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", fragmen.ErrorMessage(err))
		return nil, err
	}

	f, err := deps.Fragments.FindFragment(deps.Ctx, slug.Category, slug.Name)
	if err != nil {
		if fragmen.ErrorCode(err) == fragmen.ENOTFOUND {
			fmt.Fprintf(deps.Stderr, "error: fragment %q not found. Use 'fragmen list' to see available fragments.\n", s)
			return nil, err
		}
		fmt.Fprintf(deps.Stderr, "error: %s\n", fragmen.ErrorMessage(err))
		return nil, err
	}
	return f, nil
}
