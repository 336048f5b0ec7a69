package main

import (
	"fmt"

	"github.com/fwojciec/fragmen"
)

// Run executes the add command. Slugs are installed in order and the
// command stops at the first failure.
func (c *AddCmd) Run(deps *Dependencies) error {
	cfg, err := deps.Config.LoadConfig(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", fragmen.ErrorMessage(err))
		return err
	}

	for _, s := range c.Slugs {
		slug, err := fragmen.ParseSlug(s)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", fragmen.ErrorMessage(err))
			return err
		}

		dest, err := deps.Installer.Install(deps.Ctx, slug, cfg)
		if err != nil {
			if fragmen.ErrorCode(err) == fragmen.ENOTFOUND {
				fmt.Fprintf(deps.Stderr, "error: fragment %q not found. Use 'fragmen list' to see available fragments.\n", s)
				return err
			}
			fmt.Fprintf(deps.Stderr, "error: %s\n", fragmen.ErrorMessage(err))
			return err
		}

		fmt.Fprintf(deps.Stdout, "Added %s to %s\n", slug, dest)
	}

	return nil
}
