package main

import (
	"cmp"
	"fmt"

	"github.com/fwojciec/fragmen"
)

// Run executes the init command.
func (c *InitCmd) Run(deps *Dependencies) error {
	defaults, err := deps.Config.LoadConfig(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", fragmen.ErrorMessage(err))
		return err
	}

	cfg, err := deps.Prompter.Prompt(deps.Ctx, defaults)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", fragmen.ErrorMessage(err))
		return err
	}

	if err := deps.Config.SaveConfig(deps.Ctx, cfg); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", fragmen.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Wrote %s\n", cmp.Or(deps.ConfigPath, fragmen.ConfigFile))
	return nil
}
