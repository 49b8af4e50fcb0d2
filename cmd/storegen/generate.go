package main

import (
	"fmt"

	"github.com/fwojciec/storegen"
)

// Run executes the generate command.
func (c *GenerateCmd) Run(deps *Dependencies) error {
	if err := deps.Generator.Generate(deps.Ctx, c.ID); err != nil {
		if storegen.ErrorCode(err) == storegen.ENOTFOUND {
			fmt.Fprintf(deps.Stderr, "error: store %q not found. Use 'storegen list' to see available stores.\n", c.ID)
			return err
		}
		fmt.Fprintf(deps.Stderr, "error: %s\n", storegen.ErrorMessage(err))
		return err
	}

	return printStoreSummary(deps, c.ID)
}
