package main

import (
	"fmt"

	"github.com/fwojciec/storegen"
)

// Run executes the delete command.
func (c *DeleteCmd) Run(deps *Dependencies) error {
	if !c.Force {
		fmt.Fprintf(deps.Stderr, "error: use --force to confirm deletion\n")
		return storegen.Errorf(storegen.EINVALID, "use --force to confirm deletion")
	}

	if err := deps.Stores.DeleteStore(deps.Ctx, c.ID); err != nil {
		if storegen.ErrorCode(err) == storegen.ENOTFOUND {
			fmt.Fprintf(deps.Stderr, "error: store %q not found. Use 'storegen list' to see available stores.\n", c.ID)
			return err
		}
		fmt.Fprintf(deps.Stderr, "error: %s\n", storegen.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Deleted store %s\n", c.ID)
	return nil
}
