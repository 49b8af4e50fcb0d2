package main

import (
	"fmt"

	"github.com/fwojciec/storegen"
)

// Run executes the publish command.
func (c *PublishCmd) Run(deps *Dependencies) error {
	store, err := deps.Stores.FindStoreByID(deps.Ctx, c.ID)
	if err != nil {
		if storegen.ErrorCode(err) == storegen.ENOTFOUND {
			fmt.Fprintf(deps.Stderr, "error: store %q not found. Use 'storegen list' to see available stores.\n", c.ID)
			return err
		}
		fmt.Fprintf(deps.Stderr, "error: %s\n", storegen.ErrorMessage(err))
		return err
	}

	if !c.Unpublish && store.Status != storegen.StatusReady {
		fmt.Fprintf(deps.Stderr, "error: store is %s, not ready. Generate it first.\n", store.Status)
		return storegen.Errorf(storegen.EINVALID, "store is not ready")
	}

	if err := deps.Stores.SetPublished(deps.Ctx, store.ID, !c.Unpublish); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", storegen.ErrorMessage(err))
		return err
	}

	if c.Unpublish {
		fmt.Fprintf(deps.Stdout, "Unpublished store %s\n", store.ID)
	} else {
		fmt.Fprintf(deps.Stdout, "Published store %s at %s\n", store.ID, store.Subdomain)
	}
	return nil
}
