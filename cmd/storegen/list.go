package main

import (
	"fmt"

	"github.com/fwojciec/storegen"
)

// Run executes the list command.
func (c *ListCmd) Run(deps *Dependencies) error {
	filter := storegen.StoreFilter{}
	if c.Status != "" {
		status := storegen.Status(c.Status)
		if !status.Valid() {
			fmt.Fprintf(deps.Stderr, "error: unknown status %q\n", c.Status)
			return storegen.Errorf(storegen.EINVALID, "unknown status %q", c.Status)
		}
		filter.Status = &status
	}

	stores, err := deps.Stores.FindStores(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", storegen.ErrorMessage(err))
		return err
	}

	if len(stores) == 0 {
		fmt.Fprintln(deps.Stdout, "No stores found. Use 'storegen create' to make one.")
		return nil
	}

	for _, s := range stores {
		subdomain := s.Subdomain
		if subdomain == "" {
			subdomain = "-"
		}
		fmt.Fprintf(deps.Stdout, "%s  %-10s  %-16s  %s\n", s.ID, s.Status, subdomain, s.ProductURL)
	}

	return nil
}
