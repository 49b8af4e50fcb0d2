package main

import (
	"fmt"

	"github.com/fwojciec/storegen"
)

// Run executes the create command.
func (c *CreateCmd) Run(deps *Dependencies) error {
	store := &storegen.Store{ProductURL: c.URL}
	if err := deps.Stores.CreateStore(deps.Ctx, store); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", storegen.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Created store %s\n", store.ID)

	if c.NoGenerate {
		fmt.Fprintf(deps.Stdout, "Run 'storegen generate %s' to generate it.\n", store.ID)
		return nil
	}

	fmt.Fprintf(deps.Stdout, "Generating store from %s ...\n", c.URL)
	if err := deps.Generator.Generate(deps.Ctx, store.ID); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", storegen.ErrorMessage(err))
		return err
	}

	return printStoreSummary(deps, store.ID)
}

func printStoreSummary(deps *Dependencies, id string) error {
	store, err := deps.Stores.FindStoreByID(deps.Ctx, id)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", storegen.ErrorMessage(err))
		return err
	}

	if store.Config != nil {
		fmt.Fprintf(deps.Stdout, "Generated %q (%s)\n", store.Config.StoreName, store.Config.Tagline)
	}
	fmt.Fprintf(deps.Stdout, "Status: %s\n", store.Status)
	if store.Subdomain != "" {
		fmt.Fprintf(deps.Stdout, "Subdomain: %s\n", store.Subdomain)
	}
	for _, d := range store.SuggestedDomains {
		fmt.Fprintf(deps.Stdout, "Suggested domain: %s\n", d)
	}
	return nil
}
