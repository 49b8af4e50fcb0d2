package main

import (
	"fmt"
	"strings"

	"github.com/fwojciec/storegen"
)

// Run executes the show command.
func (c *ShowCmd) Run(deps *Dependencies) error {
	store, err := deps.Stores.FindStoreByID(deps.Ctx, c.ID)
	if err != nil {
		if storegen.ErrorCode(err) == storegen.ENOTFOUND {
			fmt.Fprintf(deps.Stderr, "error: store %q not found. Use 'storegen list' to see available stores.\n", c.ID)
			return err
		}
		fmt.Fprintf(deps.Stderr, "error: %s\n", storegen.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "ID:           %s\n", store.ID)
	fmt.Fprintf(deps.Stdout, "Product URL:  %s\n", store.ProductURL)
	fmt.Fprintf(deps.Stdout, "Status:       %s\n", store.Status)
	if store.ErrorMessage != "" {
		fmt.Fprintf(deps.Stdout, "Error:        %s\n", store.ErrorMessage)
	}
	if store.Product != nil {
		fmt.Fprintf(deps.Stdout, "Product:      %s ($%s)\n", store.Product.Name, store.Product.Price)
		fmt.Fprintf(deps.Stdout, "Images:       %d\n", len(store.Product.Images))
	}
	if store.Config != nil {
		fmt.Fprintf(deps.Stdout, "Store name:   %s\n", store.Config.StoreName)
		fmt.Fprintf(deps.Stdout, "Tagline:      %s\n", store.Config.Tagline)
		fmt.Fprintf(deps.Stdout, "Theme:        %s\n", store.Config.Theme)
	}
	if store.Subdomain != "" {
		fmt.Fprintf(deps.Stdout, "Subdomain:    %s\n", store.Subdomain)
	}
	if store.CustomDomain != "" {
		fmt.Fprintf(deps.Stdout, "Domain:       %s\n", store.CustomDomain)
	}
	if len(store.SuggestedDomains) > 0 {
		fmt.Fprintf(deps.Stdout, "Suggested:    %s\n", strings.Join(store.SuggestedDomains, ", "))
	}
	fmt.Fprintf(deps.Stdout, "Published:    %t\n", store.Published)
	fmt.Fprintf(deps.Stdout, "Created:      %s\n", store.CreatedAt.Format("2006-01-02 15:04:05"))

	return nil
}
