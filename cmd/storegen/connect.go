package main

import (
	"fmt"

	"github.com/fwojciec/storegen"
)

// Run executes the connect command.
func (c *ConnectCmd) Run(deps *Dependencies) error {
	store, err := deps.Stores.FindStoreByID(deps.Ctx, c.StoreID)
	if err != nil {
		if storegen.ErrorCode(err) == storegen.ENOTFOUND {
			fmt.Fprintf(deps.Stderr, "error: store %q not found. Use 'storegen list' to see available stores.\n", c.StoreID)
			return err
		}
		fmt.Fprintf(deps.Stderr, "error: %s\n", storegen.ErrorMessage(err))
		return err
	}

	domain, err := deps.Domains.FindDomainByName(deps.Ctx, c.Domain)
	switch {
	case storegen.ErrorCode(err) == storegen.ENOTFOUND:
		domain = &storegen.Domain{
			StoreID:    store.ID,
			DomainName: c.Domain,
			Status:     storegen.DomainPurchased,
		}
		if err := deps.Domains.CreateDomain(deps.Ctx, domain); err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", storegen.ErrorMessage(err))
			return err
		}
	case err != nil:
		fmt.Fprintf(deps.Stderr, "error: %s\n", storegen.ErrorMessage(err))
		return err
	case domain.StoreID != store.ID:
		fmt.Fprintf(deps.Stderr, "error: domain %q belongs to another store\n", c.Domain)
		return storegen.Errorf(storegen.ECONFLICT, "domain %q belongs to another store", c.Domain)
	}

	if err := deps.Connector.Connect(deps.Ctx, domain.ID); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", storegen.ErrorMessage(err))
		return err
	}

	domain, err = deps.Domains.FindDomainByID(deps.Ctx, domain.ID)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", storegen.ErrorMessage(err))
		return err
	}

	if domain.Status == storegen.DomainConnected {
		fmt.Fprintf(deps.Stdout, "Connected %s to store %s\n", domain.DomainName, store.ID)
		return nil
	}

	fmt.Fprintf(deps.Stdout, "Registered %s. Create these DNS records, then run 'storegen check %s':\n", domain.DomainName, domain.DomainName)
	printDNSRecords(deps, domain.DNSRecords)
	return nil
}
