package main

import (
	"fmt"

	"github.com/fwojciec/storegen"
)

// Run executes the check command.
func (c *CheckCmd) Run(deps *Dependencies) error {
	domain, err := deps.Domains.FindDomainByName(deps.Ctx, c.Domain)
	if err != nil {
		if storegen.ErrorCode(err) == storegen.ENOTFOUND {
			fmt.Fprintf(deps.Stderr, "error: domain %q not found. Use 'storegen connect' to register it first.\n", c.Domain)
			return err
		}
		fmt.Fprintf(deps.Stderr, "error: %s\n", storegen.ErrorMessage(err))
		return err
	}

	hostname, err := deps.Connector.Check(deps.Ctx, domain.ID)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", storegen.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Hostname: %s\n", hostname.Status)
	fmt.Fprintf(deps.Stdout, "SSL:      %s\n", hostname.SSL.Status)
	for _, e := range hostname.SSL.ValidationErrors {
		fmt.Fprintf(deps.Stdout, "Problem:  %s\n", e)
	}

	if hostname.Active() {
		fmt.Fprintf(deps.Stdout, "Domain %s is connected.\n", domain.DomainName)
		return nil
	}

	fmt.Fprintln(deps.Stdout, "Still pending. Make sure these DNS records exist:")
	domain, err = deps.Domains.FindDomainByID(deps.Ctx, domain.ID)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", storegen.ErrorMessage(err))
		return err
	}
	printDNSRecords(deps, domain.DNSRecords)
	return nil
}
