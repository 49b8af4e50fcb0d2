package main

import (
	"fmt"

	"github.com/fwojciec/storegen"
)

// Run executes the domains command.
func (c *DomainsCmd) Run(deps *Dependencies) error {
	domains, err := deps.Domains.FindDomainsByStore(deps.Ctx, c.StoreID)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", storegen.ErrorMessage(err))
		return err
	}

	if len(domains) == 0 {
		fmt.Fprintln(deps.Stdout, "No domains found. Use 'storegen connect' to connect one.")
		return nil
	}

	for _, d := range domains {
		ssl := string(d.SSLStatus)
		if ssl == "" {
			ssl = "-"
		}
		fmt.Fprintf(deps.Stdout, "%s  %-16s  ssl=%-8s  %s\n", d.ID, d.Status, ssl, d.DomainName)
		printDNSRecords(deps, d.DNSRecords)
	}

	return nil
}

func printDNSRecords(deps *Dependencies, records []storegen.DNSRecord) {
	for _, r := range records {
		fmt.Fprintf(deps.Stdout, "    %-5s  %s -> %s\n", r.Type, r.Name, r.Value)
	}
}
