package main

import (
	"fmt"

	"github.com/fwojciec/storegen"
)

// Run executes the disconnect command.
func (c *DisconnectCmd) Run(deps *Dependencies) error {
	domain, err := deps.Domains.FindDomainByName(deps.Ctx, c.Domain)
	if err != nil {
		if storegen.ErrorCode(err) == storegen.ENOTFOUND {
			fmt.Fprintf(deps.Stderr, "error: domain %q not found\n", c.Domain)
			return err
		}
		fmt.Fprintf(deps.Stderr, "error: %s\n", storegen.ErrorMessage(err))
		return err
	}

	if err := deps.Connector.Disconnect(deps.Ctx, domain.ID); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", storegen.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Disconnected %s\n", domain.DomainName)
	return nil
}
