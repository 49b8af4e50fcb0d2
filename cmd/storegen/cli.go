package main

import (
	"context"
	"io"

	"github.com/fwojciec/storegen"
	"github.com/fwojciec/storegen/cloudflare"
	"github.com/fwojciec/storegen/pipeline"
	"github.com/fwojciec/storegen/sqlite"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx       context.Context
	Stdout    io.Writer
	Stderr    io.Writer
	DB        *sqlite.DB
	Stores    storegen.StoreService
	Domains   storegen.DomainService
	Generator *pipeline.Generator
	Connector *cloudflare.Connector
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose bool `short:"v" help:"Enable verbose logging"`
	Browser bool `short:"b" help:"Fetch product pages with a headless browser instead of plain HTTP"`

	Create     CreateCmd     `cmd:"" help:"Create a store from a product URL and generate it"`
	List       ListCmd       `cmd:"" help:"List all stores"`
	Show       ShowCmd       `cmd:"" help:"Show details for a store"`
	Generate   GenerateCmd   `cmd:"" help:"Run or re-run generation for an existing store"`
	Publish    PublishCmd    `cmd:"" help:"Publish or unpublish a store"`
	Delete     DeleteCmd     `cmd:"" help:"Delete a store and its domain records"`
	Domains    DomainsCmd    `cmd:"" help:"List domain records for a store"`
	Connect    ConnectCmd    `cmd:"" help:"Connect a custom domain to a store"`
	Check      CheckCmd      `cmd:"" help:"Check hostname and SSL status for a domain"`
	Disconnect DisconnectCmd `cmd:"" help:"Disconnect a custom domain from its store"`
}

// CreateCmd is the "create" subcommand.
type CreateCmd struct {
	URL        string `arg:"" help:"Product page URL"`
	NoGenerate bool   `help:"Create the store record without running generation"`
}

// ListCmd is the "list" subcommand.
type ListCmd struct {
	Status string `help:"Filter by status (pending, scraping, analyzing, generating, ready, error)"`
}

// ShowCmd is the "show" subcommand.
type ShowCmd struct {
	ID string `arg:"" help:"Store ID"`
}

// GenerateCmd is the "generate" subcommand.
type GenerateCmd struct {
	ID string `arg:"" help:"Store ID"`
}

// PublishCmd is the "publish" subcommand.
type PublishCmd struct {
	ID        string `arg:"" help:"Store ID"`
	Unpublish bool   `help:"Unpublish instead of publish"`
}

// DeleteCmd is the "delete" subcommand.
type DeleteCmd struct {
	ID    string `arg:"" help:"Store ID"`
	Force bool   `help:"Confirm deletion"`
}

// DomainsCmd is the "domains" subcommand.
type DomainsCmd struct {
	StoreID string `arg:"" help:"Store ID"`
}

// ConnectCmd is the "connect" subcommand.
type ConnectCmd struct {
	StoreID string `arg:"" help:"Store ID"`
	Domain  string `arg:"" help:"Domain name to connect"`
}

// CheckCmd is the "check" subcommand.
type CheckCmd struct {
	Domain string `arg:"" help:"Domain name"`
}

// DisconnectCmd is the "disconnect" subcommand.
type DisconnectCmd struct {
	Domain string `arg:"" help:"Domain name"`
}
