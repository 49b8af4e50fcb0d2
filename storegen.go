// Package storegen generates single-product storefronts from a product URL.
// It scrapes the product page, mines it for images and customer reviews,
// asks an LLM to extract product data and design a complete store
// configuration, and persists the result. A secondary subsystem connects
// custom domains through a hostname/SSL provider.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., sqlite/, anthropic/, goquery/).
package storegen
