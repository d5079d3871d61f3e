package core

import "context"

// TableSource defines the contract for acquiring the reference table.
// Adhering to this interface keeps the core independent of where the table
// lives (web page, local file) and how it is encoded (HTML, CSV, YAML).
type TableSource interface {
	// Rows returns the table rows in published order.
	Rows(ctx context.Context) ([]NoteRow, error)
}

// Renderer turns a Catalog into the final source text.
type Renderer interface {
	// Render returns the complete artifact. Nothing is returned on error.
	Render(c *Catalog) ([]byte, error)

	// Reserved lists the names the rendered code declares itself, which
	// variants must not reuse.
	Reserved() []string
}

// Filter reports whether a raw alias belongs in the catalog.
type Filter func(raw string) bool
