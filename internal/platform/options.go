package platform

import (
	"log/slog"

	"github.com/aretw0/notegen/pkg/adapters/table"
	"github.com/aretw0/notegen/pkg/core"
)

// options holds the internal configuration for the generator.
type options struct {
	source     core.TableSource
	reader     table.Reader
	logger     *slog.Logger
	format     string
	tableIndex int
	pkg        string
	typeName   string
	generator  string
	include    []string
}

// Option defines a functional option for configuring the generator.
type Option func(*options)

// defaultOptions returns the default configuration.
func defaultOptions() *options {
	return &options{
		source:     nil,
		reader:     nil,
		logger:     nil,
		format:     "",
		tableIndex: table.DefaultTableIndex,
	}
}

// WithLogger sets the logger for the service.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithSource allows injecting a custom table source (e.g. in-memory rows).
// If provided, the URI is only used for the generated header.
func WithSource(src core.TableSource) Option {
	return func(o *options) {
		o.source = src
	}
}

// WithReader forces the reader used to decode the table.
func WithReader(r table.Reader) Option {
	return func(o *options) {
		o.reader = r
	}
}

// WithFormat names the table format ("html", "csv", "yaml") instead of
// inferring it from the URI.
func WithFormat(format string) Option {
	return func(o *options) {
		o.format = format
	}
}

// WithTableIndex selects which <table> of an HTML page holds the notes.
func WithTableIndex(index int) Option {
	return func(o *options) {
		o.tableIndex = index
	}
}

// WithPackage sets the package clause of the generated file.
func WithPackage(name string) Option {
	return func(o *options) {
		o.pkg = name
	}
}

// WithTypeName sets the name of the generated type.
func WithTypeName(name string) Option {
	return func(o *options) {
		o.typeName = name
	}
}

// WithGenerator sets the tool name written in the generated header.
func WithGenerator(name string) Option {
	return func(o *options) {
		o.generator = name
	}
}

// WithInclude restricts the catalog to aliases matching any of the glob patterns.
func WithInclude(patterns ...string) Option {
	return func(o *options) {
		o.include = append(o.include, patterns...)
	}
}
