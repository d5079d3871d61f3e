package notegen

import (
	"io"
	"log/slog"

	"github.com/aretw0/notegen/internal/platform"
	"github.com/aretw0/notegen/pkg/adapters/table"
	"github.com/aretw0/notegen/pkg/core"
)

// --- Types ---

// NoteRow is one row of the reference table.
type NoteRow = core.NoteRow

// AliasEntry is one expanded alias with its identifier and frequency.
type AliasEntry = core.AliasEntry

// Catalog is the ordered, validated set of aliases of a generation run.
type Catalog = core.Catalog

// DefaultURI is the published reference table used when no source is given.
const DefaultURI = table.DefaultURI

// DefaultTableIndex is the position of the note table on the reference page.
const DefaultTableIndex = table.DefaultTableIndex

// --- Configuration ---

// Option defines a functional option for configuring the generator.
type Option = platform.Option

// Config mirrors the notegen.yaml file.
type Config = platform.Config

// WithLogger sets the logger for the service.
func WithLogger(logger *slog.Logger) Option {
	return platform.WithLogger(logger)
}

// WithSource allows injecting a custom table source.
func WithSource(src core.TableSource) Option {
	return platform.WithSource(src)
}

// WithFormat names the table format ("html", "csv", "yaml").
func WithFormat(format string) Option {
	return platform.WithFormat(format)
}

// WithTableIndex selects which <table> of an HTML page holds the notes.
func WithTableIndex(index int) Option {
	return platform.WithTableIndex(index)
}

// WithPackage sets the package clause of the generated file.
func WithPackage(name string) Option {
	return platform.WithPackage(name)
}

// WithTypeName sets the name of the generated type.
func WithTypeName(name string) Option {
	return platform.WithTypeName(name)
}

// WithGenerator sets the tool name written in the generated header.
func WithGenerator(name string) Option {
	return platform.WithGenerator(name)
}

// WithInclude restricts the catalog to aliases matching any of the glob patterns.
func WithInclude(patterns ...string) Option {
	return platform.WithInclude(patterns...)
}

// --- Factory ---

// New creates a generator for the table at uri (empty means DefaultURI).
func New(uri string, opts ...Option) (*core.Service, error) {
	return platform.New(uri, opts...)
}

// Init resolves the table source for uri without building a generator.
func Init(uri string, opts ...Option) (core.TableSource, error) {
	return platform.Init(uri, opts...)
}

// --- Utils ---

// LoadConfig reads a notegen.yaml file.
func LoadConfig(path string) (*Config, error) {
	return platform.LoadConfig(path)
}

// FindConfig looks upwards from startDir for a notegen.yaml file.
func FindConfig(startDir string) (string, error) {
	return platform.FindConfig(startDir)
}

// WriteArtifact replaces filename with the generated source read from src,
// all at once, keeping the mode of the file it replaces.
func WriteArtifact(filename string, src io.Reader) error {
	return platform.WriteArtifact(filename, src)
}
