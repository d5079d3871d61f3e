package core

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
)

// Service runs the generation pipeline: acquire, expand, validate, render, emit.
type Service struct {
	source   TableSource
	renderer Renderer
	filter   Filter
	logger   *slog.Logger

	stats runStats
}

type runStats struct {
	rows     int
	aliases  int
	variants int
	written  int
}

// ServiceOption configures a Service.
type ServiceOption func(*Service)

// WithFilter restricts the catalog to aliases accepted by f.
func WithFilter(f Filter) ServiceOption {
	return func(s *Service) {
		s.filter = f
	}
}

// WithServiceLogger sets the logger for the service.
func WithServiceLogger(logger *slog.Logger) ServiceOption {
	return func(s *Service) {
		s.logger = logger
	}
}

// NewService creates a new Service.
func NewService(source TableSource, renderer Renderer, opts ...ServiceOption) *Service {
	s := &Service{source: source, renderer: renderer}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return s
}

// Catalog acquires the table and builds the validated catalog from it.
func (s *Service) Catalog(ctx context.Context) (*Catalog, error) {
	s.stats = runStats{}
	if s.source == nil {
		return nil, errors.New("no table source configured")
	}

	rows, err := s.source.Rows(ctx)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: table has no rows", ErrAcquisition)
	}
	s.stats.rows = len(rows)
	s.logger.Debug("table acquired", "rows", len(rows))

	entries, err := Expand(rows)
	if err != nil {
		return nil, err
	}
	s.stats.aliases = len(entries)

	if s.filter != nil {
		kept := entries[:0]
		for _, e := range entries {
			if s.filter(e.RawName) {
				kept = append(kept, e)
			}
		}
		entries = kept
		s.logger.Debug("aliases filtered", "before", s.stats.aliases, "after", len(entries))
	}

	var reserved []string
	if s.renderer != nil {
		reserved = s.renderer.Reserved()
	}
	catalog, err := NewCatalog(entries, reserved...)
	if err != nil {
		return nil, err
	}
	s.stats.variants = catalog.Len()
	return catalog, nil
}

// Generate renders the catalog and writes it to w in a single write.
// Nothing is written if any stage fails.
func (s *Service) Generate(ctx context.Context, w io.Writer) error {
	if s.renderer == nil {
		return errors.New("no renderer configured")
	}

	catalog, err := s.Catalog(ctx)
	if err != nil {
		return err
	}

	out, err := s.renderer.Render(catalog)
	if err != nil {
		return fmt.Errorf("failed to render catalog: %w", err)
	}

	n, err := w.Write(out)
	s.stats.written = n
	if err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	s.logger.Debug("artifact written", "variants", catalog.Len(), "bytes", n)
	return nil
}
