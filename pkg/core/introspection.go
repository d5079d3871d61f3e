package core

import (
	"github.com/aretw0/introspection"
)

// ServiceState exposes the counters of the last run for observability.
type ServiceState struct {
	Rows         int    `json:"rows"`
	Aliases      int    `json:"aliases"`
	Variants     int    `json:"variants"`
	BytesWritten int    `json:"bytes_written"`
	SourceType   string `json:"source_type"`
}

// State implements introspection.Introspectable.
func (s *Service) State() any {
	sourceType := "unknown"
	if s.source != nil {
		sourceType = "source"
		if comp, ok := s.source.(introspection.Component); ok {
			sourceType = comp.ComponentType()
		}
	}

	return ServiceState{
		Rows:         s.stats.rows,
		Aliases:      s.stats.aliases,
		Variants:     s.stats.variants,
		BytesWritten: s.stats.written,
		SourceType:   sourceType,
	}
}

// ComponentType implements introspection.Component.
func (s *Service) ComponentType() string {
	return "generator"
}

var _ introspection.Introspectable = (*Service)(nil)
var _ introspection.Component = (*Service)(nil)
