package platform

import (
	"fmt"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/aretw0/notegen/pkg/core"
)

// NewIncludeFilter builds a filter that keeps aliases matching any pattern.
// Patterns use doublestar syntax, e.g. "A*", "*4", "{C,D}#*".
func NewIncludeFilter(patterns []string) (core.Filter, error) {
	for _, p := range patterns {
		if !doublestar.ValidatePattern(p) {
			return nil, fmt.Errorf("invalid include pattern %q", p)
		}
	}

	return func(raw string) bool {
		for _, p := range patterns {
			if ok, _ := doublestar.Match(p, raw); ok {
				return true
			}
		}
		return false
	}, nil
}
