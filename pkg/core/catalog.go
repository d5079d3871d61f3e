package core

import (
	"fmt"
	"go/token"
)

// Expand splits every row into one AliasEntry per alias, keeping row order and
// the order of aliases inside each row.
//
// Frequencies are resolved through a map keyed by the verbatim alias group. A
// group that shows up with two different frequencies, or a row without a
// frequency literal, is reported as ErrInconsistent.
func Expand(rows []NoteRow) ([]AliasEntry, error) {
	freqs := make(map[string]NoteRow, len(rows))
	for i, row := range rows {
		if row.Literal == "" {
			return nil, fmt.Errorf("%w: row %d (%q) has no frequency", ErrInconsistent, i, row.AliasGroup)
		}
		if prev, ok := freqs[row.AliasGroup]; ok && prev.Frequency != row.Frequency {
			return nil, fmt.Errorf("%w: group %q has frequencies %s and %s",
				ErrInconsistent, row.AliasGroup, prev.Literal, row.Literal)
		}
		freqs[row.AliasGroup] = row
	}

	var entries []AliasEntry
	for _, row := range rows {
		resolved, ok := freqs[row.AliasGroup]
		if !ok {
			return nil, fmt.Errorf("%w: no frequency for group %q", ErrInconsistent, row.AliasGroup)
		}
		for _, raw := range row.Aliases() {
			entries = append(entries, AliasEntry{
				RawName:    raw,
				Identifier: Normalize(raw),
				Frequency:  resolved.Frequency,
				Literal:    resolved.Literal,
			})
		}
	}
	return entries, nil
}

// Catalog is the ordered, validated set of aliases a generation run works from.
// It is read-only once built.
type Catalog struct {
	entries []AliasEntry
}

// NewCatalog validates entries and wraps them in a Catalog.
//
// Every identifier must be a Go identifier that is neither a keyword nor one of
// the reserved names. Distinct aliases must not share an identifier, and no
// serialized form may be accepted by two aliases.
func NewCatalog(entries []AliasEntry, reserved ...string) (*Catalog, error) {
	taken := make(map[string]bool, len(reserved))
	for _, name := range reserved {
		taken[name] = true
	}

	byIdent := make(map[string]string, len(entries))
	byForm := make(map[string]string, 2*len(entries))
	for _, e := range entries {
		if !token.IsIdentifier(e.Identifier) || e.Identifier == "_" {
			return nil, fmt.Errorf("%w: alias %q normalizes to %q", ErrInvalidIdentifier, e.RawName, e.Identifier)
		}
		if taken[e.Identifier] {
			return nil, fmt.Errorf("%w: alias %q normalizes to reserved name %q", ErrInvalidIdentifier, e.RawName, e.Identifier)
		}

		if prev, ok := byIdent[e.Identifier]; ok {
			if prev == e.RawName {
				return nil, fmt.Errorf("%w: alias %q appears more than once", ErrCollision, e.RawName)
			}
			return nil, fmt.Errorf("%w: aliases %q and %q both normalize to %q", ErrCollision, prev, e.RawName, e.Identifier)
		}
		byIdent[e.Identifier] = e.RawName

		for _, form := range e.SerializedForms() {
			if prev, ok := byForm[form]; ok {
				return nil, fmt.Errorf("%w: %q is accepted by both %q and %q", ErrCollision, form, prev, e.RawName)
			}
			byForm[form] = e.RawName
		}
	}

	return &Catalog{entries: append([]AliasEntry(nil), entries...)}, nil
}

// Entries returns a copy of the catalog in table order.
func (c *Catalog) Entries() []AliasEntry {
	return append([]AliasEntry(nil), c.entries...)
}

// Len returns the number of variants.
func (c *Catalog) Len() int {
	return len(c.entries)
}

// Identifiers returns the variant identifiers in table order.
func (c *Catalog) Identifiers() []string {
	ids := make([]string, len(c.entries))
	for i, e := range c.entries {
		ids[i] = e.Identifier
	}
	return ids
}
