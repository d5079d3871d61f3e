package core

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// AliasSeparator splits an alias group into its enharmonic names.
const AliasSeparator = "/"

// plainDecimal matches frequency cells that can be emitted verbatim as a float literal.
var plainDecimal = regexp.MustCompile(`^(0|[1-9][0-9]*)(\.[0-9]+)?$`)

// NoteRow is one row of the reference table: a group of aliases sharing one frequency.
type NoteRow struct {
	AliasGroup string
	Frequency  float64
	// Literal is the frequency as it should appear in generated code.
	Literal string
}

// NewNoteRow builds a row from an already parsed frequency.
func NewNoteRow(group string, freq float64) NoteRow {
	return NoteRow{
		AliasGroup: group,
		Frequency:  freq,
		Literal:    FormatFrequency(freq),
	}
}

// ParseNoteRow builds a row from the raw cells of a table.
// The frequency text is kept as the literal when it is a plain decimal so the
// generated code carries the published precision.
func ParseNoteRow(group, freq string) (NoteRow, error) {
	group = strings.TrimSpace(group)
	freq = strings.TrimSpace(freq)
	if group == "" {
		return NoteRow{}, fmt.Errorf("%w: empty alias group", ErrAcquisition)
	}

	f, err := strconv.ParseFloat(freq, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return NoteRow{}, fmt.Errorf("%w: frequency %q of %q is not a number", ErrAcquisition, freq, group)
	}

	row := NewNoteRow(group, f)
	if plainDecimal.MatchString(freq) {
		row.Literal = freq
	}
	return row, nil
}

// Aliases splits the alias group on AliasSeparator, preserving order.
func (r NoteRow) Aliases() []string {
	return strings.Split(r.AliasGroup, AliasSeparator)
}

// AliasEntry is a single alias expanded from a NoteRow.
type AliasEntry struct {
	RawName    string  `json:"raw_name"`
	Identifier string  `json:"identifier"`
	Frequency  float64 `json:"frequency"`
	Literal    string  `json:"literal"`
}

// SerializedForms returns the spellings accepted when parsing this alias:
// the raw name and its lower-cased form, without duplicates.
func (e AliasEntry) SerializedForms() []string {
	forms := []string{e.RawName}
	if lower := strings.ToLower(e.RawName); lower != e.RawName {
		forms = append(forms, lower)
	}
	return forms
}

// Normalize maps a raw alias to its variant identifier by replacing every '#' with 's'.
func Normalize(raw string) string {
	return strings.ReplaceAll(raw, "#", "s")
}

// FormatFrequency renders f as a float literal with at least one decimal digit.
func FormatFrequency(f float64) string {
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
