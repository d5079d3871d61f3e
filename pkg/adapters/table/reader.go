package table

import (
	"fmt"
	"io"
	"net/url"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/aretw0/notegen/pkg/core"
)

// DefaultTableIndex is the position of the note table on the reference page.
const DefaultTableIndex = 1

// Reader defines how to read the note table out of a specific format.
type Reader interface {
	// Parse reads from r and returns the rows in published order.
	Parse(r io.Reader) ([]core.NoteRow, error)
}

// DefaultReaders returns the standard set of readers keyed by extension.
func DefaultReaders(tableIndex int) map[string]Reader {
	return map[string]Reader{
		".html": NewHTMLReader(tableIndex),
		".htm":  NewHTMLReader(tableIndex),
		".csv":  NewCSVReader(),
		".yaml": NewYAMLReader(),
		".yml":  NewYAMLReader(),
	}
}

// ReaderFor picks the reader for uri. An explicit format ("html", "csv", "yaml")
// wins over the extension; web pages without a known extension are read as HTML.
func ReaderFor(uri, format string, tableIndex int) (Reader, error) {
	readers := DefaultReaders(tableIndex)

	if format != "" {
		ext := "." + strings.TrimPrefix(strings.ToLower(format), ".")
		if r, ok := readers[ext]; ok {
			return r, nil
		}
		return nil, fmt.Errorf("unsupported table format %q", format)
	}

	path := uri
	remote := isRemote(uri)
	if remote {
		if u, err := url.Parse(uri); err == nil {
			path = u.Path
		}
	}
	if r, ok := readers[strings.ToLower(filepath.Ext(path))]; ok {
		return r, nil
	}
	if remote {
		return readers[".html"], nil
	}
	return nil, fmt.Errorf("cannot infer table format of %q", uri)
}

func isRemote(uri string) bool {
	return strings.HasPrefix(uri, "http://") || strings.HasPrefix(uri, "https://")
}

// isNumeric reports whether a cell holds a frequency rather than a column title.
func isNumeric(cell string) bool {
	_, err := strconv.ParseFloat(strings.TrimSpace(cell), 64)
	return err == nil
}

// parseRecords turns two-column records into rows. A leading record whose
// second cell is not a number is treated as a header and skipped.
func parseRecords(records [][]string) ([]core.NoteRow, error) {
	var rows []core.NoteRow
	for i, rec := range records {
		if len(rec) < 2 {
			return nil, fmt.Errorf("%w: row %d has %d columns, want at least 2", core.ErrAcquisition, i, len(rec))
		}
		if len(rows) == 0 && !isNumeric(rec[1]) {
			continue
		}
		row, err := core.ParseNoteRow(rec[0], rec[1])
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}
		rows = append(rows, row)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: table has no data rows", core.ErrAcquisition)
	}
	return rows, nil
}
