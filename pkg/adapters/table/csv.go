package table

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/aretw0/notegen/pkg/core"
)

// CSVReader reads the note table from comma separated values.
type CSVReader struct{}

// NewCSVReader creates a new CSV reader.
func NewCSVReader() *CSVReader {
	return &CSVReader{}
}

func (s *CSVReader) Parse(r io.Reader) ([]core.NoteRow, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: invalid csv: %v", core.ErrAcquisition, err)
	}
	return parseRecords(records)
}
