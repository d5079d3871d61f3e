package table

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/aretw0/notegen/pkg/core"
)

// YAMLReader reads the note table from a YAML sequence. Each item is either a
// pair ["C#4/Db4", 277.18] or a mapping {notes: "C#4/Db4", frequency: 277.18}.
type YAMLReader struct{}

// NewYAMLReader creates a new YAML reader.
func NewYAMLReader() *YAMLReader {
	return &YAMLReader{}
}

// yamlRow keeps the frequency as scalar text so its precision survives.
type yamlRow struct {
	Notes     string
	Frequency string
}

func (y *yamlRow) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.SequenceNode:
		if len(value.Content) < 2 {
			return fmt.Errorf("line %d: pair has %d items, want 2", value.Line, len(value.Content))
		}
		y.Notes = value.Content[0].Value
		y.Frequency = value.Content[1].Value
		return nil
	case yaml.MappingNode:
		var m struct {
			Notes     string    `yaml:"notes"`
			Frequency yaml.Node `yaml:"frequency"`
		}
		if err := value.Decode(&m); err != nil {
			return err
		}
		y.Notes = m.Notes
		y.Frequency = m.Frequency.Value
		return nil
	default:
		return fmt.Errorf("line %d: unexpected row", value.Line)
	}
}

func (s *YAMLReader) Parse(r io.Reader) ([]core.NoteRow, error) {
	var items []yamlRow
	if err := yaml.NewDecoder(r).Decode(&items); err != nil {
		if err == io.EOF {
			return nil, fmt.Errorf("%w: table has no data rows", core.ErrAcquisition)
		}
		return nil, fmt.Errorf("%w: invalid yaml: %v", core.ErrAcquisition, err)
	}

	records := make([][]string, len(items))
	for i, item := range items {
		records[i] = []string{item.Notes, item.Frequency}
	}
	return parseRecords(records)
}
