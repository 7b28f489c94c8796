package correspondence

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultYAML []byte

// Default returns the built-in table.
func Default() Table {
	t, err := Load(bytes.NewReader(defaultYAML))
	if err != nil {
		panic(fmt.Sprintf("embedded correspondence table is invalid: %v", err))
	}
	return t
}

// Load decodes a YAML table in either shape. An empty document yields an
// empty table.
func Load(r io.Reader) (Table, error) {
	var t Table
	if err := yaml.NewDecoder(r).Decode(&t); err != nil {
		if err == io.EOF {
			return Table{}, nil
		}
		return Table{}, fmt.Errorf("failed to decode correspondence table: %w", err)
	}
	return t, nil
}

// LoadFile reads a YAML table from disk.
func LoadFile(path string) (Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return Table{}, fmt.Errorf("failed to open correspondence table: %w", err)
	}
	defer f.Close()
	return Load(f)
}

// UnmarshalYAML accepts a sequence of records or an article-type mapping whose
// values are a single related-article type or a list of them.
func (t *Table) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.SequenceNode:
		var records []Entry
		if err := value.Decode(&records); err != nil {
			return err
		}
		*t = FromRecords(records)
		return nil
	case yaml.MappingNode:
		m := make(map[string][]string, len(value.Content)/2)
		for i := 0; i+1 < len(value.Content); i += 2 {
			key, val := value.Content[i], value.Content[i+1]
			switch val.Kind {
			case yaml.ScalarNode:
				m[key.Value] = append(m[key.Value], val.Value)
			case yaml.SequenceNode:
				var list []string
				if err := val.Decode(&list); err != nil {
					return fmt.Errorf("line %d: %w", val.Line, err)
				}
				m[key.Value] = append(m[key.Value], list...)
			default:
				return fmt.Errorf("line %d: article-type %q must map to a string or a list", val.Line, key.Value)
			}
		}
		*t = FromMapping(m)
		return nil
	case yaml.ScalarNode:
		if value.Tag == "!!null" {
			*t = Table{}
			return nil
		}
	}
	return fmt.Errorf("line %d: correspondence table must be a list of records or an article-type mapping", value.Line)
}

// MarshalYAML writes the table as flat records.
func (t Table) MarshalYAML() (interface{}, error) {
	return t.entries, nil
}
