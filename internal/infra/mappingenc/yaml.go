package mappingenc

import (
	"io"

	"gopkg.in/yaml.v3"

	"github.com/Joshrizika/Chat-Pilot/internal/domain"
	"github.com/Joshrizika/Chat-Pilot/internal/ports"
)

// YAMLEncoder writes the mapping as a YAML mapping, keys in insertion order.
type YAMLEncoder struct {
	indent int
}

func NewYAML(opts ...Option) *YAMLEncoder {
	o := buildOptions(opts)
	return &YAMLEncoder{indent: o.indent}
}

var _ ports.MappingEncoder = (*YAMLEncoder)(nil)

func (e *YAMLEncoder) Encode(w io.Writer, m *domain.ExportMapping) error {
	doc := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, entry := range m.Entries() {
		doc.Content = append(doc.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: entry.Name},
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: entry.Number, Style: yaml.DoubleQuotedStyle},
		)
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(e.indent)
	if err := enc.Encode(doc); err != nil {
		return serializationErr("mappingenc.yaml", err)
	}
	if err := enc.Close(); err != nil {
		return serializationErr("mappingenc.yaml", err)
	}
	return nil
}
