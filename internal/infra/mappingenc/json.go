package mappingenc

import (
	"bytes"
	"encoding/json"
	"io"
	"strings"

	"github.com/Joshrizika/Chat-Pilot/internal/domain"
	"github.com/Joshrizika/Chat-Pilot/internal/ports"
)

// JSONEncoder writes the mapping as one indented JSON object, keys in insertion order.
type JSONEncoder struct {
	indent int
}

func NewJSON(opts ...Option) *JSONEncoder {
	o := buildOptions(opts)
	return &JSONEncoder{indent: o.indent}
}

var _ ports.MappingEncoder = (*JSONEncoder)(nil)

func (e *JSONEncoder) Encode(w io.Writer, m *domain.ExportMapping) error {
	var compact bytes.Buffer
	compact.WriteByte('{')
	for i, entry := range m.Entries() {
		if i > 0 {
			compact.WriteByte(',')
		}
		if err := writeJSONString(&compact, entry.Name); err != nil {
			return serializationErr("mappingenc.json", err)
		}
		compact.WriteByte(':')
		if err := writeJSONString(&compact, entry.Number); err != nil {
			return serializationErr("mappingenc.json", err)
		}
	}
	compact.WriteByte('}')

	var out bytes.Buffer
	if err := json.Indent(&out, compact.Bytes(), "", strings.Repeat(" ", e.indent)); err != nil {
		return serializationErr("mappingenc.json", err)
	}
	out.WriteByte('\n')

	if _, err := w.Write(out.Bytes()); err != nil {
		return serializationErr("mappingenc.write", err)
	}
	return nil
}

// writeJSONString appends s as a JSON string literal. Names such as "AT&T" stay readable.
func writeJSONString(buf *bytes.Buffer, s string) error {
	var tmp bytes.Buffer
	enc := json.NewEncoder(&tmp)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return err
	}
	buf.Write(bytes.TrimSuffix(tmp.Bytes(), []byte("\n")))
	return nil
}

func serializationErr(op string, err error) error {
	return &domain.OpError{
		Op:   op,
		Kind: domain.KindSerialization,
		Err:  err,
	}
}
