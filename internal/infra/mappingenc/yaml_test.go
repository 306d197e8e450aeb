package mappingenc

import (
	"bytes"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/Joshrizika/Chat-Pilot/internal/domain"
)

func TestYAMLEncoder_OrderedAndStringTyped(t *testing.T) {
	m := domain.NewExportMapping()
	m.Set("Zoe Adams", "+15550100")
	m.Set("Alice Smith", "5550100")
	m.Set("123", "0044")

	var buf bytes.Buffer
	if err := NewYAML().Encode(&buf, m); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	out := buf.String()
	if strings.Index(out, "Zoe Adams") > strings.Index(out, "Alice Smith") {
		t.Fatalf("expected insertion order, got:\n%s", out)
	}

	var decoded map[string]string
	if err := yaml.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid YAML: %v\n%s", err, out)
	}
	if decoded["Alice Smith"] != "5550100" || decoded["123"] != "0044" {
		t.Fatalf("unexpected decoded values: %#v", decoded)
	}
}

func TestYAMLEncoder_Empty(t *testing.T) {
	var buf bytes.Buffer
	if err := NewYAML().Encode(&buf, domain.NewExportMapping()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.TrimSpace(buf.String()) != "{}" {
		t.Fatalf("expected empty mapping, got %q", buf.String())
	}
}
