package template

import (
	"testing"

	"github.com/Joshrizika/Chat-Pilot/internal/domain"
)

func TestRenderStringSingleVar(t *testing.T) {
	out, err := RenderString("Hello {{name}}", map[string]string{"name": "Ada"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "Hello Ada" {
		t.Fatalf("expected replaced string, got %q", out)
	}
}

func TestRenderStringMultipleVars(t *testing.T) {
	out, err := RenderString("{{greet}}, {{name}}!", map[string]string{
		"greet": "Hi",
		"name":  "Sam",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "Hi, Sam!" {
		t.Fatalf("expected replaced string, got %q", out)
	}
}

func TestRenderStringMissingVar(t *testing.T) {
	_, err := RenderString("Hello {{name}}", map[string]string{})
	if err == nil {
		t.Fatalf("expected error")
	}
	if !domain.IsKind(err, domain.KindInvalidConfig) {
		t.Fatalf("expected KindInvalidConfig, got %v", err)
	}
}

func TestRenderStringMalformed(t *testing.T) {
	for _, in := range []string{"https://{{host", "https://{{ }}/"} {
		_, err := RenderString(in, map[string]string{"host": "x"})
		if !domain.IsKind(err, domain.KindInvalidConfig) {
			t.Fatalf("%q: expected KindInvalidConfig, got %v", in, err)
		}
	}
}

func TestRenderURLEscapesValues(t *testing.T) {
	out, err := RenderURL("https://dav.example.com/addressbooks/{{username}}/", map[string]string{
		"username": "jane doe/work",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "https://dav.example.com/addressbooks/jane%20doe%2Fwork/" {
		t.Fatalf("expected escaped segment, got %q", out)
	}
}
