package lookup

import (
	"errors"
	"testing"

	"github.com/Joshrizika/Chat-Pilot/internal/domain"
)

const exported = `{
  "Alice Smith": "5550100",
  "O'Brien \"Ned\"": "+353861234567",
  "Mallory": ""
}
`

func TestFromDocument_Found(t *testing.T) {
	got, err := FromDocument([]byte(exported), "Alice Smith")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "5550100" {
		t.Fatalf("expected 5550100, got=%q", got)
	}
}

func TestFromDocument_QuotedName(t *testing.T) {
	got, err := FromDocument([]byte(exported), `O'Brien "Ned"`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "+353861234567" {
		t.Fatalf("expected +353861234567, got=%q", got)
	}
}

func TestFromDocument_EmptyNumberIsAValue(t *testing.T) {
	got, err := FromDocument([]byte(exported), "Mallory")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "" {
		t.Fatalf("expected empty number, got=%q", got)
	}
}

func TestFromDocument_Missing(t *testing.T) {
	_, err := FromDocument([]byte(exported), "Bob Jones")
	if err == nil {
		t.Fatalf("expected error")
	}
	if !domain.IsKind(err, domain.KindNotFound) {
		t.Fatalf("expected KindNotFound, got %v", err)
	}
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound in chain, got %v", err)
	}
}

func TestFromDocument_InvalidJSON(t *testing.T) {
	_, err := FromDocument([]byte("not json"), "Alice Smith")
	if !domain.IsKind(err, domain.KindInvalidConfig) {
		t.Fatalf("expected KindInvalidConfig, got %v", err)
	}
}

func TestFromDocument_NotAnObject(t *testing.T) {
	_, err := FromDocument([]byte(`["Alice Smith"]`), "Alice Smith")
	if !domain.IsKind(err, domain.KindInvalidConfig) {
		t.Fatalf("expected KindInvalidConfig, got %v", err)
	}
}

func TestExpr(t *testing.T) {
	if got := Expr("Alice Smith"); got != `$["Alice Smith"]` {
		t.Fatalf("unexpected expr: %s", got)
	}
}
