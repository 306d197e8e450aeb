package yamlbook

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/Joshrizika/Chat-Pilot/internal/domain"
)

func writeBook(t *testing.T, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "contacts.yaml")
	if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	return p
}

func collect(t *testing.T, s *Store) ([]domain.Contact, error) {
	t.Helper()
	var out []domain.Contact
	err := s.EnumerateContacts(context.Background(), domain.ExportFields, func(c domain.Contact) error {
		out = append(out, c)
		return nil
	})
	return out, err
}

func TestStore_Valid(t *testing.T) {
	p := writeBook(t, `
contacts:
  - given_name: Alice
    family_name: Smith
    phones:
      - label: home
        number: "555-0000"
      - label: Mobile
        number: "555-0100"
  - given_name: Bob
    family_name: Jones
`)

	s := NewStore(p)
	ok, err := s.RequestAccess(context.Background())
	if err != nil || !ok {
		t.Fatalf("expected access, got ok=%v err=%v", ok, err)
	}

	got, err := collect(t, s)
	if err != nil {
		t.Fatalf("EnumerateContacts error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 contacts, got=%d", len(got))
	}
	if n, ok := got[0].MobileNumber(); !ok || n != "555-0100" {
		t.Fatalf("expected mobile 555-0100, got=%q ok=%v", n, ok)
	}
	if _, ok := got[1].MobileNumber(); ok {
		t.Fatalf("expected Bob without mobile")
	}
}

func TestStore_MissingLabel(t *testing.T) {
	p := writeBook(t, `
contacts:
  - given_name: Alice
    phones:
      - number: "1"
`)

	_, err := collect(t, NewStore(p))
	if !domain.IsKind(err, domain.KindInvalidConfig) {
		t.Fatalf("expected KindInvalidConfig, got %v", err)
	}
}

func TestStore_MissingFileIsUnavailable(t *testing.T) {
	s := NewStore(filepath.Join(t.TempDir(), "nope.yaml"))

	ok, err := s.RequestAccess(context.Background())
	if err != nil || !ok {
		t.Fatalf("expected access to be granted for a missing book, got ok=%v err=%v", ok, err)
	}

	_, err = collect(t, s)
	if !errors.Is(err, domain.ErrStoreUnavailable) {
		t.Fatalf("expected ErrStoreUnavailable, got %v", err)
	}
}

func TestStore_InvalidYAML(t *testing.T) {
	p := writeBook(t, "contacts: [\n")
	_, err := collect(t, NewStore(p))
	if !domain.IsKind(err, domain.KindInvalidConfig) {
		t.Fatalf("expected KindInvalidConfig, got %v", err)
	}
}

func TestCanonicalLabel(t *testing.T) {
	cases := map[string]string{
		"mobile":         domain.LabelMobile,
		" CELL ":         domain.LabelMobile,
		"_$!<Mobile>!$_": domain.LabelMobile,
		"_$!<Work>!$_":   "work",
		"work":           "work",
		"iPhone":         "iPhone",
	}
	for in, want := range cases {
		if got := canonicalLabel(in); got != want {
			t.Errorf("canonicalLabel(%q) = %q, want %q", in, got, want)
		}
	}
}
