package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/Joshrizika/Chat-Pilot/internal/domain"
)

type LookupContact struct {
	export *ExportContacts
}

func NewLookupContact(export *ExportContacts) *LookupContact {
	return &LookupContact{export: export}
}

// Execute reads the store and returns the normalized number exported for name.
func (uc *LookupContact) Execute(ctx context.Context, name string) (string, error) {
	m, err := uc.export.Mapping(ctx)
	if err != nil {
		return "", err
	}
	return ResolveName(m, name)
}

// ResolveName finds name exactly, then as a unique case-insensitive match.
func ResolveName(m *domain.ExportMapping, name string) (string, error) {
	want := strings.TrimSpace(name)
	if v, ok := m.Get(want); ok {
		return v, nil
	}

	var matches []domain.MappingEntry
	for _, e := range m.Entries() {
		if strings.EqualFold(e.Name, want) {
			matches = append(matches, e)
		}
	}

	switch len(matches) {
	case 1:
		return matches[0].Number, nil
	case 0:
		return "", &domain.OpError{
			Op:   "usecase.lookup",
			Kind: domain.KindNotFound,
			Err:  fmt.Errorf("contact %q: %w", want, domain.ErrNotFound),
		}
	default:
		names := make([]string, 0, len(matches))
		for _, e := range matches {
			names = append(names, e.Name)
		}
		return "", &domain.OpError{
			Op:   "usecase.lookup",
			Kind: domain.KindNotFound,
			Err:  fmt.Errorf("contact %q is ambiguous (%s): %w", want, strings.Join(names, ", "), domain.ErrNotFound),
		}
	}
}
