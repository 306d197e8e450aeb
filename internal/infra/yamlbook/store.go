package yamlbook

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/Joshrizika/Chat-Pilot/internal/domain"
	"github.com/Joshrizika/Chat-Pilot/internal/ports"
)

// Store reads contacts from a YAML address book file.
type Store struct {
	path string
}

func NewStore(path string) *Store {
	return &Store{path: path}
}

var _ ports.ContactStore = (*Store)(nil)

// RequestAccess grants access unless the file exists but cannot be read.
func (s *Store) RequestAccess(_ context.Context) (bool, error) {
	f, err := os.Open(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrPermission) {
			return false, nil
		}
		// A missing book is an unavailable store, reported by EnumerateContacts.
		return true, nil
	}
	_ = f.Close()
	return true, nil
}

func (s *Store) EnumerateContacts(ctx context.Context, fields []domain.Field, visit func(domain.Contact) error) error {
	book, err := s.load()
	if err != nil {
		return err
	}

	for _, c := range book {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := visit(c.Project(fields)); err != nil {
			return err
		}
	}
	return nil
}

func (s *Store) load() ([]domain.Contact, error) {
	b, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			err = fmt.Errorf("%w: %w", domain.ErrStoreUnavailable, err)
		}
		return nil, &domain.OpError{
			Op:   "yamlbook.load",
			Kind: domain.KindEnumeration,
			Path: s.path,
			Err:  err,
		}
	}

	var yb yamlBook
	if err := yaml.Unmarshal(b, &yb); err != nil {
		return nil, &domain.OpError{
			Op:   "yamlbook.load",
			Kind: domain.KindInvalidConfig,
			Path: s.path,
			Err:  err,
		}
	}

	return mapAndValidate(s.path, yb)
}

type yamlBook struct {
	Contacts []yamlContact `yaml:"contacts"`
}

type yamlContact struct {
	GivenName  string      `yaml:"given_name"`
	FamilyName string      `yaml:"family_name"`
	Phones     []yamlPhone `yaml:"phones"`
}

type yamlPhone struct {
	Label  string `yaml:"label"`
	Number string `yaml:"number"`
}

func mapAndValidate(path string, yb yamlBook) ([]domain.Contact, error) {
	out := make([]domain.Contact, 0, len(yb.Contacts))

	for i, c := range yb.Contacts {
		contact := domain.Contact{
			GivenName:    c.GivenName,
			FamilyName:   c.FamilyName,
			PhoneNumbers: make([]domain.PhoneNumber, 0, len(c.Phones)),
		}

		for j, p := range c.Phones {
			if strings.TrimSpace(p.Label) == "" {
				return nil, invalidField(path, fmt.Sprintf("contacts[%d].phones[%d].label", i, j), "phone label is required")
			}
			contact.PhoneNumbers = append(contact.PhoneNumbers, domain.PhoneNumber{
				Label: canonicalLabel(p.Label),
				Value: p.Number,
			})
		}

		out = append(out, contact)
	}

	return out, nil
}

// canonicalLabel accepts the usual spellings of the mobile label; other labels pass through.
func canonicalLabel(l string) string {
	l = strings.TrimSpace(l)
	switch strings.ToLower(l) {
	case "mobile", "cell":
		return domain.LabelMobile
	}
	return domain.CanonicalLabel(l)
}

func invalidField(path, field, msg string) error {
	return &domain.OpError{
		Op:   "yamlbook.validate",
		Kind: domain.KindInvalidConfig,
		Path: path,
		Err:  fmt.Errorf("field %s: %s", field, msg),
	}
}
