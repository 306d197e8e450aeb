package usecase

import (
	"context"
	"errors"
	"io"

	"github.com/Joshrizika/Chat-Pilot/internal/domain"
)

type fakeStore struct {
	granted   bool
	accessErr error
	contacts  []domain.Contact
	failAfter int // fail after yielding this many contacts; <0 disables
	enumErr   error

	enumerated bool
	fields     []domain.Field
}

func newFakeStore(contacts ...domain.Contact) *fakeStore {
	return &fakeStore{granted: true, contacts: contacts, failAfter: -1}
}

func (s *fakeStore) RequestAccess(context.Context) (bool, error) {
	return s.granted, s.accessErr
}

func (s *fakeStore) EnumerateContacts(_ context.Context, fields []domain.Field, visit func(domain.Contact) error) error {
	s.enumerated = true
	s.fields = fields
	for i, c := range s.contacts {
		if s.failAfter >= 0 && i == s.failAfter {
			return s.enumErr
		}
		if err := visit(c.Project(fields)); err != nil {
			return err
		}
	}
	if s.failAfter >= 0 && s.failAfter >= len(s.contacts) {
		return s.enumErr
	}
	return nil
}

type failingEncoder struct{ err error }

func (e failingEncoder) Encode(w io.Writer, _ *domain.ExportMapping) error {
	_, _ = io.WriteString(w, "{ partial")
	return e.err
}

type listEncoder struct{}

// Encode writes "name=number" lines; enough to observe order and content.
func (listEncoder) Encode(w io.Writer, m *domain.ExportMapping) error {
	for _, e := range m.Entries() {
		if _, err := io.WriteString(w, e.Name+"="+e.Number+"\n"); err != nil {
			return err
		}
	}
	return nil
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("broken pipe") }

func mobile(given, family, number string) domain.Contact {
	return domain.Contact{
		GivenName:    given,
		FamilyName:   family,
		PhoneNumbers: []domain.PhoneNumber{{Label: domain.LabelMobile, Value: number}},
	}
}
