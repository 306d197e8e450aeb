package ports

import (
	"context"

	"github.com/Joshrizika/Chat-Pilot/internal/domain"
)

// ContactStore is a read-only address book.
type ContactStore interface {
	// RequestAccess blocks until the store grants or refuses read access.
	RequestAccess(ctx context.Context) (bool, error)

	// EnumerateContacts calls visit once per contact, in store order, with the requested fields
	// populated. A non-nil error from visit stops the enumeration and is returned.
	EnumerateContacts(ctx context.Context, fields []domain.Field, visit func(domain.Contact) error) error
}
