package usecase

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/Joshrizika/Chat-Pilot/internal/domain"
	"github.com/Joshrizika/Chat-Pilot/internal/ports"
)

// ReadContacts asks a store for access and collects one record per contact with a mobile number.
type ReadContacts struct {
	store ports.ContactStore
	log   *slog.Logger
}

type Option func(*options)

type options struct {
	log *slog.Logger
}

func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.log = l
		}
	}
}

func buildOptions(opts []Option) options {
	o := options{log: slog.New(slog.NewJSONHandler(io.Discard, nil))}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

func NewReadContacts(store ports.ContactStore, opts ...Option) *ReadContacts {
	o := buildOptions(opts)
	return &ReadContacts{store: store, log: o.log}
}

// Execute returns the records in store order.
//
// A refused (or failed) access request is the only error it returns. An enumeration failure
// keeps the records read so far and is only logged.
func (uc *ReadContacts) Execute(ctx context.Context) ([]domain.ContactRecord, error) {
	granted, err := uc.store.RequestAccess(ctx)
	if err != nil || !granted {
		cause := domain.ErrAccessDenied
		if err != nil {
			cause = fmt.Errorf("%w: %w", domain.ErrAccessDenied, err)
		}
		uc.log.Warn("contacts.access.denied", "error", errString(err))
		return nil, &domain.OpError{
			Op:   "usecase.read_contacts",
			Kind: domain.KindAccessDenied,
			Err:  cause,
		}
	}

	records := []domain.ContactRecord{}
	skipped := 0

	enumErr := uc.store.EnumerateContacts(ctx, domain.ExportFields, func(c domain.Contact) error {
		number, ok := c.MobileNumber()
		if !ok {
			skipped++
			return nil
		}
		records = append(records, domain.ContactRecord{
			GivenName:    c.GivenName,
			FamilyName:   c.FamilyName,
			MobileNumber: number,
		})
		return nil
	})
	if enumErr != nil {
		uc.log.Warn("contacts.enumerate.failed",
			"error", enumErr.Error(),
			"records_kept", len(records),
		)
	}

	uc.log.Info("contacts.read", "records", len(records), "skipped_no_mobile", skipped)
	return records, nil
}

func errString(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
