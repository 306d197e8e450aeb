// Package carddavstore reads contacts from a CardDAV server.
package carddavstore

import (
	"context"
	"io"
	"log/slog"
	"sort"
	"strings"

	"github.com/emersion/go-webdav"
	"github.com/emersion/go-webdav/carddav"

	"github.com/Joshrizika/Chat-Pilot/internal/domain"
	"github.com/Joshrizika/Chat-Pilot/internal/infra/httpclient"
	"github.com/Joshrizika/Chat-Pilot/internal/infra/vcardstore"
	"github.com/Joshrizika/Chat-Pilot/internal/ports"
)

// Store enumerates every address book of the authenticated user.
type Store struct {
	endpoint string
	username string
	password string

	doer *httpclient.Doer
	log  *slog.Logger

	client    *carddav.Client
	principal string
}

type Option func(*Store)

// WithDoer replaces the HTTP client used for every request.
func WithDoer(d *httpclient.Doer) Option {
	return func(s *Store) { s.doer = d }
}

func WithLogger(l *slog.Logger) Option {
	return func(s *Store) { s.log = l }
}

// NewStore does no network I/O. An empty username disables basic auth.
func NewStore(endpoint, username, password string, opts ...Option) *Store {
	s := &Store{
		endpoint: strings.TrimSpace(endpoint),
		username: username,
		password: password,
		log:      slog.New(slog.NewJSONHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.doer == nil {
		s.doer = httpclient.NewDoer(httpclient.WithLogger(s.log))
	}
	return s
}

var _ ports.ContactStore = (*Store)(nil)

// RequestAccess resolves the current user principal. A 401 or 403 from the server
// means not granted; any other failure is returned as an error.
func (s *Store) RequestAccess(ctx context.Context) (bool, error) {
	c, err := s.dial()
	if err != nil {
		return false, err
	}

	principal, err := c.FindCurrentUserPrincipal(ctx)
	if err != nil {
		if s.doer.Rejected() {
			s.log.Info("carddav.access.rejected", "endpoint", s.endpoint)
			return false, nil
		}
		return false, &domain.OpError{Op: "carddavstore.principal", Kind: domain.KindAccessDenied, Path: s.endpoint, Err: err}
	}

	s.principal = principal
	return true, nil
}

func (s *Store) EnumerateContacts(ctx context.Context, fields []domain.Field, visit func(domain.Contact) error) error {
	c, err := s.dial()
	if err != nil {
		return err
	}

	if s.principal == "" {
		p, err := c.FindCurrentUserPrincipal(ctx)
		if err != nil {
			return enumErr("carddavstore.principal", s.endpoint, err)
		}
		s.principal = p
	}

	home, err := c.FindAddressBookHomeSet(ctx, s.principal)
	if err != nil {
		return enumErr("carddavstore.homeset", s.principal, err)
	}

	books, err := c.FindAddressBooks(ctx, home)
	if err != nil {
		return enumErr("carddavstore.books", home, err)
	}
	sort.Slice(books, func(i, j int) bool { return books[i].Path < books[j].Path })

	query := &carddav.AddressBookQuery{
		DataRequest: carddav.AddressDataRequest{AllProp: true},
	}

	for _, b := range books {
		objs, err := c.QueryAddressBook(ctx, b.Path, query)
		if err != nil {
			return enumErr("carddavstore.query", b.Path, err)
		}
		sort.Slice(objs, func(i, j int) bool { return objs[i].Path < objs[j].Path })

		s.log.Debug("carddav.book.read", "path", b.Path, "cards", len(objs))

		for _, o := range objs {
			if err := visit(vcardstore.ContactFromCard(o.Card).Project(fields)); err != nil {
				return err
			}
		}
	}
	return nil
}

func (s *Store) dial() (*carddav.Client, error) {
	if s.client != nil {
		return s.client, nil
	}
	if s.endpoint == "" {
		return nil, &domain.OpError{Op: "carddavstore.dial", Kind: domain.KindInvalidConfig, Err: domain.ErrInvalidConfig}
	}

	var hc webdav.HTTPClient = s.doer
	if s.username != "" {
		hc = webdav.HTTPClientWithBasicAuth(s.doer, s.username, s.password)
	}

	c, err := carddav.NewClient(hc, s.endpoint)
	if err != nil {
		return nil, &domain.OpError{Op: "carddavstore.dial", Kind: domain.KindInvalidConfig, Path: s.endpoint, Err: err}
	}
	s.client = c
	return c, nil
}

func enumErr(op, path string, err error) error {
	return &domain.OpError{Op: op, Kind: domain.KindEnumeration, Path: path, Err: err}
}
