package abdb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"strings"

	_ "modernc.org/sqlite"

	"github.com/Joshrizika/Chat-Pilot/internal/domain"
	"github.com/Joshrizika/Chat-Pilot/internal/ports"
)

const driverName = "sqlite"

// Phones are ordered the way Contacts shows them; contacts by primary key.
const contactsQuery = `
SELECT r.Z_PK, r.ZFIRSTNAME, r.ZLASTNAME, p.ZLABEL, p.ZFULLNUMBER
FROM ZABCDRECORD r
LEFT JOIN ZABCDPHONENUMBER p ON p.ZOWNER = r.Z_PK
ORDER BY r.Z_PK, p.ZORDERINGINDEX, p.Z_PK`

// Store reads every database Locate finds under root.
type Store struct {
	root string
}

// NewStore uses DefaultRoot when root is empty. root may also be a single database file.
func NewStore(root string) *Store {
	if strings.TrimSpace(root) == "" {
		root = DefaultRoot()
	}
	return &Store{root: root}
}

var _ ports.ContactStore = (*Store)(nil)

// RequestAccess reports false when macOS privacy controls keep the databases unreadable.
func (s *Store) RequestAccess(_ context.Context) (bool, error) {
	dbs, err := Locate(s.root)
	if err != nil {
		if errors.Is(err, fs.ErrPermission) {
			return false, nil
		}
		return false, &domain.OpError{Op: "abdb.locate", Kind: domain.KindAccessDenied, Path: s.root, Err: err}
	}
	if len(dbs) == 0 {
		return true, nil
	}

	f, err := os.Open(dbs[0])
	if err != nil {
		if errors.Is(err, fs.ErrPermission) {
			return false, nil
		}
		return false, &domain.OpError{Op: "abdb.open", Kind: domain.KindAccessDenied, Path: dbs[0], Err: err}
	}
	_ = f.Close()
	return true, nil
}

func (s *Store) EnumerateContacts(ctx context.Context, fields []domain.Field, visit func(domain.Contact) error) error {
	dbs, err := Locate(s.root)
	if err != nil {
		return &domain.OpError{Op: "abdb.locate", Kind: domain.KindEnumeration, Path: s.root, Err: err}
	}
	if len(dbs) == 0 {
		return &domain.OpError{Op: "abdb.locate", Kind: domain.KindEnumeration, Path: s.root, Err: domain.ErrStoreUnavailable}
	}

	for _, p := range dbs {
		if err := enumerateDB(ctx, p, fields, visit); err != nil {
			return err
		}
	}
	return nil
}

func enumerateDB(ctx context.Context, path string, fields []domain.Field, visit func(domain.Contact) error) error {
	db, err := sql.Open(driverName, readOnlyDSN(path))
	if err != nil {
		return &domain.OpError{Op: "abdb.open", Kind: domain.KindEnumeration, Path: path, Err: err}
	}
	defer db.Close()

	rows, err := db.QueryContext(ctx, contactsQuery)
	if err != nil {
		return &domain.OpError{Op: "abdb.query", Kind: domain.KindEnumeration, Path: path, Err: err}
	}
	defer rows.Close()

	var (
		cur    domain.Contact
		curPK  int64
		inCard bool
	)
	flush := func() error {
		if !inCard {
			return nil
		}
		return visit(cur.Project(fields))
	}

	for rows.Next() {
		var (
			pk            int64
			first, last   sql.NullString
			label, number sql.NullString
		)
		if err := rows.Scan(&pk, &first, &last, &label, &number); err != nil {
			return &domain.OpError{Op: "abdb.scan", Kind: domain.KindEnumeration, Path: path, Err: err}
		}

		if !inCard || pk != curPK {
			if err := flush(); err != nil {
				return err
			}
			cur = domain.Contact{GivenName: first.String, FamilyName: last.String}
			curPK = pk
			inCard = true
		}

		if number.Valid {
			cur.PhoneNumbers = append(cur.PhoneNumbers, domain.PhoneNumber{
				Label: domain.CanonicalLabel(label.String),
				Value: number.String,
			})
		}
	}
	if err := rows.Err(); err != nil {
		return &domain.OpError{Op: "abdb.rows", Kind: domain.KindEnumeration, Path: path, Err: err}
	}

	return flush()
}

func readOnlyDSN(path string) string {
	u := url.URL{Scheme: "file", Path: path, RawQuery: "mode=ro"}
	return u.String()
}

func (s *Store) String() string {
	return fmt.Sprintf("addressbook(%s)", s.root)
}
