// Package vcardstore reads contacts from vCard (.vcf) files.
package vcardstore

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/emersion/go-vcard"

	"github.com/Joshrizika/Chat-Pilot/internal/domain"
	"github.com/Joshrizika/Chat-Pilot/internal/ports"
)

// Store reads a single .vcf file, or every .vcf file of a directory in name order.
type Store struct {
	path string
}

func NewStore(path string) *Store {
	return &Store{path: path}
}

var _ ports.ContactStore = (*Store)(nil)

func (s *Store) RequestAccess(_ context.Context) (bool, error) {
	f, err := os.Open(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrPermission) {
			return false, nil
		}
		return true, nil
	}
	_ = f.Close()
	return true, nil
}

func (s *Store) EnumerateContacts(ctx context.Context, fields []domain.Field, visit func(domain.Contact) error) error {
	files, err := s.files()
	if err != nil {
		return err
	}

	for _, p := range files {
		if err := s.enumerateFile(ctx, p, fields, visit); err != nil {
			return err
		}
	}
	return nil
}

func (s *Store) files() ([]string, error) {
	info, err := os.Stat(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			err = fmt.Errorf("%w: %w", domain.ErrStoreUnavailable, err)
		}
		return nil, &domain.OpError{Op: "vcardstore.stat", Kind: domain.KindEnumeration, Path: s.path, Err: err}
	}
	if !info.IsDir() {
		return []string{s.path}, nil
	}

	entries, err := os.ReadDir(s.path)
	if err != nil {
		return nil, &domain.OpError{Op: "vcardstore.list", Kind: domain.KindEnumeration, Path: s.path, Err: err}
	}

	var out []string
	for _, e := range entries {
		if e.IsDir() || !IsVCardFile(e.Name()) {
			continue
		}
		out = append(out, filepath.Join(s.path, e.Name()))
	}
	sort.Strings(out)
	return out, nil
}

func (s *Store) enumerateFile(ctx context.Context, path string, fields []domain.Field, visit func(domain.Contact) error) error {
	f, err := os.Open(path)
	if err != nil {
		return &domain.OpError{Op: "vcardstore.open", Kind: domain.KindEnumeration, Path: path, Err: err}
	}
	defer f.Close()

	dec := vcard.NewDecoder(f)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		card, err := dec.Decode()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return &domain.OpError{Op: "vcardstore.decode", Kind: domain.KindEnumeration, Path: path, Err: err}
		}

		if err := visit(ContactFromCard(card).Project(fields)); err != nil {
			return err
		}
	}
}

// IsVCardFile reports whether name has a vCard extension.
func IsVCardFile(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	return ext == ".vcf" || ext == ".vcard"
}
