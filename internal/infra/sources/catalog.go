// Package sources decides which contact store a configuration reads and opens it.
package sources

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/Joshrizika/Chat-Pilot/internal/app/template"
	"github.com/Joshrizika/Chat-Pilot/internal/domain"
	"github.com/Joshrizika/Chat-Pilot/internal/infra/abdb"
	"github.com/Joshrizika/Chat-Pilot/internal/infra/carddavstore"
	"github.com/Joshrizika/Chat-Pilot/internal/infra/httpclient"
	"github.com/Joshrizika/Chat-Pilot/internal/infra/vcardstore"
	"github.com/Joshrizika/Chat-Pilot/internal/infra/yamlbook"
	"github.com/Joshrizika/Chat-Pilot/internal/ports"
)

// Workspace files the auto source falls back to, in preference order.
const (
	WorkspaceVCard = "contacts.vcf"
	WorkspaceYAML  = "contacts.yaml"
)

type Catalog struct {
	// AddressBookRoot is where the macOS Contacts databases live.
	AddressBookRoot string
	Getenv          func(string) string
	Log             *slog.Logger
}

func NewCatalog() *Catalog {
	return &Catalog{
		AddressBookRoot: abdb.DefaultRoot(),
		Getenv:          os.Getenv,
		Log:             slog.New(slog.NewJSONHandler(io.Discard, nil)),
	}
}

var _ ports.SourceCatalog = (*Catalog)(nil)

// ListSources returns the candidates for cfg in preference order. For an explicit kind that
// is the one configured source; for auto it is every candidate that currently exists.
func (c *Catalog) ListSources(cfg domain.Config, root string) ([]ports.SourceRef, error) {
	src := cfg.Source

	switch src.Kind {
	case domain.SourceAuto, "":
		return c.autoCandidates(root), nil
	case domain.SourceAddressBook:
		p := src.Path
		if p == "" {
			p = c.AddressBookRoot
		}
		return []ports.SourceRef{{Kind: domain.SourceAddressBook, Path: p}}, nil
	case domain.SourceVCard:
		return []ports.SourceRef{{Kind: domain.SourceVCard, Path: orDefault(src.Path, root, WorkspaceVCard)}}, nil
	case domain.SourceYAML:
		return []ports.SourceRef{{Kind: domain.SourceYAML, Path: orDefault(src.Path, root, WorkspaceYAML)}}, nil
	case domain.SourceCardDAV:
		if src.CardDAV.URL == "" {
			return nil, invalid("carddav source needs source.carddav.url")
		}
		return []ports.SourceRef{{Kind: domain.SourceCardDAV, Path: src.CardDAV.URL}}, nil
	default:
		return nil, invalid(fmt.Sprintf("unsupported source kind %q", src.Kind))
	}
}

// Resolve picks the source the export reads. With nothing available, auto still resolves to
// the address book, whose enumeration then reports the store as unavailable.
func (c *Catalog) Resolve(cfg domain.Config, root string) (ports.SourceRef, error) {
	refs, err := c.ListSources(cfg, root)
	if err != nil {
		return ports.SourceRef{}, err
	}
	if len(refs) == 0 {
		return ports.SourceRef{Kind: domain.SourceAddressBook, Path: c.AddressBookRoot}, nil
	}
	return refs[0], nil
}

// Open builds the store for ref. cfg supplies the CardDAV credentials.
func (c *Catalog) Open(ref ports.SourceRef, cfg domain.Config) (ports.ContactStore, error) {
	switch ref.Kind {
	case domain.SourceAddressBook:
		return abdb.NewStore(ref.Path), nil
	case domain.SourceVCard:
		return vcardstore.NewStore(ref.Path), nil
	case domain.SourceYAML:
		return yamlbook.NewStore(ref.Path), nil
	case domain.SourceCardDAV:
		dav := cfg.Source.CardDAV
		password := ""
		if dav.PasswordEnv != "" && c.Getenv != nil {
			password = c.Getenv(dav.PasswordEnv)
		}
		endpoint, err := template.RenderURL(ref.Path, map[string]string{"username": dav.Username})
		if err != nil {
			return nil, err
		}
		doer := httpclient.NewDoer(httpclient.WithLogger(c.Log))
		return carddavstore.NewStore(endpoint, dav.Username, password,
			carddavstore.WithDoer(doer),
			carddavstore.WithLogger(c.Log),
		), nil
	default:
		return nil, invalid(fmt.Sprintf("unsupported source kind %q", ref.Kind))
	}
}

func (c *Catalog) autoCandidates(root string) []ports.SourceRef {
	var refs []ports.SourceRef

	if dbs, err := abdb.Locate(c.AddressBookRoot); err == nil && len(dbs) > 0 {
		refs = append(refs, ports.SourceRef{Kind: domain.SourceAddressBook, Path: c.AddressBookRoot})
	} else if err != nil {
		c.Log.Debug("sources.addressbook.skipped", "root", c.AddressBookRoot, "error", err.Error())
	}

	if root == "" {
		return refs
	}
	for _, f := range []struct {
		kind domain.SourceKind
		name string
	}{
		{domain.SourceVCard, WorkspaceVCard},
		{domain.SourceYAML, WorkspaceYAML},
	} {
		p := filepath.Join(root, f.name)
		if _, err := os.Stat(p); err == nil {
			refs = append(refs, ports.SourceRef{Kind: f.kind, Path: p})
		}
	}
	return refs
}

func orDefault(path, root, name string) string {
	if path != "" {
		return path
	}
	return filepath.Join(root, name)
}

func invalid(msg string) error {
	return &domain.OpError{
		Op:   "sources.resolve",
		Kind: domain.KindInvalidConfig,
		Err:  fmt.Errorf("%s: %w", msg, domain.ErrInvalidConfig),
	}
}
