package ports

import "github.com/Joshrizika/Chat-Pilot/internal/domain"

// SourceRef is a concrete place contacts can be read from.
type SourceRef struct {
	Kind domain.SourceKind
	Path string
}

// SourceCatalog lists the sources a configuration would read.
type SourceCatalog interface {
	ListSources(cfg domain.Config, root string) ([]SourceRef, error)
}
