package ports

import (
	"io"

	"github.com/Joshrizika/Chat-Pilot/internal/domain"
)

// MappingEncoder renders an export mapping as pretty-printed text.
type MappingEncoder interface {
	Encode(w io.Writer, m *domain.ExportMapping) error
}
