package tui

import (
	"context"
	"log/slog"

	"github.com/Joshrizika/Chat-Pilot/internal/domain"
	"github.com/Joshrizika/Chat-Pilot/internal/ports"
)

// MappingSource produces the same mapping the export would print.
type MappingSource interface {
	Mapping(ctx context.Context) (*domain.ExportMapping, error)
}

type Deps struct {
	Contacts MappingSource
	Source   ports.SourceRef

	Logger *slog.Logger

	// Debug adds the raw error and LogPath to the error screen.
	Debug   bool
	LogPath string
}
