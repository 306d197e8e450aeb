package usecase

import (
	"bytes"
	"context"
	"io"
	"log/slog"

	"github.com/Joshrizika/Chat-Pilot/internal/domain"
	"github.com/Joshrizika/Chat-Pilot/internal/ports"
)

type ExportContacts struct {
	reader  *ReadContacts
	encoder ports.MappingEncoder
	log     *slog.Logger
}

func NewExportContacts(store ports.ContactStore, enc ports.MappingEncoder, opts ...Option) *ExportContacts {
	o := buildOptions(opts)
	return &ExportContacts{
		reader:  NewReadContacts(store, opts...),
		encoder: enc,
		log:     o.log,
	}
}

// Mapping reads the store and builds the export mapping without rendering it.
func (uc *ExportContacts) Mapping(ctx context.Context) (*domain.ExportMapping, error) {
	records, err := uc.reader.Execute(ctx)
	if err != nil {
		return nil, err
	}
	return BuildMapping(records), nil
}

// Execute writes the rendered mapping to w and returns the mapping it rendered.
//
// Only access denial is returned as an error. When rendering fails nothing is written to w.
func (uc *ExportContacts) Execute(ctx context.Context, w io.Writer) (*domain.ExportMapping, error) {
	m, err := uc.Mapping(ctx)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := uc.encoder.Encode(&buf, m); err != nil {
		uc.log.Warn("export.encode.failed", "error", err.Error(), "entries", m.Len())
		return m, nil
	}

	if _, err := w.Write(buf.Bytes()); err != nil {
		uc.log.Warn("export.write.failed", "error", err.Error())
		return m, nil
	}

	uc.log.Info("export.done", "entries", m.Len(), "bytes", buf.Len())
	return m, nil
}
