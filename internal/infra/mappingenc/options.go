// Package mappingenc renders an ExportMapping as text.
package mappingenc

import (
	"fmt"

	"github.com/Joshrizika/Chat-Pilot/internal/domain"
	"github.com/Joshrizika/Chat-Pilot/internal/ports"
)

const defaultIndent = 2

type Option func(*options)

type options struct {
	indent int
}

// WithIndent sets the number of spaces per nesting level. Values below 1 keep the default.
func WithIndent(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.indent = n
		}
	}
}

func buildOptions(opts []Option) options {
	o := options{indent: defaultIndent}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// ForConfig picks the encoder for the configured output format.
func ForConfig(cfg domain.OutputConfig) (ports.MappingEncoder, error) {
	switch cfg.Format {
	case domain.FormatJSON, "":
		return NewJSON(WithIndent(cfg.Indent)), nil
	case domain.FormatYAML:
		return NewYAML(WithIndent(cfg.Indent)), nil
	default:
		return nil, &domain.OpError{
			Op:   "mappingenc.select",
			Kind: domain.KindInvalidConfig,
			Err:  fmt.Errorf("unsupported output format %q (expected json|yaml): %w", cfg.Format, domain.ErrInvalidConfig),
		}
	}
}
