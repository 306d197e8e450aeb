package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/Joshrizika/Chat-Pilot/internal/domain"
)

const maxIndent = 8

// MapConfig overlays the non-empty values of yc onto domain.DefaultConfig.
// A relative source path is resolved against the directory holding path.
func MapConfig(path string, yc YAMLConfig) (domain.Config, error) {
	cfg := domain.DefaultConfig()

	if k := strings.TrimSpace(yc.Source.Kind); k != "" {
		kind, err := parseSourceKind(k)
		if err != nil {
			return cfg, invalidField(path, "source.kind", err.Error())
		}
		cfg.Source.Kind = kind
	}

	if p := strings.TrimSpace(yc.Source.Path); p != "" {
		if !filepath.IsAbs(p) && path != "" {
			p = filepath.Join(filepath.Dir(path), p)
		}
		cfg.Source.Path = p
	}

	cfg.Source.CardDAV.URL = strings.TrimSpace(yc.Source.CardDAV.URL)
	cfg.Source.CardDAV.Username = yc.Source.CardDAV.Username
	if env := strings.TrimSpace(yc.Source.CardDAV.PasswordEnv); env != "" {
		cfg.Source.CardDAV.PasswordEnv = env
	}

	if cfg.Source.Kind == domain.SourceCardDAV && cfg.Source.CardDAV.URL == "" {
		return cfg, invalidField(path, "source.carddav.url", "url is required for the carddav source")
	}

	if f := strings.TrimSpace(yc.Output.Format); f != "" {
		switch domain.OutputFormat(strings.ToLower(f)) {
		case domain.FormatJSON:
			cfg.Output.Format = domain.FormatJSON
		case domain.FormatYAML:
			cfg.Output.Format = domain.FormatYAML
		default:
			return cfg, invalidField(path, "output.format", fmt.Sprintf("unsupported format %q", f))
		}
	}

	if yc.Output.Indent != nil {
		n := *yc.Output.Indent
		if n < 1 || n > maxIndent {
			return cfg, invalidField(path, "output.indent", fmt.Sprintf("must be between 1 and %d", maxIndent))
		}
		cfg.Output.Indent = n
	}

	return cfg, nil
}

func parseSourceKind(k string) (domain.SourceKind, error) {
	switch kind := domain.SourceKind(strings.ToLower(k)); kind {
	case domain.SourceAuto,
		domain.SourceAddressBook,
		domain.SourceVCard,
		domain.SourceYAML,
		domain.SourceCardDAV:
		return kind, nil
	default:
		return "", fmt.Errorf("unsupported source kind %q", k)
	}
}

func invalidField(path, field, msg string) error {
	return &domain.OpError{
		Op:   "config.map",
		Kind: domain.KindInvalidConfig,
		Path: path,
		Err:  fmt.Errorf("field %s: %s: %w", field, msg, domain.ErrInvalidConfig),
	}
}
