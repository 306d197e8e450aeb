package tui

import (
	"errors"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/Joshrizika/Chat-Pilot/internal/domain"
)

var reLine = regexp.MustCompile(`(?i)\bline\s+(\d+)\b`)

// UserMessage turns an error into one short line for a person, never a stack of wrapped causes.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}

	var oe *domain.OpError
	if errors.As(err, &oe) {
		switch oe.Kind {
		case domain.KindAccessDenied:
			return "Access to contacts was denied. Grant access in System Settings → Privacy & Security → Contacts (or Full Disk Access), then retry."

		case domain.KindNotFound:
			if strings.Contains(oe.Op, "lookup") && oe.Err != nil {
				msg := strings.TrimSuffix(oe.Err.Error(), ": "+domain.ErrNotFound.Error())
				msg = "Contact " + strings.TrimPrefix(msg, "contact ")
				if strings.Contains(msg, "ambiguous") {
					return msg
				}
				return msg + " not found"
			}
			if strings.Contains(oe.Op, "workspacefinder") {
				return "Workspace not found"
			}
			return "Not found"

		case domain.KindInvalidConfig:
			base := "config"
			if strings.TrimSpace(oe.Path) != "" {
				base = filepath.Base(oe.Path)
			}

			line := extractLine(err.Error())
			if line != "" {
				return "Invalid YAML at " + base + " line " + line
			}
			if looksLikeYAMLProblem(err.Error()) {
				return "Invalid YAML at " + base
			}
			if errors.Is(err, domain.ErrInvalidConfig) && oe.Err != nil {
				return "Invalid config: " + strings.TrimSuffix(oe.Err.Error(), ": "+domain.ErrInvalidConfig.Error())
			}
			return "Invalid config"

		case domain.KindEnumeration:
			if errors.Is(err, domain.ErrStoreUnavailable) {
				return "No contact store found"
			}
			return "Could not read contacts (see logs)"

		default:
			return "Unexpected error (see logs)"
		}
	}

	if errors.Is(err, domain.ErrAccessDenied) {
		return "Access to contacts was denied"
	}
	if looksLikeYAMLProblem(err.Error()) {
		if line := extractLine(err.Error()); line != "" {
			return "Invalid YAML line " + line
		}
		return "Invalid YAML"
	}

	return "Unexpected error (see logs)"
}

func looksLikeYAMLProblem(s string) bool {
	ls := strings.ToLower(s)
	return strings.Contains(ls, "yaml:") || strings.Contains(ls, "did not find expected") || strings.Contains(ls, "cannot unmarshal")
}

func extractLine(s string) string {
	m := reLine.FindStringSubmatch(s)
	if len(m) == 2 {
		return m[1]
	}
	return ""
}
