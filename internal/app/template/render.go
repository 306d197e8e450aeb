// Package template expands {{name}} placeholders in configuration values.
package template

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/Joshrizika/Chat-Pilot/internal/domain"
)

// RenderString replaces {{VAR}} placeholders with vars values.
// It returns an error if a variable is missing or a placeholder is malformed.
func RenderString(input string, vars map[string]string) (string, error) {
	return render(input, vars, func(s string) string { return s })
}

// RenderURL is RenderString with every value escaped as a URL path segment,
// e.g. "https://dav.example.com/{{username}}/".
func RenderURL(input string, vars map[string]string) (string, error) {
	return render(input, vars, url.PathEscape)
}

func render(input string, vars map[string]string, escape func(string) string) (string, error) {
	if input == "" {
		return "", nil
	}

	var out strings.Builder
	rest := input
	for {
		start := strings.Index(rest, "{{")
		if start == -1 {
			out.WriteString(rest)
			return out.String(), nil
		}

		out.WriteString(rest[:start])
		rest = rest[start+2:]

		end := strings.Index(rest, "}}")
		if end == -1 {
			return "", invalid(input, "unclosed template expression")
		}

		key := strings.TrimSpace(rest[:end])
		if key == "" {
			return "", invalid(input, "empty template expression")
		}

		value, ok := vars[key]
		if !ok {
			return "", invalid(input, fmt.Sprintf("missing variable %q", key))
		}

		out.WriteString(escape(value))
		rest = rest[end+2:]
	}
}

func invalid(input, msg string) error {
	return &domain.OpError{
		Op:   "template.render",
		Kind: domain.KindInvalidConfig,
		Path: input,
		Err:  fmt.Errorf("%s: %w", msg, domain.ErrInvalidConfig),
	}
}
