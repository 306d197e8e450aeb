package tui

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/Joshrizika/Chat-Pilot/internal/domain"
	"github.com/Joshrizika/Chat-Pilot/internal/ports"
)

func clampString(s string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= maxLen {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))

	n := 0
	for _, r := range s {
		if n >= maxLen {
			break
		}
		b.WriteRune(r)
		n++
	}
	return b.String() + "…"
}

func describeSource(ref ports.SourceRef) string {
	if ref.Kind == "" {
		return "unknown source"
	}
	if ref.Path == "" {
		return string(ref.Kind)
	}
	return fmt.Sprintf("%s: %s", ref.Kind, ref.Path)
}

func (m model) renderDetail(e domain.MappingEntry) string {
	number := e.Number
	if number == "" {
		number = "(no digits)"
	}

	var b strings.Builder
	b.WriteString(m.theme.Title.Render(e.Name))
	b.WriteString("\n\n")
	b.WriteString("Mobile  ")
	b.WriteString(m.theme.Number.Render(number))
	b.WriteString("\n\n")
	b.WriteString(m.theme.Help.Render("esc/b back • q quit"))
	return m.theme.Card.Render(b.String())
}
