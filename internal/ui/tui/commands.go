package tui

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Joshrizika/Chat-Pilot/internal/domain"
)

const loadTimeout = 2 * time.Minute

func cmdLoadContacts(deps Deps) tea.Cmd {
	return func() tea.Msg {
		if deps.Contacts == nil {
			return contactsLoadedMsg{err: errors.New("contact source is nil")}
		}

		ctx, cancel := context.WithTimeout(context.Background(), loadTimeout)
		defer cancel()

		start := time.Now()
		m, err := deps.Contacts.Mapping(ctx)
		if err != nil {
			if deps.Logger != nil {
				deps.Logger.Error("browse.load.failed", "err", err)
			}
			return contactsLoadedMsg{err: err}
		}

		entries := m.Entries()
		sortEntries(entries)

		if deps.Logger != nil {
			deps.Logger.Info("browse.loaded",
				"contacts", len(entries),
				"duration_ms", time.Since(start).Milliseconds(),
			)
		}
		return contactsLoadedMsg{entries: entries}
	}
}

// sortEntries orders by name, case-insensitively, for display only.
func sortEntries(entries []domain.MappingEntry) {
	sort.SliceStable(entries, func(i, j int) bool {
		a, b := entries[i].Name, entries[j].Name
		la, lb := strings.ToLower(a), strings.ToLower(b)
		if la != lb {
			return la < lb
		}
		return a < b
	})
}
