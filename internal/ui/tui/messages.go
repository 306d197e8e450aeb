package tui

import "github.com/Joshrizika/Chat-Pilot/internal/domain"

type contactsLoadedMsg struct {
	entries []domain.MappingEntry
	err     error
}
