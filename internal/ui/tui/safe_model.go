package tui

import (
	"fmt"
	"io"
	"log/slog"
	"runtime/debug"

	tea "github.com/charmbracelet/bubbletea"
)

const panicToast = "Something went wrong, details are in the log file"

// safeModel keeps a panicking Update or View from tearing down the terminal.
type safeModel struct {
	m   model
	log *slog.Logger
}

func wrapSafe(m model, log *slog.Logger) safeModel {
	if log == nil {
		log = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	return safeModel{m: m, log: log}
}

func (s safeModel) recovered(phase string, r any) {
	s.log.Error("browse.panic",
		"phase", phase,
		"screen", int(s.m.scr),
		"panic", fmt.Sprint(r),
		"stack", string(debug.Stack()),
	)
}

func (s safeModel) Init() tea.Cmd { return s.m.Init() }

func (s safeModel) Update(msg tea.Msg) (next tea.Model, cmd tea.Cmd) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		s.recovered("update", r)
		// The detail screen is the only one that depends on a selection.
		if s.m.scr == screenDetail {
			s.m.scr = screenList
		}
		s.m.toast = panicToast
		next, cmd = s, nil
	}()

	inner, c := s.m.Update(msg)
	switch v := inner.(type) {
	case model:
		s.m = v
	case safeModel:
		s = v
	}
	return s, c
}

func (s safeModel) View() (out string) {
	defer func() {
		if r := recover(); r != nil {
			s.recovered("view", r)
			out = panicToast
		}
	}()
	return s.m.View()
}

var _ tea.Model = (*safeModel)(nil)
