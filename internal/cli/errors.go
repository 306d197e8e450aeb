package cli

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/Joshrizika/Chat-Pilot/internal/domain"
	"github.com/Joshrizika/Chat-Pilot/internal/infra/logger"
	"github.com/Joshrizika/Chat-Pilot/internal/ui/tui"
)

// printError writes one line to stderr. Usage errors from cobra are printed as is.
func (e *env) printError(err error) {
	r := lipgloss.NewRenderer(e.stderr)
	style := r.NewStyle().Bold(true).Foreground(lipgloss.Color("203"))

	msg := err.Error()
	var oe *domain.OpError
	if errors.As(err, &oe) {
		msg = tui.UserMessage(err)
	}

	fmt.Fprintln(e.stderr, style.Render("fetchcontacts: "+msg))

	if e.debug {
		fmt.Fprintln(e.stderr, r.NewStyle().Faint(true).Render(err.Error()))
		if p := logger.Path(); p != "" {
			fmt.Fprintln(e.stderr, r.NewStyle().Faint(true).Render("log: "+p))
		}
	}
}
