// Package tui is the interactive contact browser behind `fetchcontacts browse`.
package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Joshrizika/Chat-Pilot/internal/domain"
)

type screen int

const (
	screenLoading screen = iota
	screenList
	screenDetail
	screenError
)

type contactItem struct {
	entry domain.MappingEntry
}

func (c contactItem) Title() string { return c.entry.Name }
func (c contactItem) Description() string {
	if c.entry.Number == "" {
		return "(no digits)"
	}
	return c.entry.Number
}
func (c contactItem) FilterValue() string { return c.entry.Name + " " + c.entry.Number }

type model struct {
	theme Theme
	deps  Deps

	scr     screen
	spin    spinner.Model
	list    list.Model
	width   int
	current domain.MappingEntry
	err     error
	toast   string
}

// Run blocks until the user quits. A load failure is returned after the program exits so
// the caller can pick an exit status.
func Run(deps Deps) error {
	p := tea.NewProgram(wrapSafe(newModel(deps), deps.Logger), tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return err
	}
	if sm, ok := final.(safeModel); ok && sm.m.err != nil {
		return sm.m.err
	}
	return nil
}

func newModel(deps Deps) model {
	t := DefaultTheme()

	l := list.New(nil, list.NewDefaultDelegate(), 0, 0)
	l.Title = "Contacts"
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.SetShowHelp(false)
	l.SetStatusBarItemName("contact", "contacts")

	s := spinner.New()
	s.Spinner = spinner.Dot

	return model{
		theme: t,
		deps:  deps,
		scr:   screenLoading,
		spin:  s,
		list:  l,
	}
}

func (m model) Init() tea.Cmd {
	return tea.Batch(m.spin.Tick, cmdLoadContacts(m.deps))
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.list.SetSize(msg.Width-4, msg.Height-8)
		return m, nil

	case spinner.TickMsg:
		if m.scr != screenLoading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case contactsLoadedMsg:
		if msg.err != nil {
			m.err = msg.err
			m.scr = screenError
			return m, nil
		}
		items := make([]list.Item, 0, len(msg.entries))
		for _, e := range msg.entries {
			items = append(items, contactItem{entry: e})
		}
		m.scr = screenList
		return m, m.list.SetItems(items)

	case tea.KeyMsg:
		m.toast = ""
		if m.scr == screenList && m.list.FilterState() == list.Filtering {
			break
		}

		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit

		case "enter":
			if m.scr == screenList {
				it, ok := m.list.SelectedItem().(contactItem)
				if !ok {
					return m, nil
				}
				m.current = it.entry
				m.scr = screenDetail
				return m, nil
			}

		case "esc", "b":
			if m.scr == screenDetail {
				m.scr = screenList
				m.current = domain.MappingEntry{}
				return m, nil
			}
		}
	}

	if m.scr == screenList {
		var cmd tea.Cmd
		m.list, cmd = m.list.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m model) View() string {
	wrap := lipgloss.NewStyle().Padding(1, 2)

	source := describeSource(m.deps.Source)
	if m.width > 10 {
		source = clampString(source, m.width-6)
	}
	header := m.theme.Title.Render("fetchcontacts") + "\n" + m.theme.Subtitle.Render(source) + "\n"

	var toast string
	if m.toast != "" {
		toast = "\n" + m.theme.Error.Render(m.toast)
	}

	switch m.scr {
	case screenLoading:
		return wrap.Render(header + "\n" + m.spin.View() + " Reading contacts…")

	case screenList:
		help := m.theme.Help.Render("↑/↓ navigate • enter show number • / search • q quit")
		return wrap.Render(header + "\n" + m.theme.Card.Render(m.list.View()) + "\n" + help + toast)

	case screenDetail:
		return wrap.Render(header + "\n" + m.renderDetail(m.current) + toast)

	case screenError:
		body := m.theme.Error.Render(UserMessage(m.err))
		if m.deps.Debug {
			body += "\n\n" + m.theme.Subtitle.Render(m.err.Error())
			if m.deps.LogPath != "" {
				body += "\n" + m.theme.Subtitle.Render("log: "+m.deps.LogPath)
			}
		}
		card := m.theme.Card.Render(fmt.Sprintf("%s\n\n%s", body, m.theme.Help.Render("q quit")))
		return wrap.Render(header + "\n" + card)

	default:
		return wrap.Render(header + "\n" + "unknown state")
	}
}
