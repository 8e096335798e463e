package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rowanmaas/veriflow/internal/cli/formatter"
	"github.com/rowanmaas/veriflow/internal/contract"
	"github.com/rowanmaas/veriflow/internal/domain"
)

// linksKeyMap defines the key bindings of the links viewer.
type linksKeyMap struct {
	Up    key.Binding
	Down  key.Binding
	Enter key.Binding
	Back  key.Binding
	Quit  key.Binding
}

var defaultLinksKeys = linksKeyMap{
	Up:    key.NewBinding(key.WithKeys("up", "k")),
	Down:  key.NewBinding(key.WithKeys("down", "j")),
	Enter: key.NewBinding(key.WithKeys("enter")),
	Back:  key.NewBinding(key.WithKeys("backspace", "esc")),
	Quit:  key.NewBinding(key.WithKeys("q", "ctrl+c")),
}

// linksFrame is one level of the drill-down stack: a root document and its
// listing.
type linksFrame struct {
	doctype domain.Doctype
	name    string
	result  *contract.LinkedDocuments
	cursor  int
}

// linksLoadedMsg delivers an asynchronously loaded listing.
type linksLoadedMsg struct {
	frame linksFrame
	err   error
}

// linksViewModel is the bubbletea model for the interactive link browser.
// Enter drills into the selected document; backspace pops back up.
type linksViewModel struct {
	app   *App
	keys  linksKeyMap
	stack []linksFrame
	vp    viewport.Model
	ready bool
	err   error
}

func newLinksViewModel(app *App, doctype domain.Doctype, name string) *linksViewModel {
	return &linksViewModel{
		app:  app,
		keys: defaultLinksKeys,
		stack: []linksFrame{
			{doctype: doctype, name: name},
		},
	}
}

func (m *linksViewModel) loadTop() tea.Cmd {
	frame := m.stack[len(m.stack)-1]
	return func() tea.Msg {
		result, err := m.app.Links.LinkedDocuments(context.Background(), frame.doctype, frame.name)
		if err != nil {
			return linksLoadedMsg{err: err}
		}
		frame.result = result
		return linksLoadedMsg{frame: frame}
	}
}

func (m *linksViewModel) top() *linksFrame {
	return &m.stack[len(m.stack)-1]
}

func (m *linksViewModel) Init() tea.Cmd {
	return m.loadTop()
}

func (m *linksViewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		if !m.ready {
			m.vp = viewport.New(msg.Width, msg.Height-2)
			m.ready = true
		} else {
			m.vp.Width = msg.Width
			m.vp.Height = msg.Height - 2
		}
		m.vp.SetContent(m.renderListing())
		return m, nil

	case linksLoadedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, tea.Quit
		}
		*m.top() = msg.frame
		if m.ready {
			m.vp.SetContent(m.renderListing())
		}
		return m, nil

	case tea.KeyMsg:
		frame := m.top()
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit

		case key.Matches(msg, m.keys.Up):
			if frame.cursor > 0 {
				frame.cursor--
			}

		case key.Matches(msg, m.keys.Down):
			if frame.result != nil && frame.cursor < len(frame.result.Docs)-1 {
				frame.cursor++
			}

		case key.Matches(msg, m.keys.Enter):
			if frame.result != nil && len(frame.result.Docs) > 0 {
				selected := frame.result.Docs[frame.cursor]
				m.stack = append(m.stack, linksFrame{
					doctype: selected.Doctype,
					name:    selected.Name,
				})
				return m, m.loadTop()
			}

		case key.Matches(msg, m.keys.Back):
			if len(m.stack) > 1 {
				m.stack = m.stack[:len(m.stack)-1]
			}
		}
		m.vp.SetContent(m.renderListing())
		return m, nil
	}

	var cmd tea.Cmd
	m.vp, cmd = m.vp.Update(msg)
	return m, cmd
}

func (m *linksViewModel) renderListing() string {
	frame := m.top()
	if frame.result == nil {
		return formatter.Dim("Loading…")
	}
	if len(frame.result.Docs) == 0 {
		return formatter.Dim("No linked documents.")
	}

	var b strings.Builder
	for i, doc := range frame.result.Docs {
		cursor := "  "
		line := fmt.Sprintf("%-18s %-20s %s  %s",
			doc.Doctype, doc.Name,
			formatter.DocStatusPill(doc.DocStatus),
			formatter.Dim(fmt.Sprintf("%d links", doc.LinkCount)))
		if i == frame.cursor {
			cursor = formatter.StyleHeader.Render("> ")
			line = formatter.Bold(fmt.Sprintf("%-18s %-20s", doc.Doctype, doc.Name)) +
				fmt.Sprintf(" %s  %s", formatter.DocStatusPill(doc.DocStatus),
					formatter.Dim(fmt.Sprintf("%d links", doc.LinkCount)))
		}
		b.WriteString(cursor + line + "\n")
	}
	return b.String()
}

func (m *linksViewModel) View() string {
	frame := m.top()
	title := formatter.Header(fmt.Sprintf("%s %s", frame.doctype, frame.name))
	help := formatter.Dim("enter: drill in · backspace: back · q: quit")
	if !m.ready {
		return title + "\n" + m.renderListing() + "\n" + help
	}
	return title + "\n" + m.vp.View() + "\n" + help
}
