// Package pager shows a rendered report in a scrollable terminal view.
package pager

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type keyMap struct {
	Quit key.Binding
	Top  key.Binding
	End  key.Binding
}

var keys = keyMap{
	Quit: key.NewBinding(
		key.WithKeys("q", "esc", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
	Top: key.NewBinding(
		key.WithKeys("g", "home"),
		key.WithHelp("g", "top"),
	),
	End: key.NewBinding(
		key.WithKeys("G", "end"),
		key.WithHelp("G", "bottom"),
	),
}

var footerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))

// Model is the bubbletea model for the pager.
type Model struct {
	title    string
	content  string
	viewport viewport.Model
	ready    bool
}

// New returns a Model displaying content.
func New(title, content string) Model {
	return Model{title: title, content: content}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, keys.Top):
			m.viewport.GotoTop()
			return m, nil
		case key.Matches(msg, keys.End):
			m.viewport.GotoBottom()
			return m, nil
		}
	case tea.WindowSizeMsg:
		height := msg.Height - 1 // footer
		if height < 1 {
			height = 1
		}
		if !m.ready {
			m.viewport = viewport.New(msg.Width, height)
			m.viewport.SetContent(m.content)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = height
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if !m.ready {
		return "loading..."
	}
	return m.viewport.View() + "\n" + m.footer()
}

func (m Model) footer() string {
	pct := int(m.viewport.ScrollPercent() * 100)
	return footerStyle.Render(fmt.Sprintf("%s  %d%%  %s %s", m.title, pct, keys.Quit.Help().Key, keys.Quit.Help().Desc))
}

// Run blocks until the user quits or ctx is cancelled.
func Run(ctx context.Context, title, content string, in io.Reader, out io.Writer) error {
	p := tea.NewProgram(New(title, content),
		tea.WithContext(ctx),
		tea.WithInput(in),
		tea.WithOutput(out),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
