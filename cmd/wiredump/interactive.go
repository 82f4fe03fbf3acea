package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4"))

	detailStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#90EE90"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

type modelState int

const (
	stateList modelState = iota
	stateDetail
	stateFilter
)

type interactiveModel struct {
	filename string
	entries  []Entry
	visible  []int // indices into entries after filtering
	filter   textinput.Model
	selected int
	state    modelState
}

func newInteractiveModel(filename string, entries []Entry) *interactiveModel {
	ti := textinput.New()
	ti.Placeholder = "field name or number"
	ti.Prompt = "/"
	ti.Width = 32

	m := &interactiveModel{
		filename: filename,
		entries:  entries,
		filter:   ti,
		state:    stateList,
	}
	m.applyFilter("")
	return m
}

func (m *interactiveModel) Init() tea.Cmd {
	return nil
}

func (m *interactiveModel) applyFilter(query string) {
	m.visible = m.visible[:0]
	query = strings.ToLower(query)
	for i, e := range m.entries {
		if query == "" ||
			strings.Contains(strings.ToLower(e.Name), query) ||
			strings.Contains(fmt.Sprintf("%d", e.Number), query) {
			m.visible = append(m.visible, i)
		}
	}
	if m.selected >= len(m.visible) {
		m.selected = 0
	}
}

func (m *interactiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.state == stateFilter {
			switch msg.String() {
			case "enter", "esc":
				m.state = stateList
				m.filter.Blur()
			case "ctrl+c":
				return m, tea.Quit
			default:
				var cmd tea.Cmd
				m.filter, cmd = m.filter.Update(msg)
				m.applyFilter(m.filter.Value())
				return m, cmd
			}
			return m, nil
		}

		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit

		case "up", "k":
			if m.state == stateList && m.selected > 0 {
				m.selected--
			}

		case "down", "j":
			if m.state == stateList && m.selected < len(m.visible)-1 {
				m.selected++
			}

		case "enter":
			if m.state == stateList && len(m.visible) > 0 {
				m.state = stateDetail
			}

		case "esc":
			if m.state == stateDetail {
				m.state = stateList
			}

		case "/":
			if m.state == stateList {
				m.state = stateFilter
				m.filter.Focus()
			}
		}
	}

	return m, nil
}

func (m *interactiveModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Wire Dump"))
	b.WriteString(" ")
	b.WriteString(m.filename)
	b.WriteString("\n\n")

	switch m.state {
	case stateList, stateFilter:
		if m.state == stateFilter || m.filter.Value() != "" {
			b.WriteString(m.filter.View())
			b.WriteString("\n\n")
		}

		if len(m.visible) == 0 {
			b.WriteString(helpStyle.Render("no matching entries"))
			b.WriteString("\n")
		}
		for pos, idx := range m.visible {
			e := m.entries[idx]
			line := fmt.Sprintf("field %-4d %-18s %s", e.Number, e.Type.String(), e.Name)
			if pos == m.selected {
				b.WriteString(selectedStyle.Render("> " + line))
			} else {
				b.WriteString("  " + line)
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("↑/↓ select • enter inspect • / filter • q quit"))

	case stateDetail:
		e := m.entries[m.visible[m.selected]]
		b.WriteString(fmt.Sprintf("field %d (%s) at offset %d\n\n", e.Number, e.Type.String(), e.Offset))
		b.WriteString(detailStyle.Render(e.Detail()))
		b.WriteString("\n\n")
		b.WriteString(helpStyle.Render("esc back • q quit"))
	}

	return b.String()
}

func runInteractive(filename string, entries []Entry) error {
	p := tea.NewProgram(newInteractiveModel(filename, entries), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
