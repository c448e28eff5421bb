package main

import (
	"fmt"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// sessionDoneMsg reports one completed simulation session.
type sessionDoneMsg struct{}

// progressModel renders a spinner and a progress bar while simulation
// sessions run in the background. It quits itself once every session has
// reported in.
type progressModel struct {
	spinner  spinner.Model
	progress progress.Model
	done     int
	total    int
}

func newProgressModel(total int) progressModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("#45B7D1"))

	return progressModel{
		spinner:  s,
		progress: progress.New(progress.WithDefaultGradient()),
		total:    total,
	}
}

func (m progressModel) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m progressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case sessionDoneMsg:
		m.done++
		if m.done >= m.total {
			return m, tea.Quit
		}
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m progressModel) View() string {
	if m.done >= m.total {
		return ""
	}
	pct := float64(m.done) / float64(m.total)
	return fmt.Sprintf("\n  %s %s %d/%d sessions\n",
		m.spinner.View(), m.progress.ViewAs(pct), m.done, m.total)
}
