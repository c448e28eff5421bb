package console

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/lox/blackjack/internal/deck"
)

// Static styles for content elements
var (
	TitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#1B5E20")).
			Bold(true).
			Padding(0, 1)

	DealerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFD700")).
			Bold(true)

	RedCardStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")).
			Bold(true)

	BlackCardStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Bold(true)

	WinStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#96CEB4")).
			Bold(true)

	LossStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")).
			Bold(true)

	PushStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFEAA7"))

	InfoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262"))

	PromptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#45B7D1"))
)

// playerPalette colors each seat differently. Names are assigned a color
// in first-seen order and keep it for the session.
var playerPalette = []lipgloss.Color{
	"#45B7D1",
	"#96CEB4",
	"#FFEAA7",
	"#DDA0DD",
	"#FF9F43",
	"#74B9FF",
}

// PlayerStyle returns the style for the nth seat.
func PlayerStyle(n int) lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(playerPalette[n%len(playerPalette)]).
		Bold(true)
}

// RenderCard colors a single card by suit.
func RenderCard(c deck.Card) string {
	if c.IsRed() {
		return RedCardStyle.Render(c.String())
	}
	return BlackCardStyle.Render(c.String())
}

// RenderCards colors a whole hand.
func RenderCards(cards []deck.Card) string {
	parts := make([]string, len(cards))
	for i, c := range cards {
		parts[i] = RenderCard(c)
	}
	return strings.Join(parts, "  ")
}
