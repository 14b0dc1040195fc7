package history

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/leafiz/internal/analytics"
	"github.com/abhisek/leafiz/internal/router"
	"github.com/abhisek/leafiz/internal/screen"
	"github.com/abhisek/leafiz/internal/ui/layout"
	"github.com/abhisek/leafiz/internal/ui/theme"
)

// HistoryScreen displays past rounds, most recent first.
type HistoryScreen struct {
	rounds   []analytics.RoundRecord
	selected int
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)

// New creates a new HistoryScreen.
func New(tracker *analytics.Tracker) *HistoryScreen {
	rounds := tracker.History()
	// Newest first.
	for i, j := 0, len(rounds)-1; i < j; i, j = i+1, j-1 {
		rounds[i], rounds[j] = rounds[j], rounds[i]
	}
	return &HistoryScreen{rounds: rounds}
}

func (s *HistoryScreen) Init() tea.Cmd {
	return nil
}

func (s *HistoryScreen) Title() string {
	return "History"
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	switch kmsg.String() {
	case "esc":
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	case "up", "k":
		if s.selected > 0 {
			s.selected--
		}
	case "down", "j":
		if s.selected < len(s.rounds)-1 {
			s.selected++
		}
	}
	return s, nil
}

func (s *HistoryScreen) View(width, height int) string {
	if len(s.rounds) == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  No rounds yet. Go identify some plants!")
	}

	var b strings.Builder
	b.WriteString("\n")

	for i, r := range s.rounds {
		dateStr := r.PlayedAt.Format("Jan 02, 2006 15:04")

		total := r.Correct + r.Wrong
		var accuracy float64
		if total > 0 {
			accuracy = float64(r.Correct) / float64(total) * 100
		}

		prefix := "  "
		if i == s.selected {
			prefix = "▸ "
		}

		line := fmt.Sprintf("%s%s  %4d pts  %d/%d correct  %.0f%%",
			prefix, dateStr, r.Score, r.Correct, total, accuracy)

		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.selected {
			style = style.Foreground(theme.Primary).Bold(true)
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			style.Render(line)))
		b.WriteString("\n")
	}

	return b.String()
}
