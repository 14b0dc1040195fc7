package results

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/leafiz/internal/round"
	"github.com/abhisek/leafiz/internal/router"
	"github.com/abhisek/leafiz/internal/screen"
	"github.com/abhisek/leafiz/internal/ui/components"
	"github.com/abhisek/leafiz/internal/ui/layout"
	"github.com/abhisek/leafiz/internal/ui/theme"
)

// ResultsScreen shows the round summary.
type ResultsScreen struct {
	summary round.Summary
	replay  func() screen.Screen
}

var _ screen.Screen = (*ResultsScreen)(nil)
var _ screen.KeyHintProvider = (*ResultsScreen)(nil)

// New creates a ResultsScreen for a finished round. replay builds a
// fresh quiz screen for the play-again key; nil disables it.
func New(summary round.Summary, replay func() screen.Screen) *ResultsScreen {
	return &ResultsScreen{summary: summary, replay: replay}
}

func (r *ResultsScreen) Init() tea.Cmd {
	return nil
}

func (r *ResultsScreen) Title() string {
	return "Results"
}

func (r *ResultsScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{
		{Key: "Enter", Description: "Home"},
	}
	if r.replay != nil {
		hints = append(hints, layout.KeyHint{Key: "R", Description: "Play again"})
	}
	return hints
}

func (r *ResultsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "enter", "esc", "q":
			return r, func() tea.Msg { return router.PopScreenMsg{} }
		case "r", "R":
			if r.replay != nil {
				return r, func() tea.Msg {
					return router.ReplaceScreenMsg{Screen: r.replay()}
				}
			}
		}
	}
	return r, nil
}

func (r *ResultsScreen) View(width, height int) string {
	sum := r.summary
	center := lipgloss.NewStyle().Width(width).Align(lipgloss.Center)

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(center.Foreground(theme.Primary).Bold(true).Render("Round Complete"))
	b.WriteString("\n\n")

	score := fmt.Sprintf("%d points", sum.Score)
	b.WriteString(center.Foreground(theme.Accent).Bold(true).Render(score))
	if sum.IsNewHighScore {
		b.WriteString("\n")
		b.WriteString(center.Foreground(theme.Accent).Render("♛ New high score!"))
	}
	b.WriteString("\n\n")

	total := sum.CorrectCount + sum.WrongCount
	var pct float64
	if total > 0 {
		pct = float64(sum.CorrectCount) / float64(total)
	}
	bar := components.NewProgressBar("", pct, true, min(width-16, 48))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, bar.View()))
	b.WriteString("\n")
	b.WriteString(center.Foreground(theme.TextDim).Render(
		fmt.Sprintf("%d correct  ·  %d missed", sum.CorrectCount, sum.WrongCount)))
	b.WriteString("\n\n")

	if len(sum.WrongAnswers) > 0 {
		b.WriteString(center.Foreground(theme.Text).Bold(true).Render("Worth another look"))
		b.WriteString("\n\n")
		for _, w := range sum.WrongAnswers {
			line := fmt.Sprintf("%s  %s",
				theme.Incorrect.Render("✗"),
				theme.Body.Render(w.Item.ScientificName))
			if w.ChosenAnswer != "" {
				line += lipgloss.NewStyle().Foreground(theme.TextDim).
					Render(fmt.Sprintf("  (you said %s)", w.ChosenAnswer))
			}
			entry := line
			if w.Item.Mnemonic != "" {
				entry += "\n   " + theme.Hint.Render(w.Item.Mnemonic)
			}
			b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
				lipgloss.NewStyle().Width(min(width-12, 64)).Render(entry)))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	footer := "Press Enter to head home"
	if r.replay != nil {
		footer += "  ·  R to play again"
	}
	b.WriteString(center.Foreground(theme.TextDim).Render(footer))

	return b.String()
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
