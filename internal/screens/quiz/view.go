package quiz

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/leafiz/internal/round"
	"github.com/abhisek/leafiz/internal/ui/theme"
)

const (
	streakFireAt      = 5
	streakExplosionAt = 10
)

func (s *QuizScreen) View(width, height int) string {
	if s.confirmQuit {
		return renderQuitConfirm(width)
	}
	if s.machine.Phase() == round.RoundComplete {
		return renderRoundDone(width)
	}
	if s.lastResult != nil {
		return s.renderFeedback(width)
	}
	if s.question != nil {
		return s.renderQuestionView(width)
	}
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("\n\n  Picking a plant...")
}

// renderQuestionView renders the active question display.
func (s *QuizScreen) renderQuestionView(width int) string {
	q := s.question

	var b strings.Builder

	// Round info line.
	infoLeft := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render(fmt.Sprintf("  Plant %d/%d", q.Number, q.Total))

	infoRight := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("Score %s",
			lipgloss.NewStyle().Foreground(theme.Accent).Render(fmt.Sprintf("%d", s.machine.Score())),
		))

	infoLine := infoLeft
	rightPad := width - lipgloss.Width(infoLeft) - lipgloss.Width(infoRight) - 4
	if rightPad > 0 {
		infoLine += strings.Repeat(" ", rightPad) + infoRight
	}

	b.WriteString(infoLine)
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(width-4, 0))))
	b.WriteString("\n\n")

	// The cue card: common names and description, never the answer.
	cue := lipgloss.NewStyle().
		Foreground(theme.Text).
		Bold(true).
		Render(strings.Join(q.Item.CommonNames, "  ·  "))
	if q.Item.Description != "" {
		cue += "\n\n" + lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Width(min(width-12, 64)).
			Render(q.Item.Description)
	}
	card := theme.Card.Render(cue)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, card))
	b.WriteString("\n\n")

	question := lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render("Which plant is this?")
	b.WriteString(question)
	b.WriteString("\n\n")

	b.WriteString(s.renderOptions(width))

	if s.machine.HintUsed() {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render(fmt.Sprintf("Hint used (-%d points)", s.machine.Config().HintPenalty)))
	}

	return b.String()
}

// renderOptions renders the four scientific-name choices.
func (s *QuizScreen) renderOptions(width int) string {
	var b strings.Builder
	for i, opt := range s.question.Options {
		prefix := "  "
		if i == s.selected && !opt.Eliminated {
			prefix = "▸ "
		}
		line := fmt.Sprintf("%s%d) %s", prefix, i+1, opt.DisplayText)

		switch {
		case opt.Eliminated:
			b.WriteString(theme.Eliminated.Render(line))
		case i == s.selected:
			b.WriteString(theme.Selected.Render(line))
		default:
			b.WriteString(theme.Unselected.Render(line))
		}
		b.WriteString("\n")
	}

	selectLine := lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("\nSelect (1-4) or use arrows + Enter  ·  H for a hint")
	b.WriteString(selectLine)

	return lipgloss.PlaceHorizontal(width, lipgloss.Center, b.String())
}

// renderFeedback renders the answer feedback overlay.
func (s *QuizScreen) renderFeedback(width int) string {
	res := s.lastResult
	q := s.question

	var b strings.Builder
	b.WriteString("\n\n")

	center := lipgloss.NewStyle().Width(width).Align(lipgloss.Center)

	if res.Correct {
		headline := "Correct!"
		switch {
		case res.SpeedBonus == s.machine.Config().FastBonus && res.SpeedBonus > 0:
			headline = "Lightning! Correct!"
		case res.SpeedBonus > 0:
			headline = "Quick! Correct!"
		}
		b.WriteString(center.Foreground(theme.Success).Bold(true).Render(headline))
		b.WriteString("\n")
		b.WriteString(center.Foreground(theme.TextDim).Render(scoreDeltaText(res)))
	} else {
		b.WriteString(center.Foreground(theme.Error).Bold(true).Render("Not quite"))
		b.WriteString("\n")
		b.WriteString(center.Foreground(theme.TextDim).Render(
			fmt.Sprintf("It was %s", q.Options[res.CorrectIndex].DisplayText)))
		if res.ScoreDelta != 0 {
			b.WriteString("\n")
			b.WriteString(center.Foreground(theme.TextDim).Render(scoreDeltaText(res)))
		}
	}
	b.WriteString("\n\n")

	if res.LeveledUp {
		b.WriteString(center.Foreground(theme.Accent).Bold(true).Render("Plant mastered!"))
		b.WriteString("\n")
		b.WriteString(center.Foreground(theme.Text).Render(
			fmt.Sprintf("%s is now part of your collection", q.Item.ScientificName)))
		b.WriteString("\n\n")
	}

	if icon := streakIcon(res.Streak); icon != "" {
		b.WriteString(center.Foreground(theme.Accent).Render(
			fmt.Sprintf("%s %d in a row!", icon, res.Streak)))
		b.WriteString("\n\n")
	}

	// Mnemonic card, with a generated aid when one arrived in time.
	mnem := q.Item.Mnemonic
	if s.lastAid != nil && s.lastAid.Mnemonic != "" {
		mnem = s.lastAid.Mnemonic
	}
	if mnem != "" {
		card := theme.Card.Render(lipgloss.NewStyle().
			Width(min(width-12, 64)).
			Foreground(theme.Text).
			Render(mnem))
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, card))
		b.WriteString("\n")
	}
	if s.lastAid != nil && s.lastAid.Breakdown != "" {
		b.WriteString(center.Foreground(theme.TextDim).Width(width).Render(s.lastAid.Breakdown))
		b.WriteString("\n")
	}
	if s.lastAid != nil && s.lastAid.FunFact != "" {
		b.WriteString(center.Foreground(theme.TextDim).Italic(true).Width(width).Render(s.lastAid.FunFact))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(center.Foreground(theme.TextDim).Render("Press any key to continue..."))

	return b.String()
}

func scoreDeltaText(res *round.AnswerResult) string {
	if res.ScoreDelta >= 0 {
		return fmt.Sprintf("+%d points", res.ScoreDelta)
	}
	return fmt.Sprintf("%d points", res.ScoreDelta)
}

func streakIcon(streak int) string {
	switch {
	case streak >= streakExplosionAt:
		return "💥"
	case streak >= streakFireAt:
		return "🔥"
	}
	return ""
}

// renderQuitConfirm renders the leave-round confirmation dialog.
func renderQuitConfirm(width int) string {
	center := lipgloss.NewStyle().Width(width).Align(lipgloss.Center)

	var b strings.Builder
	b.WriteString("\n\n\n")
	b.WriteString(center.Foreground(theme.Text).Bold(true).Render("Leave this round?"))
	b.WriteString("\n")
	b.WriteString(center.Foreground(theme.TextDim).Render("Answers so far are already saved."))
	b.WriteString("\n\n")
	b.WriteString(center.Foreground(theme.Success).Render("[Y] Yes, leave"))
	b.WriteString("\n")
	b.WriteString(center.Foreground(theme.Primary).Render("[N] No, keep playing"))
	return b.String()
}

// renderRoundDone renders the post-summary state.
func renderRoundDone(width int) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("\n\n\n  Round complete. Press any key to head home.")
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
