package theme

import (
	"image/color"

	"charm.land/lipgloss/v2"
)

// Palette holds the color set for one display mode.
type Palette struct {
	Primary   color.Color
	Secondary color.Color
	Accent    color.Color
	Success   color.Color
	Error     color.Color
	Text      color.Color
	TextDim   color.Color
	Bg        color.Color
	BgCard    color.Color
	Border    color.Color
}

// darkPalette is the default botanical night theme.
var darkPalette = Palette{
	Primary:   lipgloss.Color("#7EB07E"), // Mint
	Secondary: lipgloss.Color("#4A7C4A"), // Leaf Green
	Accent:    lipgloss.Color("#D4A84B"), // Gold
	Success:   lipgloss.Color("#4CAF50"),
	Error:     lipgloss.Color("#E53935"),
	Text:      lipgloss.Color("#F5F2EB"), // Cream
	TextDim:   lipgloss.Color("#8FA68F"),
	Bg:        lipgloss.Color("#0D1F0D"), // Dark Green
	BgCard:    lipgloss.Color("#1A2E1A"), // Forest Green
	Border:    lipgloss.Color("#2D4A2D"), // Sage Green
}

// lightPalette is the daytime parchment theme.
var lightPalette = Palette{
	Primary:   lipgloss.Color("#2D4A2D"), // Sage Green
	Secondary: lipgloss.Color("#4A7C4A"),
	Accent:    lipgloss.Color("#C75D38"), // Terracotta
	Success:   lipgloss.Color("#4CAF50"),
	Error:     lipgloss.Color("#E53935"),
	Text:      lipgloss.Color("#1A2E1A"),
	TextDim:   lipgloss.Color("#5A6B5A"),
	Bg:        lipgloss.Color("#FAF9F6"), // Warm White
	BgCard:    lipgloss.Color("#EBE5D9"), // Parchment
	Border:    lipgloss.Color("#7EB07E"),
}

// Color palette, reassigned by SetDark.
var (
	Primary   = darkPalette.Primary
	Secondary = darkPalette.Secondary
	Accent    = darkPalette.Accent
	Success   = darkPalette.Success
	Error     = darkPalette.Error
	Text      = darkPalette.Text
	TextDim   = darkPalette.TextDim
	Bg        = darkPalette.Bg
	BgCard    = darkPalette.BgCard
	Border    = darkPalette.Border
)

// Typography
var (
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Body     lipgloss.Style
	Hint     lipgloss.Style
)

// Layout
var (
	Header lipgloss.Style
	Footer lipgloss.Style
	Card   lipgloss.Style
)

// States
var (
	Selected   lipgloss.Style
	Unselected lipgloss.Style
	Correct    lipgloss.Style
	Incorrect  lipgloss.Style
	Eliminated lipgloss.Style
)

// Components
var (
	ProgressFilled lipgloss.Style
	ProgressEmpty  lipgloss.Style
	ButtonActive   lipgloss.Style
	ButtonInactive lipgloss.Style
)

func init() {
	applyPalette(darkPalette)
}

// SetDark switches between the dark and light palettes. Call before
// rendering; existing style values pick up the change because they are
// rebuilt here.
func SetDark(dark bool) {
	if dark {
		applyPalette(darkPalette)
	} else {
		applyPalette(lightPalette)
	}
}

func applyPalette(p Palette) {
	Primary = p.Primary
	Secondary = p.Secondary
	Accent = p.Accent
	Success = p.Success
	Error = p.Error
	Text = p.Text
	TextDim = p.TextDim
	Bg = p.Bg
	BgCard = p.BgCard
	Border = p.Border

	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		Align(lipgloss.Center)

	Subtitle = lipgloss.NewStyle().
		Foreground(TextDim).
		Align(lipgloss.Center)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)

	Header = lipgloss.NewStyle().
		Background(BgCard).
		Padding(0, 2)

	Footer = lipgloss.NewStyle().
		Background(BgCard).
		Padding(0, 2)

	Card = lipgloss.NewStyle().
		Background(BgCard).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(1, 2)

	Selected = lipgloss.NewStyle().
		Foreground(Primary).
		Bold(true)

	Unselected = lipgloss.NewStyle().
		Foreground(Text)

	Correct = lipgloss.NewStyle().
		Foreground(Success).
		Bold(true)

	Incorrect = lipgloss.NewStyle().
		Foreground(Error).
		Bold(true)

	Eliminated = lipgloss.NewStyle().
		Foreground(TextDim).
		Strikethrough(true)

	ProgressFilled = lipgloss.NewStyle().
		Background(Secondary)

	ProgressEmpty = lipgloss.NewStyle().
		Background(Border)

	ButtonActive = lipgloss.NewStyle().
		Bold(true).
		Foreground(Bg).
		Background(Primary).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Primary).
		Padding(0, 1)

	ButtonInactive = lipgloss.NewStyle().
		Foreground(Text).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(0, 1)
}
