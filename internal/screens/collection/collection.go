package collection

import (
	"fmt"
	"sort"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/leafiz/internal/analytics"
	"github.com/abhisek/leafiz/internal/catalog"
	"github.com/abhisek/leafiz/internal/progress"
	"github.com/abhisek/leafiz/internal/router"
	"github.com/abhisek/leafiz/internal/screen"
	"github.com/abhisek/leafiz/internal/ui/components"
	"github.com/abhisek/leafiz/internal/ui/layout"
	"github.com/abhisek/leafiz/internal/ui/theme"
)

// CollectionScreen lists every plant with its mastery progress.
type CollectionScreen struct {
	items    []catalog.Item
	progress *progress.Store
	tracker  *analytics.Tracker
	filter   components.TextInput
	filterOn bool
	cursor   int
	offset   int
}

var _ screen.Screen = (*CollectionScreen)(nil)
var _ screen.KeyHintProvider = (*CollectionScreen)(nil)
var _ screen.EscHandler = (*CollectionScreen)(nil)

// New creates a CollectionScreen sorted by scientific name.
func New(cat *catalog.Catalog, prog *progress.Store, tracker *analytics.Tracker) *CollectionScreen {
	items := cat.Items()
	sort.Slice(items, func(i, j int) bool {
		return items[i].ScientificName < items[j].ScientificName
	})
	return &CollectionScreen{
		items:    items,
		progress: prog,
		tracker:  tracker,
		filter:   components.NewTextInput("Filter plants...", 32),
	}
}

// HandlesEsc marks that esc clears an active filter before leaving the
// screen.
func (c *CollectionScreen) HandlesEsc() {}

func (c *CollectionScreen) Init() tea.Cmd {
	return nil
}

func (c *CollectionScreen) Title() string {
	return "Collection"
}

func (c *CollectionScreen) KeyHints() []layout.KeyHint {
	if c.filterOn {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Apply"},
			{Key: "Esc", Description: "Clear"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Browse"},
		{Key: "/", Description: "Filter"},
		{Key: "Esc", Description: "Back"},
	}
}

func (c *CollectionScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return c, nil
	}

	if c.filterOn {
		switch kmsg.String() {
		case "esc":
			c.filterOn = false
			c.filter.Reset()
		case "enter":
			c.filterOn = false
		default:
			var cmd tea.Cmd
			c.filter, cmd = c.filter.Update(msg)
			c.cursor = 0
			c.offset = 0
			return c, cmd
		}
		c.cursor = 0
		c.offset = 0
		return c, nil
	}

	switch kmsg.String() {
	case "esc":
		if c.filter.Value() != "" {
			c.filter.Reset()
			c.cursor = 0
			c.offset = 0
			return c, nil
		}
		return c, func() tea.Msg { return router.PopScreenMsg{} }
	case "/":
		c.filterOn = true
		return c, c.filter.Init()
	case "up", "k":
		if c.cursor > 0 {
			c.cursor--
		}
	case "down", "j":
		if c.cursor < len(c.visible())-1 {
			c.cursor++
		}
	}
	return c, nil
}

// visible returns the items matching the current filter.
func (c *CollectionScreen) visible() []catalog.Item {
	query := strings.ToLower(strings.TrimSpace(c.filter.Value()))
	if query == "" {
		return c.items
	}
	var out []catalog.Item
	for _, item := range c.items {
		if matches(item, query) {
			out = append(out, item)
		}
	}
	return out
}

func matches(item catalog.Item, query string) bool {
	if strings.Contains(strings.ToLower(item.ScientificName), query) {
		return true
	}
	for _, name := range item.CommonNames {
		if strings.Contains(strings.ToLower(name), query) {
			return true
		}
	}
	return false
}

func (c *CollectionScreen) View(width, height int) string {
	var b strings.Builder

	mastered := c.progress.MasteredCount()
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render(fmt.Sprintf("Your Collection  ·  %d/%d mastered", mastered, len(c.items))))
	b.WriteString("\n\n")

	if c.filterOn || c.filter.Value() != "" {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			"Filter: "+c.filter.View()))
		b.WriteString("\n\n")
	}

	items := c.visible()
	if len(items) == 0 {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Italic(true).
			Render("No plants match."))
		return b.String()
	}
	if c.cursor >= len(items) {
		c.cursor = len(items) - 1
	}

	// Keep the cursor inside the visible window.
	rows := visibleRows(height)
	if c.cursor < c.offset {
		c.offset = c.cursor
	}
	if c.cursor >= c.offset+rows {
		c.offset = c.cursor - rows + 1
	}

	end := c.offset + rows
	if end > len(items) {
		end = len(items)
	}
	for i := c.offset; i < end; i++ {
		b.WriteString(c.renderRow(items[i], i == c.cursor, width))
		b.WriteString("\n")
	}

	if ranking := c.tracker.MostDifficult(3); len(ranking) > 0 && c.filter.Value() == "" {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Text).
			Bold(true).
			Render("Trickiest plants"))
		b.WriteString("\n")
		for _, d := range ranking {
			name := d.ItemID
			if item, ok := itemByID(c.items, d.ItemID); ok {
				name = item.ScientificName
			}
			line := fmt.Sprintf("%s  %d%% missed over %d tries",
				name, int(d.ErrorRate*100), d.Attempts)
			b.WriteString(lipgloss.NewStyle().
				Width(width).
				Align(lipgloss.Center).
				Foreground(theme.TextDim).
				Render(line))
			b.WriteString("\n")
		}
	}

	return b.String()
}

func (c *CollectionScreen) renderRow(item catalog.Item, selected bool, width int) string {
	stats := c.progress.ItemStatsFor(item.ID)

	dots := masteryDots(stats.MasteryLevel)

	prefix := "  "
	nameStyle := theme.Unselected
	if selected {
		prefix = "▸ "
		nameStyle = theme.Selected
	}

	line := fmt.Sprintf("%s%s  %s", prefix, dots, nameStyle.Render(item.ScientificName))
	if stats.MasteryLevel >= progress.MaxMastery {
		line += "  " + theme.Correct.Render("✓")
	}
	line += "  " + lipgloss.NewStyle().Foreground(theme.TextDim).Render(strings.Join(item.CommonNames, ", "))

	if selected && stats.TimesShown > 0 {
		line += "\n      " + theme.Hint.Render(fmt.Sprintf(
			"seen %d times, %d correct", stats.TimesShown, stats.TimesCorrect))
	}

	return lipgloss.PlaceHorizontal(width, lipgloss.Left,
		lipgloss.NewStyle().PaddingLeft(4).Render(line))
}

// masteryDots renders the mastery ladder as filled and empty dots.
func masteryDots(level int) string {
	filled := lipgloss.NewStyle().Foreground(theme.Primary).
		Render(strings.Repeat("●", level))
	empty := lipgloss.NewStyle().Foreground(theme.Border).
		Render(strings.Repeat("○", progress.MaxMastery-level))
	return filled + empty
}

func visibleRows(height int) int {
	rows := height - 10
	if rows < 4 {
		rows = 4
	}
	return rows
}

func itemByID(items []catalog.Item, id string) (catalog.Item, bool) {
	for _, it := range items {
		if it.ID == id {
			return it, true
		}
	}
	return catalog.Item{}, false
}
