package home

import (
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/leafiz/internal/analytics"
	"github.com/abhisek/leafiz/internal/catalog"
	"github.com/abhisek/leafiz/internal/mnemonic"
	"github.com/abhisek/leafiz/internal/progress"
	"github.com/abhisek/leafiz/internal/round"
	"github.com/abhisek/leafiz/internal/router"
	"github.com/abhisek/leafiz/internal/screen"
	"github.com/abhisek/leafiz/internal/screens/collection"
	"github.com/abhisek/leafiz/internal/screens/history"
	"github.com/abhisek/leafiz/internal/screens/quiz"
	"github.com/abhisek/leafiz/internal/selection"
	"github.com/abhisek/leafiz/internal/ui/components"
	"github.com/abhisek/leafiz/internal/ui/theme"
)

// HomeScreen is the main home screen of the application.
type HomeScreen struct {
	menu       components.Menu
	menuLabels []string
	progress   *progress.Store
	catalog    *catalog.Catalog
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a new HomeScreen.
func New(cat *catalog.Catalog, prog *progress.Store, tracker *analytics.Tracker, engine *selection.Engine, roundCfg round.Config, aids *mnemonic.Service) *HomeScreen {
	menuLabels := []string{"START ROUND", "COLLECTION", "HISTORY", "TOGGLE THEME", "TOGGLE SOUND", "EXIT"}

	h := &HomeScreen{
		menuLabels: menuLabels,
		progress:   prog,
		catalog:    cat,
	}

	items := []components.MenuItem{
		{Label: menuLabels[0], Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{
					Screen: quiz.New(roundCfg, engine, prog, tracker, aids),
				}
			}
		}},
		{Label: menuLabels[1], Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: collection.New(cat, prog, tracker)}
			}
		}},
		{Label: menuLabels[2], Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: history.New(tracker)}
			}
		}},
		{Label: menuLabels[3], Action: func() tea.Cmd {
			theme.SetDark(prog.ToggleDarkMode())
			return nil
		}},
		{Label: menuLabels[4], Action: func() tea.Cmd {
			prog.ToggleSound()
			return nil
		}},
		{Label: menuLabels[5], Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	h.menu = components.NewMenu(items)
	return h
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	// height is the content area; estimate full terminal height
	// by adding back header (3) + footer (3) + frame gaps
	termHeight := height + 8
	compact := termHeight < 30 || width < 100

	// All sections share a uniform content width so they line up.
	cw := contentWidth(width)

	profile := h.progress.Profile()
	mastered := h.progress.MasteredCount()

	var sections []string

	sections = append(sections, renderTitle(cw, compact))

	if !compact {
		sections = append(sections, renderPlantBox(plantVariant(mastered, h.catalog.Len()), cw))
	}

	sections = append(sections, renderStatsBar(
		profile.HighScore, mastered, h.catalog.Len(), profile.DailyStreak, cw, compact))

	if compact {
		sections = append(sections, renderMenuCompact(h.menuLabels, h.menu.Selected, cw))
	} else {
		sections = append(sections, renderMenu(h.menuLabels, h.menu.Selected, cw))
	}

	content := strings.Join(sections, "\n\n")

	return renderGreenhouseFrame(content, width, height)
}

func (h *HomeScreen) Title() string {
	return "Home"
}

// plantVariant picks the home screen plant art from collection progress.
func plantVariant(mastered, total int) PlantVariant {
	switch {
	case total > 0 && mastered >= total:
		return PlantBlooming
	case mastered > 0:
		return PlantGrowing
	default:
		return PlantSprout
	}
}
