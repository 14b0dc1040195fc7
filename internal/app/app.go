package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/leafiz/internal/analytics"
	"github.com/abhisek/leafiz/internal/catalog"
	"github.com/abhisek/leafiz/internal/mnemonic"
	"github.com/abhisek/leafiz/internal/progress"
	"github.com/abhisek/leafiz/internal/round"
	"github.com/abhisek/leafiz/internal/router"
	"github.com/abhisek/leafiz/internal/screen"
	"github.com/abhisek/leafiz/internal/screens/home"
	"github.com/abhisek/leafiz/internal/selection"
	"github.com/abhisek/leafiz/internal/ui/layout"
	"github.com/abhisek/leafiz/internal/ui/theme"
)

// Options carries the wired services the UI runs on.
type Options struct {
	Catalog     *catalog.Catalog
	Progress    *progress.Store
	Tracker     *analytics.Tracker
	Engine      *selection.Engine
	RoundConfig round.Config
	Aids        *mnemonic.Service
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router   *router.Router
	progress *progress.Store
	width    int
	height   int
}

// newAppModel creates a new AppModel with the home screen.
func newAppModel(opts Options) AppModel {
	theme.SetDark(opts.Progress.Profile().DarkMode)
	homeScreen := home.New(opts.Catalog, opts.Progress, opts.Tracker, opts.Engine, opts.RoundConfig, opts.Aids)
	return AppModel{
		router:   router.New(homeScreen),
		progress: opts.Progress,
	}
}

func (m AppModel) Init() tea.Cmd {
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.router.Depth() > 1 {
				// Screens that need to intercept esc (an active quiz)
				// handle it themselves before the router pops.
				active := m.router.Active()
				if _, ok := active.(screen.EscHandler); !ok {
					return m, func() tea.Msg { return router.PopScreenMsg{} }
				}
			}
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	profile := m.progress.Profile()
	header := layout.RenderHeader(title, profile.HighScore, profile.DailyStreak, m.width)

	var footerHints []layout.KeyHint
	if hp, ok := active.(screen.KeyHintProvider); ok && hp.KeyHints() != nil {
		footerHints = hp.KeyHints()
	} else if m.router.Depth() > 1 {
		footerHints = []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	} else {
		footerHints = []layout.KeyHint{
			{Key: "↑↓", Description: "Navigate"},
			{Key: "Enter", Description: "Select"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}

	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
