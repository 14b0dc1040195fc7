package quiz

import (
	"context"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/leafiz/internal/analytics"
	"github.com/abhisek/leafiz/internal/mnemonic"
	"github.com/abhisek/leafiz/internal/progress"
	"github.com/abhisek/leafiz/internal/round"
	"github.com/abhisek/leafiz/internal/router"
	"github.com/abhisek/leafiz/internal/screen"
	"github.com/abhisek/leafiz/internal/screens/results"
	"github.com/abhisek/leafiz/internal/selection"
	"github.com/abhisek/leafiz/internal/ui/layout"
)

const aidPollInterval = 250 * time.Millisecond

// QuizScreen runs one round of the identification quiz.
type QuizScreen struct {
	machine *round.Machine
	cfg     round.Config
	engine  *selection.Engine
	prog    *progress.Store
	tracker *analytics.Tracker
	aids    *mnemonic.Service

	question    *round.Question
	lastResult  *round.AnswerResult
	lastAid     *mnemonic.Aid
	aidPending  bool
	selected    int
	confirmQuit bool
}

var _ screen.Screen = (*QuizScreen)(nil)
var _ screen.KeyHintProvider = (*QuizScreen)(nil)
var _ screen.EscHandler = (*QuizScreen)(nil)

// New creates a QuizScreen with a fresh round.
func New(cfg round.Config, engine *selection.Engine, prog *progress.Store, tracker *analytics.Tracker, aids *mnemonic.Service) *QuizScreen {
	return &QuizScreen{
		machine: round.New(cfg, engine, prog, tracker),
		cfg:     cfg,
		engine:  engine,
		prog:    prog,
		tracker: tracker,
		aids:    aids,
	}
}

// HandlesEsc marks that esc opens the quit confirmation instead of
// popping the screen.
func (s *QuizScreen) HandlesEsc() {}

func (s *QuizScreen) Init() tea.Cmd {
	return func() tea.Msg { return beginMsg{} }
}

func (s *QuizScreen) Title() string {
	return "Quiz"
}

func (s *QuizScreen) KeyHints() []layout.KeyHint {
	if s.confirmQuit {
		return []layout.KeyHint{
			{Key: "Y", Description: "Leave round"},
			{Key: "N", Description: "Keep playing"},
		}
	}
	if s.lastResult != nil {
		return []layout.KeyHint{
			{Key: "any key", Description: "Continue"},
		}
	}
	if s.question != nil {
		return []layout.KeyHint{
			{Key: "1-4", Description: "Answer"},
			{Key: "H", Description: "Hint"},
			{Key: "Esc", Description: "Leave"},
		}
	}
	return nil
}

func (s *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case beginMsg:
		q, _ := s.machine.NextQuestion(time.Now())
		s.showQuestion(q)
		return s, nil

	case autoAdvanceMsg:
		return s.advance(msg.token)

	case aidPollMsg:
		return s.handleAidPoll()

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	return s, nil
}

func (s *QuizScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	if s.confirmQuit {
		switch key {
		case "y", "Y":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "n", "N", "esc":
			s.confirmQuit = false
		}
		return s, nil
	}

	switch s.machine.Phase() {
	case round.Answered:
		// Manual continue races the auto-advance timer for the same
		// token; whichever lands first wins.
		if s.lastResult != nil {
			return s.advance(s.lastResult.AdvanceToken)
		}
		return s, nil

	case round.RoundComplete:
		return s, func() tea.Msg { return router.PopScreenMsg{} }

	case round.QuestionActive:
		switch key {
		case "esc":
			s.confirmQuit = true
			return s, nil
		case "up", "k":
			s.moveSelection(-1)
			return s, nil
		case "down", "j":
			s.moveSelection(1)
			return s, nil
		case "1", "2", "3", "4":
			return s.submit(int(key[0] - '1'))
		case "enter":
			return s.submit(s.selected)
		case "h", "H":
			if s.machine.UseHint() {
				if s.question.Options[s.selected].Eliminated {
					s.moveSelection(1)
				}
			}
			return s, nil
		}
	}

	return s, nil
}

// submit resolves the answer and arms the auto-advance timer.
func (s *QuizScreen) submit(idx int) (screen.Screen, tea.Cmd) {
	res := s.machine.SubmitAnswer(idx, time.Now())
	if res == nil {
		return s, nil
	}
	s.lastResult = res
	s.selected = idx

	delay := s.machine.Config().AutoAdvanceDelay
	token := res.AdvanceToken
	cmds := []tea.Cmd{
		tea.Tick(delay, func(time.Time) tea.Msg {
			return autoAdvanceMsg{token: token}
		}),
	}

	if !res.Correct && s.aids != nil {
		cmds = append(cmds, s.requestAid())
	}

	return s, tea.Batch(cmds...)
}

// requestAid asks for a generated memory aid for the missed plant.
func (s *QuizScreen) requestAid() tea.Cmd {
	item := s.question.Item
	input := mnemonic.Input{
		PlantID:        item.ID,
		ScientificName: item.ScientificName,
		CommonNames:    item.CommonNames,
	}
	if stats, ok := s.tracker.StatsFor(item.ID); ok && stats.Attempts > 0 {
		input.ErrorRate = float64(stats.Errors) / float64(stats.Attempts)
	}
	if s.lastResult != nil {
		input.ConfusedWith = []string{s.question.Options[s.lastResult.ChosenIndex].DisplayText}
	}

	s.aidPending = true
	s.aids.RequestAid(context.Background(), input)
	return tea.Tick(aidPollInterval, func(t time.Time) tea.Msg {
		return aidPollMsg(t)
	})
}

func (s *QuizScreen) handleAidPoll() (screen.Screen, tea.Cmd) {
	if !s.aidPending {
		return s, nil
	}
	if aid, ok := s.aids.ConsumeAid(); ok {
		s.aidPending = false
		if s.lastResult != nil {
			s.lastAid = aid
		}
		return s, nil
	}
	return s, tea.Tick(aidPollInterval, func(t time.Time) tea.Msg {
		return aidPollMsg(t)
	})
}

// advance moves to the next question or the round summary. A stale or
// already-consumed token is a no-op.
func (s *QuizScreen) advance(token int) (screen.Screen, tea.Cmd) {
	q, summary := s.machine.Advance(token, time.Now())
	if q != nil {
		s.showQuestion(q)
		return s, nil
	}
	if summary != nil {
		sum := *summary
		s.question = nil
		s.lastResult = nil
		s.lastAid = nil
		s.aidPending = false
		replay := func() screen.Screen {
			return New(s.cfg, s.engine, s.prog, s.tracker, s.aids)
		}
		return s, func() tea.Msg {
			return router.ReplaceScreenMsg{Screen: results.New(sum, replay)}
		}
	}
	return s, nil
}

func (s *QuizScreen) showQuestion(q *round.Question) {
	s.question = q
	s.lastResult = nil
	s.lastAid = nil
	s.aidPending = false
	s.selected = 0
}

// moveSelection steps the cursor over non-eliminated options.
func (s *QuizScreen) moveSelection(dir int) {
	if s.question == nil {
		return
	}
	opts := s.question.Options
	for i := s.selected + dir; i >= 0 && i < len(opts); i += dir {
		if !opts[i].Eliminated {
			s.selected = i
			return
		}
	}
}
