package quiz

import (
	"fmt"
	"math/rand/v2"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/leafiz/internal/analytics"
	"github.com/abhisek/leafiz/internal/catalog"
	"github.com/abhisek/leafiz/internal/progress"
	"github.com/abhisek/leafiz/internal/round"
	"github.com/abhisek/leafiz/internal/screen"
	"github.com/abhisek/leafiz/internal/selection"
	"github.com/abhisek/leafiz/internal/store"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func testCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	items := make([]catalog.Item, 5)
	for i := range items {
		items[i] = catalog.Item{
			ID:             fmt.Sprintf("plant-%d", i),
			ScientificName: fmt.Sprintf("Plantus testus %d", i),
			CommonNames:    []string{fmt.Sprintf("test plant %d", i)},
			Mnemonic:       "remember me",
		}
	}
	cat, err := catalog.New(items)
	if err != nil {
		t.Fatalf("catalog.New: %v", err)
	}
	return cat
}

func testQuizScreen(t *testing.T) *QuizScreen {
	t.Helper()
	cat := testCatalog(t)
	kv := store.NewMemory()
	prog := progress.Load(kv, cat)
	tracker := analytics.Load(kv)
	engine := selection.NewEngine(cat, prog, rand.New(rand.NewPCG(3, 9)))
	return New(round.DefaultConfig(), engine, prog, tracker, nil)
}

func begin(t *testing.T, s *QuizScreen) *QuizScreen {
	t.Helper()
	scr, _ := s.Update(beginMsg{})
	return scr.(*QuizScreen)
}

func TestQuizScreen_Title(t *testing.T) {
	s := testQuizScreen(t)
	if s.Title() != "Quiz" {
		t.Errorf("Title = %q, want %q", s.Title(), "Quiz")
	}
}

func TestQuizScreen_BeginShowsQuestion(t *testing.T) {
	s := begin(t, testQuizScreen(t))

	if s.question == nil {
		t.Fatal("expected a question after begin")
	}
	if s.question.Number != 1 {
		t.Errorf("question number = %d, want 1", s.question.Number)
	}
	if len(s.question.Options) != selection.OptionsPerQuestion {
		t.Errorf("options = %d, want %d", len(s.question.Options), selection.OptionsPerQuestion)
	}
	if view := s.View(80, 24); view == "" {
		t.Error("expected non-empty question view")
	}
}

func TestQuizScreen_NumberKeySubmits(t *testing.T) {
	s := begin(t, testQuizScreen(t))

	var scr screen.Screen = s
	scr, _ = scr.Update(keyPress('1'))
	ss := scr.(*QuizScreen)

	if ss.lastResult == nil {
		t.Fatal("expected an answer result after pressing 1")
	}
	if ss.lastResult.ChosenIndex != 0 {
		t.Errorf("chosen index = %d, want 0", ss.lastResult.ChosenIndex)
	}
	if ss.machine.Phase() != round.Answered {
		t.Errorf("phase = %v, want Answered", ss.machine.Phase())
	}
	if view := ss.View(80, 24); view == "" {
		t.Error("expected non-empty feedback view")
	}
}

func TestQuizScreen_AutoAdvanceConsumesToken(t *testing.T) {
	s := begin(t, testQuizScreen(t))

	var scr screen.Screen = s
	scr, _ = scr.Update(keyPress('1'))
	ss := scr.(*QuizScreen)
	token := ss.lastResult.AdvanceToken

	scr, _ = ss.Update(autoAdvanceMsg{token: token})
	ss = scr.(*QuizScreen)

	if ss.question == nil || ss.question.Number != 2 {
		t.Fatal("expected question 2 after auto-advance")
	}
	if ss.lastResult != nil {
		t.Error("expected feedback cleared after advance")
	}

	// The consumed token must not advance again.
	scr, _ = ss.Update(autoAdvanceMsg{token: token})
	ss = scr.(*QuizScreen)
	if ss.question.Number != 2 {
		t.Errorf("question number = %d after stale token, want 2", ss.question.Number)
	}
}

func TestQuizScreen_ManualContinueBeatsTimer(t *testing.T) {
	s := begin(t, testQuizScreen(t))

	var scr screen.Screen = s
	scr, _ = scr.Update(keyPress('1'))
	ss := scr.(*QuizScreen)
	token := ss.lastResult.AdvanceToken

	// Any key continues.
	scr, _ = ss.Update(keyPress(' '))
	ss = scr.(*QuizScreen)
	if ss.question.Number != 2 {
		t.Fatalf("expected question 2 after manual continue, got %d", ss.question.Number)
	}

	// The late timer for the old question is a no-op.
	scr, _ = ss.Update(autoAdvanceMsg{token: token})
	ss = scr.(*QuizScreen)
	if ss.question.Number != 2 {
		t.Errorf("late timer advanced to question %d", ss.question.Number)
	}
}

func TestQuizScreen_HintEliminatesOptions(t *testing.T) {
	s := begin(t, testQuizScreen(t))

	var scr screen.Screen = s
	scr, _ = scr.Update(keyPress('h'))
	ss := scr.(*QuizScreen)

	eliminated := 0
	for _, opt := range ss.question.Options {
		if opt.Eliminated {
			eliminated++
			if opt.IsCorrect {
				t.Error("hint eliminated the correct option")
			}
		}
	}
	if eliminated != 2 {
		t.Errorf("eliminated = %d, want 2", eliminated)
	}
	if ss.question.Options[ss.selected].Eliminated {
		t.Error("cursor left on an eliminated option")
	}
}

func TestQuizScreen_EliminatedNumberKeyIgnored(t *testing.T) {
	s := begin(t, testQuizScreen(t))

	var scr screen.Screen = s
	scr, _ = scr.Update(keyPress('h'))
	ss := scr.(*QuizScreen)

	var deadIdx int
	for i, opt := range ss.question.Options {
		if opt.Eliminated {
			deadIdx = i
			break
		}
	}

	scr, _ = ss.Update(keyPress(rune('1' + deadIdx)))
	ss = scr.(*QuizScreen)
	if ss.lastResult != nil {
		t.Error("eliminated option accepted as answer")
	}
}

func TestQuizScreen_QuitConfirm(t *testing.T) {
	s := begin(t, testQuizScreen(t))

	var scr screen.Screen = s
	scr, _ = scr.Update(specialKey(tea.KeyEscape))
	ss := scr.(*QuizScreen)
	if !ss.confirmQuit {
		t.Fatal("expected quit confirmation after esc")
	}
	if view := ss.View(80, 24); view == "" {
		t.Error("expected non-empty quit confirm view")
	}

	scr, _ = ss.Update(keyPress('n'))
	ss = scr.(*QuizScreen)
	if ss.confirmQuit {
		t.Error("expected quit confirmation dismissed by n")
	}

	scr, _ = ss.Update(specialKey(tea.KeyEscape))
	ss = scr.(*QuizScreen)
	_, cmd := ss.Update(keyPress('y'))
	if cmd == nil {
		t.Error("expected a command after confirming quit")
	}
}

func TestQuizScreen_FullRoundReachesSummary(t *testing.T) {
	s := begin(t, testQuizScreen(t))

	var scr screen.Screen = s
	var ss = s
	for i := 0; i < round.DefaultConfig().TotalQuestions; i++ {
		scr, _ = ss.Update(keyPress('1'))
		ss = scr.(*QuizScreen)
		if ss.lastResult == nil {
			t.Fatalf("question %d: no answer result", i+1)
		}
		scr, _ = ss.Update(autoAdvanceMsg{token: ss.lastResult.AdvanceToken})
		ss = scr.(*QuizScreen)
	}

	if ss.machine.Phase() != round.RoundComplete {
		t.Errorf("phase = %v after 10 questions, want RoundComplete", ss.machine.Phase())
	}
	if ss.question != nil {
		t.Error("expected question cleared at round end")
	}
}

func TestQuizScreen_KeyHints(t *testing.T) {
	s := begin(t, testQuizScreen(t))
	if len(s.KeyHints()) == 0 {
		t.Error("expected non-empty key hints during a question")
	}
}
