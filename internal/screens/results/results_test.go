package results

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/leafiz/internal/catalog"
	"github.com/abhisek/leafiz/internal/round"
	"github.com/abhisek/leafiz/internal/router"
	"github.com/abhisek/leafiz/internal/screen"
)

func testSummary() round.Summary {
	return round.Summary{
		Score:        87,
		CorrectCount: 8,
		WrongCount:   2,
		WrongAnswers: []round.WrongAnswer{
			{
				Item: catalog.Item{
					ID:             "monstera",
					ScientificName: "Monstera deliciosa",
					CommonNames:    []string{"Swiss cheese plant"},
					Mnemonic:       "Monster-sized holes",
				},
				ChosenAnswer: "Epipremnum aureum",
			},
		},
		IsNewHighScore: true,
	}
}

func TestResultsScreen_Title(t *testing.T) {
	s := New(testSummary(), nil)
	if s.Title() != "Results" {
		t.Errorf("Title = %q, want %q", s.Title(), "Results")
	}
}

func TestResultsScreen_ViewShowsScore(t *testing.T) {
	s := New(testSummary(), nil)
	view := s.View(80, 24)

	if !strings.Contains(view, "87 points") {
		t.Error("expected score in view")
	}
	if !strings.Contains(view, "New high score") {
		t.Error("expected high score banner in view")
	}
	if !strings.Contains(view, "Monstera deliciosa") {
		t.Error("expected missed plant in review section")
	}
}

func TestResultsScreen_NoHighScoreBanner(t *testing.T) {
	sum := testSummary()
	sum.IsNewHighScore = false
	s := New(sum, nil)

	if strings.Contains(s.View(80, 24), "New high score") {
		t.Error("unexpected high score banner")
	}
}

func TestResultsScreen_EnterPops(t *testing.T) {
	s := New(testSummary(), nil)
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Error("expected a command after enter")
	}
}

func TestResultsScreen_PlayAgain(t *testing.T) {
	s := New(testSummary(), nil)
	if _, cmd := s.Update(tea.KeyPressMsg{Code: 'r', Text: "r"}); cmd != nil {
		t.Error("expected r to be a no-op without a replay factory")
	}

	called := false
	s = New(testSummary(), func() screen.Screen {
		called = true
		return nil
	})
	_, cmd := s.Update(tea.KeyPressMsg{Code: 'r', Text: "r"})
	if cmd == nil {
		t.Fatal("expected a command after r")
	}
	if _, ok := cmd().(router.ReplaceScreenMsg); !ok {
		t.Error("expected a replace message from play again")
	}
	if !called {
		t.Error("expected the replay factory to run")
	}
}
