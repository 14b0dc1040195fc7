// Package round drives one quiz round: question lifecycle, answer
// evaluation, scoring, hints, and the round summary. The machine is
// defensively idempotent: calls that arrive in the wrong phase are
// no-ops, never errors, so double-submits and late timers are harmless.
package round

import (
	"time"

	"github.com/abhisek/leafiz/internal/analytics"
	"github.com/abhisek/leafiz/internal/catalog"
	"github.com/abhisek/leafiz/internal/progress"
	"github.com/abhisek/leafiz/internal/selection"
)

// Phase is the machine's current state.
type Phase int

const (
	AwaitingQuestion Phase = iota
	QuestionActive
	Answered
	RoundComplete
)

// Config holds the tunable round constants.
type Config struct {
	TotalQuestions   int
	PointsPerCorrect int
	FastThreshold    time.Duration
	FastBonus        int
	MediumThreshold  time.Duration
	MediumBonus      int
	HintPenalty      int
	AutoAdvanceDelay time.Duration
}

// DefaultConfig returns the standard round settings.
func DefaultConfig() Config {
	return Config{
		TotalQuestions:   10,
		PointsPerCorrect: 10,
		FastThreshold:    2000 * time.Millisecond,
		FastBonus:        3,
		MediumThreshold:  4000 * time.Millisecond,
		MediumBonus:      1,
		HintPenalty:      5,
		AutoAdvanceDelay: 3500 * time.Millisecond,
	}
}

// Question is the question-ready event handed to the UI.
type Question struct {
	Item    catalog.Item
	Options []selection.Option
	Number  int // 1-based
	Total   int
}

// AnswerResult is the answer-resolved event handed to the UI.
type AnswerResult struct {
	Correct      bool
	ChosenIndex  int
	CorrectIndex int
	ScoreDelta   int
	SpeedBonus   int
	HintUsed     bool
	LeveledUp    bool
	Streak       int
	Score        int
	ResponseTime time.Duration
	// AdvanceToken arms the single advance slot for this question. Both
	// the auto-advance timer and manual continue must present it; the
	// first one through wins and the token dies.
	AdvanceToken int
}

// WrongAnswer is one missed question kept for the round review.
type WrongAnswer struct {
	Item         catalog.Item
	ChosenAnswer string
}

// Summary is the round-complete event.
type Summary struct {
	Score          int
	CorrectCount   int
	WrongCount     int
	WrongAnswers   []WrongAnswer
	IsNewHighScore bool
}

// Machine runs a single round.
type Machine struct {
	cfg     Config
	engine  *selection.Engine
	prog    *progress.Store
	tracker *analytics.Tracker

	phase         Phase
	questionIndex int
	score         int
	correctCount  int
	wrongCount    int
	askedItemIDs  []string
	wrongAnswers  []WrongAnswer

	question      *Question
	questionStart time.Time
	hintUsed      bool

	tokenSeq     int
	advanceToken int
}

// New starts a round in AwaitingQuestion.
func New(cfg Config, engine *selection.Engine, prog *progress.Store, tracker *analytics.Tracker) *Machine {
	return &Machine{cfg: cfg, engine: engine, prog: prog, tracker: tracker}
}

// Phase returns the current phase.
func (m *Machine) Phase() Phase { return m.phase }

// Score returns the accumulated round score. It can go negative: hint
// penalties apply with no floor.
func (m *Machine) Score() int { return m.score }

// Config returns the round settings.
func (m *Machine) Config() Config { return m.cfg }

// Question returns the active question, or nil outside QuestionActive
// and Answered.
func (m *Machine) Question() *Question { return m.question }

// HintUsed reports whether the hint was spent on the current question.
func (m *Machine) HintUsed() bool { return m.hintUsed }

// AskedItemIDs returns a copy of the ids asked so far, in order.
func (m *Machine) AskedItemIDs() []string {
	out := make([]string, len(m.askedItemIDs))
	copy(out, m.askedItemIDs)
	return out
}

// NextQuestion draws the next question, or finishes the round once all
// questions are spent. Exactly one of the results is non-nil; both are
// nil when called outside AwaitingQuestion.
func (m *Machine) NextQuestion(now time.Time) (*Question, *Summary) {
	if m.phase != AwaitingQuestion {
		return nil, nil
	}
	if m.questionIndex >= m.cfg.TotalQuestions {
		return nil, m.endRound(now)
	}

	m.questionIndex++
	item := m.engine.Draw()
	m.question = &Question{
		Item:    item,
		Options: m.engine.Options(item),
		Number:  m.questionIndex,
		Total:   m.cfg.TotalQuestions,
	}
	m.askedItemIDs = append(m.askedItemIDs, item.ID)
	m.questionStart = now
	m.hintUsed = false
	m.phase = QuestionActive
	return m.question, nil
}

// SubmitAnswer resolves the active question with the option at idx.
// Returns nil when not QuestionActive, when idx is out of range, or when
// the option was eliminated by the hint.
func (m *Machine) SubmitAnswer(idx int, now time.Time) *AnswerResult {
	if m.phase != QuestionActive {
		return nil
	}
	if idx < 0 || idx >= len(m.question.Options) {
		return nil
	}
	chosen := m.question.Options[idx]
	if chosen.Eliminated {
		return nil
	}

	responseTime := now.Sub(m.questionStart)
	correct := chosen.IsCorrect

	change := m.prog.RecordAnswer(m.question.Item.ID, correct)
	m.tracker.RecordAnswer(m.question.Item.ID, correct, responseTime)

	speedBonus := 0
	if correct && !m.hintUsed {
		switch {
		case responseTime < m.cfg.FastThreshold:
			speedBonus = m.cfg.FastBonus
		case responseTime < m.cfg.MediumThreshold:
			speedBonus = m.cfg.MediumBonus
		}
	}

	delta := 0
	if correct {
		delta = m.cfg.PointsPerCorrect + speedBonus
		m.correctCount++
	} else {
		m.wrongCount++
		m.wrongAnswers = append(m.wrongAnswers, WrongAnswer{
			Item:         m.question.Item,
			ChosenAnswer: chosen.DisplayText,
		})
	}
	if m.hintUsed {
		delta -= m.cfg.HintPenalty
	}
	m.score += delta

	correctIdx := 0
	for i, o := range m.question.Options {
		if o.IsCorrect {
			correctIdx = i
		}
	}

	m.phase = Answered
	m.tokenSeq++
	m.advanceToken = m.tokenSeq

	return &AnswerResult{
		Correct:      correct,
		ChosenIndex:  idx,
		CorrectIndex: correctIdx,
		ScoreDelta:   delta,
		SpeedBonus:   speedBonus,
		HintUsed:     m.hintUsed,
		LeveledUp:    change.LeveledUp,
		Streak:       m.prog.Profile().CurrentStreak,
		Score:        m.score,
		ResponseTime: responseTime,
		AdvanceToken: m.advanceToken,
	}
}

// UseHint eliminates two wrong options for the active question. Allowed
// once per question; repeat or out-of-phase calls report false.
func (m *Machine) UseHint() bool {
	if m.phase != QuestionActive || m.hintUsed {
		return false
	}
	m.hintUsed = true
	m.engine.EliminateTwo(m.question.Options)
	return true
}

// Advance moves from Answered back to AwaitingQuestion and immediately
// draws the next question (or finishes the round). The token gates the
// transition: only the token issued by the latest SubmitAnswer is live,
// and the first caller consumes it, so the auto-advance timer and manual
// continue cannot both fire.
func (m *Machine) Advance(token int, now time.Time) (*Question, *Summary) {
	if m.phase != Answered || token != m.advanceToken {
		return nil, nil
	}
	m.advanceToken = 0
	m.question = nil
	m.phase = AwaitingQuestion
	return m.NextQuestion(now)
}

func (m *Machine) endRound(now time.Time) *Summary {
	m.phase = RoundComplete
	isNew := m.prog.UpdateHighScore(m.score)
	m.prog.IncrementGamesPlayed()
	m.tracker.RecordRound(now, m.score, m.correctCount, m.wrongCount)
	return &Summary{
		Score:          m.score,
		CorrectCount:   m.correctCount,
		WrongCount:     m.wrongCount,
		WrongAnswers:   m.wrongAnswers,
		IsNewHighScore: isNew,
	}
}
