// Package analytics tracks which plants the player finds hard. It keeps
// attempt, error, and timing counts per plant plus a short round history,
// persisted separately from the player profile so either blob can be lost
// or evolve without touching the other.
package analytics

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/leafiz/internal/store"
)

// maxHistory caps the retained round history.
const maxHistory = 50

// ItemStats accumulates answer outcomes for one plant.
type ItemStats struct {
	Attempts            int   `json:"attempts"`
	Errors              int   `json:"errors"`
	TotalResponseTimeMs int64 `json:"totalTime"`
}

// RoundRecord is one completed round in the history.
type RoundRecord struct {
	ID       string    `json:"id"`
	PlayedAt time.Time `json:"playedAt"`
	Score    int       `json:"score"`
	Correct  int       `json:"correct"`
	Wrong    int       `json:"wrong"`
}

// Difficulty is one entry of the difficulty ranking.
type Difficulty struct {
	ItemID    string
	ErrorRate float64
	AvgTimeMs float64
	Attempts  int
}

type data struct {
	ItemDifficulty map[string]ItemStats `json:"itemDifficulty"`
	RoundHistory   []RoundRecord        `json:"roundHistory"`
	// order remembers first-attempt order so ranking ties stay stable.
	Order []string `json:"order"`
}

// Tracker loads, mutates, and writes back the analytics blob.
type Tracker struct {
	kv   store.KV
	data data
}

// Load reads the analytics blob, falling back to an empty tracker on any
// failure.
func Load(kv store.KV) *Tracker {
	t := &Tracker{kv: kv}
	if raw, ok, err := kv.Get(store.KeyAnalytics); err == nil && ok {
		if err := json.Unmarshal([]byte(raw), &t.data); err != nil {
			t.data = data{}
		}
	}
	if t.data.ItemDifficulty == nil {
		t.data.ItemDifficulty = make(map[string]ItemStats)
	}
	return t
}

// RecordAnswer accumulates one answer outcome for an item.
func (t *Tracker) RecordAnswer(itemID string, correct bool, responseTime time.Duration) {
	stats, seen := t.data.ItemDifficulty[itemID]
	if !seen {
		t.data.Order = append(t.data.Order, itemID)
	}
	stats.Attempts++
	stats.TotalResponseTimeMs += responseTime.Milliseconds()
	if !correct {
		stats.Errors++
	}
	t.data.ItemDifficulty[itemID] = stats
	t.save()
}

// RecordRound appends a completed round to the history.
func (t *Tracker) RecordRound(playedAt time.Time, score, correct, wrong int) RoundRecord {
	rec := RoundRecord{
		ID:       uuid.NewString(),
		PlayedAt: playedAt,
		Score:    score,
		Correct:  correct,
		Wrong:    wrong,
	}
	t.data.RoundHistory = append(t.data.RoundHistory, rec)
	if n := len(t.data.RoundHistory); n > maxHistory {
		t.data.RoundHistory = t.data.RoundHistory[n-maxHistory:]
	}
	t.save()
	return rec
}

// History returns the retained round records, oldest first. The slice is
// a copy so callers can reorder it freely.
func (t *Tracker) History() []RoundRecord {
	out := make([]RoundRecord, len(t.data.RoundHistory))
	copy(out, t.data.RoundHistory)
	return out
}

// StatsFor returns accumulated stats for an item.
func (t *Tracker) StatsFor(itemID string) (ItemStats, bool) {
	s, ok := t.data.ItemDifficulty[itemID]
	return s, ok
}

// Ranking returns all tracked items sorted by error rate, hardest first.
// Ties keep first-attempt order.
func (t *Tracker) Ranking() []Difficulty {
	out := make([]Difficulty, 0, len(t.data.ItemDifficulty))
	for _, id := range t.data.Order {
		stats, ok := t.data.ItemDifficulty[id]
		if !ok || stats.Attempts == 0 {
			continue
		}
		out = append(out, Difficulty{
			ItemID:    id,
			ErrorRate: float64(stats.Errors) / float64(stats.Attempts),
			AvgTimeMs: float64(stats.TotalResponseTimeMs) / float64(stats.Attempts),
			Attempts:  stats.Attempts,
		})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].ErrorRate > out[j].ErrorRate
	})
	return out
}

// MostDifficult returns the top n of the ranking.
func (t *Tracker) MostDifficult(n int) []Difficulty {
	ranking := t.Ranking()
	if n > len(ranking) {
		n = len(ranking)
	}
	return ranking[:n]
}

// Reset discards all analytics and persists the empty state.
func (t *Tracker) Reset() {
	t.data = data{ItemDifficulty: make(map[string]ItemStats)}
	t.save()
}

func (t *Tracker) save() {
	raw, err := json.Marshal(t.data)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: marshal analytics: %v\n", err)
		return
	}
	if err := t.kv.Set(store.KeyAnalytics, string(raw)); err != nil {
		fmt.Fprintf(os.Stderr, "warning: save analytics: %v\n", err)
	}
}
