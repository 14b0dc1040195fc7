package progress

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/abhisek/leafiz/internal/catalog"
	"github.com/abhisek/leafiz/internal/store"
)

// Store owns the loaded profile and writes it back after every mutation.
// Persistence is best-effort: a failed write is logged and play continues.
type Store struct {
	kv  store.KV
	cat *catalog.Catalog
	now func() time.Time

	profile Profile
}

// Option customizes a Store.
type Option func(*Store)

// WithClock overrides the time source. Tests use it to pin the daily
// streak calculation.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// Load reads the saved profile, merges it over defaults, reconciles it
// against the catalog, and applies the daily streak rule once. A missing
// or unreadable blob falls back to a fresh default profile.
func Load(kv store.KV, cat *catalog.Catalog, opts ...Option) *Store {
	s := &Store{kv: kv, cat: cat, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}

	s.profile = defaultProfile()
	if raw, ok, err := kv.Get(store.KeyProfile); err == nil && ok {
		// Unmarshal over the defaults: fields absent from the blob keep
		// their default values.
		if err := json.Unmarshal([]byte(raw), &s.profile); err != nil {
			fmt.Fprintf(os.Stderr, "warning: corrupt profile, starting fresh: %v\n", err)
			s.profile = defaultProfile()
		}
	} else if err != nil {
		fmt.Fprintf(os.Stderr, "warning: load profile: %v\n", err)
	}
	if s.profile.ItemStats == nil {
		s.profile.ItemStats = make(map[string]ItemStats)
	}

	// Catalog reconciliation: every catalog item gets a stats entry, so
	// catalog growth never leaves a question without stats.
	for _, id := range cat.IDs() {
		if _, ok := s.profile.ItemStats[id]; !ok {
			s.profile.ItemStats[id] = ItemStats{}
		}
	}

	s.updateDailyStreak()
	return s
}

// Profile returns a copy of the current profile for display.
func (s *Store) Profile() Profile {
	return s.profile
}

// updateDailyStreak applies the daily streak rule and stamps the play
// time. A gap over DailyStreakHours breaks the streak; a new calendar day
// within the window extends it; the same day leaves it alone.
func (s *Store) updateDailyStreak() {
	now := s.now()
	if last := s.profile.LastPlayedAt; last != nil {
		elapsed := now.Sub(*last)
		switch {
		case elapsed > DailyStreakHours*time.Hour:
			s.profile.DailyStreak = 0
		case !sameLocalDay(*last, now):
			s.profile.DailyStreak++
		}
	}
	s.profile.LastPlayedAt = &now
	s.save()
}

func sameLocalDay(a, b time.Time) bool {
	ay, am, ad := a.Local().Date()
	by, bm, bd := b.Local().Date()
	return ay == by && am == bm && ad == bd
}

// RecordAnswer updates mastery and aggregate counters for one answer and
// persists. A correct answer climbs one mastery level; a miss resets the
// item to level zero.
func (s *Store) RecordAnswer(itemID string, correct bool) LevelChange {
	stats := s.profile.ItemStats[itemID]
	previous := stats.MasteryLevel

	stats.TimesShown++
	s.profile.TotalAnswered++

	change := LevelChange{PreviousLevel: previous}
	if correct {
		stats.TimesCorrect++
		newLevel := min(MaxMastery, previous+1)
		change.LeveledUp = newLevel > previous && newLevel == MaxMastery
		stats.MasteryLevel = newLevel

		s.profile.TotalCorrect++
		s.profile.CurrentStreak++
		if s.profile.CurrentStreak > s.profile.BestStreak {
			s.profile.BestStreak = s.profile.CurrentStreak
		}
	} else {
		stats.MasteryLevel = 0
		s.profile.CurrentStreak = 0
	}
	change.NewLevel = stats.MasteryLevel

	s.profile.ItemStats[itemID] = stats
	s.save()
	return change
}

// UpdateHighScore persists score as the new record iff it beats the
// current one, and reports whether it did.
func (s *Store) UpdateHighScore(score int) bool {
	if score <= s.profile.HighScore {
		return false
	}
	s.profile.HighScore = score
	s.save()
	return true
}

// IncrementGamesPlayed bumps the completed-round counter.
func (s *Store) IncrementGamesPlayed() {
	s.profile.GamesPlayed++
	s.save()
}

// MasteryLevel returns the current mastery level for an item.
func (s *Store) MasteryLevel(itemID string) int {
	return s.profile.ItemStats[itemID].MasteryLevel
}

// ItemStatsFor returns the stats entry for an item.
func (s *Store) ItemStatsFor(itemID string) ItemStats {
	return s.profile.ItemStats[itemID]
}

// MasteredCount counts catalog items at full mastery.
func (s *Store) MasteredCount() int {
	n := 0
	for _, id := range s.cat.IDs() {
		if s.profile.ItemStats[id].MasteryLevel >= MaxMastery {
			n++
		}
	}
	return n
}

// ToggleDarkMode flips the theme setting and returns the new value.
func (s *Store) ToggleDarkMode() bool {
	s.profile.DarkMode = !s.profile.DarkMode
	s.save()
	return s.profile.DarkMode
}

// ToggleSound flips the sound setting and returns the new value.
func (s *Store) ToggleSound() bool {
	s.profile.SoundEnabled = !s.profile.SoundEnabled
	s.save()
	return s.profile.SoundEnabled
}

// Reset discards all progress and persists a fresh default profile.
func (s *Store) Reset() {
	s.profile = defaultProfile()
	for _, id := range s.cat.IDs() {
		s.profile.ItemStats[id] = ItemStats{}
	}
	s.save()
}

// save writes the profile through to the store. Failures never interrupt
// gameplay; at worst the latest increment is lost.
func (s *Store) save() {
	raw, err := json.Marshal(s.profile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: marshal profile: %v\n", err)
		return
	}
	if err := s.kv.Set(store.KeyProfile, string(raw)); err != nil {
		fmt.Fprintf(os.Stderr, "warning: save profile: %v\n", err)
	}
}
