package progress

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/abhisek/leafiz/internal/catalog"
	"github.com/abhisek/leafiz/internal/store"
)

func testCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	items := []catalog.Item{
		{ID: "monstera", ScientificName: "Monstera deliciosa", CommonNames: []string{"Monstera"}},
		{ID: "crassula", ScientificName: "Crassula ovata", CommonNames: []string{"Jade Plant"}},
		{ID: "sansevieria", ScientificName: "Sansevieria", CommonNames: []string{"Snake Plant"}},
		{ID: "bromeliad", ScientificName: "Bromeliad sp.", CommonNames: []string{"Bromeliad"}},
	}
	c, err := catalog.New(items)
	if err != nil {
		t.Fatalf("test catalog: %v", err)
	}
	return c
}

func fixedClock(ts time.Time) func() time.Time {
	return func() time.Time { return ts }
}

func TestLoadFreshProfile(t *testing.T) {
	kv := store.NewMemory()
	s := Load(kv, testCatalog(t), WithClock(fixedClock(time.Date(2025, 3, 1, 10, 0, 0, 0, time.Local))))

	p := s.Profile()
	if p.HighScore != 0 || p.CurrentStreak != 0 || p.GamesPlayed != 0 {
		t.Errorf("fresh profile has nonzero counters: %+v", p)
	}
	if !p.DarkMode || !p.SoundEnabled {
		t.Error("fresh profile should default darkMode and soundEnabled to true")
	}
	if p.DailyStreak != 0 {
		t.Errorf("first play dailyStreak = %d, want 0", p.DailyStreak)
	}
	if p.LastPlayedAt == nil {
		t.Error("load should stamp lastPlayedAt")
	}
	for _, id := range []string{"monstera", "crassula", "sansevieria", "bromeliad"} {
		if _, ok := p.ItemStats[id]; !ok {
			t.Errorf("missing itemStats entry for %q", id)
		}
	}
}

func TestLoadMergesDefaultsOverPartialBlob(t *testing.T) {
	kv := store.NewMemory()
	// Saved by an older version: no settings, no daily streak fields.
	if err := kv.Set(store.KeyProfile, `{"highScore":120,"bestStreak":7}`); err != nil {
		t.Fatal(err)
	}

	s := Load(kv, testCatalog(t), WithClock(fixedClock(time.Now())))
	p := s.Profile()

	if p.HighScore != 120 || p.BestStreak != 7 {
		t.Errorf("saved fields lost: highScore=%d bestStreak=%d", p.HighScore, p.BestStreak)
	}
	if !p.DarkMode || !p.SoundEnabled {
		t.Error("absent settings should fill from defaults (true)")
	}
	if len(p.ItemStats) != 4 {
		t.Errorf("itemStats entries = %d, want 4 after reconciliation", len(p.ItemStats))
	}
}

func TestLoadCorruptBlobFallsBackToDefaults(t *testing.T) {
	kv := store.NewMemory()
	if err := kv.Set(store.KeyProfile, "{not json"); err != nil {
		t.Fatal(err)
	}

	s := Load(kv, testCatalog(t), WithClock(fixedClock(time.Now())))
	if got := s.Profile().HighScore; got != 0 {
		t.Errorf("highScore = %d, want 0 after corrupt load", got)
	}
}

func TestLoadKeepsSavedFalseSettings(t *testing.T) {
	kv := store.NewMemory()
	if err := kv.Set(store.KeyProfile, `{"darkMode":false,"soundEnabled":false}`); err != nil {
		t.Fatal(err)
	}

	p := Load(kv, testCatalog(t), WithClock(fixedClock(time.Now()))).Profile()
	if p.DarkMode || p.SoundEnabled {
		t.Error("explicit false settings must survive the default merge")
	}
}

func TestDailyStreak(t *testing.T) {
	base := time.Date(2025, 3, 1, 10, 0, 0, 0, time.Local)

	tests := []struct {
		name       string
		last       *time.Time
		prevStreak int
		now        time.Time
		want       int
	}{
		{"first play", nil, 0, base, 0},
		{"new day within window", &base, 3, base.Add(23 * time.Hour), 4},
		{"same day", &base, 3, base.Add(30 * time.Minute), 3},
		{"gap over threshold", &base, 3, base.Add(40 * time.Hour), 0},
		{"exactly at threshold new day", &base, 3, base.Add(36 * time.Hour), 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kv := store.NewMemory()
			blob, _ := json.Marshal(Profile{DailyStreak: tt.prevStreak, LastPlayedAt: tt.last})
			if err := kv.Set(store.KeyProfile, string(blob)); err != nil {
				t.Fatal(err)
			}

			p := Load(kv, testCatalog(t), WithClock(fixedClock(tt.now))).Profile()
			if p.DailyStreak != tt.want {
				t.Errorf("dailyStreak = %d, want %d", p.DailyStreak, tt.want)
			}
			if p.LastPlayedAt == nil || !p.LastPlayedAt.Equal(tt.now) {
				t.Errorf("lastPlayedAt = %v, want %v", p.LastPlayedAt, tt.now)
			}
		})
	}
}

func TestRecordAnswerMasteryLadder(t *testing.T) {
	s := Load(store.NewMemory(), testCatalog(t), WithClock(fixedClock(time.Now())))

	// Climb to full mastery: leveledUp fires exactly at the final step.
	for i := 1; i <= MaxMastery; i++ {
		change := s.RecordAnswer("monstera", true)
		if change.NewLevel != i {
			t.Fatalf("step %d: newLevel = %d", i, change.NewLevel)
		}
		wantUp := i == MaxMastery
		if change.LeveledUp != wantUp {
			t.Errorf("step %d: leveledUp = %v, want %v", i, change.LeveledUp, wantUp)
		}
	}

	// Already mastered: stays at cap, no repeat celebration.
	change := s.RecordAnswer("monstera", true)
	if change.NewLevel != MaxMastery || change.LeveledUp {
		t.Errorf("at cap: %+v", change)
	}

	// One miss resets to zero regardless of level.
	change = s.RecordAnswer("monstera", false)
	if change.NewLevel != 0 || change.PreviousLevel != MaxMastery {
		t.Errorf("harsh reset: %+v", change)
	}

	stats := s.ItemStatsFor("monstera")
	if stats.TimesShown != 5 || stats.TimesCorrect != 4 {
		t.Errorf("stats = %+v, want shown 5 correct 4", stats)
	}
	if stats.TimesCorrect > stats.TimesShown {
		t.Error("timesCorrect exceeds timesShown")
	}
}

func TestRecordAnswerStreaks(t *testing.T) {
	s := Load(store.NewMemory(), testCatalog(t), WithClock(fixedClock(time.Now())))

	s.RecordAnswer("monstera", true)
	s.RecordAnswer("crassula", true)
	s.RecordAnswer("sansevieria", true)
	if p := s.Profile(); p.CurrentStreak != 3 || p.BestStreak != 3 {
		t.Errorf("streaks = %d/%d, want 3/3", p.CurrentStreak, p.BestStreak)
	}

	s.RecordAnswer("bromeliad", false)
	if p := s.Profile(); p.CurrentStreak != 0 || p.BestStreak != 3 {
		t.Errorf("after miss: streaks = %d/%d, want 0/3", p.CurrentStreak, p.BestStreak)
	}
}

func TestUpdateHighScoreIdempotent(t *testing.T) {
	s := Load(store.NewMemory(), testCatalog(t), WithClock(fixedClock(time.Now())))

	if !s.UpdateHighScore(50) {
		t.Error("first 50 should be a new record")
	}
	if s.UpdateHighScore(50) {
		t.Error("repeating the same score is not a new record")
	}
	if s.UpdateHighScore(30) {
		t.Error("lower score is not a new record")
	}
	if !s.UpdateHighScore(51) {
		t.Error("51 should beat 50")
	}
	if got := s.Profile().HighScore; got != 51 {
		t.Errorf("highScore = %d, want 51", got)
	}
}

func TestMasteredCount(t *testing.T) {
	s := Load(store.NewMemory(), testCatalog(t), WithClock(fixedClock(time.Now())))

	if got := s.MasteredCount(); got != 0 {
		t.Fatalf("fresh mastered count = %d", got)
	}
	for i := 0; i < MaxMastery; i++ {
		s.RecordAnswer("crassula", true)
	}
	if got := s.MasteredCount(); got != 1 {
		t.Errorf("mastered count = %d, want 1", got)
	}
}

func TestSaveFailureDoesNotBlockPlay(t *testing.T) {
	kv := store.NewMemory()
	s := Load(kv, testCatalog(t), WithClock(fixedClock(time.Now())))

	kv.FailSet = true
	change := s.RecordAnswer("monstera", true)
	if change.NewLevel != 1 {
		t.Errorf("in-memory state must advance even when persistence fails: %+v", change)
	}
	if !s.UpdateHighScore(10) {
		t.Error("high score update must succeed in memory despite save failure")
	}
}

func TestLoadIdempotent(t *testing.T) {
	kv := store.NewMemory()
	now := time.Date(2025, 3, 1, 10, 0, 0, 0, time.Local)

	Load(kv, testCatalog(t), WithClock(fixedClock(now)))
	first, _, _ := kv.Get(store.KeyProfile)

	Load(kv, testCatalog(t), WithClock(fixedClock(now)))
	second, _, _ := kv.Get(store.KeyProfile)

	if first != second {
		t.Errorf("repeated load drifted:\n first=%s\nsecond=%s", first, second)
	}
}

func TestToggles(t *testing.T) {
	s := Load(store.NewMemory(), testCatalog(t), WithClock(fixedClock(time.Now())))

	if s.ToggleDarkMode() {
		t.Error("dark mode should toggle off from default true")
	}
	if !s.ToggleDarkMode() {
		t.Error("dark mode should toggle back on")
	}
	if s.ToggleSound() {
		t.Error("sound should toggle off from default true")
	}
}

func TestReset(t *testing.T) {
	s := Load(store.NewMemory(), testCatalog(t), WithClock(fixedClock(time.Now())))
	s.RecordAnswer("monstera", true)
	s.UpdateHighScore(99)

	s.Reset()
	p := s.Profile()
	if p.HighScore != 0 || p.TotalAnswered != 0 {
		t.Errorf("reset left progress: %+v", p)
	}
	if len(p.ItemStats) != 4 {
		t.Errorf("reset should keep catalog reconciliation, got %d entries", len(p.ItemStats))
	}
}
