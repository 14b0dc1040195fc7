// Package progress tracks the player's durable state: per-plant mastery,
// streaks, high score, and settings. State is one JSON blob behind the
// key-value store and every mutation writes through immediately.
package progress

import "time"

// MaxMastery is the ceiling of the per-item mastery ladder. Reaching it
// marks a plant as fully mastered.
const MaxMastery = 3

// DailyStreakHours is the longest gap between plays that keeps the daily
// streak alive.
const DailyStreakHours = 36

// ItemStats is the per-plant slice of the profile.
type ItemStats struct {
	TimesShown   int `json:"timesShown"`
	TimesCorrect int `json:"timesCorrect"`
	MasteryLevel int `json:"masteryLevel"`
}

// Profile is the whole persisted player state. Fields absent from a saved
// blob keep their default values on load, so the schema can grow without
// breaking old saves.
type Profile struct {
	HighScore     int                  `json:"highScore"`
	CurrentStreak int                  `json:"currentStreak"`
	BestStreak    int                  `json:"bestStreak"`
	TotalCorrect  int                  `json:"totalCorrect"`
	TotalAnswered int                  `json:"totalAnswered"`
	GamesPlayed   int                  `json:"gamesPlayed"`
	ItemStats     map[string]ItemStats `json:"itemStats"`
	DailyStreak   int                  `json:"dailyStreak"`
	LastPlayedAt  *time.Time           `json:"lastPlayedAt,omitempty"`
	DarkMode      bool                 `json:"darkMode"`
	SoundEnabled  bool                 `json:"soundEnabled"`
}

func defaultProfile() Profile {
	return Profile{
		ItemStats:    make(map[string]ItemStats),
		DarkMode:     true,
		SoundEnabled: true,
	}
}

// LevelChange reports the mastery movement caused by one answer.
type LevelChange struct {
	// LeveledUp is true only on the transition into full mastery.
	LeveledUp     bool
	PreviousLevel int
	NewLevel      int
}

// Accuracy returns totalCorrect/totalAnswered in [0,1], or 0 before any
// answer.
func (p *Profile) Accuracy() float64 {
	if p.TotalAnswered == 0 {
		return 0
	}
	return float64(p.TotalCorrect) / float64(p.TotalAnswered)
}
