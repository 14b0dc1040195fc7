package mnemonic

// Aid is a generated memory aid for one plant.
type Aid struct {
	PlantID   string
	Mnemonic  string
	Breakdown string
	FunFact   string
}

// Input describes the plant and the player's trouble with it.
type Input struct {
	PlantID        string
	ScientificName string
	CommonNames    []string
	ErrorRate      float64
	// ConfusedWith lists scientific names the player picked instead.
	ConfusedWith []string
}

// Config holds generation settings.
type Config struct {
	MaxTokens   int
	Temperature float64
}

// DefaultConfig returns sensible defaults for aid generation.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   384,
		Temperature: 0.7,
	}
}
