// Package selection picks which plant to ask about next and builds the
// multiple-choice answer sets. Plants the player knows least appear most:
// each item enters a multiset pool with weight (MaxMastery+1)-level and
// questions draw uniformly from that pool, with replacement across a
// round. A fully mastered plant keeps weight 1 so it never disappears.
package selection

import (
	"math/rand/v2"

	"github.com/abhisek/leafiz/internal/catalog"
	"github.com/abhisek/leafiz/internal/progress"
)

// OptionsPerQuestion is the answer-set size: one correct plus three
// distractors.
const OptionsPerQuestion = 4

// MasteryReader is the slice of the progress store the engine needs.
type MasteryReader interface {
	MasteryLevel(itemID string) int
}

// Option is one displayed answer choice.
type Option struct {
	DisplayText string
	IsCorrect   bool
	Item        catalog.Item
	Eliminated  bool
}

// Engine draws questions from the catalog using the weighted pool.
type Engine struct {
	cat     *catalog.Catalog
	mastery MasteryReader
	rng     *rand.Rand
}

// NewEngine builds an engine. Pass a seeded rng for deterministic tests;
// nil falls back to the shared global source.
func NewEngine(cat *catalog.Catalog, mastery MasteryReader, rng *rand.Rand) *Engine {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &Engine{cat: cat, mastery: mastery, rng: rng}
}

// WeightedPool expands the catalog into the selection multiset. An item
// at level L occurs (MaxMastery+1)-L times.
func (e *Engine) WeightedPool() []catalog.Item {
	var pool []catalog.Item
	for _, it := range e.cat.Items() {
		weight := (progress.MaxMastery + 1) - e.mastery.MasteryLevel(it.ID)
		for i := 0; i < weight; i++ {
			pool = append(pool, it)
		}
	}
	return pool
}

// Draw picks the next question's plant uniformly from the weighted pool.
func (e *Engine) Draw() catalog.Item {
	pool := e.WeightedPool()
	return pool[e.rng.IntN(len(pool))]
}

// Options builds the four shuffled answer choices for item: the item's
// own scientific name plus three distractors drawn from the rest of the
// catalog.
func (e *Engine) Options(item catalog.Item) []Option {
	others := make([]catalog.Item, 0, e.cat.Len()-1)
	for _, it := range e.cat.Items() {
		if it.ID != item.ID {
			others = append(others, it)
		}
	}
	e.rng.Shuffle(len(others), func(i, j int) {
		others[i], others[j] = others[j], others[i]
	})

	opts := make([]Option, 0, OptionsPerQuestion)
	opts = append(opts, Option{DisplayText: item.ScientificName, IsCorrect: true, Item: item})
	for _, it := range others[:OptionsPerQuestion-1] {
		opts = append(opts, Option{DisplayText: it.ScientificName, Item: it})
	}
	// Second shuffle puts the correct answer in a uniformly random slot.
	e.rng.Shuffle(len(opts), func(i, j int) {
		opts[i], opts[j] = opts[j], opts[i]
	})
	return opts
}

// EliminateTwo marks two of the three wrong options as eliminated,
// chosen uniformly. Options already resolved keep their flags.
func (e *Engine) EliminateTwo(opts []Option) {
	wrong := make([]int, 0, OptionsPerQuestion-1)
	for i, o := range opts {
		if !o.IsCorrect {
			wrong = append(wrong, i)
		}
	}
	e.rng.Shuffle(len(wrong), func(i, j int) {
		wrong[i], wrong[j] = wrong[j], wrong[i]
	})
	for _, idx := range wrong[:2] {
		opts[idx].Eliminated = true
	}
}
