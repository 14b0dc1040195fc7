// Package catalog holds the plant content the game quizzes on: each item
// pairs a scientific name with its common names, a memory hook, and a short
// visual description used as the identification cue.
package catalog

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// MinItems is the smallest catalog that can produce a four-option question
// (one correct answer plus three distractors).
const MinItems = 4

// ErrTooFewItems indicates the catalog cannot support multiple-choice
// questions. It is fatal at startup.
var ErrTooFewItems = errors.New("catalog needs at least 4 items")

// Item is one identifiable plant.
type Item struct {
	ID             string   `json:"id"`
	ScientificName string   `json:"scientificName"`
	CommonNames    []string `json:"commonNames"`
	Mnemonic       string   `json:"mnemonic"`
	Description    string   `json:"description"`
	ImageURL       string   `json:"imageUrl"`
}

// Catalog is a validated, immutable set of items.
type Catalog struct {
	items []Item
	byID  map[string]Item
}

// New validates items and builds a catalog. IDs must be unique and every
// item needs a scientific name and at least one common name.
func New(items []Item) (*Catalog, error) {
	if len(items) < MinItems {
		return nil, fmt.Errorf("%w: got %d", ErrTooFewItems, len(items))
	}

	byID := make(map[string]Item, len(items))
	for i, it := range items {
		if it.ID == "" {
			return nil, fmt.Errorf("item %d: empty id", i)
		}
		if _, dup := byID[it.ID]; dup {
			return nil, fmt.Errorf("duplicate item id %q", it.ID)
		}
		if it.ScientificName == "" {
			return nil, fmt.Errorf("item %q: empty scientific name", it.ID)
		}
		if len(it.CommonNames) == 0 {
			return nil, fmt.Errorf("item %q: no common names", it.ID)
		}
		byID[it.ID] = it
	}

	return &Catalog{items: items, byID: byID}, nil
}

// Parse validates raw JSON against the catalog schema and builds a catalog.
func Parse(raw []byte) (*Catalog, error) {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	compiled, err := compiledSchema()
	if err != nil {
		return nil, err
	}
	if err := compiled.Validate(parsed); err != nil {
		return nil, fmt.Errorf("catalog schema: %w", err)
	}

	var items []Item
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	return New(items)
}

// Items returns all items in catalog order.
func (c *Catalog) Items() []Item {
	out := make([]Item, len(c.items))
	copy(out, c.items)
	return out
}

// Len returns the number of items.
func (c *Catalog) Len() int { return len(c.items) }

// Get looks up an item by ID.
func (c *Catalog) Get(id string) (Item, bool) {
	it, ok := c.byID[id]
	return it, ok
}

// IDs returns all item IDs in catalog order.
func (c *Catalog) IDs() []string {
	ids := make([]string, len(c.items))
	for i, it := range c.items {
		ids[i] = it.ID
	}
	return ids
}

func compiledSchema() (*jsonschema.Schema, error) {
	doc, err := jsonschema.UnmarshalJSON(newSchemaReader())
	if err != nil {
		return nil, fmt.Errorf("parse catalog schema: %w", err)
	}
	c := jsonschema.NewCompiler()
	if err := c.AddResource("schema://catalog.json", doc); err != nil {
		return nil, fmt.Errorf("add schema resource: %w", err)
	}
	compiled, err := c.Compile("schema://catalog.json")
	if err != nil {
		return nil, fmt.Errorf("compile catalog schema: %w", err)
	}
	return compiled, nil
}
