/*
Copyright © 2025 Seednode <seednode@seedno.de>
*/

package impostor

import (
	"errors"
	"fmt"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// FallbackClue is returned by ClueFor when a word has no clue in its category.
const FallbackClue = "Misterio"

// Category is a thematic grouping of words in a Catalog.
type Category string

// CategoryDef describes one category when building a Catalog.
type CategoryDef struct {
	Key   Category
	Label string
	Icon  string
	Words []string
	Clues map[string]string
}

// CategoryInfo is the display metadata for a category.
type CategoryInfo struct {
	Key   Category `json:"key"`
	Label string   `json:"label"`
	Icon  string   `json:"icon"`
	Words int      `json:"words"`
}

// Catalog is an immutable word and clue table keyed by category.
// It is safe for concurrent use.
type Catalog struct {
	order []Category
	info  map[Category]CategoryInfo
	words map[Category][]string
	clues map[Category]map[string]string
}

var reference = mustCatalog(referenceCategories)

// Default returns the built-in catalog.
func Default() *Catalog {
	return reference
}

func mustCatalog(defs []CategoryDef) *Catalog {
	c, err := NewCatalog(defs)
	if err != nil {
		panic(err)
	}

	return c
}

// NewCatalog builds a catalog from defs, in declaration order. Every
// category needs a unique non-empty key and at least one word. Word lists
// are kept as given, duplicates included.
func NewCatalog(defs []CategoryDef) (*Catalog, error) {
	if len(defs) == 0 {
		return nil, errors.New("catalog has no categories")
	}

	c := &Catalog{
		order: make([]Category, 0, len(defs)),
		info:  make(map[Category]CategoryInfo, len(defs)),
		words: make(map[Category][]string, len(defs)),
		clues: make(map[Category]map[string]string, len(defs)),
	}

	title := cases.Title(language.Spanish)

	for _, def := range defs {
		if def.Key == "" {
			return nil, errors.New("catalog category with empty key")
		}
		if _, exists := c.words[def.Key]; exists {
			return nil, fmt.Errorf("duplicate catalog category %q", def.Key)
		}
		if len(def.Words) == 0 {
			return nil, fmt.Errorf("catalog category %q has no words", def.Key)
		}

		label := def.Label
		if label == "" {
			label = title.String(string(def.Key))
		}

		clues := make(map[string]string, len(def.Clues))
		for word, clue := range def.Clues {
			clues[word] = clue
		}

		c.order = append(c.order, def.Key)
		c.words[def.Key] = append([]string(nil), def.Words...)
		c.clues[def.Key] = clues
		c.info[def.Key] = CategoryInfo{
			Key:   def.Key,
			Label: label,
			Icon:  def.Icon,
			Words: len(def.Words),
		}
	}

	return c, nil
}

// Keys returns every category key in declaration order.
func (c *Catalog) Keys() []Category {
	return append([]Category(nil), c.order...)
}

// Categories returns display metadata for every category in declaration order.
func (c *Catalog) Categories() []CategoryInfo {
	out := make([]CategoryInfo, 0, len(c.order))
	for _, key := range c.order {
		out = append(out, c.info[key])
	}

	return out
}

// Info returns the display metadata for key.
func (c *Catalog) Info(key Category) (CategoryInfo, bool) {
	info, ok := c.info[key]

	return info, ok
}

func (c *Catalog) Has(key Category) bool {
	_, ok := c.words[key]

	return ok
}

// WordsFor concatenates the word lists of categories in the order given.
// Duplicates are preserved, so a word listed twice is twice as likely to be
// drawn from the result. Unknown categories contribute nothing.
func (c *Catalog) WordsFor(categories []Category) []string {
	n := 0
	for _, key := range categories {
		n += len(c.words[key])
	}

	pool := make([]string, 0, n)
	for _, key := range categories {
		pool = append(pool, c.words[key]...)
	}

	return pool
}

// CategoryFor returns the first category, in declaration order, whose list
// contains word. Words found nowhere map to the first declared category.
func (c *Catalog) CategoryFor(word string) Category {
	for _, key := range c.order {
		for _, w := range c.words[key] {
			if w == word {
				return key
			}
		}
	}

	return c.order[0]
}

// ClueFor returns the clue for word within category, or FallbackClue.
func (c *Catalog) ClueFor(word string, category Category) string {
	if clue, ok := c.clues[category][word]; ok && clue != "" {
		return clue
	}

	return FallbackClue
}

// selection validates a category selection against the catalog, collapsing
// repeats while keeping first-selection order.
func (c *Catalog) selection(categories []Category) ([]Category, error) {
	if len(categories) == 0 {
		return nil, ErrNoCategories
	}

	seen := make(map[Category]bool, len(categories))
	out := make([]Category, 0, len(categories))

	for _, key := range categories {
		if !c.Has(key) {
			return nil, fmt.Errorf("%w: %q", ErrUnknownCategory, key)
		}
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, key)
	}

	return out, nil
}
