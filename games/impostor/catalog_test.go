/*
Copyright © 2025 Seednode <seednode@seedno.de>
*/

package impostor

import (
	"errors"
	"slices"
	"testing"
)

func TestDefaultCatalogCategories(t *testing.T) {
	c := Default()

	want := []Category{Lugares, Comida, Objetos, Animales, Cantantes, Deportes}
	if got := c.Keys(); !slices.Equal(got, want) {
		t.Fatalf("Keys() = %v, want %v", got, want)
	}

	info, ok := c.Info(Lugares)
	if !ok {
		t.Fatal("Info(lugares) not found")
	}
	if info.Label != "Lugares" {
		t.Errorf("label = %q, want %q", info.Label, "Lugares")
	}
	if info.Icon == "" {
		t.Error("expected an icon for lugares")
	}
	if info.Words != len(c.WordsFor([]Category{Lugares})) {
		t.Errorf("word count %d does not match word list", info.Words)
	}

	for _, ci := range c.Categories() {
		if ci.Words == 0 {
			t.Errorf("category %q has no words", ci.Key)
		}
	}
}

func TestWordsForConcatenates(t *testing.T) {
	c := Default()

	for _, pair := range [][2]Category{
		{Lugares, Comida},
		{Animales, Cantantes},
		{Deportes, Lugares},
	} {
		a := c.WordsFor([]Category{pair[0]})
		b := c.WordsFor([]Category{pair[1]})
		got := c.WordsFor([]Category{pair[0], pair[1]})

		if want := append(slices.Clone(a), b...); !slices.Equal(got, want) {
			t.Errorf("WordsFor(%v) is not the concatenation of its parts", pair)
		}
	}
}

func TestWordsForKeepsDuplicates(t *testing.T) {
	c := Default()

	count := func(pool []string, word string) int {
		n := 0
		for _, w := range pool {
			if w == word {
				n++
			}
		}
		return n
	}

	if n := count(c.WordsFor([]Category{Deportes}), "Serena Williams"); n != 2 {
		t.Errorf("Serena Williams appears %d times in deportes, want 2", n)
	}

	if n := count(c.WordsFor([]Category{Objetos, Deportes}), "Tenis"); n != 2 {
		t.Errorf("Tenis appears %d times across objetos+deportes, want 2", n)
	}
}

func TestWordsForUnknownCategory(t *testing.T) {
	if pool := Default().WordsFor([]Category{"nope"}); len(pool) != 0 {
		t.Errorf("expected empty pool, got %d words", len(pool))
	}
}

func TestCategoryFor(t *testing.T) {
	c := Default()

	tests := []struct {
		word string
		want Category
	}{
		{"París", Lugares},
		{"Gallo Pinto", Comida},
		{"Tenis", Objetos},
		{"Messi", Deportes},
		{"Shakira", Cantantes},
		{"", Lugares},
		{"not a word", Lugares},
	}

	for _, tt := range tests {
		if got := c.CategoryFor(tt.word); got != tt.want {
			t.Errorf("CategoryFor(%q) = %q, want %q", tt.word, got, tt.want)
		}
	}
}

func TestClueFor(t *testing.T) {
	c := Default()

	tests := []struct {
		word     string
		category Category
		want     string
	}{
		{"París", Lugares, "Romance"},
		{"Perro", Animales, "Lealtad"},
		{"Tenis", Deportes, "Raqueta"},
		{"Tenis", Objetos, FallbackClue},
		{"París", Comida, FallbackClue},
		{"", Lugares, FallbackClue},
		{"París", "nope", FallbackClue},
	}

	for _, tt := range tests {
		if got := c.ClueFor(tt.word, tt.category); got != tt.want {
			t.Errorf("ClueFor(%q, %q) = %q, want %q", tt.word, tt.category, got, tt.want)
		}
	}
}

func TestNewCatalogRejectsBadDefinitions(t *testing.T) {
	tests := []struct {
		name string
		defs []CategoryDef
	}{
		{"empty", nil},
		{"empty key", []CategoryDef{{Words: []string{"a"}}}},
		{"no words", []CategoryDef{{Key: "a"}}},
		{"duplicate", []CategoryDef{
			{Key: "a", Words: []string{"x"}},
			{Key: "a", Words: []string{"y"}},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewCatalog(tt.defs); err == nil {
				t.Error("expected an error")
			}
		})
	}
}

func TestNewCatalogCopiesInput(t *testing.T) {
	words := []string{"uno", "dos"}
	clues := map[string]string{"uno": "primero"}

	c, err := NewCatalog([]CategoryDef{{Key: "numeros", Label: "Números", Words: words, Clues: clues}})
	if err != nil {
		t.Fatal(err)
	}

	words[0] = "changed"
	clues["uno"] = "changed"

	if got := c.WordsFor([]Category{"numeros"}); got[0] != "uno" {
		t.Errorf("catalog aliases its word list: %v", got)
	}
	if got := c.ClueFor("uno", "numeros"); got != "primero" {
		t.Errorf("catalog aliases its clue map: %q", got)
	}

	info, _ := c.Info("numeros")
	if info.Label != "Números" {
		t.Errorf("explicit label was replaced: %q", info.Label)
	}
}

func TestSelection(t *testing.T) {
	c := Default()

	got, err := c.selection([]Category{Comida, Lugares, Comida})
	if err != nil {
		t.Fatal(err)
	}
	if want := []Category{Comida, Lugares}; !slices.Equal(got, want) {
		t.Errorf("selection = %v, want %v", got, want)
	}

	if _, err := c.selection(nil); !errors.Is(err, ErrNoCategories) {
		t.Errorf("empty selection: got %v, want ErrNoCategories", err)
	}

	if _, err := c.selection([]Category{Comida, "nope"}); !errors.Is(err, ErrUnknownCategory) {
		t.Errorf("unknown category: got %v, want ErrUnknownCategory", err)
	}
}
