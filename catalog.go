/*
Copyright © 2025 Seednode <seednode@seedno.de>
*/

package main

import (
	"fmt"

	"github.com/Seednode/impostor/games/impostor"
	"github.com/spf13/viper"
	"golang.org/x/text/unicode/norm"
)

// Catalog files list categories in play order. Clues are a list rather
// than a map so words keep their case through viper, which folds map keys.
//
//	categories:
//	  - key: lugares
//	    label: Lugares
//	    icon: "🏖️"
//	    words: [París, Roma]
//	    clues:
//	      - word: París
//	        clue: Romance
type catalogFile struct {
	Categories []catalogCategory `mapstructure:"categories"`
}

type catalogCategory struct {
	Key   string        `mapstructure:"key"`
	Label string        `mapstructure:"label"`
	Icon  string        `mapstructure:"icon"`
	Words []string      `mapstructure:"words"`
	Clues []catalogClue `mapstructure:"clues"`
}

type catalogClue struct {
	Word string `mapstructure:"word"`
	Clue string `mapstructure:"clue"`
}

func loadCatalog(cfg *Config) (*impostor.Catalog, error) {
	if cfg.catalog == "" {
		return impostor.Default(), nil
	}

	v := viper.New()
	v.SetConfigFile(cfg.catalog)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read catalog %s: %w", cfg.catalog, err)
	}

	var file catalogFile
	if err := v.Unmarshal(&file); err != nil {
		return nil, fmt.Errorf("parse catalog %s: %w", cfg.catalog, err)
	}

	c, err := impostor.NewCatalog(file.definitions())
	if err != nil {
		return nil, fmt.Errorf("catalog %s: %w", cfg.catalog, err)
	}

	return c, nil
}

// definitions converts the file layout to catalog definitions. Words and
// clues are NFC-normalized so composed and decomposed accents compare equal.
func (f catalogFile) definitions() []impostor.CategoryDef {
	defs := make([]impostor.CategoryDef, 0, len(f.Categories))

	for _, cat := range f.Categories {
		words := make([]string, 0, len(cat.Words))
		for _, w := range cat.Words {
			words = append(words, norm.NFC.String(w))
		}

		clues := make(map[string]string, len(cat.Clues))
		for _, c := range cat.Clues {
			clues[norm.NFC.String(c.Word)] = norm.NFC.String(c.Clue)
		}

		defs = append(defs, impostor.CategoryDef{
			Key:   impostor.Category(cat.Key),
			Label: cat.Label,
			Icon:  cat.Icon,
			Words: words,
			Clues: clues,
		})
	}

	return defs
}
