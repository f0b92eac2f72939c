/*
Copyright © 2025 Seednode <seednode@seedno.de>
*/

package impostor

// RandomSource is the source of uniform choices used when dealing a round.
// *math/rand/v2.Rand satisfies it.
type RandomSource interface {
	// IntN returns a uniform int in [0, n). It may panic if n <= 0.
	IntN(n int) int
}

// Round is the secret data for one round.
type Round struct {
	SecretWord    string
	ImpostorIndex int
	// ImpostorClue is empty unless the round was dealt in ModeWithClues.
	ImpostorClue string
}

// AssignRound draws a secret word uniformly from the concatenated word lists
// of categories, then an impostor seat in [0, players). In ModeWithClues the
// impostor also gets the clue of the word's first containing category.
//
// An empty word pool or a non-positive player count is a programming error
// and panics.
func AssignRound(c *Catalog, categories []Category, players int, mode Mode, rng RandomSource) Round {
	pool := c.WordsFor(categories)
	if len(pool) == 0 {
		panic("impostor: no words available for selected categories")
	}
	if players < 1 {
		panic("impostor: round needs at least one player")
	}

	r := Round{
		SecretWord:    pool[rng.IntN(len(pool))],
		ImpostorIndex: rng.IntN(players),
	}

	if mode == ModeWithClues {
		r.ImpostorClue = c.ClueFor(r.SecretWord, c.CategoryFor(r.SecretWord))
	}

	return r
}
