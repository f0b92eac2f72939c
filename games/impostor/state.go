/*
Copyright © 2025 Seednode <seednode@seedno.de>
*/

package impostor

import (
	"slices"
)

// Phase is a step of the round lifecycle.
type Phase string

const (
	PhaseSetup   Phase = "setup"
	PhaseNaming  Phase = "naming"
	PhasePlaying Phase = "playing"
	PhaseEnded   Phase = "ended"
)

// Mode selects what the impostor is shown.
type Mode string

const (
	ModeBasic     Mode = "basic"
	ModeWithClues Mode = "withClues"
)

// Valid reports whether m is one of the known modes.
func (m Mode) Valid() bool {
	return m == ModeBasic || m == ModeWithClues
}

// NoImpostor is the impostor index before any round has been dealt.
const NoImpostor = -1

// State is the full game state. Transitions never modify a State in place;
// each returns a replacement, and on error the receiver unchanged.
type State struct {
	Phase              Phase      `json:"phase"`
	PlayerCount        int        `json:"player_count"`
	PlayerNames        []string   `json:"player_names"`
	SelectedCategories []Category `json:"selected_categories"`
	SecretWord         string     `json:"secret_word"`
	ImpostorIndex      int        `json:"impostor_index"`
	CurrentPlayerIndex int        `json:"current_player_index"`
	CardRevealed       bool       `json:"card_revealed"`
	GameMode           Mode       `json:"game_mode"`
	// ImpostorClue is empty unless GameMode is ModeWithClues and a round
	// has been dealt.
	ImpostorClue string `json:"impostor_clue,omitempty"`
}

// InitialState is the setup state: every category of c selected, basic mode.
func InitialState(c *Catalog) State {
	return State{
		Phase:              PhaseSetup,
		PlayerCount:        MinPlayers,
		PlayerNames:        []string{},
		SelectedCategories: c.Keys(),
		ImpostorIndex:      NoImpostor,
		GameMode:           ModeBasic,
	}
}

// Clone returns a copy that shares no slices with s.
func (s State) Clone() State {
	s.PlayerNames = slices.Clone(s.PlayerNames)
	s.SelectedCategories = slices.Clone(s.SelectedCategories)

	return s
}

// Dealer deals rounds from a catalog using a random source.
type Dealer struct {
	Catalog *Catalog
	Rand    RandomSource
}

func (d Dealer) deal(categories []Category, players int, mode Mode) Round {
	return AssignRound(d.Catalog, categories, players, mode, d.Rand)
}

// playing builds the first-turn playing state for a freshly dealt round.
func (d Dealer) playing(names []string, categories []Category, mode Mode) State {
	r := d.deal(categories, len(names), mode)

	return State{
		Phase:              PhasePlaying,
		PlayerCount:        len(names),
		PlayerNames:        slices.Clone(names),
		SelectedCategories: slices.Clone(categories),
		SecretWord:         r.SecretWord,
		ImpostorIndex:      r.ImpostorIndex,
		CurrentPlayerIndex: 0,
		CardRevealed:       false,
		GameMode:           mode,
		ImpostorClue:       r.ImpostorClue,
	}
}

// StartGame moves from setup to naming. The player count is trusted;
// callers bound it with ValidatePlayerCount.
func (s State) StartGame(c *Catalog, playerCount int, categories []Category, mode Mode) (State, error) {
	if err := requirePhase("start game", s.Phase, PhaseSetup); err != nil {
		return s, err
	}

	selected, err := c.selection(categories)
	if err != nil {
		return s, err
	}

	if !mode.Valid() {
		return s, ErrUnknownMode
	}

	return State{
		Phase:              PhaseNaming,
		PlayerCount:        playerCount,
		PlayerNames:        []string{},
		SelectedCategories: selected,
		ImpostorIndex:      NoImpostor,
		CurrentPlayerIndex: 0,
		GameMode:           mode,
	}, nil
}

// SubmitNames deals the first round and moves from naming to playing.
func (s State) SubmitNames(d Dealer, names []string) (State, error) {
	if err := requirePhase("submit names", s.Phase, PhaseNaming); err != nil {
		return s, err
	}

	if len(names) != s.PlayerCount {
		return s, ErrNameCount
	}

	return d.playing(names, s.SelectedCategories, s.GameMode), nil
}

// RevealCard flips the current player's card. Revealing twice is a no-op.
func (s State) RevealCard() (State, error) {
	if err := requirePhase("reveal card", s.Phase, PhasePlaying); err != nil {
		return s, err
	}

	next := s.Clone()
	next.CardRevealed = true

	return next, nil
}

// AdvancePlayer hands the device to the next player, or ends the round
// after the last one.
func (s State) AdvancePlayer() (State, error) {
	if err := requirePhase("advance player", s.Phase, PhasePlaying); err != nil {
		return s, err
	}

	next := s.Clone()
	if s.CurrentPlayerIndex+1 >= s.PlayerCount {
		next.Phase = PhaseEnded

		return next, nil
	}

	next.CurrentPlayerIndex++
	next.CardRevealed = false

	return next, nil
}

// RestartSameLineup deals a new round for the same players, categories and
// mode. Without a roster it falls back to the initial setup state.
func (s State) RestartSameLineup(d Dealer) (State, error) {
	if err := requirePhase("restart", s.Phase, PhaseEnded, PhasePlaying); err != nil {
		return s, err
	}

	if len(s.PlayerNames) == 0 {
		return InitialState(d.Catalog), nil
	}

	return d.playing(s.PlayerNames, s.SelectedCategories, s.GameMode), nil
}

// RestartWithNewPlayers discards everything and returns to setup.
func (s State) RestartWithNewPlayers(c *Catalog) (State, error) {
	if err := requirePhase("restart with new players", s.Phase, PhaseEnded); err != nil {
		return s, err
	}

	return InitialState(c), nil
}

// RestartWithNewCategories deals a new round for the same players from a
// new category selection.
func (s State) RestartWithNewCategories(d Dealer, categories []Category) (State, error) {
	if err := requirePhase("restart with new categories", s.Phase, PhaseEnded); err != nil {
		return s, err
	}

	selected, err := d.Catalog.selection(categories)
	if err != nil {
		return s, err
	}

	return d.playing(s.PlayerNames, selected, s.GameMode), nil
}

// CurrentPlayerName is the name of the player holding the device, or ""
// outside of a round.
func (s State) CurrentPlayerName() string {
	if s.CurrentPlayerIndex < 0 || s.CurrentPlayerIndex >= len(s.PlayerNames) {
		return ""
	}

	return s.PlayerNames[s.CurrentPlayerIndex]
}

// IsImpostorTurn reports whether the player holding the device is the impostor.
func (s State) IsImpostorTurn() bool {
	return s.ImpostorIndex != NoImpostor && s.CurrentPlayerIndex == s.ImpostorIndex
}

// Role is what a card tells its viewer.
type Role string

const (
	RoleCrew     Role = "crew"
	RoleImpostor Role = "impostor"
)

// Card is what the current player sees once their card is flipped.
// Crew members get the secret word; the impostor gets the clue, if any.
type Card struct {
	Player string `json:"player"`
	Index  int    `json:"index"`
	Role   Role   `json:"role"`
	Word   string `json:"word,omitempty"`
	Clue   string `json:"clue,omitempty"`
}

// Card returns the current player's card. ok is false unless a round is in
// play and the card has been revealed.
func (s State) Card() (card Card, ok bool) {
	if s.Phase != PhasePlaying || !s.CardRevealed {
		return Card{}, false
	}

	card = Card{
		Player: s.CurrentPlayerName(),
		Index:  s.CurrentPlayerIndex,
	}

	if s.IsImpostorTurn() {
		card.Role = RoleImpostor
		if s.GameMode == ModeWithClues {
			card.Clue = s.ImpostorClue
		}
	} else {
		card.Role = RoleCrew
		card.Word = s.SecretWord
	}

	return card, true
}
