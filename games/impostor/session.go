/*
Copyright © 2025 Seednode <seednode@seedno.de>
*/

// Package impostor implements the round lifecycle of a pass-the-device
// party game: every player but one sees a shared secret word, the impostor
// sees nothing or a vague clue, and the group works out who is bluffing.
//
// State transitions are pure methods on State. Session owns one State and
// serializes transitions for callers that share it between goroutines.
package impostor

import (
	"sync"
)

// Session owns the authoritative State of one game. It is safe for
// concurrent use; each transition reads, computes and publishes the next
// state under a single lock.
type Session struct {
	mu     sync.Mutex
	dealer Dealer
	state  State
}

// NewSession returns a session in the initial setup state. rng is used for
// every round dealt by the session and is only touched under the session lock.
func NewSession(c *Catalog, rng RandomSource) *Session {
	return &Session{
		dealer: Dealer{Catalog: c, Rand: rng},
		state:  InitialState(c),
	}
}

// Catalog returns the catalog rounds are dealt from.
func (s *Session) Catalog() *Catalog {
	return s.dealer.Catalog
}

// State returns a copy of the current state.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.state.Clone()
}

func (s *Session) apply(transition func(State) (State, error)) (State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, err := transition(s.state)
	if err != nil {
		return s.state.Clone(), err
	}

	s.state = next

	return next.Clone(), nil
}

func (s *Session) StartGame(playerCount int, categories []Category, mode Mode) (State, error) {
	return s.apply(func(st State) (State, error) {
		return st.StartGame(s.dealer.Catalog, playerCount, categories, mode)
	})
}

func (s *Session) SubmitNames(names []string) (State, error) {
	return s.apply(func(st State) (State, error) {
		return st.SubmitNames(s.dealer, names)
	})
}

func (s *Session) RevealCard() (State, error) {
	return s.apply(State.RevealCard)
}

func (s *Session) AdvancePlayer() (State, error) {
	return s.apply(State.AdvancePlayer)
}

func (s *Session) RestartSameLineup() (State, error) {
	return s.apply(func(st State) (State, error) {
		return st.RestartSameLineup(s.dealer)
	})
}

func (s *Session) RestartWithNewPlayers() (State, error) {
	return s.apply(func(st State) (State, error) {
		return st.RestartWithNewPlayers(s.dealer.Catalog)
	})
}

func (s *Session) RestartWithNewCategories(categories []Category) (State, error) {
	return s.apply(func(st State) (State, error) {
		return st.RestartWithNewCategories(s.dealer, categories)
	})
}
