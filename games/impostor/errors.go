/*
Copyright © 2025 Seednode <seednode@seedno.de>
*/

package impostor

import (
	"errors"
	"fmt"
)

var (
	ErrNoCategories    = errors.New("at least one category must be selected")
	ErrUnknownCategory = errors.New("unknown category")
	ErrUnknownMode     = errors.New("unknown game mode")
	ErrNameCount       = errors.New("number of names does not match player count")
	ErrPlayerCount     = fmt.Errorf("player count must be between %d and %d", MinPlayers, MaxPlayers)
	ErrWrongPhase      = errors.New("transition not allowed in current phase")
)

// PhaseError reports a transition attempted from a phase that does not
// allow it. It matches ErrWrongPhase with errors.Is.
type PhaseError struct {
	Op    string
	Phase Phase
}

func (e *PhaseError) Error() string {
	return fmt.Sprintf("%s: not allowed in %s phase", e.Op, e.Phase)
}

func (e *PhaseError) Unwrap() error {
	return ErrWrongPhase
}

func requirePhase(op string, current Phase, allowed ...Phase) error {
	for _, p := range allowed {
		if current == p {
			return nil
		}
	}

	return &PhaseError{Op: op, Phase: current}
}
