/*
Copyright © 2025 Seednode <seednode@seedno.de>
*/

package impostor

import (
	"strconv"
	"strings"
)

const (
	MinPlayers = 3
	MaxPlayers = 10
)

// ValidatePlayerCount returns ErrPlayerCount unless n is within
// MinPlayers..MaxPlayers.
func ValidatePlayerCount(n int) error {
	if n < MinPlayers || n > MaxPlayers {
		return ErrPlayerCount
	}

	return nil
}

// DefaultName is the placeholder name for the seat at index i.
func DefaultName(i int) string {
	return "Jugador " + strconv.Itoa(i+1)
}

// DefaultNames returns placeholder names for n seats.
func DefaultNames(n int) []string {
	names := make([]string, n)
	for i := range names {
		names[i] = DefaultName(i)
	}

	return names
}

// NormalizeNames trims every name and replaces blank ones with the seat's
// default name. The length is never changed.
func NormalizeNames(names []string) []string {
	out := make([]string, len(names))
	for i, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			name = DefaultName(i)
		}
		out[i] = name
	}

	return out
}
