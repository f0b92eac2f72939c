/*
Copyright © 2025 Seednode <seednode@seedno.de>
*/

package main

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"hash/fnv"
	"math/rand/v2"
)

// newSeed reads a seed from crypto/rand.
func newSeed() (uint64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}

	return binary.LittleEndian.Uint64(b[:]), nil
}

// gameRand returns the random source for a new game. With a fixed --seed,
// the same game ID always deals the same rounds.
func gameRand(cfg *Config, gameID string) (*rand.Rand, error) {
	h := fnv.New64a()
	_, _ = h.Write([]byte(gameID))

	if cfg.seed != 0 {
		return rand.New(rand.NewPCG(uint64(cfg.seed), h.Sum64())), nil
	}

	seed, err := newSeed()
	if err != nil {
		return nil, err
	}

	return rand.New(rand.NewPCG(seed, h.Sum64())), nil
}
