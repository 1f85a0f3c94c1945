// Package internal provides the block hash primitives used by Blakeout.
// This package wraps golang.org/x/crypto.
package internal

import (
	"hash"

	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/blake2s"
)

// NewBlake2s256 returns a fresh unkeyed BLAKE2s-256 accumulator.
// This is the primitive the Blakeout construction is defined over.
func NewBlake2s256() hash.Hash {
	// New256 only fails for keys longer than 32 bytes.
	h, err := blake2s.New256(nil)
	if err != nil {
		panic(err)
	}
	return h
}

// NewBlake2b256 returns a fresh unkeyed BLAKE2b-256 accumulator.
func NewBlake2b256() hash.Hash {
	h, err := blake2b.New256(nil)
	if err != nil {
		panic(err)
	}
	return h
}

// NewBlake2b512 returns a fresh unkeyed BLAKE2b-512 accumulator.
// Its output is too wide for a scratchpad slot; it exists so callers
// can exercise output size validation.
func NewBlake2b512() hash.Hash {
	h, err := blake2b.New512(nil)
	if err != nil {
		panic(err)
	}
	return h
}

// Blake2sSum256 computes an unkeyed BLAKE2s-256 hash in one call.
func Blake2sSum256(data []byte) [32]byte {
	return blake2s.Sum256(data)
}
