// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package pow implements the proof-of-work that gates payment admission.
package pow

import (
	"encoding/binary"
	"math/big"

	"golang.org/x/crypto/sha3"
)

// Recommended reading to understand how this works: https://en.bitcoin.it/wiki/Difficulty
const (
	totalPrecision = 256
	// Each unit of difficulty at 2^230 adds ~1ms on a new laptop
	difficultyBase = 230
	expectedBase   = totalPrecision - difficultyBase
)

var (
	big2           = big.NewInt(2)
	scalingOperand = big.NewInt(0xFFFF)

	diffFactor     = new(big.Int).Mul(scalingOperand, new(big.Int).Exp(big2, big.NewInt(difficultyBase), nil))
	expectedFactor = new(big.Int).Exp(big2, big.NewInt(expectedBase), nil)
)

// Difficulty scores the sha3 hash of [b]; lower hashes score higher.
func Difficulty(b []byte) uint64 {
	h := sha3.Sum256(b)
	v := new(big.Int).SetBytes(h[:])
	if v.Sign() == 0 {
		return ^uint64(0)
	}
	r := new(big.Int).Div(diffFactor, v)
	if !r.IsUint64() {
		return ^uint64(0)
	}
	return r.Uint64()
}

// Meets reports whether [b] carries at least [min] difficulty. A zero
// minimum admits everything.
func Meets(b []byte, min uint64) bool {
	if min == 0 {
		return true
	}
	return Difficulty(b) >= min
}

// ExpectedHashes provides an estimate of the number of hashes that must be
// computed for a given difficulty.
func ExpectedHashes(difficulty uint64) uint64 {
	n := new(big.Int).Mul(new(big.Int).SetUint64(difficulty), expectedFactor)
	r := new(big.Int).Div(n, scalingOperand)
	return r.Uint64()
}

// Seed returns an 8 byte little endian encoding of [graffiti], used by
// benchmarks and tests to produce distinct inputs.
func Seed(graffiti uint64) []byte {
	b := make([]byte, 8)
	binary.LittleEndian.PutUint64(b, graffiti)
	return b
}
