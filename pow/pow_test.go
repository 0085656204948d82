// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package pow

import (
	"encoding/binary"
	"testing"
)

func TestMeets(t *testing.T) {
	t.Parallel()

	b := Seed(42)
	if !Meets(b, 0) {
		t.Fatal("zero minimum must always pass")
	}
	d := Difficulty(b)
	if !Meets(b, d) {
		t.Fatalf("difficulty %d should meet itself", d)
	}
	if d < ^uint64(0) && Meets(b, d+1) {
		t.Fatalf("difficulty %d should not meet %d", d, d+1)
	}
}

func TestExpectedHashes(t *testing.T) {
	t.Parallel()

	if ExpectedHashes(10) <= ExpectedHashes(1) {
		t.Fatal("expected hashes must grow with difficulty")
	}
}

func benchmarkDifficulty(b *testing.B, d uint64) {
	for n := 0; n < b.N; n++ {
		for i := uint64(0); ; i++ {
			b := [16]byte{}
			binary.LittleEndian.PutUint64(b[:], uint64(n))
			binary.LittleEndian.PutUint64(b[8:], i)
			if Difficulty(b[:]) >= d {
				break
			}
		}
	}
}

func BenchmarkDifficulty1(b *testing.B)   { benchmarkDifficulty(b, 1) }
func BenchmarkDifficulty10(b *testing.B)  { benchmarkDifficulty(b, 10) }
func BenchmarkDifficulty50(b *testing.B)  { benchmarkDifficulty(b, 50) }
func BenchmarkDifficulty100(b *testing.B) { benchmarkDifficulty(b, 100) }
