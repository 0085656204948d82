// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"errors"
	"math"
	"math/rand"
	"testing"
)

func TestComputeSplit(t *testing.T) {
	t.Parallel()

	tt := []struct {
		amount    uint64
		bps       uint64
		insurance uint64
		burn      uint64
		err       error
	}{
		{amount: 1000, bps: InsuranceBPS, insurance: 500, burn: 500},
		{amount: 3, bps: InsuranceBPS, insurance: 1, burn: 2},
		{amount: 1, bps: InsuranceBPS, insurance: 0, burn: 1},
		{amount: 10001, bps: InsuranceBPS, insurance: 5000, burn: 5001},
		{amount: 999, bps: 0, insurance: 0, burn: 999},
		{amount: 999, bps: TotalBPS, insurance: 999, burn: 0},
		{amount: 7, bps: 3333, insurance: 2, burn: 5},
		{amount: math.MaxUint64 / InsuranceBPS, bps: InsuranceBPS, insurance: math.MaxUint64 / InsuranceBPS / 2, burn: math.MaxUint64/InsuranceBPS - math.MaxUint64/InsuranceBPS/2},
		{amount: math.MaxUint64, bps: InsuranceBPS, err: ErrArithmeticOverflow},
		{amount: 10, bps: TotalBPS + 1, err: ErrInvalidSplit},
	}
	for i, tv := range tt {
		s, err := ComputeSplit(tv.amount, tv.bps)
		if !errors.Is(err, tv.err) {
			t.Fatalf("#%d: err expected %v, got %v", i, tv.err, err)
		}
		if err != nil {
			continue
		}
		if s.Insurance != tv.insurance || s.Burn != tv.burn {
			t.Fatalf("#%d: split expected %d/%d, got %d/%d", i, tv.insurance, tv.burn, s.Insurance, s.Burn)
		}
	}
}

func TestComputeSplitSumsToAmount(t *testing.T) {
	t.Parallel()

	r := rand.New(rand.NewSource(1)) //nolint:gosec
	check := func(amount uint64) {
		s, err := ComputeSplit(amount, InsuranceBPS)
		if err != nil {
			t.Fatalf("amount %d: %v", amount, err)
		}
		if s.Insurance+s.Burn != amount {
			t.Fatalf("amount %d: %d + %d does not add up", amount, s.Insurance, s.Burn)
		}
		if s.Insurance != amount*InsuranceBPS/TotalBPS {
			t.Fatalf("amount %d: insurance %d is not floor(amount/2)", amount, s.Insurance)
		}
	}
	for amount := uint64(1); amount <= 10_000; amount++ {
		check(amount)
	}
	for i := 0; i < 10_000; i++ {
		check(uint64(r.Int63n(math.MaxUint64/InsuranceBPS)) + 1)
	}
}
