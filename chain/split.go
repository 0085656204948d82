// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"fmt"

	smath "github.com/ava-labs/avalanchego/utils/math"
)

// TotalBPS is 100% expressed in basis points.
const TotalBPS = 10_000

type Split struct {
	Insurance uint64 `json:"insurance"`
	Burn      uint64 `json:"burn"`
}

// ComputeSplit divides [amount] into the insurance share, rounded down, and
// the burn share. The burn share is the remainder so the two always add up
// to [amount].
func ComputeSplit(amount uint64, insuranceBPS uint64) (*Split, error) {
	if insuranceBPS > TotalBPS {
		return nil, fmt.Errorf("%w: insurance share %d bps", ErrInvalidSplit, insuranceBPS)
	}
	scaled, err := smath.Mul64(amount, insuranceBPS)
	if err != nil {
		return nil, fmt.Errorf("%w: %d * %d", ErrArithmeticOverflow, amount, insuranceBPS)
	}
	insurance := scaled / TotalBPS
	burn, err := smath.Sub64(amount, insurance)
	if err != nil {
		return nil, fmt.Errorf("%w: %d - %d", ErrArithmeticOverflow, amount, insurance)
	}
	return &Split{Insurance: insurance, Burn: burn}, nil
}
