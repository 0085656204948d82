// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"encoding/json"
	"fmt"

	"github.com/ava-labs/avalanchego/ids"
	"golang.org/x/crypto/sha3"

	"github.com/ava-labs/feerouter/token"
)

const (
	InsuranceBPS = 5000
	BurnBPS      = 5000

	// 30 days subscription in seconds
	SubscriptionPeriod = 30 * 24 * 60 * 60

	// ~50ms per payment on a laptop
	MinDifficulty = 50
)

var (
	MintID           = ids.ID(sha3.Sum256([]byte("feerouter/mint")))
	MintAuthority    = ids.ID(sha3.Sum256([]byte("feerouter/mint-authority")))
	InsuranceVaultID = ids.ID(sha3.Sum256([]byte("feerouter/insurance-vault")))
	VaultAuthority   = ids.ID(sha3.Sum256([]byte("feerouter/insurance-vault-authority")))
)

type Allocation struct {
	Owner   ids.ID `serialize:"true" json:"owner"`
	Balance uint64 `serialize:"true" json:"balance"`
}

// Genesis holds the compiled-in router parameters. They are fixed for the
// lifetime of a deployment; only Allocations vary between networks.
type Genesis struct {
	Mint           ids.ID `serialize:"true" json:"mint"`
	MintAuthority  ids.ID `serialize:"true" json:"mintAuthority"`
	InsuranceVault ids.ID `serialize:"true" json:"insuranceVault"`
	VaultAuthority ids.ID `serialize:"true" json:"vaultAuthority"`
	TokenProgram   ids.ID `serialize:"true" json:"tokenProgram"`

	InsuranceBPS uint64 `serialize:"true" json:"insuranceBps"`
	BurnBPS      uint64 `serialize:"true" json:"burnBps"`

	// SubscriptionPeriod is the number of seconds a single payment adds.
	SubscriptionPeriod uint64 `serialize:"true" json:"subscriptionPeriod"`

	MinDifficulty uint64 `serialize:"true" json:"minDifficulty"`

	Allocations []*Allocation `serialize:"true" json:"allocations"`
}

func DefaultGenesis() *Genesis {
	return &Genesis{
		Mint:           MintID,
		MintAuthority:  MintAuthority,
		InsuranceVault: InsuranceVaultID,
		VaultAuthority: VaultAuthority,
		TokenProgram:   token.ProgramID,

		InsuranceBPS: InsuranceBPS,
		BurnBPS:      BurnBPS,

		SubscriptionPeriod: SubscriptionPeriod,

		MinDifficulty: MinDifficulty,
	}
}

// VerifySplit checks that the weights sum to TotalBPS. It runs on every
// payment.
func (g *Genesis) VerifySplit() error {
	if g.InsuranceBPS+g.BurnBPS != TotalBPS || g.InsuranceBPS > TotalBPS {
		return fmt.Errorf("%w: %d + %d", ErrInvalidSplit, g.InsuranceBPS, g.BurnBPS)
	}
	return nil
}

func (g *Genesis) Verify() error {
	if err := g.VerifySplit(); err != nil {
		return err
	}
	if g.SubscriptionPeriod == 0 {
		return ErrInvalidPeriod
	}
	return nil
}

// Load creates the mint, the insurance vault and one funded token account
// per allocation.
func (g *Genesis) Load(s *State) error {
	if err := g.Verify(); err != nil {
		return err
	}
	if err := token.CreateMint(s.Tokens, g.Mint, g.MintAuthority); err != nil {
		return err
	}
	if err := token.CreateAccount(s.Tokens, g.InsuranceVault, g.Mint, g.VaultAuthority); err != nil {
		return err
	}
	for _, alloc := range g.Allocations {
		acct := token.AccountAddress(alloc.Owner, g.Mint)
		if err := token.CreateAccount(s.Tokens, acct, g.Mint, alloc.Owner); err != nil {
			return err
		}
		if err := token.MintTo(s.Tokens, g.Mint, acct, g.MintAuthority, alloc.Balance); err != nil {
			return err
		}
	}
	return nil
}

// ParseAllocations reads a JSON list of {"owner", "balance"} entries.
func ParseAllocations(b []byte) ([]*Allocation, error) {
	var allocs []*Allocation
	if err := json.Unmarshal(b, &allocs); err != nil {
		return nil, err
	}
	seen := make(map[ids.ID]struct{}, len(allocs))
	for i, a := range allocs {
		if a == nil || a.Owner == ids.Empty {
			return nil, fmt.Errorf("%w: #%d has no owner", ErrInvalidAllocation, i)
		}
		if _, ok := seen[a.Owner]; ok {
			return nil, fmt.Errorf("%w: duplicate owner %s", ErrInvalidAllocation, a.Owner)
		}
		seen[a.Owner] = struct{}{}
	}
	return allocs, nil
}
