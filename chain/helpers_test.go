// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"testing"

	"github.com/ava-labs/avalanchego/database/memdb"
	"github.com/ava-labs/avalanchego/ids"

	"github.com/ava-labs/feerouter/token"
)

const testBalance = 10_000_000

func testGenesis(owners ...ids.ID) *Genesis {
	g := DefaultGenesis()
	g.MinDifficulty = 0
	for _, o := range owners {
		g.Allocations = append(g.Allocations, &Allocation{Owner: o, Balance: testBalance})
	}
	return g
}

func loadState(t *testing.T, g *Genesis) *State {
	t.Helper()

	db := memdb.New()
	t.Cleanup(func() { _ = db.Close() })
	s := NewState(db)
	if err := g.Load(s); err != nil {
		t.Fatal(err)
	}
	return s
}

// snapshot captures every balance a payment can touch.
type snapshot struct {
	payer  uint64
	vault  uint64
	supply uint64
	sub    Subscription
	hasSub bool
}

func takeSnapshot(t *testing.T, s *State, g *Genesis, payer ids.ID) snapshot {
	t.Helper()

	var snap snapshot
	if a, ok, err := token.GetAccount(s.Tokens, token.AccountAddress(payer, g.Mint)); err != nil {
		t.Fatal(err)
	} else if ok {
		snap.payer = a.Amount
	}
	if a, ok, err := token.GetAccount(s.Tokens, g.InsuranceVault); err != nil {
		t.Fatal(err)
	} else if ok {
		snap.vault = a.Amount
	}
	m, ok, err := token.GetMint(s.Tokens, g.Mint)
	if err != nil || !ok {
		t.Fatalf("unexpected ok %v, err %v", ok, err)
	}
	snap.supply = m.Supply
	sub, ok, err := GetSubscription(s.Chain, SubscriptionAddress(payer))
	if err != nil {
		t.Fatal(err)
	}
	if ok {
		snap.sub = *sub
		snap.hasSub = true
	}
	return snap
}
