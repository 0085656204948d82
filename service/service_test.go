// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package service

import (
	"errors"
	"testing"

	"github.com/ava-labs/avalanchego/database/memdb"
	"github.com/ava-labs/avalanchego/ids"

	"github.com/ava-labs/feerouter/chain"
	"github.com/ava-labs/feerouter/crypto"
)

const (
	testBalance = 1_000_000
	testNow     = 5_000
)

func newTestService(t *testing.T) (*PublicService, *crypto.PrivateKey) {
	t.Helper()

	priv, err := crypto.NewPrivateKey()
	if err != nil {
		t.Fatal(err)
	}
	g := chain.DefaultGenesis()
	g.MinDifficulty = 0
	g.Allocations = []*chain.Allocation{{Owner: priv.PublicKey().ID(), Balance: testBalance}}

	db := memdb.New()
	t.Cleanup(func() { _ = db.Close() })
	p := chain.NewProcessor(g, db, chain.ClockFunc(func() uint64 { return testNow }))
	if err := p.Initialize(); err != nil {
		t.Fatal(err)
	}
	return New(p), priv
}

func TestPublicService(t *testing.T) {
	t.Parallel()

	svc, priv := newTestService(t)
	payer := priv.PublicKey().ID()

	ping := new(PingReply)
	if err := svc.Ping(nil, nil, ping); err != nil || !ping.Success {
		t.Fatalf("unexpected ping %v, err %v", ping.Success, err)
	}

	gen := new(GenesisReply)
	if err := svc.Genesis(nil, nil, gen); err != nil {
		t.Fatal(err)
	}
	if gen.Genesis.InsuranceBPS != chain.InsuranceBPS || gen.Genesis.BurnBPS != chain.BurnBPS {
		t.Fatalf("unexpected split %d/%d", gen.Genesis.InsuranceBPS, gen.Genesis.BurnBPS)
	}

	sub := new(SubscriptionReply)
	if err := svc.Subscription(nil, &SubscriptionArgs{Payer: payer}, sub); err != nil {
		t.Fatal(err)
	}
	if sub.Exists || sub.Active || sub.Address != chain.SubscriptionAddress(payer) {
		t.Fatalf("unexpected subscription %+v", sub)
	}

	tx, err := chain.SignTx(chain.NewPaymentTx(gen.Genesis, payer, 1001, 1), priv)
	if err != nil {
		t.Fatal(err)
	}
	issued := new(IssueTxReply)
	if err := svc.IssueTx(nil, &IssueTxArgs{Tx: tx.Bytes()}, issued); err != nil {
		t.Fatal(err)
	}
	if !issued.Success || issued.TxID != tx.ID() {
		t.Fatalf("unexpected issue reply %+v", issued)
	}

	has := new(HasTxReply)
	if err := svc.HasTx(nil, &HasTxArgs{TxID: tx.ID()}, has); err != nil || !has.Accepted {
		t.Fatalf("unexpected accepted %v, err %v", has.Accepted, err)
	}

	if err := svc.Subscription(nil, &SubscriptionArgs{Payer: payer}, sub); err != nil {
		t.Fatal(err)
	}
	if !sub.Exists || !sub.Active {
		t.Fatalf("unexpected subscription %+v", sub)
	}
	if sub.Subscription.Owner != payer || sub.Subscription.ExpiresAt != testNow+chain.SubscriptionPeriod {
		t.Fatalf("unexpected record %+v", sub.Subscription)
	}

	// 1001 splits into 500 insurance and 501 burn
	bal := new(BalanceReply)
	if err := svc.Balance(nil, &BalanceArgs{Owner: payer}, bal); err != nil {
		t.Fatal(err)
	}
	if !bal.Exists || bal.Balance != testBalance-1001 {
		t.Fatalf("unexpected balance %+v", bal)
	}
	supply := new(SupplyReply)
	if err := svc.Supply(nil, nil, supply); err != nil {
		t.Fatal(err)
	}
	if supply.Supply != testBalance-501 {
		t.Fatalf("supply expected %d, got %d", testBalance-501, supply.Supply)
	}

	// replays are rejected and report the id
	replay := new(IssueTxReply)
	if err := svc.IssueTx(nil, &IssueTxArgs{Tx: tx.Bytes()}, replay); !errors.Is(err, chain.ErrDuplicateTx) {
		t.Fatalf("unexpected error %v", err)
	}
	if replay.Success || replay.TxID != tx.ID() {
		t.Fatalf("unexpected replay reply %+v", replay)
	}
}

func TestPublicServiceIssueTxErrors(t *testing.T) {
	t.Parallel()

	svc, priv := newTestService(t)
	payer := priv.PublicKey().ID()

	tt := []struct {
		tx  func() []byte
		err error
	}{
		{
			tx:  func() []byte { return nil },
			err: chain.ErrInvalidEmptyTx,
		},
		{
			tx: func() []byte {
				tx, err := chain.SignTx(chain.NewPaymentTx(svc.p.Genesis(), payer, 0, 2), priv)
				if err != nil {
					t.Fatal(err)
				}
				return tx.Bytes()
			},
			err: chain.ErrInvalidAmount,
		},
		{
			tx: func() []byte {
				utx := chain.NewPaymentTx(svc.p.Genesis(), payer, 10, 3)
				tx, err := chain.SignTx(utx, priv)
				if err != nil {
					t.Fatal(err)
				}
				tx.Signature[0] ^= 0xff
				if err := tx.Init(); err != nil {
					t.Fatal(err)
				}
				return tx.Bytes()
			},
			err: chain.ErrInvalidSignature,
		},
	}
	for i, tv := range tt {
		reply := new(IssueTxReply)
		if err := svc.IssueTx(nil, &IssueTxArgs{Tx: tv.tx()}, reply); !errors.Is(err, tv.err) {
			t.Fatalf("#%d: err expected %v, got %v", i, tv.err, err)
		}
		if reply.Success {
			t.Fatalf("#%d: unexpected success", i)
		}
	}

	bal := new(BalanceReply)
	if err := svc.Balance(nil, &BalanceArgs{Owner: payer}, bal); err != nil {
		t.Fatal(err)
	}
	if bal.Balance != testBalance {
		t.Fatalf("balance expected %d, got %d", testBalance, bal.Balance)
	}
}

func TestPublicServiceUnknownOwner(t *testing.T) {
	t.Parallel()

	svc, _ := newTestService(t)
	bal := new(BalanceReply)
	if err := svc.Balance(nil, &BalanceArgs{Owner: ids.GenerateTestID()}, bal); err != nil {
		t.Fatal(err)
	}
	if bal.Exists || bal.Balance != 0 {
		t.Fatalf("unexpected balance %+v", bal)
	}
}
