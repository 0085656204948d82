// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"bytes"
	"fmt"
	"sync"

	"github.com/ava-labs/avalanchego/database"
	"github.com/ava-labs/avalanchego/database/versiondb"
	"github.com/ava-labs/avalanchego/ids"
	log "github.com/inconshreveable/log15"

	"github.com/ava-labs/feerouter/token"
)

// Processor admits payments one at a time. Each payment runs against a
// versioned overlay of the base database that is committed only if every
// step succeeded.
type Processor struct {
	mu      sync.RWMutex
	genesis *Genesis
	db      database.Database
	clock   Clock
}

func NewProcessor(g *Genesis, db database.Database, clock Clock) *Processor {
	if clock == nil {
		clock = UnixClock{}
	}
	return &Processor{
		genesis: g,
		db:      db,
		clock:   NewMonotonicClock(clock),
	}
}

// Initialize loads [genesis] into an empty database, or checks that a
// populated database was created from the same genesis.
func (p *Processor) Initialize() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if err := p.genesis.Verify(); err != nil {
		return err
	}
	want, err := Marshal(p.genesis)
	if err != nil {
		return err
	}

	vdb := versiondb.New(p.db)
	s := NewState(vdb)
	stored, has, err := GetGenesis(s.Chain)
	if err != nil {
		return err
	}
	if has {
		got, err := Marshal(stored)
		if err != nil {
			return err
		}
		if !bytes.Equal(got, want) {
			return ErrGenesisMismatch
		}
		log.Info("genesis already loaded", "mint", p.genesis.Mint, "vault", p.genesis.InsuranceVault)
		return nil
	}

	if err := p.genesis.Load(s); err != nil {
		vdb.Abort()
		return err
	}
	if err := PutGenesis(s.Chain, p.genesis); err != nil {
		vdb.Abort()
		return err
	}
	if err := vdb.Commit(); err != nil {
		return err
	}
	log.Info("genesis loaded",
		"mint", p.genesis.Mint,
		"vault", p.genesis.InsuranceVault,
		"allocations", len(p.genesis.Allocations),
	)
	return nil
}

func (p *Processor) Genesis() *Genesis { return p.genesis }

// Submit executes [tx] atomically. On error nothing it did is kept.
func (p *Processor) Submit(tx *Transaction) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	now := p.clock.Now()
	vdb := versiondb.New(p.db)
	if err := tx.Execute(p.genesis, NewState(vdb), now); err != nil {
		vdb.Abort()
		log.Debug("payment rejected", "txID", tx.ID(), "sender", tx.Sender, "err", err)
		return err
	}
	if err := vdb.Commit(); err != nil {
		return fmt.Errorf("%w: failed to commit %s", err, tx.ID())
	}

	if ptx, ok := tx.UnsignedTransaction.(*PaymentTx); ok {
		log.Info("payment accepted",
			"txID", tx.ID(),
			"sender", tx.Sender,
			"amount", ptx.Amount,
			"time", now,
		)
	}
	return nil
}

// Subscription returns [payer]'s committed subscription.
func (p *Processor) Subscription(payer ids.ID) (*Subscription, bool, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	return GetSubscription(NewState(p.db).Chain, SubscriptionAddress(payer))
}

// Active reports whether [payer] holds a subscription valid right now.
func (p *Processor) Active(payer ids.ID) (bool, error) {
	sub, has, err := p.Subscription(payer)
	if err != nil || !has {
		return false, err
	}
	return sub.Active(p.clock.Now()), nil
}

func (p *Processor) Account(id ids.ID) (*token.Account, bool, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	return token.GetAccount(NewState(p.db).Tokens, id)
}

func (p *Processor) Supply() (uint64, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	m, has, err := token.GetMint(NewState(p.db).Tokens, p.genesis.Mint)
	if err != nil {
		return 0, err
	}
	if !has {
		return 0, token.ErrMintMissing
	}
	return m.Supply, nil
}

func (p *Processor) HasTx(txID ids.ID) (bool, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	return HasTransaction(NewState(p.db).Chain, txID)
}
