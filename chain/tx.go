// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"fmt"

	"github.com/ava-labs/avalanchego/ids"
	"golang.org/x/crypto/sha3"

	"github.com/ava-labs/feerouter/crypto"
	"github.com/ava-labs/feerouter/pow"
)

type Transaction struct {
	UnsignedTransaction `serialize:"true" json:"unsignedTransaction"`
	Sender              ids.ID `serialize:"true" json:"sender"`
	Signature           []byte `serialize:"true" json:"signature"`

	unsignedBytes []byte
	bytes         []byte
	id            ids.ID
	size          uint64
	difficulty    uint64
}

func NewTx(utx UnsignedTransaction, sender ids.ID, sig []byte) *Transaction {
	return &Transaction{
		UnsignedTransaction: utx,
		Sender:              sender,
		Signature:           sig,
	}
}

// SignTx signs [utx] as its payer.
func SignTx(utx UnsignedTransaction, priv *crypto.PrivateKey) (*Transaction, error) {
	b, err := UnsignedBytes(utx)
	if err != nil {
		return nil, err
	}
	sig, err := priv.Sign(b)
	if err != nil {
		return nil, err
	}
	tx := NewTx(utx, priv.PublicKey().ID(), sig)
	if err := tx.Init(); err != nil {
		return nil, err
	}
	return tx, nil
}

func UnsignedBytes(utx UnsignedTransaction) ([]byte, error) {
	b, err := Marshal(utx)
	if err != nil {
		return nil, err
	}
	return b, nil
}

// CalcDifficulty returns the difficulty [utx] carries with its current
// graffiti.
func CalcDifficulty(utx UnsignedTransaction) (uint64, error) {
	b, err := UnsignedBytes(utx)
	if err != nil {
		return 0, err
	}
	return pow.Difficulty(b), nil
}

func (t *Transaction) Init() error {
	if t.UnsignedTransaction == nil {
		return ErrInvalidEmptyTx
	}
	utx, err := UnsignedBytes(t.UnsignedTransaction)
	if err != nil {
		return err
	}
	t.unsignedBytes = utx
	t.difficulty = pow.Difficulty(utx)

	stx, err := Marshal(t)
	if err != nil {
		return err
	}
	t.bytes = stx

	h := sha3.Sum256(t.bytes)
	id, err := ids.ToID(h[:])
	if err != nil {
		return err
	}
	t.id = id

	t.size = uint64(len(t.Bytes()))
	return nil
}

func (t *Transaction) Bytes() []byte { return t.bytes }

func (t *Transaction) UnsignedBytes() []byte { return t.unsignedBytes }

func (t *Transaction) Size() uint64 { return t.size }

func (t *Transaction) ID() ids.ID { return t.id }

func (t *Transaction) Difficulty() uint64 { return t.difficulty }

// Execute authenticates the sender and runs the unsigned transaction
// against [s]. Callers are responsible for discarding [s] on error.
func (t *Transaction) Execute(g *Genesis, s *State, blockTime uint64) error {
	if t.Sender == ids.Empty {
		return ErrInvalidSender
	}
	if !pow.Meets(t.unsignedBytes, g.MinDifficulty) {
		return fmt.Errorf("%w: %d < %d", ErrInvalidDifficulty, t.difficulty, g.MinDifficulty)
	}
	if err := crypto.Verify(t.Sender, t.unsignedBytes, t.Signature); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidSignature, err)
	}
	dup, err := HasTransaction(s.Chain, t.id)
	if err != nil {
		return err
	}
	if dup {
		return fmt.Errorf("%w: %s", ErrDuplicateTx, t.id)
	}
	if err := t.UnsignedTransaction.Execute(&TransactionContext{
		Genesis:   g,
		Database:  s.Chain,
		Tokens:    s.Tokens,
		BlockTime: blockTime,
		TxID:      t.id,
		Sender:    t.Sender,
	}); err != nil {
		return err
	}
	return SetTransaction(s.Chain, t.id, blockTime)
}
