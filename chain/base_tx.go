// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

type BaseTx struct {
	// Nonce distinguishes otherwise identical payments from one payer.
	Nonce uint64 `serialize:"true" json:"nonce"`

	// Graffiti is the proof of work solution.
	Graffiti uint64 `serialize:"true" json:"graffiti"`
}

func (b *BaseTx) GetNonce() uint64 {
	return b.Nonce
}

func (b *BaseTx) SetGraffiti(graffiti uint64) {
	b.Graffiti = graffiti
}

func (b *BaseTx) GetGraffiti() uint64 {
	return b.Graffiti
}

func (b *BaseTx) Copy() *BaseTx {
	return &BaseTx{
		Nonce:    b.Nonce,
		Graffiti: b.Graffiti,
	}
}
