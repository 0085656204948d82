// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package token implements the fungible token program the payment router
// moves value through: token accounts, mints and the transfer/burn
// primitives. Every primitive is all-or-nothing; it either writes every
// record it touches or returns before writing any.
package token

import (
	"github.com/ava-labs/avalanchego/ids"
	"golang.org/x/crypto/sha3"
)

// ProgramID identifies this token program. Accounts created through it
// record it as their holding program.
var ProgramID = ids.ID{
	't', 'o', 'k', 'e', 'n', 'k', 'e', 'g',
	'p', 'r', 'o', 'g', 'r', 'a', 'm', 0x1,
}

type Account struct {
	Mint ids.ID `serialize:"true" json:"mint"`
	// Authority may move or burn the account balance.
	Authority ids.ID `serialize:"true" json:"authority"`
	// Program is the program that holds the account.
	Program ids.ID `serialize:"true" json:"program"`
	Amount  uint64 `serialize:"true" json:"amount"`
}

type Mint struct {
	Authority ids.ID `serialize:"true" json:"authority"`
	Supply    uint64 `serialize:"true" json:"supply"`
}

// AccountAddress derives the canonical token account of [owner] for
// [mint].
func AccountAddress(owner ids.ID, mint ids.ID) ids.ID {
	h := sha3.New256()
	_, _ = h.Write(owner[:])
	_, _ = h.Write(mint[:])
	var id ids.ID
	copy(id[:], h.Sum(nil))
	return id
}
