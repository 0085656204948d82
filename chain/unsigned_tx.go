// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"github.com/ava-labs/avalanchego/database"
	"github.com/ava-labs/avalanchego/ids"
)

type TransactionContext struct {
	Genesis *Genesis
	// Database holds router records (subscriptions, tx ids).
	Database database.Database
	// Tokens is the token program's view of the same overlay.
	Tokens    database.Database
	BlockTime uint64
	TxID      ids.ID
	Sender    ids.ID
}

type UnsignedTransaction interface {
	Copy() UnsignedTransaction
	GetNonce() uint64
	SetGraffiti(graffiti uint64)
	GetGraffiti() uint64

	Execute(*TransactionContext) error
}
