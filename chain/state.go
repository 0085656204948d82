// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"github.com/ava-labs/avalanchego/database"
	"github.com/ava-labs/avalanchego/database/prefixdb"
)

var (
	tokenBucket = []byte("token")
	chainBucket = []byte("chain")
)

// State splits one database into the token program's records and the
// router's own records.
type State struct {
	Tokens database.Database
	Chain  database.Database
}

func NewState(db database.Database) *State {
	return &State{
		Tokens: prefixdb.New(tokenBucket, db),
		Chain:  prefixdb.New(chainBucket, db),
	}
}
