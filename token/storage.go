// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package token

import (
	"github.com/ava-labs/avalanchego/database"
	"github.com/ava-labs/avalanchego/ids"

	"github.com/ava-labs/feerouter/codec"
)

// 0x0/ (token accounts)
//   -> [account id] => Account
// 0x1/ (mints)
//   -> [mint id] => Mint

const (
	accountPrefix = 0x0
	mintPrefix    = 0x1

	delimiter = '/'
)

func AccountKey(id ids.ID) []byte {
	return append([]byte{accountPrefix, delimiter}, id[:]...)
}

func MintKey(id ids.ID) []byte {
	return append([]byte{mintPrefix, delimiter}, id[:]...)
}

func get(db database.KeyValueReader, k []byte, dst interface{}) (bool, error) {
	has, err := db.Has(k)
	if err != nil {
		return false, err
	}
	if !has {
		return false, nil
	}
	v, err := db.Get(k)
	if err != nil {
		return false, err
	}
	if _, err := codec.Unmarshal(v, dst); err != nil {
		return false, err
	}
	return true, nil
}

func put(db database.KeyValueWriter, k []byte, src interface{}) error {
	v, err := codec.Marshal(src)
	if err != nil {
		return err
	}
	return db.Put(k, v)
}

func GetAccount(db database.KeyValueReader, id ids.ID) (*Account, bool, error) {
	a := new(Account)
	has, err := get(db, AccountKey(id), a)
	if err != nil || !has {
		return nil, false, err
	}
	return a, true, nil
}

func PutAccount(db database.KeyValueWriter, id ids.ID, a *Account) error {
	return put(db, AccountKey(id), a)
}

func GetMint(db database.KeyValueReader, id ids.ID) (*Mint, bool, error) {
	m := new(Mint)
	has, err := get(db, MintKey(id), m)
	if err != nil || !has {
		return nil, false, err
	}
	return m, true, nil
}

func PutMint(db database.KeyValueWriter, id ids.ID, m *Mint) error {
	return put(db, MintKey(id), m)
}
