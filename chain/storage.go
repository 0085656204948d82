// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"encoding/binary"

	"github.com/ava-labs/avalanchego/database"
	"github.com/ava-labs/avalanchego/ids"

	"github.com/ava-labs/feerouter/codec"
)

// 0x0/ (subscriptions)
//   -> [subscription address] => Subscription
// 0x1/ (tx hashes)
//   -> [txID] => block time

const (
	subscriptionPrefix = 0x0
	txPrefix           = 0x1

	ByteDelimiter = '/'
)

var genesisKey = []byte("genesis")

func PrefixSubscriptionKey(addr ids.ID) []byte {
	return append([]byte{subscriptionPrefix, ByteDelimiter}, addr[:]...)
}

func PrefixTxKey(txID ids.ID) []byte {
	return append([]byte{txPrefix, ByteDelimiter}, txID[:]...)
}

func GetSubscription(db database.KeyValueReader, addr ids.ID) (*Subscription, bool, error) {
	k := PrefixSubscriptionKey(addr)
	has, err := db.Has(k)
	if err != nil {
		return nil, false, err
	}
	if !has {
		return nil, false, nil
	}
	v, err := db.Get(k)
	if err != nil {
		return nil, false, err
	}
	var s Subscription
	if _, err := codec.Unmarshal(v, &s); err != nil {
		return nil, false, err
	}
	return &s, true, nil
}

func PutSubscription(db database.KeyValueWriter, addr ids.ID, s *Subscription) error {
	v, err := codec.Marshal(s)
	if err != nil {
		return err
	}
	return db.Put(PrefixSubscriptionKey(addr), v)
}

func SetTransaction(db database.KeyValueWriter, txID ids.ID, blockTime uint64) error {
	v := make([]byte, 8)
	binary.BigEndian.PutUint64(v, blockTime)
	return db.Put(PrefixTxKey(txID), v)
}

func HasTransaction(db database.KeyValueReader, txID ids.ID) (bool, error) {
	return db.Has(PrefixTxKey(txID))
}

func GetGenesis(db database.KeyValueReader) (*Genesis, bool, error) {
	has, err := db.Has(genesisKey)
	if err != nil {
		return nil, false, err
	}
	if !has {
		return nil, false, nil
	}
	v, err := db.Get(genesisKey)
	if err != nil {
		return nil, false, err
	}
	g := new(Genesis)
	if _, err := codec.Unmarshal(v, g); err != nil {
		return nil, false, err
	}
	return g, true, nil
}

func PutGenesis(db database.KeyValueWriter, g *Genesis) error {
	v, err := codec.Marshal(g)
	if err != nil {
		return err
	}
	return db.Put(genesisKey, v)
}
