// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"bytes"
	"testing"

	"github.com/ava-labs/avalanchego/database/memdb"
	"github.com/ava-labs/avalanchego/ids"
)

func TestPrefixSubscriptionKey(t *testing.T) {
	t.Parallel()

	id := ids.GenerateTestID()
	tt := []struct {
		addr ids.ID
		key  []byte
	}{
		{
			addr: id,
			key:  append([]byte{subscriptionPrefix, ByteDelimiter}, id[:]...),
		},
	}
	for i, tv := range tt {
		vv := PrefixSubscriptionKey(tv.addr)
		if !bytes.Equal(tv.key, vv) {
			t.Fatalf("#%d: value expected %q, got %q", i, tv.key, vv)
		}
	}
}

func TestPrefixTxKey(t *testing.T) {
	t.Parallel()

	id := ids.GenerateTestID()
	tt := []struct {
		txID  ids.ID
		txKey []byte
	}{
		{
			txID:  id,
			txKey: append([]byte{txPrefix, ByteDelimiter}, id[:]...),
		},
	}
	for i, tv := range tt {
		vv := PrefixTxKey(tv.txID)
		if !bytes.Equal(tv.txKey, vv) {
			t.Fatalf("#%d: value expected %q, got %q", i, tv.txKey, vv)
		}
	}
}

func TestPutGetSubscription(t *testing.T) {
	t.Parallel()

	db := memdb.New()
	defer db.Close()

	addr := SubscriptionAddress(ids.GenerateTestID())
	if _, ok, err := GetSubscription(db, addr); ok || err != nil {
		t.Fatalf("unexpected ok %v, err %v", ok, err)
	}
	want := &Subscription{Owner: ids.GenerateTestID(), ExpiresAt: 1234}
	if err := PutSubscription(db, addr, want); err != nil {
		t.Fatal(err)
	}
	got, ok, err := GetSubscription(db, addr)
	if !ok || err != nil {
		t.Fatalf("unexpected ok %v, err %v", ok, err)
	}
	if *got != *want {
		t.Fatalf("subscription expected %+v, got %+v", want, got)
	}
}

func TestSetHasTransaction(t *testing.T) {
	t.Parallel()

	db := memdb.New()
	defer db.Close()

	id := ids.GenerateTestID()
	if ok, err := HasTransaction(db, id); ok || err != nil {
		t.Fatalf("unexpected ok %v, err %v", ok, err)
	}
	if err := SetTransaction(db, id, 10); err != nil {
		t.Fatal(err)
	}
	if ok, err := HasTransaction(db, id); !ok || err != nil {
		t.Fatalf("unexpected ok %v, err %v", ok, err)
	}
}

func TestStateBucketsAreIsolated(t *testing.T) {
	t.Parallel()

	db := memdb.New()
	defer db.Close()

	s := NewState(db)
	k := []byte("k")
	if err := s.Tokens.Put(k, []byte("v")); err != nil {
		t.Fatal(err)
	}
	if ok, err := s.Chain.Has(k); ok || err != nil {
		t.Fatalf("unexpected ok %v, err %v", ok, err)
	}
}
