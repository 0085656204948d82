// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"errors"
	"testing"

	"github.com/ava-labs/avalanchego/ids"

	"github.com/ava-labs/feerouter/chain"
)

func TestGetPayOp(t *testing.T) {
	tt := []struct {
		args   []string
		amount uint64
		err    bool
	}{
		{args: []string{"1000"}, amount: 1000},
		{args: []string{"18446744073709551615"}, amount: ^uint64(0)},
		{args: []string{"-1"}, err: true},
		{args: []string{"10", "20"}, err: true},
		{args: nil, err: true},
	}
	for i, tv := range tt {
		amount, err := getPayOp(tv.args)
		if (err != nil) != tv.err {
			t.Fatalf("#%d: unexpected error %v", i, err)
		}
		if amount != tv.amount {
			t.Fatalf("#%d: amount expected %d, got %d", i, tv.amount, amount)
		}
	}

	if _, err := getPayOp([]string{"0"}); !errors.Is(err, chain.ErrInvalidAmount) {
		t.Fatalf("unexpected error %v", err)
	}
}

func TestGetOwner(t *testing.T) {
	id := ids.GenerateTestID()
	owner, err := getOwner([]string{id.String()})
	if err != nil {
		t.Fatal(err)
	}
	if owner != id {
		t.Fatalf("owner expected %s, got %s", id, owner)
	}
	if _, err := getOwner([]string{"not-an-id"}); err == nil {
		t.Fatal("expected malformed owner to fail")
	}
	if _, err := getOwner([]string{"a", "b"}); err == nil {
		t.Fatal("expected too many arguments to fail")
	}
}
