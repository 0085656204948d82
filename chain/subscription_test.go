// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"errors"
	"math"
	"testing"

	"github.com/ava-labs/avalanchego/ids"
)

func TestSubscriptionExtend(t *testing.T) {
	t.Parallel()

	const period = 2_592_000
	tt := []struct {
		expiresAt uint64
		now       uint64
		expected  uint64
		err       error
	}{
		{ // renewal before expiry stacks on the old expiry
			expiresAt: 1_000_000,
			now:       900_000,
			expected:  3_592_000,
		},
		{ // lapsed renewal restarts from now
			expiresAt: 1_000_000,
			now:       2_000_000,
			expected:  4_592_000,
		},
		{ // renewal exactly at expiry
			expiresAt: 1_000_000,
			now:       1_000_000,
			expected:  3_592_000,
		},
		{ // first payment
			now:      42,
			expected: 42 + period,
		},
		{
			expiresAt: math.MaxUint64 - 10,
			now:       1,
			err:       ErrArithmeticOverflow,
		},
		{
			now: math.MaxUint64 - period + 1,
			err: ErrArithmeticOverflow,
		},
	}
	for i, tv := range tt {
		s := &Subscription{ExpiresAt: tv.expiresAt}
		err := s.Extend(tv.now, period)
		if !errors.Is(err, tv.err) {
			t.Fatalf("#%d: err expected %v, got %v", i, tv.err, err)
		}
		if err != nil {
			if s.ExpiresAt != tv.expiresAt {
				t.Fatalf("#%d: failed extension modified expiry to %d", i, s.ExpiresAt)
			}
			continue
		}
		if s.ExpiresAt != tv.expected {
			t.Fatalf("#%d: expiry expected %d, got %d", i, tv.expected, s.ExpiresAt)
		}
		if s.ExpiresAt < tv.expiresAt {
			t.Fatalf("#%d: expiry moved backwards", i)
		}
	}
}

func TestSubscriptionActive(t *testing.T) {
	t.Parallel()

	s := &Subscription{ExpiresAt: 100}
	if !s.Active(99) {
		t.Fatal("subscription should be active before expiry")
	}
	if s.Active(100) {
		t.Fatal("subscription should not be active at expiry")
	}
}

func TestSubscriptionAddress(t *testing.T) {
	t.Parallel()

	a, b := ids.GenerateTestID(), ids.GenerateTestID()
	if SubscriptionAddress(a) != SubscriptionAddress(a) {
		t.Fatal("subscription address is not deterministic")
	}
	if SubscriptionAddress(a) == SubscriptionAddress(b) {
		t.Fatal("distinct payers share a subscription address")
	}
	if SubscriptionAddress(a) == a {
		t.Fatal("subscription address must not equal the payer")
	}
}

func TestSubscriptionSize(t *testing.T) {
	t.Parallel()

	for i, s := range []*Subscription{
		{},
		{Owner: ids.GenerateTestID(), ExpiresAt: math.MaxUint64},
	} {
		b, err := Marshal(s)
		if err != nil {
			t.Fatal(err)
		}
		if len(b) != SubscriptionSize {
			t.Fatalf("#%d: encoded size expected %d, got %d", i, SubscriptionSize, len(b))
		}
	}
}
