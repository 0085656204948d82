// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"fmt"

	"github.com/ava-labs/avalanchego/ids"
	smath "github.com/ava-labs/avalanchego/utils/math"
	"golang.org/x/crypto/sha3"

	"github.com/ava-labs/feerouter/codec"
)

// SubscriptionSize is the encoded size of every Subscription: the codec
// version, the owner and the expiry.
const SubscriptionSize = codec.VersionSize + len(ids.ID{}) + 8

var subscriptionSeed = []byte("subscription")

type Subscription struct {
	Owner     ids.ID `serialize:"true" json:"owner"`
	ExpiresAt uint64 `serialize:"true" json:"expiresAt"`
}

// SubscriptionAddress derives where [payer]'s subscription lives.
func SubscriptionAddress(payer ids.ID) ids.ID {
	h := sha3.New256()
	_, _ = h.Write(subscriptionSeed)
	_, _ = h.Write(payer[:])
	var id ids.ID
	copy(id[:], h.Sum(nil))
	return id
}

// Active reports whether the subscription is valid at [now].
func (s *Subscription) Active(now uint64) bool {
	return now < s.ExpiresAt
}

// Extend adds [period] to the later of [now] and the current expiry, so an
// early renewal stacks and a lapsed one restarts from [now].
func (s *Subscription) Extend(now uint64, period uint64) error {
	base := now
	if s.ExpiresAt > base {
		base = s.ExpiresAt
	}
	expiry, err := smath.Add64(base, period)
	if err != nil {
		return fmt.Errorf("%w: %d + %d", ErrArithmeticOverflow, base, period)
	}
	s.ExpiresAt = expiry
	return nil
}
