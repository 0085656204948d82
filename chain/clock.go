// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"sync"
	"time"
)

// Clock is the logical time source subscriptions are measured against.
type Clock interface {
	// Now returns unix seconds.
	Now() uint64
}

type UnixClock struct{}

func (UnixClock) Now() uint64 {
	now := time.Now().Unix()
	if now < 0 {
		return 0
	}
	return uint64(now)
}

// ClockFunc adapts a function to Clock.
type ClockFunc func() uint64

func (f ClockFunc) Now() uint64 { return f() }

// MonotonicClock never reports a time earlier than one it already
// returned, even if the wrapped clock steps backwards.
type MonotonicClock struct {
	mu    sync.Mutex
	clock Clock
	last  uint64
}

func NewMonotonicClock(c Clock) *MonotonicClock {
	return &MonotonicClock{clock: c}
}

func (m *MonotonicClock) Now() uint64 {
	m.mu.Lock()
	defer m.mu.Unlock()

	if now := m.clock.Now(); now > m.last {
		m.last = now
	}
	return m.last
}
