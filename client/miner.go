// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package client

import (
	"context"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"github.com/fatih/color"
	"golang.org/x/sync/errgroup"

	"github.com/ava-labs/feerouter/chain"
	"github.com/ava-labs/feerouter/pow"
)

const (
	durPrecision  = 10 * time.Millisecond
	etaMultiplier = 3
	etaInterval   = 2 * time.Second
	pollInterval  = time.Second

	// rough sha3 throughput of a single core
	hashesPerSecond = 500_000
)

var concurrency = uint64(runtime.NumCPU())

// Mine fetches the router difficulty and searches for a graffiti that
// meets it.
func (cli *client) Mine(ctx context.Context, utx chain.UnsignedTransaction) (chain.UnsignedTransaction, error) {
	g, err := cli.Genesis()
	if err != nil {
		return nil, err
	}
	return Mine(ctx, utx, g.MinDifficulty)
}

// Mine searches graffiti values across all cores until [utx] carries at
// least [minDifficulty].
func Mine(ctx context.Context, utx chain.UnsignedTransaction, minDifficulty uint64) (chain.UnsignedTransaction, error) {
	now := time.Now()
	if minDifficulty == 0 {
		return utx, nil
	}
	g, gctx := errgroup.WithContext(ctx)

	var (
		agraffiti uint64 // approximate graffiti (could be set by any thread)
		once      sync.Once
		solution  chain.UnsignedTransaction
	)

	for i := uint64(0); i < concurrency; i++ {
		jutx := utx.Copy() // ensure each thread is modifying own copy of tx
		graffiti := i      // need to offset graffiti by thread
		g.Go(func() error {
			for gctx.Err() == nil {
				jutx.SetGraffiti(graffiti)
				d, err := chain.CalcDifficulty(jutx)
				if err != nil {
					return err
				}
				if d >= minDifficulty {
					found := false
					once.Do(func() {
						solution = jutx
						found = true
					})
					if found {
						color.Green(
							"mining complete[%d] (difficulty=%d, elapsed=%v)",
							graffiti, d, time.Since(now).Round(durPrecision),
						)
					}
					return ErrSolution
				}

				graffiti += concurrency // offset to avoid duplicate work
				atomic.StoreUint64(&agraffiti, graffiti)
			}
			return gctx.Err()
		})
	}

	// Periodically print ETA
	g.Go(func() error {
		eta := time.Duration(pow.ExpectedHashes(minDifficulty)/hashesPerSecond) * time.Second
		eta = (eta / time.Duration(concurrency)) * etaMultiplier // account for threads and overestimate

		t := time.NewTicker(etaInterval)
		defer t.Stop()
		for {
			select {
			case <-t.C:
				diff := time.Since(now)
				if diff > eta {
					color.Yellow(
						"mining in progress[%d]... (elapsed=%v, threads=%d)",
						atomic.LoadUint64(&agraffiti), diff.Round(durPrecision), concurrency,
					)
				} else {
					color.Yellow(
						"mining in progress[%d]... (elapsed=%v, est. remaining=%v, threads=%d)",
						atomic.LoadUint64(&agraffiti), diff.Round(durPrecision), (eta - diff).Round(durPrecision), concurrency,
					)
				}
			case <-gctx.Done():
				return gctx.Err()
			}
		}
	})

	err := g.Wait()
	if solution != nil {
		// If a solution was found, we don't care what the error was.
		return solution, nil
	}
	return nil, err
}
