// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package client

import (
	"context"
	"time"

	"github.com/ava-labs/avalanchego/ids"
	"github.com/fatih/color"

	"github.com/ava-labs/feerouter/chain"
	"github.com/ava-labs/feerouter/crypto"
	"github.com/ava-labs/feerouter/service"
)

// Mines, signs and issues the transaction.
func SignIssueTx(
	ctx context.Context,
	cli Client,
	utx chain.UnsignedTransaction,
	priv *crypto.PrivateKey,
	opts ...OpOption,
) (txID ids.ID, err error) {
	ret := &Op{}
	ret.applyOpts(opts)

	mtx, err := cli.Mine(ctx, utx)
	if err != nil {
		return ids.Empty, err
	}

	tx, err := chain.SignTx(mtx, priv)
	if err != nil {
		return ids.Empty, err
	}

	color.Yellow(
		"issuing tx %s (size=%d, difficulty=%d, graffiti=%d)",
		tx.ID(), tx.Size(), tx.Difficulty(), tx.GetGraffiti(),
	)
	txID, err = cli.IssueTx(tx.Bytes())
	if err != nil {
		return ids.Empty, err
	}

	if ret.pollTx {
		color.Green("issued transaction %s (now polling)", txID)
		confirmed, err := cli.PollTx(ctx, txID)
		if err != nil {
			return ids.Empty, err
		}
		if !confirmed {
			color.Yellow("transaction %s not confirmed", txID)
		} else {
			color.Green("transaction %s confirmed", txID)
		}
	}

	if ret.subscription {
		resp, err := cli.Subscription(tx.Sender)
		if err != nil {
			color.Red("cannot get subscription %v", err)
			return ids.Empty, err
		}
		PrintSubscription(resp)
	}

	return txID, nil
}

// PrintSubscription writes [resp] in the CLI's colors.
func PrintSubscription(resp *service.SubscriptionReply) {
	if !resp.Exists {
		color.Yellow("no subscription at %s", resp.Address)
		return
	}
	expiry := time.Unix(int64(resp.Subscription.ExpiresAt), 0)
	if resp.Active {
		color.Blue(
			"subscription %s: owner=%s expiry=%v (%v remaining)",
			resp.Address, resp.Subscription.Owner, expiry, time.Until(expiry).Round(time.Second),
		)
		return
	}
	color.Red("subscription %s: owner=%s expired at %v", resp.Address, resp.Subscription.Owner, expiry)
}
