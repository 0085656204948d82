// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package client implements "feerouter" client SDK.
package client

import (
	"context"
	"time"

	"github.com/ava-labs/avalanchego/ids"
	"github.com/ava-labs/avalanchego/utils/rpc"
	"github.com/fatih/color"

	"github.com/ava-labs/feerouter/chain"
	"github.com/ava-labs/feerouter/service"
)

// Client defines feerouter client operations.
type Client interface {
	// Pings the router.
	Ping() (bool, error)
	// Returns the router genesis.
	Genesis() (*chain.Genesis, error)

	// Returns the subscription held by [payer], if any.
	Subscription(payer ids.ID) (*service.SubscriptionReply, error)
	// Balance returns the token balance owned by [owner].
	Balance(owner ids.ID) (bal uint64, err error)
	// Supply returns the outstanding mint supply.
	Supply() (uint64, error)

	// Issues the transaction and returns the transaction ID.
	IssueTx(d []byte) (ids.ID, error)
	// Checks the status of the transaction, and returns "true" if accepted.
	HasTx(id ids.ID) (bool, error)
	// Polls the transactions until it is accepted.
	PollTx(ctx context.Context, txID ids.ID) (confirmed bool, err error)

	// Mine searches for a graffiti that satisfies the router difficulty.
	Mine(ctx context.Context, utx chain.UnsignedTransaction) (chain.UnsignedTransaction, error)
}

// New creates a new client object.
func New(uri string, reqTimeout time.Duration) Client {
	req := rpc.NewEndpointRequester(
		uri,
		service.PublicEndpoint,
		service.Name,
		reqTimeout,
	)
	return &client{req: req}
}

type client struct {
	req rpc.EndpointRequester
}

func (cli *client) Ping() (bool, error) {
	resp := new(service.PingReply)
	err := cli.req.SendRequest(
		"ping",
		nil,
		resp,
	)
	if err != nil {
		return false, err
	}
	return resp.Success, nil
}

func (cli *client) Genesis() (*chain.Genesis, error) {
	resp := new(service.GenesisReply)
	err := cli.req.SendRequest(
		"genesis",
		nil,
		resp,
	)
	return resp.Genesis, err
}

func (cli *client) Subscription(payer ids.ID) (*service.SubscriptionReply, error) {
	resp := new(service.SubscriptionReply)
	if err := cli.req.SendRequest(
		"subscription",
		&service.SubscriptionArgs{Payer: payer},
		resp,
	); err != nil {
		return nil, err
	}
	return resp, nil
}

func (cli *client) Balance(owner ids.ID) (bal uint64, err error) {
	resp := new(service.BalanceReply)
	if err = cli.req.SendRequest(
		"balance",
		&service.BalanceArgs{Owner: owner},
		resp,
	); err != nil {
		return 0, err
	}
	return resp.Balance, nil
}

func (cli *client) Supply() (uint64, error) {
	resp := new(service.SupplyReply)
	if err := cli.req.SendRequest(
		"supply",
		nil,
		resp,
	); err != nil {
		return 0, err
	}
	return resp.Supply, nil
}

func (cli *client) IssueTx(d []byte) (ids.ID, error) {
	resp := new(service.IssueTxReply)
	if err := cli.req.SendRequest(
		"issueTx",
		&service.IssueTxArgs{Tx: d},
		resp,
	); err != nil {
		return ids.Empty, err
	}

	txID := resp.TxID
	if txID == ids.Empty {
		return ids.Empty, ErrEmptyTxID
	}
	return txID, nil
}

func (cli *client) HasTx(txID ids.ID) (bool, error) {
	resp := new(service.HasTxReply)
	if err := cli.req.SendRequest(
		"hasTx",
		&service.HasTxArgs{TxID: txID},
		resp,
	); err != nil {
		return false, err
	}
	return resp.Accepted, nil
}

func (cli *client) PollTx(ctx context.Context, txID ids.ID) (confirmed bool, err error) {
	t := time.NewTicker(pollInterval)
	defer t.Stop()

	for ctx.Err() == nil {
		confirmed, err := cli.HasTx(txID)
		if err != nil {
			color.Red("polling transaction failed %v", err)
		} else if confirmed {
			return true, nil
		}

		select {
		case <-t.C:
		case <-ctx.Done():
		}
	}
	return false, ctx.Err()
}

type Op struct {
	pollTx       bool
	subscription bool
}

type OpOption func(*Op)

func (op *Op) applyOpts(opts []OpOption) {
	for _, opt := range opts {
		opt(op)
	}
}

// "true" to poll transaction for its confirmation.
func WithPollTx() OpOption {
	return func(op *Op) { op.pollTx = true }
}

// "true" to print out the payer's subscription after issuance.
func WithSubscription() OpOption {
	return func(op *Op) { op.subscription = true }
}
