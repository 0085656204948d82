// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package service exposes the payment processor over JSON-RPC.
package service

import (
	"net/http"

	"github.com/ava-labs/avalanchego/ids"
	"github.com/ava-labs/avalanchego/utils/json"
	"github.com/gorilla/rpc/v2"
	log "github.com/inconshreveable/log15"

	"github.com/ava-labs/feerouter/chain"
	"github.com/ava-labs/feerouter/token"
)

const (
	Name           = "feerouter"
	PublicEndpoint = "/public"
)

type PublicService struct {
	p *chain.Processor
}

func New(p *chain.Processor) *PublicService {
	return &PublicService{p: p}
}

// NewHandler serves [p] under the "feerouter" JSON-RPC namespace.
func NewHandler(p *chain.Processor) (http.Handler, error) {
	server := rpc.NewServer()
	server.RegisterCodec(json.NewCodec(), "application/json")
	server.RegisterCodec(json.NewCodec(), "application/json;charset=UTF-8")
	if err := server.RegisterService(New(p), Name); err != nil {
		return nil, err
	}
	return server, nil
}

type PingReply struct {
	Success bool `serialize:"true" json:"success"`
}

func (svc *PublicService) Ping(_ *http.Request, _ *struct{}, reply *PingReply) (err error) {
	log.Info("ping")
	reply.Success = true
	return nil
}

type GenesisReply struct {
	Genesis *chain.Genesis `serialize:"true" json:"genesis"`
}

func (svc *PublicService) Genesis(_ *http.Request, _ *struct{}, reply *GenesisReply) (err error) {
	reply.Genesis = svc.p.Genesis()
	return nil
}

type IssueTxArgs struct {
	Tx []byte `serialize:"true" json:"tx"`
}

type IssueTxReply struct {
	TxID    ids.ID `serialize:"true" json:"txId"`
	Success bool   `serialize:"true" json:"success"`
}

func (svc *PublicService) IssueTx(_ *http.Request, args *IssueTxArgs, reply *IssueTxReply) error {
	if len(args.Tx) == 0 {
		return chain.ErrInvalidEmptyTx
	}
	tx := new(chain.Transaction)
	if _, err := chain.Unmarshal(args.Tx, tx); err != nil {
		return err
	}

	// otherwise, unexported tx.id field is empty
	if err := tx.Init(); err != nil {
		return err
	}
	reply.TxID = tx.ID()

	if err := svc.p.Submit(tx); err != nil {
		log.Debug("issueTx failed", "txID", tx.ID(), "err", err)
		return err
	}
	reply.Success = true
	return nil
}

type HasTxArgs struct {
	TxID ids.ID `serialize:"true" json:"txId"`
}

type HasTxReply struct {
	Accepted bool `serialize:"true" json:"accepted"`
}

func (svc *PublicService) HasTx(_ *http.Request, args *HasTxArgs, reply *HasTxReply) error {
	has, err := svc.p.HasTx(args.TxID)
	if err != nil {
		return err
	}
	reply.Accepted = has
	return nil
}

type SubscriptionArgs struct {
	Payer ids.ID `serialize:"true" json:"payer"`
}

type SubscriptionReply struct {
	Address      ids.ID              `serialize:"true" json:"address"`
	Exists       bool                `serialize:"true" json:"exists"`
	Active       bool                `serialize:"true" json:"active"`
	Subscription *chain.Subscription `serialize:"true" json:"subscription"`
}

func (svc *PublicService) Subscription(_ *http.Request, args *SubscriptionArgs, reply *SubscriptionReply) error {
	reply.Address = chain.SubscriptionAddress(args.Payer)
	sub, has, err := svc.p.Subscription(args.Payer)
	if err != nil {
		return err
	}
	reply.Exists = has
	reply.Subscription = sub
	if !has {
		return nil
	}
	active, err := svc.p.Active(args.Payer)
	if err != nil {
		return err
	}
	reply.Active = active
	return nil
}

type BalanceArgs struct {
	Owner ids.ID `serialize:"true" json:"owner"`
}

type BalanceReply struct {
	Account ids.ID `serialize:"true" json:"account"`
	Exists  bool   `serialize:"true" json:"exists"`
	Balance uint64 `serialize:"true" json:"balance"`
}

// Balance looks up [Owner]'s token account for the router mint.
func (svc *PublicService) Balance(_ *http.Request, args *BalanceArgs, reply *BalanceReply) error {
	reply.Account = token.AccountAddress(args.Owner, svc.p.Genesis().Mint)
	a, has, err := svc.p.Account(reply.Account)
	if err != nil {
		return err
	}
	reply.Exists = has
	if has {
		reply.Balance = a.Amount
	}
	return nil
}

type SupplyReply struct {
	Supply uint64 `serialize:"true" json:"supply"`
}

func (svc *PublicService) Supply(_ *http.Request, _ *struct{}, reply *SupplyReply) error {
	s, err := svc.p.Supply()
	if err != nil {
		return err
	}
	reply.Supply = s
	return nil
}
