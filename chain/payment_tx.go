// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"fmt"

	"github.com/ava-labs/avalanchego/ids"

	"github.com/ava-labs/feerouter/token"
)

var _ UnsignedTransaction = &PaymentTx{}

// PaymentTx pays [Amount] of the router mint. Half (by InsuranceBPS) lands
// in the insurance vault, the rest is burned, and the sender's
// subscription is extended by one period.
type PaymentTx struct {
	*BaseTx `serialize:"true" json:"baseTx"`

	Amount uint64 `serialize:"true" json:"amount"`

	PayerAccount ids.ID `serialize:"true" json:"payerAccount"`
	Vault        ids.ID `serialize:"true" json:"vault"`
	Mint         ids.ID `serialize:"true" json:"mint"`
	Subscription ids.ID `serialize:"true" json:"subscription"`
}

// NewPaymentTx fills every account reference for [payer] from [g].
func NewPaymentTx(g *Genesis, payer ids.ID, amount uint64, nonce uint64) *PaymentTx {
	return &PaymentTx{
		BaseTx:       &BaseTx{Nonce: nonce},
		Amount:       amount,
		PayerAccount: token.AccountAddress(payer, g.Mint),
		Vault:        g.InsuranceVault,
		Mint:         g.Mint,
		Subscription: SubscriptionAddress(payer),
	}
}

// verify runs every read-only check in a fixed order. The first failure
// is returned and nothing is written.
func (p *PaymentTx) verify(c *TransactionContext) (*token.Account, *Subscription, error) {
	g := c.Genesis
	if err := g.VerifySplit(); err != nil {
		return nil, nil, err
	}
	if p.Amount == 0 {
		return nil, nil, ErrInvalidAmount
	}

	payer, has, err := token.GetAccount(c.Tokens, p.PayerAccount)
	if err != nil {
		return nil, nil, err
	}
	if !has {
		return nil, nil, fmt.Errorf("%w: payer account %s missing", ErrInvalidOwner, p.PayerAccount)
	}
	if payer.Program != g.TokenProgram || payer.Authority != c.Sender {
		return nil, nil, fmt.Errorf("%w: %s", ErrInvalidOwner, p.PayerAccount)
	}
	if payer.Mint != g.Mint {
		return nil, nil, fmt.Errorf("%w: payer account holds %s", ErrInvalidMint, payer.Mint)
	}

	if p.Vault != g.InsuranceVault {
		return nil, nil, fmt.Errorf("%w: %s", ErrInvalidVault, p.Vault)
	}
	vault, has, err := token.GetAccount(c.Tokens, p.Vault)
	if err != nil {
		return nil, nil, err
	}
	if !has {
		return nil, nil, fmt.Errorf("%w: %s missing", ErrInvalidVault, p.Vault)
	}
	if vault.Mint != g.Mint {
		return nil, nil, fmt.Errorf("%w: vault holds %s", ErrInvalidVaultMint, vault.Mint)
	}
	if vault.Program != g.TokenProgram {
		return nil, nil, fmt.Errorf("%w: held by %s", ErrInvalidVaultOwner, vault.Program)
	}
	if vault.Authority != g.VaultAuthority {
		return nil, nil, fmt.Errorf("%w: controlled by %s", ErrInvalidVaultAuthority, vault.Authority)
	}

	if p.Mint != g.Mint {
		return nil, nil, fmt.Errorf("%w: %s", ErrInvalidMint, p.Mint)
	}

	if p.Subscription != SubscriptionAddress(c.Sender) {
		return nil, nil, fmt.Errorf("%w: %s", ErrInvalidSubscription, p.Subscription)
	}
	sub, has, err := GetSubscription(c.Database, p.Subscription)
	if err != nil {
		return nil, nil, err
	}
	if !has {
		sub = new(Subscription)
	} else if sub.Owner != c.Sender {
		return nil, nil, fmt.Errorf("%w: owned by %s", ErrInvalidSubscriptionOwner, sub.Owner)
	}
	return payer, sub, nil
}

func (p *PaymentTx) Execute(c *TransactionContext) error {
	payer, sub, err := p.verify(c)
	if err != nil {
		return err
	}

	split, err := ComputeSplit(p.Amount, c.Genesis.InsuranceBPS)
	if err != nil {
		return err
	}
	if payer.Amount < p.Amount {
		return fmt.Errorf("%w: %d < %d", token.ErrInsufficientBalance, payer.Amount, p.Amount)
	}
	if err := sub.Extend(c.BlockTime, c.Genesis.SubscriptionPeriod); err != nil {
		return err
	}
	sub.Owner = c.Sender

	if err := token.Transfer(c.Tokens, p.PayerAccount, p.Vault, c.Sender, split.Insurance); err != nil {
		return err
	}
	if err := token.Burn(c.Tokens, p.PayerAccount, p.Mint, c.Sender, split.Burn); err != nil {
		return err
	}
	return PutSubscription(c.Database, p.Subscription, sub)
}

func (p *PaymentTx) Copy() UnsignedTransaction {
	return &PaymentTx{
		BaseTx:       p.BaseTx.Copy(),
		Amount:       p.Amount,
		PayerAccount: p.PayerAccount,
		Vault:        p.Vault,
		Mint:         p.Mint,
		Subscription: p.Subscription,
	}
}
