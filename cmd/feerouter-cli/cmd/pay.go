// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/ava-labs/feerouter/chain"
	"github.com/ava-labs/feerouter/client"
	"github.com/ava-labs/feerouter/crypto"
)

var payCmd = &cobra.Command{
	Use:   "pay [options] <amount>",
	Short: "Pays the router and extends the subscription",
	Long: `
Pays <amount> tokens from the key's token account. Half goes to the
insurance vault, the rest is burned, and the subscription is extended
by one period.

$ feerouter-cli pay 1000

`,
	RunE: payFunc,
}

func payFunc(cmd *cobra.Command, args []string) error {
	amount, err := getPayOp(args)
	if err != nil {
		return err
	}
	priv, err := crypto.LoadPrivateKeyFile(privateKeyFile)
	if err != nil {
		return err
	}

	cli := client.New(uri, requestTimeout)
	g, err := cli.Genesis()
	if err != nil {
		return err
	}
	split, err := chain.ComputeSplit(amount, g.InsuranceBPS)
	if err != nil {
		return err
	}
	color.Blue("paying %d (insurance=%d, burn=%d)", amount, split.Insurance, split.Burn)

	payer := priv.PublicKey().ID()
	utx := chain.NewPaymentTx(g, payer, amount, uint64(time.Now().UnixNano()))

	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()
	opts := []client.OpOption{client.WithPollTx(), client.WithSubscription()}
	if _, err := client.SignIssueTx(ctx, cli, utx, priv, opts...); err != nil {
		return err
	}

	b, err := cli.Balance(payer)
	if err != nil {
		return err
	}
	color.Cyan("Payer=%s Balance=%d", payer, b)
	return nil
}

func getPayOp(args []string) (uint64, error) {
	if len(args) != 1 {
		return 0, fmt.Errorf("expected exactly 1 argument, got %d", len(args))
	}
	amount, err := strconv.ParseUint(args[0], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: failed to parse amount", err)
	}
	if amount == 0 {
		return 0, chain.ErrInvalidAmount
	}
	return amount, nil
}
