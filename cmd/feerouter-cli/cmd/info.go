// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ava-labs/feerouter/client"
)

var infoCmd = &cobra.Command{
	Use:   "info [options] [payer]",
	Short: "Reads the subscription of a payer",
	RunE:  infoFunc,
}

func infoFunc(cmd *cobra.Command, args []string) error {
	payer, err := getOwner(args)
	if err != nil {
		return err
	}
	cli := client.New(uri, requestTimeout)
	resp, err := cli.Subscription(payer)
	if err != nil {
		return err
	}
	client.PrintSubscription(resp)
	return nil
}
