// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/ava-labs/feerouter/client"
)

var balanceCmd = &cobra.Command{
	Use:   "balance [options] [owner]",
	Short: "Reads the token balance of an owner",
	RunE:  balanceFunc,
}

func balanceFunc(cmd *cobra.Command, args []string) error {
	owner, err := getOwner(args)
	if err != nil {
		return err
	}
	cli := client.New(uri, requestTimeout)
	b, err := cli.Balance(owner)
	if err != nil {
		return err
	}
	s, err := cli.Supply()
	if err != nil {
		return err
	}
	color.Cyan("Owner=%s Balance=%d Supply=%d", owner, b, s)
	return nil
}
