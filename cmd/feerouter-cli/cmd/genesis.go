// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strconv"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/ava-labs/feerouter/chain"
	"github.com/ava-labs/feerouter/client"
	"github.com/ava-labs/feerouter/crypto"
)

var (
	allocationsFile string
	remote          bool
)

func init() {
	genesisCmd.PersistentFlags().StringVar(
		&allocationsFile,
		"allocations-file",
		filepath.Join(workDir, "allocations.json"),
		"allocations file path",
	)
	genesisCmd.PersistentFlags().BoolVar(
		&remote,
		"remote",
		false,
		"print the genesis of the router at --endpoint instead",
	)
}

var genesisCmd = &cobra.Command{
	Use:   "genesis [balance] [options]",
	Short: "Adds the key to an allocations file, or prints the router genesis",
	Long: `
Adds an allocation of [balance] tokens for the key to the allocations
file, creating it if needed. The file is passed to
"feerouter serve --genesis-file".

$ feerouter-cli genesis 1000000
$ feerouter-cli genesis --remote

`,
	RunE: genesisFunc,
}

func genesisFunc(cmd *cobra.Command, args []string) error {
	if remote {
		g, err := client.New(uri, requestTimeout).Genesis()
		if err != nil {
			return err
		}
		b, err := json.MarshalIndent(g, "", "  ")
		if err != nil {
			return err
		}
		color.Cyan("%s", b)
		return nil
	}

	if len(args) != 1 {
		return errors.New("invalid args")
	}
	balance, err := strconv.ParseUint(args[0], 10, 64)
	if err != nil {
		return err
	}
	priv, err := crypto.LoadPrivateKeyFile(privateKeyFile)
	if err != nil {
		return err
	}

	allocs := []*chain.Allocation{}
	if b, err := os.ReadFile(allocationsFile); err == nil {
		allocs, err = chain.ParseAllocations(b)
		if err != nil {
			return err
		}
	} else if !errors.Is(err, os.ErrNotExist) {
		return err
	}

	owner := priv.PublicKey().ID()
	found := false
	for _, a := range allocs {
		if a.Owner == owner {
			a.Balance = balance
			found = true
		}
	}
	if !found {
		allocs = append(allocs, &chain.Allocation{Owner: owner, Balance: balance})
	}

	b, err := json.MarshalIndent(allocs, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(allocationsFile, b, fsModeWrite); err != nil {
		return err
	}
	color.Green("allocated %d to %s in %s", balance, owner, allocationsFile)
	return nil
}
