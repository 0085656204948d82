// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// "feerouter-cli" implements feerouter client operation interface.
package cmd

import (
	"os"
	"time"

	"github.com/spf13/cobra"
)

const (
	requestTimeout = 30 * time.Second
	fsModeWrite    = 0o600
)

var (
	privateKeyFile string
	uri            string

	workDir = mustGetwd()

	rootCmd = &cobra.Command{
		Use:        "feerouter-cli",
		Short:      "Fee router CLI",
		SuggestFor: []string{"feerouter-cli", "feeroutercli", "feerouterctl"},
	}
)

func init() {
	cobra.EnablePrefixMatching = true
	rootCmd.AddCommand(
		createCmd,
		genesisCmd,
		payCmd,
		infoCmd,
		balanceCmd,
	)

	rootCmd.PersistentFlags().StringVar(
		&privateKeyFile,
		"private-key-file",
		".feerouter-cli-pk",
		"private key file path",
	)
	rootCmd.PersistentFlags().StringVar(
		&uri,
		"endpoint",
		"http://127.0.0.1:9650",
		"RPC endpoint of the router",
	)
}

func mustGetwd() string {
	p, err := os.Getwd()
	if err != nil {
		panic(err)
	}
	return p
}

func Execute() error {
	return rootCmd.Execute()
}
