// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// "feerouter" serves the payment processor over JSON-RPC.
package main

import (
	"fmt"
	"os"

	log "github.com/inconshreveable/log15"
	"github.com/spf13/cobra"

	"github.com/ava-labs/feerouter/cmd/feerouter/serve"
	"github.com/ava-labs/feerouter/cmd/feerouter/version"
)

func init() {
	log.Root().SetHandler(log.LvlFilterHandler(log.LvlInfo, log.StreamHandler(os.Stderr, log.LogfmtFormat())))
}

var rootCmd = &cobra.Command{
	Use:        "feerouter",
	Short:      "Fee router payment processor",
	SuggestFor: []string{"feerouter", "fee-router"},
}

func init() {
	cobra.EnablePrefixMatching = true
}

func init() {
	rootCmd.AddCommand(
		serve.NewCommand(),
		version.NewCommand(),
	)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "feerouter failed %v\n", err)
		os.Exit(1)
	}
	os.Exit(0)
}
