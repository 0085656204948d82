// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"fmt"

	"github.com/ava-labs/avalanchego/ids"

	"github.com/ava-labs/feerouter/crypto"
)

// getOwner parses the optional owner argument, defaulting to the key in
// [privateKeyFile].
func getOwner(args []string) (ids.ID, error) {
	switch len(args) {
	case 0:
		priv, err := crypto.LoadPrivateKeyFile(privateKeyFile)
		if err != nil {
			return ids.Empty, err
		}
		return priv.PublicKey().ID(), nil
	case 1:
		id, err := ids.FromString(args[0])
		if err != nil {
			return ids.Empty, fmt.Errorf("%w: failed to parse owner", err)
		}
		return id, nil
	default:
		return ids.Empty, fmt.Errorf("expected at most 1 argument, got %d", len(args))
	}
}
