// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"github.com/ava-labs/avalanchego/utils/wrappers"

	"github.com/ava-labs/feerouter/codec"
)

func init() {
	errs := wrappers.Errs{}
	errs.Add(
		codec.RegisterType(&PaymentTx{}),
	)
	if errs.Errored() {
		panic(errs.Err)
	}
}

func Marshal(source interface{}) ([]byte, error) {
	return codec.Marshal(source)
}

func Unmarshal(source []byte, destination interface{}) (uint16, error) {
	return codec.Unmarshal(source, destination)
}
