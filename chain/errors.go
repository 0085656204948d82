// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"errors"
)

var (
	// Configuration
	ErrInvalidSplit      = errors.New("invalid split percentages, must sum to 10000 bps")
	ErrInvalidPeriod     = errors.New("subscription period must be positive")
	ErrInvalidAllocation = errors.New("invalid allocation")

	// Tx Correctness
	ErrInvalidSender     = errors.New("invalid sender")
	ErrInvalidSignature  = errors.New("invalid signature")
	ErrInvalidDifficulty = errors.New("invalid difficulty")
	ErrDuplicateTx       = errors.New("duplicate transaction")
	ErrInvalidEmptyTx    = errors.New("invalid empty transaction")

	// Payment Validation
	ErrInvalidAmount            = errors.New("payment amount must be greater than zero")
	ErrInvalidOwner             = errors.New("invalid payer token account owner")
	ErrInvalidMint              = errors.New("invalid token mint")
	ErrInvalidVault             = errors.New("invalid insurance vault")
	ErrInvalidVaultMint         = errors.New("invalid insurance vault mint")
	ErrInvalidVaultOwner        = errors.New("invalid insurance vault owner")
	ErrInvalidVaultAuthority    = errors.New("invalid insurance vault authority")
	ErrInvalidSubscription      = errors.New("subscription address does not match payer")
	ErrInvalidSubscriptionOwner = errors.New("subscription belongs to another payer")

	// Execution Correctness
	ErrArithmeticOverflow = errors.New("arithmetic overflow")
	ErrGenesisMismatch    = errors.New("stored genesis does not match")
)
