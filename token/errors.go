// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package token

import "errors"

var (
	ErrAccountMissing      = errors.New("token account missing")
	ErrAccountExists       = errors.New("token account already exists")
	ErrMintMissing         = errors.New("mint missing")
	ErrMintExists          = errors.New("mint already exists")
	ErrMintMismatch        = errors.New("account mint does not match")
	ErrUnauthorized        = errors.New("authority does not control account")
	ErrInsufficientBalance = errors.New("insufficient balance")
	ErrInsufficientSupply  = errors.New("insufficient supply")
	ErrOverflow            = errors.New("balance overflow")
)
