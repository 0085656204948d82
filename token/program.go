// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package token

import (
	"fmt"

	"github.com/ava-labs/avalanchego/database"
	"github.com/ava-labs/avalanchego/ids"
	smath "github.com/ava-labs/avalanchego/utils/math"
)

// CreateMint registers a new mint with zero supply.
func CreateMint(db database.Database, id ids.ID, authority ids.ID) error {
	_, has, err := GetMint(db, id)
	if err != nil {
		return err
	}
	if has {
		return fmt.Errorf("%w: %s", ErrMintExists, id)
	}
	return PutMint(db, id, &Mint{Authority: authority})
}

// CreateAccount opens an empty account for [mint] controlled by
// [authority].
func CreateAccount(db database.Database, id ids.ID, mint ids.ID, authority ids.ID) error {
	_, has, err := GetAccount(db, id)
	if err != nil {
		return err
	}
	if has {
		return fmt.Errorf("%w: %s", ErrAccountExists, id)
	}
	if _, has, err := GetMint(db, mint); err != nil {
		return err
	} else if !has {
		return fmt.Errorf("%w: %s", ErrMintMissing, mint)
	}
	return PutAccount(db, id, &Account{
		Mint:      mint,
		Authority: authority,
		Program:   ProgramID,
	})
}

func loadMintAccount(db database.Database, mintID ids.ID, accountID ids.ID) (*Mint, *Account, error) {
	m, has, err := GetMint(db, mintID)
	if err != nil {
		return nil, nil, err
	}
	if !has {
		return nil, nil, fmt.Errorf("%w: %s", ErrMintMissing, mintID)
	}
	a, has, err := GetAccount(db, accountID)
	if err != nil {
		return nil, nil, err
	}
	if !has {
		return nil, nil, fmt.Errorf("%w: %s", ErrAccountMissing, accountID)
	}
	if a.Mint != mintID {
		return nil, nil, fmt.Errorf("%w: account %s holds %s", ErrMintMismatch, accountID, a.Mint)
	}
	return m, a, nil
}

// MintTo issues [amount] new units into [accountID], increasing supply.
func MintTo(db database.Database, mintID ids.ID, accountID ids.ID, authority ids.ID, amount uint64) error {
	m, a, err := loadMintAccount(db, mintID, accountID)
	if err != nil {
		return err
	}
	if m.Authority != authority {
		return fmt.Errorf("%w: mint %s", ErrUnauthorized, mintID)
	}
	supply, err := smath.Add64(m.Supply, amount)
	if err != nil {
		return fmt.Errorf("%w: supply %d + %d", ErrOverflow, m.Supply, amount)
	}
	bal, err := smath.Add64(a.Amount, amount)
	if err != nil {
		return fmt.Errorf("%w: balance %d + %d", ErrOverflow, a.Amount, amount)
	}
	m.Supply = supply
	a.Amount = bal
	if err := PutMint(db, mintID, m); err != nil {
		return err
	}
	return PutAccount(db, accountID, a)
}

// Transfer moves [amount] from [from] to [to]. [authority] must control
// [from]. A zero amount is a valid no-op once every check passes.
func Transfer(db database.Database, from ids.ID, to ids.ID, authority ids.ID, amount uint64) error {
	src, has, err := GetAccount(db, from)
	if err != nil {
		return err
	}
	if !has {
		return fmt.Errorf("%w: %s", ErrAccountMissing, from)
	}
	dst, has, err := GetAccount(db, to)
	if err != nil {
		return err
	}
	if !has {
		return fmt.Errorf("%w: %s", ErrAccountMissing, to)
	}
	if src.Mint != dst.Mint {
		return fmt.Errorf("%w: %s != %s", ErrMintMismatch, src.Mint, dst.Mint)
	}
	if src.Authority != authority {
		return fmt.Errorf("%w: %s", ErrUnauthorized, from)
	}
	srcBal, err := smath.Sub64(src.Amount, amount)
	if err != nil {
		return fmt.Errorf("%w: %d < %d", ErrInsufficientBalance, src.Amount, amount)
	}
	if from == to {
		return nil
	}
	dstBal, err := smath.Add64(dst.Amount, amount)
	if err != nil {
		return fmt.Errorf("%w: balance %d + %d", ErrOverflow, dst.Amount, amount)
	}
	src.Amount = srcBal
	dst.Amount = dstBal
	if err := PutAccount(db, from, src); err != nil {
		return err
	}
	return PutAccount(db, to, dst)
}

// Burn destroys [amount] held by [accountID], reducing the supply of
// [mintID].
func Burn(db database.Database, accountID ids.ID, mintID ids.ID, authority ids.ID, amount uint64) error {
	m, a, err := loadMintAccount(db, mintID, accountID)
	if err != nil {
		return err
	}
	if a.Authority != authority {
		return fmt.Errorf("%w: %s", ErrUnauthorized, accountID)
	}
	bal, err := smath.Sub64(a.Amount, amount)
	if err != nil {
		return fmt.Errorf("%w: %d < %d", ErrInsufficientBalance, a.Amount, amount)
	}
	supply, err := smath.Sub64(m.Supply, amount)
	if err != nil {
		return fmt.Errorf("%w: %d < %d", ErrInsufficientSupply, m.Supply, amount)
	}
	a.Amount = bal
	m.Supply = supply
	if err := PutAccount(db, accountID, a); err != nil {
		return err
	}
	return PutMint(db, mintID, m)
}
