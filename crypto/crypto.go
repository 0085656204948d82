// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package crypto implements the ed25519 keys that sign payments. A payer's
// identity is its raw 32-byte public key interpreted as an ids.ID.
package crypto

import (
	"crypto/ed25519"
	"errors"
	"fmt"
	"os"

	"github.com/ava-labs/avalanchego/ids"
	"github.com/ava-labs/avalanchego/utils/formatting"
)

const (
	PublicKeySize  = ed25519.PublicKeySize
	PrivateKeySize = ed25519.PrivateKeySize
	SignatureSize  = ed25519.SignatureSize

	fsModeWrite = 0o600
)

var (
	ErrInvalidPrivateKeySize = errors.New("invalid private key size")
	ErrInvalidSignatureSize  = errors.New("invalid signature size")
)

type PublicKey struct {
	PublicKey ed25519.PublicKey `serialize:"true" json:"publicKey"`

	addr string
}

type PrivateKey struct {
	PrivateKey ed25519.PrivateKey

	pk *PublicKey
}

// NewPrivateKey generates a fresh key.
func NewPrivateKey() (*PrivateKey, error) {
	_, k, err := ed25519.GenerateKey(nil)
	if err != nil {
		return nil, err
	}
	return &PrivateKey{PrivateKey: k}, nil
}

// LoadPrivateKey loads a private key
func LoadPrivateKey(k []byte) (*PrivateKey, error) {
	if len(k) != PrivateKeySize {
		return nil, ErrInvalidPrivateKeySize
	}
	sk := make([]byte, PrivateKeySize)
	copy(sk, k)
	return &PrivateKey{PrivateKey: sk}, nil
}

// LoadPrivateKeyFile reads a CB58 encoded private key from disk.
func LoadPrivateKeyFile(path string) (*PrivateKey, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	raw, err := formatting.Decode(formatting.CB58, string(b))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to decode %s", err, path)
	}
	return LoadPrivateKey(raw)
}

// SaveKey writes the key to disk as CB58 with a checksum.
func (k *PrivateKey) SaveKey(path string) error {
	s, err := formatting.EncodeWithChecksum(formatting.CB58, k.PrivateKey)
	if err != nil {
		return err
	}
	return os.WriteFile(path, []byte(s), fsModeWrite)
}

// PublicKey returns the key's public half.
func (k *PrivateKey) PublicKey() *PublicKey {
	if k.pk == nil {
		k.pk = &PublicKey{
			PublicKey: k.PrivateKey.Public().(ed25519.PublicKey),
		}
	}
	return k.pk
}

// Sign signs msg with the key.
func (k *PrivateKey) Sign(msg []byte) ([]byte, error) {
	return ed25519.Sign(k.PrivateKey, msg), nil
}

func (k *PrivateKey) Bytes() []byte { return k.PrivateKey }

// PublicKeyFromID recovers a public key from an identity.
func PublicKeyFromID(id ids.ID) *PublicKey {
	pk := make([]byte, PublicKeySize)
	copy(pk, id[:])
	return &PublicKey{PublicKey: pk}
}

func (k *PublicKey) Verify(msg, sig []byte) bool {
	if len(sig) != SignatureSize {
		return false
	}
	return ed25519.Verify(k.PublicKey, msg, sig)
}

// ID returns the identity of the key holder.
func (k *PublicKey) ID() ids.ID {
	var id ids.ID
	copy(id[:], k.PublicKey)
	return id
}

// Address returns the checksummed CB58 rendering of the key.
func (k *PublicKey) Address() string {
	if len(k.addr) == 0 {
		addr, err := formatting.EncodeWithChecksum(formatting.CB58, k.PublicKey)
		if err != nil {
			panic(err)
		}
		k.addr = addr
	}
	return k.addr
}

func (k *PublicKey) Bytes() []byte { return k.PublicKey }

// Verify checks sig against the identity [id].
func Verify(id ids.ID, msg []byte, sig []byte) error {
	if len(sig) != SignatureSize {
		return ErrInvalidSignatureSize
	}
	if !PublicKeyFromID(id).Verify(msg, sig) {
		return errors.New("signature mismatch")
	}
	return nil
}
