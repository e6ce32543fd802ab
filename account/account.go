// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"bytes"

	"github.com/mr-tron/base58"
	"golang.org/x/crypto/ed25519"
	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/oracled/fault"
	"github.com/bitmark-inc/oracled/util"
)

// ED25519 - the only supported key algorithm
const ED25519 = 1

// miscellaneous constants
const (
	checksumLength = 4

	// bits in key code starting from LSB
	publicKeyCode = 0x01
	testKeyCode   = 0x02

	algorithmShift = 4 // shift 4 bits to get algorithm
)

// Account - an ed25519 public key tagged with its network
type Account struct {
	Test      bool
	PublicKey ed25519.PublicKey
}

// decode the key variant header shared by accounts and private keys
//
// returns the test flag and the offset of the key material
func decodeVariant(buffer []byte, public bool) (bool, int, error) {
	keyVariant, keyVariantLength := util.FromVarint64(buffer)
	if 0 == keyVariantLength {
		if public {
			return false, 0, fault.ErrNotPublicKey
		}
		return false, 0, fault.ErrNotPrivateKey
	}

	isPublic := publicKeyCode == keyVariant&publicKeyCode
	if public && !isPublic {
		return false, 0, fault.ErrNotPublicKey
	}
	if !public && isPublic {
		return false, 0, fault.ErrNotPrivateKey
	}

	if ED25519 != keyVariant>>algorithmShift {
		return false, 0, fault.ErrInvalidKeyType
	}

	return 0 != keyVariant&testKeyCode, keyVariantLength, nil
}

// strip and verify the trailing checksum of a decoded base58 string
func verifyChecksum(decoded []byte) ([]byte, error) {
	if len(decoded) <= checksumLength {
		return nil, fault.ErrInvalidKeyLength
	}
	checksumStart := len(decoded) - checksumLength
	checksum := sha3.Sum256(decoded[:checksumStart])
	if !bytes.Equal(checksum[:checksumLength], decoded[checksumStart:]) {
		return nil, fault.ErrChecksumMismatch
	}
	return decoded[:checksumStart], nil
}

// AccountFromBase58 - convert a Base58 encoded string to an account
func AccountFromBase58(accountBase58Encoded string) (*Account, error) {
	accountDecoded, err := base58.Decode(accountBase58Encoded)
	if nil != err || 0 == len(accountDecoded) {
		return nil, fault.ErrCannotDecodeAccount
	}

	// variant is checked before checksum so a private key is
	// reported as such
	if _, _, err := decodeVariant(accountDecoded, true); nil != err {
		return nil, err
	}

	buffer, err := verifyChecksum(accountDecoded)
	if nil != err {
		return nil, err
	}
	return AccountFromBytes(buffer)
}

// AccountFromBytes - convert a byte encoded buffer to an account
func AccountFromBytes(accountBytes []byte) (*Account, error) {
	isTest, n, err := decodeVariant(accountBytes, true)
	if nil != err {
		return nil, err
	}

	if ed25519.PublicKeySize != len(accountBytes)-n {
		return nil, fault.ErrInvalidKeyLength
	}

	publicKey := make([]byte, ed25519.PublicKeySize)
	copy(publicKey, accountBytes[n:])

	account := &Account{
		Test:      isTest,
		PublicKey: publicKey,
	}
	return account, nil
}

// KeyType - key algorithm code
func (account *Account) KeyType() int {
	return ED25519
}

// IsTesting - whether the public key is for a test network
func (account *Account) IsTesting() bool {
	return account.Test
}

// IsZero - true if the public key is all zero bytes
func (account *Account) IsZero() bool {
	for _, b := range account.PublicKey {
		if 0 != b {
			return false
		}
	}
	return true
}

// PublicKeyBytes - the raw public key
func (account *Account) PublicKeyBytes() []byte {
	return account.PublicKey[:]
}

// CheckSignature - verify the signature of a message
func (account *Account) CheckSignature(message []byte, signature Signature) error {
	if ed25519.SignatureSize != len(signature) {
		return fault.ErrInvalidSignature
	}
	if ed25519.PublicKeySize != len(account.PublicKey) {
		return fault.ErrInvalidKeyLength
	}
	if !ed25519.Verify(account.PublicKey, message, signature) {
		return fault.ErrInvalidSignature
	}
	return nil
}

// Bytes - byte slice for encoded key
func (account *Account) Bytes() []byte {
	keyVariant := byte(ED25519<<algorithmShift) | publicKeyCode
	if account.Test {
		keyVariant |= testKeyCode
	}
	return append([]byte{keyVariant}, account.PublicKey[:]...)
}

// String - base58 encoding of encoded key
func (account *Account) String() string {
	buffer := account.Bytes()
	checksum := sha3.Sum256(buffer)
	buffer = append(buffer, checksum[:checksumLength]...)
	return base58.Encode(buffer)
}

// MarshalText - convert an account to its Base58 JSON form
func (account Account) MarshalText() ([]byte, error) {
	return []byte(account.String()), nil
}

// UnmarshalText - convert a Base58 JSON form to an account
func (account *Account) UnmarshalText(s []byte) error {
	a, err := AccountFromBase58(string(s))
	if nil != err {
		return err
	}
	*account = *a
	return nil
}
