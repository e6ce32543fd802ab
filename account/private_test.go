// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/oracled/account"
	"github.com/bitmark-inc/oracled/fault"
)

type privateKeyTest struct {
	privateKey       []byte
	base58PrivateKey string
}

var testPrivateKey = []privateKeyTest{
	{
		privateKey:       decodeHex("95b5a80b4cdbe61c0f3f72cc152d4a4f29bcfd39c9a67e2c7bc6e0e14ec7c7ba55b2988817f7eaec37741b82447163caaa5a9db2b6f0ce722626338e5e3fd7f7"),
		base58PrivateKey: "AaTfRXLmV59eCFGzBkkzYa1QbuXQBZCiAvjNdnHUaXCFJCyMCxMar6c3Qqaa1mzSPCqPK9XgpkDHcTSCTyAnMnKCHSA2Hz",
	},
}

var testInvalidPrivateKeyFromBase58 = []invalid{
	{"3gLJjLSociTmf4kgL3ztUK;tgADFvg9yjXt1jFbEx9KgpEEAFn", fault.ErrCannotDecodePrivateKey}, // invalid base58 string
	{"ZxbhGmFUuwUd9XPFoRjPg77T1h29urd2e85pryntETtXCFS3FZ", fault.ErrChecksumMismatch},       // checksum mismatch
	{"3iNEz7VJ29DyFeiXGu9gSCUg4K6ykynfPYeyST1AWAti72mpvLd", fault.ErrInvalidKeyType},        // undefined key algorithm
	{"anF8SWxSRY5vnN3Bbyz9buRYW1hfCAAZxfbv8Fw9SFXaktvLCj", fault.ErrNotPrivateKey},          // public key
}

func TestPrivateValidBase58(t *testing.T) {
	for index, test := range testPrivateKey {
		prv, err := account.PrivateKeyFromBase58(test.base58PrivateKey)
		if !assert.Nil(t, err, "%d: from base58", index) {
			continue
		}
		assert.Equal(t, account.ED25519, prv.KeyType(), "%d: key type", index)
		assert.False(t, prv.IsTesting(), "%d: testnet", index)
		assert.Equal(t, test.privateKey, prv.PrivateKeyBytes(), "%d: private key", index)
		assert.Equal(t, test.base58PrivateKey, prv.String(), "%d: to base58", index)

		j := `"` + test.base58PrivateKey + `"`
		var p account.PrivateKey
		err = json.Unmarshal([]byte(j), &p)
		if !assert.Nil(t, err, "%d: from JSON", index) {
			continue
		}

		buffer, err := json.Marshal(p)
		assert.Nil(t, err, "%d: to JSON", index)
		assert.Equal(t, j, string(buffer), "%d: JSON round trip", index)
	}
}

func TestPrivateInvalidBase58(t *testing.T) {
	for index, test := range testInvalidPrivateKeyFromBase58 {
		_, err := account.PrivateKeyFromBase58(test.str)
		assert.Equal(t, test.err, err, "%d: %q", index, test.str)
	}
}

func TestPrivateKeyAccount(t *testing.T) {
	prv, err := account.PrivateKeyFromBase58(testPrivateKey[0].base58PrivateKey)
	if !assert.Nil(t, err, "from base58") {
		return
	}

	acc := prv.Account()
	assert.Equal(t, testPrivateKey[0].privateKey[32:], acc.PublicKeyBytes(), "public half")
	assert.False(t, acc.IsTesting(), "network follows private key")
}

func TestNewKeyRoundTrip(t *testing.T) {
	for _, test := range []bool{false, true} {
		prv, err := account.NewKey(test)
		if !assert.Nil(t, err, "new key") {
			continue
		}
		assert.Equal(t, test, prv.IsTesting(), "network")

		decoded, err := account.PrivateKeyFromBase58(prv.String())
		if !assert.Nil(t, err, "decode generated key") {
			continue
		}
		assert.Equal(t, prv.PrivateKeyBytes(), decoded.PrivateKeyBytes(), "key bytes")
		assert.Equal(t, prv.Account().String(), decoded.Account().String(), "account")
	}
}
