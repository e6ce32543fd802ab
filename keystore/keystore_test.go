// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package keystore_test

import (
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/oracled/account"
	"github.com/bitmark-inc/oracled/background"
	"github.com/bitmark-inc/oracled/fault"
	"github.com/bitmark-inc/oracled/keystore"
)

const (
	testingDirName = "testing"
)

func TestMain(m *testing.M) {
	removeFiles()
	_ = os.Mkdir(testingDirName, 0700)

	logging := logger.Configuration{
		Directory: testingDirName,
		File:      "testing.log",
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}
	_ = logger.Initialise(logging)

	rc := m.Run()

	logger.Finalise()
	removeFiles()
	os.Exit(rc)
}

func removeFiles() {
	err := os.RemoveAll(testingDirName)
	if nil != err {
		fmt.Println("remove dir with error: ", err)
	}
}

func newKey(t *testing.T, test bool) *account.PrivateKey {
	key, err := account.NewKey(test)
	if nil != err {
		t.Fatalf("new key error: %s", err)
	}
	return key
}

func writeKey(t *testing.T, dir string, name string, key *account.PrivateKey) {
	err := ioutil.WriteFile(filepath.Join(dir, name), []byte(key.String()+"\n"), 0600)
	if nil != err {
		t.Fatalf("write key error: %s", err)
	}
}

// poll until the condition holds or two seconds pass
func waitFor(condition func() bool) bool {
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if condition() {
			return true
		}
		time.Sleep(10 * time.Millisecond)
	}
	return condition()
}

func TestMemory(t *testing.T) {
	k1 := newKey(t, true)
	k2 := newKey(t, true)
	store := keystore.NewMemory(k1, k2)

	accounts := store.Accounts()
	assert.Equal(t, 2, len(accounts), "accounts")
	assert.True(t, string(accounts[0].Bytes()) < string(accounts[1].Bytes()), "key order")

	message := []byte("message")
	signature, err := store.Sign(k1.Account(), message)
	assert.Nil(t, err, "sign")
	assert.Nil(t, k1.Account().CheckSignature(message, signature), "verify")

	_, err = store.Sign(newKey(t, true).Account(), message)
	assert.Equal(t, fault.ErrKeyNotFound, err, "unknown account")

	assert.Equal(t, 0, len(keystore.NewMemory().Accounts()), "empty")
}

func TestDirectory(t *testing.T) {
	dir, err := ioutil.TempDir("", "oracled-keys")
	if nil != err {
		t.Fatalf("temp dir error: %s", err)
	}
	defer os.RemoveAll(dir)

	k1 := newKey(t, true)
	writeKey(t, dir, "one.private", k1)
	writeKey(t, dir, "live.private", newKey(t, false))
	writeKey(t, dir, "ignored.txt", newKey(t, true))
	err = ioutil.WriteFile(filepath.Join(dir, "bad.private"), []byte("not a key"), 0600)
	assert.Nil(t, err, "write bad key")

	store, err := keystore.NewDirectory(logger.New("keystore"), dir, true)
	if !assert.Nil(t, err, "new directory") {
		return
	}

	accounts := store.Accounts()
	if assert.Equal(t, 1, len(accounts), "only the valid test key") {
		assert.Equal(t, k1.Account().Bytes(), accounts[0].Bytes(), "account")
	}

	bg := background.Start(background.Processes{store}, nil)
	defer bg.Stop()

	k2 := newKey(t, true)
	writeKey(t, dir, "two.private", k2)

	assert.True(t, waitFor(func() bool {
		return 2 == len(store.Accounts())
	}), "reload after create")

	_, err = store.Sign(k2.Account(), []byte("x"))
	assert.Nil(t, err, "sign with new key")

	assert.Nil(t, os.Remove(filepath.Join(dir, "one.private")), "remove")
	assert.True(t, waitFor(func() bool {
		return 1 == len(store.Accounts())
	}), "reload after remove")
}

func TestDirectoryMissing(t *testing.T) {
	_, err := keystore.NewDirectory(logger.New("keystore"), filepath.Join(os.TempDir(), "oracled-no-such-key-dir"), true)
	assert.NotNil(t, err, "missing directory")

	_, err = keystore.NewDirectory(nil, os.TempDir(), true)
	assert.Equal(t, fault.ErrInvalidLoggerChannel, err, "nil logger")
}
