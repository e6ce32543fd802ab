// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/oracled/account"
	"github.com/bitmark-inc/oracled/chain"
	"github.com/bitmark-inc/oracled/fault"
	"github.com/bitmark-inc/oracled/ledger"
	"github.com/bitmark-inc/oracled/util"
)

const (
	keyFileExtension = ".private"
)

// setup command handler
//
// commands that need neither the configuration file nor the database
func processSetupCommand(program string, arguments []string) bool {

	command := "help"
	if len(arguments) > 0 {
		command = arguments[0]
	}

	switch command {
	case "version", "v":
		fmt.Printf("%s\n", version)

	case "start", "run", "config-test", "cfg", "generate-key", "key", "state", "s":
		return false

	default:
		switch command {
		case "help", "h", "?":
		case "", " ":
			fmt.Printf("error: missing command\n")
		default:
			fmt.Printf("error: no such command: %q\n", command)
		}

		fmt.Printf("usage: %s [--help] [--verbose] [--quiet] --config-file=FILE [[command|help] arguments...]", program)

		fmt.Printf("supported commands:\n\n")
		fmt.Printf("  help                       (h)      - display this message\n\n")
		fmt.Printf("  version                    (v)      - display version sting\n\n")

		fmt.Printf("  generate-key NAME          (key)    - create a signing key in the keys directory\n")
		fmt.Printf("                                        for the configured chain as: %q\n", "NAME"+keyFileExtension)
		fmt.Printf("\n")

		fmt.Printf("  start                      (run)    - just run the program, same as no arguments\n")
		fmt.Printf("                                        for convienience when passing script arguments\n")
		fmt.Printf("\n")

		fmt.Printf("  config-test                (cfg)    - just check the configuration file\n")
		fmt.Printf("\n")

		fmt.Printf("  state                      (s)      - display the committed ledger state\n")
		fmt.Printf("\n")

		exitwithstatus.Exit(1)
	}

	// indicate processing complete and perform normal exit from main
	return true
}

// configuration file enquiry commands
// have configuration file read and decoded, but nothing else
func processConfigCommand(arguments []string, options *Configuration) bool {

	command := "help"
	if len(arguments) > 0 {
		command = arguments[0]
		arguments = arguments[1:]
	}

	switch command {
	case "generate-key", "key":
		if len(arguments) < 1 || "" == arguments[0] {
			exitwithstatus.Message("missing key name argument")
		}
		if filepath.Base(arguments[0]) != arguments[0] {
			exitwithstatus.Message("key name: %q  error: %s", arguments[0], fault.ErrNotPlainFileName)
		}
		fileName := filepath.Join(options.Keys.Directory, arguments[0]+keyFileExtension)

		acc, err := makeSigningKey(chain.IsTesting(options.Chain), fileName)
		if nil != err {
			exitwithstatus.Message("generate signing key: %q  error: %s", fileName, err)
		}
		fmt.Printf("generated signing key: %q\n", fileName)
		fmt.Printf("account: %s\n", acc)

	case "config-test", "cfg":
		b, err := json.Marshal(options)
		if err != nil {
			exitwithstatus.Message("error: %s", err)
		}
		var out bytes.Buffer
		json.Indent(&out, b, "", "  ")
		out.WriteTo(os.Stdout)
		os.Stdout.WriteString("\n")

	default: // unknown commands fall through to data command
		return false
	}

	// indicate processing complete and perform normal exit from main
	return true
}

// data command handler
// storage is open so these commands can read the ledger
func processDataCommand(log *logger.L, arguments []string, store *ledger.Store) bool {

	command := "run"
	if len(arguments) > 0 {
		command = arguments[0]
	}

	switch command {

	case "start", "run":
		return false // continue processing

	case "state", "s":
		state := store.Current()
		log.Infof("state: %+v", state)

		b, err := json.MarshalIndent(state, "", "  ")
		if nil != err {
			exitwithstatus.Message("state JSON error: %s", err)
		}
		fmt.Printf("%s\n", b)

	default:
		exitwithstatus.Message("error: no such command: %q", command)
	}

	// indicate processing complete and perform normal exit from main
	return true
}

// create a new private key file, never overwriting an existing one
func makeSigningKey(testnet bool, fileName string) (*account.Account, error) {
	if util.EnsureFileExists(fileName) {
		return nil, fault.ErrKeyFileAlreadyExists
	}

	key, err := account.NewKey(testnet)
	if nil != err {
		return nil, err
	}

	if err = ioutil.WriteFile(fileName, []byte(key.String()+"\n"), 0600); nil != err {
		os.Remove(fileName)
		return nil, err
	}
	return key.Account(), nil
}
