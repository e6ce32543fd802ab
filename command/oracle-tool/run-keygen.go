// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io/ioutil"
	"os"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/oracled/account"
	"github.com/bitmark-inc/oracled/fault"
	"github.com/bitmark-inc/oracled/util"
)

type keygenResult struct {
	Account    *account.Account    `json:"account"`
	PrivateKey *account.PrivateKey `json:"privateKey,omitempty"`
	File       string              `json:"file,omitempty"`
}

func runKeygen(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	key, err := account.NewKey(m.testnet)
	if nil != err {
		return err
	}

	output := c.String("output")
	if "" == output {
		return printJson(m.w, keygenResult{
			Account:    key.Account(),
			PrivateKey: key,
		})
	}

	if util.EnsureFileExists(output) {
		return fault.ErrKeyFileAlreadyExists
	}
	err = ioutil.WriteFile(output, []byte(key.String()+"\n"), 0600)
	if nil != err {
		os.Remove(output)
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "wrote private key: %q\n", output)
	}

	return printJson(m.w, keygenResult{
		Account: key.Account(),
		File:    output,
	})
}
