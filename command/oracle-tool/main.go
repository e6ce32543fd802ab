// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/oracled/constants"
)

type metadata struct {
	database string
	testnet  bool
	verbose  bool
	e        io.Writer
	w        io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {

	app := cli.NewApp()
	app.Name = "oracle-tool"
	app.Usage = "offline administration of an oracled node"
	app.Version = version
	app.HideVersion = true

	app.Writer = os.Stdout
	app.ErrWriter = os.Stderr

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
		cli.BoolFlag{
			Name:  "testnet, t",
			Usage: " use test network accounts",
		},
		cli.StringFlag{
			Name:  "database, d",
			Value: "",
			Usage: " LevelDB `DIRECTORY` of a stopped node",
		},
	}

	supplyFlag := cli.Uint64Flag{
		Name:  "supply, s",
		Value: constants.DefaultInitialSupply,
		Usage: " initial supply `TOKENS` if the database is empty",
	}
	currencyFlag := cli.StringFlag{
		Name:  "currency, c",
		Value: constants.DefaultCurrency,
		Usage: " quote field `KEY` to read",
	}
	rateFlag := cli.Uint64Flag{
		Name:  "rate, r",
		Value: constants.DefaultExchangeRate,
		Usage: " exchange `RATE` in fiat units per token",
	}
	recordFlags := []cli.Flag{
		cli.StringFlag{
			Name:  "id, i",
			Value: "",
			Usage: "*record `ID`",
		},
		cli.StringFlag{
			Name:  "name, n",
			Value: "",
			Usage: " person's `NAME`",
		},
		cli.StringFlag{
			Name:  "company, o",
			Value: "",
			Usage: " `COMPANY` name",
		},
		cli.StringFlag{
			Name:  "dob, b",
			Value: "",
			Usage: "*date of birth `DD-MM-YYYY`",
		},
	}

	app.Commands = []cli.Command{
		{
			Name:      "keygen",
			Usage:     "generate a signing key for the key directory",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "output, o",
					Value: "",
					Usage: " write the private key to `FILE` instead of stdout",
				},
			},
			Action: runKeygen,
		},
		{
			Name:      "convert",
			Usage:     "parse a quote and convert it to tokens",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "quote, q",
					Value: "",
					Usage: "*quote `TEXT` e.g. {USD:100}",
				},
				currencyFlag,
				rateFlag,
			},
			Action: runConvert,
		},
		{
			Name:      "state",
			Usage:     "display the committed ledger state",
			ArgsUsage: " ",
			Flags: []cli.Flag{
				supplyFlag,
			},
			Action: runState,
		},
		{
			Name:      "records",
			Usage:     "list records in id order",
			ArgsUsage: " ",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "start",
					Value: "",
					Usage: " first record `ID`",
				},
				cli.IntFlag{
					Name:  "count",
					Value: 20,
					Usage: " maximum records to list `COUNT`",
				},
			},
			Action: runRecords,
		},
		{
			Name:  "record",
			Usage: "change the record registry",
			Subcommands: []cli.Command{
				{
					Name:      "add",
					Usage:     "add a record credited at the current price",
					ArgsUsage: "\n   (* = required)",
					Flags:     append([]cli.Flag{supplyFlag, currencyFlag, rateFlag}, recordFlags...),
					Action:    runRecordAdd,
				},
				{
					Name:      "update",
					Usage:     "change the personal fields of a record",
					ArgsUsage: "\n   (* = required)",
					Flags:     append([]cli.Flag{supplyFlag}, recordFlags...),
					Action:    runRecordUpdate,
				},
				{
					Name:      "remove",
					Usage:     "delete a record",
					ArgsUsage: "\n   (* = required)",
					Flags: []cli.Flag{
						supplyFlag,
						recordFlags[0],
					},
					Action: runRecordRemove,
				},
			},
		},
	}

	app.Before = func(c *cli.Context) error {
		c.App.Metadata["config"] = &metadata{
			database: c.GlobalString("database"),
			testnet:  c.GlobalBool("testnet"),
			verbose:  c.GlobalBool("verbose"),
			e:        c.App.ErrWriter,
			w:        c.App.Writer,
		}
		return nil
	}

	err := app.Run(os.Args)
	if nil != err {
		fmt.Fprintf(app.ErrWriter, "terminated with error: %s\n", err)
		os.Exit(1)
	}
}
