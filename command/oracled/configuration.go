// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/oracled/chain"
	"github.com/bitmark-inc/oracled/configuration"
	"github.com/bitmark-inc/oracled/constants"
	"github.com/bitmark-inc/oracled/fault"
	"github.com/bitmark-inc/oracled/feed"
	"github.com/bitmark-inc/oracled/ledger"
	"github.com/bitmark-inc/oracled/util"
)

// basic defaults (directories and files are relative to the "DataDirectory" from Configuration file)
const (
	defaultDataDirectory = "" // this will error; use "." for the same directory as the config file

	defaultLevelDBDirectory = "data"
	defaultLiveDatabase     = chain.Live + ".leveldb"
	defaultTestingDatabase  = chain.Testing + ".leveldb"
	defaultLocalDatabase    = chain.Local + ".leveldb"

	defaultKeysDirectory = "keys"
	defaultReservoirFile = "reservoir.cache"

	defaultLogDirectory = "log"
	defaultLogFile      = "oracled.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size
)

// path expanded or calculated defaults
var (
	defaultLogLevels = map[string]string{
		logger.DefaultTag: "critical",
	}
)

// DatabaseType - location of the LevelDB files
type DatabaseType struct {
	Directory string `gluamapper:"directory" json:"directory"`
	Name      string `gluamapper:"name" json:"name"`
}

// OracleType - price feed and issuance settings
type OracleType struct {
	URL               string  `gluamapper:"url" json:"url"`
	Currency          string  `gluamapper:"currency" json:"currency"`
	ExchangeRate      uint64  `gluamapper:"exchange_rate" json:"exchange_rate"`
	UnsignedInterval  uint64  `gluamapper:"unsigned_interval" json:"unsigned_interval"`
	UnsignedPriority  uint64  `gluamapper:"unsigned_priority" json:"unsigned_priority"`
	SignedPriority    uint64  `gluamapper:"signed_priority" json:"signed_priority"`
	Longevity         uint64  `gluamapper:"longevity" json:"longevity"`
	Timeout           uint64  `gluamapper:"timeout" json:"timeout"`
	RequestsPerSecond float64 `gluamapper:"requests_per_second" json:"requests_per_second"`
}

// LedgerType - genesis values
type LedgerType struct {
	InitialSupply uint64 `gluamapper:"initial_supply" json:"initial_supply"`
}

// KeysType - where the signing keys live
type KeysType struct {
	Directory string `gluamapper:"directory" json:"directory"`
}

// Configuration - the whole daemon setup
type Configuration struct {
	DataDirectory string       `gluamapper:"data_directory" json:"data_directory"`
	PidFile       string       `gluamapper:"pidfile" json:"pidfile"`
	Chain         string       `gluamapper:"chain" json:"chain"`
	Database      DatabaseType `gluamapper:"database" json:"database"`
	ReservoirFile string       `gluamapper:"reservoir_file" json:"reservoir_file"`
	BlockInterval uint64       `gluamapper:"block_interval" json:"block_interval"`

	Oracle  OracleType           `gluamapper:"oracle" json:"oracle"`
	Ledger  LedgerType           `gluamapper:"ledger" json:"ledger"`
	Keys    KeysType             `gluamapper:"keys" json:"keys"`
	Logging logger.Configuration `gluamapper:"logging" json:"logging"`
}

// will read decode and verify the configuration
func getConfiguration(configurationFileName string, variables map[string]string) (*Configuration, error) {

	configurationFileName, err := filepath.Abs(filepath.Clean(configurationFileName))
	if nil != err {
		return nil, err
	}

	// absolute path to the main directory
	dataDirectory, _ := filepath.Split(configurationFileName)

	options := &Configuration{

		DataDirectory: defaultDataDirectory,
		PidFile:       "", // no PidFile by default
		Chain:         chain.Live,
		ReservoirFile: defaultReservoirFile,
		BlockInterval: uint64(constants.DefaultBlockInterval / time.Second),

		Database: DatabaseType{
			Directory: defaultLevelDBDirectory,
			Name:      defaultLiveDatabase,
		},

		Oracle: OracleType{
			Currency:          constants.DefaultCurrency,
			ExchangeRate:      constants.DefaultExchangeRate,
			UnsignedInterval:  constants.DefaultUnsignedInterval,
			UnsignedPriority:  constants.DefaultUnsignedPriority,
			SignedPriority:    constants.DefaultSignedPriority,
			Longevity:         constants.DefaultLongevity,
			Timeout:           uint64(constants.DefaultFetchTimeout / time.Second),
			RequestsPerSecond: constants.DefaultRequestsPerSecond,
		},

		Ledger: LedgerType{
			InitialSupply: constants.DefaultInitialSupply,
		},

		Keys: KeysType{
			Directory: defaultKeysDirectory,
		},

		Logging: logger.Configuration{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Levels:    defaultLogLevels,
		},
	}

	if err := configuration.ParseConfigurationFile(configurationFileName, options, variables); err != nil {
		return nil, err
	}

	// if any test mode and the database file was not specified
	// switch to appropriate default.  Abort if then chain name is
	// not recognised.
	options.Chain = strings.ToLower(options.Chain)
	if !chain.Valid(options.Chain) {
		return nil, fmt.Errorf("chain: %q  error: %s", options.Chain, fault.ErrInvalidChain)
	}

	// if database was not changed from default
	if options.Database.Name == defaultLiveDatabase {
		switch options.Chain {
		case chain.Live:
			// already correct default
		case chain.Testing:
			options.Database.Name = defaultTestingDatabase
		case chain.Local:
			options.Database.Name = defaultLocalDatabase
		}
	}

	if "" == options.Oracle.URL {
		return nil, fault.ErrMissingFeedURL
	}
	if 0 == options.Oracle.ExchangeRate {
		return nil, fault.ErrInvalidExchangeRate
	}
	if 0 == options.Oracle.UnsignedInterval {
		options.Oracle.UnsignedInterval = constants.DefaultUnsignedInterval
	}
	if 0 == options.BlockInterval {
		options.BlockInterval = uint64(constants.DefaultBlockInterval / time.Second)
	}

	// ensure absolute data directory
	if "" == options.DataDirectory || "~" == options.DataDirectory {
		return nil, fmt.Errorf("path: %q  error: %s", options.DataDirectory, fault.ErrInvalidDataDirectory)
	} else if "." == options.DataDirectory {
		options.DataDirectory = dataDirectory // same directory as the configuration file
	} else {
		options.DataDirectory = filepath.Clean(options.DataDirectory)
	}

	// this directory must exist - i.e. must be created prior to running
	if fileInfo, err := os.Stat(options.DataDirectory); nil != err {
		return nil, err
	} else if !fileInfo.IsDir() {
		return nil, fmt.Errorf("path: %q  error: %s", options.DataDirectory, fault.ErrInvalidDataDirectory)
	}

	// force all relevant items to be absolute paths
	// if not, assign them to the data directory
	mustBeAbsolute := []*string{
		&options.Database.Directory,
		&options.ReservoirFile,
		&options.Keys.Directory,
		&options.Logging.Directory,
	}
	for _, f := range mustBeAbsolute {
		*f = util.EnsureAbsolute(options.DataDirectory, *f)
	}

	// optional absolute paths i.e. blank or an absolute path
	optionalAbsolute := []*string{
		&options.PidFile,
	}
	for _, f := range optionalAbsolute {
		if "" != *f {
			*f = util.EnsureAbsolute(options.DataDirectory, *f)
		}
	}

	// fail if any of these are not simple file names i.e. must
	// not contain path seperator, then add the correct directory
	// prefix, file item is first and corresponding directory is
	// second (or nil if no prefix can be added)
	mustNotBePaths := [][2]*string{
		{&options.Database.Name, &options.Database.Directory},
		{&options.Logging.File, nil},
	}
	for _, f := range mustNotBePaths {
		switch filepath.Dir(*f[0]) {
		case "", ".":
			if nil != f[1] {
				*f[0] = util.EnsureAbsolute(*f[1], *f[0])
			}
		default:
			return nil, fmt.Errorf("file: %q  error: %s", *f[0], fault.ErrNotPlainFileName)
		}
	}

	// make absolute and create directories if they do not already exist
	for _, d := range []*string{
		&options.Database.Directory,
		&options.Keys.Directory,
		&options.Logging.Directory,
	} {
		*d = util.EnsureAbsolute(options.DataDirectory, *d)
		if err := os.MkdirAll(*d, 0700); nil != err {
			return nil, err
		}
	}

	// done
	return options, nil
}

// Parameters - the ledger parameters from the oracle section
func (c *Configuration) Parameters() ledger.Parameters {
	return ledger.Parameters{
		Currency:         c.Oracle.Currency,
		ExchangeRate:     c.Oracle.ExchangeRate,
		UnsignedInterval: c.Oracle.UnsignedInterval,
		UnsignedPriority: c.Oracle.UnsignedPriority,
		SignedPriority:   c.Oracle.SignedPriority,
		Longevity:        c.Oracle.Longevity,
		Testing:          chain.IsTesting(c.Chain),
	}
}

// Feed - the fetcher settings from the oracle section
func (c *Configuration) Feed() feed.Configuration {
	return feed.Configuration{
		URL:               c.Oracle.URL,
		Timeout:           time.Duration(c.Oracle.Timeout) * time.Second,
		RequestsPerSecond: c.Oracle.RequestsPerSecond,
	}
}
