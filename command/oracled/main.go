// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/getoptions"
	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/oracled/background"
	"github.com/bitmark-inc/oracled/block"
	"github.com/bitmark-inc/oracled/executor"
	"github.com/bitmark-inc/oracled/fault"
	"github.com/bitmark-inc/oracled/feed"
	"github.com/bitmark-inc/oracled/keystore"
	"github.com/bitmark-inc/oracled/ledger"
	"github.com/bitmark-inc/oracled/reservoir"
	"github.com/bitmark-inc/oracled/scheduler"
	"github.com/bitmark-inc/oracled/signer"
	"github.com/bitmark-inc/oracled/storage"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

// main program
func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	flags := []getoptions.Option{
		{Long: "help", HasArg: getoptions.NO_ARGUMENT, Short: 'h'},
		{Long: "verbose", HasArg: getoptions.NO_ARGUMENT, Short: 'v'},
		{Long: "quiet", HasArg: getoptions.NO_ARGUMENT, Short: 'q'},
		{Long: "version", HasArg: getoptions.NO_ARGUMENT, Short: 'V'},
		{Long: "config-file", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'c'},
	}

	program, options, arguments, err := getoptions.GetOS(flags)
	if nil != err {
		exitwithstatus.Message("%s: getoptions error: %s", program, err)
	}

	if len(options["version"]) > 0 {
		processSetupCommand(program, []string{"version"})
		return
	}

	if len(options["help"]) > 0 {
		processSetupCommand(program, []string{"help"})
		return
	}

	// these commands do not require the configuration
	if len(arguments) > 0 && processSetupCommand(program, arguments) {
		return
	}

	if 1 != len(options["config-file"]) {
		exitwithstatus.Message("%s: only one config-file option is required, %d were detected", program, len(options["config-file"]))
	}

	// read options and parse the configuration file
	configurationFile := options["config-file"][0]
	theConfiguration, err := getConfiguration(configurationFile, map[string]string{})
	if nil != err {
		exitwithstatus.Message("%s: failed to read configuration from: %q  error: %s", program, configurationFile, err)
	}

	// these commands require the configuration and
	// perform enquiries on the configuration
	if len(arguments) > 0 && processConfigCommand(arguments, theConfiguration) {
		return
	}

	// start logging
	if err = logger.Initialise(theConfiguration.Logging); nil != err {
		exitwithstatus.Message("%s: logger setup failed with error: %s", program, err)
	}
	defer logger.Finalise()

	if err = fault.Initialise(); nil != err {
		exitwithstatus.Message("%s: fault logger setup failed with error: %s", program, err)
	}
	defer fault.Finalise()

	// create a logger channel for the main program
	log := logger.New("main")
	defer log.Info("finished")
	log.Info("starting…")
	log.Infof("version: %s", version)
	log.Debugf("theConfiguration: %v", theConfiguration)

	// ------------------
	// start of real main
	// ------------------

	// optional PID file
	// use if not running under a supervisor program like daemon(8)
	if "" != theConfiguration.PidFile {
		lockFile, err := os.OpenFile(theConfiguration.PidFile, os.O_WRONLY|os.O_EXCL|os.O_CREATE, os.ModeExclusive|0600)
		if err != nil {
			if os.IsExist(err) {
				exitwithstatus.Message("%s: another instance is already running", program)
			}
			exitwithstatus.Message("%s: PID file: %q creation failed, error: %s", program, theConfiguration.PidFile, err)
		}
		fmt.Fprintf(lockFile, "%d\n", os.Getpid())
		lockFile.Close()
		defer os.Remove(theConfiguration.PidFile)
	}

	params := theConfiguration.Parameters()

	// general info
	log.Infof("chain: %s  test mode: %v", theConfiguration.Chain, params.Testing)
	log.Infof("database: %q", theConfiguration.Database)
	log.Debugf("%s = %#v", "Oracle", theConfiguration.Oracle)

	// start the data storage
	log.Info("initialise storage")
	err = storage.Initialise(theConfiguration.Database.Name, storage.ReadWrite)
	if nil != err {
		log.Criticalf("storage initialise error: %s", err)
		exitwithstatus.Message("storage initialise error: %s", err)
	}
	defer storage.Finalise()

	// committed ledger state
	log.Info("initialise ledger")
	store, err := ledger.New(logger.New("ledger"), storage.Pool.Ledger, storage.Pool.Nonces, theConfiguration.Ledger.InitialSupply)
	if nil != err {
		log.Criticalf("ledger initialise error: %s", err)
		exitwithstatus.Message("ledger initialise error: %s", err)
	}

	// these commands are allowed to access the internal database
	if len(arguments) > 0 && processDataCommand(log, arguments, store) {
		return
	}

	// start the reservoir (verified submission cache)
	log.Info("initialise reservoir")
	pool, err := reservoir.New(logger.New("reservoir"), store, params, theConfiguration.ReservoirFile)
	if nil != err {
		log.Criticalf("reservoir initialise error: %s", err)
		exitwithstatus.Message("reservoir initialise error: %s", err)
	}
	defer func() {
		if err := pool.Finalise(); nil != err {
			log.Errorf("reservoir finalise error: %s", err)
		}
	}()

	// restore any previously saved submissions before new heights
	n, err := pool.LoadFromFile()
	if nil != err {
		log.Criticalf("reservoir reload error: %s", err)
		exitwithstatus.Message("reservoir reload error: %s", err)
	}
	log.Infof("reservoir restored: %d submissions", n)

	exec, err := executor.New(logger.New("executor"), params)
	if nil != err {
		log.Criticalf("executor initialise error: %s", err)
		exitwithstatus.Message("executor initialise error: %s", err)
	}

	interval := time.Duration(theConfiguration.BlockInterval) * time.Second
	producer, err := block.New(logger.New("block"), interval, store, pool, exec, storage.NewDBTransaction)
	if nil != err {
		log.Criticalf("block initialise error: %s", err)
		exitwithstatus.Message("block initialise error: %s", err)
	}

	fetcher, err := feed.New(logger.New("feed"), theConfiguration.Feed())
	if nil != err {
		log.Criticalf("feed initialise error: %s", err)
		exitwithstatus.Message("feed initialise error: %s", err)
	}

	keys, err := keystore.NewDirectory(logger.New("keystore"), theConfiguration.Keys.Directory, params.Testing)
	if nil != err {
		log.Criticalf("keystore initialise error: %s", err)
		exitwithstatus.Message("keystore initialise error: %s", err)
	}
	if 0 == len(keys.Accounts()) {
		log.Warnf("no signing keys in: %q", theConfiguration.Keys.Directory)
	}

	sign, err := signer.New(logger.New("signer"), keys, pool)
	if nil != err {
		log.Criticalf("signer initialise error: %s", err)
		exitwithstatus.Message("signer initialise error: %s", err)
	}

	sched, err := scheduler.New(logger.New("scheduler"), fetcher, store, pool, sign, params)
	if nil != err {
		log.Criticalf("scheduler initialise error: %s", err)
		exitwithstatus.Message("scheduler initialise error: %s", err)
	}

	processes := background.Processes{
		keys,
		sched,
		producer,
	}
	bg := background.Start(processes, nil)

	// wait for CTRL-C before shutting down to allow manual testing
	if 0 == len(options["quiet"]) {
		fmt.Printf("\n\nWaiting for CTRL-C (SIGINT) or 'kill <pid>' (SIGTERM)…")
	}

	// turn Signals into channel messages
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
	sig := <-ch
	log.Infof("received signal: %v", sig)
	if 0 == len(options["quiet"]) {
		fmt.Printf("\nreceived signal: %v\n", sig)
		fmt.Printf("\nshutting down…\n")
	}

	log.Info("shutting down…")
	bg.Stop()

	log.Infof("scheduler: %+v", sched.ReadCounters())
	log.Infof("block: %+v", producer.ReadCounters())
	log.Infof("reservoir: %+v", pool.ReadCounters())
}
