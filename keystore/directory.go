// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package keystore

import (
	"io/ioutil"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/oracled/account"
	"github.com/bitmark-inc/oracled/fault"
)

// file extension of a key file, contents are a base58 private key
const keyFileExtension = ".private"

// Directory - keys loaded from files in a directory
//
// Run watches the directory and reloads whenever a key file changes
type Directory struct {
	Memory

	log       *logger.L
	directory string
	testing   bool
	watcher   *fsnotify.Watcher
}

// NewDirectory - load all key files in a directory
//
// keys for the other network are skipped
func NewDirectory(log *logger.L, directory string, testing bool) (*Directory, error) {
	if nil == log {
		return nil, fault.ErrInvalidLoggerChannel
	}

	watcher, err := fsnotify.NewWatcher()
	if nil != err {
		log.Errorf("new watcher with error: %s", err)
		return nil, err
	}

	err = watcher.Add(directory)
	if nil != err {
		log.Errorf("watch directory: %q  error: %s", directory, err)
		watcher.Close()
		return nil, err
	}

	d := &Directory{
		log:       log,
		directory: directory,
		testing:   testing,
		watcher:   watcher,
	}

	_, err = d.Reload()
	if nil != err {
		watcher.Close()
		return nil, err
	}
	return d, nil
}

// Reload - read all key files again, returns the number loaded
func (d *Directory) Reload() (int, error) {
	names, err := filepath.Glob(filepath.Join(d.directory, "*"+keyFileExtension))
	if nil != err {
		return 0, err
	}

	keys := make([]*account.PrivateKey, 0, len(names))
	for _, name := range names {
		data, err := ioutil.ReadFile(name)
		if nil != err {
			d.log.Warnf("read key file: %q  error: %s", name, err)
			continue
		}
		key, err := account.PrivateKeyFromBase58(strings.TrimSpace(string(data)))
		if nil != err {
			d.log.Warnf("key file: %q  error: %s", name, err)
			continue
		}
		if key.IsTesting() != d.testing {
			d.log.Warnf("key file: %q  error: %s", name, fault.ErrWrongNetworkForAccount)
			continue
		}
		keys = append(keys, key)
	}

	d.replace(keys)
	d.log.Infof("loaded: %d keys from: %q", len(keys), d.directory)
	return len(keys), nil
}

// Run - background process reloading on directory changes
func (d *Directory) Run(args interface{}, shutdown <-chan struct{}) {

	log := d.log

	log.Info("starting…")

loop:
	for {
		select {
		case <-shutdown:
			break loop

		case event, ok := <-d.watcher.Events:
			if !ok {
				break loop
			}
			if !isKeyFileEvent(event) {
				continue loop
			}
			log.Infof("file event: %v", event)
			_, err := d.Reload()
			if nil != err {
				log.Errorf("reload error: %s", err)
			}

		case err, ok := <-d.watcher.Errors:
			if !ok {
				break loop
			}
			log.Errorf("watcher error: %s", err)
		}
	}
	d.watcher.Close()

	log.Info("finished")
}

func isKeyFileEvent(event fsnotify.Event) bool {
	if keyFileExtension != filepath.Ext(event.Name) {
		return false
	}
	return 0 != event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename)
}
