// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration_test

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/oracled/configuration"
	"github.com/bitmark-inc/oracled/fault"
)

type databaseType struct {
	Directory string `gluamapper:"directory"`
	Name      string `gluamapper:"name"`
}

type testConfiguration struct {
	DataDirectory string       `gluamapper:"data_directory"`
	Chain         string       `gluamapper:"chain"`
	Interval      uint64       `gluamapper:"block_interval"`
	Rate          float64      `gluamapper:"requests_per_second"`
	Database      databaseType `gluamapper:"database"`
}

func writeFile(t *testing.T, text string) (string, func()) {
	dir, err := ioutil.TempDir("", "oracled-configuration")
	if nil != err {
		t.Fatalf("temp dir error: %s", err)
	}
	name := filepath.Join(dir, "oracled.conf")
	err = ioutil.WriteFile(name, []byte(text), 0600)
	if nil != err {
		t.Fatalf("write file error: %s", err)
	}
	return name, func() {
		os.RemoveAll(dir)
	}
}

func TestParseConfigurationFile(t *testing.T) {
	name, cleanup := writeFile(t, `
local M = {}
M.data_directory = arg[0]:match("(.*)/")
M.chain = chain_name
M.block_interval = 30
M.requests_per_second = 0.5
M.database = {
    name = "oracle.leveldb",
}
return M
`)
	defer cleanup()

	config := testConfiguration{
		Interval: 10,
		Database: databaseType{
			Directory: "data",
			Name:      "default.leveldb",
		},
	}
	err := configuration.ParseConfigurationFile(name, &config, map[string]string{
		"chain_name": "testing",
	})
	assert.Nil(t, err, "parse")

	assert.Equal(t, filepath.Dir(name), config.DataDirectory, "arg[0] is the file")
	assert.Equal(t, "testing", config.Chain, "variable")
	assert.Equal(t, uint64(30), config.Interval, "interval")
	assert.Equal(t, 0.5, config.Rate, "rate")
	assert.Equal(t, "data", config.Database.Directory, "default kept")
	assert.Equal(t, "oracle.leveldb", config.Database.Name, "overridden")
}

func TestParseConfigurationFileErrors(t *testing.T) {
	notTable, cleanup := writeFile(t, `return "nothing"`)
	defer cleanup()

	config := testConfiguration{}
	err := configuration.ParseConfigurationFile(notTable, &config, nil)
	assert.Equal(t, fault.ErrConfigurationNotTable, err, "not a table")

	err = configuration.ParseConfigurationFile(notTable, config, nil)
	assert.Equal(t, fault.ErrInvalidStructPointer, err, "not a pointer")

	broken, cleanup2 := writeFile(t, `return {`)
	defer cleanup2()

	err = configuration.ParseConfigurationFile(broken, &config, nil)
	assert.NotNil(t, err, "syntax error")

	err = configuration.ParseConfigurationFile(filepath.Join(os.TempDir(), "oracled-missing.conf"), &config, nil)
	assert.NotNil(t, err, "missing file")
}
