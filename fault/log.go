// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

import (
	"fmt"
	"runtime"
	"time"

	"github.com/bitmark-inc/logger"
)

// channel for the message written just before an unrecoverable stop
var log *logger.L

// Initialise - open the channel used to record fatal storage faults
func Initialise() error {
	if nil != log {
		return ErrAlreadyInitialised
	}
	log = logger.New("fatal")
	if nil == log {
		return ErrInvalidLoggerChannel
	}
	return nil
}

// Finalise - flush the fatal channel
func Finalise() {
	if nil != log {
		log.Flush()
	}
}

// Panicf - record the caller's position and message, then panic
func Panicf(format string, arguments ...interface{}) {
	message := fmt.Sprintf(format, arguments...)
	if _, file, line, ok := runtime.Caller(1); ok {
		record("(%q:%d) %s", file, line, message)
	} else {
		record("%s", message)
	}
	time.Sleep(100 * time.Millisecond) // let the log writer catch up
	panic(message)
}

// PanicIfError - panic when a database operation failed
func PanicIfError(operation string, err error) {
	if nil == err {
		return
	}
	Panicf("%s failed with error: %s", operation, err)
}

func record(format string, arguments ...interface{}) {
	if nil == log {
		fmt.Printf("*** "+format+"\n", arguments...)
		return
	}
	log.Criticalf(format, arguments...)
	log.Flush()
}
