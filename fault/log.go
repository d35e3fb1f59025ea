// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

import (
	"fmt"
	"runtime"
	"sync"
	"time"

	"github.com/bitmark-inc/logger"
)

// name of the logger channel used for fatal messages
const panicTag = "PANIC"

// hold a logger channel
var (
	lock sync.Mutex
	log  *logger.L
)

// Initialise - setup a log channel for last attempt to log something
//
// must be called after logger.Initialise; before that, messages go to
// stdout
func Initialise() error {
	lock.Lock()
	defer lock.Unlock()

	if nil != log {
		return ErrAlreadyInitialised
	}
	log = logger.New(panicTag)
	if nil == log {
		return ErrInvalidLoggerChannel
	}
	return nil
}

// Finalise - flush any data and release the channel
func Finalise() error {
	lock.Lock()
	defer lock.Unlock()

	if nil == log {
		return ErrNotInitialised
	}
	log.Flush()
	log = nil
	return nil
}

// Critical - log a simple string with the caller's position
func Critical(message string) {
	if _, file, line, ok := runtime.Caller(1); ok {
		internalCriticalf("(%q:%d) "+message, file, line)
	} else {
		internalCriticalf("%s", message)
	}
}

// Criticalf - log a formatted string with arguments like fmt.Sprintf()
func Criticalf(format string, arguments ...interface{}) {
	criticalf(2, format, arguments...)
}

// Panicf - log a formatted message then panic
//
// used when an internal invariant is found broken and continuing
// would corrupt data
func Panicf(format string, arguments ...interface{}) {
	criticalf(2, format, arguments...)
	Panic(fmt.Sprintf(format, arguments...))
}

// Panic - final panic
func Panic(message string) {
	internalCriticalf("abort: %s", message)
	if nil != current() {
		time.Sleep(100 * time.Millisecond) // to allow logging output
	}
	panic(message)
}

// prefix the position of the caller that is skip frames up
func criticalf(skip int, format string, arguments ...interface{}) {
	if _, file, line, ok := runtime.Caller(skip); ok {
		a := make([]interface{}, 2, 2+len(arguments))
		a[0] = file
		a[1] = line
		a = append(a, arguments...)
		internalCriticalf("(%q:%d) "+format, a...)
	} else {
		internalCriticalf(format, arguments...)
	}
}

func current() *logger.L {
	lock.Lock()
	defer lock.Unlock()
	return log
}

// internal routines to handle uninitialised logger channel
func internalCriticalf(format string, arguments ...interface{}) {
	l := current()
	if nil == l {
		fmt.Printf("*** "+format+"\n", arguments...)
	} else {
		l.Criticalf(format, arguments...)
		l.Flush() // make sure log file is saved
	}
}
