// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/bitmark-inc/avlindex/fault"
)

const defaultInputError = "Value must be an integer"

// whitespace separated words read a line at a time
type tokenReader struct {
	in      *bufio.Reader
	pending []string
}

func newTokenReader(in io.Reader) *tokenReader {
	return &tokenReader{
		in: bufio.NewReader(in),
	}
}

// next word, reading more lines as needed
func (r *tokenReader) next() (string, error) {
	for 0 == len(r.pending) {
		line, err := r.in.ReadString('\n')
		r.pending = strings.Fields(line)
		if 0 != len(r.pending) {
			break
		}
		if io.EOF == err {
			return "", fault.ErrEndOfInput
		}
		if nil != err {
			return "", err
		}
	}
	token := r.pending[0]
	r.pending = r.pending[1:]
	return token, nil
}

// throw away the rest of the current line
func (r *tokenReader) discardLine() {
	r.pending = nil
}

// predicate for input
type acceptable func(int64) bool

func anyValue(int64) bool {
	return true
}

func between(low int64, high int64) acceptable {
	return func(v int64) bool {
		return low <= v && v <= high
	}
}

// prompt until a word is read that is an integer satisfying accept
func (m *Menu) input(message string, errorMessage string, accept acceptable) (int64, error) {
	if "" == errorMessage {
		errorMessage = defaultInputError
	}
	if nil == accept {
		accept = anyValue
	}
	for {
		m.println(message)
		token, err := m.tokens.next()
		if nil != err {
			return 0, err
		}
		if m.echo {
			m.println(token)
		}

		value, err := strconv.ParseInt(token, 10, 64)
		if nil == err && accept(value) {
			return value, nil
		}
		m.log.Debugf("rejected input: %q", token)
		m.tokens.discardLine()
		m.println(errorMessage)
	}
}
