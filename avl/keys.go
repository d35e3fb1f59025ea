// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"strconv"
	"strings"
)

// Int - signed integer key
type Int int64

// Compare - total order on Int
func (i Int) Compare(x interface{}) int {
	j := x.(Int)
	switch {
	case i < j:
		return -1
	case i > j:
		return +1
	default:
		return 0
	}
}

func (i Int) String() string {
	return strconv.FormatInt(int64(i), 10)
}

// String - byte-wise ordered string key
type String string

// Compare - total order on String
func (s String) Compare(x interface{}) int {
	return strings.Compare(string(s), string(x.(String)))
}

func (s String) String() string {
	return string(s)
}
