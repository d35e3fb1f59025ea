// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package fault - error instances
//
// Provides a single instance of errors to allow easy comparison
// without having to resort to partial string matches.  Errors are
// grouped in classes (exists, invalid, not found, process, range)
// that can be tested with the IsErrX functions.
//
// Also holds the PANIC logger channel used to record the reason for
// aborting when an internal consistency check fails.
package fault
