// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration

import (
	"os"
	"path/filepath"

	"github.com/bitmark-inc/avlindex/fault"
)

// EnsureAbsolute - if path is relative, prefix it with directory
func EnsureAbsolute(directory string, filePath string) string {
	if !filepath.IsAbs(filePath) {
		filePath = filepath.Join(directory, filePath)
	}
	return filepath.Clean(filePath)
}

// EnsureDirectory - make directory absolute relative to base and
// create it if it does not already exist
func EnsureDirectory(base string, directory *string) error {
	*directory = EnsureAbsolute(base, *directory)
	if err := os.MkdirAll(*directory, 0700); nil != err {
		return err
	}
	info, err := os.Stat(*directory)
	if nil != err {
		return err
	}
	if !info.IsDir() {
		return fault.ErrNotADirectory
	}
	return nil
}
