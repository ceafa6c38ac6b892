// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package fsx provides small helpers for locating configuration and
// asset files through the [fs.FS] interface.
package fsx

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/mitchellh/go-homedir"
)

// ExpandHome expands a leading ~ in the given path to the
// user's home directory.
func ExpandHome(fpath string) (string, error) {
	return homedir.Expand(fpath)
}

// DirFS returns the directory part of given file path as an os.DirFS
// and the filename as a string. These can then be used to access the file
// using the FS-based interface, consistent with embed and other use-cases.
// A leading ~ is expanded to the home directory.
func DirFS(fpath string) (fs.FS, string, error) {
	fpath, err := ExpandHome(fpath)
	if err != nil {
		return nil, "", err
	}
	fabs, err := filepath.Abs(fpath)
	if err != nil {
		return nil, "", err
	}
	dir, fname := filepath.Split(fabs)
	dfs := os.DirFS(dir)
	return dfs, fname, nil
}

// FileExistsFS checks whether given file exists, returning true if so,
// false if not, and error if there is an error in accessing the file.
func FileExistsFS(fsys fs.FS, filePath string) (bool, error) {
	if fsys, ok := fsys.(fs.StatFS); ok {
		fileInfo, err := fsys.Stat(filePath)
		if err == nil {
			return !fileInfo.IsDir(), nil
		}
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	fp, err := fsys.Open(filePath)
	if err == nil {
		fp.Close()
		return true, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, err
}
