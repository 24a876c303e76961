/*
Copyright © 2022 - 2025 SUSE LLC

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package utils

import (
	"os"
	"path/filepath"

	"github.com/twpayne/go-vfs"

	"github.com/rancher-sandbox/pocat/pkg/constants"
	v1 "github.com/rancher-sandbox/pocat/pkg/types/v1"
)

// Exists checks if a file or directory exists.
func Exists(fs v1.FS, path string) (bool, error) {
	_, err := fs.Stat(path)
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, err
}

// IsDir check if the path is a dir
func IsDir(fs v1.FS, path string) (bool, error) {
	fi, err := fs.Stat(path)
	if err != nil {
		return false, err
	}
	return fi.IsDir(), nil
}

// MkdirAll directory and all parents if not existing
func MkdirAll(fs v1.FS, name string, mode os.FileMode) error {
	return vfs.MkdirAll(fs, name, mode)
}

// WriteFile writes data at path creating the parent directories first
func WriteFile(fs v1.FS, path string, data []byte) error {
	if err := MkdirAll(fs, filepath.Dir(path), constants.DirPerm); err != nil {
		return err
	}
	return fs.WriteFile(path, data, constants.FilePerm)
}

// FileSize returns the size of the file at path, or zero if it can not be stat'ed
func FileSize(fs v1.FS, path string) int64 {
	fi, err := fs.Stat(path)
	if err != nil {
		return 0
	}
	return fi.Size()
}
