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

package error

import (
	"errors"

	"github.com/rancher-sandbox/pocat/pkg/gettext"
)

// CatalogError is our custom error to pass around exit codes in the error
type CatalogError struct {
	err  error
	code int
}

func (e *CatalogError) Error() string {
	return e.err.Error()
}

func (e *CatalogError) Unwrap() error {
	return e.err
}

func (e *CatalogError) ExitCode() int {
	return e.code
}

// NewFromError generates a CatalogError from an existing error,
// maintaining its error chain
func NewFromError(err error, code int) error {
	if err == nil {
		return nil
	}
	var catErr *CatalogError
	if errors.As(err, &catErr) {
		return err
	}
	return &CatalogError{err: err, code: code}
}

// New generates a CatalogError from a string
func New(err string, code int) error {
	return &CatalogError{err: errors.New(err), code: code}
}

// FromCatalog maps catalog sentinel errors to their exit code, fallback is
// used for anything else
func FromCatalog(err error, fallback int) error {
	if err == nil {
		return nil
	}
	switch {
	case errors.Is(err, gettext.ErrPathNotAbsolute):
		return NewFromError(err, PathNotAbsolute)
	case errors.Is(err, gettext.ErrInvalidFormat), errors.Is(err, gettext.ErrEmpty):
		return NewFromError(err, InvalidFormat)
	case errors.Is(err, gettext.ErrUnknownLocale):
		return NewFromError(err, UnknownLocale)
	case errors.Is(err, gettext.ErrUnknownIdentity):
		return NewFromError(err, UnknownMessage)
	case errors.Is(err, gettext.ErrDuplicateKey):
		return NewFromError(err, DuplicateKey)
	}
	return NewFromError(err, fallback)
}
