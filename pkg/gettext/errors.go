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

package gettext

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidFormat is returned for any grammar violation in PO text
	ErrInvalidFormat = errors.New("invalid po format")
	// ErrEmpty is returned when PO text holds no message at all
	ErrEmpty = errors.New("no messages found")
	// ErrUnknownIdentity means an entry references an id missing from the identity table
	ErrUnknownIdentity = errors.New("unknown message identity")
	// ErrEmptyTranslation means an entry has no translation string, not even an empty one
	ErrEmptyTranslation = errors.New("entry without translations")
	ErrPathNotAbsolute  = errors.New("path must be absolute")
	ErrUnknownLocale    = errors.New("unknown locale")
	ErrDuplicateKey     = errors.New("message key already in use")
)

// ParseError locates a format error in the parsed text
type ParseError struct {
	Line int
	Text string
	Err  error
}

func (e *ParseError) Error() string {
	if e.Text == "" {
		return fmt.Sprintf("line %d: %s", e.Line, e.Err)
	}
	return fmt.Sprintf("line %d: %s: %q", e.Line, e.Err, e.Text)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

func wrapf(err error, format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", err, fmt.Sprintf(format, args...))
}
