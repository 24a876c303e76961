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
	"strconv"
)

// DefaultContext is the context used for every message without an explicit one.
const DefaultContext = "default"

// MessageKey is the semantic identity of a translatable string, independent of any locale.
// Two keys are the same message when Context and Source match, Plural is informational.
type MessageKey struct {
	Context string `yaml:"context" json:"context"`
	Source  string `yaml:"source" json:"source"`
	Plural  string `yaml:"plural,omitempty" json:"plural,omitempty"`
}

// NewMessageKey returns a key for the given source string, an empty context
// falls back to DefaultContext
func NewMessageKey(context, source, plural string) MessageKey {
	return MessageKey{Context: context, Source: source, Plural: plural}.normalize()
}

// Same reports whether both keys identify the same message
func (k MessageKey) Same(other MessageKey) bool {
	return k.index() == other.index()
}

// IsHeader is true for the key carried by the catalog header entry
func (k MessageKey) IsHeader() bool {
	return k.Source == ""
}

func (k MessageKey) normalize() MessageKey {
	if k.Context == "" {
		k.Context = DefaultContext
	}
	return k
}

func (k MessageKey) index() keyIndex {
	return keyIndex{context: k.normalize().Context, source: k.Source}
}

type keyIndex struct {
	context string
	source  string
}

// OpaqueID links a MessageKey to its entries in the template and every locale.
// Ids are only meaningful within the catalog that minted them, zero is never assigned.
type OpaqueID uint64

func (id OpaqueID) String() string {
	return "m" + strconv.FormatUint(uint64(id), 10)
}

// idCounter mints catalog scoped ids. Parsers sharing a counter never hand
// out the same id twice.
type idCounter struct {
	last OpaqueID
}

func (c *idCounter) next() OpaqueID {
	c.last++
	return c.last
}

// observe makes sure ids already in use are never minted again
func (c *idCounter) observe(id OpaqueID) {
	if id > c.last {
		c.last = id
	}
}
