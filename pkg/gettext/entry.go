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
	"sort"
)

// OrderedSet is a set of strings that remembers insertion order, so dumps stay deterministic.
// The zero value is an empty set.
type OrderedSet struct {
	items []string
}

func NewOrderedSet(items ...string) OrderedSet {
	s := OrderedSet{}
	for _, item := range items {
		s.Add(item)
	}
	return s
}

// Add appends item unless it is already present. Returns true if the set changed.
func (s *OrderedSet) Add(item string) bool {
	if s.Has(item) {
		return false
	}
	s.items = append(s.items, item)
	return true
}

// Remove deletes item from the set. Returns true if the set changed.
func (s *OrderedSet) Remove(item string) bool {
	for i, v := range s.items {
		if v == item {
			s.items = append(s.items[:i:i], s.items[i+1:]...)
			return true
		}
	}
	return false
}

func (s OrderedSet) Has(item string) bool {
	for _, v := range s.items {
		if v == item {
			return true
		}
	}
	return false
}

func (s OrderedSet) Len() int {
	return len(s.items)
}

// Items returns a copy of the set content in insertion order
func (s OrderedSet) Items() []string {
	return append([]string{}, s.items...)
}

func (s OrderedSet) Clone() OrderedSet {
	return OrderedSet{items: s.Items()}
}

// Metadata holds the provenance and tooling hints of an entry.
// Modules is only meaningful on a template header.
type Metadata struct {
	Comments   []string
	References []string
	Extracted  []string
	Flags      OrderedSet
	Modules    OrderedSet
}

func (m Metadata) Clone() Metadata {
	return Metadata{
		Comments:   append([]string{}, m.Comments...),
		References: append([]string{}, m.References...),
		Extracted:  append([]string{}, m.Extracted...),
		Flags:      m.Flags.Clone(),
		Modules:    m.Modules.Clone(),
	}
}

// Entry is a translatable unit of a template or a locale. In a template Translations
// holds the source text, in a locale the target text. More than one translation is
// kept as an opaque multi-form value.
type Entry struct {
	ID           OpaqueID
	Translations []string
	Meta         Metadata
}

// NewEntry returns an empty entry for id: a single empty translation and no metadata
func NewEntry(id OpaqueID) *Entry {
	return &Entry{ID: id, Translations: []string{""}}
}

func (e *Entry) Clone() *Entry {
	if e == nil {
		return nil
	}
	return &Entry{
		ID:           e.ID,
		Translations: append([]string{}, e.Translations...),
		Meta:         e.Meta.Clone(),
	}
}

// Untranslated is true for a single empty translation. Multi-form entries always
// count as translated.
func (e *Entry) Untranslated() bool {
	return len(e.Translations) == 1 && e.Translations[0] == ""
}

// Template is the source language side of a catalog: the header, the ordered
// messages and the identity table shared with every locale.
type Template struct {
	Header     *Entry
	Entries    []*Entry
	Identities map[OpaqueID]MessageKey
}

// All returns the header followed by the template entries, in dump order
func (t *Template) All() []*Entry {
	return withHeader(t.Header, t.Entries)
}

// IDs returns the ids of the identity table in ascending order
func (t *Template) IDs() []OpaqueID {
	ids := make([]OpaqueID, 0, len(t.Identities))
	for id := range t.Identities {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

func (t *Template) Clone() *Template {
	identities := make(map[OpaqueID]MessageKey, len(t.Identities))
	for id, key := range t.Identities {
		identities[id] = key
	}
	return &Template{
		Header:     t.Header.Clone(),
		Entries:    cloneEntries(t.Entries),
		Identities: identities,
	}
}

func (t *Template) indexOf(id OpaqueID) int {
	return indexOf(t.Entries, id)
}

// Locale is the translated side of a catalog for one language
type Locale struct {
	Path    string
	Code    string
	Header  *Entry
	Entries []*Entry
}

// All returns the header followed by the locale entries, in dump order
func (l *Locale) All() []*Entry {
	return withHeader(l.Header, l.Entries)
}

func (l *Locale) Clone() *Locale {
	return &Locale{
		Path:    l.Path,
		Code:    l.Code,
		Header:  l.Header.Clone(),
		Entries: cloneEntries(l.Entries),
	}
}

func (l *Locale) indexOf(id OpaqueID) int {
	return indexOf(l.Entries, id)
}

func withHeader(header *Entry, entries []*Entry) []*Entry {
	all := make([]*Entry, 0, len(entries)+1)
	if header != nil {
		all = append(all, header)
	}
	return append(all, entries...)
}

func cloneEntries(entries []*Entry) []*Entry {
	out := make([]*Entry, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.Clone())
	}
	return out
}

func indexOf(entries []*Entry, id OpaqueID) int {
	for i, e := range entries {
		if e.ID == id {
			return i
		}
	}
	return -1
}
