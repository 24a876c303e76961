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
	"fmt"
)

// Locales returns the codes of the catalog locales, sorted
func (c *Catalog) Locales() []string {
	return sortedKeys(c.locales)
}

// Locale returns a copy of the locale with the given code
func (c *Catalog) Locale(code string) (*Locale, bool) {
	l, ok := c.locales[code]
	if !ok {
		return nil, false
	}
	return l.Clone(), true
}

// CreateLocale adds an empty locale, holding only a header linked to the
// template header, and registers path as a module. An existing locale with
// the same code is replaced.
func (c *Catalog) CreateLocale(path, code string) *Locale {
	l := &Locale{
		Path:   c.AbsolutePath(path),
		Code:   code,
		Header: NewEntry(c.template.Header.ID),
	}
	c.dropStaleModule(l)
	c.locales[code] = l
	c.AddModule(l.Path)
	c.emit(Event{Kind: LocaleCreated, Code: code, Path: l.Path})
	return l.Clone()
}

// ImportLocaleFromString parses the locale file content and links its entries to the
// catalog identities. Keys unknown to the catalog are registered with the id minted
// while parsing. The locale code is the file name without extension.
func (c *Catalog) ImportLocaleFromString(path, text string) (*Locale, error) {
	fragment, err := c.parser().Parse(text)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	for _, entry := range fragment.All() {
		key := fragment.Identities[entry.ID]
		if id, ok := c.index[key.index()]; ok {
			entry.ID = id
			continue
		}
		c.register(entry.ID, key)
	}

	l := &Locale{
		Path:    c.AbsolutePath(path),
		Code:    CodeFromPath(path),
		Header:  fragment.Header,
		Entries: fragment.Entries,
	}
	c.dropStaleModule(l)
	c.AddModule(l.Path)
	c.locales[l.Code] = l
	c.emit(Event{Kind: LocaleImported, Code: l.Code, Path: l.Path})
	return l.Clone(), nil
}

// dropStaleModule deregisters the file of the locale l replaces when it lives elsewhere
func (c *Catalog) dropStaleModule(l *Locale) {
	if old, ok := c.locales[l.Code]; ok && old.Path != l.Path {
		c.RemoveModule(old.Path)
	}
}

// parser shares the catalog counter so parsed ids never clash with catalog ones
func (c *Catalog) parser() *Parser {
	return &Parser{ids: c.ids}
}

// RemoveLocale deletes a locale and deregisters its module. Identities are untouched.
func (c *Catalog) RemoveLocale(code string) {
	l, ok := c.locales[code]
	if !ok {
		return
	}
	c.RemoveModule(l.Path)
	delete(c.locales, code)
	c.emit(Event{Kind: LocaleRemoved, Code: code, Path: l.Path})
}

// UpdateLocaleEntry replaces the locale entry with the same id. A missing entry
// is only appended when its id is known to the template. Unknown locales are ignored.
func (c *Catalog) UpdateLocaleEntry(code string, entry *Entry) {
	l, ok := c.locales[code]
	if !ok || entry == nil {
		return
	}
	switch i := l.indexOf(entry.ID); {
	case entry.ID == l.Header.ID:
		l.Header = entry.Clone()
	case i >= 0:
		l.Entries[i] = entry.Clone()
	case c.known(entry.ID):
		l.Entries = append(l.Entries, entry.Clone())
	default:
		return
	}
	c.emit(Event{Kind: TranslationUpdated, Code: code, ID: entry.ID})
}

func (c *Catalog) known(id OpaqueID) bool {
	_, ok := c.template.Identities[id]
	return ok
}

// LookupEntry returns the stored locale entry for id, if any
func (c *Catalog) LookupEntry(code string, id OpaqueID) (*Entry, bool) {
	l, ok := c.locales[code]
	if !ok {
		return nil, false
	}
	if l.Header.ID == id {
		return l.Header.Clone(), true
	}
	if i := l.indexOf(id); i >= 0 {
		return l.Entries[i].Clone(), true
	}
	return nil, false
}

// FindEntry is LookupEntry defaulting to an empty entry, a missing translation is
// not an error
func (c *Catalog) FindEntry(code string, id OpaqueID) *Entry {
	if e, ok := c.LookupEntry(code, id); ok {
		return e
	}
	return NewEntry(id)
}

// UntranslatedEntries returns, in template order, the locale entries still to translate.
// Template messages missing from the locale are returned as empty entries.
func (c *Catalog) UntranslatedEntries(code string) []*Entry {
	stored := c.localeEntries(code)
	var untranslated []*Entry
	for _, tmplEntry := range c.template.Entries {
		e, ok := stored[tmplEntry.ID]
		switch {
		case !ok:
			untranslated = append(untranslated, NewEntry(tmplEntry.ID))
		case e.Untranslated():
			untranslated = append(untranslated, e.Clone())
		}
	}
	return untranslated
}

// HasUntranslatedEntries reports whether UntranslatedEntries would return anything
func (c *Catalog) HasUntranslatedEntries(code string) bool {
	stored := c.localeEntries(code)
	for _, tmplEntry := range c.template.Entries {
		if e, ok := stored[tmplEntry.ID]; !ok || e.Untranslated() {
			return true
		}
	}
	return false
}

// Stats counts the translation progress of a locale
type Stats struct {
	Total        int `yaml:"total"`
	Translated   int `yaml:"translated"`
	Untranslated int `yaml:"untranslated"`
	Stale        int `yaml:"stale,omitempty"`
}

func (c *Catalog) Stats(code string) Stats {
	stats := Stats{Total: len(c.template.Entries)}
	stats.Untranslated = len(c.UntranslatedEntries(code))
	stats.Translated = stats.Total - stats.Untranslated
	if l, ok := c.locales[code]; ok {
		for _, e := range l.Entries {
			if !c.known(e.ID) {
				stats.Stale++
			}
		}
	}
	return stats
}

func (c *Catalog) localeEntries(code string) map[OpaqueID]*Entry {
	stored := map[OpaqueID]*Entry{}
	if l, ok := c.locales[code]; ok {
		for _, e := range l.Entries {
			stored[e.ID] = e
		}
	}
	return stored
}

// DumpLocale serializes a locale. Entries whose message was removed from the
// catalog are left out.
func (c *Catalog) DumpLocale(code string) (File, error) {
	l, ok := c.locales[code]
	if !ok {
		return File{}, wrapf(ErrUnknownLocale, "%s", code)
	}
	entries := []*Entry{l.Header}
	for _, e := range l.Entries {
		if c.known(e.ID) {
			entries = append(entries, e)
		}
	}
	data, err := Dump(c.template.Identities, entries)
	if err != nil {
		return File{}, fmt.Errorf("dumping locale %s: %w", code, err)
	}
	return File{Path: l.Path, Data: data}, nil
}

// DumpAll serializes every locale, sorted by code, followed by the template
func (c *Catalog) DumpAll() ([]File, error) {
	files := make([]File, 0, len(c.locales)+1)
	for _, code := range c.Locales() {
		f, err := c.DumpLocale(code)
		if err != nil {
			return nil, err
		}
		files = append(files, f)
	}
	f, err := c.DumpTemplate()
	if err != nil {
		return nil, fmt.Errorf("dumping template: %w", err)
	}
	return append(files, f), nil
}
