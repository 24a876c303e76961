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
	"path/filepath"
	"sort"
	"strings"

	"github.com/rancher-sandbox/pocat/pkg/utils"
)

// Catalog owns a template and the locales translating it. It is not safe for
// concurrent use, callers serialize access to a catalog.
type Catalog struct {
	path     string
	template *Template
	locales  map[string]*Locale
	index    map[keyIndex]OpaqueID
	ids      *idCounter
	subs     []subscription
	lastSub  int
}

// NewCatalog returns a catalog for the template at path holding only a header
func NewCatalog(path string) *Catalog {
	ids := &idCounter{}
	headerID := ids.next()
	return NewCatalogFromTemplate(path, &Template{
		Header:     NewEntry(headerID),
		Identities: map[OpaqueID]MessageKey{headerID: NewMessageKey(DefaultContext, "", "")},
	})
}

// NewCatalogFromTemplate wraps a parsed template. The catalog takes ownership of
// tmpl, module paths of its header are resolved against the template directory.
func NewCatalogFromTemplate(path string, tmpl *Template) *Catalog {
	c := &Catalog{
		path:     path,
		template: tmpl,
		locales:  map[string]*Locale{},
		index:    map[keyIndex]OpaqueID{},
		ids:      &idCounter{},
	}
	if c.template.Identities == nil {
		c.template.Identities = map[OpaqueID]MessageKey{}
	}
	for _, id := range c.template.IDs() {
		c.ids.observe(id)
		key := c.template.Identities[id].normalize()
		c.template.Identities[id] = key
		if _, taken := c.index[key.index()]; !taken {
			c.index[key.index()] = id
		}
	}
	if c.template.Header == nil {
		c.template.Header = NewEntry(c.Resolve(NewMessageKey(DefaultContext, "", "")))
	}

	modules := NewOrderedSet()
	for _, m := range c.template.Header.Meta.Modules.Items() {
		modules.Add(c.AbsolutePath(m))
	}
	c.template.Header.Meta.Modules = modules
	return c
}

func (c *Catalog) Path() string {
	return c.path
}

// BaseDir is the directory relative module paths are resolved against
func (c *Catalog) BaseDir() string {
	return filepath.Dir(c.path)
}

// AbsolutePath resolves path against the catalog directory
func (c *Catalog) AbsolutePath(path string) string {
	if filepath.IsAbs(path) {
		return filepath.Clean(path)
	}
	return filepath.Join(c.BaseDir(), path)
}

// RelativePath rewrites path relative to the catalog directory, as written in dumps
func (c *Catalog) RelativePath(path string) string {
	rel, err := filepath.Rel(c.BaseDir(), c.AbsolutePath(path))
	if err != nil {
		return path
	}
	return rel
}

// Template returns a copy of the catalog template
func (c *Catalog) Template() *Template {
	return c.template.Clone()
}

// Resolve returns the id of key, minting and registering a new one for unknown keys
func (c *Catalog) Resolve(key MessageKey) OpaqueID {
	key = key.normalize()
	if id, ok := c.index[key.index()]; ok {
		return id
	}
	id := c.ids.next()
	c.register(id, key)
	return id
}

func (c *Catalog) register(id OpaqueID, key MessageKey) {
	c.ids.observe(id)
	c.template.Identities[id] = key
	c.index[key.index()] = id
}

// Key returns the message key behind id
func (c *Catalog) Key(id OpaqueID) (MessageKey, bool) {
	key, ok := c.template.Identities[id]
	return key, ok
}

// CreateMsg returns the id for the key, creating it if needed. Calling it
// twice with the same context and source returns the same id.
func (c *Catalog) CreateMsg(key MessageKey) OpaqueID {
	_, known := c.index[key.index()]
	id := c.Resolve(key)
	if !known {
		c.emit(Event{Kind: MessageCreated, ID: id})
	}
	return id
}

// AppendEntry makes sure the template has an entry for key
func (c *Catalog) AppendEntry(key MessageKey) OpaqueID {
	id := c.CreateMsg(key)
	if id == c.template.Header.ID || c.template.indexOf(id) >= 0 {
		return id
	}
	c.template.Entries = append(c.template.Entries, NewEntry(id))
	c.emit(Event{Kind: EntryAppended, ID: id})
	return id
}

// KeyFilter selects message keys, empty fields match anything
type KeyFilter struct {
	Context string
	Source  string
	Plural  string
}

func (f KeyFilter) Match(key MessageKey) bool {
	if f.Context != "" && key.Context != f.Context {
		return false
	}
	if f.Source != "" && key.Source != f.Source {
		return false
	}
	if f.Plural != "" && key.Plural != f.Plural {
		return false
	}
	return true
}

// FilterByKey returns the keys matching every set field of filter, in id order
func (c *Catalog) FilterByKey(filter KeyFilter) []MessageKey {
	var keys []MessageKey
	for _, id := range c.template.IDs() {
		if key := c.template.Identities[id]; filter.Match(key) {
			keys = append(keys, key)
		}
	}
	return keys
}

// FilterIDs works as FilterByKey but returns the matching ids
func (c *Catalog) FilterIDs(filter KeyFilter) []OpaqueID {
	var ids []OpaqueID
	for _, id := range c.template.IDs() {
		if filter.Match(c.template.Identities[id]) {
			ids = append(ids, id)
		}
	}
	return ids
}

// UpdateMessageKey changes the key behind id, every entry using id follows
func (c *Catalog) UpdateMessageKey(id OpaqueID, key MessageKey) error {
	old, ok := c.template.Identities[id]
	if !ok {
		return wrapf(ErrUnknownIdentity, "%s", id)
	}
	key = key.normalize()
	if id == c.template.Header.ID && !key.IsHeader() {
		return fmt.Errorf("the header message must keep an empty source")
	}
	if owner, taken := c.index[key.index()]; taken && owner != id {
		return wrapf(ErrDuplicateKey, "%q in context %q", key.Source, key.Context)
	}
	if c.index[old.index()] == id {
		delete(c.index, old.index())
	}
	c.register(id, key)
	c.emit(Event{Kind: MessageUpdated, ID: id})
	return nil
}

// RemoveEntry forgets id and drops its template entry. Locale entries for id are
// kept, queries ignore them and locale dumps prune them.
func (c *Catalog) RemoveEntry(id OpaqueID) {
	key, ok := c.template.Identities[id]
	if !ok || id == c.template.Header.ID {
		return
	}
	delete(c.template.Identities, id)
	if c.index[key.index()] == id {
		delete(c.index, key.index())
	}
	if i := c.template.indexOf(id); i >= 0 {
		c.template.Entries = append(c.template.Entries[:i:i], c.template.Entries[i+1:]...)
	}
	c.emit(Event{Kind: MessageRemoved, ID: id})
}

// UpdateTemplateEntry replaces the metadata and source side translations of a template entry
func (c *Catalog) UpdateTemplateEntry(entry *Entry) bool {
	if entry.ID == c.template.Header.ID {
		header := entry.Clone()
		header.Meta.Modules = NewOrderedSet()
		for _, m := range entry.Meta.Modules.Items() {
			header.Meta.Modules.Add(c.AbsolutePath(m))
		}
		c.template.Header = header
	} else if i := c.template.indexOf(entry.ID); i >= 0 {
		c.template.Entries[i] = entry.Clone()
	} else {
		return false
	}
	c.emit(Event{Kind: MessageUpdated, ID: entry.ID})
	return true
}

// Modules returns the absolute paths of the locale files of the catalog
func (c *Catalog) Modules() []string {
	return c.template.Header.Meta.Modules.Items()
}

// AddModule registers a locale file, path is stored in absolute form
func (c *Catalog) AddModule(path string) {
	abs := c.AbsolutePath(path)
	if c.template.Header.Meta.Modules.Add(abs) {
		c.emit(Event{Kind: ModuleAdded, Path: abs})
	}
}

// RemoveModule deregisters a locale file, it does not remove the locale
func (c *Catalog) RemoveModule(path string) {
	abs := c.AbsolutePath(path)
	if c.template.Header.Meta.Modules.Remove(abs) {
		c.emit(Event{Kind: ModuleRemoved, Path: abs})
	}
}

// DumpTemplate serializes the template with module paths relative to the
// catalog directory. The in memory module paths stay absolute.
func (c *Catalog) DumpTemplate() (File, error) {
	header := c.template.Header
	absolute := header.Meta.Modules

	cleanup := utils.NewCleanStack()
	cleanup.Push(func() error {
		header.Meta.Modules = absolute
		return nil
	})

	relative := NewOrderedSet()
	for _, m := range absolute.Items() {
		relative.Add(c.RelativePath(m))
	}
	header.Meta.Modules = relative

	data, err := Dump(c.template.Identities, c.template.All())
	if err = cleanup.Cleanup(err); err != nil {
		return File{}, err
	}
	return File{Path: c.path, Data: data}, nil
}

// Clone returns a deep copy of the catalog without its subscribers
func (c *Catalog) Clone() *Catalog {
	clone := NewCatalogFromTemplate(c.path, c.template.Clone())
	clone.ids.observe(c.ids.last)
	for code, l := range c.locales {
		clone.locales[code] = l.Clone()
	}
	return clone
}

// CodeFromPath derives a locale code from a locale file name, "po/pt_BR.po" gives "pt_BR"
func CodeFromPath(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

func sortedKeys(m map[string]*Locale) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
