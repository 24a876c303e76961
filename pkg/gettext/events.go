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

// EventKind tells which catalog mutation produced an Event
type EventKind int

const (
	MessageCreated EventKind = iota + 1
	MessageUpdated
	MessageRemoved
	EntryAppended
	LocaleCreated
	LocaleImported
	LocaleRemoved
	TranslationUpdated
	ModuleAdded
	ModuleRemoved
)

var eventNames = map[EventKind]string{
	MessageCreated:     "message-created",
	MessageUpdated:     "message-updated",
	MessageRemoved:     "message-removed",
	EntryAppended:      "entry-appended",
	LocaleCreated:      "locale-created",
	LocaleImported:     "locale-imported",
	LocaleRemoved:      "locale-removed",
	TranslationUpdated: "translation-updated",
	ModuleAdded:        "module-added",
	ModuleRemoved:      "module-removed",
}

func (k EventKind) String() string {
	if name, ok := eventNames[k]; ok {
		return name
	}
	return "unknown"
}

// Event describes a change applied to a catalog. Only the fields relevant to
// the kind are set.
type Event struct {
	Kind EventKind
	ID   OpaqueID
	Code string
	Path string
}

// Listener is notified synchronously after every catalog mutation
type Listener interface {
	CatalogChanged(event Event)
}

// ListenerFunc adapts a function to the Listener interface
type ListenerFunc func(event Event)

func (f ListenerFunc) CatalogChanged(event Event) {
	if f == nil {
		return
	}
	f(event)
}

type subscription struct {
	id       int
	listener Listener
}

// Subscribe registers l for change events. The returned function cancels the subscription.
func (c *Catalog) Subscribe(l Listener) func() {
	c.lastSub++
	id := c.lastSub
	c.subs = append(c.subs, subscription{id: id, listener: l})
	return func() {
		for i, s := range c.subs {
			if s.id == id {
				c.subs = append(c.subs[:i:i], c.subs[i+1:]...)
				return
			}
		}
	}
}

func (c *Catalog) emit(event Event) {
	for _, s := range append([]subscription{}, c.subs...) {
		s.listener.CatalogChanged(event)
	}
}
