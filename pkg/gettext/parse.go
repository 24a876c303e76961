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
	"regexp"
	"strings"
)

// Line prefixes of the metadata comments. Order matters, the bare comment
// prefix matches every other one.
const (
	flagPrefix      = "#,"
	referencePrefix = "#:"
	extractedPrefix = "#."
	modulePrefix    = "#-"
	commentPrefix   = "#"
)

var (
	msgidLine  = regexp.MustCompile(`^msgid "(.*)"$`)
	msgstrLine = regexp.MustCompile(`^msgstr "(.*)"$`)
)

// Parser turns PO text into a Template. A parser owned by a catalog mints ids
// from the catalog counter, a standalone parser uses its own.
type Parser struct {
	ids *idCounter
}

func NewParser() *Parser {
	return &Parser{ids: &idCounter{}}
}

// Parse parses text with a fresh parser
func Parse(text string) (*Template, error) {
	return NewParser().Parse(text)
}

type line struct {
	num  int
	text string
}

// Parse reads every message block of text. Repeated (context, source) keys
// within the text share a single id. The first block is the header when its
// source is empty, otherwise an empty header is created in front of the entries.
func (p *Parser) Parse(text string) (*Template, error) {
	lines := splitLines(text)
	if len(lines) == 0 {
		return nil, ErrEmpty
	}

	tmpl := &Template{Identities: map[OpaqueID]MessageKey{}}
	seen := map[keyIndex]OpaqueID{}
	resolve := func(key MessageKey) OpaqueID {
		if id, ok := seen[key.index()]; ok {
			return id
		}
		id := p.ids.next()
		seen[key.index()] = id
		tmpl.Identities[id] = key
		return id
	}

	var entries []*Entry
	for i := 0; i < len(lines); i++ {
		entry, key, last, err := parseBlock(lines, i)
		if err != nil {
			return nil, err
		}
		entry.ID = resolve(key)
		entries = append(entries, entry)
		i = last
	}

	if len(entries) == 0 {
		return nil, ErrEmpty
	}

	if tmpl.Identities[entries[0].ID].IsHeader() {
		tmpl.Header = entries[0]
		tmpl.Entries = entries[1:]
	} else {
		tmpl.Header = NewEntry(resolve(NewMessageKey(DefaultContext, "", "")))
		tmpl.Entries = entries
	}
	return tmpl, nil
}

// parseBlock consumes metadata lines up to and including a msgid/msgstr pair and
// its continuation lines. It returns the index of the last consumed line.
func parseBlock(lines []line, start int) (*Entry, MessageKey, int, error) {
	var meta Metadata

	for i := start; i < len(lines); i++ {
		l := lines[i].text
		switch {
		case strings.HasPrefix(l, flagPrefix):
			meta.Flags.Add(metaValue(l, flagPrefix))
		case strings.HasPrefix(l, referencePrefix):
			meta.References = append(meta.References, metaValue(l, referencePrefix))
		case strings.HasPrefix(l, extractedPrefix):
			meta.Extracted = append(meta.Extracted, metaValue(l, extractedPrefix))
		case strings.HasPrefix(l, modulePrefix):
			meta.Modules.Add(metaValue(l, modulePrefix))
		case strings.HasPrefix(l, commentPrefix):
			meta.Comments = append(meta.Comments, metaValue(l, commentPrefix))
		case msgidLine.MatchString(l):
			if i+1 >= len(lines) || !msgstrLine.MatchString(lines[i+1].text) {
				return nil, MessageKey{}, 0, invalidLine(lines[i], "msgid without msgstr")
			}
			source := msgidLine.FindStringSubmatch(l)[1]
			i++
			translations := []string{msgstrLine.FindStringSubmatch(lines[i].text)[1]}
			for i+1 < len(lines) && isContinuation(lines[i+1].text) {
				i++
				translations = append(translations, lines[i].text[1:len(lines[i].text)-1])
			}
			// A blank head line followed by wrapped lines
			if len(translations) > 1 && translations[0] == "" {
				translations = translations[1:]
			}
			entry := &Entry{Translations: translations, Meta: meta}
			return entry, NewMessageKey(DefaultContext, source, ""), i, nil
		default:
			return nil, MessageKey{}, 0, invalidLine(lines[i], "unexpected line")
		}
	}

	last := lines[len(lines)-1]
	return nil, MessageKey{}, 0, &ParseError{
		Line: last.num,
		Err:  fmt.Errorf("%w: unterminated message block", ErrInvalidFormat),
	}
}

func splitLines(text string) []line {
	var lines []line
	for i, raw := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(raw)
		if trimmed == "" {
			continue
		}
		lines = append(lines, line{num: i + 1, text: trimmed})
	}
	return lines
}

func metaValue(l, prefix string) string {
	return strings.TrimSpace(l[len(prefix):])
}

func isContinuation(l string) bool {
	return len(l) >= 2 && strings.HasPrefix(l, `"`) && strings.HasSuffix(l, `"`)
}

func invalidLine(l line, reason string) error {
	return &ParseError{
		Line: l.num,
		Text: l.text,
		Err:  fmt.Errorf("%w: %s", ErrInvalidFormat, reason),
	}
}
