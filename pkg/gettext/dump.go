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
	"strings"
)

// File is the serialized form of a template or a locale, ready to be written at Path
type File struct {
	Path string
	Data string
}

// Dump renders entries as PO text. Every entry id must be present in identities
// and every entry needs at least one translation string.
func Dump(identities map[OpaqueID]MessageKey, entries []*Entry) (string, error) {
	if len(entries) == 0 {
		return "", nil
	}
	blocks := make([]string, 0, len(entries))
	for _, entry := range entries {
		block, err := dumpEntry(identities, entry)
		if err != nil {
			return "", err
		}
		blocks = append(blocks, strings.Join(block, "\n"))
	}
	return strings.Join(blocks, "\n\n") + "\n", nil
}

func dumpEntry(identities map[OpaqueID]MessageKey, entry *Entry) ([]string, error) {
	key, ok := identities[entry.ID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownIdentity, entry.ID)
	}
	if len(entry.Translations) == 0 {
		return nil, fmt.Errorf("%w: %q", ErrEmptyTranslation, key.Source)
	}

	var lines []string
	lines = appendMeta(lines, commentPrefix, entry.Meta.Comments)
	lines = appendMeta(lines, referencePrefix, entry.Meta.References)
	lines = appendMeta(lines, extractedPrefix, entry.Meta.Extracted)
	lines = appendMeta(lines, modulePrefix, entry.Meta.Modules.Items())
	lines = appendMeta(lines, flagPrefix, entry.Meta.Flags.Items())

	lines = append(lines, quoted("msgid", key.Source))
	// msgid_plural is written back but never read, plural forms are not supported
	if key.Plural != "" {
		lines = append(lines, quoted("msgid_plural", key.Plural))
	}

	if len(entry.Translations) == 1 {
		return append(lines, quoted("msgstr", entry.Translations[0])), nil
	}
	lines = append(lines, quoted("msgstr", ""))
	for _, t := range entry.Translations {
		lines = append(lines, `"`+t+`"`)
	}
	return lines, nil
}

func appendMeta(lines []string, prefix string, values []string) []string {
	for _, v := range values {
		lines = append(lines, prefix+" "+v)
	}
	return lines
}

// quoted writes the text verbatim, the parser does not unescape either
func quoted(keyword, text string) string {
	return keyword + ` "` + text + `"`
}
