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

package gettext_test

import (
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/rancher-sandbox/pocat/pkg/gettext"
	v1mock "github.com/rancher-sandbox/pocat/pkg/mocks"
)

var _ = Describe("Locales", Label("locale"), func() {
	var cat *gettext.Catalog

	BeforeEach(func() {
		cat = fakeCatalog()
	})

	Describe("CreateLocale", func() {
		It("creates an empty locale linked to the template header", func() {
			l := cat.CreateLocale("de.po", "de")
			Expect(l.Path).To(Equal("/po/de.po"))
			Expect(l.Header.ID).To(Equal(cat.Template().Header.ID))
			Expect(l.Entries).To(BeEmpty())
			Expect(cat.Modules()).To(ContainElement("/po/de.po"))
			Expect(cat.Locales()).To(Equal([]string{"de"}))

			f, err := cat.DumpLocale("de")
			Expect(err).ToNot(HaveOccurred())
			Expect(f).To(Equal(gettext.File{Path: "/po/de.po", Data: "msgid \"\"\nmsgstr \"\"\n"}))
		})
		It("reports every message as untranslated", func() {
			cat.CreateLocale("de.po", "de")
			Expect(cat.HasUntranslatedEntries("de")).To(BeTrue())
			untranslated := cat.UntranslatedEntries("de")
			Expect(untranslated).To(HaveLen(2))
			Expect(untranslated[0].ID).To(Equal(idOf(cat, "Hello")))
			Expect(untranslated[1].ID).To(Equal(idOf(cat, "Goodbye")))
		})
		It("deregisters the previous file when moving a locale", func() {
			cat.CreateLocale("de.po", "de")
			l := cat.CreateLocale("sub/de.po", "de")
			Expect(l.Path).To(Equal("/po/sub/de.po"))
			Expect(cat.Modules()).To(ContainElement("/po/sub/de.po"))
			Expect(cat.Modules()).NotTo(ContainElement("/po/de.po"))
			Expect(cat.Locales()).To(Equal([]string{"de"}))
		})
	})

	Describe("ImportLocaleFromString", func() {
		It("links entries to the template identities", func() {
			l, err := cat.ImportLocaleFromString("/po/es.po", v1mock.FakeSpanishLocale)
			Expect(err).ToNot(HaveOccurred())
			Expect(l.Code).To(Equal("es"))
			Expect(l.Header.ID).To(Equal(cat.Template().Header.ID))
			Expect(l.Entries).To(HaveLen(1))
			Expect(l.Entries[0].ID).To(Equal(idOf(cat, "Hello")))
			Expect(l.Entries[0].Translations).To(Equal([]string{"Hola"}))
			Expect(cat.Template().Identities).To(HaveLen(3))
		})
		It("registers keys the template does not know yet", func() {
			l, err := cat.ImportLocaleFromString("/po/es.po", v1mock.FakeSpanishLocale+"\nmsgid \"Open\"\nmsgstr \"Abrir\"\n")
			Expect(err).ToNot(HaveOccurred())
			id := l.Entries[1].ID
			key, ok := cat.Key(id)
			Expect(ok).To(BeTrue())
			Expect(key.Source).To(Equal("Open"))
			Expect(cat.Resolve(gettext.NewMessageKey("", "Open", ""))).To(Equal(id))
			// not a template message
			Expect(cat.Template().Entries).To(HaveLen(2))
			Expect(cat.Stats("es").Total).To(Equal(2))
		})
		It("derives the code from the file name and replaces existing locales", func() {
			cat.CreateLocale("/po/pt_BR.po", "pt_BR")
			l, err := cat.ImportLocaleFromString("/po/pt_BR.po", "msgid \"\"\nmsgstr \"\"\n\nmsgid \"Hello\"\nmsgstr \"Olá\"\n")
			Expect(err).ToNot(HaveOccurred())
			Expect(l.Code).To(Equal("pt_BR"))
			Expect(cat.Locales()).To(Equal([]string{"pt_BR"}))
			Expect(cat.FindEntry("pt_BR", idOf(cat, "Hello")).Translations).To(Equal([]string{"Olá"}))
		})
		It("deregisters the previous file of a replaced locale", func() {
			_, err := cat.ImportLocaleFromString("/po/es.po", v1mock.FakeSpanishLocale)
			Expect(err).ToNot(HaveOccurred())
			l, err := cat.ImportLocaleFromString("/po/sub/es.po", v1mock.FakeSpanishLocale)
			Expect(err).ToNot(HaveOccurred())
			Expect(l.Path).To(Equal("/po/sub/es.po"))
			Expect(cat.Modules()).To(ContainElement("/po/sub/es.po"))
			Expect(cat.Modules()).NotTo(ContainElement("/po/es.po"))
			Expect(cat.Modules()).To(ContainElement("/po/fr.po"))

			_, err = cat.ImportLocaleFromString("/po/es.po", "msgid \"a\"\nmsgid \"b\"\n")
			Expect(err).To(HaveOccurred())
			Expect(cat.Modules()).To(ContainElement("/po/sub/es.po"))
		})
		It("leaves the catalog untouched on parse errors", func() {
			_, err := cat.ImportLocaleFromString("/po/it.po", "msgid \"a\"\nmsgid \"b\"\n")
			Expect(errors.Is(err, gettext.ErrInvalidFormat)).To(BeTrue())
			Expect(err.Error()).To(ContainSubstring("/po/it.po"))
			Expect(cat.Locales()).To(BeEmpty())
			Expect(cat.Modules()).NotTo(ContainElement("/po/it.po"))
		})
	})

	It("removes locales and their modules", func() {
		_, err := cat.ImportLocaleFromString("/po/es.po", v1mock.FakeSpanishLocale)
		Expect(err).ToNot(HaveOccurred())
		cat.RemoveLocale("es")
		cat.RemoveLocale("unknown")
		Expect(cat.Locales()).To(BeEmpty())
		Expect(cat.Modules()).To(Equal([]string{"/po/fr.po"}))
		Expect(cat.Template().Identities).To(HaveLen(3))
	})

	Describe("UpdateLocaleEntry", func() {
		var hello gettext.OpaqueID

		BeforeEach(func() {
			_, err := cat.ImportLocaleFromString("/po/es.po", v1mock.FakeSpanishLocale)
			Expect(err).ToNot(HaveOccurred())
			hello = idOf(cat, "Hello")
		})
		It("replaces an existing entry", func() {
			entry := cat.FindEntry("es", hello)
			entry.Translations = []string{"Buenas"}
			cat.UpdateLocaleEntry("es", entry)
			l, _ := cat.Locale("es")
			Expect(l.Entries).To(HaveLen(1))
			Expect(l.Entries[0].Translations).To(Equal([]string{"Buenas"}))
		})
		It("appends entries of known messages", func() {
			entry := cat.FindEntry("es", idOf(cat, "Goodbye"))
			entry.Translations = []string{"Adiós"}
			cat.UpdateLocaleEntry("es", entry)
			Expect(cat.HasUntranslatedEntries("es")).To(BeFalse())
			Expect(cat.UntranslatedEntries("es")).To(BeEmpty())
		})
		It("ignores unknown messages and locales", func() {
			cat.UpdateLocaleEntry("es", &gettext.Entry{ID: 999, Translations: []string{"x"}})
			cat.UpdateLocaleEntry("de", &gettext.Entry{ID: hello, Translations: []string{"Hallo"}})
			cat.UpdateLocaleEntry("es", nil)
			_, found := cat.LookupEntry("es", 999)
			Expect(found).To(BeFalse())
			Expect(cat.Locales()).To(Equal([]string{"es"}))
		})
		It("updates the locale header", func() {
			header := cat.FindEntry("es", cat.Template().Header.ID)
			header.Translations = []string{"Language: es"}
			cat.UpdateLocaleEntry("es", header)
			f, err := cat.DumpLocale("es")
			Expect(err).ToNot(HaveOccurred())
			Expect(f.Data).To(HavePrefix("msgid \"\"\nmsgstr \"Language: es\"\n"))
		})
	})

	Describe("queries", func() {
		It("defaults missing entries to empty ones", func() {
			cat.CreateLocale("de.po", "de")
			id := idOf(cat, "Hello")
			_, found := cat.LookupEntry("de", id)
			Expect(found).To(BeFalse())
			Expect(cat.FindEntry("de", id)).To(Equal(gettext.NewEntry(id)))
			Expect(cat.FindEntry("unknown", id)).To(Equal(gettext.NewEntry(id)))
		})
		It("tells empty and multi form translations apart", func() {
			text := "msgid \"\"\nmsgstr \"\"\n\nmsgid \"Hello\"\nmsgstr \"\"\n\nmsgid \"Goodbye\"\nmsgstr \"\"\n\"a\"\n\"b\"\n"
			_, err := cat.ImportLocaleFromString("/po/es.po", text)
			Expect(err).ToNot(HaveOccurred())
			untranslated := cat.UntranslatedEntries("es")
			Expect(untranslated).To(HaveLen(1))
			Expect(untranslated[0].ID).To(Equal(idOf(cat, "Hello")))
		})
		It("treats any multi form translation as translated", func() {
			entry := &gettext.Entry{ID: 1, Translations: []string{"", ""}}
			Expect(entry.Untranslated()).To(BeFalse())
			Expect(gettext.NewEntry(1).Untranslated()).To(BeTrue())
		})
		It("counts translation progress", func() {
			_, err := cat.ImportLocaleFromString("/po/es.po", v1mock.FakeSpanishLocale)
			Expect(err).ToNot(HaveOccurred())
			Expect(cat.Stats("es")).To(Equal(gettext.Stats{Total: 2, Translated: 1, Untranslated: 1}))
			Expect(cat.Stats("de")).To(Equal(gettext.Stats{Total: 2, Untranslated: 2}))
		})
		It("returns copies of locales", func() {
			_, err := cat.ImportLocaleFromString("/po/es.po", v1mock.FakeSpanishLocale)
			Expect(err).ToNot(HaveOccurred())
			l, ok := cat.Locale("es")
			Expect(ok).To(BeTrue())
			l.Entries[0].Translations[0] = "changed"
			Expect(cat.FindEntry("es", idOf(cat, "Hello")).Translations).To(Equal([]string{"Hola"}))
			_, ok = cat.Locale("de")
			Expect(ok).To(BeFalse())
		})
	})

	Describe("removed messages", func() {
		BeforeEach(func() {
			_, err := cat.ImportLocaleFromString("/po/es.po", v1mock.FakeSpanishLocale)
			Expect(err).ToNot(HaveOccurred())
			cat.RemoveEntry(idOf(cat, "Hello"))
		})
		It("keeps stale locale entries in memory", func() {
			l, _ := cat.Locale("es")
			Expect(l.Entries).To(HaveLen(1))
			Expect(cat.Stats("es")).To(Equal(gettext.Stats{Total: 1, Untranslated: 1, Stale: 1}))
		})
		It("prunes stale entries from dumps", func() {
			f, err := cat.DumpLocale("es")
			Expect(err).ToNot(HaveOccurred())
			Expect(f.Data).To(Equal("msgid \"\"\nmsgstr \"\"\n"))
		})
	})

	Describe("dumps", func() {
		It("fails for unknown locales", func() {
			_, err := cat.DumpLocale("de")
			Expect(errors.Is(err, gettext.ErrUnknownLocale)).To(BeTrue())
		})
		It("reproduces imported locales", func() {
			_, err := cat.ImportLocaleFromString("/po/es.po", v1mock.FakeSpanishLocale)
			Expect(err).ToNot(HaveOccurred())
			f, err := cat.DumpLocale("es")
			Expect(err).ToNot(HaveOccurred())
			Expect(f.Data).To(Equal(v1mock.FakeSpanishLocale))
		})
		It("dumps locales sorted by code before the template", func() {
			cat.CreateLocale("fr.po", "fr")
			cat.CreateLocale("de.po", "de")
			files, err := cat.DumpAll()
			Expect(err).ToNot(HaveOccurred())
			Expect(files).To(HaveLen(3))
			Expect(files[0].Path).To(Equal("/po/de.po"))
			Expect(files[1].Path).To(Equal("/po/fr.po"))
			Expect(files[2].Path).To(Equal(templatePath))
			Expect(files[2].Data).To(HavePrefix("#- es.po\n#- fr.po\n#- de.po\n"))
		})
	})
})
