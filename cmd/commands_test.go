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

package cmd

import (
	"errors"
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	pkgConfig "github.com/rancher-sandbox/pocat/pkg/config"
	catErr "github.com/rancher-sandbox/pocat/pkg/error"
	v1mock "github.com/rancher-sandbox/pocat/pkg/mocks"
)

// newTestRootCmd builds a fresh command tree, flag values do not leak between runs
func newTestRootCmd() *cobra.Command {
	viper.Reset()
	root := NewRootCmd()
	NewNewCmd(root)
	NewNormalizeCmd(root)
	NewLocaleCmd(root)
	NewMsgCmd(root)
	NewTranslateCmd(root)
	NewUntranslatedCmd(root)
	NewStatusCmd(root)
	NewAutoTranslateCmd(root)
	NewVersionCmd(root)
	return root
}

func exitCode(err error) int {
	var catalogErr *catErr.CatalogError
	if errors.As(err, &catalogErr) {
		return catalogErr.ExitCode()
	}
	return -1
}

var _ = Describe("Commands", Label("cmd"), func() {
	var dir, tpl string
	var translator *v1mock.FakeTranslator

	run := func(args ...string) (string, error) {
		args = append(args, "--quiet", "--config-dir", dir)
		_, out, err := executeCommandC(newTestRootCmd(), args...)
		return out, err
	}
	read := func(name string) string {
		data, err := os.ReadFile(filepath.Join(dir, name))
		Expect(err).ToNot(HaveOccurred())
		return string(data)
	}

	BeforeEach(func() {
		var err error
		dir, err = os.MkdirTemp("", "pocat-cmd")
		Expect(err).ToNot(HaveOccurred())
		tpl = filepath.Join(dir, "messages.pot")
		translator = v1mock.NewFakeTranslator()
		runConfigOptions = []pkgConfig.GenericOptions{pkgConfig.WithTranslator(translator)}
	})
	AfterEach(func() {
		runConfigOptions = nil
		viper.Reset()
		Expect(os.RemoveAll(dir)).To(Succeed())
	})

	It("manages a catalog end to end", func() {
		_, err := run("new", tpl)
		Expect(err).ToNot(HaveOccurred())
		Expect(read("messages.pot")).To(Equal("msgid \"\"\nmsgstr \"\"\n"))

		_, err = run("msg", "add", tpl, "Hello", "--comment", "greeting", "--reference", "main.go:3")
		Expect(err).ToNot(HaveOccurred())
		_, err = run("msg", "add", tpl, "Goodbye")
		Expect(err).ToNot(HaveOccurred())
		Expect(read("messages.pot")).To(ContainSubstring("# greeting\n#: main.go:3\nmsgid \"Hello\"\nmsgstr \"\"\n"))

		_, err = run("locale", "add", tpl, filepath.Join(dir, "es.po"))
		Expect(err).ToNot(HaveOccurred())
		Expect(read("messages.pot")).To(HavePrefix("#- es.po\n"))
		Expect(read("es.po")).To(Equal("msgid \"\"\nmsgstr \"\"\n"))

		_, err = run("translate", tpl, "es", "Hello", "Hola")
		Expect(err).ToNot(HaveOccurred())
		Expect(read("es.po")).To(ContainSubstring("msgid \"Hello\"\nmsgstr \"Hola\"\n"))

		out, err := run("untranslated", tpl, "es")
		Expect(err).ToNot(HaveOccurred())
		Expect(out).To(Equal("default\tGoodbye\n"))

		out, err = run("msg", "list", tpl)
		Expect(err).ToNot(HaveOccurred())
		Expect(out).To(Equal("default\tHello\ndefault\tGoodbye\n"))

		out, err = run("status", tpl, "-o", "yaml")
		Expect(err).ToNot(HaveOccurred())
		Expect(out).To(ContainSubstring("code: es"))
		Expect(out).To(ContainSubstring("translated: 1"))
		Expect(out).To(ContainSubstring("messages: 2"))

		_, err = run("autotranslate", tpl, "es", "--delay", "0s", "--no-progress")
		Expect(err).ToNot(HaveOccurred())
		Expect(translator.WasCalledWith("Goodbye")).To(BeTrue())
		Expect(translator.WasCalledWith("Hello")).To(BeFalse())
		Expect(read("es.po")).To(ContainSubstring("#, fuzzy\nmsgid \"Goodbye\"\nmsgstr \"es:Goodbye\"\n"))

		out, err = run("untranslated", tpl, "es")
		Expect(err).ToNot(HaveOccurred())
		Expect(out).To(BeEmpty())

		_, err = run("msg", "remove", tpl, "Hello")
		Expect(err).ToNot(HaveOccurred())
		Expect(read("messages.pot")).NotTo(ContainSubstring("Hello"))
		Expect(read("es.po")).NotTo(ContainSubstring("Hola"))

		_, err = run("locale", "remove", tpl, "es", "--delete-file")
		Expect(err).ToNot(HaveOccurred())
		Expect(read("messages.pot")).NotTo(ContainSubstring("es.po"))
		_, err = os.Stat(filepath.Join(dir, "es.po"))
		Expect(os.IsNotExist(err)).To(BeTrue())
	})

	It("refuses to overwrite a template unless forced", func() {
		Expect(os.WriteFile(tpl, []byte(v1mock.FakeTemplate), 0644)).To(Succeed())
		_, err := run("new", tpl)
		Expect(exitCode(err)).To(Equal(catErr.TemplateExists))
		Expect(read("messages.pot")).To(Equal(v1mock.FakeTemplate))

		_, err = run("new", tpl, "--force")
		Expect(err).ToNot(HaveOccurred())
		Expect(read("messages.pot")).To(Equal("msgid \"\"\nmsgstr \"\"\n"))
	})

	It("imports and normalizes locale files", func() {
		Expect(os.WriteFile(tpl, []byte(v1mock.FakeTemplate), 0644)).To(Succeed())
		external := filepath.Join(dir, "import", "es.po")
		Expect(os.MkdirAll(filepath.Dir(external), 0755)).To(Succeed())
		Expect(os.WriteFile(external, []byte("msgid \"Hello\"\nmsgstr \"Hola\"\n"), 0644)).To(Succeed())

		_, err := run("locale", "import", tpl, external)
		Expect(err).ToNot(HaveOccurred())
		Expect(read("messages.pot")).To(ContainSubstring("#- import/es.po\n"))
		Expect(read("import/es.po")).To(Equal(v1mock.FakeSpanishLocale))

		_, err = run("normalize", tpl)
		Expect(err).ToNot(HaveOccurred())
		Expect(read("import/es.po")).To(Equal(v1mock.FakeSpanishLocale))
	})

	It("reports catalog errors with their exit code", func() {
		Expect(os.WriteFile(tpl, []byte(v1mock.FakeTemplate), 0644)).To(Succeed())

		_, err := run("locale", "remove", tpl, "de")
		Expect(exitCode(err)).To(Equal(catErr.UnknownLocale))

		_, err = run("translate", tpl, "es", "Missing", "x")
		Expect(exitCode(err)).To(Equal(catErr.UnknownLocale))

		Expect(os.WriteFile(filepath.Join(dir, "es.po"), []byte("msgid \"a\"\nmsgid \"b\"\n"), 0644)).To(Succeed())
		_, err = run("status", tpl)
		Expect(exitCode(err)).To(Equal(catErr.InvalidFormat))

		_, err = run("status", tpl, "-o", "xml")
		Expect(exitCode(err)).To(Equal(catErr.ReadingSpecConfig))
	})

	It("reads settings from the config dir", func() {
		Expect(os.WriteFile(tpl, []byte(v1mock.FakeTemplate), 0644)).To(Succeed())
		Expect(os.WriteFile(filepath.Join(dir, "es.po"), []byte(v1mock.FakeSpanishLocale), 0644)).To(Succeed())
		config := "source-lang: de\ntranslate-delay: 0s\ndefault-flags: [machine]\n"
		Expect(os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(config), 0644)).To(Succeed())

		_, err := run("autotranslate", tpl, "es", "--no-progress")
		Expect(err).ToNot(HaveOccurred())
		Expect(translator.Calls).To(HaveLen(1))
		Expect(read("es.po")).To(ContainSubstring("#, machine\nmsgid \"Goodbye\"\n"))
	})
})
