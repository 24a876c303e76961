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

package action_test

import (
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/rancher-sandbox/pocat/pkg/action"
	"github.com/rancher-sandbox/pocat/pkg/config"
	catErr "github.com/rancher-sandbox/pocat/pkg/error"
	v1mock "github.com/rancher-sandbox/pocat/pkg/mocks"
	"github.com/rancher-sandbox/pocat/pkg/utils"
)

var _ = Describe("Locale Actions", Label("locale"), func() {
	var env *actionEnv

	BeforeEach(func() {
		env = newActionEnv(map[string]string{"es.po": v1mock.FakeSpanishLocale})
	})
	AfterEach(func() {
		env.cleanup()
	})

	Describe("Add", func() {
		It("creates the locale file and registers it", func() {
			spec := config.NewLocaleAddSpec(env.template, "de.po")
			Expect(action.RunLocaleAdd(ctx, env.cfg, spec)).To(Succeed())
			Expect(env.read("/po/de.po")).To(Equal("msgid \"\"\nmsgstr \"\"\n"))
			Expect(env.read(env.template)).To(HavePrefix("#- es.po\n#- fr.po\n#- de.po\nmsgid \"\"\n"))
		})
		It("names the file after the code when given a directory", func() {
			spec := config.NewLocaleAddSpec(env.template, "locales")
			spec.Code = "pt-br"
			Expect(action.RunLocaleAdd(ctx, env.cfg, spec)).To(Succeed())
			Expect(utils.Exists(env.fs, "/po/locales/pt_BR.po")).To(BeTrue())
			Expect(env.read(env.template)).To(ContainSubstring("#- locales/pt_BR.po\n"))
		})
		It("requires a code for directories", func() {
			spec := config.NewLocaleAddSpec(env.template, "locales")
			err := action.RunLocaleAdd(ctx, env.cfg, spec)
			Expect(exitCode(err)).To(Equal(catErr.InvalidArgs))
		})
		It("rejects a code not matching the file name", func() {
			spec := config.NewLocaleAddSpec(env.template, "de.po")
			spec.Code = "fr"
			err := action.RunLocaleAdd(ctx, env.cfg, spec)
			Expect(exitCode(err)).To(Equal(catErr.InvalidArgs))
		})
		It("rejects invalid codes", func() {
			spec := config.NewLocaleAddSpec(env.template, "locales")
			spec.Code = "not a code"
			err := action.RunLocaleAdd(ctx, env.cfg, spec)
			Expect(exitCode(err)).To(Equal(catErr.InvalidLocaleCode))
		})
		It("refuses to replace an existing locale", func() {
			spec := config.NewLocaleAddSpec(env.template, "es.po")
			err := action.RunLocaleAdd(ctx, env.cfg, spec)
			Expect(exitCode(err)).To(Equal(catErr.InvalidArgs))
			Expect(env.read("/po/es.po")).To(Equal(v1mock.FakeSpanishLocale))
		})
	})

	Describe("Import", func() {
		It("registers an existing file and rewrites it", func() {
			Expect(utils.WriteFile(env.fs, "/other/it.po", []byte("msgid \"Hello\"\nmsgstr \"Ciao\"\n"))).To(Succeed())
			spec := config.NewLocaleImportSpec(env.template, "/other/it.po")
			Expect(action.RunLocaleImport(ctx, env.cfg, spec)).To(Succeed())
			Expect(env.read("/other/it.po")).To(Equal("msgid \"\"\nmsgstr \"\"\n\nmsgid \"Hello\"\nmsgstr \"Ciao\"\n"))
			Expect(env.read(env.template)).To(ContainSubstring("#- ../other/it.po\n"))
		})
		It("fails on invalid files without touching the template", func() {
			Expect(utils.WriteFile(env.fs, "/po/it.po", []byte("Hello = Ciao\n"))).To(Succeed())
			spec := config.NewLocaleImportSpec(env.template, "it.po")
			err := action.RunLocaleImport(ctx, env.cfg, spec)
			Expect(exitCode(err)).To(Equal(catErr.InvalidFormat))
			Expect(env.read(env.template)).To(Equal(v1mock.FakeTemplate))
		})
		It("fails on missing files", func() {
			spec := config.NewLocaleImportSpec(env.template, "it.po")
			err := action.RunLocaleImport(ctx, env.cfg, spec)
			Expect(exitCode(err)).To(Equal(catErr.LoadProject))
		})
	})

	Describe("Remove", func() {
		It("deregisters the locale and deletes its file", func() {
			spec := config.NewLocaleRemoveSpec(env.template, "es")
			spec.DeleteFile = true
			Expect(action.RunLocaleRemove(ctx, env.cfg, spec)).To(Succeed())
			Expect(env.read(env.template)).To(HavePrefix("#- fr.po\nmsgid"))
			Expect(utils.Exists(env.fs, "/po/es.po")).To(BeFalse())
		})
		It("keeps the file by default", func() {
			spec := config.NewLocaleRemoveSpec(env.template, "es")
			Expect(action.RunLocaleRemove(ctx, env.cfg, spec)).To(Succeed())
			Expect(utils.Exists(env.fs, "/po/es.po")).To(BeTrue())
		})
		It("deregisters locales whose file is missing", func() {
			spec := config.NewLocaleRemoveSpec(env.template, "fr")
			spec.DeleteFile = true
			Expect(action.RunLocaleRemove(ctx, env.cfg, spec)).To(Succeed())
			Expect(env.read(env.template)).To(HavePrefix("#- es.po\nmsgid"))
		})
		It("deregisters missing locales kept in a subdirectory", func() {
			tpl := strings.Replace(v1mock.FakeTemplate, "#- fr.po\n", "#- sub/de.po\n", 1)
			Expect(utils.WriteFile(env.fs, env.template, []byte(tpl))).To(Succeed())

			spec := config.NewLocaleRemoveSpec(env.template, "de")
			spec.DeleteFile = true
			Expect(action.RunLocaleRemove(ctx, env.cfg, spec)).To(Succeed())
			Expect(env.read(env.template)).To(HavePrefix("#- es.po\nmsgid"))
			Expect(env.read(env.template)).NotTo(ContainSubstring("sub/de.po"))
		})
		It("fails on unknown locales", func() {
			spec := config.NewLocaleRemoveSpec(env.template, "it")
			err := action.RunLocaleRemove(ctx, env.cfg, spec)
			Expect(exitCode(err)).To(Equal(catErr.UnknownLocale))
		})
	})
})
