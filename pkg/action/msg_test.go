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
	"bytes"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/rancher-sandbox/pocat/pkg/action"
	"github.com/rancher-sandbox/pocat/pkg/config"
	catErr "github.com/rancher-sandbox/pocat/pkg/error"
	v1mock "github.com/rancher-sandbox/pocat/pkg/mocks"
)

var _ = Describe("Message Actions", Label("msg"), func() {
	var env *actionEnv

	BeforeEach(func() {
		env = newActionEnv(map[string]string{"es.po": v1mock.FakeSpanishLocale})
	})
	AfterEach(func() {
		env.cleanup()
	})

	It("appends a new message with its metadata", func() {
		spec := config.NewMsgAddSpec(*env.cfg, env.template, "Open")
		spec.Comments = []string{"toolbar"}
		spec.Flags = []string{"c-format"}
		Expect(action.RunMsgAdd(ctx, env.cfg, spec)).To(Succeed())
		Expect(env.read(env.template)).To(HaveSuffix("msgid \"Goodbye\"\nmsgstr \"\"\n\n# toolbar\n#, c-format\nmsgid \"Open\"\nmsgstr \"\"\n"))
	})
	It("merges metadata into an existing message", func() {
		spec := config.NewMsgAddSpec(*env.cfg, env.template, "Hello")
		spec.References = []string{"main.go:10", "other.go:1"}
		Expect(action.RunMsgAdd(ctx, env.cfg, spec)).To(Succeed())
		Expect(env.read(env.template)).To(ContainSubstring("#: main.go:10\n#: other.go:1\nmsgid \"Hello\"\n"))
		Expect(env.read(env.template)).To(HaveSuffix("msgid \"Goodbye\"\nmsgstr \"\"\n"))
	})
	It("removes a message from the template and its locales", func() {
		spec := config.NewMsgRemoveSpec(*env.cfg, env.template, "Hello")
		Expect(action.RunMsgRemove(ctx, env.cfg, spec)).To(Succeed())
		Expect(env.read(env.template)).NotTo(ContainSubstring("Hello"))
		Expect(env.read("/po/es.po")).To(Equal("msgid \"\"\nmsgstr \"\"\n"))
	})
	It("fails to remove unknown messages", func() {
		spec := config.NewMsgRemoveSpec(*env.cfg, env.template, "Welcome")
		err := action.RunMsgRemove(ctx, env.cfg, spec)
		Expect(exitCode(err)).To(Equal(catErr.UnknownMessage))
	})
	It("lists the messages", func() {
		out := &bytes.Buffer{}
		spec := config.NewMsgListSpec(env.template)
		spec.Out = out
		Expect(action.RunMsgList(ctx, env.cfg, spec)).To(Succeed())
		Expect(out.String()).To(Equal("default\tHello\ndefault\tGoodbye\n"))

		out.Reset()
		spec.Source = "Goodbye"
		Expect(action.RunMsgList(ctx, env.cfg, spec)).To(Succeed())
		Expect(out.String()).To(Equal("default\tGoodbye\n"))
	})
})
