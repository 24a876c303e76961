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

package mocks

import (
	"path/filepath"

	"github.com/rancher-sandbox/pocat/pkg/constants"
	v1 "github.com/rancher-sandbox/pocat/pkg/types/v1"
	"github.com/rancher-sandbox/pocat/pkg/utils"
)

// FakeTemplate is a template with a header listing es.po and fr.po and two messages
const FakeTemplate = `#- es.po
#- fr.po
msgid ""
msgstr ""

#: main.go:10
msgid "Hello"
msgstr ""

#. shown on exit
msgid "Goodbye"
msgstr ""
`

// FakeSpanishLocale translates one of the two FakeTemplate messages
const FakeSpanishLocale = `msgid ""
msgstr ""

msgid "Hello"
msgstr "Hola"
`

// FakeProject writes a template named messages.pot under dir plus the given
// locale files, keyed by file name. It returns the template path.
// Used for unit testing only.
func FakeProject(fs v1.FS, dir, template string, locales map[string]string) (string, error) {
	err := utils.MkdirAll(fs, dir, constants.DirPerm)
	if err != nil {
		return "", err
	}
	templatePath := filepath.Join(dir, "messages"+constants.TemplateExt)
	err = fs.WriteFile(templatePath, []byte(template), constants.FilePerm)
	if err != nil {
		return "", err
	}
	for name, data := range locales {
		err = utils.WriteFile(fs, filepath.Join(dir, name), []byte(data))
		if err != nil {
			return "", err
		}
	}
	return templatePath, nil
}
