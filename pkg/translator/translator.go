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

package translator

import (
	"fmt"
	"strings"

	"github.com/bregydoc/gtranslate"
	"golang.org/x/text/language"

	v1 "github.com/rancher-sandbox/pocat/pkg/types/v1"
)

// GoogleTranslator translates through the public Google Translate endpoint
type GoogleTranslator struct {
	logger v1.Logger
}

func NewGoogleTranslator(logger v1.Logger) *GoogleTranslator {
	return &GoogleTranslator{logger: logger}
}

// Translate translates text, from and to are gettext locale codes or language tags
func (g *GoogleTranslator) Translate(text, from, to string) (string, error) {
	src, err := LanguageCode(from)
	if err != nil {
		return "", err
	}
	dst, err := LanguageCode(to)
	if err != nil {
		return "", err
	}
	g.logger.Debugf("Translating %q from %s to %s", text, src, dst)
	out, err := gtranslate.TranslateWithParams(text, gtranslate.TranslationParams{From: src, To: dst})
	if err != nil {
		return "", fmt.Errorf("translating %q to %s: %w", text, dst, err)
	}
	return out, nil
}

// LanguageCode converts a locale code such as "pt_BR" into the language code
// understood by the backend. Only Chinese keeps its region.
func LanguageCode(code string) (string, error) {
	tag, err := language.Parse(strings.ReplaceAll(code, "_", "-"))
	if err != nil {
		return "", fmt.Errorf("invalid language %q: %w", code, err)
	}
	base, _ := tag.Base()
	if base.String() == "zh" {
		if region, conf := tag.Region(); conf != language.No {
			return "zh-" + region.String(), nil
		}
	}
	return base.String(), nil
}
