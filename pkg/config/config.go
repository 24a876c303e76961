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

package config

import (
	"github.com/twpayne/go-vfs"

	"github.com/rancher-sandbox/pocat/pkg/constants"
	"github.com/rancher-sandbox/pocat/pkg/gettext"
	"github.com/rancher-sandbox/pocat/pkg/translator"
	v1 "github.com/rancher-sandbox/pocat/pkg/types/v1"
)

type GenericOptions func(a *v1.RunConfig) error

func WithFs(fs v1.FS) func(r *v1.RunConfig) error {
	return func(r *v1.RunConfig) error {
		r.Fs = fs
		return nil
	}
}

func WithLogger(logger v1.Logger) func(r *v1.RunConfig) error {
	return func(r *v1.RunConfig) error {
		r.Logger = logger
		return nil
	}
}

func WithTranslator(t v1.Translator) func(r *v1.RunConfig) error {
	return func(r *v1.RunConfig) error {
		r.Translator = t
		return nil
	}
}

// NewRunConfig returns the default configuration, nil if an option fails
func NewRunConfig(opts ...GenericOptions) *v1.RunConfig {
	log := v1.NewLogger()

	r := &v1.RunConfig{
		Fs:             vfs.OSFS,
		Logger:         log,
		DefaultContext: gettext.DefaultContext,
		DefaultFlags:   constants.GetDefaultFlags(),
		SourceLang:     constants.DefaultSourceLang,
		TranslateDelay: constants.DefaultTranslateDelay,
	}
	for _, o := range opts {
		err := o(r)
		if err != nil {
			log.Errorf("error applying config option: %s", err.Error())
			return nil
		}
	}

	if r.Translator == nil {
		r.Translator = translator.NewGoogleTranslator(r.Logger)
	}
	return r
}

func projectSpec(template string) v1.ProjectSpec {
	return v1.ProjectSpec{Template: template}
}

func NewNewSpec(template string) *v1.NewSpec {
	return &v1.NewSpec{ProjectSpec: projectSpec(template)}
}

func NewLocaleAddSpec(template, path string) *v1.LocaleAddSpec {
	return &v1.LocaleAddSpec{ProjectSpec: projectSpec(template), Path: path}
}

func NewLocaleImportSpec(template, path string) *v1.LocaleImportSpec {
	return &v1.LocaleImportSpec{ProjectSpec: projectSpec(template), Path: path}
}

func NewLocaleRemoveSpec(template, code string) *v1.LocaleRemoveSpec {
	return &v1.LocaleRemoveSpec{ProjectSpec: projectSpec(template), Code: code}
}

func NewMsgAddSpec(cfg v1.RunConfig, template, source string) *v1.MsgAddSpec {
	return &v1.MsgAddSpec{ProjectSpec: projectSpec(template), Context: cfg.DefaultContext, Source: source}
}

func NewMsgRemoveSpec(cfg v1.RunConfig, template, source string) *v1.MsgRemoveSpec {
	return &v1.MsgRemoveSpec{ProjectSpec: projectSpec(template), Context: cfg.DefaultContext, Source: source}
}

func NewMsgListSpec(template string) *v1.MsgListSpec {
	return &v1.MsgListSpec{ProjectSpec: projectSpec(template)}
}

func NewTranslateSpec(cfg v1.RunConfig, template, code, source string, translations ...string) *v1.TranslateSpec {
	return &v1.TranslateSpec{
		ProjectSpec:  projectSpec(template),
		Code:         code,
		Context:      cfg.DefaultContext,
		Source:       source,
		Translations: translations,
	}
}

func NewStatusSpec(template string) *v1.StatusSpec {
	return &v1.StatusSpec{ProjectSpec: projectSpec(template), Output: "text"}
}

func NewUntranslatedSpec(template, code string) *v1.UntranslatedSpec {
	return &v1.UntranslatedSpec{ProjectSpec: projectSpec(template), Code: code}
}

func NewAutoTranslateSpec(cfg v1.RunConfig, template, code string) *v1.AutoTranslateSpec {
	return &v1.AutoTranslateSpec{
		ProjectSpec: projectSpec(template),
		Code:        code,
		SourceLang:  cfg.SourceLang,
		Delay:       cfg.TranslateDelay,
	}
}

func NewNormalizeSpec(template string) *v1.NormalizeSpec {
	return &v1.NormalizeSpec{ProjectSpec: projectSpec(template)}
}
