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

package v1

import (
	"fmt"
	"io"
	"path/filepath"
	"time"
)

// Translator turns a text written in one language into another one
type Translator interface {
	Translate(text, from, to string) (string, error)
}

// RunConfig is the runtime configuration shared by every action. Collaborators
// are injected, settings come from config files, env vars and flags.
type RunConfig struct {
	Logger     Logger     `yaml:"-" mapstructure:"-"`
	Fs         FS         `yaml:"-" mapstructure:"-"`
	Translator Translator `yaml:"-" mapstructure:"-"`

	DefaultContext string        `yaml:"default-context,omitempty" mapstructure:"default-context"`
	DefaultFlags   []string      `yaml:"default-flags,omitempty" mapstructure:"default-flags"`
	SourceLang     string        `yaml:"source-lang,omitempty" mapstructure:"source-lang"`
	TranslateDelay time.Duration `yaml:"translate-delay,omitempty" mapstructure:"translate-delay"`
	// Concurrency bounds the number of locale files read at once, 0 means unbounded
	Concurrency int `yaml:"concurrency,omitempty" mapstructure:"concurrency"`
}

// Sanitize checks the consistency of the settings
func (r RunConfig) Sanitize() error {
	if r.TranslateDelay < 0 {
		return fmt.Errorf("invalid translate-delay %s, it can't be negative", r.TranslateDelay)
	}
	if r.Concurrency < 0 {
		return fmt.Errorf("invalid concurrency %d, it can't be negative", r.Concurrency)
	}
	return nil
}

// ProjectSpec is embedded by every spec working on an existing template
type ProjectSpec struct {
	Template string `yaml:"template" mapstructure:"template"`
}

func (p ProjectSpec) sanitize() error {
	if p.Template == "" {
		return fmt.Errorf("undefined template path")
	}
	if !filepath.IsAbs(p.Template) {
		return fmt.Errorf("template path %s must be absolute", p.Template)
	}
	return nil
}

// NewSpec holds the arguments to create a template
type NewSpec struct {
	ProjectSpec `mapstructure:",squash"`
	Force       bool `mapstructure:"force"`
}

func (n NewSpec) Sanitize() error {
	return n.ProjectSpec.sanitize()
}

type LocaleAddSpec struct {
	ProjectSpec `mapstructure:",squash"`
	Path        string `mapstructure:"path"`
	Code        string `mapstructure:"code"`
}

func (l LocaleAddSpec) Sanitize() error {
	if l.Path == "" {
		return fmt.Errorf("undefined locale path")
	}
	return l.ProjectSpec.sanitize()
}

type LocaleImportSpec struct {
	ProjectSpec `mapstructure:",squash"`
	Path        string `mapstructure:"path"`
}

func (l LocaleImportSpec) Sanitize() error {
	if l.Path == "" {
		return fmt.Errorf("undefined locale path")
	}
	return l.ProjectSpec.sanitize()
}

type LocaleRemoveSpec struct {
	ProjectSpec `mapstructure:",squash"`
	Code        string `mapstructure:"code"`
	DeleteFile  bool   `mapstructure:"delete-file"`
}

func (l LocaleRemoveSpec) Sanitize() error {
	if l.Code == "" {
		return fmt.Errorf("undefined locale code")
	}
	return l.ProjectSpec.sanitize()
}

type MsgAddSpec struct {
	ProjectSpec `mapstructure:",squash"`
	Context     string   `mapstructure:"context"`
	Source      string   `mapstructure:"source"`
	Plural      string   `mapstructure:"plural"`
	Comments    []string `mapstructure:"comment"`
	References  []string `mapstructure:"reference"`
	Flags       []string `mapstructure:"flag"`
}

func (m MsgAddSpec) Sanitize() error {
	if m.Source == "" {
		return fmt.Errorf("the empty source is reserved for the header")
	}
	return m.ProjectSpec.sanitize()
}

type MsgRemoveSpec struct {
	ProjectSpec `mapstructure:",squash"`
	Context     string `mapstructure:"context"`
	Source      string `mapstructure:"source"`
}

func (m MsgRemoveSpec) Sanitize() error {
	if m.Source == "" {
		return fmt.Errorf("the header message can't be removed")
	}
	return m.ProjectSpec.sanitize()
}

type MsgListSpec struct {
	ProjectSpec `mapstructure:",squash"`
	Context     string    `mapstructure:"context"`
	Source      string    `mapstructure:"source"`
	Out         io.Writer `mapstructure:"-"`
}

func (m MsgListSpec) Sanitize() error {
	return m.ProjectSpec.sanitize()
}

type TranslateSpec struct {
	ProjectSpec  `mapstructure:",squash"`
	Code         string   `mapstructure:"code"`
	Context      string   `mapstructure:"context"`
	Source       string   `mapstructure:"source"`
	Translations []string `mapstructure:"translations"`
	Flags        []string `mapstructure:"flag"`
}

func (t TranslateSpec) Sanitize() error {
	if t.Code == "" {
		return fmt.Errorf("undefined locale code")
	}
	if len(t.Translations) == 0 {
		return fmt.Errorf("at least one translation line is required")
	}
	return t.ProjectSpec.sanitize()
}

type StatusSpec struct {
	ProjectSpec `mapstructure:",squash"`
	Locale      string    `mapstructure:"locale"`
	Output      string    `mapstructure:"output"`
	Verify      bool      `mapstructure:"verify"`
	Out         io.Writer `mapstructure:"-"`
}

func (s StatusSpec) Sanitize() error {
	switch s.Output {
	case "", "text", "yaml":
	default:
		return fmt.Errorf("unknown output format %s", s.Output)
	}
	return s.ProjectSpec.sanitize()
}

type UntranslatedSpec struct {
	ProjectSpec `mapstructure:",squash"`
	Code        string    `mapstructure:"code"`
	Out         io.Writer `mapstructure:"-"`
}

func (u UntranslatedSpec) Sanitize() error {
	if u.Code == "" {
		return fmt.Errorf("undefined locale code")
	}
	return u.ProjectSpec.sanitize()
}

type AutoTranslateSpec struct {
	ProjectSpec `mapstructure:",squash"`
	Code        string        `mapstructure:"code"`
	SourceLang  string        `mapstructure:"source-lang"`
	Delay       time.Duration `mapstructure:"delay"`
	DryRun      bool          `mapstructure:"dry-run"`
	// Progress receives the progress bar, nil disables it
	Progress io.Writer `mapstructure:"-"`
}

func (a AutoTranslateSpec) Sanitize() error {
	if a.Code == "" {
		return fmt.Errorf("undefined locale code")
	}
	if a.SourceLang == "" {
		return fmt.Errorf("undefined source language")
	}
	if a.Delay < 0 {
		return fmt.Errorf("invalid delay %s, it can't be negative", a.Delay)
	}
	return a.ProjectSpec.sanitize()
}

type NormalizeSpec struct {
	ProjectSpec `mapstructure:",squash"`
}

func (n NormalizeSpec) Sanitize() error {
	return n.ProjectSpec.sanitize()
}
