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

package action

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/rancher-sandbox/pocat/pkg/constants"
	catErr "github.com/rancher-sandbox/pocat/pkg/error"
	v1 "github.com/rancher-sandbox/pocat/pkg/types/v1"
)

// RunTranslate sets the translation of a message in a locale. A manual
// translation clears the fuzzy flag.
func RunTranslate(ctx context.Context, cfg *v1.RunConfig, spec *v1.TranslateSpec) error {
	cat, err := loadProject(ctx, cfg, spec.Template)
	if err != nil {
		return err
	}
	if _, err = requireLocale(cat, spec.Code); err != nil {
		return err
	}
	id, err := findMessage(cat, spec.Context, spec.Source)
	if err != nil {
		return err
	}

	entry := cat.FindEntry(spec.Code, id)
	entry.Translations = append([]string{}, spec.Translations...)
	entry.Meta.Flags.Remove(constants.FuzzyFlag)
	for _, f := range spec.Flags {
		entry.Meta.Flags.Add(f)
	}
	cat.UpdateLocaleEntry(spec.Code, entry)

	cfg.Logger.Infof("Translated %q for %s", spec.Source, spec.Code)
	return saveLocale(cfg, cat, spec.Code)
}

// RunUntranslated prints the source of every message still to translate in a locale
func RunUntranslated(ctx context.Context, cfg *v1.RunConfig, spec *v1.UntranslatedSpec) error {
	cat, err := loadProject(ctx, cfg, spec.Template)
	if err != nil {
		return err
	}
	if _, err = requireLocale(cat, spec.Code); err != nil {
		return err
	}

	out := spec.Out
	if out == nil {
		out = os.Stdout
	}
	for _, e := range cat.UntranslatedEntries(spec.Code) {
		key, ok := cat.Key(e.ID)
		if !ok {
			return catErr.New(fmt.Sprintf("untranslated entry %s has no message", e.ID), catErr.UnknownMessage)
		}
		printKey(out, key)
	}
	if !cat.HasUntranslatedEntries(spec.Code) {
		cfg.Logger.Infof("Locale %s is fully translated", spec.Code)
	}
	return nil
}

func joinTranslations(translations []string) string {
	return strings.Join(translations, "")
}
