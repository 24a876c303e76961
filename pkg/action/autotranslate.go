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
	"time"

	"github.com/schollz/progressbar/v3"

	catErr "github.com/rancher-sandbox/pocat/pkg/error"
	v1 "github.com/rancher-sandbox/pocat/pkg/types/v1"
)

// RunAutoTranslate fills the untranslated messages of a locale with machine
// translations. Translated entries get the configured default flags, fuzzy
// unless configured otherwise. Failed messages are skipped.
func RunAutoTranslate(ctx context.Context, cfg *v1.RunConfig, spec *v1.AutoTranslateSpec) error {
	cat, err := loadProject(ctx, cfg, spec.Template)
	if err != nil {
		return err
	}
	if _, err = requireLocale(cat, spec.Code); err != nil {
		return err
	}

	pending := cat.UntranslatedEntries(spec.Code)
	if len(pending) == 0 {
		cfg.Logger.Infof("Locale %s is fully translated", spec.Code)
		return nil
	}
	cfg.Logger.Infof("Translating %d messages from %s to %s", len(pending), spec.SourceLang, spec.Code)

	var bar *progressbar.ProgressBar
	if spec.Progress != nil {
		bar = progressbar.NewOptions(len(pending),
			progressbar.OptionSetWriter(spec.Progress),
			progressbar.OptionShowCount(),
			progressbar.OptionSetWidth(40),
			progressbar.OptionSetDescription(spec.Code),
		)
	}

	translated, failed := 0, 0
	for i, entry := range pending {
		if i > 0 && spec.Delay > 0 {
			select {
			case <-ctx.Done():
				err = ctx.Err()
			case <-time.After(spec.Delay):
			}
			if err != nil {
				break
			}
		}

		key, _ := cat.Key(entry.ID)
		out, tErr := cfg.Translator.Translate(key.Source, spec.SourceLang, spec.Code)
		if bar != nil {
			_ = bar.Add(1)
		}
		if tErr != nil {
			cfg.Logger.Warnf("Translation failed for %q: %s", key.Source, tErr.Error())
			failed++
			continue
		}
		cfg.Logger.Debugf("%q -> %q", key.Source, out)

		entry.Translations = []string{out}
		for _, f := range cfg.DefaultFlags {
			entry.Meta.Flags.Add(f)
		}
		cat.UpdateLocaleEntry(spec.Code, entry)
		translated++
	}
	if bar != nil {
		_ = bar.Finish()
	}

	cfg.Logger.Infof("Translated %d messages, %d failed", translated, failed)
	if translated > 0 && !spec.DryRun {
		if sErr := saveLocale(cfg, cat, spec.Code); sErr != nil {
			return sErr
		}
	}
	if err != nil {
		return err
	}
	if translated == 0 && failed > 0 {
		return catErr.New(fmt.Sprintf("all %d translations failed", failed), catErr.TranslateCall)
	}
	return nil
}
