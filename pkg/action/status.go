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
	"io"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/docker/go-units"
	"github.com/leonelquinteros/gotext"
	"gopkg.in/yaml.v3"

	catErr "github.com/rancher-sandbox/pocat/pkg/error"
	"github.com/rancher-sandbox/pocat/pkg/gettext"
	v1 "github.com/rancher-sandbox/pocat/pkg/types/v1"
	"github.com/rancher-sandbox/pocat/pkg/utils"
)

// LocaleStatus is the translation progress of a single locale
type LocaleStatus struct {
	Code          string `yaml:"code"`
	Path          string `yaml:"path"`
	Size          string `yaml:"size"`
	gettext.Stats `yaml:",inline"`
}

// ProjectStatus is the report printed by RunStatus
type ProjectStatus struct {
	Template string         `yaml:"template"`
	Messages int            `yaml:"messages"`
	Locales  []LocaleStatus `yaml:"locales"`
	// Missing lists registered locale files that do not exist
	Missing []string `yaml:"missing,omitempty"`
}

// RunStatus reports the translation progress of every locale, or of spec.Locale only
func RunStatus(ctx context.Context, cfg *v1.RunConfig, spec *v1.StatusSpec) error {
	cat, err := loadProject(ctx, cfg, spec.Template)
	if err != nil {
		return err
	}

	codes := cat.Locales()
	if spec.Locale != "" {
		if _, err = requireLocale(cat, spec.Locale); err != nil {
			return err
		}
		codes = []string{spec.Locale}
	}

	status := ProjectStatus{Template: cat.Path(), Messages: len(cat.Template().Entries)}
	loaded := map[string]bool{}
	for _, code := range cat.Locales() {
		l, _ := cat.Locale(code)
		loaded[l.Path] = true
	}
	for _, m := range cat.Modules() {
		if !loaded[m] {
			status.Missing = append(status.Missing, m)
		}
	}

	for _, code := range codes {
		l, _ := cat.Locale(code)
		status.Locales = append(status.Locales, LocaleStatus{
			Code:  code,
			Path:  l.Path,
			Size:  units.BytesSize(float64(utils.FileSize(cfg.Fs, l.Path))),
			Stats: cat.Stats(code),
		})
		if spec.Verify {
			if err = verifyLocale(cat, code); err != nil {
				cfg.Logger.Errorf("Locale %s does not pass verification: %s", code, err.Error())
				return catErr.NewFromError(err, catErr.VerifyCatalog)
			}
			cfg.Logger.Infof("Locale %s verified", code)
		}
	}

	out := spec.Out
	if out == nil {
		out = os.Stdout
	}
	if spec.Output == "yaml" {
		enc := yaml.NewEncoder(out)
		enc.SetIndent(2)
		if err = enc.Encode(status); err != nil {
			return err
		}
		return enc.Close()
	}
	return printStatus(out, status)
}

func printStatus(out io.Writer, status ProjectStatus) error {
	fmt.Fprintf(out, "%s: %d messages\n", status.Template, status.Messages)
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "LOCALE\tTRANSLATED\tUNTRANSLATED\tSTALE\tPROGRESS\tSIZE")
	for _, l := range status.Locales {
		progress := 100
		if l.Total > 0 {
			progress = l.Translated * 100 / l.Total
		}
		fmt.Fprintf(w, "%s\t%d/%d\t%d\t%d\t%d%%\t%s\n", l.Code, l.Translated, l.Total, l.Untranslated, l.Stale, progress, l.Size)
	}
	for _, m := range status.Missing {
		fmt.Fprintf(w, "%s\tmissing\t\t\t\t\n", m)
	}
	return w.Flush()
}

// verifyLocale reads the serialized locale back with gotext and checks every
// translated message resolves to its translation
func verifyLocale(cat *gettext.Catalog, code string) error {
	f, err := cat.DumpLocale(code)
	if err != nil {
		return err
	}
	po := gotext.NewPo()
	po.Parse([]byte(f.Data))
	translations := po.GetDomain().GetTranslations()

	l, _ := cat.Locale(code)
	sources := map[string]int{}
	for _, e := range l.Entries {
		if key, ok := cat.Key(e.ID); ok {
			sources[key.Source]++
		}
	}
	for _, e := range l.Entries {
		key, ok := cat.Key(e.ID)
		// gotext has no notion of contexts without msgctxt, the last duplicate wins
		if !ok || e.Untranslated() || sources[key.Source] > 1 {
			continue
		}
		want := unquote(joinTranslations(e.Translations))
		got := ""
		if tr, ok := translations[unquote(key.Source)]; ok {
			got = tr.Get()
		}
		if got != want {
			return fmt.Errorf("%q reads back as %q, expected %q", key.Source, got, want)
		}
	}
	return nil
}

// unquote resolves escape sequences the way PO readers do, text that is
// not a valid quoted string is returned unchanged
func unquote(s string) string {
	if u, err := strconv.Unquote(`"` + s + `"`); err == nil {
		return u
	}
	return s
}
