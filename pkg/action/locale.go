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
	"path/filepath"

	"github.com/rancher-sandbox/pocat/pkg/constants"
	catErr "github.com/rancher-sandbox/pocat/pkg/error"
	"github.com/rancher-sandbox/pocat/pkg/gettext"
	v1 "github.com/rancher-sandbox/pocat/pkg/types/v1"
	"github.com/rancher-sandbox/pocat/pkg/utils"
)

// RunLocaleAdd creates an empty locale file and registers it in the template.
// Path may be a directory, the file is then named after the locale code.
func RunLocaleAdd(ctx context.Context, cfg *v1.RunConfig, spec *v1.LocaleAddSpec) error {
	cat, err := loadProject(ctx, cfg, spec.Template)
	if err != nil {
		return err
	}

	path := cat.AbsolutePath(spec.Path)
	if isDir, _ := utils.IsDir(cfg.Fs, path); isDir || filepath.Ext(path) == "" {
		if spec.Code == "" {
			return catErr.New("a locale code is required when the path is a directory", catErr.InvalidArgs)
		}
		code, err := utils.CanonicalLocaleCode(spec.Code)
		if err != nil {
			return catErr.NewFromError(err, catErr.InvalidLocaleCode)
		}
		path = filepath.Join(path, code+constants.LocaleExt)
	}

	// the code is always derived from the file name when loading
	code := gettext.CodeFromPath(path)
	canonical, err := utils.CanonicalLocaleCode(code)
	if err != nil {
		return catErr.NewFromError(err, catErr.InvalidLocaleCode)
	}
	if canonical != code {
		cfg.Logger.Warnf("Locale file %s is not named after the canonical code %s", path, canonical)
	}
	if spec.Code != "" {
		if want, _ := utils.CanonicalLocaleCode(spec.Code); want != canonical {
			return catErr.New(fmt.Sprintf("locale code %s does not match file %s", spec.Code, path), catErr.InvalidArgs)
		}
	}

	if _, ok := cat.Locale(code); ok {
		return catErr.New(fmt.Sprintf("locale %s already exists", code), catErr.InvalidArgs)
	}
	if exists, _ := utils.Exists(cfg.Fs, path); exists {
		return catErr.New(fmt.Sprintf("%s already exists, import it instead", path), catErr.InvalidArgs)
	}

	cfg.Logger.Infof("Adding locale %s at %s", code, path)
	cat.CreateLocale(path, code)
	if err = saveLocale(cfg, cat, code); err != nil {
		return err
	}
	return saveTemplate(cfg, cat)
}

// RunLocaleImport registers an existing locale file in the template. The
// locale file is rewritten in canonical form.
func RunLocaleImport(ctx context.Context, cfg *v1.RunConfig, spec *v1.LocaleImportSpec) error {
	cat, err := loadProject(ctx, cfg, spec.Template)
	if err != nil {
		return err
	}

	path := cat.AbsolutePath(spec.Path)
	data, err := cfg.Fs.ReadFile(path)
	if err != nil {
		cfg.Logger.Errorf("Error reading %s: %s", path, err.Error())
		return catErr.NewFromError(err, catErr.LoadProject)
	}

	l, err := cat.ImportLocaleFromString(path, string(data))
	if err != nil {
		cfg.Logger.Errorf("Error importing %s: %s", path, err.Error())
		return catErr.FromCatalog(err, catErr.LoadProject)
	}
	cfg.Logger.Infof("Imported locale %s with %d entries", l.Code, len(l.Entries))

	if err = saveLocale(cfg, cat, l.Code); err != nil {
		return err
	}
	return saveTemplate(cfg, cat)
}

// RunLocaleRemove deregisters a locale from the template and optionally deletes its file
func RunLocaleRemove(ctx context.Context, cfg *v1.RunConfig, spec *v1.LocaleRemoveSpec) error {
	cat, err := loadProject(ctx, cfg, spec.Template)
	if err != nil {
		return err
	}

	l, ok := cat.Locale(spec.Code)
	if !ok {
		// locales whose file is missing are not loaded but are still listed as modules
		path, found := moduleForCode(cat.Modules(), spec.Code)
		if !found {
			_, err = requireLocale(cat, spec.Code)
			return err
		}
		cat.RemoveModule(path)
		l = &gettext.Locale{Code: spec.Code, Path: path}
	} else {
		cat.RemoveLocale(spec.Code)
	}

	cfg.Logger.Infof("Removing locale %s", spec.Code)
	if err = saveTemplate(cfg, cat); err != nil {
		return err
	}

	if spec.DeleteFile {
		cfg.Logger.Debugf("Deleting %s", l.Path)
		if err = cfg.Fs.Remove(l.Path); err != nil && !os.IsNotExist(err) {
			return catErr.NewFromError(err, catErr.RemoveFile)
		}
	}
	return nil
}

func moduleForCode(modules []string, code string) (string, bool) {
	for _, m := range modules {
		if gettext.CodeFromPath(m) == code {
			return m, true
		}
	}
	return "", false
}
