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

package project

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/hashicorp/go-multierror"
	"golang.org/x/sync/errgroup"

	"github.com/rancher-sandbox/pocat/pkg/gettext"
	v1 "github.com/rancher-sandbox/pocat/pkg/types/v1"
	"github.com/rancher-sandbox/pocat/pkg/utils"
)

// New returns an empty catalog for the template at path. Nothing is written.
func New(cfg *v1.RunConfig, path string) (*gettext.Catalog, error) {
	if !filepath.IsAbs(path) {
		return nil, fmt.Errorf("%w: %s", gettext.ErrPathNotAbsolute, path)
	}
	cat := gettext.NewCatalog(filepath.Clean(path))
	cat.Subscribe(ChangeLogger(cfg.Logger))
	return cat, nil
}

// Load reads the template at path and every locale listed in its header.
// Locale files are read concurrently and imported in module order. Missing
// locale files are skipped, a locale that fails to parse aborts the load.
func Load(ctx context.Context, cfg *v1.RunConfig, path string) (*gettext.Catalog, error) {
	if !filepath.IsAbs(path) {
		return nil, fmt.Errorf("%w: %s", gettext.ErrPathNotAbsolute, path)
	}
	path = filepath.Clean(path)

	cfg.Logger.Debugf("Loading template %s", path)
	data, err := cfg.Fs.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading template %s: %w", path, err)
	}
	tmpl, err := gettext.Parse(string(data))
	if err != nil {
		return nil, fmt.Errorf("parsing template %s: %w", path, err)
	}
	cat := gettext.NewCatalogFromTemplate(path, tmpl)

	modules := cat.Modules()
	contents := make([]*string, len(modules))

	g, gctx := errgroup.WithContext(ctx)
	if cfg.Concurrency > 0 {
		g.SetLimit(cfg.Concurrency)
	}
	for i, module := range modules {
		i, module := i, module
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			data, err := cfg.Fs.ReadFile(module)
			if os.IsNotExist(err) {
				cfg.Logger.Debugf("Skipping missing locale file %s", module)
				return nil
			}
			if err != nil {
				return fmt.Errorf("reading locale %s: %w", module, err)
			}
			text := string(data)
			contents[i] = &text
			return nil
		})
	}
	if err = g.Wait(); err != nil {
		return nil, err
	}

	for i, module := range modules {
		if contents[i] == nil {
			continue
		}
		l, err := cat.ImportLocaleFromString(module, *contents[i])
		if err != nil {
			return nil, err
		}
		cfg.Logger.Debugf("Loaded locale %s with %d entries", l.Code, len(l.Entries))
	}

	cat.Subscribe(ChangeLogger(cfg.Logger))
	return cat, nil
}

// SaveTemplate writes the template file of the catalog
func SaveTemplate(cfg *v1.RunConfig, cat *gettext.Catalog) error {
	f, err := cat.DumpTemplate()
	if err != nil {
		return err
	}
	return write(cfg, f)
}

// SaveLocale writes the file of a single locale
func SaveLocale(cfg *v1.RunConfig, cat *gettext.Catalog, code string) error {
	f, err := cat.DumpLocale(code)
	if err != nil {
		return err
	}
	return write(cfg, f)
}

// SaveAll writes every locale and the template. A failed write does not stop
// the others, all write errors are returned together.
func SaveAll(cfg *v1.RunConfig, cat *gettext.Catalog) error {
	files, err := cat.DumpAll()
	if err != nil {
		return err
	}
	var errs error
	for _, f := range files {
		if err := write(cfg, f); err != nil {
			errs = multierror.Append(errs, err)
		}
	}
	return errs
}

func write(cfg *v1.RunConfig, f gettext.File) error {
	cfg.Logger.Debugf("Writing %s", f.Path)
	if err := utils.WriteFile(cfg.Fs, f.Path, []byte(f.Data)); err != nil {
		return fmt.Errorf("writing %s: %w", f.Path, err)
	}
	return nil
}

// ChangeLogger logs catalog changes at debug level
func ChangeLogger(logger v1.Logger) gettext.Listener {
	return gettext.ListenerFunc(func(e gettext.Event) {
		switch {
		case e.Code != "" && e.ID != 0:
			logger.Debugf("catalog %s: locale %s %s", e.Kind, e.Code, e.ID)
		case e.Code != "":
			logger.Debugf("catalog %s: locale %s at %s", e.Kind, e.Code, e.Path)
		case e.Path != "":
			logger.Debugf("catalog %s: %s", e.Kind, e.Path)
		default:
			logger.Debugf("catalog %s: %s", e.Kind, e.ID)
		}
	})
}
