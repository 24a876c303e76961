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

	catErr "github.com/rancher-sandbox/pocat/pkg/error"
	"github.com/rancher-sandbox/pocat/pkg/gettext"
	"github.com/rancher-sandbox/pocat/pkg/project"
	v1 "github.com/rancher-sandbox/pocat/pkg/types/v1"
)

func loadProject(ctx context.Context, cfg *v1.RunConfig, template string) (*gettext.Catalog, error) {
	cat, err := project.Load(ctx, cfg, template)
	if err != nil {
		cfg.Logger.Errorf("Error loading %s: %s", template, err.Error())
		return nil, catErr.FromCatalog(err, catErr.LoadProject)
	}
	return cat, nil
}

// findMessage returns the id of the message with the given context and source
func findMessage(cat *gettext.Catalog, context, source string) (gettext.OpaqueID, error) {
	key := gettext.NewMessageKey(context, source, "")
	for _, id := range cat.FilterIDs(gettext.KeyFilter{Context: key.Context, Source: key.Source}) {
		if k, _ := cat.Key(id); k.Same(key) {
			return id, nil
		}
	}
	err := fmt.Errorf("%w: %q in context %q", gettext.ErrUnknownIdentity, source, key.Context)
	return 0, catErr.NewFromError(err, catErr.UnknownMessage)
}

func requireLocale(cat *gettext.Catalog, code string) (*gettext.Locale, error) {
	l, ok := cat.Locale(code)
	if !ok {
		err := fmt.Errorf("%w: %s", gettext.ErrUnknownLocale, code)
		return nil, catErr.NewFromError(err, catErr.UnknownLocale)
	}
	return l, nil
}

func saveAll(cfg *v1.RunConfig, cat *gettext.Catalog) error {
	if err := project.SaveAll(cfg, cat); err != nil {
		cfg.Logger.Errorf("Error saving %s: %s", cat.Path(), err.Error())
		return catErr.NewFromError(err, catErr.SaveProject)
	}
	return nil
}

func saveTemplate(cfg *v1.RunConfig, cat *gettext.Catalog) error {
	if err := project.SaveTemplate(cfg, cat); err != nil {
		cfg.Logger.Errorf("Error saving %s: %s", cat.Path(), err.Error())
		return catErr.NewFromError(err, catErr.SaveProject)
	}
	return nil
}

func saveLocale(cfg *v1.RunConfig, cat *gettext.Catalog, code string) error {
	if err := project.SaveLocale(cfg, cat, code); err != nil {
		cfg.Logger.Errorf("Error saving locale %s: %s", code, err.Error())
		return catErr.FromCatalog(err, catErr.SaveProject)
	}
	return nil
}
