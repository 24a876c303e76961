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
	"slices"

	"github.com/rancher-sandbox/pocat/pkg/gettext"
	v1 "github.com/rancher-sandbox/pocat/pkg/types/v1"
)

// RunMsgAdd adds a message to the template. Metadata given for an existing
// message is merged into its entry.
func RunMsgAdd(ctx context.Context, cfg *v1.RunConfig, spec *v1.MsgAddSpec) error {
	cat, err := loadProject(ctx, cfg, spec.Template)
	if err != nil {
		return err
	}

	id := cat.AppendEntry(gettext.NewMessageKey(spec.Context, spec.Source, spec.Plural))
	var entry *gettext.Entry
	for _, e := range cat.Template().Entries {
		if e.ID == id {
			entry = e
		}
	}
	if entry == nil {
		return fmt.Errorf("message %s has no template entry", id)
	}

	for _, c := range spec.Comments {
		entry.Meta.Comments = appendMissing(entry.Meta.Comments, c)
	}
	for _, r := range spec.References {
		entry.Meta.References = appendMissing(entry.Meta.References, r)
	}
	for _, f := range spec.Flags {
		entry.Meta.Flags.Add(f)
	}
	cat.UpdateTemplateEntry(entry)

	cfg.Logger.Infof("Added message %q in context %s", spec.Source, gettext.NewMessageKey(spec.Context, "", "").Context)
	return saveTemplate(cfg, cat)
}

// RunMsgRemove removes a message from the template and prunes its locale entries
func RunMsgRemove(ctx context.Context, cfg *v1.RunConfig, spec *v1.MsgRemoveSpec) error {
	cat, err := loadProject(ctx, cfg, spec.Template)
	if err != nil {
		return err
	}

	id, err := findMessage(cat, spec.Context, spec.Source)
	if err != nil {
		return err
	}
	cat.RemoveEntry(id)
	cfg.Logger.Infof("Removed message %q", spec.Source)
	return saveAll(cfg, cat)
}

// RunMsgList prints the keys matching the context and source filter, one per line as
// "context<TAB>source"
func RunMsgList(ctx context.Context, cfg *v1.RunConfig, spec *v1.MsgListSpec) error {
	cat, err := loadProject(ctx, cfg, spec.Template)
	if err != nil {
		return err
	}

	out := spec.Out
	if out == nil {
		out = os.Stdout
	}
	for _, key := range cat.FilterByKey(gettext.KeyFilter{Context: spec.Context, Source: spec.Source}) {
		if key.IsHeader() {
			continue
		}
		printKey(out, key)
	}
	return nil
}

func printKey(out io.Writer, key gettext.MessageKey) {
	if key.Plural != "" {
		fmt.Fprintf(out, "%s\t%s\t%s\n", key.Context, key.Source, key.Plural)
		return
	}
	fmt.Fprintf(out, "%s\t%s\n", key.Context, key.Source)
}

func appendMissing(items []string, item string) []string {
	if slices.Contains(items, item) {
		return items
	}
	return append(items, item)
}
