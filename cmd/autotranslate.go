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

package cmd

import (
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/rancher-sandbox/pocat/pkg/action"
	"github.com/rancher-sandbox/pocat/pkg/config"
)

func NewAutoTranslateCmd(root *cobra.Command) *cobra.Command {
	c := &cobra.Command{
		Use:   "autotranslate TEMPLATE CODE",
		Short: "Machine translate the untranslated messages of a locale",
		Long: "Machine translate the untranslated messages of a locale\n\n" +
			"Translated messages are flagged with the configured default-flags\n" +
			"(fuzzy by default) so they can be reviewed.",
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := readRunConfig(cmd)
			if err != nil {
				return err
			}
			path, err := templatePath(args[0])
			if err != nil {
				return err
			}
			spec := config.NewAutoTranslateSpec(*cfg, path, args[1])
			if err = readSpec(cfg, cmd, spec); err != nil {
				return err
			}
			if noProgress, _ := cmd.Flags().GetBool("no-progress"); !noProgress && isatty.IsTerminal(os.Stderr.Fd()) {
				spec.Progress = os.Stderr
			}
			err = action.RunAutoTranslate(commandContext(cmd), cfg, spec)
			if err != nil {
				cfg.Logger.Errorf("autotranslate command failed: %v", err)
			}
			return err
		},
	}
	root.AddCommand(c)
	addTranslateFlags(c)
	c.Flags().Duration("delay", 0, "Pause between two translation requests, overrides translate-delay")
	c.Flags().Bool("dry-run", false, "Translate without writing the locale file")
	c.Flags().Bool("no-progress", false, "Do not show a progress bar")
	return c
}

// register the subcommand into rootCmd
var _ = NewAutoTranslateCmd(rootCmd)
