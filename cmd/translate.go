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
	"github.com/spf13/cobra"

	"github.com/rancher-sandbox/pocat/pkg/action"
	"github.com/rancher-sandbox/pocat/pkg/config"
)

func NewTranslateCmd(root *cobra.Command) *cobra.Command {
	c := &cobra.Command{
		Use:   "translate TEMPLATE CODE SOURCE TRANSLATION...",
		Short: "Set the translation of a message",
		Long: "Set the translation of a message in a locale\n\n" +
			"TRANSLATION - one argument per line of the translation.",
		Args: cobra.MinimumNArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := readRunConfig(cmd)
			if err != nil {
				return err
			}
			path, err := templatePath(args[0])
			if err != nil {
				return err
			}
			spec := config.NewTranslateSpec(*cfg, path, args[1], args[2], args[3:]...)
			if err = readSpec(cfg, cmd, spec); err != nil {
				return err
			}
			err = action.RunTranslate(commandContext(cmd), cfg, spec)
			if err != nil {
				cfg.Logger.Errorf("translate command failed: %v", err)
			}
			return err
		},
	}
	root.AddCommand(c)
	addContextFlag(c)
	addFlagFlag(c)
	return c
}

func NewUntranslatedCmd(root *cobra.Command) *cobra.Command {
	c := &cobra.Command{
		Use:   "untranslated TEMPLATE CODE",
		Short: "List the messages a locale still has to translate",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := readRunConfig(cmd)
			if err != nil {
				return err
			}
			path, err := templatePath(args[0])
			if err != nil {
				return err
			}
			spec := config.NewUntranslatedSpec(path, args[1])
			if err = readSpec(cfg, cmd, spec); err != nil {
				return err
			}
			spec.Out = stdout()
			return action.RunUntranslated(commandContext(cmd), cfg, spec)
		},
	}
	root.AddCommand(c)
	return c
}

// register the subcommands into rootCmd
var _ = NewTranslateCmd(rootCmd)
var _ = NewUntranslatedCmd(rootCmd)
