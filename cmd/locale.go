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

func NewLocaleCmd(root *cobra.Command) *cobra.Command {
	c := &cobra.Command{
		Use:   "locale",
		Short: "Manage the locales of a template",
	}
	root.AddCommand(c)
	newLocaleAddCmd(c)
	newLocaleImportCmd(c)
	newLocaleRemoveCmd(c)
	return c
}

func newLocaleAddCmd(parent *cobra.Command) *cobra.Command {
	c := &cobra.Command{
		Use:   "add TEMPLATE PATH",
		Short: "Create an empty locale file and register it",
		Long: "Create an empty locale file and register it in the template\n\n" +
			"PATH - locale file, relative to the template directory. If PATH is a\n" +
			"  directory the file is named after --code.",
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
			spec := config.NewLocaleAddSpec(path, args[1])
			if err = readSpec(cfg, cmd, spec); err != nil {
				return err
			}
			err = action.RunLocaleAdd(commandContext(cmd), cfg, spec)
			if err != nil {
				cfg.Logger.Errorf("locale add command failed: %v", err)
			}
			return err
		},
	}
	parent.AddCommand(c)
	c.Flags().String("code", "", "Locale code, such as pt_BR")
	return c
}

func newLocaleImportCmd(parent *cobra.Command) *cobra.Command {
	c := &cobra.Command{
		Use:   "import TEMPLATE PATH",
		Short: "Register an existing locale file",
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
			spec := config.NewLocaleImportSpec(path, args[1])
			if err = readSpec(cfg, cmd, spec); err != nil {
				return err
			}
			err = action.RunLocaleImport(commandContext(cmd), cfg, spec)
			if err != nil {
				cfg.Logger.Errorf("locale import command failed: %v", err)
			}
			return err
		},
	}
	parent.AddCommand(c)
	return c
}

func newLocaleRemoveCmd(parent *cobra.Command) *cobra.Command {
	c := &cobra.Command{
		Use:   "remove TEMPLATE CODE",
		Short: "Deregister a locale from the template",
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
			spec := config.NewLocaleRemoveSpec(path, args[1])
			if err = readSpec(cfg, cmd, spec); err != nil {
				return err
			}
			err = action.RunLocaleRemove(commandContext(cmd), cfg, spec)
			if err != nil {
				cfg.Logger.Errorf("locale remove command failed: %v", err)
			}
			return err
		},
	}
	parent.AddCommand(c)
	c.Flags().Bool("delete-file", false, "Also delete the locale file")
	return c
}

// register the subcommand into rootCmd
var _ = NewLocaleCmd(rootCmd)
