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

func NewNormalizeCmd(root *cobra.Command) *cobra.Command {
	c := &cobra.Command{
		Use:   "normalize TEMPLATE",
		Short: "Rewrite a template and its locales in canonical form",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := readRunConfig(cmd)
			if err != nil {
				return err
			}
			path, err := templatePath(args[0])
			if err != nil {
				return err
			}
			spec := config.NewNormalizeSpec(path)
			if err = readSpec(cfg, cmd, spec); err != nil {
				return err
			}
			err = action.RunNormalize(commandContext(cmd), cfg, spec)
			if err != nil {
				cfg.Logger.Errorf("normalize command failed: %v", err)
			}
			return err
		},
	}
	root.AddCommand(c)
	return c
}

// register the subcommand into rootCmd
var _ = NewNormalizeCmd(rootCmd)
