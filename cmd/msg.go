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

func NewMsgCmd(root *cobra.Command) *cobra.Command {
	c := &cobra.Command{
		Use:   "msg",
		Short: "Manage the messages of a template",
	}
	root.AddCommand(c)
	newMsgAddCmd(c)
	newMsgRemoveCmd(c)
	newMsgListCmd(c)
	return c
}

func newMsgAddCmd(parent *cobra.Command) *cobra.Command {
	c := &cobra.Command{
		Use:   "add TEMPLATE SOURCE",
		Short: "Add a message to the template",
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
			spec := config.NewMsgAddSpec(*cfg, path, args[1])
			if err = readSpec(cfg, cmd, spec); err != nil {
				return err
			}
			err = action.RunMsgAdd(commandContext(cmd), cfg, spec)
			if err != nil {
				cfg.Logger.Errorf("msg add command failed: %v", err)
			}
			return err
		},
	}
	parent.AddCommand(c)
	addContextFlag(c)
	addMetaFlags(c)
	c.Flags().String("plural", "", "Plural form of the source")
	return c
}

func newMsgRemoveCmd(parent *cobra.Command) *cobra.Command {
	c := &cobra.Command{
		Use:   "remove TEMPLATE SOURCE",
		Short: "Remove a message from the template and its locales",
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
			spec := config.NewMsgRemoveSpec(*cfg, path, args[1])
			if err = readSpec(cfg, cmd, spec); err != nil {
				return err
			}
			err = action.RunMsgRemove(commandContext(cmd), cfg, spec)
			if err != nil {
				cfg.Logger.Errorf("msg remove command failed: %v", err)
			}
			return err
		},
	}
	parent.AddCommand(c)
	addContextFlag(c)
	return c
}

func newMsgListCmd(parent *cobra.Command) *cobra.Command {
	c := &cobra.Command{
		Use:   "list TEMPLATE",
		Short: "List the messages of the template",
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
			spec := config.NewMsgListSpec(path)
			if err = readSpec(cfg, cmd, spec); err != nil {
				return err
			}
			spec.Out = stdout()
			return action.RunMsgList(commandContext(cmd), cfg, spec)
		},
	}
	parent.AddCommand(c)
	addContextFlag(c)
	c.Flags().String("source", "", "Only list messages with this source")
	return c
}

// register the subcommand into rootCmd
var _ = NewMsgCmd(rootCmd)
