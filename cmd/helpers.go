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
	"context"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/rancher-sandbox/pocat/cmd/config"
	pkgConfig "github.com/rancher-sandbox/pocat/pkg/config"
	catErr "github.com/rancher-sandbox/pocat/pkg/error"
	v1 "github.com/rancher-sandbox/pocat/pkg/types/v1"
)

// runConfigOptions are applied to every run config, tests use them to inject fakes
var runConfigOptions []pkgConfig.GenericOptions

// readRunConfig is the common prologue of every command
func readRunConfig(cmd *cobra.Command) (*v1.RunConfig, error) {
	cfg, err := config.ReadConfigRun(viper.GetString("config-dir"), cmd.Flags(), runConfigOptions...)
	if err != nil {
		if cfg != nil {
			cfg.Logger.Errorf("Error reading config: %s\n", err)
		}
		return nil, catErr.NewFromError(err, catErr.ReadingRunConfig)
	}
	cmd.SilenceUsage = true
	return cfg, nil
}

// readSpec applies the command flags to spec
func readSpec(cfg *v1.RunConfig, cmd *cobra.Command, spec interface{ Sanitize() error }) error {
	if err := config.ReadSpec(spec, cmd.Flags()); err != nil {
		cfg.Logger.Errorf("Error reading spec: %s\n", err)
		return catErr.NewFromError(err, catErr.ReadingSpecConfig)
	}
	if v1.IsDebugLevel(cfg.Logger) {
		cfg.Logger.Debugf("Running %s with spec: %s", cmd.Name(), config.Dump(spec))
	}
	return nil
}

// templatePath makes the template argument absolute
func templatePath(arg string) (string, error) {
	path, err := filepath.Abs(arg)
	if err != nil {
		return "", catErr.NewFromError(err, catErr.InvalidArgs)
	}
	return path, nil
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

// stdout is resolved at run time so output redirections done after the
// commands are built are honored
func stdout() *os.File {
	return os.Stdout
}
