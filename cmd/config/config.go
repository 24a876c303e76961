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

package config

import (
	"fmt"
	"io"
	"os"
	"reflect"
	"regexp"
	"strings"

	"github.com/joho/godotenv"
	"github.com/mattn/go-isatty"
	"github.com/mitchellh/mapstructure"
	"github.com/sanity-io/litter"
	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/rancher-sandbox/pocat/pkg/config"
	"github.com/rancher-sandbox/pocat/pkg/constants"
	v1 "github.com/rancher-sandbox/pocat/pkg/types/v1"
)

// keys of the run config that can be set from config files, env vars and flags
var runConfigKeys = []string{"default-context", "default-flags", "source-lang", "translate-delay", "concurrency"}

// sanitizer is implemented by the run config and every spec
type sanitizer interface {
	Sanitize() error
}

func setDecoder(config *mapstructure.DecoderConfig) {
	// Slices from configs replace the defaults instead of being merged into them
	config.ZeroFields = true
}

func decodeHook(config *mapstructure.DecoderConfig) {
	config.DecodeHook = mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
	)
}

// bindGivenFlags binds to viper only passed flags, ignoring any non provided flag
func bindGivenFlags(vp *viper.Viper, flagSet *pflag.FlagSet) {
	if flagSet != nil {
		flagSet.VisitAll(func(f *pflag.Flag) {
			if f.Changed {
				_ = vp.BindPFlag(f.Name, f)
			}
		})
	}
}

func setupLogger(cfg *v1.RunConfig, out *os.File) {
	// Set debug level
	if viper.GetBool("debug") {
		cfg.Logger.SetLevel(v1.DebugLevel())
	}

	// Colors only make sense on a terminal, file and stdout format are otherwise equal
	tty := isatty.IsTerminal(out.Fd())
	cfg.Logger.SetFormatter(&logrus.TextFormatter{
		ForceColors:      tty,
		DisableColors:    !tty,
		DisableTimestamp: false,
		FullTimestamp:    true,
	})

	// Logfile
	logfile := viper.GetString("logfile")
	if logfile != "" {
		o, err := cfg.Fs.OpenFile(logfile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, constants.FilePerm)
		if err != nil {
			cfg.Logger.Errorf("Could not open %s for logging to file: %s", logfile, err.Error())
		} else if viper.GetBool("quiet") { // if quiet is set, only set the log to the file
			cfg.Logger.SetOutput(o)
			return
		} else { // else set it to both stdout and the file
			cfg.Logger.SetOutput(io.MultiWriter(out, o))
			return
		}
	}
	if viper.GetBool("quiet") { // quiet is enabled so discard all logging
		cfg.Logger.SetOutput(io.Discard)
	} else { // default to stdout
		cfg.Logger.SetOutput(out)
	}
}

// ReadConfigRun builds the run config from defaults, the config file in configDir,
// an optional dotenv file, POCAT_ environment variables and the given flags, in
// increasing order of precedence
func ReadConfigRun(configDir string, flags *pflag.FlagSet, opts ...config.GenericOptions) (*v1.RunConfig, error) {
	cfg := config.NewRunConfig(append([]config.GenericOptions{config.WithLogger(v1.NewLogger())}, opts...)...)
	if cfg == nil {
		return nil, fmt.Errorf("failed applying run config options")
	}
	setupLogger(cfg, os.Stdout)

	if envFile := viper.GetString("env-file"); envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			return cfg, fmt.Errorf("loading env file %s: %w", envFile, err)
		}
	}

	// Defaults make every key known to viper so env vars are also unmarshalled
	viper.SetDefault("default-context", cfg.DefaultContext)
	viper.SetDefault("default-flags", cfg.DefaultFlags)
	viper.SetDefault("source-lang", cfg.SourceLang)
	viper.SetDefault("translate-delay", cfg.TranslateDelay)
	viper.SetDefault("concurrency", cfg.Concurrency)

	if configDir == "" {
		configDir = constants.ConfigDir
	}
	viper.AddConfigPath(configDir)
	viper.SetConfigType("yaml")
	viper.SetConfigName(constants.ConfigName)
	// If a config file is found, read it in.
	if err := viper.MergeInConfig(); err != nil {
		if _, notFound := err.(viper.ConfigFileNotFoundError); !notFound {
			return cfg, fmt.Errorf("reading config in %s: %w", configDir, err)
		}
	}

	// Set the prefix for vars so we get only the ones starting with POCAT
	viper.SetEnvPrefix(constants.EnvPrefix)

	// Keys use dashes, env vars use underscores
	replacer := strings.NewReplacer("-", "_")
	viper.SetEnvKeyReplacer(replacer)
	viper.AutomaticEnv() // read in environment variables that match

	if flags != nil {
		for _, key := range runConfigKeys {
			if f := flags.Lookup(key); f != nil && f.Changed {
				_ = viper.BindPFlag(key, f)
			}
		}
	}

	// unmarshal all the vars into the config object
	if err := viper.Unmarshal(cfg, setDecoder, decodeHook); err != nil {
		return cfg, fmt.Errorf("decoding run config: %w", err)
	}
	if err := cfg.Sanitize(); err != nil {
		return cfg, err
	}

	if v1.IsDebugLevel(cfg.Logger) {
		cfg.Logger.Debugf("Loaded config: %s", Dump(cfg))
	}
	return cfg, nil
}

// ReadSpec overrides the fields of spec with the given flags and sanitizes the result
func ReadSpec(spec sanitizer, flags *pflag.FlagSet) error {
	if reflect.ValueOf(spec).Kind() != reflect.Ptr {
		return fmt.Errorf("spec must be a pointer, got %T", spec)
	}
	vp := viper.New()
	bindGivenFlags(vp, flags)
	if err := vp.Unmarshal(spec, decodeHook); err != nil {
		return fmt.Errorf("decoding spec: %w", err)
	}
	return spec.Sanitize()
}

var dumpOptions = litter.Options{
	HidePrivateFields: true,
	FieldExclusions:   regexp.MustCompile(`^(Logger|Fs|Translator|Out|Progress)$`),
}

// Dump renders a config or spec for debug logs, leaving out the collaborators
func Dump(v interface{}) string {
	return dumpOptions.Sdump(v)
}
