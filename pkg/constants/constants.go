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

package constants

import (
	"os"
	"time"
)

const (
	ConfigDir             = "/etc/pocat"
	ConfigName            = "config.yaml"
	EnvPrefix             = "POCAT"
	TemplateExt           = ".pot"
	LocaleExt             = ".po"
	FuzzyFlag             = "fuzzy"
	DefaultSourceLang     = "en"
	DefaultTranslateDelay = 1 * time.Second
	FilePerm              = os.FileMode(0644)
	DirPerm               = os.ModeDir | os.FileMode(0755)
)

// GetDefaultFlags returns the flags set on entries written by automatic translation
func GetDefaultFlags() []string {
	return []string{FuzzyFlag}
}
