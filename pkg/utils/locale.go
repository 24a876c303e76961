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

package utils

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
)

// CanonicalLocaleCode accepts "pt-br", "pt_BR" and the like and returns the
// gettext spelling of the code, "pt_BR"
func CanonicalLocaleCode(code string) (string, error) {
	tag, err := language.Parse(strings.ReplaceAll(code, "_", "-"))
	if err != nil {
		return "", fmt.Errorf("invalid locale code %q: %w", code, err)
	}
	return strings.ReplaceAll(tag.String(), "-", "_"), nil
}
