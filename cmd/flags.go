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
	"strings"

	"github.com/spf13/cobra"
)

// addContextFlag adds the message context flag shared by the message commands
func addContextFlag(cmd *cobra.Command) {
	cmd.Flags().String("context", "", "Message context (defaults to the configured default-context)")
}

// addMetaFlags adds flags to set the metadata of a message
func addMetaFlags(cmd *cobra.Command) {
	cmd.Flags().StringArray("comment", []string{}, "Add a translator comment (repeatable)")
	cmd.Flags().StringArray("reference", []string{}, "Add a source reference such as main.go:10 (repeatable)")
	addFlagFlag(cmd)
}

// addFlagFlag adds the repeatable flag to set message flags such as c-format
func addFlagFlag(cmd *cobra.Command) {
	cmd.Flags().StringArray("flag", []string{}, "Add a message flag (repeatable)")
}

// addTranslateFlags adds the run config flags used by machine translation
func addTranslateFlags(cmd *cobra.Command) {
	cmd.Flags().String("source-lang", "", "Language of the template messages")
	cmd.Flags().Duration("translate-delay", 0, "Pause between two translation requests")
}

// addOutputFlag adds the output format flag
func addOutputFlag(cmd *cobra.Command) {
	cmd.Flags().StringP("output", "o", "text", "Output format, one of: "+strings.Join(outputFormats, ", "))
}

var outputFormats = []string{"text", "yaml"}
