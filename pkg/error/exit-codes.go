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

// provides a custom error interface and exit codes to use on the pocat cli
package error

//
// Provided exit codes for pocat

// To make it easy to generate them you have to respect the structure:
//
// comment that explains the error
// const NamedConstant = ERRORCODE
//
// This way exit codes can be turned into a Markdown list of EXITCODE -> COMMENT

// Error reading the run config
const ReadingRunConfig = 10

// Error reading the command spec
const ReadingSpecConfig = 11

// Invalid command arguments or flags
const InvalidArgs = 12

// Template path is not absolute
const PathNotAbsolute = 13

// Error loading a template or one of its locales
const LoadProject = 14

// Text is not valid PO format
const InvalidFormat = 15

// Template file already exists
const TemplateExists = 16

// Locale is unknown to the template
const UnknownLocale = 17

// Message is unknown to the template
const UnknownMessage = 18

// Message key is already used by another message
const DuplicateKey = 19

// Error serializing a template or locale
const DumpCatalog = 20

// Error writing a template or locale file
const SaveProject = 21

// Error removing a locale file
const RemoveFile = 22

// Error calling the translation backend
const TranslateCall = 23

// Invalid locale code
const InvalidLocaleCode = 24

// Catalog does not pass verification
const VerifyCatalog = 25

// Unknown error
const Unknown int = 255
