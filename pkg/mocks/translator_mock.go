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

package mocks

import (
	"errors"
	"fmt"
)

// FakeTranslator is an implementation of the Translator interface used for testing
// It stores Translate calls into Calls for easy checking of what was called
type FakeTranslator struct {
	Calls []string
	// Answers maps a source text to its translation, unmapped texts are
	// returned as "<to>:<text>"
	Answers map[string]string
	// FailOn makes Translate fail for the given source texts
	FailOn map[string]bool
	Error  bool
}

func NewFakeTranslator() *FakeTranslator {
	return &FakeTranslator{Answers: map[string]string{}, FailOn: map[string]bool{}}
}

func (t *FakeTranslator) Translate(text, from, to string) (string, error) {
	t.Calls = append(t.Calls, text)
	if t.Error || t.FailOn[text] {
		return "", errors.New("fake translate error")
	}
	if out, ok := t.Answers[text]; ok {
		return out, nil
	}
	return fmt.Sprintf("%s:%s", to, text), nil
}

// WasCalledWith is a helper method to confirm that the translator was called with the given text
func (t *FakeTranslator) WasCalledWith(text string) bool {
	for _, c := range t.Calls {
		if c == text {
			return true
		}
	}
	return false
}
