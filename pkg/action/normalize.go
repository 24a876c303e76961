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

package action

import (
	"context"

	v1 "github.com/rancher-sandbox/pocat/pkg/types/v1"
)

// RunNormalize loads a template with its locales and writes everything back
// in canonical form
func RunNormalize(ctx context.Context, cfg *v1.RunConfig, spec *v1.NormalizeSpec) error {
	cat, err := loadProject(ctx, cfg, spec.Template)
	if err != nil {
		return err
	}
	cfg.Logger.Infof("Normalizing %s and %d locales", spec.Template, len(cat.Locales()))
	return saveAll(cfg, cat)
}
