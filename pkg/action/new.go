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
	catErr "github.com/rancher-sandbox/pocat/pkg/error"
	"github.com/rancher-sandbox/pocat/pkg/project"
	v1 "github.com/rancher-sandbox/pocat/pkg/types/v1"
	"github.com/rancher-sandbox/pocat/pkg/utils"
)

// RunNew writes a template holding only an empty header
func RunNew(cfg *v1.RunConfig, spec *v1.NewSpec) error {
	if exists, _ := utils.Exists(cfg.Fs, spec.Template); exists && !spec.Force {
		return catErr.New("template "+spec.Template+" already exists, pass --force to overwrite it", catErr.TemplateExists)
	}

	cat, err := project.New(cfg, spec.Template)
	if err != nil {
		return catErr.FromCatalog(err, catErr.Unknown)
	}

	cfg.Logger.Infof("Creating template %s", spec.Template)
	return saveTemplate(cfg, cat)
}
