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
	"github.com/hashicorp/go-multierror"
)

type CleanFunc func() error

// CleanJob is a clean task run regardless of the guarded operation result.
type CleanJob struct {
	cleanFunc CleanFunc
}

// Run executes the defined job
func (cj CleanJob) Run() error {
	return cj.cleanFunc()
}

// NewCleanStack returns a new stack.
func NewCleanStack() *CleanStack {
	return &CleanStack{}
}

// CleanStack is a LIFO stack of jobs undoing temporary changes
type CleanStack struct {
	jobs []*CleanJob
}

// Push adds a job that will always be executed
func (clean *CleanStack) Push(cFunc CleanFunc) {
	clean.jobs = append(clean.jobs, &CleanJob{cleanFunc: cFunc})
}

// Pop removes and returns the last pushed job
func (clean *CleanStack) Pop() *CleanJob {
	if len(clean.jobs) == 0 {
		return nil
	}
	job := clean.jobs[len(clean.jobs)-1]
	clean.jobs = clean.jobs[:len(clean.jobs)-1]
	return job
}

// Cleanup runs the whole stack. All jobs are run even if some fail, the returned
// error aggregates err and every job failure.
func (clean *CleanStack) Cleanup(err error) error {
	var errs error
	if err != nil {
		errs = multierror.Append(errs, err)
	}
	for job := clean.Pop(); job != nil; job = clean.Pop() {
		if jobErr := job.Run(); jobErr != nil {
			errs = multierror.Append(errs, jobErr)
		}
	}
	return errs
}
