// Copyright 2026 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package smoketest

import "time"

// Status is the result of generating one target.
type Status string

const (
	// StatusSuccess means the generator exited with status 0.
	StatusSuccess Status = "success"
	// StatusFailure means the generator exited with a non-zero status, could
	// not be started, or was stopped by the timeout.
	StatusFailure Status = "failure"
)

// Outcome records the result of generating a single language.
type Outcome struct {
	Language string
	Target   string
	Status   Status
	Message  string
	// ExitCode is the generator's exit status, or -1 if it did not run to
	// completion.
	ExitCode int
	// Err is the error returned by the invocation, nil on success.
	Err      error
	Duration time.Duration
}

// Summary holds the outcomes of a run in input order.
type Summary struct {
	Outcomes []*Outcome
}

func (s *Summary) add(o *Outcome) {
	s.Outcomes = append(s.Outcomes, o)
}

// Successes returns the successful outcomes in input order.
func (s *Summary) Successes() []*Outcome {
	return s.filter(StatusSuccess)
}

// Failures returns the failed outcomes in input order.
func (s *Summary) Failures() []*Outcome {
	return s.filter(StatusFailure)
}

// Passed reports whether no generation failed.
func (s *Summary) Passed() bool {
	return len(s.Failures()) == 0
}

func (s *Summary) filter(status Status) []*Outcome {
	var out []*Outcome
	for _, o := range s.Outcomes {
		if o.Status == status {
			out = append(out, o)
		}
	}
	return out
}

func targetName(language string) string {
	return language + "_gapic"
}
