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

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/googleapis/gapic-smoketest/internal/git"
	"github.com/googleapis/gapic-smoketest/internal/yaml"
	"github.com/pelletier/go-toml/v2"
)

const reportComment = "GAPIC generator smoke test report."

// Report is the machine-readable record of a run, written when a report path
// is configured.
type Report struct {
	RunID        string `yaml:"run_id" toml:"run_id" json:"run_id"`
	RootDir      string `yaml:"root_dir" toml:"root_dir" json:"root_dir"`
	ArtmanConfig string `yaml:"artman_config" toml:"artman_config" json:"artman_config"`
	// Commit is the HEAD commit of RootDir, empty if RootDir is not a git
	// checkout.
	Commit  string         `yaml:"commit,omitempty" toml:"commit,omitempty" json:"commit,omitempty"`
	Started time.Time      `yaml:"started" toml:"started" json:"started"`
	Passed  bool           `yaml:"passed" toml:"passed" json:"passed"`
	Results []*ReportEntry `yaml:"results" toml:"results" json:"results"`
}

// ReportEntry is the report form of an [Outcome].
type ReportEntry struct {
	Language string `yaml:"language" toml:"language" json:"language"`
	Target   string `yaml:"target" toml:"target" json:"target"`
	Status   Status `yaml:"status" toml:"status" json:"status"`
	Message  string `yaml:"message" toml:"message" json:"message"`
	ExitCode int    `yaml:"exit_code" toml:"exit_code" json:"exit_code"`
	Error    string `yaml:"error,omitempty" toml:"error,omitempty" json:"error,omitempty"`
	Duration string `yaml:"duration" toml:"duration" json:"duration"`
}

func newReport(runID string, cfg *Config, started time.Time, s *Summary, logger *slog.Logger) *Report {
	commit, err := git.HeadCommit(cfg.RootDir)
	if err != nil {
		logger.Debug("unable to determine googleapis commit", "dir", cfg.RootDir, "error", err)
	}
	report := &Report{
		RunID:        runID,
		RootDir:      cfg.RootDir,
		ArtmanConfig: cfg.ArtmanConfig,
		Commit:       commit,
		Started:      started.UTC(),
		Passed:       s.Passed(),
	}
	for _, o := range s.Outcomes {
		entry := &ReportEntry{
			Language: o.Language,
			Target:   o.Target,
			Status:   o.Status,
			Message:  o.Message,
			ExitCode: o.ExitCode,
			Duration: o.Duration.Round(time.Millisecond).String(),
		}
		if o.Err != nil {
			entry.Error = o.Err.Error()
		}
		report.Results = append(report.Results, entry)
	}
	return report
}

// writeReport writes report to path. The encoding follows the file
// extension: .toml and .json are written as such, anything else as YAML.
func writeReport(path string, report *Report) error {
	if report == nil {
		return errors.New("nil report")
	}
	switch filepath.Ext(path) {
	case ".toml":
		data, err := toml.Marshal(report)
		if err != nil {
			return fmt.Errorf("failed to marshal report as TOML: %w", err)
		}
		return os.WriteFile(path, data, 0644)
	case ".json":
		data, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal report as JSON: %w", err)
		}
		return os.WriteFile(path, append(data, '\n'), 0644)
	default:
		return yaml.Write(path, reportComment, report)
	}
}
