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
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/googleapis/gapic-smoketest/internal/command"
)

// ErrSmokeTestFailed is returned when at least one language failed to
// generate.
var ErrSmokeTestFailed = errors.New("smoke test failed")

const summaryBanner = "================ Library Generation Summary ================"

// runFunc runs a program and sends its standard output and standard error to
// w. It has the signature of [command.RunWithOutput].
type runFunc func(ctx context.Context, w io.Writer, command string, arg ...string) error

type runner struct {
	cfg        *Config
	logger     *slog.Logger
	runCommand runFunc
}

// Generate invokes the generator once per configured language, in order, and
// logs a summary of the results to the log file and stderr. It returns
// [ErrSmokeTestFailed] if any language failed to generate. A failed language
// does not stop the remaining languages from being attempted.
func Generate(ctx context.Context, cfg *Config) error {
	return generate(ctx, cfg, os.Stderr, command.RunWithOutput)
}

func generate(ctx context.Context, cfg *Config, console io.Writer, run runFunc) (err error) {
	if err := cfg.validate(); err != nil {
		return err
	}
	logFile, err := openLog(cfg.LogPath)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := logFile.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	runID := uuid.NewString()
	r := &runner{
		cfg:        cfg,
		logger:     newLogger(cfg.Verbose, logFile, console).With("run_id", runID),
		runCommand: run,
	}
	started := time.Now()
	summary := r.generateAll(ctx)
	r.logSummary(summary)

	var errs []error
	if cfg.ReportPath != "" {
		report := newReport(runID, cfg, started, summary, r.logger)
		if err := writeReport(cfg.ReportPath, report); err != nil {
			errs = append(errs, fmt.Errorf("failed to write report: %w", err))
		} else {
			r.logger.Info("wrote report", "path", cfg.ReportPath)
		}
	}
	if !summary.Passed() {
		errs = append(errs, ErrSmokeTestFailed)
	}
	return errors.Join(errs...)
}

func (r *runner) generateAll(ctx context.Context) *Summary {
	summary := &Summary{}
	for _, language := range r.cfg.Languages {
		o := r.generateLanguage(ctx, language)
		r.logger.Info(o.Message)
		summary.add(o)
	}
	return summary
}

func (r *runner) generateLanguage(ctx context.Context, language string) *Outcome {
	target := targetName(language)
	start := time.Now()
	err := r.generateArtifact(ctx, target)
	o := &Outcome{
		Language: language,
		Target:   target,
		ExitCode: command.ExitCode(err),
		Err:      err,
		Duration: time.Since(start),
	}
	if err != nil {
		r.logger.Debug("generator failed", "target", target, "exit_code", o.ExitCode, "error", err)
		o.Status = StatusFailure
		o.Message = fmt.Sprintf("Failed to generate %s of %s.", target, r.cfg.ArtmanConfig)
		return o
	}
	o.Status = StatusSuccess
	o.Message = fmt.Sprintf("Succeeded to generate %s of %s.", target, r.cfg.ArtmanConfig)
	return o
}

// generateArtifact runs the generator for target with its output appended to
// the log file. The log file is reopened for every invocation so that output
// already written survives a failure later in the run.
func (r *runner) generateArtifact(ctx context.Context, target string) (err error) {
	args := generatorArgs(r.cfg, target)
	r.logger.Info(fmt.Sprintf("Generate artifact %s of %s: %s",
		target, r.cfg.ArtmanConfig, strings.Join(append([]string{r.cfg.Generator}, args...), " ")))

	log, err := openLog(r.cfg.LogPath)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := log.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()
	if r.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.cfg.Timeout)
		defer cancel()
	}
	return r.runCommand(ctx, log, r.cfg.Generator, args...)
}

// generatorArgs returns the generator arguments for target:
//
//	--local --verbose [--user-config <path>] --config <root>/<config> --root-dir <root> generate <target>
func generatorArgs(cfg *Config, target string) []string {
	args := []string{"--local", "--verbose"}
	if cfg.UserConfig != "" {
		args = append(args, "--user-config", cfg.UserConfig)
	}
	return append(args,
		"--config", cfg.artmanConfigPath(),
		"--root-dir", cfg.RootDir,
		"generate", target,
	)
}

func (r *runner) logSummary(s *Summary) {
	r.logger.Info(summaryBanner)
	r.logger.Info("Successes:")
	for _, o := range s.Successes() {
		r.logger.Info(o.Message)
	}
	r.logger.Info("Failures:")
	for _, o := range s.Failures() {
		r.logger.Error(o.Message)
	}
}
