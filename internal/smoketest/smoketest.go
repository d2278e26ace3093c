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

// Package smoketest generates GAPIC client libraries for a set of languages
// with artman and reports which languages failed.
//
// For each language the generator is invoked as
//
//	artman --local --verbose [--user-config <path>] --config <root>/<artman_config> --root-dir <root> generate <language>_gapic
//
// one language at a time. Generator output and the runner's own log records
// are appended to a single log file.
package smoketest

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/googleapis/gapic-smoketest/internal/command"
	"github.com/urfave/cli/v3"
)

// Run executes the smoketest command with the given arguments. The first
// argument is the program name.
func Run(ctx context.Context, args ...string) error {
	cmd := &cli.Command{
		Name:      "smoketest",
		Usage:     "generate GAPIC client libraries for a set of languages",
		UsageText: "smoketest [flags] <artman_config>",
		Description: `Examples:
  smoketest google/cloud/language/artman_language_v1.yaml
  smoketest --languages "go nodejs" --root-dir ~/workspace/googleapis google/pubsub/artman_pubsub.yaml

The artman config is relative to the root directory. For each language,
smoketest runs "artman generate <language>_gapic" against the config. All
languages are attempted; the command fails if any of them failed to generate.`,
		Flags: newFlags(),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg, err := parseFlags(cmd)
			if err != nil {
				return err
			}
			command.Verbose = cfg.Verbose
			return Generate(ctx, cfg)
		},
	}
	return cmd.Run(ctx, args)
}

func newFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "root-dir",
			Value:   defaultRootDir,
			Usage:   "where the googleapis local `directory` lives",
			Sources: cli.EnvVars("SMOKETEST_ROOT_DIR"),
		},
		&cli.StringFlag{
			Name:    "log",
			Value:   defaultLogPath,
			Usage:   "`file` to append the smoke test log to",
			Sources: cli.EnvVars("SMOKETEST_LOG"),
		},
		&cli.StringFlag{
			Name:    "user-config",
			Value:   defaultUserConfig,
			Usage:   "artman user config `file`; empty to use artman's default",
			Sources: cli.EnvVars("SMOKETEST_USER_CONFIG"),
		},
		&cli.StringFlag{
			Name:    "languages",
			Value:   defaultLanguages,
			Usage:   "space separated list of languages to generate clients for",
			Sources: cli.EnvVars("SMOKETEST_LANGUAGES"),
		},
		&cli.StringFlag{
			Name:    "generator",
			Value:   defaultGenerator,
			Usage:   "generator `executable`",
			Sources: cli.EnvVars("SMOKETEST_GENERATOR"),
		},
		&cli.DurationFlag{
			Name:    "timeout",
			Usage:   "limit for each generator invocation; 0 means no limit",
			Sources: cli.EnvVars("SMOKETEST_TIMEOUT"),
		},
		&cli.StringFlag{
			Name:    "report",
			Usage:   "write a summary of the run to `file` (.yaml, .toml or .json)",
			Sources: cli.EnvVars("SMOKETEST_REPORT"),
		},
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"v"},
			Usage:   "enable debug logging",
		},
	}
}

// parseFlags builds a [Config] from the command line.
func parseFlags(cmd *cli.Command) (*Config, error) {
	if cmd.Args().Len() != 1 {
		return nil, fmt.Errorf("usage: smoketest [flags] <artman_config>")
	}
	rootDir, err := filepath.Abs(cmd.String("root-dir"))
	if err != nil {
		return nil, fmt.Errorf("failed to resolve root directory: %w", err)
	}
	logPath, err := filepath.Abs(cmd.String("log"))
	if err != nil {
		return nil, fmt.Errorf("failed to resolve log path: %w", err)
	}
	userConfig, err := expandUserConfig(cmd.String("user-config"))
	if err != nil {
		return nil, err
	}
	cfg := &Config{
		RootDir:      rootDir,
		ArtmanConfig: cmd.Args().Get(0),
		Languages:    splitLanguages(cmd.String("languages")),
		LogPath:      logPath,
		UserConfig:   userConfig,
		Generator:    cmd.String("generator"),
		Timeout:      cmd.Duration("timeout"),
		ReportPath:   cmd.String("report"),
		Verbose:      cmd.Bool("verbose"),
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
