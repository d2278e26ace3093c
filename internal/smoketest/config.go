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
	"errors"
	"fmt"
	"os"
	"os/user"
	"path/filepath"
	"strings"
	"time"
)

const (
	defaultRootDir    = "/tmp/workspace/googleapis/"
	defaultLogPath    = "/tmp/workspace/reports/smoketest.log"
	defaultUserConfig = "~/.artman/config.yaml"
	defaultLanguages  = "java python ruby"
	defaultGenerator  = "artman"
)

var (
	errNoArtmanConfig = errors.New("artman config is required")
	errNoLanguages    = errors.New("no languages specified")
	errNoGenerator    = errors.New("generator executable is required")
)

// Config holds the inputs of a single smoke test run. It is built once from
// the command line and not modified afterwards.
type Config struct {
	// RootDir is the absolute path of the local googleapis checkout.
	RootDir string

	// ArtmanConfig is the artman config file, relative to RootDir.
	ArtmanConfig string

	// Languages lists the languages to generate, in order. Duplicates are
	// processed independently.
	Languages []string

	// LogPath is the absolute path of the log file. Runner output and the
	// output of every generator invocation are appended to it.
	LogPath string

	// UserConfig is the absolute path of the artman user config. When empty,
	// no --user-config flag is passed and artman uses its own default.
	UserConfig string

	// Generator is the generator executable, artman by default.
	Generator string

	// Timeout bounds each generator invocation. Zero means no limit.
	Timeout time.Duration

	// ReportPath, if set, is where a machine-readable summary of the run is
	// written. The format is chosen by extension: .toml, .json, or YAML
	// otherwise.
	ReportPath string

	// Verbose enables debug logging and echoes each command before it runs.
	Verbose bool
}

// validate reports the first invariant of c that does not hold.
func (c *Config) validate() error {
	if c.ArtmanConfig == "" {
		return errNoArtmanConfig
	}
	if len(c.Languages) == 0 {
		return errNoLanguages
	}
	if c.Generator == "" {
		return errNoGenerator
	}
	if !filepath.IsAbs(c.RootDir) {
		return fmt.Errorf("root directory %q is not an absolute path", c.RootDir)
	}
	if !filepath.IsAbs(c.LogPath) {
		return fmt.Errorf("log path %q is not an absolute path", c.LogPath)
	}
	if c.UserConfig != "" && !filepath.IsAbs(c.UserConfig) {
		return fmt.Errorf("user config %q is not an absolute path", c.UserConfig)
	}
	if c.Timeout < 0 {
		return fmt.Errorf("timeout must not be negative, got %s", c.Timeout)
	}
	return nil
}

// artmanConfigPath returns the artman config resolved under the root
// directory.
func (c *Config) artmanConfigPath() string {
	return filepath.Join(c.RootDir, c.ArtmanConfig)
}

// splitLanguages splits a space separated list of languages.
func splitLanguages(s string) []string {
	return strings.Fields(s)
}

// expandUserConfig expands a leading ~ or ~user and returns the absolute
// path. An empty path stays empty.
func expandUserConfig(path string) (string, error) {
	if path == "" {
		return "", nil
	}
	if strings.HasPrefix(path, "~") {
		name, rest, _ := strings.Cut(strings.TrimPrefix(path, "~"), "/")
		home, err := homeDir(name)
		if err != nil {
			return "", fmt.Errorf("failed to expand %q: %w", path, err)
		}
		path = filepath.Join(home, rest)
	}
	return filepath.Abs(path)
}

// homeDir returns the home directory of the named user, or of the current
// user when name is empty.
func homeDir(name string) (string, error) {
	if name == "" {
		return os.UserHomeDir()
	}
	u, err := user.Lookup(name)
	if err != nil {
		return "", err
	}
	return u.HomeDir, nil
}
