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
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/googleapis/gapic-smoketest/internal/testhelper"
	"github.com/urfave/cli/v3"
)

func TestRun(t *testing.T) {
	generator, record := testhelper.FakeGenerator(t)
	rootDir := t.TempDir()
	logPath := filepath.Join(t.TempDir(), "smoketest.log")
	args := []string{
		"smoketest",
		"--root-dir", rootDir,
		"--log", logPath,
		"--user-config", "",
		"--languages", "python",
		"--generator", generator,
		"foo.yaml",
	}
	if err := Run(t.Context(), args...); err != nil {
		t.Fatal(err)
	}
	want := []string{
		"--local --verbose --config " + filepath.Join(rootDir, "foo.yaml") + " --root-dir " + rootDir + " generate python_gapic",
	}
	if diff := cmp.Diff(want, testhelper.Invocations(t, record)); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
	data, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{
		"generating python_gapic",
		"Succeeded to generate python_gapic of foo.yaml.",
	} {
		if !strings.Contains(string(data), want) {
			t.Errorf("log does not contain %q:\n%s", want, data)
		}
	}
}

func TestRun_PartialFailure(t *testing.T) {
	generator, record := testhelper.FakeGenerator(t, "java_gapic")
	logPath := filepath.Join(t.TempDir(), "smoketest.log")
	userConfig := filepath.Join(t.TempDir(), "config.yaml")
	args := []string{
		"smoketest",
		"--root-dir", t.TempDir(),
		"--log", logPath,
		"--user-config", userConfig,
		"--languages", "java ruby",
		"--generator", generator,
		"foo.yaml",
	}
	err := Run(t.Context(), args...)
	if !errors.Is(err, ErrSmokeTestFailed) {
		t.Fatalf("Run() = %v, want %v", err, ErrSmokeTestFailed)
	}
	invocations := testhelper.Invocations(t, record)
	if len(invocations) != 2 {
		t.Fatalf("got %d invocations, want 2: %q", len(invocations), invocations)
	}
	for i, target := range []string{"java_gapic", "ruby_gapic"} {
		if !strings.HasSuffix(invocations[i], "generate "+target) {
			t.Errorf("invocation %d = %q, want target %s", i, invocations[i], target)
		}
		if !strings.Contains(invocations[i], "--user-config "+userConfig+" --config ") {
			t.Errorf("invocation %d = %q, want user config before config", i, invocations[i])
		}
	}
	data, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{
		"failed to generate java_gapic",
		"Failed to generate java_gapic of foo.yaml.",
		"Succeeded to generate ruby_gapic of foo.yaml.",
	} {
		if !strings.Contains(string(data), want) {
			t.Errorf("log does not contain %q:\n%s", want, data)
		}
	}
}

func TestRun_Errors(t *testing.T) {
	for _, test := range []struct {
		name string
		args []string
	}{
		{
			name: "missing artman config",
			args: []string{"smoketest", "--languages", "python"},
		},
		{
			name: "too many arguments",
			args: []string{"smoketest", "foo.yaml", "bar.yaml"},
		},
		{
			name: "empty languages",
			args: []string{"smoketest", "--languages", " ", "foo.yaml"},
		},
		{
			name: "empty generator",
			args: []string{"smoketest", "--generator", "", "foo.yaml"},
		},
	} {
		t.Run(test.name, func(t *testing.T) {
			if err := Run(t.Context(), test.args...); err == nil {
				t.Error("Run() = nil, want error")
			}
		})
	}
}

func TestParseFlags(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	wd := t.TempDir()
	t.Chdir(wd)

	for _, test := range []struct {
		name string
		args []string
		env  map[string]string
		want *Config
	}{
		{
			name: "defaults",
			args: []string{"smoketest", "foo.yaml"},
			want: &Config{
				RootDir:      "/tmp/workspace/googleapis",
				ArtmanConfig: "foo.yaml",
				Languages:    []string{"java", "python", "ruby"},
				LogPath:      "/tmp/workspace/reports/smoketest.log",
				UserConfig:   filepath.Join(home, ".artman", "config.yaml"),
				Generator:    "artman",
			},
		},
		{
			name: "flags",
			args: []string{
				"smoketest",
				"--root-dir", "googleapis",
				"--log", "out/smoketest.log",
				"--user-config", "~/artman.yaml",
				"--languages", "go nodejs go",
				"--generator", "/usr/local/bin/artman",
				"--timeout", "30m",
				"--report", "report.toml",
				"-v",
				"google/example/artman_example.yaml",
			},
			want: &Config{
				RootDir:      filepath.Join(wd, "googleapis"),
				ArtmanConfig: "google/example/artman_example.yaml",
				Languages:    []string{"go", "nodejs", "go"},
				LogPath:      filepath.Join(wd, "out", "smoketest.log"),
				UserConfig:   filepath.Join(home, "artman.yaml"),
				Generator:    "/usr/local/bin/artman",
				Timeout:      30 * time.Minute,
				ReportPath:   "report.toml",
				Verbose:      true,
			},
		},
		{
			name: "empty user config",
			args: []string{"smoketest", "--user-config", "", "foo.yaml"},
			want: &Config{
				RootDir:      "/tmp/workspace/googleapis",
				ArtmanConfig: "foo.yaml",
				Languages:    []string{"java", "python", "ruby"},
				LogPath:      "/tmp/workspace/reports/smoketest.log",
				Generator:    "artman",
			},
		},
		{
			name: "environment",
			args: []string{"smoketest", "foo.yaml"},
			env: map[string]string{
				"SMOKETEST_ROOT_DIR":    "/src/googleapis",
				"SMOKETEST_LANGUAGES":   "php",
				"SMOKETEST_USER_CONFIG": "/etc/artman/config.yaml",
				"SMOKETEST_TIMEOUT":     "1h",
			},
			want: &Config{
				RootDir:      "/src/googleapis",
				ArtmanConfig: "foo.yaml",
				Languages:    []string{"php"},
				LogPath:      "/tmp/workspace/reports/smoketest.log",
				UserConfig:   "/etc/artman/config.yaml",
				Generator:    "artman",
				Timeout:      time.Hour,
			},
		},
	} {
		t.Run(test.name, func(t *testing.T) {
			for k, v := range test.env {
				t.Setenv(k, v)
			}
			var got *Config
			cmd := &cli.Command{
				Name:  "smoketest",
				Flags: newFlags(),
				Action: func(ctx context.Context, cmd *cli.Command) error {
					var err error
					got, err = parseFlags(cmd)
					return err
				},
			}
			if err := cmd.Run(t.Context(), test.args); err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(test.want, got); diff != "" {
				t.Errorf("mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
