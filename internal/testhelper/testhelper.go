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

// Package testhelper provides helper functions for tests.
// These are used across packages
package testhelper

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/googleapis/gapic-smoketest/internal/command"
)

const fakeGeneratorScript = `#!/bin/sh
echo "$@" >> "%RECORD%"
for arg in "$@"; do target="$arg"; done
echo "generating $target"
case " %FAIL% " in
  *" $target "*) echo "failed to generate $target" >&2; exit 1 ;;
esac
exit 0
`

// FakeGenerator writes an executable shell script that stands in for artman.
// Each invocation appends its arguments as one line to the returned record
// file, prints a line naming the target (the last argument), and exits with
// status 1 if the target is one of failTargets and 0 otherwise. The test is
// skipped if sh is not installed.
func FakeGenerator(t *testing.T, failTargets ...string) (generator, record string) {
	t.Helper()
	command.RequireCommand(t, "sh")
	dir := t.TempDir()
	generator = filepath.Join(dir, "artman")
	record = filepath.Join(dir, "invocations.txt")
	script := strings.NewReplacer(
		"%RECORD%", record,
		"%FAIL%", strings.Join(failTargets, " "),
	).Replace(fakeGeneratorScript)
	if err := os.WriteFile(generator, []byte(script), 0755); err != nil {
		t.Fatal(err)
	}
	return generator, record
}

// Invocations returns the argument lines recorded by a [FakeGenerator], one
// per invocation. A missing record file means no invocations.
func Invocations(t *testing.T, record string) []string {
	t.Helper()
	data, err := os.ReadFile(record)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		t.Fatal(err)
	}
	return strings.Split(strings.TrimSuffix(string(data), "\n"), "\n")
}
