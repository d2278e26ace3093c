// Copyright 2025 Google LLC
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

// Package command provides helpers to execute external commands with logging.
package command

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
)

// Verbose controls whether commands are printed to stdout before execution.
var Verbose bool

// RunWithOutput executes a program (with arguments) and sends both its
// standard output and standard error to w. It blocks until the program exits.
// A program that cannot be started is reported the same way as one that exits
// with a non-zero status: as a non-nil error.
func RunWithOutput(ctx context.Context, w io.Writer, command string, arg ...string) error {
	cmd := exec.CommandContext(ctx, command, arg...)
	cmd.Stdout = w
	cmd.Stderr = w
	if Verbose {
		fmt.Fprintf(os.Stdout, "%s\n", cmd.String())
	}
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%v: %w", cmd, err)
	}
	return nil
}

// ExitCode returns the exit status reported by err, 0 if err is nil, and -1
// if the program never ran to completion (for example, the executable was not
// found or the context was canceled before it started).
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var ee *exec.ExitError
	if errors.As(err, &ee) {
		return ee.ExitCode()
	}
	return -1
}
