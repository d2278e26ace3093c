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

// Package git reads state from the local googleapis checkout.
package git

import (
	"errors"
	"fmt"

	gogit "github.com/go-git/go-git/v5"
)

// ErrNotRepository is returned by [HeadCommit] when the directory is not part
// of a git checkout.
var ErrNotRepository = errors.New("not a git repository")

// HeadCommit returns the full hash of the commit checked out in dir. Parent
// directories are searched for the .git directory.
func HeadCommit(dir string) (string, error) {
	repo, err := gogit.PlainOpenWithOptions(dir, &gogit.PlainOpenOptions{DetectDotGit: true})
	if errors.Is(err, gogit.ErrRepositoryNotExists) {
		return "", fmt.Errorf("%w: %s", ErrNotRepository, dir)
	}
	if err != nil {
		return "", fmt.Errorf("failed to open repository %s: %w", dir, err)
	}
	ref, err := repo.Head()
	if err != nil {
		return "", fmt.Errorf("failed to read HEAD of %s: %w", dir, err)
	}
	return ref.Hash().String(), nil
}
