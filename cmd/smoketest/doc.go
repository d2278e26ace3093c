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

//go:generate go run -tags docgen ../doc_generate.go -cmd .

/*
Smoketest generates GAPIC client libraries for a set of languages with artman
and fails if any of them cannot be generated.

Usage:

	smoketest [flags] <artman_config>

	NAME:
	   smoketest - generate GAPIC client libraries for a set of languages

	USAGE:
	   smoketest [flags] <artman_config>

	DESCRIPTION:
	   Examples:
	     smoketest google/cloud/language/artman_language_v1.yaml
	     smoketest --languages "go nodejs" --root-dir ~/workspace/googleapis google/pubsub/artman_pubsub.yaml

	   The artman config is relative to the root directory. For each language,
	   smoketest runs "artman generate <language>_gapic" against the config. All
	   languages are attempted; the command fails if any of them failed to generate.

	GLOBAL OPTIONS:
	   --root-dir directory  where the googleapis local directory lives (default: "/tmp/workspace/googleapis/") [$SMOKETEST_ROOT_DIR]
	   --log file            file to append the smoke test log to (default: "/tmp/workspace/reports/smoketest.log") [$SMOKETEST_LOG]
	   --user-config file    artman user config file; empty to use artman's default (default: "~/.artman/config.yaml") [$SMOKETEST_USER_CONFIG]
	   --languages string    space separated list of languages to generate clients for (default: "java python ruby") [$SMOKETEST_LANGUAGES]
	   --generator executable  generator executable (default: "artman") [$SMOKETEST_GENERATOR]
	   --timeout duration    limit for each generator invocation; 0 means no limit (default: 0s) [$SMOKETEST_TIMEOUT]
	   --report file         write a summary of the run to file (.yaml, .toml or .json) [$SMOKETEST_REPORT]
	   --verbose, -v         enable debug logging (default: false)
	   --help, -h            show help
*/
package main
