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

//go:build docgen

package main

import (
	"bytes"
	"flag"
	"fmt"
	"log"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"text/template"
)

const (
	smoketestDesc = `Smoketest generates GAPIC client libraries for a set of languages with artman
and fails if any of them cannot be generated.

Usage:

	smoketest [flags] <artman_config>
`

	docTemplate = `// Copyright {{.Year}} Google LLC
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
{{.Description}}
{{.HelpText}}
*/
package main
`
)

var (
	descriptions = map[string]string{
		"smoketest": smoketestDesc,
	}

	years = map[string]string{
		"smoketest": "2026",
	}

	cmdPath = flag.String("cmd", "", "Path to the command to generate docs for (e.g., ../../cmd/smoketest)")
)

func main() {
	flag.Parse()
	if *cmdPath == "" {
		log.Fatal("must specify -cmd flag")
	}
	if err := processFile(*cmdPath); err != nil {
		log.Fatal(err)
	}
}

func processFile(cmdPath string) error {
	pkgPath, err := filepath.Abs(cmdPath)
	if err != nil {
		return fmt.Errorf("could not find path: %v", err)
	}
	pkgName := filepath.Base(pkgPath)
	desc, ok := descriptions[pkgName]
	if !ok {
		return fmt.Errorf("cannot find description for command: %s", pkgPath)
	}
	year, ok := years[pkgName]
	if !ok {
		return fmt.Errorf("cannot find year for command: %s", pkgPath)
	}
	helpText, err := getHelpText(cmdPath)
	if err != nil {
		return err
	}

	docFile, err := os.Create("doc.go")
	if err != nil {
		return fmt.Errorf("could not create doc.go: %v", err)
	}
	defer docFile.Close()

	tmpl := template.Must(template.New("doc").Parse(docTemplate))
	if err := tmpl.Execute(docFile, struct {
		Year        string
		Description string
		HelpText    string
	}{
		Year:        year,
		Description: sanitize(desc),
		HelpText:    sanitize(indent(helpText)),
	}); err != nil {
		return fmt.Errorf("could not execute template: %v", err)
	}
	return nil
}

func getHelpText(cmdPath string) (string, error) {
	cmd := exec.Command("go", "run", cmdPath, "--help")
	var out bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &out
	if err := cmd.Run(); err != nil && out.Len() == 0 {
		return "", fmt.Errorf("cmd.Run() for '%s --help' failed with %s\n%s", cmdPath, err, out.String())
	}
	return out.String(), nil
}

// indent prefixes every non-empty line with a tab so gofmt renders the help
// text as a preformatted block.
func indent(s string) string {
	lines := strings.Split(strings.TrimRight(s, "\n"), "\n")
	for i, line := range lines {
		if line != "" {
			lines[i] = "\t" + line
		}
	}
	return strings.Join(lines, "\n")
}

func sanitize(s string) string {
	return strings.ReplaceAll(s, "*/", "* /")
}
