/*----------------------------------------------------------------
 *  Copyright (c) Fable Contributors
 *  Licensed under the Apache License, Version 2.0
 *  See LICENSE in the project root for license information.
 *----------------------------------------------------------------*/

// Package generator turns a finished suite into Go test scaffolding. One
// file is produced per feature; outline scenarios expand into one subtest
// per example row with <variable> placeholders substituted.
package generator

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"
	"unicode"

	"github.com/getfable/fable/fable"
)

const scaffoldTemplate = `// Code generated by fable. Fill in the step bodies.

package {{.Package}}

import "testing"

{{range .Tests}}// {{.Name}}
func Test{{.FuncName}}(t *testing.T) {
{{- if .Runs}}
{{- range .Runs}}
	t.Run({{printf "%q" .Name}}, func(t *testing.T) {
{{- range .Steps}}
		// {{.}}
{{- end}}
		t.Skip("pending implementation")
	})
{{- end}}
{{- else}}
{{- range .Steps}}
	// {{.}}
{{- end}}
	t.Skip("pending implementation")
{{- end}}
}

{{end}}`

var scaffold = template.Must(template.New("scaffold").Parse(scaffoldTemplate))

type testRun struct {
	Name  string
	Steps []string
}

type testCase struct {
	Name     string
	FuncName string
	Steps    []string
	Runs     []testRun
}

type testFile struct {
	Package string
	Tests   []testCase
}

// Generator renders test scaffolding from a suite. It owns the suite it
// was handed and never mutates it.
type Generator struct {
	suite       *fable.Suite
	packageName string
}

func New(suite *fable.Suite) *Generator {
	return &Generator{suite: suite, packageName: "specs"}
}

func NewWithPackage(suite *fable.Suite, packageName string) *Generator {
	return &Generator{suite: suite, packageName: packageName}
}

// Files renders one scaffolding file per feature, keyed by file name.
func (g *Generator) Files() (map[string]string, error) {
	files := make(map[string]string)
	for _, feature := range g.suite.Features() {
		content, err := g.renderFeature(feature)
		if err != nil {
			return nil, err
		}
		files[FileName(feature.Name)] = content
	}
	return files, nil
}

func (g *Generator) renderFeature(feature *fable.Feature) (string, error) {
	file := testFile{Package: g.packageName}
	for _, scenario := range feature.Scenarios {
		file.Tests = append(file.Tests, buildTestCase(scenario))
	}
	var buffer bytes.Buffer
	if err := scaffold.Execute(&buffer, file); err != nil {
		return "", fmt.Errorf("failed to render scaffolding for %s: %w", feature.Name, err)
	}
	return buffer.String(), nil
}

func buildTestCase(scenario *fable.Scenario) testCase {
	test := testCase{Name: scenario.Name, FuncName: funcName(scenario.Name)}
	if !scenario.Outline || !scenario.HasExamples() {
		test.Steps = stepLines(scenario, nil)
		return test
	}
	for row := 0; row < scenario.ExampleCount(); row++ {
		replacer := rowReplacer(scenario, row)
		test.Runs = append(test.Runs, testRun{
			Name:  fmt.Sprintf("example %d", row+1),
			Steps: stepLines(scenario, replacer),
		})
	}
	return test
}

func stepLines(scenario *fable.Scenario, replacer *strings.Replacer) []string {
	lines := make([]string, 0, len(scenario.Steps))
	for _, step := range scenario.Steps {
		text := step.Text()
		if replacer != nil {
			text = replacer.Replace(text)
		}
		lines = append(lines, text)
	}
	return lines
}

func rowReplacer(scenario *fable.Scenario, row int) *strings.Replacer {
	pairs := make([]string, 0, len(scenario.ExampleVariables)*2)
	for _, variable := range scenario.ExampleVariables {
		pairs = append(pairs, "<"+variable+">", scenario.Examples[variable][row])
	}
	return strings.NewReplacer(pairs...)
}

// FileName derives the scaffolding file name from a feature name.
func FileName(featureName string) string {
	var builder strings.Builder
	lastUnderscore := true
	for _, r := range strings.ToLower(featureName) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			builder.WriteRune(r)
			lastUnderscore = false
		case !lastUnderscore:
			builder.WriteRune('_')
			lastUnderscore = true
		}
	}
	name := strings.TrimSuffix(builder.String(), "_")
	if name == "" {
		name = "feature"
	}
	return name + "_test.go"
}

func funcName(scenarioName string) string {
	var builder strings.Builder
	upperNext := true
	for _, r := range scenarioName {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			upperNext = true
			continue
		}
		if upperNext {
			builder.WriteRune(unicode.ToUpper(r))
			upperNext = false
		} else {
			builder.WriteRune(r)
		}
	}
	if builder.Len() == 0 {
		return "Scenario"
	}
	return builder.String()
}
