/*----------------------------------------------------------------
 *  Copyright (c) Fable Contributors
 *  Licensed under the Apache License, Version 2.0
 *  See LICENSE in the project root for license information.
 *----------------------------------------------------------------*/

package fable

// Scenario is a named sequence of steps. An outline scenario additionally
// carries an examples table: ExampleVariables holds the column names from
// the header row, Examples the cell values per column, populated in
// lockstep across the data rows.
type Scenario struct {
	Name             string
	Outline          bool
	Steps            []*Step
	ExampleVariables []string
	Examples         map[string][]string
}

func (scenario *Scenario) AddStep(step *Step) {
	step.Number = len(scenario.Steps) + 1
	scenario.Steps = append(scenario.Steps, step)
}

func (scenario *Scenario) LatestStep() *Step {
	if len(scenario.Steps) == 0 {
		return nil
	}
	return scenario.Steps[len(scenario.Steps)-1]
}

// AddExampleRow records a table row. The first row defines the column
// schema; callers must verify that later rows match its column count.
func (scenario *Scenario) AddExampleRow(cells []string) {
	if scenario.ExampleVariables == nil {
		scenario.ExampleVariables = make([]string, len(cells))
		copy(scenario.ExampleVariables, cells)
		scenario.Examples = make(map[string][]string)
		for _, variable := range scenario.ExampleVariables {
			scenario.Examples[variable] = make([]string, 0)
		}
		return
	}
	for i, cell := range cells {
		variable := scenario.ExampleVariables[i]
		scenario.Examples[variable] = append(scenario.Examples[variable], cell)
	}
}

func (scenario *Scenario) HasExamples() bool {
	return len(scenario.ExampleVariables) > 0
}

// ExampleCount returns the number of data rows accumulated so far.
func (scenario *Scenario) ExampleCount() int {
	if !scenario.HasExamples() {
		return 0
	}
	return len(scenario.Examples[scenario.ExampleVariables[0]])
}

func (scenario Scenario) Kind() TokenKind {
	if scenario.Outline {
		return ScenarioOutlineKind
	}
	return ScenarioKind
}
