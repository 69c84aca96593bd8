/*----------------------------------------------------------------
 *  Copyright (c) Fable Contributors
 *  Licensed under the Apache License, Version 2.0
 *  See LICENSE in the project root for license information.
 *----------------------------------------------------------------*/

package fable

import "strings"

// Feature is a top-level named specification unit holding free-text
// description lines and one or more scenarios.
type Feature struct {
	Name             string
	DescriptionLines []string
	Scenarios        []*Scenario
}

func (feature *Feature) AddDescription(line string) {
	feature.DescriptionLines = append(feature.DescriptionLines, line)
}

// Description returns the newline-joined free text following the header.
func (feature *Feature) Description() string {
	return strings.Join(feature.DescriptionLines, "\n")
}

func (feature *Feature) AddScenario(scenario *Scenario) {
	feature.Scenarios = append(feature.Scenarios, scenario)
}

func (feature *Feature) LatestScenario() *Scenario {
	if len(feature.Scenarios) == 0 {
		return nil
	}
	return feature.Scenarios[len(feature.Scenarios)-1]
}

func (feature Feature) Kind() TokenKind {
	return FeatureKind
}
