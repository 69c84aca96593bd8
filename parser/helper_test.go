/*----------------------------------------------------------------
 *  Copyright (c) Fable Contributors
 *  Licensed under the Apache License, Version 2.0
 *  See LICENSE in the project root for license information.
 *----------------------------------------------------------------*/

package parser

import (
	"fmt"
	"strings"
)

// specBuilder assembles feature text for tests. Indentation levels are
// four spaces wide: level 1 holds feature names, descriptions and
// scenario keywords, level 2 scenario names and steps, level 3 example
// rows.
type specBuilder struct {
	lines []string
}

func newSpecBuilder() *specBuilder {
	return &specBuilder{lines: make([]string, 0)}
}

func (builder *specBuilder) addLine(level int, text string) *specBuilder {
	builder.lines = append(builder.lines, fmt.Sprintf("%s%s\n", strings.Repeat("    ", level), text))
	return builder
}

func (builder *specBuilder) String() string {
	return strings.Join(builder.lines, "")
}

func (builder *specBuilder) feature(name string) *specBuilder {
	return builder.addLine(0, "Feature:").addLine(1, name)
}

func (builder *specBuilder) description(lines ...string) *specBuilder {
	for _, line := range lines {
		builder.addLine(1, line)
	}
	return builder
}

func (builder *specBuilder) scenario(name string) *specBuilder {
	return builder.addLine(1, "Scenario:").addLine(2, name)
}

func (builder *specBuilder) outline(name string) *specBuilder {
	return builder.addLine(1, "Scenario Outline:").addLine(2, name)
}

func (builder *specBuilder) step(text string) *specBuilder {
	return builder.addLine(2, text)
}

func (builder *specBuilder) examples() *specBuilder {
	return builder.addLine(2, "Examples:")
}

func (builder *specBuilder) row(cells ...string) *specBuilder {
	return builder.addLine(3, "| "+strings.Join(cells, " | ")+" |")
}

func (builder *specBuilder) blank() *specBuilder {
	builder.lines = append(builder.lines, "\n")
	return builder
}
