/*----------------------------------------------------------------
 *  Copyright (c) Fable Contributors
 *  Licensed under the Apache License, Version 2.0
 *  See LICENSE in the project root for license information.
 *----------------------------------------------------------------*/

package fable

// TokenKind identifies the class of entity the lexer found on a line.
type TokenKind int

const (
	FeatureKind TokenKind = iota
	ScenarioKind
	ScenarioOutlineKind
	SentenceKind
	OperatorKind
	ExamplesKind
	ExampleRowKind
	IndentKind
	OutdentKind
	TerminatorKind
	EOFKind
)

var tokenKindNames = map[TokenKind]string{
	FeatureKind:         "FEATURE",
	ScenarioKind:        "SCENARIO",
	ScenarioOutlineKind: "SCENARIO_OUTLINE",
	SentenceKind:        "SENTENCE",
	OperatorKind:        "OPERATOR",
	ExamplesKind:        "EXAMPLES",
	ExampleRowKind:      "EXAMPLE_ROW",
	IndentKind:          "INDENT",
	OutdentKind:         "OUTDENT",
	TerminatorKind:      "TERMINATOR",
	EOFKind:             "EOF",
}

func (k TokenKind) String() string {
	if name, ok := tokenKindNames[k]; ok {
		return name
	}
	return "UNKNOWN"
}
