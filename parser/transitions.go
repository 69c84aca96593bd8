/*----------------------------------------------------------------
 *  Copyright (c) Fable Contributors
 *  Licensed under the Apache License, Version 2.0
 *  See LICENSE in the project root for license information.
 *----------------------------------------------------------------*/

package parser

import "github.com/getfable/fable/fable"

type state int

const (
	start state = iota
	feature
	featureHeader
	featureDescription
	scenario
	scenarioHeader
	stepOperator
	stepBody
	examples
	exampleRows
	finish
)

var stateNames = map[state]string{
	start:              "start",
	feature:            "feature",
	featureHeader:      "featureHeader",
	featureDescription: "featureDescription",
	scenario:           "scenario",
	scenarioHeader:     "scenarioHeader",
	stepOperator:       "stepOperator",
	stepBody:           "stepBody",
	examples:           "examples",
	exampleRows:        "exampleRows",
	finish:             "finish",
}

func (s state) String() string {
	return stateNames[s]
}

// buildAction tags the AST mutation a transition performs. Actions form a
// closed set dispatched by SpecParser.apply rather than function values
// stored in table data, so the table itself stays immutable.
type buildAction int

const (
	actionNone buildAction = iota
	actionAddFeature
	actionAddDescription
	actionAddScenario
	actionAddOutline
	actionNameScenario
	actionAddStep
	actionAddSentence
	actionAddExampleRow
)

// transition describes one accepted token in one state. An empty value
// accepts any token value; otherwise the token's value must equal it. A
// nil preceding list leaves the preceding token unconstrained; otherwise
// the kind of the last consumed token must be a member. For outdent
// tokens, returns maps the level count the token carries to the state the
// parser resumes in.
type transition struct {
	value     string
	next      state
	preceding []fable.TokenKind
	action    buildAction
	returns   map[int]state
}

func kinds(list ...fable.TokenKind) []fable.TokenKind {
	return list
}

// grammar is the static transition table shared by every parse run. Each
// run owns only its cursor: current state, last token and the suite under
// construction.
var grammar = map[state]map[fable.TokenKind]transition{
	start: {
		fable.FeatureKind: {value: featureKeyword, next: feature},
		fable.EOFKind:     {next: finish},
	},
	feature: {
		fable.TerminatorKind: {next: feature, preceding: kinds(fable.FeatureKind)},
		fable.IndentKind:     {next: feature, preceding: kinds(fable.TerminatorKind)},
		fable.SentenceKind:   {next: featureHeader, preceding: kinds(fable.IndentKind), action: actionAddFeature},
	},
	featureHeader: {
		fable.TerminatorKind: {next: featureDescription, preceding: kinds(fable.SentenceKind)},
	},
	featureDescription: {
		fable.SentenceKind: {
			next:      featureHeader,
			preceding: kinds(fable.TerminatorKind, fable.OutdentKind),
			action:    actionAddDescription,
		},
		fable.ScenarioKind: {
			value:     scenarioKeyword,
			next:      scenario,
			preceding: kinds(fable.TerminatorKind, fable.OutdentKind),
			action:    actionAddScenario,
		},
		fable.ScenarioOutlineKind: {
			value:     outlineKeyword,
			next:      scenario,
			preceding: kinds(fable.TerminatorKind, fable.OutdentKind),
			action:    actionAddOutline,
		},
	},
	scenario: {
		fable.TerminatorKind: {next: scenario, preceding: kinds(fable.ScenarioKind, fable.ScenarioOutlineKind)},
		fable.IndentKind:     {next: scenario, preceding: kinds(fable.TerminatorKind)},
		fable.SentenceKind:   {next: scenarioHeader, preceding: kinds(fable.IndentKind), action: actionNameScenario},
	},
	scenarioHeader: {
		fable.TerminatorKind: {next: stepOperator, preceding: kinds(fable.SentenceKind)},
	},
	stepOperator: {
		fable.OperatorKind: {next: stepBody, preceding: kinds(fable.TerminatorKind), action: actionAddStep},
		fable.SentenceKind: {next: stepBody, preceding: kinds(fable.TerminatorKind), action: actionAddSentence},
		fable.ExamplesKind: {value: examplesKeyword, next: examples, preceding: kinds(fable.TerminatorKind)},
		fable.OutdentKind: {
			preceding: kinds(fable.TerminatorKind),
			returns:   map[int]state{1: featureDescription, 2: start},
		},
		fable.EOFKind: {next: finish},
	},
	stepBody: {
		fable.SentenceKind:   {next: stepBody, preceding: kinds(fable.OperatorKind), action: actionAddSentence},
		fable.TerminatorKind: {next: stepOperator, preceding: kinds(fable.SentenceKind, fable.OperatorKind)},
		fable.EOFKind:        {next: finish},
	},
	examples: {
		fable.TerminatorKind: {next: examples, preceding: kinds(fable.ExamplesKind)},
		fable.IndentKind:     {next: exampleRows, preceding: kinds(fable.TerminatorKind)},
	},
	exampleRows: {
		fable.ExampleRowKind: {
			next:      exampleRows,
			preceding: kinds(fable.IndentKind, fable.TerminatorKind),
			action:    actionAddExampleRow,
		},
		fable.TerminatorKind: {next: exampleRows, preceding: kinds(fable.ExampleRowKind)},
		fable.OutdentKind: {
			preceding: kinds(fable.TerminatorKind),
			returns:   map[int]state{1: stepOperator, 2: featureDescription, 3: start},
		},
		fable.EOFKind: {next: finish},
	},
}
