/*----------------------------------------------------------------
 *  Copyright (c) Fable Contributors
 *  Licensed under the Apache License, Version 2.0
 *  See LICENSE in the project root for license information.
 *----------------------------------------------------------------*/

package parser

import (
	"github.com/getfable/fable/fable"
)

// SpecParser drives the grammar's finite-state machine over a token
// sequence and builds the suite as a side effect of its transitions. The
// transition table is shared, read-only data; a parser instance holds
// only the cursor of one run, so independent parses never coordinate.
type SpecParser struct {
	currentState state
	lastToken    *Token
	suite        *fable.Suite
}

// Consumer receives the finished suite when parsing reaches the terminal
// state. Ownership of the suite transfers wholesale to the consumer.
type Consumer func(*fable.Suite) error

// Parse runs the state machine over tokens and returns the completed
// suite. All failures are fatal: the error carries the offending token's
// kind, value and line, and no partial suite is returned.
func Parse(tokens []*Token) (*fable.Suite, error) {
	parser := &SpecParser{currentState: start, suite: fable.NewSuite()}
	for _, token := range tokens {
		if err := parser.accept(token); err != nil {
			return nil, err
		}
	}
	if parser.currentState != finish {
		return nil, &ParseError{
			ErrKind: UnexpectedTokenKind,
			LineNo:  parser.lastLineNo(),
			Message: "token sequence ended before reaching the finish state",
		}
	}
	return parser.suite, nil
}

// ParseText tokenizes text and parses the result.
func ParseText(specText string) (*fable.Suite, error) {
	tokens, err := Tokenize(specText)
	if err != nil {
		return nil, err
	}
	return Parse(tokens)
}

// ParseWith parses tokens and hands the completed suite to consume.
func ParseWith(tokens []*Token, consume Consumer) error {
	suite, err := Parse(tokens)
	if err != nil {
		return err
	}
	return consume(suite)
}

// accept runs one token through the transition algorithm: kind lookup,
// value constraint, preceding-token guard, build action, state move.
func (parser *SpecParser) accept(token *Token) error {
	t, ok := grammar[parser.currentState][token.Kind]
	if !ok {
		return unexpectedKindError(parser.currentState, token)
	}
	if t.value != "" && token.Value != t.value {
		return unexpectedValueError(token, t.value)
	}
	if t.preceding != nil && !precededBy(parser.lastToken, t.preceding) {
		return mismatchedPrecedingError(token, parser.lastToken)
	}
	next := t.next
	if token.Kind == fable.OutdentKind && t.returns != nil {
		var known bool
		if next, known = t.returns[token.Levels]; !known {
			return &ParseError{
				ErrKind: UnexpectedTokenValue,
				LineNo:  token.LineNo,
				Message: "outdent closes more blocks than are open in the grammar",
			}
		}
	}
	if err := parser.apply(t.action, token); err != nil {
		return err
	}
	parser.currentState = next
	parser.lastToken = token
	return nil
}

func precededBy(last *Token, accepted []fable.TokenKind) bool {
	if last == nil {
		return false
	}
	for _, kind := range accepted {
		if last.Kind == kind {
			return true
		}
	}
	return false
}

// apply mutates the suite for the transition's build action. The suite is
// written nowhere else; mutations are append only.
func (parser *SpecParser) apply(action buildAction, token *Token) error {
	switch action {
	case actionNone:
	case actionAddFeature:
		parser.suite.AddFeature(&fable.Feature{Name: token.Value})
	case actionAddDescription:
		parser.suite.LatestFeature().AddDescription(token.Value)
	case actionAddScenario:
		parser.suite.LatestFeature().AddScenario(&fable.Scenario{})
	case actionAddOutline:
		parser.suite.LatestFeature().AddScenario(&fable.Scenario{Outline: true})
	case actionNameScenario:
		parser.suite.LatestFeature().LatestScenario().Name = token.Value
	case actionAddStep:
		parser.suite.LatestFeature().LatestScenario().AddStep(fable.NewStep(token.Value))
	case actionAddSentence:
		step := parser.suite.LatestFeature().LatestScenario().LatestStep()
		if step == nil {
			return &ParseError{
				ErrKind:  MismatchedPrecedingToken,
				LineNo:   token.LineNo,
				Message:  "sentence does not continue any step",
				LineText: token.Value,
			}
		}
		step.AddClause(token.Value)
	case actionAddExampleRow:
		scenario := parser.suite.LatestFeature().LatestScenario()
		if scenario.ExampleVariables != nil && len(token.Cells) != len(scenario.ExampleVariables) {
			return malformedTableError(token, len(scenario.ExampleVariables), len(token.Cells))
		}
		scenario.AddExampleRow(token.Cells)
	}
	return nil
}

func (parser *SpecParser) lastLineNo() int {
	if parser.lastToken == nil {
		return 0
	}
	return parser.lastToken.LineNo
}
