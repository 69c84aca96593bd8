/*----------------------------------------------------------------
 *  Copyright (c) Fable Contributors
 *  Licensed under the Apache License, Version 2.0
 *  See LICENSE in the project root for license information.
 *----------------------------------------------------------------*/

package fable

import "strings"

// Step is one behavior clause within a scenario. Number is its 1-based
// position. Clauses holds the operator word first, followed by the step's
// primary sentence and any continuation sentences.
type Step struct {
	Number  int
	Clauses []string
}

func NewStep(operator string) *Step {
	return &Step{Clauses: []string{operator}}
}

func (step *Step) AddClause(text string) {
	step.Clauses = append(step.Clauses, text)
}

// Operator returns the keyword that introduced the step.
func (step *Step) Operator() string {
	if len(step.Clauses) == 0 {
		return ""
	}
	return step.Clauses[0]
}

// Sentences returns the step text without the leading operator.
func (step *Step) Sentences() []string {
	if len(step.Clauses) < 2 {
		return nil
	}
	return step.Clauses[1:]
}

// Text renders the step as a single line, operator included.
func (step *Step) Text() string {
	return strings.Join(step.Clauses, " ")
}

func (step Step) Kind() TokenKind {
	return OperatorKind
}
