/*----------------------------------------------------------------
 *  Copyright (c) Fable Contributors
 *  Licensed under the Apache License, Version 2.0
 *  See LICENSE in the project root for license information.
 *----------------------------------------------------------------*/

package parser

import "fmt"

// ErrorKind classifies the fatal failures the lexer and parser raise.
type ErrorKind int

const (
	// LexFailure is an indentation underflow or an unrecognized line form.
	LexFailure ErrorKind = iota
	// UnexpectedTokenKind means the current state has no transition for
	// the encountered token kind.
	UnexpectedTokenKind
	// UnexpectedTokenValue means the token kind matched but its value
	// failed the transition's literal constraint.
	UnexpectedTokenValue
	// MismatchedPrecedingToken means kind and value were acceptable but
	// the immediately preceding token violated the contextual guard.
	MismatchedPrecedingToken
	// MalformedExampleTable means an example data row's column count
	// differs from the header row.
	MalformedExampleTable
)

var errorKindNames = map[ErrorKind]string{
	LexFailure:               "LexError",
	UnexpectedTokenKind:      "UnexpectedTokenKind",
	UnexpectedTokenValue:     "UnexpectedTokenValue",
	MismatchedPrecedingToken: "MismatchedPrecedingToken",
	MalformedExampleTable:    "MalformedExampleTable",
}

func (k ErrorKind) String() string {
	return errorKindNames[k]
}

// ParseError aborts a parse; there is no recovery and no partial AST.
type ParseError struct {
	ErrKind  ErrorKind
	LineNo   int
	Message  string
	LineText string
}

func (e *ParseError) Error() string {
	if e.LineText != "" {
		return fmt.Sprintf("line no: %d, %s => '%s'", e.LineNo, e.Message, e.LineText)
	}
	return fmt.Sprintf("line no: %d, %s", e.LineNo, e.Message)
}

func unexpectedKindError(st state, token *Token) *ParseError {
	return &ParseError{
		ErrKind:  UnexpectedTokenKind,
		LineNo:   token.LineNo,
		Message:  fmt.Sprintf("unexpected token %s, state %s has no transition for it", token.Kind, st),
		LineText: token.Value,
	}
}

func unexpectedValueError(token *Token, expected string) *ParseError {
	return &ParseError{
		ErrKind:  UnexpectedTokenValue,
		LineNo:   token.LineNo,
		Message:  fmt.Sprintf("unexpected value for %s token, expected %q", token.Kind, expected),
		LineText: token.Value,
	}
}

func mismatchedPrecedingError(token, preceding *Token) *ParseError {
	detail := "no token precedes it"
	if preceding != nil {
		detail = fmt.Sprintf("it follows %s from line %d", preceding.Kind, preceding.LineNo)
	}
	return &ParseError{
		ErrKind:  MismatchedPrecedingToken,
		LineNo:   token.LineNo,
		Message:  fmt.Sprintf("%s is not allowed here, %s", token.Kind, detail),
		LineText: token.Value,
	}
}

func malformedTableError(token *Token, want, got int) *ParseError {
	return &ParseError{
		ErrKind: MalformedExampleTable,
		LineNo:  token.LineNo,
		Message: fmt.Sprintf("example row has %d columns, the header row declared %d", got, want),
	}
}
