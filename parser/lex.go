/*----------------------------------------------------------------
 *  Copyright (c) Fable Contributors
 *  Licensed under the Apache License, Version 2.0
 *  See LICENSE in the project root for license information.
 *----------------------------------------------------------------*/

package parser

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/getfable/fable/fable"
)

// Keyword literals recognized by the lexer. The keyword is the whole
// line; the name of a feature or scenario is the first sentence of its
// indented block.
const (
	featureKeyword  = "Feature:"
	scenarioKeyword = "Scenario:"
	outlineKeyword  = "Scenario Outline:"
	examplesKeyword = "Examples:"
)

const tableSeparator = '|'

var operatorWords = map[string]bool{
	"Given": true,
	"When":  true,
	"Then":  true,
	"And":   true,
	"But":   true,
}

// Token is one entity identified by the lexer. Value carries the text of
// sentences and operators and the fixed literal of keyword tokens; Cells
// carries the trimmed column values of an example row; Levels carries the
// number of blocks an outdent closes. LineNo is 1-based and used only for
// diagnostics.
type Token struct {
	Kind   fable.TokenKind
	Value  string
	Cells  []string
	Levels int
	LineNo int
}

func (t *Token) String() string {
	switch t.Kind {
	case fable.ExampleRowKind:
		return fmt.Sprintf("kind:%s, lineNo:%d, cells:%s", t.Kind, t.LineNo, t.Cells)
	case fable.OutdentKind:
		return fmt.Sprintf("kind:%s, lineNo:%d, levels:%d", t.Kind, t.LineNo, t.Levels)
	}
	return fmt.Sprintf("kind:%s, lineNo:%d, value:%s", t.Kind, t.LineNo, t.Value)
}

// SpecLexer converts feature text into a token sequence, synthesizing
// INDENT and OUTDENT tokens from whitespace changes. A lexer instance
// holds the state of one run; every call to Tokenize uses a fresh one.
type SpecLexer struct {
	scanner      *bufio.Scanner
	lineNo       int
	tokens       []*Token
	currentState int
	indents      []int
}

// Tokenize converts feature text into its token sequence. The sequence
// is always terminated by exactly one EOF token; on error no tokens are
// returned.
func Tokenize(specText string) ([]*Token, error) {
	lexer := &SpecLexer{indents: []int{0}}
	return lexer.generateTokens(specText)
}

func (lexer *SpecLexer) generateTokens(specText string) ([]*Token, error) {
	lexer.scanner = bufio.NewScanner(strings.NewReader(specText))
	lexer.currentState = initial
	for line, hasLine := lexer.nextLine(); hasLine; line, hasLine = lexer.nextLine() {
		trimmed := strings.TrimSpace(line)
		if len(trimmed) == 0 {
			continue
		}
		if err := lexer.trackIndentation(indentWidth(line)); err != nil {
			return nil, err
		}
		if err := lexer.classify(trimmed); err != nil {
			return nil, err
		}
		lexer.emit(&Token{Kind: fable.TerminatorKind, LineNo: lexer.lineNo})
	}
	lexer.closeOpenBlocks()
	lexer.emit(&Token{Kind: fable.EOFKind, LineNo: lexer.lineNo})
	return lexer.tokens, nil
}

// trackIndentation compares the line's indentation with the stack of open
// block widths, pushing one level on a deeper line and popping levels on
// a shallower one. A single OUTDENT token carries the pop count.
func (lexer *SpecLexer) trackIndentation(width int) error {
	top := lexer.indents[len(lexer.indents)-1]
	if width == top {
		return nil
	}
	if width > top {
		lexer.indents = append(lexer.indents, width)
		lexer.emit(&Token{Kind: fable.IndentKind, LineNo: lexer.lineNo})
		return nil
	}
	levels := 0
	for len(lexer.indents) > 1 && lexer.indents[len(lexer.indents)-1] > width {
		lexer.indents = lexer.indents[:len(lexer.indents)-1]
		levels++
	}
	if lexer.indents[len(lexer.indents)-1] != width {
		return &ParseError{
			ErrKind: LexFailure,
			LineNo:  lexer.lineNo,
			Message: fmt.Sprintf("indentation of %d columns matches no open block", width),
		}
	}
	lexer.emit(&Token{Kind: fable.OutdentKind, Levels: levels, LineNo: lexer.lineNo})
	return nil
}

func (lexer *SpecLexer) classify(trimmed string) error {
	switch {
	case trimmed == featureKeyword:
		lexer.clearState()
		addStates(&lexer.currentState, featureScope)
		lexer.emit(&Token{Kind: fable.FeatureKind, Value: featureKeyword, LineNo: lexer.lineNo})
	case trimmed == outlineKeyword:
		retainStates(&lexer.currentState, featureScope)
		addStates(&lexer.currentState, scenarioScope)
		lexer.emit(&Token{Kind: fable.ScenarioOutlineKind, Value: outlineKeyword, LineNo: lexer.lineNo})
	case trimmed == scenarioKeyword:
		retainStates(&lexer.currentState, featureScope)
		addStates(&lexer.currentState, scenarioScope)
		lexer.emit(&Token{Kind: fable.ScenarioKind, Value: scenarioKeyword, LineNo: lexer.lineNo})
	case trimmed == examplesKeyword:
		addStates(&lexer.currentState, examplesScope)
		lexer.emit(&Token{Kind: fable.ExamplesKind, Value: examplesKeyword, LineNo: lexer.lineNo})
	case hasTrailingKeywordText(trimmed):
		return &ParseError{
			ErrKind: LexFailure,
			LineNo:  lexer.lineNo,
			Message: fmt.Sprintf("unrecognized line form %q, a heading keyword takes no text on the same line", trimmed),
		}
	case lexer.isTableRow(trimmed):
		lexer.emit(&Token{Kind: fable.ExampleRowKind, Cells: splitCells(trimmed), LineNo: lexer.lineNo})
	default:
		lexer.emitLineText(trimmed)
	}
	return nil
}

// emitLineText classifies a free-text line. Inside a step block a leading
// operator word opens a step and the remaining text is the step's primary
// sentence. The first sentence after a scenario keyword is the scenario
// name and enters the step block.
func (lexer *SpecLexer) emitLineText(trimmed string) {
	if isInState(lexer.currentState, stepScope) && !isInState(lexer.currentState, examplesScope) {
		if operator, rest, ok := splitOperator(trimmed); ok {
			lexer.emit(&Token{Kind: fable.OperatorKind, Value: operator, LineNo: lexer.lineNo})
			if rest != "" {
				lexer.emit(&Token{Kind: fable.SentenceKind, Value: rest, LineNo: lexer.lineNo})
			}
			return
		}
	}
	lexer.emit(&Token{Kind: fable.SentenceKind, Value: trimmed, LineNo: lexer.lineNo})
	if isInState(lexer.currentState, scenarioScope) && !isInState(lexer.currentState, stepScope) {
		addStates(&lexer.currentState, stepScope)
	}
}

// hasTrailingKeywordText reports a heading keyword followed by more text
// on the same line, a form the grammar does not accept.
func hasTrailingKeywordText(trimmed string) bool {
	for _, keyword := range []string{outlineKeyword, scenarioKeyword, featureKeyword, examplesKeyword} {
		if strings.HasPrefix(trimmed, keyword) {
			return true
		}
	}
	return false
}

func (lexer *SpecLexer) isTableRow(trimmed string) bool {
	return isInState(lexer.currentState, examplesScope) &&
		trimmed[0] == tableSeparator && trimmed[len(trimmed)-1] == tableSeparator
}

func (lexer *SpecLexer) closeOpenBlocks() {
	if len(lexer.indents) < 2 {
		return
	}
	levels := len(lexer.indents) - 1
	lexer.indents = lexer.indents[:1]
	lexer.emit(&Token{Kind: fable.OutdentKind, Levels: levels, LineNo: lexer.lineNo})
}

func (lexer *SpecLexer) emit(token *Token) {
	lexer.tokens = append(lexer.tokens, token)
}

func (lexer *SpecLexer) nextLine() (string, bool) {
	if lexer.scanner.Scan() {
		lexer.lineNo++
		return lexer.scanner.Text(), true
	}
	return "", false
}

func (lexer *SpecLexer) clearState() {
	lexer.currentState = 0
}

// indentWidth measures leading whitespace in columns, expanding tabs to
// four columns.
func indentWidth(line string) int {
	width := 0
	for _, r := range line {
		switch r {
		case ' ':
			width++
		case '\t':
			width += 4
		default:
			return width
		}
	}
	return width
}

func splitOperator(text string) (string, string, bool) {
	operator := text
	rest := ""
	if index := strings.IndexAny(text, " \t"); index != -1 {
		operator = text[:index]
		rest = strings.TrimSpace(text[index:])
	}
	if !operatorWords[operator] {
		return "", "", false
	}
	return operator, rest, true
}

func splitCells(trimmed string) []string {
	inner := strings.TrimPrefix(trimmed, string(tableSeparator))
	inner = strings.TrimSuffix(inner, string(tableSeparator))
	parts := strings.Split(inner, string(tableSeparator))
	cells := make([]string, len(parts))
	for i, part := range parts {
		cells[i] = strings.TrimSpace(part)
	}
	return cells
}
