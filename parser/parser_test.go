/*----------------------------------------------------------------
 *  Copyright (c) Fable Contributors
 *  Licensed under the Apache License, Version 2.0
 *  See LICENSE in the project root for license information.
 *----------------------------------------------------------------*/

package parser

import (
	"strings"

	"github.com/getfable/fable/fable"
	. "gopkg.in/check.v1"
)

func (s *MySuite) TestParseLoginFeature(c *C) {
	specText := newSpecBuilder().feature("Login").
		scenario("Valid credentials").
		step("Given a user").
		step("Then is logged in").String()

	suite, err := ParseText(specText)

	c.Assert(err, IsNil)
	c.Assert(suite.FeatureCount(), Equals, 1)
	feature := suite.Feature("1")
	c.Assert(feature, NotNil)
	c.Assert(feature.Name, Equals, "Login")
	c.Assert(len(feature.Scenarios), Equals, 1)
	scenario := feature.Scenarios[0]
	c.Assert(scenario.Name, Equals, "Valid credentials")
	c.Assert(len(scenario.Steps), Equals, 2)
	c.Assert(scenario.Steps[0].Clauses, DeepEquals, []string{"Given", "a user"})
	c.Assert(scenario.Steps[0].Number, Equals, 1)
	c.Assert(scenario.Steps[1].Clauses, DeepEquals, []string{"Then", "is logged in"})
	c.Assert(scenario.Steps[1].Number, Equals, 2)
}

func (s *MySuite) TestParseFeatureDescription(c *C) {
	specText := newSpecBuilder().feature("Login").
		description("Covers the login flows.", "Password rules live elsewhere.").
		scenario("Valid credentials").
		step("Given a user").String()

	suite, err := ParseText(specText)

	c.Assert(err, IsNil)
	feature := suite.Feature("1")
	c.Assert(feature.Description(), Equals, "Covers the login flows.\nPassword rules live elsewhere.")
}

func (s *MySuite) TestParseContinuationSentenceExtendsStep(c *C) {
	specText := newSpecBuilder().feature("Login").
		scenario("Valid credentials").
		step("Given a user").
		step("with admin rights").
		step("Then is logged in").String()

	suite, err := ParseText(specText)

	c.Assert(err, IsNil)
	scenario := suite.Feature("1").Scenarios[0]
	c.Assert(len(scenario.Steps), Equals, 2)
	c.Assert(scenario.Steps[0].Clauses, DeepEquals, []string{"Given", "a user", "with admin rights"})
	c.Assert(scenario.Steps[0].Text(), Equals, "Given a user with admin rights")
	c.Assert(scenario.Steps[0].Sentences(), DeepEquals, []string{"a user", "with admin rights"})
}

func (s *MySuite) TestParseMultipleFeaturesAndScenarios(c *C) {
	specText := newSpecBuilder().feature("Login").
		scenario("Valid credentials").
		step("Given a user").
		scenario("Wrong password").
		step("Given a user").
		step("Then access is denied").
		feature("Search").
		scenario("Simple query").
		step("When the user searches").String()

	suite, err := ParseText(specText)

	c.Assert(err, IsNil)
	c.Assert(suite.FeatureCount(), Equals, 2)
	c.Assert(suite.ScenarioCount(), Equals, 3)
	c.Assert(suite.FeatureIDs(), DeepEquals, []string{"1", "2"})
	c.Assert(suite.Feature("1").Name, Equals, "Login")
	c.Assert(suite.Feature("2").Name, Equals, "Search")
	c.Assert(len(suite.Feature("1").Scenarios), Equals, 2)
	c.Assert(suite.Feature("1").Scenarios[1].Name, Equals, "Wrong password")
}

func (s *MySuite) TestParseOutlineAccumulatesExamplesByColumn(c *C) {
	specText := newSpecBuilder().feature("Login").
		outline("Bulk login").
		step("Given the user <a> with <b>").
		examples().
		row("a", "b").
		row("1", "2").
		row("3", "4").String()

	suite, err := ParseText(specText)

	c.Assert(err, IsNil)
	scenario := suite.Feature("1").Scenarios[0]
	c.Assert(scenario.Outline, Equals, true)
	c.Assert(scenario.ExampleVariables, DeepEquals, []string{"a", "b"})
	c.Assert(scenario.Examples["a"], DeepEquals, []string{"1", "3"})
	c.Assert(scenario.Examples["b"], DeepEquals, []string{"2", "4"})
	c.Assert(scenario.ExampleCount(), Equals, 2)
}

func (s *MySuite) TestParseScenarioAfterExamplesBlock(c *C) {
	specText := newSpecBuilder().feature("Login").
		outline("Bulk login").
		step("Given the user <name>").
		examples().
		row("name").
		row("scott").
		scenario("Plain follow up").
		step("Given a user").String()

	suite, err := ParseText(specText)

	c.Assert(err, IsNil)
	c.Assert(len(suite.Feature("1").Scenarios), Equals, 2)
	c.Assert(suite.Feature("1").Scenarios[1].Name, Equals, "Plain follow up")
}

func (s *MySuite) TestParseRejectsRaggedExampleRow(c *C) {
	specText := newSpecBuilder().feature("Login").
		outline("Bulk login").
		step("Given the user <a> with <b>").
		examples().
		row("a", "b").
		row("1").String()

	_, err := ParseText(specText)

	c.Assert(err, NotNil)
	parseErr, ok := err.(*ParseError)
	c.Assert(ok, Equals, true)
	c.Assert(parseErr.ErrKind, Equals, MalformedExampleTable)
	c.Assert(strings.Contains(parseErr.Message, "1 columns"), Equals, true)
	c.Assert(strings.Contains(parseErr.Message, "declared 2"), Equals, true)
}

func (s *MySuite) TestParseRejectsSentenceDirectlyAfterScenarioKeyword(c *C) {
	tokens := []*Token{
		{Kind: fable.FeatureKind, Value: featureKeyword, LineNo: 1},
		{Kind: fable.TerminatorKind, LineNo: 1},
		{Kind: fable.IndentKind, LineNo: 2},
		{Kind: fable.SentenceKind, Value: "Login", LineNo: 2},
		{Kind: fable.TerminatorKind, LineNo: 2},
		{Kind: fable.ScenarioKind, Value: scenarioKeyword, LineNo: 3},
		{Kind: fable.SentenceKind, Value: "Valid credentials", LineNo: 3},
	}

	_, err := Parse(tokens)

	c.Assert(err, NotNil)
	parseErr, ok := err.(*ParseError)
	c.Assert(ok, Equals, true)
	c.Assert(parseErr.ErrKind, Equals, MismatchedPrecedingToken)
	c.Assert(parseErr.LineNo, Equals, 3)
	c.Assert(strings.Contains(parseErr.Message, "SCENARIO"), Equals, true)
}

func (s *MySuite) TestParseRejectsScenarioBeforeFeature(c *C) {
	tokens := []*Token{
		{Kind: fable.ScenarioKind, Value: scenarioKeyword, LineNo: 1},
	}

	_, err := Parse(tokens)

	c.Assert(err, NotNil)
	parseErr, ok := err.(*ParseError)
	c.Assert(ok, Equals, true)
	c.Assert(parseErr.ErrKind, Equals, UnexpectedTokenKind)
	c.Assert(strings.Contains(parseErr.Message, "SCENARIO"), Equals, true)
	c.Assert(strings.Contains(parseErr.Message, "start"), Equals, true)
}

func (s *MySuite) TestParseRejectsMisspelledKeywordValue(c *C) {
	tokens := []*Token{
		{Kind: fable.FeatureKind, Value: "Feature", LineNo: 1},
	}

	_, err := Parse(tokens)

	c.Assert(err, NotNil)
	parseErr, ok := err.(*ParseError)
	c.Assert(ok, Equals, true)
	c.Assert(parseErr.ErrKind, Equals, UnexpectedTokenValue)
}

func (s *MySuite) TestParseRejectsStrayTextBeforeAnyStep(c *C) {
	specText := newSpecBuilder().feature("Login").
		scenario("Valid credentials").
		step("just plain text").String()

	_, err := ParseText(specText)

	c.Assert(err, NotNil)
	parseErr, ok := err.(*ParseError)
	c.Assert(ok, Equals, true)
	c.Assert(parseErr.ErrKind, Equals, MismatchedPrecedingToken)
	c.Assert(strings.Contains(parseErr.Message, "does not continue any step"), Equals, true)
}

func (s *MySuite) TestParseRejectsTruncatedTokenSequence(c *C) {
	tokens := []*Token{
		{Kind: fable.FeatureKind, Value: featureKeyword, LineNo: 1},
		{Kind: fable.TerminatorKind, LineNo: 1},
	}

	_, err := Parse(tokens)

	c.Assert(err, NotNil)
	parseErr, ok := err.(*ParseError)
	c.Assert(ok, Equals, true)
	c.Assert(strings.Contains(parseErr.Message, "finish state"), Equals, true)
}

func (s *MySuite) TestParseEmptyInputYieldsEmptySuite(c *C) {
	suite, err := ParseText("")

	c.Assert(err, IsNil)
	c.Assert(suite.FeatureCount(), Equals, 0)
}

func (s *MySuite) TestParseWithHandsSuiteToConsumer(c *C) {
	specText := newSpecBuilder().feature("Login").
		scenario("Valid credentials").
		step("Given a user").String()
	tokens, err := Tokenize(specText)
	c.Assert(err, IsNil)

	var received *fable.Suite
	err = ParseWith(tokens, func(suite *fable.Suite) error {
		received = suite
		return nil
	})

	c.Assert(err, IsNil)
	c.Assert(received, NotNil)
	c.Assert(received.Feature("1").Name, Equals, "Login")
}

func (s *MySuite) TestParseWithPropagatesLexFailure(c *C) {
	_, err := ParseText("Feature: Login\n")

	c.Assert(err, NotNil)
	parseErr, ok := err.(*ParseError)
	c.Assert(ok, Equals, true)
	c.Assert(parseErr.ErrKind, Equals, LexFailure)
}

func (s *MySuite) TestParseRunsAreIndependent(c *C) {
	specText := newSpecBuilder().feature("Login").
		scenario("Valid credentials").
		step("Given a user").String()
	tokens, err := Tokenize(specText)
	c.Assert(err, IsNil)

	first, err := Parse(tokens)
	c.Assert(err, IsNil)
	second, err := Parse(tokens)
	c.Assert(err, IsNil)

	c.Assert(first, Not(Equals), second)
	c.Assert(first.FeatureCount(), Equals, second.FeatureCount())
	c.Assert(second.Feature("1").Name, Equals, "Login")
}
