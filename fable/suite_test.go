/*----------------------------------------------------------------
 *  Copyright (c) Fable Contributors
 *  Licensed under the Apache License, Version 2.0
 *  See LICENSE in the project root for license information.
 *----------------------------------------------------------------*/

package fable

import (
	"testing"

	check "gopkg.in/check.v1"
)

func Test(t *testing.T) { check.TestingT(t) }

type MySuite struct{}

var _ = check.Suite(&MySuite{})

func (s *MySuite) TestAddFeatureAssignsSequentialIds(c *check.C) {
	suite := NewSuite()

	first := suite.AddFeature(&Feature{Name: "Login"})
	second := suite.AddFeature(&Feature{Name: "Search"})

	c.Assert(first, check.Equals, "1")
	c.Assert(second, check.Equals, "2")
	c.Assert(suite.FeatureCount(), check.Equals, 2)
	c.Assert(suite.Feature("1").Name, check.Equals, "Login")
	c.Assert(suite.Feature("2").Name, check.Equals, "Search")
	c.Assert(suite.FeatureIDs(), check.DeepEquals, []string{"1", "2"})
}

func (s *MySuite) TestLatestFeatureOnEmptySuite(c *check.C) {
	suite := NewSuite()

	c.Assert(suite.LatestFeature(), check.IsNil)
}

func (s *MySuite) TestFeaturesReturnsDiscoveryOrder(c *check.C) {
	suite := NewSuite()
	suite.AddFeature(&Feature{Name: "Login"})
	suite.AddFeature(&Feature{Name: "Search"})
	suite.AddFeature(&Feature{Name: "Billing"})

	features := suite.Features()

	c.Assert(len(features), check.Equals, 3)
	c.Assert(features[0].Name, check.Equals, "Login")
	c.Assert(features[2].Name, check.Equals, "Billing")
	c.Assert(suite.LatestFeature().Name, check.Equals, "Billing")
}

func (s *MySuite) TestScenarioCountSpansFeatures(c *check.C) {
	suite := NewSuite()
	login := &Feature{Name: "Login"}
	login.AddScenario(&Scenario{Name: "Valid credentials"})
	login.AddScenario(&Scenario{Name: "Wrong password"})
	search := &Feature{Name: "Search"}
	search.AddScenario(&Scenario{Name: "Simple query"})
	suite.AddFeature(login)
	suite.AddFeature(search)

	c.Assert(suite.ScenarioCount(), check.Equals, 3)
}

func (s *MySuite) TestFeatureDescriptionJoinsLines(c *check.C) {
	feature := &Feature{Name: "Login"}
	feature.AddDescription("Covers the login flows.")
	feature.AddDescription("Password rules live elsewhere.")

	c.Assert(feature.Description(), check.Equals, "Covers the login flows.\nPassword rules live elsewhere.")
}

func (s *MySuite) TestAddStepNumbersStepsInOrder(c *check.C) {
	scenario := &Scenario{Name: "Valid credentials"}
	scenario.AddStep(NewStep("Given"))
	scenario.AddStep(NewStep("Then"))

	c.Assert(scenario.Steps[0].Number, check.Equals, 1)
	c.Assert(scenario.Steps[1].Number, check.Equals, 2)
	c.Assert(scenario.LatestStep(), check.Equals, scenario.Steps[1])
}

func (s *MySuite) TestLatestStepOnEmptyScenario(c *check.C) {
	scenario := &Scenario{Name: "Valid credentials"}

	c.Assert(scenario.LatestStep(), check.IsNil)
}

func (s *MySuite) TestStepClauseAccessors(c *check.C) {
	step := NewStep("Given")
	step.AddClause("a user")
	step.AddClause("with admin rights")

	c.Assert(step.Operator(), check.Equals, "Given")
	c.Assert(step.Sentences(), check.DeepEquals, []string{"a user", "with admin rights"})
	c.Assert(step.Text(), check.Equals, "Given a user with admin rights")
}

func (s *MySuite) TestFirstExampleRowBecomesSchema(c *check.C) {
	scenario := &Scenario{Outline: true}
	scenario.AddExampleRow([]string{"a", "b"})

	c.Assert(scenario.ExampleVariables, check.DeepEquals, []string{"a", "b"})
	c.Assert(scenario.ExampleCount(), check.Equals, 0)
	c.Assert(scenario.HasExamples(), check.Equals, true)
}

func (s *MySuite) TestExampleRowsAccumulateByColumn(c *check.C) {
	scenario := &Scenario{Outline: true}
	scenario.AddExampleRow([]string{"a", "b"})
	scenario.AddExampleRow([]string{"1", "2"})
	scenario.AddExampleRow([]string{"3", "4"})

	c.Assert(scenario.Examples["a"], check.DeepEquals, []string{"1", "3"})
	c.Assert(scenario.Examples["b"], check.DeepEquals, []string{"2", "4"})
	c.Assert(scenario.ExampleCount(), check.Equals, 2)
}
