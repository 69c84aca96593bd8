/*----------------------------------------------------------------
 *  Copyright (c) Fable Contributors
 *  Licensed under the Apache License, Version 2.0
 *  See LICENSE in the project root for license information.
 *----------------------------------------------------------------*/

package fable

import "strconv"

// Suite is the root of a parsed specification tree. Features are keyed by
// their discovery-order identifier ("1", "2", ...); identifiers are never
// reused or reordered, and entries are append only.
type Suite struct {
	features map[string]*Feature
	ids      []string
}

func NewSuite() *Suite {
	return &Suite{features: make(map[string]*Feature)}
}

// AddFeature appends a feature and returns the identifier assigned to it.
func (s *Suite) AddFeature(feature *Feature) string {
	id := strconv.Itoa(len(s.ids) + 1)
	s.features[id] = feature
	s.ids = append(s.ids, id)
	return id
}

func (s *Suite) Feature(id string) *Feature {
	return s.features[id]
}

func (s *Suite) LatestFeature() *Feature {
	if len(s.ids) == 0 {
		return nil
	}
	return s.features[s.ids[len(s.ids)-1]]
}

func (s *Suite) FeatureCount() int {
	return len(s.ids)
}

// FeatureIDs returns identifiers in discovery order.
func (s *Suite) FeatureIDs() []string {
	ids := make([]string, len(s.ids))
	copy(ids, s.ids)
	return ids
}

// Features returns the feature nodes in discovery order.
func (s *Suite) Features() []*Feature {
	features := make([]*Feature, 0, len(s.ids))
	for _, id := range s.ids {
		features = append(features, s.features[id])
	}
	return features
}

func (s *Suite) ScenarioCount() int {
	count := 0
	for _, feature := range s.features {
		count += len(feature.Scenarios)
	}
	return count
}
