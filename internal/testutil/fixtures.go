package testutil

import (
	"testing"

	"github.com/npratt/pathviz/internal/curriculum"
)

// Sample curriculum files

// SmallCurriculumYAML is a four topic curriculum with one topic per status
// plus an extra in-progress topic.
var SmallCurriculumYAML = `
topics:
  - {id: basics, title: Math Basics, status: completed, score: 95}
  - {id: algebra, title: Algebra Fundamentals, status: completed, score: 88}
  - {id: geometry, title: Geometry, status: in_progress, score: 45}
  - {id: calculus, title: Calculus, status: not_started, score: 0}
edges:
  - {source: basics, target: algebra}
  - {source: algebra, target: geometry}
  - {source: geometry, target: calculus}
`

// CyclicCurriculumYAML has an edge loop and a dangling reference.
var CyclicCurriculumYAML = `
topics:
  - {id: a, title: A, status: completed, score: 10}
  - {id: b, title: B, status: in_progress, score: 20}
edges:
  - {source: a, target: b}
  - {source: b, target: a}
  - {source: b, target: ghost}
`

// Sample tier tables

// CenteredTiersYAML places a single topic "a" at the center of every tier.
var CenteredTiersYAML = `
breakpoints: {medium: 600, large: 900}
tiers:
  small: {radius: 10, padding: {x: 0.1, y: 0.1}, positions: {a: [0.5, 0.5]}}
  medium: {radius: 12, padding: {x: 0.1, y: 0.1}, positions: {a: [0.5, 0.5]}}
  large: {radius: 14, padding: {x: 0.1, y: 0.1}, positions: {a: [0.5, 0.5]}}
`

// SmallCurriculum decodes SmallCurriculumYAML, failing the test on error.
func SmallCurriculum(t *testing.T) *curriculum.Curriculum {
	t.Helper()
	c, err := curriculum.Decode([]byte(SmallCurriculumYAML))
	if err != nil {
		t.Fatalf("decode small curriculum: %v", err)
	}
	return c
}

// FixedMeasure reports every character as pxPerChar wide regardless of
// font size, for tests that need predictable wrapping.
func FixedMeasure(pxPerChar float64) func(text string, fontSize float64) float64 {
	return func(text string, _ float64) float64 {
		return float64(len([]rune(text))) * pxPerChar
	}
}
