package interact

import (
	"reflect"
	"testing"

	"github.com/npratt/pathviz/internal/curriculum"
	"github.com/npratt/pathviz/internal/layout"
)

func topics(statuses ...curriculum.Status) []curriculum.Topic {
	out := make([]curriculum.Topic, len(statuses))
	for i, s := range statuses {
		out[i] = curriculum.Topic{ID: string(rune('a' + i)), Status: s}
	}
	return out
}

func TestProgress(t *testing.T) {
	const (
		c = curriculum.StatusCompleted
		i = curriculum.StatusInProgress
		n = curriculum.StatusNotStarted
	)

	tests := []struct {
		name string
		in   []curriculum.Topic
		want Summary
	}{
		{"two one one", topics(c, c, i, n), Summary{Completed: 2, InProgress: 1, NotStarted: 1, Total: 4, Percentage: 63}},
		{"all done", topics(c, c, c), Summary{Completed: 3, Total: 3, Percentage: 100}},
		{"nothing started", topics(n, n), Summary{NotStarted: 2, Total: 2}},
		{"unknown counts as not started", topics(c, curriculum.StatusUnknown), Summary{Completed: 1, NotStarted: 1, Total: 2, Percentage: 50}},
		{"empty", nil, Summary{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Progress(tt.in); got != tt.want {
				t.Errorf("Progress = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestProgress_DefaultCurriculum(t *testing.T) {
	s := Progress(curriculum.Default().Topics)
	// 4 completed, 3 in progress, 5 not started: (4 + 1.5) / 12 = 45.8%
	if s.Percentage != 46 || s.Completed != 4 || s.InProgress != 3 || s.NotStarted != 5 {
		t.Errorf("Progress = %+v", s)
	}
	if s.Fraction() != 0.46 {
		t.Errorf("Fraction = %v, want 0.46", s.Fraction())
	}
}

func TestVisible_FilterRoundTrip(t *testing.T) {
	c := curriculum.Default()
	res := layout.Compute(layout.DefaultTable(), c, 1280, 512)

	allNodes, allEdges := Visible(c, res.Nodes, NoFilter)
	if len(allNodes) != 12 || len(allEdges) != 14 {
		t.Fatalf("unfiltered = %d nodes %d edges, want 12 and 14", len(allNodes), len(allEdges))
	}

	m, _ := newTestMachine(t)
	m.Mount(1300)

	s := m.ToggleFilter(curriculum.StatusCompleted)
	nodes, edges := Visible(c, res.Nodes, s.Filter)
	if len(nodes) != 4 {
		t.Errorf("completed filter shows %d nodes, want 4", len(nodes))
	}
	for _, n := range nodes {
		if n.Status != curriculum.StatusCompleted {
			t.Errorf("node %s has status %v under Completed filter", n.ID, n.Status)
		}
	}
	// basics->arithmetic, basics->fractions, arithmetic->algebra, fractions->algebra
	if len(edges) != 4 {
		t.Errorf("completed filter shows %d edges, want 4", len(edges))
	}

	s = m.ToggleFilter(curriculum.StatusCompleted)
	nodes, edges = Visible(c, res.Nodes, s.Filter)
	if !reflect.DeepEqual(nodes, allNodes) || !reflect.DeepEqual(edges, allEdges) {
		t.Error("clearing the filter did not restore the full node and edge sets")
	}
}

func TestVisible_SkipsMalformedEdges(t *testing.T) {
	c := &curriculum.Curriculum{
		Topics: []curriculum.Topic{{ID: "a"}, {ID: "b"}},
		Edges:  []curriculum.Edge{{Source: "a", Target: "b"}, {Source: "a", Target: "ghost"}},
	}
	nodes := []layout.Node{{Topic: c.Topics[0]}, {Topic: c.Topics[1]}}

	_, edges := Visible(c, nodes, NoFilter)
	if len(edges) != 1 || edges[0].Target != "b" {
		t.Errorf("edges = %v, want only a->b", edges)
	}
}

func TestFilter(t *testing.T) {
	if NoFilter.Active() || !NoFilter.Matches(curriculum.StatusInProgress) {
		t.Error("NoFilter should match everything")
	}
	f := Only(curriculum.StatusNotStarted)
	if !f.Matches(curriculum.StatusUnknown) {
		t.Error("unknown statuses should match the Not Started filter")
	}
	if f.Matches(curriculum.StatusCompleted) {
		t.Error("Not Started filter matched a completed topic")
	}
	if NoFilter.String() != "all" || f.String() != "Not Started" {
		t.Errorf("String() = %q, %q", NoFilter.String(), f.String())
	}
}
