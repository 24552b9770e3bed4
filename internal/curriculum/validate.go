package curriculum

import (
	"fmt"
	"strings"
)

// ProblemKind classifies a validation finding.
type ProblemKind int

const (
	// ProblemDuplicateID means two topics share an id.
	ProblemDuplicateID ProblemKind = iota
	// ProblemDanglingEdge means an edge names a topic that does not exist.
	ProblemDanglingEdge
	// ProblemCycle means the prerequisite edges do not form a DAG.
	ProblemCycle
	// ProblemScoreRange means a score lies outside 0-100.
	ProblemScoreRange
	// ProblemUnknownStatus means a status value was not recognized.
	ProblemUnknownStatus
)

// String returns a short name for the kind.
func (k ProblemKind) String() string {
	switch k {
	case ProblemDuplicateID:
		return "duplicate-id"
	case ProblemDanglingEdge:
		return "dangling-edge"
	case ProblemCycle:
		return "cycle"
	case ProblemScoreRange:
		return "score-range"
	case ProblemUnknownStatus:
		return "unknown-status"
	default:
		return "unknown"
	}
}

// Problem is a single authoring error found by Validate.
type Problem struct {
	Kind    ProblemKind
	Message string
}

func (p Problem) String() string {
	return p.Kind.String() + ": " + p.Message
}

// Validate checks the authoring contract of the curriculum: unique ids,
// edges that reference existing topics, and acyclic prerequisites.
// None of these stop rendering; callers report them.
func (c *Curriculum) Validate() []Problem {
	var problems []Problem

	seen := make(map[string]bool, len(c.Topics))
	for _, t := range c.Topics {
		if seen[t.ID] {
			problems = append(problems, Problem{
				Kind:    ProblemDuplicateID,
				Message: fmt.Sprintf("topic id %q appears more than once", t.ID),
			})
		}
		seen[t.ID] = true

		if t.Score < 0 || t.Score > 100 {
			problems = append(problems, Problem{
				Kind:    ProblemScoreRange,
				Message: fmt.Sprintf("topic %q has score %d", t.ID, t.Score),
			})
		}
		if t.Status == StatusUnknown {
			problems = append(problems, Problem{
				Kind:    ProblemUnknownStatus,
				Message: fmt.Sprintf("topic %q has an unrecognized status", t.ID),
			})
		}
	}

	for _, e := range c.Edges {
		for _, end := range []string{e.Source, e.Target} {
			if !seen[end] {
				problems = append(problems, Problem{
					Kind:    ProblemDanglingEdge,
					Message: fmt.Sprintf("edge %s -> %s references unknown topic %q", e.Source, e.Target, end),
				})
			}
		}
	}

	if cycle := c.findCycle(seen); cycle != nil {
		problems = append(problems, Problem{
			Kind:    ProblemCycle,
			Message: "prerequisite cycle " + strings.Join(cycle, " -> "),
		})
	}

	return problems
}

// findCycle returns the first cycle found by depth-first search, as a path
// that starts and ends on the same id, or nil when the edges form a DAG.
// Edges to unknown topics are ignored.
func (c *Curriculum) findCycle(known map[string]bool) []string {
	adj := make(map[string][]string)
	for _, e := range c.Edges {
		if known[e.Source] && known[e.Target] {
			adj[e.Source] = append(adj[e.Source], e.Target)
		}
	}

	const (
		white = iota
		grey
		black
	)
	color := make(map[string]int, len(known))
	var stack []string
	var cycle []string

	var visit func(id string) bool
	visit = func(id string) bool {
		color[id] = grey
		stack = append(stack, id)
		for _, next := range adj[id] {
			switch color[next] {
			case grey:
				for i, s := range stack {
					if s == next {
						cycle = append(append([]string{}, stack[i:]...), next)
						break
					}
				}
				return true
			case white:
				if visit(next) {
					return true
				}
			}
		}
		stack = stack[:len(stack)-1]
		color[id] = black
		return false
	}

	for _, t := range c.Topics {
		if color[t.ID] == white && visit(t.ID) {
			return cycle
		}
	}
	return nil
}
