package interact

import (
	"github.com/npratt/pathviz/internal/curriculum"
	"github.com/npratt/pathviz/internal/encode"
	"github.com/npratt/pathviz/internal/layout"
)

// Filter restricts the drawn nodes to one status. The zero value shows all.
type Filter struct {
	status curriculum.Status
	active bool
}

// NoFilter shows every node.
var NoFilter = Filter{}

// Only returns a filter matching a single status.
func Only(s curriculum.Status) Filter {
	return Filter{status: encode.Normalize(s), active: true}
}

// Active reports whether the filter restricts anything.
func (f Filter) Active() bool { return f.active }

// Status returns the filtered status; ok is false for NoFilter.
func (f Filter) Status() (s curriculum.Status, ok bool) {
	return f.status, f.active
}

// Matches reports whether a node with status s is visible under f.
func (f Filter) Matches(s curriculum.Status) bool {
	return !f.active || encode.Normalize(s) == f.status
}

func (f Filter) String() string {
	if !f.active {
		return "all"
	}
	return f.status.String()
}

// Visible returns the nodes matching f and the edges whose endpoints are
// both visible. Edges naming an unknown or unpositioned topic are dropped.
func Visible(c *curriculum.Curriculum, nodes []layout.Node, f Filter) ([]layout.Node, []curriculum.Edge) {
	shown := make(map[string]bool, len(nodes))
	visible := make([]layout.Node, 0, len(nodes))
	for _, n := range nodes {
		if !f.Matches(n.Status) {
			continue
		}
		shown[n.ID] = true
		visible = append(visible, n)
	}

	edges := make([]curriculum.Edge, 0, len(c.Edges))
	for _, e := range c.Edges {
		if shown[e.Source] && shown[e.Target] {
			edges = append(edges, e)
		}
	}
	return visible, edges
}
