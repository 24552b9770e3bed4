package layout

import (
	"github.com/npratt/pathviz/internal/curriculum"
)

// TitleGap is the distance between a node's edge and the first title baseline.
const TitleGap = 15

// Node is a topic positioned for the current tier.
type Node struct {
	curriculum.Topic
	X float64
	Y float64
}

// Result is the output of one layout pass.
type Result struct {
	Tier       Tier
	Width      float64
	Height     float64
	Nodes      []Node
	NodeRadius float64
	Style      Style
	Missing    []string // topic ids the tier table has no position for
}

// TitleOffset returns the vertical offset of a node's title from its center.
func (r Result) TitleOffset() float64 {
	return r.NodeRadius + TitleGap
}

// Node returns the positioned node with the given id.
func (r Result) Node(id string) (Node, bool) {
	for _, n := range r.Nodes {
		if n.ID == id {
			return n, true
		}
	}
	return Node{}, false
}

// Compute positions every topic of c for a width x height viewport.
// Both dimensions must be positive; callers gate on initialization.
func Compute(t *Table, c *curriculum.Curriculum, width, height float64) Result {
	tier := t.Classify(width)
	tt := t.Tier(tier)

	padX := width * tt.Padding.X
	padY := height * tt.Padding.Y
	usableW := width - 2*padX
	usableH := height - 2*padY

	res := Result{
		Tier:       tier,
		Width:      width,
		Height:     height,
		Nodes:      make([]Node, 0, c.Len()),
		NodeRadius: tt.Radius,
		Style:      tt.Style,
	}

	for _, topic := range c.Topics {
		frac, ok := tt.Positions[topic.ID]
		if !ok {
			res.Missing = append(res.Missing, topic.ID)
			continue
		}
		res.Nodes = append(res.Nodes, Node{
			Topic: topic,
			X:     padX + usableW*frac[0],
			Y:     padY + usableH*frac[1],
		})
	}

	return res
}
