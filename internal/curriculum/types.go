// Package curriculum defines the static topic graph rendered by pathviz.
package curriculum

import "strings"

// Status is a topic's completion state.
type Status int

const (
	// StatusUnknown is never authored directly; it is what ParseStatus
	// returns for values it does not recognize.
	StatusUnknown Status = iota
	// StatusCompleted marks a finished topic.
	StatusCompleted
	// StatusInProgress marks a started topic.
	StatusInProgress
	// StatusNotStarted marks a topic with no progress.
	StatusNotStarted
)

// Statuses lists the authored statuses in legend order.
var Statuses = []Status{StatusCompleted, StatusInProgress, StatusNotStarted}

// String returns the display label for the status.
func (s Status) String() string {
	switch s {
	case StatusCompleted:
		return "Completed"
	case StatusInProgress:
		return "In Progress"
	case StatusNotStarted:
		return "Not Started"
	default:
		return "Unknown"
	}
}

// Key returns the snake_case form used in config files and flags.
func (s Status) Key() string {
	switch s {
	case StatusCompleted:
		return "completed"
	case StatusInProgress:
		return "in_progress"
	case StatusNotStarted:
		return "not_started"
	default:
		return "unknown"
	}
}

// ParseStatus converts a display label or snake_case key to a Status.
// Matching ignores case, spaces, dashes and underscores.
func ParseStatus(s string) Status {
	norm := strings.NewReplacer(" ", "", "_", "", "-", "").Replace(strings.ToLower(strings.TrimSpace(s)))
	switch norm {
	case "completed":
		return StatusCompleted
	case "inprogress":
		return StatusInProgress
	case "notstarted":
		return StatusNotStarted
	default:
		return StatusUnknown
	}
}

// UnmarshalText implements encoding.TextUnmarshaler.
// Unrecognized values decode to StatusUnknown rather than failing.
func (s *Status) UnmarshalText(text []byte) error {
	*s = ParseStatus(string(text))
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.Key()), nil
}

// Topic is a node in the curriculum graph.
type Topic struct {
	ID     string `yaml:"id" json:"id"`
	Title  string `yaml:"title" json:"title"`
	Status Status `yaml:"status" json:"status"`
	Score  int    `yaml:"score" json:"score"` // 0-100, not displayed for NotStarted
}

// Edge is a prerequisite relation: Source must precede Target.
type Edge struct {
	Source string `yaml:"source" json:"source"`
	Target string `yaml:"target" json:"target"`
}

// Curriculum is the full topic graph.
type Curriculum struct {
	Topics []Topic `yaml:"topics" json:"topics"`
	Edges  []Edge  `yaml:"edges" json:"edges"`
}

// Len returns the number of topics.
func (c *Curriculum) Len() int {
	return len(c.Topics)
}

// Lookup returns the topic with the given id.
func (c *Curriculum) Lookup(id string) (Topic, bool) {
	for _, t := range c.Topics {
		if t.ID == id {
			return t, true
		}
	}
	return Topic{}, false
}

// IDs returns topic ids in authored order.
func (c *Curriculum) IDs() []string {
	ids := make([]string, len(c.Topics))
	for i, t := range c.Topics {
		ids[i] = t.ID
	}
	return ids
}
