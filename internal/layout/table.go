package layout

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/npratt/pathviz/internal/curriculum"
)

//go:embed tiers.yaml
var defaultTableYAML []byte

// Breakpoints are the minimum widths, in pixels, of the Medium and Large tiers.
type Breakpoints struct {
	Medium float64 `yaml:"medium"`
	Large  float64 `yaml:"large"`
}

// Padding is the fraction of each dimension reserved on each side.
type Padding struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// Style holds the size encodings that vary by tier.
type Style struct {
	TitleFont          float64 `yaml:"title_font"`
	ScoreFont          float64 `yaml:"score_font"`
	NodeStroke         float64 `yaml:"node_stroke"`
	EdgeWidth          float64 `yaml:"edge_width"`
	EdgeHighlightWidth float64 `yaml:"edge_highlight_width"`
	WrapWidth          float64 `yaml:"wrap_width"`
	ArrowSize          float64 `yaml:"arrow_size"`
}

// TierTable is the complete layout for one tier.
type TierTable struct {
	Radius    float64               `yaml:"radius"`
	Padding   Padding               `yaml:"padding"`
	Style     Style                 `yaml:"style"`
	Positions map[string][2]float64 `yaml:"positions"`
}

// Table is the immutable per-tier layout configuration.
type Table struct {
	Breakpoints Breakpoints `yaml:"breakpoints"`
	Small       TierTable   `yaml:"-"`
	Medium      TierTable   `yaml:"-"`
	Large       TierTable   `yaml:"-"`
}

type tableFile struct {
	Breakpoints Breakpoints          `yaml:"breakpoints"`
	Tiers       map[string]TierTable `yaml:"tiers"`
}

// DefaultTable returns the compiled-in layout table.
func DefaultTable() *Table {
	t, err := DecodeTable(defaultTableYAML)
	if err != nil {
		panic(fmt.Sprintf("decode embedded layout table: %v", err))
	}
	return t
}

// LoadTable reads a layout table file. An empty path returns DefaultTable().
func LoadTable(path string) (*Table, error) {
	if path == "" {
		return DefaultTable(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read layout table: %w", err)
	}
	t, err := DecodeTable(data)
	if err != nil {
		return nil, fmt.Errorf("decode layout table %s: %w", path, err)
	}
	return t, nil
}

// DecodeTable parses layout table YAML. All three tiers are required.
func DecodeTable(data []byte) (*Table, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var f tableFile
	if err := dec.Decode(&f); err != nil {
		return nil, err
	}

	t := &Table{Breakpoints: f.Breakpoints}
	for _, tier := range Tiers {
		tt, ok := f.Tiers[tier.String()]
		if !ok {
			return nil, fmt.Errorf("missing tier %q", tier)
		}
		*t.tierPtr(tier) = tt
	}
	for name := range f.Tiers {
		if ParseTier(name) == TierUnknown {
			return nil, fmt.Errorf("unknown tier %q", name)
		}
	}
	if t.Breakpoints.Medium <= 0 || t.Breakpoints.Large <= t.Breakpoints.Medium {
		return nil, fmt.Errorf("breakpoints must satisfy 0 < medium < large, got %v < %v",
			t.Breakpoints.Medium, t.Breakpoints.Large)
	}
	return t, nil
}

// Tier returns the table for the given tier. Unknown tiers get the Large table.
func (t *Table) Tier(tier Tier) TierTable {
	return *t.tierPtr(tier)
}

func (t *Table) tierPtr(tier Tier) *TierTable {
	switch tier {
	case TierSmall:
		return &t.Small
	case TierMedium:
		return &t.Medium
	default:
		return &t.Large
	}
}

// Classify maps a viewport width to a tier.
func (t *Table) Classify(width float64) Tier {
	switch {
	case width < t.Breakpoints.Medium:
		return TierSmall
	case width < t.Breakpoints.Large:
		return TierMedium
	default:
		return TierLarge
	}
}

// Validate reports topics missing from any tier, positions for unknown
// topics, and fractions outside [0, 1].
func (t *Table) Validate(c *curriculum.Curriculum) []string {
	var problems []string
	for _, tier := range Tiers {
		tt := t.Tier(tier)
		for _, id := range c.IDs() {
			if _, ok := tt.Positions[id]; !ok {
				problems = append(problems, fmt.Sprintf("%s: no position for topic %q", tier, id))
			}
		}
		for _, id := range sortedKeys(tt.Positions) {
			if _, ok := c.Lookup(id); !ok {
				problems = append(problems, fmt.Sprintf("%s: position for unknown topic %q", tier, id))
			}
			p := tt.Positions[id]
			if p[0] < 0 || p[0] > 1 || p[1] < 0 || p[1] > 1 {
				problems = append(problems, fmt.Sprintf("%s: position for %q out of range: %v", tier, id, p))
			}
		}
		if tt.Radius <= 0 {
			problems = append(problems, fmt.Sprintf("%s: radius must be positive", tier))
		}
	}
	return problems
}
