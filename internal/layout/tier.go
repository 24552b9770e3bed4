// Package layout computes responsive node positions for the curriculum graph.
package layout

import "sort"

// Tier is a viewport width classification.
type Tier int

const (
	// TierUnknown is the zero value; Classify never returns it.
	TierUnknown Tier = iota
	// TierSmall is the phone layout.
	TierSmall
	// TierMedium is the tablet layout.
	TierMedium
	// TierLarge is the desktop layout.
	TierLarge
)

// Tiers lists every tier from smallest to largest.
var Tiers = []Tier{TierSmall, TierMedium, TierLarge}

// String returns a string representation of the Tier.
func (t Tier) String() string {
	switch t {
	case TierSmall:
		return "small"
	case TierMedium:
		return "medium"
	case TierLarge:
		return "large"
	default:
		return "unknown"
	}
}

// ParseTier converts a string to a Tier.
func ParseTier(s string) Tier {
	switch s {
	case "small":
		return TierSmall
	case "medium":
		return TierMedium
	case "large":
		return TierLarge
	default:
		return TierUnknown
	}
}

func sortedKeys(m map[string][2]float64) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
