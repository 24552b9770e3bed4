package interact

import (
	"math"

	"github.com/npratt/pathviz/internal/curriculum"
	"github.com/npratt/pathviz/internal/encode"
)

// Summary is the aggregate progress over a set of topics.
type Summary struct {
	Completed  int `json:"completed"`
	InProgress int `json:"in_progress"`
	NotStarted int `json:"not_started"`
	Total      int `json:"total"`
	Percentage int `json:"percentage"`
}

// Progress weighs completed topics fully and in-progress topics by half.
// Callers pass the unfiltered topic set; the active filter never changes it.
func Progress(topics []curriculum.Topic) Summary {
	var s Summary
	for _, t := range topics {
		switch encode.Normalize(t.Status) {
		case curriculum.StatusCompleted:
			s.Completed++
		case curriculum.StatusInProgress:
			s.InProgress++
		default:
			s.NotStarted++
		}
	}
	s.Total = len(topics)
	if s.Total == 0 {
		return s
	}
	weighted := (float64(s.Completed) + 0.5*float64(s.InProgress)) / float64(s.Total) * 100
	s.Percentage = int(math.Round(weighted))
	return s
}

// Fraction returns the percentage as a value in [0, 1].
func (s Summary) Fraction() float64 {
	return float64(s.Percentage) / 100
}
