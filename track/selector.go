package track

import (
	"math/rand"

	"github.com/lixenwraith/lane-runner/config"
)

const defaultType = config.TypeStraight

// Selection is the outcome of one type choice
type Selection struct {
	Type     string
	Cost     float64
	Forced   bool // warm-up straight
	Fallback bool // nothing affordable, straight substituted
}

// Selector picks the next segment type from the allowed successors of the previous one
// Stateless apart from the injected random source
type Selector struct {
	segments config.SegmentsConfig
	rng      *rand.Rand
}

func NewSelector(segments config.SegmentsConfig, rng *rand.Rand) *Selector {
	return &Selector{segments: segments, rng: rng}
}

// Select chooses the type following prev given spawned segments so far and the current budget
// The first InitialStraightCount segments are forced straight; costs above budget are excluded;
// when nothing remains, straight is returned at no cost
func (s *Selector) Select(prev string, spawned int, budget float64) Selection {
	if spawned < s.segments.InitialStraightCount {
		return Selection{Type: defaultType, Forced: true}
	}

	prevType, _ := s.segments.Type(prev)

	var (
		candidates [16]string
		weights    [16]float64
	)
	names, ws := candidates[:0], weights[:0]
	total := 0.0
	for _, name := range prevType.AllowedNext {
		st, ok := s.segments.Type(name)
		if !ok || st.Difficulty > budget {
			continue
		}
		w := st.Weight
		if name == prev && st.SelfWeight > 0 {
			w = st.SelfWeight
		}
		if w <= 0 {
			continue
		}
		names = append(names, name)
		ws = append(ws, w)
		total += w
	}

	if len(names) == 0 {
		return Selection{Type: defaultType, Fallback: true}
	}

	pick := names[len(names)-1] // rounding leftover lands on the last candidate
	r := s.rng.Float64() * total
	for i, w := range ws {
		r -= w
		if r < 0 {
			pick = names[i]
			break
		}
	}

	st, _ := s.segments.Type(pick)
	return Selection{Type: pick, Cost: st.Difficulty}
}
