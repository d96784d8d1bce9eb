package vmath

// Source is a xorshift64 generator usable as a math/rand Source64
// Not safe for concurrent use
type Source struct {
	state uint64
}

// NewSource seeds a generator; a zero seed is replaced since xorshift never leaves zero
func NewSource(seed int64) *Source {
	s := &Source{}
	s.Seed(seed)
	return s
}

func (s *Source) Seed(seed int64) {
	s.state = uint64(seed)
	if s.state == 0 {
		s.state = 1
	}
}

func (s *Source) Uint64() uint64 {
	x := s.state
	x ^= x << 13
	x ^= x >> 7
	x ^= x << 17
	s.state = x
	return x
}

func (s *Source) Int63() int64 {
	return int64(s.Uint64() >> 1)
}

// Split derives an independent generator, leaving s advanced by one step
func (s *Source) Split() *Source {
	return &Source{state: s.Uint64()*0x9E3779B97F4A7C15 | 1}
}
