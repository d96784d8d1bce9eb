package status

import "sync/atomic"

// MaxStringLen bounds stored strings; run ids and segment type names fit
const MaxStringLen = 36

// AtomicString holds a short string label; the zero value reads ""
type AtomicString struct {
	ptr atomic.Pointer[string]
}

// Store truncates to MaxStringLen
func (s *AtomicString) Store(v string) {
	if len(v) > MaxStringLen {
		v = v[:MaxStringLen]
	}
	s.ptr.Store(&v)
}

func (s *AtomicString) Load() string {
	if p := s.ptr.Load(); p != nil {
		return *p
	}
	return ""
}
