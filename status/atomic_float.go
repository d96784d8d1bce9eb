package status

import (
	"math"
	"sync/atomic"
)

// AtomicFloat holds a run gauge such as speed, distance, score or meter level
// The session writes it every frame while the view and trackgen read it from other goroutines
type AtomicFloat struct {
	bits atomic.Uint64
}

// Set publishes the latest gauge reading
func (f *AtomicFloat) Set(v float64) { f.bits.Store(math.Float64bits(v)) }

func (f *AtomicFloat) Get() float64 { return math.Float64frombits(f.bits.Load()) }

// Add accumulates into the gauge, retrying until no concurrent writer intervened
func (f *AtomicFloat) Add(delta float64) float64 {
	for {
		cur := f.bits.Load()
		sum := math.Float64frombits(cur) + delta
		if f.bits.CompareAndSwap(cur, math.Float64bits(sum)) {
			return sum
		}
	}
}
