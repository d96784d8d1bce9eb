// Package pool provides a fixed-capacity arena with an explicit free-list
package pool

// Arena owns capacity values of T addressed by slot index
// Slots are handed out LIFO from the free-list; nothing is allocated after New
type Arena[T any] struct {
	slots []T
	live  []bool
	free  []int // stack of free slot indices, top at the end
}

// New creates an arena of capacity slots; init, if non-nil, prepares each slot once
func New[T any](capacity int, init func(i int, v *T)) *Arena[T] {
	a := &Arena[T]{
		slots: make([]T, capacity),
		live:  make([]bool, capacity),
		free:  make([]int, 0, capacity),
	}
	if init != nil {
		for i := range a.slots {
			init(i, &a.slots[i])
		}
	}
	a.resetFree()
	return a
}

// resetFree stacks all slots so the lowest index is acquired first
func (a *Arena[T]) resetFree() {
	a.free = a.free[:0]
	for i := len(a.slots) - 1; i >= 0; i-- {
		a.free = append(a.free, i)
	}
}

// Acquire takes the most recently released slot; ok is false when exhausted
func (a *Arena[T]) Acquire() (int, *T, bool) {
	n := len(a.free)
	if n == 0 {
		return -1, nil, false
	}
	i := a.free[n-1]
	a.free = a.free[:n-1]
	a.live[i] = true
	return i, &a.slots[i], true
}

// AcquireFunc takes the first free slot, in acquisition order, that satisfies pred
func (a *Arena[T]) AcquireFunc(pred func(i int, v *T) bool) (int, *T, bool) {
	for k := len(a.free) - 1; k >= 0; k-- {
		i := a.free[k]
		if !pred(i, &a.slots[i]) {
			continue
		}
		a.free = append(a.free[:k], a.free[k+1:]...)
		a.live[i] = true
		return i, &a.slots[i], true
	}
	return -1, nil, false
}

// Release returns slot i to the free-list
// Releasing a free or out-of-range slot is a no-op and returns false
func (a *Arena[T]) Release(i int) bool {
	if i < 0 || i >= len(a.slots) || !a.live[i] {
		return false
	}
	a.live[i] = false
	a.free = append(a.free, i)
	return true
}

// ReleaseAll frees every slot and restores the initial acquisition order
func (a *Arena[T]) ReleaseAll() {
	for i := range a.live {
		a.live[i] = false
	}
	a.resetFree()
}

// Get returns slot i regardless of state
func (a *Arena[T]) Get(i int) *T { return &a.slots[i] }

// Live reports whether slot i is acquired
func (a *Arena[T]) Live(i int) bool { return i >= 0 && i < len(a.live) && a.live[i] }

func (a *Arena[T]) InUse() int { return len(a.slots) - len(a.free) }

func (a *Arena[T]) Free() int { return len(a.free) }

func (a *Arena[T]) Cap() int { return len(a.slots) }

// Each calls fn for every acquired slot in index order
// fn may release the slot it is given
func (a *Arena[T]) Each(fn func(i int, v *T)) {
	for i := range a.slots {
		if a.live[i] {
			fn(i, &a.slots[i])
		}
	}
}
