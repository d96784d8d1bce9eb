package event

import (
	"sync/atomic"

	"github.com/lixenwraith/lane-runner/parameter"
)

// Queue is a fixed-size MPSC ring of simulation events
// Push is lock-free and safe from any goroutine; Consume has a single caller
// When full the oldest unread events are overwritten
type Queue struct {
	events    [parameter.EventQueueSize]Event
	published [parameter.EventQueueSize]atomic.Bool // slot fully written
	head      atomic.Uint64                         // next read
	tail      atomic.Uint64                         // next write
	dropped   atomic.Uint64
}

func NewQueue() *Queue {
	return &Queue{}
}

// Push claims a slot by CAS on tail, writes, then publishes
func (q *Queue) Push(ev Event) {
	for {
		tail := q.tail.Load()
		next := tail + 1
		if !q.tail.CompareAndSwap(tail, next) {
			continue
		}

		idx := tail & parameter.EventBufferMask
		q.events[idx] = ev
		q.published[idx].Store(true) // after write

		head := q.head.Load()
		if next-head > parameter.EventQueueSize {
			if q.head.CompareAndSwap(head, next-parameter.EventQueueSize) {
				q.dropped.Add(next - parameter.EventQueueSize - head)
			}
		}
		return
	}
}

// Consume returns pending events in FIFO order, stopping at the first unpublished slot
func (q *Queue) Consume() []Event {
	for {
		head := q.head.Load()
		tail := q.tail.Load()
		if tail == head {
			return nil
		}

		avail := tail - head
		if avail > parameter.EventQueueSize {
			avail = parameter.EventQueueSize
			head = tail - parameter.EventQueueSize
		}

		out := make([]Event, 0, avail)
		for i := uint64(0); i < avail; i++ {
			idx := (head + i) & parameter.EventBufferMask
			if !q.published[idx].Load() {
				break
			}
			out = append(out, q.events[idx])
			q.published[idx].Store(false)
		}

		if q.head.CompareAndSwap(head, head+uint64(len(out))) {
			if len(out) == 0 {
				return nil
			}
			return out
		}
	}
}

// Len is the approximate number of unread events
func (q *Queue) Len() int {
	head, tail := q.head.Load(), q.tail.Load()
	if tail <= head {
		return 0
	}
	return int(min(tail-head, parameter.EventQueueSize))
}

// Dropped counts events overwritten before they were consumed
func (q *Queue) Dropped() uint64 { return q.dropped.Load() }
