package event

import "sync"

// BatchPayload carries every item one segment placement produced
type BatchPayload[T any] struct {
	Entries []T
}

// BatchPool reuses batch payloads between frames so a busy track does not allocate per segment
type BatchPool[T any] struct {
	pool sync.Pool
}

func NewBatchPool[T any](entriesPerSegment int) *BatchPool[T] {
	p := &BatchPool[T]{}
	p.pool.New = func() any {
		return &BatchPayload[T]{Entries: make([]T, 0, entriesPerSegment)}
	}
	return p
}

// Acquire hands out an emptied payload, its backing array retained from earlier use
func (p *BatchPool[T]) Acquire() *BatchPayload[T] {
	bp := p.pool.Get().(*BatchPayload[T])
	bp.Entries = bp.Entries[:0]
	return bp
}

// Release takes a payload back once its consumer has read it
func (p *BatchPool[T]) Release(bp *BatchPayload[T]) {
	if bp != nil {
		bp.Entries = bp.Entries[:0]
		p.pool.Put(bp)
	}
}

// EmitBatch pushes a copy of entries as one event; a segment that spawned nothing emits nothing
func EmitBatch[T any](q *Queue, pool *BatchPool[T], t EventType, entries []T, tick int64) {
	if q == nil || len(entries) == 0 {
		return
	}
	bp := pool.Acquire()
	bp.Entries = append(bp.Entries, entries...)
	q.Push(Event{Type: t, Payload: bp, Tick: tick})
}

// SpawnBatchPool holds the obstacle, collectible and powerup lists of EventItemsSpawned
var SpawnBatchPool = NewBatchPool[SpawnEntry](8)

// ReleasePayload hands a consumed event's pooled payload back; other payloads are left alone
func ReleasePayload(ev Event) {
	if bp, ok := ev.Payload.(*BatchPayload[SpawnEntry]); ok {
		SpawnBatchPool.Release(bp)
	}
}
