package event

import (
	"sync"
	"testing"

	"github.com/lixenwraith/lane-runner/parameter"
)

func TestQueue_FIFO(t *testing.T) {
	q := NewQueue()
	if q.Consume() != nil {
		t.Fatal("empty queue returned events")
	}
	for i := 0; i < 5; i++ {
		q.Push(Event{Type: EventSegmentPlaced, Tick: int64(i)})
	}
	if q.Len() != 5 {
		t.Errorf("Len = %d, want 5", q.Len())
	}
	got := q.Consume()
	if len(got) != 5 {
		t.Fatalf("consumed %d, want 5", len(got))
	}
	for i, ev := range got {
		if ev.Tick != int64(i) {
			t.Errorf("event %d has tick %d", i, ev.Tick)
		}
	}
	if q.Len() != 0 || q.Consume() != nil {
		t.Error("queue not drained")
	}
}

func TestQueue_OverflowKeepsNewest(t *testing.T) {
	q := NewQueue()
	total := parameter.EventQueueSize + 10
	for i := 0; i < total; i++ {
		q.Push(Event{Type: EventSegmentRecycled, Tick: int64(i)})
	}
	got := q.Consume()
	if len(got) != parameter.EventQueueSize {
		t.Fatalf("consumed %d, want %d", len(got), parameter.EventQueueSize)
	}
	if got[0].Tick != 10 || got[len(got)-1].Tick != int64(total-1) {
		t.Errorf("window = [%d..%d], want [10..%d]", got[0].Tick, got[len(got)-1].Tick, total-1)
	}
	if q.Dropped() != 10 {
		t.Errorf("Dropped = %d, want 10", q.Dropped())
	}
}

func TestQueue_ConcurrentProducers(t *testing.T) {
	q := NewQueue()
	var wg sync.WaitGroup
	for p := 0; p < 4; p++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 50; i++ {
				q.Push(Event{Type: EventObstacleHit})
			}
		}()
	}
	wg.Wait()
	if n := len(q.Consume()); n != 200 {
		t.Errorf("consumed %d, want 200", n)
	}
}

func TestEmitBatch(t *testing.T) {
	q := NewQueue()
	EmitBatch(q, SpawnBatchPool, EventItemsSpawned, nil, 1)
	if q.Len() != 0 {
		t.Fatal("empty batch emitted")
	}

	entries := []SpawnEntry{{Kind: SpawnObstacle, Variant: "barrier", Lane: 1}, {Kind: SpawnCollectible, Lane: 0}}
	EmitBatch(q, SpawnBatchPool, EventItemsSpawned, entries, 2)
	evs := q.Consume()
	if len(evs) != 1 {
		t.Fatalf("got %d events", len(evs))
	}
	bp, ok := evs[0].Payload.(*BatchPayload[SpawnEntry])
	if !ok || len(bp.Entries) != 2 || bp.Entries[0].Variant != "barrier" {
		t.Fatalf("payload = %#v", evs[0].Payload)
	}
	// Payload owns a copy
	entries[0].Variant = "changed"
	if bp.Entries[0].Variant != "barrier" {
		t.Error("payload aliases caller slice")
	}
	ReleasePayload(evs[0])
}

func TestEventType_String(t *testing.T) {
	if EventProfileRevised.String() != "ProfileRevised" {
		t.Errorf("String = %q", EventProfileRevised.String())
	}
	if EventType(999).String() != "Unknown" {
		t.Error("out-of-range type should be Unknown")
	}
}
