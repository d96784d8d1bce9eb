package event

// EventType identifies a simulation event
type EventType int

const (
	// EventRunReset signals the track was rebuilt from scratch
	// Trigger: Track.Reset | Payload: nil
	EventRunReset EventType = iota

	// EventSegmentPlaced signals a configured segment joined the far end of the window
	// Trigger: Track.spawnNext | Payload: SegmentPlacedPayload
	EventSegmentPlaced

	// EventSegmentRecycled signals a segment scrolled behind the player and returned to the pool
	// Trigger: Track.Update | Payload: SegmentRecycledPayload
	EventSegmentRecycled

	// EventProfileRevised signals the previous segment lost its exit taper
	// Trigger: Track.configure | Payload: ProfileRevisedPayload
	EventProfileRevised

	// EventSelectionFallback signals no candidate fit the budget and straight was used
	// Trigger: Track.spawnNext | Payload: FallbackPayload
	EventSelectionFallback

	// EventPoolExhausted signals the segment pool had no free slot
	// Trigger: Track.spawnNext | Payload: nil
	EventPoolExhausted

	// EventItemsSpawned reports the obstacles and pickups placed on one segment
	// Trigger: Spawner.SpawnForSegment | Payload: *BatchPayload[SpawnEntry]
	// Consumer releases the payload to SpawnBatchPool
	EventItemsSpawned

	// EventLaneCountChanged signals the follower entered a different lane layout
	// Trigger: Session.Update | Payload: LaneCountPayload
	EventLaneCountChanged

	// EventObstacleHit signals the follower struck an obstacle
	// Trigger: Session.ApplyHit | Payload: HitPayload
	EventObstacleHit

	// EventPickupCollected signals a collectible or powerup was taken
	// Trigger: Session.Update | Payload: PickupPayload
	EventPickupCollected

	// EventPowerupExpired signals an active powerup ran out
	// Trigger: Session.Update | Payload: PickupPayload
	EventPowerupExpired

	// EventRunnerJumped signals the runner left the floor
	// Trigger: Session.Jump | Payload: nil
	EventRunnerJumped

	// EventRunnerSlid signals the runner dropped into a slide
	// Trigger: Session.Slide | Payload: nil
	EventRunnerSlid

	// EventRunnerFell signals the runner dropped into a gap
	// Trigger: Session.Update | Payload: nil
	EventRunnerFell

	// EventRunEnded signals the meter emptied or a fall ended the run
	// Trigger: Session.Update | Payload: RunEndedPayload
	EventRunEnded

	eventTypeCount
)

var typeNames = [eventTypeCount]string{
	EventRunReset:          "RunReset",
	EventSegmentPlaced:     "SegmentPlaced",
	EventSegmentRecycled:   "SegmentRecycled",
	EventProfileRevised:    "ProfileRevised",
	EventSelectionFallback: "SelectionFallback",
	EventPoolExhausted:     "PoolExhausted",
	EventItemsSpawned:      "ItemsSpawned",
	EventLaneCountChanged:  "LaneCountChanged",
	EventObstacleHit:       "ObstacleHit",
	EventPickupCollected:   "PickupCollected",
	EventPowerupExpired:    "PowerupExpired",
	EventRunnerJumped:      "RunnerJumped",
	EventRunnerSlid:        "RunnerSlid",
	EventRunnerFell:        "RunnerFell",
	EventRunEnded:          "RunEnded",
}

func (t EventType) String() string {
	if t < 0 || t >= eventTypeCount {
		return "Unknown"
	}
	return typeNames[t]
}

// Event is one queued simulation event
type Event struct {
	Type    EventType
	Payload any
	Tick    int64 // track update count at emission
}
