package api

import "time"

// EventType identifies a machine lifecycle event.
type EventType string

const (
	EventMachineStarted    EventType = "machine.started"
	EventTransitionFired   EventType = "transition.fired"
	EventTransitionDropped EventType = "transition.dropped"
)

// MachineEvent is a minimal append-only record for audit/debugging.
// It is intentionally small and stable; richer history can be layered later.
type MachineEvent struct {
	MachineID string
	At        time.Time
	Type      EventType

	// From is NoState for machine.started events.
	From StateID
	To   StateID

	// Small, human-oriented details (e.g. a rendering of the transition
	// argument). Keep this low-volume: do NOT dump large payloads here.
	Detail string
}
