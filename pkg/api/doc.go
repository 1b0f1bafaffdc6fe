// Package api contains the core building blocks used by the FSM runtime.
// It provides the low-level primitives for defining states and transitions
// and for observing machine behavior.
//
// Most users interact with the higher-level fsm package, which re-exports
// selected types and helpers from this package. The api package is intended
// for advanced use cases, custom integrations, or contributors extending the
// runtime itself.
//
// # Concepts
//
// The api package centers around a small set of concepts:
//
//   - States and callback slots
//   - Transitions and guard conditions
//   - The Machine contract
//   - Observability
//
// # States and Callback Slots
//
// A State is a node in the machine identified by a host-chosen StateID. Each
// state carries three multicast callback slots: enter callbacks run when the
// state becomes current, update callbacks run once per frame-step tick while
// it remains current, and exit callbacks run when it is left. Slots fire in
// attachment order; the Add methods append and the Set methods replace the
// slot wholesale.
//
// # Transitions and Conditions
//
// A Transition is a directed edge between two states with an optional guard
// condition and an auto-detect flag. A nil condition means the transition
// always qualifies when explicitly requested; an auto-detect transition with
// a nil condition never fires automatically. Auto-detect transitions are
// evaluated every tick in registration order, first match wins.
//
// # The Machine Contract
//
// Machine is the runtime interface: registration calls build the state
// registry and transition table, Start selects the initial state, and the
// host then drives the machine through Tick and Transition. The machine is
// strictly single-threaded and cooperative; callbacks may call back into
// Transition, and those nested requests are queued and resolved in FIFO
// order rather than executed inline.
//
// # Observability
//
// The Observer interface reports machine lifecycle events: start, resolved
// transitions, dropped transitions, and ticks. Ready-made implementations
// cover structured logging (log/slog), basic in-memory metrics, and fan-out
// to multiple observers.
//
// Most applications should start from the fsm package, using the builder and
// machine constructors provided there.
package api
