// Package fsm provides a lightweight, embeddable finite-state-machine
// runtime for Go.
//
// The runtime manages a set of states, the directed transitions between
// them, and the rules for switching state safely — including transitions
// requested while a transition is already being processed, and transitions
// that fire automatically when a condition becomes true. It is infrastructure
// meant to be driven by an external tick loop and observed through lifecycle
// callbacks; it ships no UI, no host-loop integration, and no persistence of
// machine state.
//
// # Core Concepts
//
// The programming model is intentionally small:
//
//  1. Machine
//  2. State and callback slots
//  3. Transition and guard conditions
//  4. MachineBuilder
//  5. Observer
//
// # Machine
//
// A Machine holds the state registry, the transition table, and a single
// "current state" pointer. The host registers states and transitions, calls
// Start to select the initial state, then repeatedly calls Tick:
//
//	m := fsm.New()
//	_ = m.AddState(Idle, nil, pollInput, nil)
//	_ = m.AddState(Running, onRun, nil, nil)
//	_ = m.AddTransition(Idle, Running, startPressed)
//
//	if err := m.Start(Idle); err != nil {
//	    log.Fatal(err)
//	}
//	for range frames {
//	    _ = m.Tick(true)
//	}
//
// Each Tick resolves a pending transition request if one exists, otherwise
// scans the current state's auto-detect transitions, fires the per-tick
// update callbacks, and finally drains any requests queued by callbacks
// during the tick.
//
// # Reentrancy
//
// The machine is strictly single-threaded and cooperative. Callbacks run
// synchronously inside the Tick, Transition or Start call that triggered
// them, and may themselves request transitions; those nested requests are
// appended to a FIFO queue and resolved in the order raised, each fully
// settled (its own exit/enter run, or dropped) before the next is
// considered. Calling Tick from inside a callback is a contract violation
// and panics. The machine provides no cross-thread synchronization and must
// not be shared across goroutines without external locking.
//
// # Guard Conditions and Auto-Detect
//
// A transition may carry a guard condition. A requested transition whose
// guard evaluates false is silently dropped — no state change, no callbacks,
// no error. Transitions marked auto-detect are evaluated every tick in
// registration order against the current state; the first whose condition
// holds fires without any explicit Transition call. An auto-detect
// transition without a condition never fires automatically.
//
// # MachineBuilder
//
// MachineBuilder provides the ergonomic, declarative API used to define
// machines:
//
//	m := fsm.NewBuilder().
//	    State(Idle).OnUpdate(pollInput).
//	    State(Running).OnEnter(onRun).
//	    Transition(Idle, Running).When(startPressed).Auto().
//	    MustBuild()
//
// # Observability
//
// The Observer interface reports machine starts, resolved transitions,
// dropped transitions, and ticks. Ready-made implementations include
// structured logging via log/slog (NewLoggingObserver), in-memory counters
// (BasicMetrics), fan-out (NewCompositeObserver), and an append-only SQLite
// transition journal (NewSQLiteJournal).
//
// See the examples directory for end-to-end usage.
package fsm
