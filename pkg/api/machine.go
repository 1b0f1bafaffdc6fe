package api

import "errors"

// StateID identifies a registered state. Identifiers are chosen by the host,
// must be stable for the life of the machine, and are never reassigned.
type StateID int

// NoState is the "previous state" passed to the initial state's enter
// callbacks by Start, and the value Current reports before Start.
const NoState StateID = -1

// Callback shapes supplied by the host. All callbacks run synchronously on
// the goroutine driving the machine and may call back into Transition;
// requests raised that way are queued and resolved in FIFO order, never
// executed inline.
type (
	// EnterFunc runs when its state becomes current. prev is the state being
	// left (NoState on Start) and arg is the value passed to Transition.
	EnterFunc func(prev StateID, arg any)

	// UpdateFunc runs once per frame-step tick while its state is current.
	UpdateFunc func()

	// ExitFunc runs when its state is left. next is the destination state.
	ExitFunc func(next StateID)

	// ConditionFunc guards a transition. A nil condition means "always
	// eligible when explicitly requested"; an auto-detect transition with a
	// nil condition never fires automatically.
	ConditionFunc func(arg any) bool
)

var (
	// ErrNotStarted is returned by Tick and Transition before Start succeeds.
	ErrNotStarted = errors.New("machine not started")

	// ErrAlreadyStarted is returned by Start after a successful Start.
	ErrAlreadyStarted = errors.New("machine already started")

	// ErrStateNotFound is returned by Start for an unregistered identifier.
	ErrStateNotFound = errors.New("state not found")

	// ErrTransitionNotFound is returned by Transition when the current state
	// has no outgoing transition to the requested destination.
	ErrTransitionNotFound = errors.New("transition not found")

	// ErrDuplicateState is returned by AddState for an already registered id.
	ErrDuplicateState = errors.New("duplicate state")

	// ErrDuplicateTransition is returned by AddTransition when a transition
	// between the same pair of states already exists.
	ErrDuplicateTransition = errors.New("duplicate transition")
)

// Machine is a finite-state-machine runtime driven by an external tick loop.
//
// A Machine is strictly single-threaded and cooperative: none of its methods
// are safe for concurrent use, and all callbacks run to completion inside the
// Tick, Transition or Start call that triggered them. Calling Tick from
// inside a callback panics; calling Transition from inside a callback queues
// the request for the current tick's drain phase instead.
type Machine interface {
	// ID returns the unique identifier of this machine instance. It is
	// stamped into observer notifications and journal records.
	ID() string

	// HasState reports whether a state with the given id is registered.
	HasState(id StateID) bool

	// AddState registers a new state with the given lifecycle callbacks.
	// Nil callbacks leave the corresponding slot empty. Registering the same
	// id twice returns ErrDuplicateState.
	AddState(id StateID, onEnter EnterFunc, onUpdate UpdateFunc, onExit ExitFunc) error

	// State returns the state with the given id, registering an empty one
	// first if needed. It is the get-or-create counterpart of AddState,
	// intended for builder-style call sites.
	State(id StateID) *State

	// HasTransition reports whether a transition from src to dst exists.
	HasTransition(src, dst StateID) bool

	// AddTransition appends a transition from src to dst guarded by cond
	// (nil for unconditional). Missing endpoint states are auto-created.
	// A second transition between the same pair returns ErrDuplicateTransition.
	AddTransition(src, dst StateID, cond ConditionFunc) error

	// TransitionBetween returns the transition from src to dst, creating it
	// (and any missing endpoint states) if needed.
	TransitionBetween(src, dst StateID) *Transition

	// GetTransition returns the first transition from src to dst by
	// registration order, or false when none exists.
	GetTransition(src, dst StateID) (*Transition, bool)

	// Start selects the initial state and fires its enter callbacks with
	// prev = NoState and a nil argument. Transition requests raised by those
	// callbacks are drained before Start returns.
	Start(initial StateID) error

	// Current returns the current state id, or NoState before Start.
	Current() StateID

	// Transition requests the transition from the current state to dst with
	// the given argument. Outside a tick the request is resolved
	// synchronously before Transition returns; inside a callback it is
	// queued for the current tick's drain phase. A guard that evaluates
	// false drops the request silently; that is not an error.
	Transition(dst StateID, arg any) error

	// TransitionDeferred is Transition without the synchronous resolution:
	// outside a tick the request parks until the next Tick call. There is a
	// single parking slot; a second deferred request before the next Tick
	// replaces the first.
	TransitionDeferred(dst StateID, arg any) error

	// Tick advances the machine one step: resolve the pending request if
	// any, otherwise scan auto-detect transitions, fire the current state's
	// update callbacks when frameStep is true, then drain queued requests.
	// Calling Tick from inside a callback panics.
	Tick(frameStep bool) error
}
