package fsm

import (
	"github.com/hont127/FSM/internal/engine"
	"github.com/hont127/FSM/pkg/api"
)

// Re-export key types so users don't need to dig into pkg/api.

type (
	Machine              = api.Machine
	State                = api.State
	Transition           = api.Transition
	StateID              = api.StateID
	EnterFunc            = api.EnterFunc
	UpdateFunc           = api.UpdateFunc
	ExitFunc             = api.ExitFunc
	ConditionFunc        = api.ConditionFunc
	Observer             = api.Observer
	LoggingObserver      = api.LoggingObserver
	BasicMetrics         = api.BasicMetrics
	BasicMetricsSnapshot = api.BasicMetricsSnapshot
	CompositeObserver    = api.CompositeObserver
	NoopObserver         = api.NoopObserver
	MachineEvent         = api.MachineEvent
	EventType            = api.EventType
)

// Re-export common observer helpers.

var (
	NewLoggingObserver   = api.NewLoggingObserver
	NewCompositeObserver = api.NewCompositeObserver
)

// NoState is the "previous state" reported to the initial state's enter
// callbacks, and the value Current reports before Start.
const NoState = api.NoState

// Re-export journal event types for convenience.

const (
	EventMachineStarted    = api.EventMachineStarted
	EventTransitionFired   = api.EventTransitionFired
	EventTransitionDropped = api.EventTransitionDropped
)

// Re-export sentinel errors for errors.Is checks at call sites.

var (
	ErrNotStarted          = api.ErrNotStarted
	ErrAlreadyStarted      = api.ErrAlreadyStarted
	ErrStateNotFound       = api.ErrStateNotFound
	ErrTransitionNotFound  = api.ErrTransitionNotFound
	ErrDuplicateState      = api.ErrDuplicateState
	ErrDuplicateTransition = api.ErrDuplicateTransition
)

// Machine constructors
// These wrap the internal/engine package so external callers
// never need to import internal packages.

// New returns an empty Machine. Register states and transitions, then call
// Start before ticking.
func New() Machine {
	return engine.New()
}

// NewWithObserver returns an empty Machine that reports lifecycle events to
// the given Observer.
func NewWithObserver(obs Observer) Machine {
	return engine.NewWithObserver(obs)
}
