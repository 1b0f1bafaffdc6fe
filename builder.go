package fsm

import (
	"fmt"

	"github.com/hont127/FSM/internal/engine"
)

// MachineBuilder provides a fluent API for defining machines:
//
//	m, err := fsm.NewBuilder().
//	    State(Idle).OnEnter(enterIdle).OnUpdate(pollInput).
//	    State(Running).OnExit(stopMotor).
//	    Transition(Idle, Running).When(startPressed).Auto().
//	    Transition(Running, Idle).
//	    Build()
//
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := m.Start(Idle); err != nil {
//	    log.Fatal(err)
//	}
//
// The builder keeps a cursor on the most recently declared state or
// transition; OnEnter/OnUpdate/OnExit apply to the cursor state, When/Auto
// to the cursor transition. Structural errors (duplicate registrations) are
// collected and returned from Build; misuse of the builder itself (a nil
// callback, a callback before any State call) panics.
type MachineBuilder struct {
	m Machine

	state      *State
	transition *Transition
	err        error
}

// NewBuilder creates a builder around a fresh Machine.
func NewBuilder() *MachineBuilder {
	return &MachineBuilder{m: engine.New()}
}

// NewBuilderWithObserver creates a builder around a fresh Machine that
// reports lifecycle events to obs.
func NewBuilderWithObserver(obs Observer) *MachineBuilder {
	return &MachineBuilder{m: engine.NewWithObserver(obs)}
}

// State declares a state and moves the cursor to it. Declaring the same id
// twice is a structural error reported by Build.
func (b *MachineBuilder) State(id StateID) *MachineBuilder {
	if b.err != nil {
		return b
	}
	if b.m.HasState(id) {
		b.err = fmt.Errorf("state %d: %w", id, ErrDuplicateState)
		return b
	}
	b.state = b.m.State(id)
	b.transition = nil
	return b
}

// OnEnter appends an enter callback to the cursor state.
func (b *MachineBuilder) OnEnter(fn EnterFunc) *MachineBuilder {
	if b.err != nil {
		return b
	}
	if b.state == nil {
		panic("fsm: OnEnter before State")
	}
	if fn == nil {
		panic(fmt.Sprintf("fsm: state %d has nil enter callback", b.state.ID))
	}
	b.state.AddEnter(fn)
	return b
}

// OnUpdate appends an update callback to the cursor state.
func (b *MachineBuilder) OnUpdate(fn UpdateFunc) *MachineBuilder {
	if b.err != nil {
		return b
	}
	if b.state == nil {
		panic("fsm: OnUpdate before State")
	}
	if fn == nil {
		panic(fmt.Sprintf("fsm: state %d has nil update callback", b.state.ID))
	}
	b.state.AddUpdate(fn)
	return b
}

// OnExit appends an exit callback to the cursor state.
func (b *MachineBuilder) OnExit(fn ExitFunc) *MachineBuilder {
	if b.err != nil {
		return b
	}
	if b.state == nil {
		panic("fsm: OnExit before State")
	}
	if fn == nil {
		panic(fmt.Sprintf("fsm: state %d has nil exit callback", b.state.ID))
	}
	b.state.AddExit(fn)
	return b
}

// Transition declares a transition from src to dst and moves the cursor to
// it. Missing endpoint states are created implicitly. Declaring the same
// pair twice is a structural error reported by Build.
func (b *MachineBuilder) Transition(src, dst StateID) *MachineBuilder {
	if b.err != nil {
		return b
	}
	if err := b.m.AddTransition(src, dst, nil); err != nil {
		b.err = err
		return b
	}
	t, _ := b.m.GetTransition(src, dst)
	b.transition = t
	b.state = nil
	return b
}

// When sets the guard condition on the cursor transition.
func (b *MachineBuilder) When(cond ConditionFunc) *MachineBuilder {
	if b.err != nil {
		return b
	}
	if b.transition == nil {
		panic("fsm: When before Transition")
	}
	if cond == nil {
		panic(fmt.Sprintf("fsm: transition %d->%d has nil condition", b.transition.Source, b.transition.Target))
	}
	b.transition.WithCondition(cond)
	return b
}

// Auto marks the cursor transition for the per-tick auto-detect scan.
// An auto-detect transition still needs a condition set via When to ever
// fire automatically.
func (b *MachineBuilder) Auto() *MachineBuilder {
	if b.err != nil {
		return b
	}
	if b.transition == nil {
		panic("fsm: Auto before Transition")
	}
	b.transition.WithAutoDetect(true)
	return b
}

// Build returns the configured machine, or the first structural error
// encountered while building.
func (b *MachineBuilder) Build() (Machine, error) {
	if b.err != nil {
		return nil, b.err
	}
	return b.m, nil
}

// MustBuild is like Build but panics on error.
// Useful for initialization in main().
func (b *MachineBuilder) MustBuild() Machine {
	m, err := b.Build()
	if err != nil {
		panic(err)
	}
	return m
}
