package fsm_test

import (
	"fmt"
	"log"

	fsm "github.com/hont127/FSM"
)

const (
	Idle    fsm.StateID = 0
	Running fsm.StateID = 1
	Done    fsm.StateID = 2
)

// Example_machineBuilder demonstrates defining and driving a small machine
// using the high-level MachineBuilder API.
func Example_machineBuilder() {
	finished := false

	m := fsm.NewBuilder().
		State(Idle).
		State(Running).
		OnEnter(func(prev fsm.StateID, arg any) {
			fmt.Printf("running (from %d, arg %v)\n", prev, arg)
		}).
		State(Done).
		OnEnter(func(prev fsm.StateID, arg any) {
			fmt.Println("done")
		}).
		Transition(Idle, Running).
		Transition(Running, Done).When(func(arg any) bool { return finished }).Auto().
		MustBuild()

	if err := m.Start(Idle); err != nil {
		log.Fatal(err)
	}
	if err := m.Transition(Running, "work order"); err != nil {
		log.Fatal(err)
	}

	// Nothing to detect yet.
	if err := m.Tick(true); err != nil {
		log.Fatal(err)
	}

	// The condition flips; the auto-detect transition fires on the next tick.
	finished = true
	if err := m.Tick(true); err != nil {
		log.Fatal(err)
	}

	fmt.Println("current:", m.Current())
	// Output:
	// running (from 0, arg work order)
	// done
	// current: 2
}

// Example_nestedRequests shows that transitions requested from inside a
// callback are queued and resolved in order, never executed inline.
func Example_nestedRequests() {
	m := fsm.New()

	m.State(Idle)
	m.State(Running).AddEnter(func(prev fsm.StateID, arg any) {
		fmt.Println("entered running; requesting done")
		if err := m.Transition(Done, nil); err != nil {
			log.Fatal(err)
		}
		// Still running here: the request resolves after this callback.
		fmt.Println("still in:", m.Current())
	})
	m.State(Done).AddEnter(func(prev fsm.StateID, arg any) {
		fmt.Println("entered done")
	})

	m.TransitionBetween(Idle, Running)
	m.TransitionBetween(Running, Done)

	if err := m.Start(Idle); err != nil {
		log.Fatal(err)
	}
	if err := m.Transition(Running, nil); err != nil {
		log.Fatal(err)
	}

	fmt.Println("current:", m.Current())
	// Output:
	// entered running; requesting done
	// still in: 1
	// entered done
	// current: 2
}
