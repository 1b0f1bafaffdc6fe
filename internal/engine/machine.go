// Package engine implements the FSM dispatch core: the state registry, the
// transition table, and the tick-driven request resolution loop.
package engine

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/hont127/FSM/pkg/api"
)

// request is an ephemeral (transition, argument) pair chosen to resolve on a
// processing step. At most one is active per step; others raised during an
// active step go onto the FIFO queue.
type request struct {
	t   *api.Transition
	arg any
}

// machine is the single-threaded cooperative Machine implementation.
//
// Reentrancy model: ticking is set for the duration of one guarded dispatch
// step. Transition requests raised while ticking (i.e. from inside enter,
// exit, update or condition callbacks) are appended to queue instead of
// firing inline; the drain loop resolves them strictly in the order raised.
type machine struct {
	id      string
	states  map[api.StateID]*api.State
	current *api.State

	ticking bool
	pending *request
	queue   []request

	observer api.Observer
}

// New returns an empty Machine with no observer configured.
func New() api.Machine {
	return NewWithObserver(nil)
}

// NewWithObserver returns an empty Machine that reports lifecycle events to
// obs. A nil obs falls back to api.NoopObserver.
func NewWithObserver(obs api.Observer) api.Machine {
	if obs == nil {
		obs = api.NoopObserver{}
	}
	return &machine{
		id:       uuid.NewString(),
		states:   make(map[api.StateID]*api.State),
		observer: obs,
	}
}

func (m *machine) ID() string {
	return m.id
}

func (m *machine) HasState(id api.StateID) bool {
	_, ok := m.states[id]
	return ok
}

func (m *machine) AddState(id api.StateID, onEnter api.EnterFunc, onUpdate api.UpdateFunc, onExit api.ExitFunc) error {
	if _, ok := m.states[id]; ok {
		return fmt.Errorf("state %d: %w", id, api.ErrDuplicateState)
	}
	s := &api.State{ID: id}
	if onEnter != nil {
		s.Enter = append(s.Enter, onEnter)
	}
	if onUpdate != nil {
		s.Update = append(s.Update, onUpdate)
	}
	if onExit != nil {
		s.Exit = append(s.Exit, onExit)
	}
	m.states[id] = s
	return nil
}

func (m *machine) State(id api.StateID) *api.State {
	if s, ok := m.states[id]; ok {
		return s
	}
	s := &api.State{ID: id}
	m.states[id] = s
	return s
}

func (m *machine) HasTransition(src, dst api.StateID) bool {
	_, ok := m.GetTransition(src, dst)
	return ok
}

func (m *machine) GetTransition(src, dst api.StateID) (*api.Transition, bool) {
	s, ok := m.states[src]
	if !ok {
		return nil, false
	}
	for _, t := range s.Transitions {
		if t.Target == dst {
			return t, true
		}
	}
	return nil, false
}

func (m *machine) AddTransition(src, dst api.StateID, cond api.ConditionFunc) error {
	if _, ok := m.GetTransition(src, dst); ok {
		return fmt.Errorf("transition %d->%d: %w", src, dst, api.ErrDuplicateTransition)
	}
	from := m.State(src)
	m.State(dst)
	from.Transitions = append(from.Transitions, &api.Transition{
		Source:    src,
		Target:    dst,
		Condition: cond,
	})
	return nil
}

func (m *machine) TransitionBetween(src, dst api.StateID) *api.Transition {
	if t, ok := m.GetTransition(src, dst); ok {
		return t
	}
	from := m.State(src)
	m.State(dst)
	t := &api.Transition{Source: src, Target: dst}
	from.Transitions = append(from.Transitions, t)
	return t
}

func (m *machine) Start(initial api.StateID) error {
	if m.current != nil {
		return api.ErrAlreadyStarted
	}
	s, ok := m.states[initial]
	if !ok {
		return fmt.Errorf("start state %d: %w", initial, api.ErrStateNotFound)
	}
	m.current = s

	// The initial enter runs under the reentrancy guard so that requests it
	// raises are queued and drained in order, exactly as during a tick.
	m.ticking = true
	for _, fn := range s.Enter {
		fn(api.NoState, nil)
	}
	m.ticking = false

	m.observer.OnMachineStarted(m.id, initial)
	m.drain()
	return nil
}

func (m *machine) Current() api.StateID {
	if m.current == nil {
		return api.NoState
	}
	return m.current.ID
}

func (m *machine) Transition(dst api.StateID, arg any) error {
	return m.submit(dst, arg, true)
}

func (m *machine) TransitionDeferred(dst api.StateID, arg any) error {
	return m.submit(dst, arg, false)
}

// submit looks up the transition from the current state to dst and routes
// the request: queued when a tick is in flight, otherwise into the pending
// slot (replacing any parked request), resolved synchronously when immediate
// is set.
func (m *machine) submit(dst api.StateID, arg any, immediate bool) error {
	if m.current == nil {
		return api.ErrNotStarted
	}
	t, ok := m.GetTransition(m.current.ID, dst)
	if !ok {
		return fmt.Errorf("transition %d->%d: %w", m.current.ID, dst, api.ErrTransitionNotFound)
	}
	req := request{t: t, arg: arg}

	if m.ticking {
		// Raised from inside a callback; defer to the current drain phase.
		// The immediate flag is a no-op here.
		m.queue = append(m.queue, req)
		return nil
	}

	m.pending = &req
	if immediate {
		m.step(false)
		m.drain()
	}
	return nil
}

func (m *machine) Tick(frameStep bool) error {
	if m.current == nil {
		return api.ErrNotStarted
	}
	if m.ticking {
		// The host is calling Tick from inside a callback invoked by Tick.
		// That breaks the single-threaded cooperative contract.
		panic("fsm: reentrant Tick")
	}
	m.step(frameStep)
	m.drain()
	m.observer.OnTick(m.id, m.current.ID, frameStep)
	return nil
}

// step runs one guarded dispatch pass: resolve the pending request if any,
// otherwise scan auto-detect transitions, then fire the per-tick update.
func (m *machine) step(frameStep bool) {
	m.ticking = true
	defer func() { m.ticking = false }()

	if req := m.pending; req != nil {
		// Clear the slot before resolving; the outcome does not matter.
		m.pending = nil
		m.resolve(*req)
	} else {
		m.scanAutoDetect()
	}

	if frameStep {
		for _, fn := range m.current.Update {
			fn()
		}
	}
}

// resolve evaluates a request's guard and, when it holds, performs the
// transition. Exit callbacks observe the outgoing state as still current;
// enter callbacks observe the machine already pointing at the destination,
// so they may safely re-request further transitions.
func (m *machine) resolve(req request) {
	if req.t.Condition != nil && !req.t.Condition(req.arg) {
		// Guard false: the transition did not qualify. Not an error.
		m.observer.OnTransitionDropped(m.id, req.t.Source, req.t.Target)
		return
	}

	src := m.states[req.t.Source]
	dst := m.states[req.t.Target]

	for _, fn := range src.Exit {
		fn(dst.ID)
	}
	m.current = dst
	for _, fn := range dst.Enter {
		fn(src.ID, req.arg)
	}

	m.observer.OnTransition(m.id, src.ID, dst.ID, req.arg)
}

// scanAutoDetect queues the first auto-detect transition of the current
// state whose condition holds for a nil argument. The queued request goes
// through the same resolution path as an explicit one, so the guard is
// evaluated again at resolution time and may still drop it.
func (m *machine) scanAutoDetect() {
	for _, t := range m.current.Transitions {
		// An auto-detect transition without a condition never fires.
		if !t.AutoDetect || t.Condition == nil {
			continue
		}
		if t.Condition(nil) {
			m.queue = append(m.queue, request{t: t})
			return
		}
	}
}

// drain resolves queued requests in FIFO order as non-frame steps. It is an
// explicit loop rather than recursive self-invocation so the stack stays
// flat no matter how many requests the callbacks raise.
func (m *machine) drain() {
	for len(m.queue) > 0 {
		req := m.queue[0]
		m.queue = m.queue[1:]
		m.pending = &req
		m.step(false)
	}
}
