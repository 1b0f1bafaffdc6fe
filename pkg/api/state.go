package api

// State is a registered node in the machine graph. Callback slots are
// multicast: Add* appends, Set* replaces the slot wholesale. Callbacks fire
// in attachment order.
type State struct {
	ID          StateID
	Transitions []*Transition

	Enter  []EnterFunc
	Update []UpdateFunc
	Exit   []ExitFunc
}

// AddEnter appends an enter callback. It panics on a nil function; an empty
// slot is expressed by not attaching anything, not by attaching nil.
func (s *State) AddEnter(fn EnterFunc) *State {
	if fn == nil {
		panic("fsm: nil enter callback")
	}
	s.Enter = append(s.Enter, fn)
	return s
}

// AddUpdate appends an update callback. It panics on a nil function.
func (s *State) AddUpdate(fn UpdateFunc) *State {
	if fn == nil {
		panic("fsm: nil update callback")
	}
	s.Update = append(s.Update, fn)
	return s
}

// AddExit appends an exit callback. It panics on a nil function.
func (s *State) AddExit(fn ExitFunc) *State {
	if fn == nil {
		panic("fsm: nil exit callback")
	}
	s.Exit = append(s.Exit, fn)
	return s
}

// SetEnter replaces the enter slot. A nil fn empties it.
func (s *State) SetEnter(fn EnterFunc) *State {
	if fn == nil {
		s.Enter = nil
		return s
	}
	s.Enter = []EnterFunc{fn}
	return s
}

// SetUpdate replaces the update slot. A nil fn empties it.
func (s *State) SetUpdate(fn UpdateFunc) *State {
	if fn == nil {
		s.Update = nil
		return s
	}
	s.Update = []UpdateFunc{fn}
	return s
}

// SetExit replaces the exit slot. A nil fn empties it.
func (s *State) SetExit(fn ExitFunc) *State {
	if fn == nil {
		s.Exit = nil
		return s
	}
	s.Exit = []ExitFunc{fn}
	return s
}

// Transition is a directed edge between two states. A nil Condition means the
// transition is unconditional when explicitly requested. AutoDetect marks the
// transition for the per-tick scan; an auto-detect transition without a
// condition never fires automatically.
type Transition struct {
	Source     StateID
	Target     StateID
	Condition  ConditionFunc
	AutoDetect bool
}

// WithCondition sets the guard and returns the transition for chaining.
func (t *Transition) WithCondition(cond ConditionFunc) *Transition {
	t.Condition = cond
	return t
}

// WithAutoDetect toggles the auto-detect flag and returns the transition.
func (t *Transition) WithAutoDetect(auto bool) *Transition {
	t.AutoDetect = auto
	return t
}
