package api

import "testing"

func TestCallbackSlotsFireInAttachmentOrder(t *testing.T) {
	var got []int
	s := &State{ID: 1}
	s.AddEnter(func(prev StateID, arg any) { got = append(got, 1) }).
		AddEnter(func(prev StateID, arg any) { got = append(got, 2) }).
		AddEnter(func(prev StateID, arg any) { got = append(got, 3) })

	for _, fn := range s.Enter {
		fn(NoState, nil)
	}
	if len(got) != 3 || got[0] != 1 || got[1] != 2 || got[2] != 3 {
		t.Fatalf("expected attachment order [1 2 3], got %v", got)
	}
}

func TestSetReplacesSlotWholesale(t *testing.T) {
	var got []string
	s := &State{ID: 1}
	s.AddUpdate(func() { got = append(got, "old") })
	s.SetUpdate(func() { got = append(got, "new") })

	for _, fn := range s.Update {
		fn()
	}
	if len(got) != 1 || got[0] != "new" {
		t.Fatalf("expected Set to replace the slot, got %v", got)
	}

	s.SetUpdate(nil)
	if len(s.Update) != 0 {
		t.Fatalf("expected empty slot after Set with nil, got %d", len(s.Update))
	}
}

func TestUpdateAndExitSlotsFireInAttachmentOrder(t *testing.T) {
	var got []int
	s := &State{ID: 1}
	s.AddUpdate(func() { got = append(got, 1) }).
		AddUpdate(func() { got = append(got, 2) })
	s.AddExit(func(next StateID) { got = append(got, 3) }).
		AddExit(func(next StateID) { got = append(got, 4) })

	for _, fn := range s.Update {
		fn()
	}
	for _, fn := range s.Exit {
		fn(NoState)
	}
	if len(got) != 4 || got[0] != 1 || got[1] != 2 || got[2] != 3 || got[3] != 4 {
		t.Fatalf("expected attachment order [1 2 3 4], got %v", got)
	}
}

func TestAddNilCallbackPanics(t *testing.T) {
	s := &State{ID: 1}
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on nil callback")
		}
	}()
	s.AddExit(nil)
}

func TestTransitionMutators(t *testing.T) {
	tr := &Transition{Source: 1, Target: 2}
	if tr.AutoDetect {
		t.Fatal("auto-detect should default to false")
	}

	cond := func(arg any) bool { return arg == nil }
	tr.WithCondition(cond).WithAutoDetect(true)

	if tr.Condition == nil || !tr.Condition(nil) || tr.Condition("x") {
		t.Fatal("condition not applied")
	}
	if !tr.AutoDetect {
		t.Fatal("auto-detect flag not applied")
	}

	tr.WithAutoDetect(false)
	if tr.AutoDetect {
		t.Fatal("auto-detect flag not cleared")
	}
}
