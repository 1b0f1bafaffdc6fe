package journal

import (
	"context"
	"database/sql"
	"testing"
	"time"

	_ "modernc.org/sqlite"

	"github.com/hont127/FSM/pkg/api"
)

func newTestSQLiteJournal(t *testing.T) *SQLiteJournal {
	t.Helper()

	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("sql.Open failed: %v", err)
	}

	t.Cleanup(func() {
		_ = db.Close()
	})

	j, err := NewSQLiteJournal(db)
	if err != nil {
		t.Fatalf("NewSQLiteJournal failed: %v", err)
	}

	return j
}

func TestSQLiteJournal_AppendList(t *testing.T) {
	j := newTestSQLiteJournal(t)
	ctx := context.Background()

	events := []api.MachineEvent{
		{MachineID: "m-1", Type: api.EventMachineStarted, From: api.NoState, To: 0},
		{MachineID: "m-1", Type: api.EventTransitionFired, From: 0, To: 1, Detail: "go"},
		{MachineID: "m-1", Type: api.EventTransitionDropped, From: 1, To: 2},
	}
	for _, ev := range events {
		if err := j.Append(ctx, ev); err != nil {
			t.Fatalf("Append failed: %v", err)
		}
	}

	got, err := j.List(ctx, "m-1")
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(got) != len(events) {
		t.Fatalf("expected %d events, got %d", len(events), len(got))
	}
	for i, want := range events {
		if got[i].Type != want.Type {
			t.Fatalf("event %d: expected type %q, got %q", i, want.Type, got[i].Type)
		}
		if got[i].From != want.From || got[i].To != want.To {
			t.Fatalf("event %d: expected %d->%d, got %d->%d", i, want.From, want.To, got[i].From, got[i].To)
		}
		if got[i].Detail != want.Detail {
			t.Fatalf("event %d: expected detail %q, got %q", i, want.Detail, got[i].Detail)
		}
		if got[i].At.IsZero() {
			t.Fatalf("event %d: timestamp not stamped", i)
		}
	}
}

func TestSQLiteJournal_ExplicitTimestampPreserved(t *testing.T) {
	j := newTestSQLiteJournal(t)
	ctx := context.Background()

	at := time.Date(2026, 2, 3, 4, 5, 6, 700, time.UTC)
	ev := api.MachineEvent{MachineID: "m-2", At: at, Type: api.EventTransitionFired, From: 0, To: 1}
	if err := j.Append(ctx, ev); err != nil {
		t.Fatalf("Append failed: %v", err)
	}

	got, err := j.List(ctx, "m-2")
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 event, got %d", len(got))
	}
	if !got[0].At.Equal(at) {
		t.Fatalf("expected timestamp %v, got %v", at, got[0].At)
	}
}

func TestSQLiteJournal_ListIsolatesMachines(t *testing.T) {
	j := newTestSQLiteJournal(t)
	ctx := context.Background()

	if err := j.Append(ctx, api.MachineEvent{MachineID: "m-a", Type: api.EventMachineStarted, From: api.NoState, To: 0}); err != nil {
		t.Fatalf("Append failed: %v", err)
	}
	if err := j.Append(ctx, api.MachineEvent{MachineID: "m-b", Type: api.EventMachineStarted, From: api.NoState, To: 5}); err != nil {
		t.Fatalf("Append failed: %v", err)
	}

	got, err := j.List(ctx, "m-a")
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(got) != 1 || got[0].MachineID != "m-a" {
		t.Fatalf("expected only m-a events, got %v", got)
	}

	none, err := j.List(ctx, "m-c")
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(none) != 0 {
		t.Fatalf("expected no events for unknown machine, got %d", len(none))
	}
}
