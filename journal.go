package fsm

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/hont127/FSM/internal/journal"
	"github.com/hont127/FSM/pkg/api"
)

// JournalObserver is an Observer that appends machine lifecycle events to an
// append-only store. The machine itself stays fully in-memory; the journal
// is an external audit sink.
//
// Typical usage:
//
//	db, _ := sql.Open("sqlite", "file:fsm.db?_journal=WAL")
//	jo, err := fsm.NewSQLiteJournal(db, nil)
//	m := fsm.NewWithObserver(jo)
//	// ... later:
//	events, err := jo.Events(ctx, m.ID())
type JournalObserver struct {
	store  journal.Journal
	logger *slog.Logger
}

// NewSQLiteJournal constructs a JournalObserver backed by the given SQLite
// database, creating the schema if needed. If logger is nil, slog.Default()
// is used to report append failures.
func NewSQLiteJournal(db *sql.DB, logger *slog.Logger) (*JournalObserver, error) {
	store, err := journal.NewSQLiteJournal(db)
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &JournalObserver{store: store, logger: logger}, nil
}

// Events returns the recorded events for the given machine in append order.
func (j *JournalObserver) Events(ctx context.Context, machineID string) ([]MachineEvent, error) {
	return j.store.List(ctx, machineID)
}

func (j *JournalObserver) OnMachineStarted(machineID string, initial StateID) {
	j.append(api.MachineEvent{
		MachineID: machineID,
		Type:      api.EventMachineStarted,
		From:      api.NoState,
		To:        initial,
	})
}

func (j *JournalObserver) OnTransition(machineID string, from, to StateID, arg any) {
	detail := ""
	if arg != nil {
		detail = fmt.Sprintf("%v", arg)
	}
	j.append(api.MachineEvent{
		MachineID: machineID,
		Type:      api.EventTransitionFired,
		From:      from,
		To:        to,
		Detail:    detail,
	})
}

func (j *JournalObserver) OnTransitionDropped(machineID string, from, to StateID) {
	j.append(api.MachineEvent{
		MachineID: machineID,
		Type:      api.EventTransitionDropped,
		From:      from,
		To:        to,
	})
}

func (j *JournalObserver) OnTick(machineID string, current StateID, frameStep bool) {
	// Ticks are high-volume and carry no state change; not journaled.
}

func (j *JournalObserver) append(ev api.MachineEvent) {
	if err := j.store.Append(context.Background(), ev); err != nil {
		j.logger.Error("journal_append_failed",
			slog.String("machine_id", ev.MachineID),
			slog.String("type", string(ev.Type)),
			slog.Any("error", err),
		)
	}
}
