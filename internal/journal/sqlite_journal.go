package journal

import (
	"context"
	"database/sql"
	"time"

	"github.com/hont127/FSM/pkg/api"
)

// SQLiteJournal stores machine events in SQLite.
type SQLiteJournal struct {
	db *sql.DB
}

// Ensure SQLiteJournal implements the interface.
var _ Journal = (*SQLiteJournal)(nil)

func NewSQLiteJournal(db *sql.DB) (*SQLiteJournal, error) {
	j := &SQLiteJournal{db: db}
	if err := j.initSchema(); err != nil {
		return nil, err
	}
	return j, nil
}

func (j *SQLiteJournal) initSchema() error {
	_, err := j.db.Exec(`
		CREATE TABLE IF NOT EXISTS machine_events (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			machine_id TEXT NOT NULL,
			at INTEGER NOT NULL,
			type TEXT NOT NULL,
			from_state INTEGER NOT NULL DEFAULT -1,
			to_state INTEGER NOT NULL DEFAULT -1,
			detail TEXT NOT NULL DEFAULT ''
		);
		CREATE INDEX IF NOT EXISTS idx_machine_events_machine_id ON machine_events(machine_id, id);
	`)
	return err
}

func (j *SQLiteJournal) Append(ctx context.Context, ev api.MachineEvent) error {
	at := ev.At
	if at.IsZero() {
		at = time.Now()
	}
	_, err := j.db.ExecContext(ctx, `
		INSERT INTO machine_events (machine_id, at, type, from_state, to_state, detail)
		VALUES (?, ?, ?, ?, ?, ?)`,
		ev.MachineID,
		at.UnixNano(),
		string(ev.Type),
		int(ev.From),
		int(ev.To),
		ev.Detail,
	)
	return err
}

func (j *SQLiteJournal) List(ctx context.Context, machineID string) ([]api.MachineEvent, error) {
	rows, err := j.db.QueryContext(ctx, `
		SELECT machine_id, at, type, from_state, to_state, detail
		FROM machine_events
		WHERE machine_id = ?
		ORDER BY id ASC`, machineID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []api.MachineEvent
	for rows.Next() {
		var (
			id     string
			atN    int64
			typ    string
			from   int
			to     int
			detail string
		)
		if err := rows.Scan(&id, &atN, &typ, &from, &to, &detail); err != nil {
			return nil, err
		}
		out = append(out, api.MachineEvent{
			MachineID: id,
			At:        time.Unix(0, atN),
			Type:      api.EventType(typ),
			From:      api.StateID(from),
			To:        api.StateID(to),
			Detail:    detail,
		})
	}
	return out, rows.Err()
}
