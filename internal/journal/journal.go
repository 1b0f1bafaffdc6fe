// Package journal provides append-only stores for machine lifecycle events.
package journal

import (
	"context"

	"github.com/hont127/FSM/pkg/api"
)

// Journal is an append-only history store for machine lifecycle events.
type Journal interface {
	Append(ctx context.Context, ev api.MachineEvent) error
	List(ctx context.Context, machineID string) ([]api.MachineEvent, error)
}

// NoopJournal discards all events.
type NoopJournal struct{}

func (NoopJournal) Append(ctx context.Context, ev api.MachineEvent) error { return nil }
func (NoopJournal) List(ctx context.Context, machineID string) ([]api.MachineEvent, error) {
	return nil, nil
}
