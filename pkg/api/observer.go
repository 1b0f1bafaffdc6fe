package api

import (
	"log/slog"
	"sync/atomic"
)

// Observer receives notifications from the machine for logging and metrics.
//
// Observer methods run synchronously on the goroutine driving the machine;
// implementations should be fast and must not call back into the machine.
type Observer interface {
	// OnMachineStarted is called once when Start succeeds, after the initial
	// state's enter callbacks have run.
	OnMachineStarted(machineID string, initial StateID)

	// OnTransition is called after a transition fully resolves: exit and
	// enter callbacks have run and the current state is to.
	OnTransition(machineID string, from, to StateID, arg any)

	// OnTransitionDropped is called when a requested or auto-detected
	// transition is dropped because its guard evaluated false. This is
	// expected domain behavior, not an error.
	OnTransitionDropped(machineID string, from, to StateID)

	// OnTick is called at the end of every Tick call, after the drain phase.
	OnTick(machineID string, current StateID, frameStep bool)
}

// NoopObserver is an Observer that does nothing.
// It is used as the default when no observer is configured.
type NoopObserver struct{}

func (NoopObserver) OnMachineStarted(machineID string, initial StateID)       {}
func (NoopObserver) OnTransition(machineID string, from, to StateID, arg any) {}
func (NoopObserver) OnTransitionDropped(machineID string, from, to StateID)   {}
func (NoopObserver) OnTick(machineID string, current StateID, frameStep bool) {}

// CompositeObserver fans out notifications to multiple observers.
type CompositeObserver struct {
	observers []Observer
}

// NewCompositeObserver creates an Observer that forwards notifications to
// each non-nil observer in obs.
func NewCompositeObserver(obs ...Observer) Observer {
	filtered := make([]Observer, 0, len(obs))
	for _, o := range obs {
		if o != nil {
			filtered = append(filtered, o)
		}
	}
	if len(filtered) == 0 {
		return NoopObserver{}
	}
	if len(filtered) == 1 {
		return filtered[0]
	}
	return &CompositeObserver{observers: filtered}
}

func (c *CompositeObserver) OnMachineStarted(machineID string, initial StateID) {
	for _, o := range c.observers {
		o.OnMachineStarted(machineID, initial)
	}
}

func (c *CompositeObserver) OnTransition(machineID string, from, to StateID, arg any) {
	for _, o := range c.observers {
		o.OnTransition(machineID, from, to, arg)
	}
}

func (c *CompositeObserver) OnTransitionDropped(machineID string, from, to StateID) {
	for _, o := range c.observers {
		o.OnTransitionDropped(machineID, from, to)
	}
}

func (c *CompositeObserver) OnTick(machineID string, current StateID, frameStep bool) {
	for _, o := range c.observers {
		o.OnTick(machineID, current, frameStep)
	}
}

// LoggingObserver writes structured logs using log/slog.
type LoggingObserver struct {
	Logger *slog.Logger
}

// NewLoggingObserver creates an Observer that logs machine lifecycle events
// using the provided slog.Logger. If logger is nil, slog.Default() is used.
func NewLoggingObserver(logger *slog.Logger) Observer {
	if logger == nil {
		logger = slog.Default()
	}
	return &LoggingObserver{Logger: logger}
}

func (o *LoggingObserver) OnMachineStarted(machineID string, initial StateID) {
	o.Logger.Info("machine_started",
		slog.String("machine_id", machineID),
		slog.Int("initial", int(initial)),
	)
}

func (o *LoggingObserver) OnTransition(machineID string, from, to StateID, arg any) {
	o.Logger.Info("transition",
		slog.String("machine_id", machineID),
		slog.Int("from", int(from)),
		slog.Int("to", int(to)),
		slog.Any("arg", arg),
	)
}

func (o *LoggingObserver) OnTransitionDropped(machineID string, from, to StateID) {
	o.Logger.Debug("transition_dropped",
		slog.String("machine_id", machineID),
		slog.Int("from", int(from)),
		slog.Int("to", int(to)),
	)
}

func (o *LoggingObserver) OnTick(machineID string, current StateID, frameStep bool) {
	o.Logger.Debug("tick",
		slog.String("machine_id", machineID),
		slog.Int("current", int(current)),
		slog.Bool("frame_step", frameStep),
	)
}

// BasicMetrics collects simple counters. It implements Observer, and can be
// combined with LoggingObserver via NewCompositeObserver.
type BasicMetrics struct {
	machinesStarted    atomic.Int64
	transitions        atomic.Int64
	transitionsDropped atomic.Int64
	ticks              atomic.Int64
	frameTicks         atomic.Int64
}

// BasicMetricsSnapshot is an immutable snapshot of BasicMetrics.
type BasicMetricsSnapshot struct {
	MachinesStarted    int64
	Transitions        int64
	TransitionsDropped int64
	Ticks              int64
	FrameTicks         int64
}

func (m *BasicMetrics) OnMachineStarted(machineID string, initial StateID) {
	m.machinesStarted.Add(1)
}

func (m *BasicMetrics) OnTransition(machineID string, from, to StateID, arg any) {
	m.transitions.Add(1)
}

func (m *BasicMetrics) OnTransitionDropped(machineID string, from, to StateID) {
	m.transitionsDropped.Add(1)
}

func (m *BasicMetrics) OnTick(machineID string, current StateID, frameStep bool) {
	m.ticks.Add(1)
	if frameStep {
		m.frameTicks.Add(1)
	}
}

// Snapshot returns a snapshot of the current metrics.
func (m *BasicMetrics) Snapshot() BasicMetricsSnapshot {
	return BasicMetricsSnapshot{
		MachinesStarted:    m.machinesStarted.Load(),
		Transitions:        m.transitions.Load(),
		TransitionsDropped: m.transitionsDropped.Load(),
		Ticks:              m.ticks.Load(),
		FrameTicks:         m.frameTicks.Load(),
	}
}
