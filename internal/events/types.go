package events

import (
	"time"
)

// Event is the base interface for all run lifecycle events.
type Event interface {
	EventType() string
	RunID() string
}

// Event type constants
const (
	EventTypeRunStarted        = "run.started"
	EventTypeGraphBuilt        = "run.graph_built"
	EventTypeAnalysisCompleted = "run.analysis_completed"
	EventTypeRunSaved          = "run.saved"
	EventTypeRunFailed         = "run.failed"
)

// RunStartedEvent is published when a decomposition run begins.
type RunStartedEvent struct {
	ID        string
	Title     string
	Category  string
	Timestamp time.Time
}

func (e RunStartedEvent) EventType() string { return EventTypeRunStarted }
func (e RunStartedEvent) RunID() string     { return e.ID }

// GraphBuiltEvent is published when the task graph has been built and validated.
type GraphBuiltEvent struct {
	ID        string
	TaskCount int
	Timestamp time.Time
}

func (e GraphBuiltEvent) EventType() string { return EventTypeGraphBuilt }
func (e GraphBuiltEvent) RunID() string     { return e.ID }

// AnalysisCompletedEvent is published when the critical-path analysis finishes.
type AnalysisCompletedEvent struct {
	ID            string
	TotalEffort   int
	ProjectFinish int
	CriticalPath  []string
	Timestamp     time.Time
}

func (e AnalysisCompletedEvent) EventType() string { return EventTypeAnalysisCompleted }
func (e AnalysisCompletedEvent) RunID() string     { return e.ID }

// RunSavedEvent is published after a run is persisted to the store.
type RunSavedEvent struct {
	ID        string
	Timestamp time.Time
}

func (e RunSavedEvent) EventType() string { return EventTypeRunSaved }
func (e RunSavedEvent) RunID() string     { return e.ID }

// RunFailedEvent is published when any stage of a run fails.
type RunFailedEvent struct {
	ID        string
	Err       error
	Timestamp time.Time
}

func (e RunFailedEvent) EventType() string { return EventTypeRunFailed }
func (e RunFailedEvent) RunID() string     { return e.ID }
