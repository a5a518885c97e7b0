package tui

import (
	"time"

	"github.com/dm/valuemon/internal/client"
)

// Tick messages, one per poller.
type (
	LogsTickMsg        time.Time
	ActionsTickMsg     time.Time
	ImportStateTickMsg time.Time
)

// LogsMsg delivers a successful /logs/ poll. Manual polls do not add an
// hourly-rate entry.
type LogsMsg struct {
	Batch     *client.LogBatch
	FetchedAt time.Time
	Manual    bool
}

// LogsErrorMsg signals a /logs/ failure.
type LogsErrorMsg struct{ Err error }

// ActionsMsg delivers a successful /getActions/ poll.
type ActionsMsg struct{ List *client.ActionList }

// ActionsErrorMsg signals a /getActions/ failure or timeout.
type ActionsErrorMsg struct{ Err error }

// ImportStateMsg delivers a successful /isImporting/ poll.
type ImportStateMsg struct{ State *client.ImportState }

// ImportStateErrorMsg signals an /isImporting/ failure.
type ImportStateErrorMsg struct{ Err error }

// DeployResultMsg reports completion of a deploy request.
type DeployResultMsg struct{ Err error }

// DeleteActionsResultMsg reports completion of a delete-actions request.
type DeleteActionsResultMsg struct {
	Deployment client.Deployment
	Err        error
}

// ImportResultMsg reports completion of an import request.
type ImportResultMsg struct {
	Result    *client.ImportResult
	StartedAt time.Time
	Err       error
}

// ClearResultMsg reports completion of a clear-logs or clear-store request.
type ClearResultMsg struct {
	Endpoint string
	Err      error
}

// ExportResultMsg reports the outcome of a chart PNG export.
type ExportResultMsg struct {
	Path string
	Err  error
}
