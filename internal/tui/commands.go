package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/dm/valuemon/internal/client"
	"github.com/dm/valuemon/internal/export"
	"github.com/dm/valuemon/internal/model"
)

// tickCmd schedules the next firing of a poller after duration d.
func tickCmd(d time.Duration, fn func(time.Time) tea.Msg) tea.Cmd {
	return tea.Tick(d, fn)
}

// logsCmd fetches /logs/ and returns a LogsMsg or LogsErrorMsg. manual marks
// a poll triggered by the refresh key rather than the tick.
func logsCmd(c client.MonitorClient, timeout time.Duration, manual bool) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		batch, err := c.GetLogs(ctx)
		if err != nil {
			return LogsErrorMsg{Err: err}
		}
		return LogsMsg{Batch: batch, FetchedAt: time.Now(), Manual: manual}
	}
}

// actionsCmd fetches /getActions/. Its timeout is independent of the poll
// interval, so several requests may be in flight at once.
func actionsCmd(c client.MonitorClient, timeout time.Duration) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		list, err := c.GetActions(ctx)
		if err != nil {
			return ActionsErrorMsg{Err: err}
		}
		return ActionsMsg{List: list}
	}
}

// importStateCmd asks /isImporting/ about the selected deployment.
func importStateCmd(c client.MonitorClient, d client.Deployment, timeout time.Duration) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		state, err := c.IsImporting(ctx, d)
		if err != nil {
			return ImportStateErrorMsg{Err: err}
		}
		return ImportStateMsg{State: state}
	}
}

func deployCmd(c client.MonitorClient, d client.Deployment, fresh bool, timeout time.Duration) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		return DeployResultMsg{Err: c.Deploy(ctx, d, fresh)}
	}
}

func deleteActionsCmd(c client.MonitorClient, d client.Deployment, timeout time.Duration) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		return DeleteActionsResultMsg{Deployment: d, Err: c.DeleteActions(ctx, d)}
	}
}

// importCmd starts an import. StartedAt is taken when the server answers.
func importCmd(c client.MonitorClient, calls string, timeout time.Duration) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		res, err := c.Import(ctx, calls)
		return ImportResultMsg{Result: res, StartedAt: time.Now(), Err: err}
	}
}

func clearLogsCmd(c client.MonitorClient, timeout time.Duration) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		return ClearResultMsg{Endpoint: "/clearLogs/", Err: c.ClearLogs(ctx)}
	}
}

func clearStoreCmd(c client.MonitorClient, timeout time.Duration) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		return ClearResultMsg{Endpoint: "/clearMongo/", Err: c.ClearStore(ctx)}
	}
}

// exportCmd writes a snapshot of the series to path as PNG.
func exportCmd(s *model.ChartSeries, path string) tea.Cmd {
	return func() tea.Msg {
		return ExportResultMsg{Path: path, Err: export.WritePNG(s, path)}
	}
}
