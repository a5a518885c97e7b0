package tui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/dm/valuemon/internal/client"
	"github.com/dm/valuemon/internal/engine"
	"github.com/dm/valuemon/internal/format"
	"github.com/dm/valuemon/internal/logging"
	"github.com/dm/valuemon/internal/model"
	"github.com/dm/valuemon/internal/store"
)

// Status strings shown by the pollers.
const (
	statusConnected     = "Monitor connected"
	statusUnreachable   = "Cannot reach server"
	statusPaused        = "Monitor paused"
	actionListAvailable = "ActionList available"
	actionListPaused    = "ActionList updates paused"
	importUpdatesPaused = "paused updates"
	labelDeployIdle     = "Deploy Actions"
	labelDeployRunning  = "DEPLOYING ACTIONS !!!"
	labelImportIdle     = "Import Data"
	labelImportRunning  = "Importing Data!!!"
)

// Options configures poll cadence, timeouts and initial control values.
type Options struct {
	LogsInterval        time.Duration
	ActionsInterval     time.Duration
	ImportStateInterval time.Duration
	PollTimeout         time.Duration
	ActionListTimeout   time.Duration
	CommandTimeout      time.Duration
	Deployment          client.Deployment
	ImportCalls         string
	ExportPath          string
}

// DefaultOptions returns the stock 15s/5s/5s cadence.
func DefaultOptions() Options {
	return Options{
		LogsInterval:        15 * time.Second,
		ActionsInterval:     5 * time.Second,
		ImportStateInterval: 5 * time.Second,
		PollTimeout:         15 * time.Second,
		ActionListTimeout:   15 * time.Second,
		CommandTimeout:      10 * time.Minute,
		Deployment:          client.DeploymentLocal,
		ImportCalls:         "1",
		ExportPath:          "value-performance.png",
	}
}

// App is the root Bubble Tea model for valuemon.
type App struct {
	client client.MonitorClient
	kv     store.KV
	log    *logging.Logger
	opts   Options

	// Chart, label cursor and rate buffer.
	agg *engine.Aggregator

	// Controls
	paused       bool
	deployment   int // index into client.Deployments
	fresh        bool
	calls        textinput.Model
	editingCalls bool

	// Log poller outputs
	loggerState   string
	serverLogging bool
	reachedCount  string
	aimedCount    string
	actionCount   string
	hourly        float64
	monitorStatus string
	lastUpdated   time.Time
	lastError     error

	// Action-list poller outputs
	actionItems      []string
	actionListStatus string

	// Import poller and command outputs
	importButton   button
	deployButton   button
	importStatus   string
	actionExpected string
	startTime      string
	notice         string

	// Delete confirmation
	confirmDelete bool

	// Layout
	width, height int

	// UI state
	showHelp bool
}

// NewApp creates a new App. A nil kv falls back to an in-memory store and a
// nil logger discards output.
func NewApp(c client.MonitorClient, kv store.KV, log *logging.Logger, opts Options) *App {
	if kv == nil {
		kv = store.NewMemory()
	}
	if log == nil {
		log = logging.Discard()
	}

	ti := textinput.New()
	ti.Prompt = ""
	ti.Placeholder = "calls"
	ti.CharLimit = 9
	ti.Width = 9
	ti.Validate = validateCalls
	ti.SetValue(opts.ImportCalls)

	app := &App{
		client:       c,
		kv:           kv,
		log:          log.WithComponent("tui"),
		opts:         opts,
		agg:          engine.NewAggregatorEvery(opts.LogsInterval),
		calls:        ti,
		reachedCount: "0",
		aimedCount:   "0",
		actionCount:  "0",
		importButton: button{Label: labelImportIdle, Kind: buttonWarning},
		deployButton: button{Label: labelDeployIdle, Kind: buttonWarning},
	}
	for i, d := range client.Deployments {
		if d == opts.Deployment {
			app.deployment = i
		}
	}
	app.startTime = app.loadKey(store.KeyStartTime)
	return app
}

// Init implements tea.Model. All three pollers fire immediately; each tick
// then re-arms itself.
func (app *App) Init() tea.Cmd {
	now := time.Now()
	return tea.Batch(
		func() tea.Msg { return LogsTickMsg(now) },
		func() tea.Msg { return ActionsTickMsg(now) },
		func() tea.Msg { return ImportStateTickMsg(now) },
	)
}

// Update implements tea.Model. It is the only place state changes.
func (app *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		app.width = msg.Width
		app.height = msg.Height

	case LogsTickMsg:
		next := tickCmd(app.opts.LogsInterval, func(t time.Time) tea.Msg { return LogsTickMsg(t) })
		if app.paused {
			app.monitorStatus = statusPaused
			return app, next
		}
		return app, tea.Batch(next, logsCmd(app.client, app.opts.PollTimeout, false))

	case ActionsTickMsg:
		next := tickCmd(app.opts.ActionsInterval, func(t time.Time) tea.Msg { return ActionsTickMsg(t) })
		if app.paused {
			app.actionListStatus = actionListPaused
			return app, next
		}
		return app, tea.Batch(next, actionsCmd(app.client, app.opts.ActionListTimeout))

	case ImportStateTickMsg:
		next := tickCmd(app.opts.ImportStateInterval, func(t time.Time) tea.Msg { return ImportStateTickMsg(t) })
		if app.paused {
			app.importStatus = importUpdatesPaused
			return app, next
		}
		return app, tea.Batch(next, importStateCmd(app.client, app.selectedDeployment(), app.opts.PollTimeout))

	case LogsMsg:
		var sum model.LogSummary
		if msg.Manual {
			sum = app.agg.Refresh(msg.Batch)
		} else {
			sum = app.agg.Apply(msg.Batch)
		}
		app.loggerState = sum.LoggerState
		app.serverLogging = sum.Logging
		app.reachedCount = sum.ReachedCount
		app.aimedCount = sum.AimedCount
		app.actionCount = sum.ActionCount
		app.hourly = sum.Hourly
		app.monitorStatus = statusConnected
		app.lastUpdated = msg.FetchedAt
		app.lastError = nil
		app.log.Debug("logs applied", "points", sum.Points, "hourly", sum.Hourly)

	case LogsErrorMsg:
		app.monitorStatus = statusUnreachable
		app.lastError = msg.Err
		app.log.LogRequestError("/logs/", msg.Err)

	case ActionsMsg:
		var message string
		if msg.List != nil {
			message = msg.List.Message
		}
		app.actionItems = ParseActionList(message)
		app.actionListStatus = actionListAvailable

	case ActionsErrorMsg:
		app.actionListStatus = statusUnreachable
		app.log.LogRequestError("/getActions/", msg.Err)

	case ImportStateMsg:
		app.actionExpected = app.loadKey(store.KeyActionExpected)
		if msg.State == nil || !msg.State.Importing() {
			app.importButton = button{Label: labelImportIdle, Kind: buttonWarning}
		} else {
			app.importButton = button{Label: labelImportRunning, Kind: buttonSuccess}
		}

	case ImportStateErrorMsg:
		app.log.LogRequestError("/isImporting/", msg.Err)

	case DeployResultMsg:
		app.deployButton = button{Label: labelDeployIdle, Kind: buttonWarning}
		if msg.Err != nil {
			app.log.LogRequestError("/deploy/", msg.Err)
		}

	case DeleteActionsResultMsg:
		if msg.Err != nil {
			app.log.LogRequestError("/deleteActions/", msg.Err)
		}

	case ImportResultMsg:
		if msg.Err != nil {
			app.log.LogRequestError("/import/", msg.Err)
			return app, nil
		}
		expected := "0"
		if msg.Result != nil {
			expected = strconv.Itoa(msg.Result.ActionsExpected)
		}
		started := format.FormatTimestamp(msg.StartedAt)
		app.actionExpected = expected
		app.saveKey(store.KeyActionExpected, expected)
		app.saveKey(store.KeyStartTime, started)
		app.startTime = app.loadKey(store.KeyStartTime)

	case ClearResultMsg:
		if msg.Err != nil {
			app.log.LogRequestError(msg.Endpoint, msg.Err)
		}

	case ExportResultMsg:
		if msg.Err != nil {
			app.notice = "export failed: " + msg.Err.Error()
			app.log.Warn("chart export failed", "path", msg.Path, "error", msg.Err)
		} else {
			app.notice = "chart written to " + msg.Path
			app.log.Info("chart exported", "path", msg.Path)
		}

	case tea.KeyMsg:
		return app.handleKey(msg)
	}

	return app, nil
}

func (app *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if app.confirmDelete {
		switch {
		case key.Matches(msg, keys.Confirm):
			app.confirmDelete = false
			return app, deleteActionsCmd(app.client, app.selectedDeployment(), app.opts.CommandTimeout)
		case key.Matches(msg, keys.Cancel):
			app.confirmDelete = false
		}
		return app, nil
	}

	if app.editingCalls {
		switch {
		case key.Matches(msg, keys.Enter), key.Matches(msg, keys.Escape):
			app.editingCalls = false
			app.calls.Blur()
			return app, nil
		}
		if msg.Type == tea.KeyRunes && !onlyDigits(msg.Runes) {
			return app, nil
		}
		var cmd tea.Cmd
		app.calls, cmd = app.calls.Update(msg)
		return app, cmd
	}

	switch {
	case key.Matches(msg, keys.Quit):
		return app, tea.Quit
	case key.Matches(msg, keys.Refresh):
		return app, app.refreshCmd()
	case key.Matches(msg, keys.Help):
		app.showHelp = !app.showHelp
	case key.Matches(msg, keys.Pause):
		app.paused = !app.paused
	case key.Matches(msg, keys.Deployment):
		app.deployment = (app.deployment + 1) % len(client.Deployments)
	case key.Matches(msg, keys.Fresh):
		app.fresh = !app.fresh
	case key.Matches(msg, keys.EditCalls):
		app.editingCalls = true
		return app, app.calls.Focus()
	case key.Matches(msg, keys.Deploy):
		app.deployButton = button{Label: labelDeployRunning, Kind: buttonDanger}
		return app, deployCmd(app.client, app.selectedDeployment(), app.fresh, app.opts.CommandTimeout)
	case key.Matches(msg, keys.DeleteActions):
		app.confirmDelete = true
	case key.Matches(msg, keys.Import):
		return app, importCmd(app.client, strings.TrimSpace(app.calls.Value()), app.opts.CommandTimeout)
	case key.Matches(msg, keys.ClearLogs):
		return app, clearLogsCmd(app.client, app.opts.CommandTimeout)
	case key.Matches(msg, keys.ClearStore):
		return app, clearStoreCmd(app.client, app.opts.CommandTimeout)
	case key.Matches(msg, keys.Export):
		return app, exportCmd(app.agg.Series().Clone(), app.opts.ExportPath)
	}
	return app, nil
}

// refreshCmd runs every unpaused poller once without touching the tick schedule.
func (app *App) refreshCmd() tea.Cmd {
	if app.paused {
		return nil
	}
	return tea.Batch(
		logsCmd(app.client, app.opts.PollTimeout, true),
		actionsCmd(app.client, app.opts.ActionListTimeout),
		importStateCmd(app.client, app.selectedDeployment(), app.opts.PollTimeout),
	)
}

// View implements tea.Model. Renders the full TUI.
func (app *App) View() string {
	if app.confirmDelete {
		return strings.Join([]string{
			renderHeader(app),
			renderDeleteConfirm(app),
			renderFooter(app),
		}, "\n")
	}

	var parts []string

	parts = append(parts, renderHeader(app))
	if s := renderLoggerState(app); s != "" {
		parts = append(parts, s)
	}
	parts = append(parts, renderCountersRow(app))
	parts = append(parts, renderChart(app.agg.Series(), app.chartWidth(), chartHeight))
	parts = append(parts, renderBottomRow(app))
	parts = append(parts, renderFooter(app))

	return strings.Join(parts, "\n")
}

// validateCalls accepts an empty or all-digit import call count.
func validateCalls(s string) error {
	if !onlyDigits([]rune(s)) {
		return fmt.Errorf("calls must be a number, got %q", s)
	}
	return nil
}

func onlyDigits(rs []rune) bool {
	for _, r := range rs {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func (app *App) selectedDeployment() client.Deployment {
	return client.Deployments[app.deployment]
}

func (app *App) chartWidth() int {
	if app.width <= 0 {
		return 80
	}
	return app.width
}

func (app *App) loadKey(k string) string {
	v, _, err := app.kv.Get(k)
	if err != nil {
		app.log.Warn("read persisted field", "key", k, "error", err)
	}
	return v
}

func (app *App) saveKey(k, v string) {
	if err := app.kv.Set(k, v); err != nil {
		app.log.Warn("persist field", "key", k, "error", err)
	}
}
