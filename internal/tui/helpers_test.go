package tui

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/dm/valuemon/internal/client"
	"github.com/dm/valuemon/internal/store"
)

var errServerDown = errors.New("dial tcp: connection refused")

// tuiMockClient implements client.MonitorClient with function fields and
// per-endpoint call counters.
type tuiMockClient struct {
	mu    sync.Mutex
	calls map[string]int

	LogsFn        func(ctx context.Context) (*client.LogBatch, error)
	ActionsFn     func(ctx context.Context) (*client.ActionList, error)
	IsImportingFn func(ctx context.Context, d client.Deployment) (*client.ImportState, error)
	DeployFn      func(ctx context.Context, d client.Deployment, fresh bool) error
	DeleteFn      func(ctx context.Context, d client.Deployment) error
	ImportFn      func(ctx context.Context, calls string) (*client.ImportResult, error)
	ClearErr      error
}

func (m *tuiMockClient) record(endpoint string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.calls == nil {
		m.calls = make(map[string]int)
	}
	m.calls[endpoint]++
}

func (m *tuiMockClient) count(endpoint string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls[endpoint]
}

func (m *tuiMockClient) GetLogs(ctx context.Context) (*client.LogBatch, error) {
	m.record("/logs/")
	if m.LogsFn != nil {
		return m.LogsFn(ctx)
	}
	return &client.LogBatch{LogState: client.LogStateLogging}, nil
}

func (m *tuiMockClient) GetActions(ctx context.Context) (*client.ActionList, error) {
	m.record("/getActions/")
	if m.ActionsFn != nil {
		return m.ActionsFn(ctx)
	}
	return &client.ActionList{}, nil
}

func (m *tuiMockClient) IsImporting(ctx context.Context, d client.Deployment) (*client.ImportState, error) {
	m.record("/isImporting/")
	if m.IsImportingFn != nil {
		return m.IsImportingFn(ctx, d)
	}
	return &client.ImportState{Message: client.NoImport}, nil
}

func (m *tuiMockClient) Deploy(ctx context.Context, d client.Deployment, fresh bool) error {
	m.record("/deploy/")
	if m.DeployFn != nil {
		return m.DeployFn(ctx, d, fresh)
	}
	return nil
}

func (m *tuiMockClient) DeleteActions(ctx context.Context, d client.Deployment) error {
	m.record("/deleteActions/")
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, d)
	}
	return nil
}

func (m *tuiMockClient) Import(ctx context.Context, calls string) (*client.ImportResult, error) {
	m.record("/import/")
	if m.ImportFn != nil {
		return m.ImportFn(ctx, calls)
	}
	return &client.ImportResult{}, nil
}

func (m *tuiMockClient) ClearLogs(ctx context.Context) error {
	m.record("/clearLogs/")
	return m.ClearErr
}

func (m *tuiMockClient) ClearStore(ctx context.Context) error {
	m.record("/clearMongo/")
	return m.ClearErr
}

func (m *tuiMockClient) BaseURL() string { return "http://localhost:5000" }

// testOptions keeps tick intervals short so executed tick commands return
// promptly.
func testOptions() Options {
	opts := DefaultOptions()
	opts.LogsInterval = time.Millisecond
	opts.ActionsInterval = time.Millisecond
	opts.ImportStateInterval = time.Millisecond
	opts.PollTimeout = time.Second
	opts.ActionListTimeout = time.Second
	opts.CommandTimeout = time.Second
	return opts
}

func newTestApp(t *testing.T, c client.MonitorClient) (*App, *store.Memory) {
	t.Helper()
	return newTestAppWith(t, c, testOptions())
}

func newTestAppWith(t *testing.T, c client.MonitorClient, opts Options) (*App, *store.Memory) {
	t.Helper()
	kv := store.NewMemory()
	return NewApp(c, kv, nil, opts), kv
}

// pollingEvery returns test options whose logs interval drives the hourly
// projection.
func pollingEvery(d time.Duration) Options {
	opts := testOptions()
	opts.LogsInterval = d
	return opts
}

// runCmd executes cmd and any batched commands it expands to, returning every
// resulting message.
func runCmd(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, runCmd(c)...)
		}
		return out
	}
	if msg == nil {
		return nil
	}
	return []tea.Msg{msg}
}

// feed applies msgs to app in order, discarding the returned commands.
func feed(app *App, msgs ...tea.Msg) *App {
	for _, msg := range msgs {
		m, _ := app.Update(msg)
		app = m.(*App)
	}
	return app
}

func keyMsg(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// stripANSI removes ANSI CSI escape sequences for plain-text content assertions.
func stripANSI(s string) string {
	var out strings.Builder
	rs := []rune(s)
	for i := 0; i < len(rs); i++ {
		if rs[i] == '\x1b' && i+1 < len(rs) && rs[i+1] == '[' {
			j := i + 2
			for j < len(rs) && (rs[j] < 0x40 || rs[j] > 0x7e) {
				j++
			}
			i = j
			continue
		}
		out.WriteRune(rs[i])
	}
	return out.String()
}
