package engine

import (
	"context"
	"errors"

	"github.com/dm/valuemon/internal/client"
)

// MockMonitorClient implements client.MonitorClient for testing.
type MockMonitorClient struct {
	LogsFn        func(ctx context.Context) (*client.LogBatch, error)
	ActionsFn     func(ctx context.Context) (*client.ActionList, error)
	IsImportingFn func(ctx context.Context, d client.Deployment) (*client.ImportState, error)
}

func (m *MockMonitorClient) GetLogs(ctx context.Context) (*client.LogBatch, error) {
	if m.LogsFn != nil {
		return m.LogsFn(ctx)
	}
	return &client.LogBatch{LogState: client.LogStateLogging}, nil
}

func (m *MockMonitorClient) GetActions(ctx context.Context) (*client.ActionList, error) {
	if m.ActionsFn != nil {
		return m.ActionsFn(ctx)
	}
	return &client.ActionList{}, nil
}

func (m *MockMonitorClient) IsImporting(ctx context.Context, d client.Deployment) (*client.ImportState, error) {
	if m.IsImportingFn != nil {
		return m.IsImportingFn(ctx, d)
	}
	return &client.ImportState{Message: client.NoImport}, nil
}

func (m *MockMonitorClient) Deploy(ctx context.Context, d client.Deployment, fresh bool) error {
	return nil
}

func (m *MockMonitorClient) DeleteActions(ctx context.Context, d client.Deployment) error {
	return nil
}

func (m *MockMonitorClient) Import(ctx context.Context, calls string) (*client.ImportResult, error) {
	return &client.ImportResult{}, nil
}

func (m *MockMonitorClient) ClearLogs(ctx context.Context) error  { return nil }
func (m *MockMonitorClient) ClearStore(ctx context.Context) error { return nil }

func (m *MockMonitorClient) BaseURL() string {
	return "http://mock:5000"
}

var errMockFailure = errors.New("mock failure")
