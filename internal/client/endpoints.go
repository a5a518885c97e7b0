package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
)

const (
	endpointLogs          = "/logs/"
	endpointActions       = "/getActions/"
	endpointIsImporting   = "/isImporting/"
	endpointDeploy        = "/deploy/"
	endpointDeleteActions = "/deleteActions/"
	endpointImport        = "/import/"
	endpointClearLogs     = "/clearLogs/"
	endpointClearStore    = "/clearMongo/"
)

// GetLogs fetches the latest log records from /logs/.
func (c *DefaultClient) GetLogs(ctx context.Context) (*LogBatch, error) {
	body, err := c.doGet(ctx, endpointLogs, nil)
	if err != nil {
		return nil, fmt.Errorf("GetLogs: %w", err)
	}

	var result LogBatch
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("GetLogs decode: %w", err)
	}
	return &result, nil
}

// GetActions fetches the pre-rendered action list from /getActions/.
func (c *DefaultClient) GetActions(ctx context.Context) (*ActionList, error) {
	body, err := c.doGet(ctx, endpointActions, nil)
	if err != nil {
		return nil, fmt.Errorf("GetActions: %w", err)
	}

	var result ActionList
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("GetActions decode: %w", err)
	}
	return &result, nil
}

// IsImporting asks /isImporting/ whether an import is running for deployment.
func (c *DefaultClient) IsImporting(ctx context.Context, deployment Deployment) (*ImportState, error) {
	params := url.Values{"deployment": {string(deployment)}}
	body, err := c.doGet(ctx, endpointIsImporting, params)
	if err != nil {
		return nil, fmt.Errorf("IsImporting: %w", err)
	}

	var result ImportState
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("IsImporting decode: %w", err)
	}
	return &result, nil
}

// Deploy asks the server to deploy the configured actions. The response body
// carries nothing the client uses.
func (c *DefaultClient) Deploy(ctx context.Context, deployment Deployment, fresh bool) error {
	params := url.Values{
		"deployment": {string(deployment)},
		"fresh":      {strconv.FormatBool(fresh)},
	}
	if _, err := c.doGet(ctx, endpointDeploy, params); err != nil {
		return fmt.Errorf("Deploy: %w", err)
	}
	return nil
}

// DeleteActions asks the server to delete every configured action.
func (c *DefaultClient) DeleteActions(ctx context.Context, deployment Deployment) error {
	params := url.Values{"deployment": {string(deployment)}}
	if _, err := c.doGet(ctx, endpointDeleteActions, params); err != nil {
		return fmt.Errorf("DeleteActions: %w", err)
	}
	return nil
}

// Import starts an import on the server scaled by calls.
func (c *DefaultClient) Import(ctx context.Context, calls string) (*ImportResult, error) {
	params := url.Values{"calls": {calls}}
	body, err := c.doGet(ctx, endpointImport, params)
	if err != nil {
		return nil, fmt.Errorf("Import: %w", err)
	}

	var result ImportResult
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("Import decode: %w", err)
	}
	return &result, nil
}

// ClearLogs empties the server's local log file.
func (c *DefaultClient) ClearLogs(ctx context.Context) error {
	if _, err := c.doGet(ctx, endpointClearLogs, nil); err != nil {
		return fmt.Errorf("ClearLogs: %w", err)
	}
	return nil
}

// ClearStore wipes the server-side sensor mappings.
func (c *DefaultClient) ClearStore(ctx context.Context) error {
	if _, err := c.doGet(ctx, endpointClearStore, nil); err != nil {
		return fmt.Errorf("ClearStore: %w", err)
	}
	return nil
}
