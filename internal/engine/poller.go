package engine

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/dm/valuemon/internal/client"
)

// Status is the combined result of one pass over the three polled endpoints.
type Status struct {
	Logs      *client.LogBatch
	Actions   *client.ActionList
	Import    *client.ImportState
	FetchedAt time.Time
}

// FetchStatus calls /logs/, /getActions/ and /isImporting/ concurrently.
// If any of them fails, FetchStatus returns the first error.
func FetchStatus(ctx context.Context, c client.MonitorClient, deployment client.Deployment) (*Status, error) {
	var (
		logs    *client.LogBatch
		actions *client.ActionList
		state   *client.ImportState
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		logs, err = c.GetLogs(gctx)
		return err
	})

	g.Go(func() error {
		var err error
		actions, err = c.GetActions(gctx)
		return err
	})

	g.Go(func() error {
		var err error
		state, err = c.IsImporting(gctx, deployment)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &Status{
		Logs:      logs,
		Actions:   actions,
		Import:    state,
		FetchedAt: time.Now(),
	}, nil
}
