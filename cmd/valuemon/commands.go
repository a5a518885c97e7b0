package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/dm/valuemon/internal/client"
	"github.com/dm/valuemon/internal/config"
	"github.com/dm/valuemon/internal/engine"
	"github.com/dm/valuemon/internal/export"
	"github.com/dm/valuemon/internal/format"
	"github.com/dm/valuemon/internal/store"
	"github.com/dm/valuemon/internal/tui"
)

// commandContext bounds a one-shot command by the configured command timeout.
func commandContext(cmd *cobra.Command, cfg *config.Config) (context.Context, context.CancelFunc) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithTimeout(ctx, cfg.Timeouts.Command)
}

// resolveDeployment returns the --deployment flag value, falling back to the
// configured default.
func resolveDeployment(flag string, cfg *config.Config) (client.Deployment, error) {
	if flag == "" {
		flag = cfg.Deployment
	}
	return client.ParseDeployment(strings.ToUpper(flag))
}

func deployCmd(g *globals) *cobra.Command {
	var deployment string
	var fresh bool

	cmd := &cobra.Command{
		Use:   "deploy",
		Short: "Deploy actions to a deployment target",
		Long: `Deploy asks the server to deploy its actions to IBM, REMOTE or LOCAL.

Use --fresh to redeploy from scratch.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := g.loadConfig()
			if err != nil {
				return err
			}
			d, err := resolveDeployment(deployment, cfg)
			if err != nil {
				return err
			}
			c, err := newClient(cfg)
			if err != nil {
				return err
			}
			log := g.cliLogger(cfg, cmd.ErrOrStderr())

			ctx, cancel := commandContext(cmd, cfg)
			defer cancel()

			log.Debug("deploying actions", "deployment", d, "fresh", fresh)
			if err := c.Deploy(ctx, d, fresh); err != nil {
				log.LogRequestError("/deploy/", err)
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deployed actions to %s (fresh=%t)\n", d, fresh)
			return nil
		},
	}

	cmd.Flags().StringVar(&deployment, "deployment", "", "Deployment target: IBM, REMOTE or LOCAL (default from config)")
	cmd.Flags().BoolVar(&fresh, "fresh", false, "Redeploy from scratch")

	return cmd
}

func deleteActionsCmd(g *globals) *cobra.Command {
	var deployment string
	var yes bool

	cmd := &cobra.Command{
		Use:   "delete-actions",
		Short: "Delete the actions deployed to a target",
		Long: `Delete-actions removes every action deployed to the selected target.
This cannot be undone, so --yes is required.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := g.loadConfig()
			if err != nil {
				return err
			}
			d, err := resolveDeployment(deployment, cfg)
			if err != nil {
				return err
			}
			if !yes {
				return fmt.Errorf("refusing to delete actions on %s without --yes", d)
			}
			c, err := newClient(cfg)
			if err != nil {
				return err
			}
			log := g.cliLogger(cfg, cmd.ErrOrStderr())

			ctx, cancel := commandContext(cmd, cfg)
			defer cancel()

			if err := c.DeleteActions(ctx, d); err != nil {
				log.LogRequestError("/deleteActions/", err)
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted actions on %s\n", d)
			return nil
		},
	}

	cmd.Flags().StringVar(&deployment, "deployment", "", "Deployment target: IBM, REMOTE or LOCAL (default from config)")
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Confirm the deletion")

	return cmd
}

func importCmd(g *globals) *cobra.Command {
	var calls string

	cmd := &cobra.Command{
		Use:   "import",
		Short: "Start a data import",
		Long: `Import asks the server to import data with the given number of calls.

The expected action count and the start time are saved to the state database,
so the dashboard shows them on its next launch.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := g.loadConfig()
			if err != nil {
				return err
			}
			if calls == "" {
				calls = cfg.ImportCalls
			}
			c, err := newClient(cfg)
			if err != nil {
				return err
			}
			log := g.cliLogger(cfg, cmd.ErrOrStderr())

			st, err := store.Open(cfg.StatePath())
			if err != nil {
				return err
			}
			defer st.Close()

			ctx, cancel := commandContext(cmd, cfg)
			defer cancel()

			res, err := c.Import(ctx, calls)
			if err != nil {
				log.LogRequestError("/import/", err)
				return err
			}
			started := format.FormatTimestamp(time.Now())
			if err := recordImport(st, res, started); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Import started at %s, %s actions expected\n",
				started, format.FormatNumber(int64(res.ActionsExpected)))
			return nil
		},
	}

	cmd.Flags().StringVar(&calls, "calls", "", "Number of import calls (default from config)")

	return cmd
}

// recordImport persists the fields the dashboard shows for the last import.
func recordImport(kv store.KV, res *client.ImportResult, started string) error {
	if err := kv.Set(store.KeyActionExpected, strconv.Itoa(res.ActionsExpected)); err != nil {
		return fmt.Errorf("save expected actions: %w", err)
	}
	if err := kv.Set(store.KeyStartTime, started); err != nil {
		return fmt.Errorf("save start time: %w", err)
	}
	return nil
}

func clearLogsCmd(g *globals) *cobra.Command {
	return &cobra.Command{
		Use:   "clear-logs",
		Short: "Clear the server's value logs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runClear(cmd, g, "/clearLogs/", func(ctx context.Context, c client.MonitorClient) error {
				return c.ClearLogs(ctx)
			})
		},
	}
}

func clearStoreCmd(g *globals) *cobra.Command {
	return &cobra.Command{
		Use:   "clear-store",
		Short: "Clear the server's remote store",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runClear(cmd, g, "/clearMongo/", func(ctx context.Context, c client.MonitorClient) error {
				return c.ClearStore(ctx)
			})
		},
	}
}

func runClear(cmd *cobra.Command, g *globals, endpoint string, fn func(context.Context, client.MonitorClient) error) error {
	cfg, err := g.loadConfig()
	if err != nil {
		return err
	}
	c, err := newClient(cfg)
	if err != nil {
		return err
	}
	log := g.cliLogger(cfg, cmd.ErrOrStderr())

	ctx, cancel := commandContext(cmd, cfg)
	defer cancel()

	if err := fn(ctx, c); err != nil {
		log.LogRequestError(endpoint, err)
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Requested %s\n", endpoint)
	return nil
}

func statusCmd(g *globals) *cobra.Command {
	var deployment string

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Print logger state, counters, action list and import state",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := g.loadConfig()
			if err != nil {
				return err
			}
			d, err := resolveDeployment(deployment, cfg)
			if err != nil {
				return err
			}
			c, err := newClient(cfg)
			if err != nil {
				return err
			}
			log := g.cliLogger(cfg, cmd.ErrOrStderr())

			ctx, cancel := context.WithTimeout(cmd.Context(), cfg.Timeouts.Poll)
			defer cancel()

			status, err := engine.FetchStatus(ctx, c, d)
			if err != nil {
				log.LogRequestError("status", err)
				return fmt.Errorf("cannot reach server %s: %w", c.BaseURL(), err)
			}

			// Persisted fields are informational; a missing database is not an error.
			var expected, started string
			if st, err := store.Open(cfg.StatePath()); err == nil {
				expected, _, _ = st.Get(store.KeyActionExpected)
				started, _, _ = st.Get(store.KeyStartTime)
				st.Close()
			}

			printStatus(cmd.OutOrStdout(), c.BaseURL(), d, status, expected, started)
			return nil
		},
	}

	cmd.Flags().StringVar(&deployment, "deployment", "", "Deployment target for the import state (default from config)")

	return cmd
}

func printStatus(w io.Writer, server string, d client.Deployment, status *engine.Status, expected, started string) {
	sum := engine.NewAggregator().Apply(status.Logs)

	importing := "no"
	if status.Import != nil && status.Import.Importing() {
		importing = "yes (" + status.Import.Message + ")"
	}
	if expected == "" {
		expected = "-"
	}
	if started == "" {
		started = "-"
	}

	fmt.Fprintf(w, `
Monitor Status
───────────────────────────────
  Server:      %s
  Logger:      %s
  Points:      %d
  Reached:     %s
  Aimed:       %s
  Actions:     %s
  Importing:   %s [%s]
  Expected:    %s
  Start time:  %s
`, server, sum.LoggerState, sum.Points,
		format.FormatCount(sum.ReachedCount), format.FormatCount(sum.AimedCount),
		format.FormatCount(sum.ActionCount), importing, d, expected, started)

	var message string
	if status.Actions != nil {
		message = status.Actions.Message
	}
	items := tui.ParseActionList(message)
	fmt.Fprintf(w, "\nAction List (%d)\n", len(items))
	fmt.Fprintln(w, "───────────────────────────────")
	for _, item := range items {
		fmt.Fprintf(w, "  %s\n", item)
	}
}

func chartCmd(g *globals) *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "chart",
		Short: "Render the value performance chart to PNG",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := g.loadConfig()
			if err != nil {
				return err
			}
			if out == "" {
				out = cfg.ExportPath
			}
			c, err := newClient(cfg)
			if err != nil {
				return err
			}
			log := g.cliLogger(cfg, cmd.ErrOrStderr())

			ctx, cancel := context.WithTimeout(cmd.Context(), cfg.Timeouts.Poll)
			defer cancel()

			batch, err := c.GetLogs(ctx)
			if err != nil {
				log.LogRequestError("/logs/", err)
				return err
			}

			agg := engine.NewAggregator()
			sum := agg.Apply(batch)
			if err := export.WritePNG(agg.Series(), out); err != nil {
				if errors.Is(err, export.ErrNotEnoughPoints) {
					return fmt.Errorf("server returned %d log records: %w", sum.Points, err)
				}
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d points to %s\n", sum.Points, out)
			return nil
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "", "Output PNG path (default from config export_path)")

	return cmd
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "valuemon version %s\n", version)
		},
	}
}
