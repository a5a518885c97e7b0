// valuemon is a terminal dashboard for the value-import monitor server.
//
// Usage:
//
//	valuemon [global flags]            open the dashboard
//	valuemon [global flags] <command>  run one command and exit
//
// Commands:
//
//	deploy          Deploy actions to a deployment target
//	delete-actions  Delete the actions deployed to a target
//	import          Start a data import
//	clear-logs      Clear the server's value logs
//	clear-store     Clear the server's remote store
//	status          Print logger state, counters, action list and import state
//	chart           Render the value performance chart to PNG
//	version         Print the version
//
// Global Flags:
//
//	--config    Path to the YAML config (default: ~/.valuemon/config.yaml)
//	--server    Monitor server base URL
//	--data-dir  Directory for the state database and log file
//	--debug     Enable debug logging
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/dm/valuemon/internal/client"
	"github.com/dm/valuemon/internal/config"
	"github.com/dm/valuemon/internal/logging"
	"github.com/dm/valuemon/internal/store"
	"github.com/dm/valuemon/internal/tui"
)

var version = "dev"

// globals holds the persistent flag values shared by every command.
type globals struct {
	configPath string
	server     string
	dataDir    string
	debug      bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	g := &globals{}

	rootCmd := &cobra.Command{
		Use:   "valuemon",
		Short: "Terminal dashboard for the value-import monitor",
		Long: `valuemon polls the monitor server and shows the aimed and reached value
counts, the hourly estimate, the deployed action list and the import state.

Run without a command to open the dashboard. The commands below trigger the
same server actions as the dashboard keys and exit.`,
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDashboard(g)
		},
	}

	rootCmd.PersistentFlags().StringVar(&g.configPath, "config", defaultConfigPath(),
		"Path to the YAML config file")
	rootCmd.PersistentFlags().StringVar(&g.server, "server", "",
		"Monitor server base URL (overrides server_url)")
	rootCmd.PersistentFlags().StringVar(&g.dataDir, "data-dir", "",
		"Directory for the state database and log file (overrides data_dir)")
	rootCmd.PersistentFlags().BoolVar(&g.debug, "debug", false,
		"Enable debug logging")

	rootCmd.AddCommand(deployCmd(g))
	rootCmd.AddCommand(deleteActionsCmd(g))
	rootCmd.AddCommand(importCmd(g))
	rootCmd.AddCommand(clearLogsCmd(g))
	rootCmd.AddCommand(clearStoreCmd(g))
	rootCmd.AddCommand(statusCmd(g))
	rootCmd.AddCommand(chartCmd(g))
	rootCmd.AddCommand(versionCmd())

	return rootCmd
}

func defaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "valuemon.yaml"
	}
	return filepath.Join(home, ".valuemon", "config.yaml")
}

// loadConfig reads the config file, applies flag overrides and validates the
// merged result once.
func (g *globals) loadConfig() (*config.Config, error) {
	cfg, err := config.Read(g.configPath)
	if err != nil {
		return nil, err
	}
	if g.server != "" {
		cfg.ServerURL = g.server
	}
	if g.dataDir != "" {
		cfg.DataDir = g.dataDir
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func newClient(cfg *config.Config) (*client.DefaultClient, error) {
	return client.NewDefaultClient(client.ClientConfig{
		BaseURL:        cfg.ServerURL,
		RequestTimeout: cfg.Timeouts.Command,
	})
}

// cliLogger logs to w; one-shot commands own the terminal so w is stderr.
func (g *globals) cliLogger(cfg *config.Config, w io.Writer) *logging.Logger {
	return logging.New(w, cfg.Logging.Format, cfg.Logging.Level, g.debug).WithComponent("cli")
}

func dashboardOptions(cfg *config.Config) tui.Options {
	return tui.Options{
		LogsInterval:        cfg.Intervals.Logs,
		ActionsInterval:     cfg.Intervals.Actions,
		ImportStateInterval: cfg.Intervals.ImportState,
		PollTimeout:         cfg.Timeouts.Poll,
		ActionListTimeout:   cfg.Timeouts.ActionList,
		CommandTimeout:      cfg.Timeouts.Command,
		Deployment:          client.Deployment(cfg.Deployment),
		ImportCalls:         cfg.ImportCalls,
		ExportPath:          cfg.ExportPath,
	}
}

func runDashboard(g *globals) error {
	cfg, err := g.loadConfig()
	if err != nil {
		return err
	}

	log, logCloser, err := logging.NewFile(cfg.LogPath(), cfg.Logging.Format, cfg.Logging.Level, g.debug)
	if err != nil {
		return err
	}
	defer logCloser.Close()

	st, err := store.Open(cfg.StatePath())
	if err != nil {
		return err
	}
	defer st.Close()

	c, err := newClient(cfg)
	if err != nil {
		return err
	}

	log.Info("dashboard starting",
		"server", cfg.ServerURL,
		"state", st.Path(),
		"config", cfg.ConfigPath(),
	)

	app := tui.NewApp(c, st, log, dashboardOptions(cfg))
	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("dashboard: %w", err)
	}
	log.Info("dashboard stopped")
	return nil
}
