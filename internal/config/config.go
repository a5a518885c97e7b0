package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/dm/valuemon/internal/client"
)

type IntervalConfig struct {
	Logs        time.Duration `yaml:"logs"`         // /logs/ poll interval
	Actions     time.Duration `yaml:"actions"`      // /getActions/ poll interval
	ImportState time.Duration `yaml:"import_state"` // /isImporting/ poll interval
}

type TimeoutConfig struct {
	Poll       time.Duration `yaml:"poll"`        // per-request timeout for /logs/ and /isImporting/
	ActionList time.Duration `yaml:"action_list"` // per-request timeout for /getActions/
	Command    time.Duration `yaml:"command"`     // deploy, import, delete and clear requests
}

type LoggingConfig struct {
	Level  string `yaml:"level"`  // "debug", "info", "warn" or "error" (default "info")
	Format string `yaml:"format"` // "json" or "text" (default "text")
}

type Config struct {
	ServerURL   string         `yaml:"server_url"`   // Monitor server base URL
	Deployment  string         `yaml:"deployment"`   // Initially selected deployment target
	ImportCalls string         `yaml:"import_calls"` // Initial value of the import calls input
	DataDir     string         `yaml:"data_dir"`     // Directory for the state database and log file
	ExportPath  string         `yaml:"export_path"`  // PNG path written by chart export
	Intervals   IntervalConfig `yaml:"intervals"`
	Timeouts    TimeoutConfig  `yaml:"timeouts"`
	Logging     LoggingConfig  `yaml:"logging"`

	configPath string `yaml:"-"`
}

// ConfigPath returns the path the config was loaded from, or "" for defaults.
func (c *Config) ConfigPath() string { return c.configPath }

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		ServerURL:   "http://localhost:5000",
		Deployment:  string(client.DeploymentLocal),
		ImportCalls: "1",
		DataDir:     defaultDataDir(),
		ExportPath:  "value-performance.png",
		Intervals: IntervalConfig{
			Logs:        15 * time.Second,
			Actions:     5 * time.Second,
			ImportState: 5 * time.Second,
		},
		Timeouts: TimeoutConfig{
			Poll:       15 * time.Second,
			ActionList: 15 * time.Second,
			Command:    10 * time.Minute,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// Load reads the YAML file at path over the defaults and validates the
// result. An empty path or a missing file yields the defaults.
func Load(path string) (*Config, error) {
	cfg, err := Read(path)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Read is Load without validation, for callers that apply overrides first.
func Read(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	cfg.configPath = path
	return cfg, nil
}

// Validate checks field values, upper-cases Deployment and expands "~" in
// DataDir.
func (c *Config) Validate() error {
	u, err := url.Parse(c.ServerURL)
	if err != nil {
		return fmt.Errorf("server_url %q: %w", c.ServerURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("server_url: unsupported scheme %q (must be http or https)", u.Scheme)
	}
	if u.Hostname() == "" {
		return fmt.Errorf("server_url %q: host is required", c.ServerURL)
	}

	c.Deployment = strings.ToUpper(strings.TrimSpace(c.Deployment))
	if _, err := client.ParseDeployment(c.Deployment); err != nil {
		return fmt.Errorf("deployment: %w", err)
	}

	durations := map[string]time.Duration{
		"intervals.logs":         c.Intervals.Logs,
		"intervals.actions":      c.Intervals.Actions,
		"intervals.import_state": c.Intervals.ImportState,
		"timeouts.poll":          c.Timeouts.Poll,
		"timeouts.action_list":   c.Timeouts.ActionList,
		"timeouts.command":       c.Timeouts.Command,
	}
	for name, d := range durations {
		if d <= 0 {
			return fmt.Errorf("%s must be positive", name)
		}
	}

	switch c.Logging.Format {
	case "text", "json":
	default:
		return fmt.Errorf("logging.format %q: must be text or json", c.Logging.Format)
	}

	if c.DataDir == "" {
		c.DataDir = defaultDataDir()
	}
	c.DataDir = expandHome(c.DataDir)
	return nil
}

// StatePath returns the SQLite file holding persisted dashboard fields.
func (c *Config) StatePath() string {
	return filepath.Join(c.DataDir, "state.db")
}

// LogPath returns the dashboard log file.
func (c *Config) LogPath() string {
	return filepath.Join(c.DataDir, "valuemon.log")
}

func defaultDataDir() string {
	return filepath.Join("~", ".valuemon")
}

func expandHome(p string) string {
	if p != "~" && !strings.HasPrefix(p, "~/") {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return p
	}
	return filepath.Join(home, strings.TrimPrefix(p, "~"))
}
